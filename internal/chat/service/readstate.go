package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/notif"
)

func notRead() *bool {
	b := false
	return &b
}

func (s *ChatService) UnreadFor(ctx context.Context, userID string) ([]UnreadMessage, error) {
	return s.gw.QueryUnread(ctx, userID)
}

func (s *ChatService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.gw.CountMessages(ctx, MessageFilter{ReceiverID: userID, Read: notRead()})
}

// MarkRead marks the user's unread messages as read, all of them when messageIDs is empty.
// Only messages the user received are touched. It returns how many rows flipped.
func (s *ChatService) MarkRead(ctx context.Context, userID string, messageIDs []string) (int64, error) {
	var flipped int64
	err := s.gw.RunInTransaction(ctx, func(tx Gateway) error {
		pending, err := tx.QueryMessages(ctx, MessageFilter{
			IDs:        messageIDs,
			ReceiverID: userID,
			Read:       notRead(),
		})
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		ids := make([]string, len(pending))
		for i, m := range pending {
			ids[i] = m.ID
		}

		flipped, err = tx.BulkUpdateMessages(ctx,
			MessageFilter{IDs: ids, Read: notRead()},
			map[string]interface{}{"read": true, "is_read": true})
		if err != nil {
			return err
		}

		return s.propagator.Notify(ctx, notif.Event{
			Kind:       notif.EventMessageRead,
			ReceiverID: userID,
			MessageIDs: ids,
			At:         s.now(),
			Writer:     tx,
		})
	})
	if err != nil {
		return 0, err
	}

	if flipped > 0 {
		s.logger.Debug("messages marked read", zap.String("user_id", userID), zap.Int64("count", flipped))
	}
	return flipped, nil
}

// MarkSingleRead is the receiver acknowledging one message. Reading it again is a no-op.
func (s *ChatService) MarkSingleRead(ctx context.Context, actorID, messageID string) error {
	return s.gw.RunInTransaction(ctx, func(tx Gateway) error {
		msg, err := tx.MessageByIDForUpdate(ctx, messageID)
		if err != nil {
			return err
		}
		if msg.ReceiverID != actorID {
			return fmt.Errorf("mark message %s read: %w", messageID, common.ErrForbidden)
		}
		if msg.Read && msg.IsRead {
			return nil
		}

		if err := tx.UpdateMessage(ctx, messageID, map[string]interface{}{"read": true, "is_read": true}); err != nil {
			return err
		}

		return s.propagator.Notify(ctx, notif.Event{
			Kind:       notif.EventMessageRead,
			ReceiverID: msg.ReceiverID,
			MessageIDs: []string{msg.ID},
			At:         s.now(),
			Writer:     tx,
		})
	})
}
