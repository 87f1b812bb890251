package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gomessaging/internal/common"
)

type CascadeResult struct {
	UserID               string `json:"user_id"`
	MessagesDeleted      int64  `json:"messages_deleted"`
	NotificationsDeleted int64  `json:"notifications_deleted"`
	HistoryDeleted       int64  `json:"history_deleted"`
	HistoryNullified     int64  `json:"history_nullified"`
	MessagesDetached     int64  `json:"messages_detached"`
}

// DeleteAccount removes a user and everything that belongs to them in one transaction:
// their messages with reply subtrees, the history and notifications of those messages,
// and any remaining notification addressed to them. Edits they made to surviving
// messages stay, with the editor reference cleared.
func (s *ChatService) DeleteAccount(ctx context.Context, actorID, userID string) (*CascadeResult, error) {
	if actorID == "" || actorID != userID {
		return nil, fmt.Errorf("delete account %s: %w", userID, common.ErrForbidden)
	}

	res := &CascadeResult{UserID: userID}
	err := s.gw.RunInTransaction(ctx, func(tx Gateway) error {
		if _, err := tx.UserByID(ctx, userID); err != nil {
			return err
		}

		stats, err := tx.DeleteMessages(ctx, MessageFilter{Participant: userID})
		if err != nil {
			return err
		}
		res.MessagesDeleted = stats.Messages
		res.NotificationsDeleted = stats.Notifications
		res.HistoryDeleted = stats.History

		n, err := tx.DeleteNotifications(ctx, NotificationFilter{UserID: userID})
		if err != nil {
			return err
		}
		res.NotificationsDeleted += n

		if res.HistoryNullified, err = tx.NullifyHistoryEditor(ctx, userID); err != nil {
			return err
		}
		if res.MessagesDetached, err = tx.NullifyMessageEditor(ctx, userID); err != nil {
			return err
		}

		return tx.DeleteUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AccountDeletions.Inc()
		s.metrics.CascadeRowsDeleted.WithLabelValues("messages").Add(float64(res.MessagesDeleted))
		s.metrics.CascadeRowsDeleted.WithLabelValues("notifications").Add(float64(res.NotificationsDeleted))
		s.metrics.CascadeRowsDeleted.WithLabelValues("history").Add(float64(res.HistoryDeleted))
		s.metrics.CascadeRowsDeleted.WithLabelValues("history_nullified").Add(float64(res.HistoryNullified))
	}
	s.logger.Info("account deleted",
		zap.String("user_id", userID),
		zap.Int64("messages_deleted", res.MessagesDeleted),
		zap.Int64("notifications_deleted", res.NotificationsDeleted),
		zap.Int64("history_deleted", res.HistoryDeleted),
		zap.Int64("history_nullified", res.HistoryNullified),
		zap.Int64("messages_detached", res.MessagesDetached),
	)
	return res, nil
}
