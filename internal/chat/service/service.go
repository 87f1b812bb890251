package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/metrics"
	"gomessaging/internal/notif"
)

type ChatService struct {
	gw         Gateway
	propagator Propagator
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

type Option func(*ChatService)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *ChatService) {
		s.now = now
	}
}

func NewChatService(gw Gateway, propagator Propagator, m *metrics.Metrics, logger *zap.Logger, opts ...Option) *ChatService {
	s := &ChatService{
		gw:         gw,
		propagator: propagator,
		metrics:    m,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SendMessageInput struct {
	ReceiverID      string `json:"receiver_id"`
	Content         string `json:"content"`
	ParentMessageID string `json:"parent_message_id"`
}

// SendMessage stores a message from actorID and creates the receiver's notification in the same transaction.
// A reply may omit the receiver; it is taken from the parent's pair.
func (s *ChatService) SendMessage(ctx context.Context, actorID string, in SendMessageInput) (*dbmysql.Message, error) {
	if actorID == "" {
		return nil, common.NewValidationError("sender", "is required")
	}
	if err := common.ValidateContent(in.Content); err != nil {
		return nil, err
	}
	in.ReceiverID = strings.TrimSpace(in.ReceiverID)
	in.ParentMessageID = strings.TrimSpace(in.ParentMessageID)
	if in.ReceiverID == "" && in.ParentMessageID == "" {
		return nil, common.NewValidationError("receiver_id", "is required")
	}

	var created *dbmysql.Message
	err := s.gw.RunInTransaction(ctx, func(tx Gateway) error {
		sender, err := tx.UserByID(ctx, actorID)
		if err != nil {
			return err
		}

		receiverID := in.ReceiverID
		var parentID *string
		if in.ParentMessageID != "" {
			parent, err := tx.MessageByID(ctx, in.ParentMessageID)
			if err != nil {
				return err
			}
			if !common.IsParticipant(parent, actorID) {
				return fmt.Errorf("reply to message %s: %w", parent.ID, common.ErrForbidden)
			}
			pair := common.Conversation{UserA: parent.SenderID, UserB: parent.ReceiverID}
			if receiverID == "" {
				receiverID = parent.OtherParticipant(actorID)
			} else if !pair.Includes(actorID, receiverID) {
				return common.NewValidationError("receiver_id", "does not match the parent message's conversation")
			}
			parentID = &parent.ID
		}

		if receiverID != sender.ID {
			if _, err := tx.UserByID(ctx, receiverID); err != nil {
				return err
			}
		}

		msg := &dbmysql.Message{
			ID:              uuid.NewString(),
			SenderID:        sender.ID,
			ReceiverID:      receiverID,
			Content:         in.Content,
			Timestamp:       s.now(),
			ParentMessageID: parentID,
		}
		if err := tx.CreateMessage(ctx, msg); err != nil {
			return err
		}

		if err := s.propagator.Notify(ctx, notif.Event{
			Kind:    notif.EventMessageCreated,
			Message: msg,
			Sender:  sender,
			At:      msg.Timestamp,
			Writer:  tx,
		}); err != nil {
			return err
		}

		created = msg
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("message sent",
		zap.String("message_id", created.ID),
		zap.String("sender_id", created.SenderID),
		zap.String("receiver_id", created.ReceiverID),
		zap.Bool("reply", created.ParentMessageID != nil),
	)
	return created, nil
}

// loadForParticipant fetches a message and checks that actorID is its sender or receiver.
func (s *ChatService) loadForParticipant(ctx context.Context, actorID, messageID string) (*dbmysql.Message, error) {
	msg, err := s.gw.MessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if !common.IsParticipant(msg, actorID) {
		return nil, fmt.Errorf("message %s: %w", messageID, common.ErrForbidden)
	}
	return msg, nil
}

func (s *ChatService) GetMessage(ctx context.Context, actorID, messageID string) (*dbmysql.Message, error) {
	return s.loadForParticipant(ctx, actorID, messageID)
}

type ListMessagesInput struct {
	WithUserID string
	SenderID   string
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

// ListMessages pages through the messages actorID sent or received, newest first.
func (s *ChatService) ListMessages(ctx context.Context, actorID string, in ListMessagesInput) ([]*dbmysql.Message, int64, error) {
	f := MessageFilter{
		Participant: actorID,
		SenderID:    in.SenderID,
		Since:       in.Since,
		Until:       in.Until,
	}
	if in.WithUserID != "" {
		f.Pair = &common.Conversation{UserA: actorID, UserB: in.WithUserID}
	}

	total, err := s.gw.CountMessages(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	f.NewestFirst = true
	f.Limit = in.Limit
	f.Offset = in.Offset
	messages, err := s.gw.QueryMessages(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// DeleteMessage lets the sender remove a message. Its replies go with it.
func (s *ChatService) DeleteMessage(ctx context.Context, actorID, messageID string) (int64, error) {
	var stats *DeleteStats
	err := s.gw.RunInTransaction(ctx, func(tx Gateway) error {
		msg, err := tx.MessageByID(ctx, messageID)
		if err != nil {
			return err
		}
		if msg.SenderID != actorID {
			return fmt.Errorf("delete message %s: %w", messageID, common.ErrForbidden)
		}

		stats, err = tx.DeleteMessages(ctx, MessageFilter{IDs: []string{messageID}})
		return err
	})
	if err != nil {
		return 0, err
	}

	if s.metrics != nil {
		s.metrics.MessagesDeleted.Add(float64(stats.Messages))
	}
	s.logger.Info("message deleted",
		zap.String("message_id", messageID),
		zap.Int64("messages_deleted", stats.Messages),
		zap.Int64("notifications_deleted", stats.Notifications),
		zap.Int64("history_deleted", stats.History),
	)
	return stats.Messages, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
