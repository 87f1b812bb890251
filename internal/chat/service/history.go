package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
)

// recordEdit writes one history row holding the stored content when newContent differs from it.
// It must run inside the edit transaction. A stored row that vanished yields ErrConflictSkip.
func recordEdit(ctx context.Context, tx Gateway, messageID, newContent, editorID string, now time.Time) (*dbmysql.Message, bool, error) {
	stored, err := tx.MessageByIDForUpdate(ctx, messageID)
	if err != nil {
		if isNotFound(err) {
			return nil, false, fmt.Errorf("message %s: %w", messageID, common.ErrConflictSkip)
		}
		return nil, false, err
	}

	if stored.Content == newContent {
		return stored, false, nil
	}

	editor := editorID
	if err := tx.CreateHistory(ctx, &dbmysql.MessageHistory{
		ID:         uuid.NewString(),
		MessageID:  stored.ID,
		OldContent: stored.Content,
		EditedAt:   now,
		EditedByID: &editor,
	}); err != nil {
		return nil, false, err
	}
	return stored, true, nil
}

// EditMessage replaces the content of a message. Either participant may edit;
// the previous content is kept in the message history. Edits never touch notifications.
func (s *ChatService) EditMessage(ctx context.Context, actorID, messageID, content string) (*dbmysql.Message, error) {
	if err := common.ValidateContent(content); err != nil {
		return nil, err
	}

	msg, err := s.loadForParticipant(ctx, actorID, messageID)
	if err != nil {
		return nil, err
	}

	var (
		out     *dbmysql.Message
		changed bool
	)
	err = s.gw.RunInTransaction(ctx, func(tx Gateway) error {
		now := s.now()
		stored, ok, err := recordEdit(ctx, tx, messageID, content, actorID, now)
		if err != nil {
			if errors.Is(err, common.ErrConflictSkip) {
				s.logger.Warn("edit skipped, message no longer stored",
					zap.String("message_id", messageID), zap.Error(err))
				skipped := *msg
				skipped.Content = content
				out = &skipped
				return nil
			}
			return err
		}
		if !ok {
			out = stored
			return nil
		}
		changed = true

		if err := tx.UpdateMessage(ctx, messageID, map[string]interface{}{
			"content":      content,
			"edited":       true,
			"edited_at":    now,
			"edited_by_id": actorID,
		}); err != nil {
			return err
		}

		out, err = tx.MessageByID(ctx, messageID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if changed {
		if s.metrics != nil {
			s.metrics.MessageEdits.Inc()
		}
		s.logger.Info("message edited", zap.String("message_id", messageID), zap.String("editor_id", actorID))
	}
	return out, nil
}

// MessageHistory lists earlier versions of a message, most recent edit first.
func (s *ChatService) MessageHistory(ctx context.Context, actorID, messageID string) ([]*dbmysql.MessageHistory, error) {
	if _, err := s.loadForParticipant(ctx, actorID, messageID); err != nil {
		return nil, err
	}
	return s.gw.QueryHistory(ctx, messageID)
}
