package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gomessaging/internal/chat/service"
	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
)

// Store is the gorm implementation of service.Gateway.
type Store struct {
	db     *gorm.DB
	notifs *dbmysql.NotificationRepository
}

var _ service.Gateway = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:     db,
		notifs: dbmysql.NewNotificationRepository(db),
	}
}

func (s *Store) withTx(tx *gorm.DB) *Store {
	return &Store{db: tx, notifs: s.notifs.WithTx(tx)}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
// Errors that are not NotFound, Forbidden or Validation come back wrapped in ErrTransactionFailure.
func (s *Store) RunInTransaction(ctx context.Context, fn func(tx service.Gateway) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.withTx(tx))
	})
	if err == nil || common.IsDomainError(err) || errors.Is(err, common.ErrTransactionFailure) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrTransactionFailure, err)
}

func notFound(entity, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, common.ErrNotFound, err)
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

func (s *Store) UserByID(ctx context.Context, id string) (*dbmysql.User, error) {
	var user dbmysql.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound("user", id, err)
	}
	return &user, nil
}

func (s *Store) MessageByID(ctx context.Context, id string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, notFound("message", id, err)
	}
	return &msg, nil
}

// MessageByIDForUpdate locks the row until the surrounding transaction ends.
// SQLite has no row locks; its write transaction already serialises writers.
func (s *Store) MessageByIDForUpdate(ctx context.Context, id string) (*dbmysql.Message, error) {
	q := s.db.WithContext(ctx)
	if q.Dialector.Name() != dbmysql.DriverSQLite {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var msg dbmysql.Message
	if err := q.Where("id = ?", id).First(&msg).Error; err != nil {
		return nil, notFound("message", id, err)
	}
	return &msg, nil
}

func (s *Store) QueryMessages(ctx context.Context, f service.MessageFilter) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := s.db.WithContext(ctx).
		Scopes(messageScope(f), messageOrder(f), paginate(f.Limit, f.Offset)).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	return messages, nil
}

func (s *Store) CountMessages(ctx context.Context, f service.MessageFilter) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Scopes(messageScope(f)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

// QueryUnread joins the sender so the listing needs a single round trip.
func (s *Store) QueryUnread(ctx context.Context, receiverID string) ([]service.UnreadMessage, error) {
	var rows []service.UnreadMessage
	err := s.db.WithContext(ctx).
		Table("messages").
		Select("messages.id, messages.sender_id, users.username AS sender_username, " +
			"messages.content, messages.`timestamp`, messages.`read`").
		Joins("LEFT JOIN users ON users.id = messages.sender_id").
		Where("messages.receiver_id = ? AND messages.`read` = ?", receiverID, false).
		Order("messages.`timestamp` ASC").
		Order("messages.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query unread messages: %w", err)
	}
	return rows, nil
}

func (s *Store) QueryNotifications(ctx context.Context, f service.NotificationFilter) ([]*dbmysql.Notification, error) {
	var notifications []*dbmysql.Notification
	err := s.db.WithContext(ctx).
		Scopes(notificationScope(f)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	return notifications, nil
}

func (s *Store) QueryHistory(ctx context.Context, messageID string) ([]*dbmysql.MessageHistory, error) {
	var history []*dbmysql.MessageHistory
	err := s.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("edited_at DESC").
		Order("id DESC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query message history: %w", err)
	}
	return history, nil
}

func (s *Store) CreateMessage(ctx context.Context, m *dbmysql.Message) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (s *Store) CreateHistory(ctx context.Context, h *dbmysql.MessageHistory) error {
	if err := s.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("failed to create message history: %w", err)
	}
	return nil
}

func (s *Store) CreateNotification(ctx context.Context, n *dbmysql.Notification) error {
	return s.notifs.Create(ctx, n)
}

func (s *Store) MarkMessageNotificationsRead(ctx context.Context, userID string, messageIDs []string) (int64, error) {
	return s.notifs.MarkReadForMessages(ctx, userID, messageIDs)
}

// UpdateMessage writes fields to one row. A missing row is not an error here.
func (s *Store) UpdateMessage(ctx context.Context, id string, fields map[string]interface{}) error {
	err := s.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

func (s *Store) BulkUpdateMessages(ctx context.Context, f service.MessageFilter, fields map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Scopes(messageScope(f)).
		Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update messages: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) BulkUpdateNotifications(ctx context.Context, f service.NotificationFilter, fields map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Scopes(notificationScope(f)).
		Updates(fields)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) NullifyHistoryEditor(ctx context.Context, userID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&dbmysql.MessageHistory{}).
		Where("edited_by_id = ?", userID).
		Update("edited_by_id", gorm.Expr("NULL"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach history editor: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) NullifyMessageEditor(ctx context.Context, userID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&dbmysql.Message{}).
		Where("edited_by_id = ?", userID).
		Update("edited_by_id", gorm.Expr("NULL"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to detach message editor: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteMessages removes the matching messages, every reply below them,
// and the history and notifications of all removed rows. Call it inside RunInTransaction.
func (s *Store) DeleteMessages(ctx context.Context, f service.MessageFilter) (*service.DeleteStats, error) {
	db := s.db.WithContext(ctx)

	var ids []string
	if err := db.Model(&dbmysql.Message{}).Scopes(messageScope(f)).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}

	all, err := s.collectSubtree(ctx, ids)
	if err != nil {
		return nil, err
	}

	stats := &service.DeleteStats{}
	if len(all) == 0 {
		return stats, nil
	}

	history := db.Where("message_id IN ?", all).Delete(&dbmysql.MessageHistory{})
	if history.Error != nil {
		return nil, fmt.Errorf("failed to delete message history: %w", history.Error)
	}
	stats.History = history.RowsAffected

	if stats.Notifications, err = s.notifs.DeleteByMessages(ctx, all); err != nil {
		return nil, err
	}

	msgs := db.Where("id IN ?", all).Delete(&dbmysql.Message{})
	if msgs.Error != nil {
		return nil, fmt.Errorf("failed to delete messages: %w", msgs.Error)
	}
	stats.Messages = msgs.RowsAffected

	return stats, nil
}

// collectSubtree walks parent_message_id downwards, breadth first, from roots.
func (s *Store) collectSubtree(ctx context.Context, roots []string) ([]string, error) {
	seen := make(map[string]bool, len(roots))
	all := make([]string, 0, len(roots))
	frontier := make([]string, 0, len(roots))
	for _, id := range roots {
		if !seen[id] {
			seen[id] = true
			all = append(all, id)
			frontier = append(frontier, id)
		}
	}

	for len(frontier) > 0 {
		var children []string
		err := s.db.WithContext(ctx).
			Model(&dbmysql.Message{}).
			Where("parent_message_id IN ?", frontier).
			Pluck("id", &children).Error
		if err != nil {
			return nil, fmt.Errorf("failed to select replies: %w", err)
		}

		frontier = frontier[:0]
		for _, id := range children {
			if !seen[id] {
				seen[id] = true
				all = append(all, id)
				frontier = append(frontier, id)
			}
		}
	}
	return all, nil
}

func (s *Store) DeleteNotifications(ctx context.Context, f service.NotificationFilter) (int64, error) {
	result := s.db.WithContext(ctx).Scopes(notificationScope(f)).Delete(&dbmysql.Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&dbmysql.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, common.ErrNotFound)
	}
	return nil
}
