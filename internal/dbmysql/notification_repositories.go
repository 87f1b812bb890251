package dbmysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gomessaging/internal/common"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// WithTx returns a repository bound to an open transaction.
func (r *NotificationRepository) WithTx(tx *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: tx}
}

func (r *NotificationRepository) Create(ctx context.Context, notif *Notification) error {
	if err := r.db.WithContext(ctx).Create(notif).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ByID(ctx context.Context, id string) (*Notification, error) {
	var notification Notification

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %s: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return &notification, nil
}

func (r *NotificationRepository) ByUserID(ctx context.Context, userID string, limit, offset int) ([]*Notification, error) {
	var notifications []*Notification

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to get user notifications: %w", err)
	}

	return notifications, nil
}

func (r *NotificationRepository) ByMessageID(ctx context.Context, messageID string) ([]*Notification, error) {
	var notifications []*Notification
	err := r.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get message notifications: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead flips one notification owned by userID. Someone else's notification is reported as not found.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	var notification Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("notification %s: %w", id, common.ErrNotFound)
		}
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if notification.IsRead {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}

	return nil
}

// MarkReadForMessages marks the message notifications of userID for the given messages as read.
func (r *NotificationRepository) MarkReadForMessages(ctx context.Context, userID string, messageIDs []string) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND message_id IN ? AND type = ? AND is_read = ?",
			userID, messageIDs, string(common.MessageType), false).
		Updates(map[string]interface{}{"is_read": true})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark message notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) DeleteByMessages(ctx context.Context, messageIDs []string) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("message_id IN ?", messageIDs).Delete(&Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to get unread count: %w", err)
	}

	return count, nil
}
