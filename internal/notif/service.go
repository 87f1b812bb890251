package notif

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/metrics"
)

// NotificationStore is the read side the service needs. *dbmysql.NotificationRepository satisfies it.
type NotificationStore interface {
	Create(ctx context.Context, notif *dbmysql.Notification) error
	ByUserID(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Notification, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	MessageID *string   `json:"message_id,omitempty"`
	Type      string    `json:"notification_type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(n *dbmysql.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		MessageID: n.MessageID,
		Type:      n.Type,
		Title:     n.Title,
		Content:   n.Content,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type NotificationService struct {
	repo    NotificationStore
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewNotificationService(repo NotificationStore, m *metrics.Metrics, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetUserNotifications returns one page of the user's notifications, newest first, plus the total.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID string, limit, offset int) ([]*NotificationResponse, int64, error) {
	notifications, err := s.repo.ByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	responses := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = toResponse(n)
	}

	return responses, total, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID string) error {
	if err := s.repo.MarkAsRead(ctx, notificationID, userID); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.NotificationsRead.Inc()
	}
	return nil
}

// SendSystemNotification stores a notification that is not tied to any message.
func (s *NotificationService) SendSystemNotification(ctx context.Context, userID, title, content string) (*NotificationResponse, error) {
	if userID == "" {
		return nil, common.NewValidationError("user_id", "is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, common.NewValidationError("title", "is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, common.NewValidationError("content", "is required")
	}

	notification := &dbmysql.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      string(common.SystemType),
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to send system notification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.NotificationsCreated.WithLabelValues(notification.Type).Inc()
	}
	s.logger.Info("system notification sent", zap.String("user_id", userID), zap.String("notification_id", notification.ID))
	return toResponse(notification), nil
}
