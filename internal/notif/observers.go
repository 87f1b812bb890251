package notif

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/metrics"
)

const DefaultPreviewLength = 50

// Preview cuts content to n runes and appends "..." when anything was cut.
func Preview(content string, n int) string {
	if n <= 0 {
		n = DefaultPreviewLength
	}
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	runes := []rune(content)
	return string(runes[:n]) + "..."
}

func MessageTitle(senderName string) string {
	return fmt.Sprintf("New message from %s", senderName)
}

// DatabaseObserver persists the notification rows through the event's writer.
type DatabaseObserver struct {
	previewLength int
	metrics       *metrics.Metrics
}

func NewDatabaseObserver(previewLength int, m *metrics.Metrics) *DatabaseObserver {
	return &DatabaseObserver{previewLength: previewLength, metrics: m}
}

func (d *DatabaseObserver) Name() string {
	return "database_observer"
}

func (d *DatabaseObserver) Update(ctx context.Context, event Event) error {
	if event.Writer == nil {
		return fmt.Errorf("no notification writer on %s event", event.Kind)
	}

	switch event.Kind {
	case EventMessageCreated:
		if event.Message == nil || event.Sender == nil {
			return fmt.Errorf("message_created event without message or sender")
		}
		msgID := event.Message.ID
		notification := &dbmysql.Notification{
			ID:        uuid.NewString(),
			UserID:    event.Message.ReceiverID,
			MessageID: &msgID,
			Type:      string(common.MessageType),
			Title:     MessageTitle(event.Sender.Username),
			Content:   Preview(event.Message.Content, d.previewLength),
			CreatedAt: event.At,
		}
		if err := event.Writer.CreateNotification(ctx, notification); err != nil {
			return fmt.Errorf("failed to store notification: %w", err)
		}
		if d.metrics != nil {
			d.metrics.NotificationsCreated.WithLabelValues(notification.Type).Inc()
		}

	case EventMessageRead:
		n, err := event.Writer.MarkMessageNotificationsRead(ctx, event.ReceiverID, event.MessageIDs)
		if err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}
		if d.metrics != nil {
			d.metrics.NotificationsRead.Add(float64(n))
		}
	}

	return nil
}

type MetricsObserver struct {
	metrics *metrics.Metrics
}

func NewMetricsObserver(m *metrics.Metrics) *MetricsObserver {
	return &MetricsObserver{metrics: m}
}

func (o *MetricsObserver) Name() string {
	return "metrics_observer"
}

func (o *MetricsObserver) Update(_ context.Context, event Event) error {
	switch event.Kind {
	case EventMessageCreated:
		o.metrics.MessagesSent.Inc()
	case EventMessageRead:
		o.metrics.MessagesRead.Add(float64(len(event.MessageIDs)))
	}
	return nil
}

type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Name() string {
	return "log_observer"
}

func (o *LogObserver) Update(_ context.Context, event Event) error {
	fields := []zap.Field{zap.String("event", string(event.Kind))}
	if event.Message != nil {
		fields = append(fields,
			zap.String("message_id", event.Message.ID),
			zap.String("receiver_id", event.Message.ReceiverID),
		)
	}
	if event.Kind == EventMessageRead {
		fields = append(fields,
			zap.String("receiver_id", event.ReceiverID),
			zap.Int("messages", len(event.MessageIDs)),
		)
	}
	o.logger.Debug("notification event", fields...)
	return nil
}
