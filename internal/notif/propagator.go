package notif

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gomessaging/internal/dbmysql"
)

type EventKind string

const (
	EventMessageCreated EventKind = "message_created"
	EventMessageRead    EventKind = "message_read"
)

// NotificationWriter is the transaction-scoped store the observers write through.
type NotificationWriter interface {
	CreateNotification(ctx context.Context, n *dbmysql.Notification) error
	MarkMessageNotificationsRead(ctx context.Context, userID string, messageIDs []string) (int64, error)
}

// Event describes a message mutation that may need notification side effects.
// Message and Sender are set for EventMessageCreated; ReceiverID and MessageIDs for EventMessageRead.
type Event struct {
	Kind       EventKind
	Message    *dbmysql.Message
	Sender     *dbmysql.User
	ReceiverID string
	MessageIDs []string
	At         time.Time
	Writer     NotificationWriter
}

type Observer interface {
	Name() string
	Update(ctx context.Context, event Event) error
}

// NotificationManager fans an event out to its observers, in subscription order, on the caller's goroutine.
type NotificationManager struct {
	mu        sync.RWMutex
	observers []Observer
	logger    *zap.Logger
}

func NewNotificationManager(logger *zap.Logger) *NotificationManager {
	return &NotificationManager{logger: logger}
}

// Subscribe adds observer, replacing any observer already registered under the same name.
func (nm *NotificationManager) Subscribe(observer Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	for i, obs := range nm.observers {
		if obs.Name() == observer.Name() {
			nm.observers[i] = observer
			return
		}
	}
	nm.observers = append(nm.observers, observer)
	nm.logger.Debug("observer subscribed", zap.String("observer", observer.Name()))
}

func (nm *NotificationManager) Unsubscribe(name string) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	for i, obs := range nm.observers {
		if obs.Name() == name {
			nm.observers = append(nm.observers[:i], nm.observers[i+1:]...)
			nm.logger.Debug("observer unsubscribed", zap.String("observer", name))
			return
		}
	}
}

// Notify stops at the first failing observer and returns its error, which aborts the caller's transaction.
func (nm *NotificationManager) Notify(ctx context.Context, event Event) error {
	nm.mu.RLock()
	observers := make([]Observer, len(nm.observers))
	copy(observers, nm.observers)
	nm.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(ctx, event); err != nil {
			return fmt.Errorf("observer %s: %w", observer.Name(), err)
		}
	}
	return nil
}
