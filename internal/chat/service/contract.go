package service

import (
	"context"
	"time"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/notif"
)

// MessageFilter narrows a message query. Zero fields are ignored; an empty IDs slice means "any id".
type MessageFilter struct {
	IDs         []string
	SenderID    string
	ReceiverID  string
	Participant string               // sender or receiver
	Pair        *common.Conversation // exchanged between exactly these two users
	ParentIDs   []string
	RootsOnly   bool
	Read        *bool
	Since       *time.Time
	Until       *time.Time
	NewestFirst bool
	Limit       int
	Offset      int
}

type NotificationFilter struct {
	UserID     string
	MessageIDs []string
	Type       common.NotificationType
	IsRead     *bool
}

// UnreadMessage is the narrow projection served by the unread listing.
type UnreadMessage struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Read           bool      `json:"read"`
}

type DeleteStats struct {
	Messages      int64
	Notifications int64
	History       int64
}

// Gateway is the persistence boundary of the messaging core.
// Every call made on the tx handed to RunInTransaction is part of that transaction.
type Gateway interface {
	notif.NotificationWriter

	RunInTransaction(ctx context.Context, fn func(tx Gateway) error) error

	UserByID(ctx context.Context, id string) (*dbmysql.User, error)
	MessageByID(ctx context.Context, id string) (*dbmysql.Message, error)
	MessageByIDForUpdate(ctx context.Context, id string) (*dbmysql.Message, error)

	QueryMessages(ctx context.Context, f MessageFilter) ([]*dbmysql.Message, error)
	CountMessages(ctx context.Context, f MessageFilter) (int64, error)
	QueryUnread(ctx context.Context, receiverID string) ([]UnreadMessage, error)
	QueryNotifications(ctx context.Context, f NotificationFilter) ([]*dbmysql.Notification, error)
	QueryHistory(ctx context.Context, messageID string) ([]*dbmysql.MessageHistory, error)

	CreateMessage(ctx context.Context, m *dbmysql.Message) error
	CreateHistory(ctx context.Context, h *dbmysql.MessageHistory) error

	UpdateMessage(ctx context.Context, id string, fields map[string]interface{}) error
	BulkUpdateMessages(ctx context.Context, f MessageFilter, fields map[string]interface{}) (int64, error)
	BulkUpdateNotifications(ctx context.Context, f NotificationFilter, fields map[string]interface{}) (int64, error)
	NullifyHistoryEditor(ctx context.Context, userID string) (int64, error)
	NullifyMessageEditor(ctx context.Context, userID string) (int64, error)

	DeleteMessages(ctx context.Context, f MessageFilter) (*DeleteStats, error)
	DeleteNotifications(ctx context.Context, f NotificationFilter) (int64, error)
	DeleteUser(ctx context.Context, id string) error
}

// Propagator receives message events inside the mutating transaction.
type Propagator interface {
	Notify(ctx context.Context, event notif.Event) error
}
