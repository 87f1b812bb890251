package dbmysql

import (
	"time"
)

// Message is a direct message between two users. A non-nil ParentMessageID makes it a reply.
type Message struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	SenderID        string     `gorm:"column:sender_id;size:36;not null;index:idx_messages_pair,priority:1" json:"sender_id"`
	ReceiverID      string     `gorm:"column:receiver_id;size:36;not null;index:idx_messages_pair,priority:2;index:idx_messages_receiver_read,priority:1" json:"receiver_id"`
	Content         string     `gorm:"column:content;type:text;not null" json:"content"`
	Timestamp       time.Time  `gorm:"column:timestamp;index;not null" json:"timestamp"`
	Read            bool       `gorm:"column:read;not null;default:false;index:idx_messages_receiver_read,priority:2" json:"read"`
	IsRead          bool       `gorm:"column:is_read;not null;default:false" json:"is_read"`
	Edited          bool       `gorm:"column:edited;not null;default:false" json:"edited"`
	EditedAt        *time.Time `gorm:"column:edited_at" json:"edited_at,omitempty"`
	EditedByID      *string    `gorm:"column:edited_by_id;size:36;index" json:"edited_by_id,omitempty"`
	ParentMessageID *string    `gorm:"column:parent_message_id;size:36;index" json:"parent_message_id,omitempty"`

	Replies []*Message `gorm:"-" json:"replies,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) Participants() []string {
	return []string{m.SenderID, m.ReceiverID}
}

func (m *Message) IsRoot() bool {
	return m.ParentMessageID == nil
}

// OtherParticipant returns the user on the other side of the message from userID.
func (m *Message) OtherParticipant(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}
