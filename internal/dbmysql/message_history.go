package dbmysql

import "time"

// MessageHistory keeps the content a message had before one edit.
type MessageHistory struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	MessageID  string    `gorm:"column:message_id;size:36;not null;index" json:"message_id"`
	OldContent string    `gorm:"column:old_content;type:text;not null" json:"old_content"`
	EditedAt   time.Time `gorm:"column:edited_at;not null;index" json:"edited_at"`
	EditedByID *string   `gorm:"column:edited_by_id;size:36;index" json:"edited_by_id,omitempty"`
}

func (MessageHistory) TableName() string {
	return "message_histories"
}
