package dbmysql

import "time"

type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index" json:"user_id"`
	MessageID *string   `gorm:"column:message_id;size:36;index" json:"message_id,omitempty"`
	Type      string    `gorm:"column:type;size:20;not null;default:'message'" json:"notification_type"`
	Title     string    `gorm:"column:title;size:200;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
