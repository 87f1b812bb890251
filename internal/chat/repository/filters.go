package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gomessaging/internal/chat/service"
)

// "read" is reserved in MySQL, so it only ever goes through map conditions that gorm quotes.

func messageScope(f service.MessageFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(f.IDs) > 0 {
			db = db.Where("id IN ?", f.IDs)
		}
		if f.SenderID != "" {
			db = db.Where("sender_id = ?", f.SenderID)
		}
		if f.ReceiverID != "" {
			db = db.Where("receiver_id = ?", f.ReceiverID)
		}
		if f.Participant != "" {
			db = db.Where("(sender_id = ? OR receiver_id = ?)", f.Participant, f.Participant)
		}
		if f.Pair != nil {
			db = db.Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))",
				f.Pair.UserA, f.Pair.UserB, f.Pair.UserB, f.Pair.UserA)
		}
		if len(f.ParentIDs) > 0 {
			db = db.Where("parent_message_id IN ?", f.ParentIDs)
		}
		if f.RootsOnly {
			db = db.Where("parent_message_id IS NULL")
		}
		if f.Read != nil {
			db = db.Where(map[string]interface{}{"read": *f.Read})
		}
		if f.Since != nil {
			db = db.Where(clause.Gte{Column: clause.Column{Name: "timestamp"}, Value: *f.Since})
		}
		if f.Until != nil {
			db = db.Where(clause.Lte{Column: clause.Column{Name: "timestamp"}, Value: *f.Until})
		}
		return db
	}
}

func messageOrder(f service.MessageFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: f.NewestFirst}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: f.NewestFirst})
	}
}

func paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

func notificationScope(f service.NotificationFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.UserID != "" {
			db = db.Where("user_id = ?", f.UserID)
		}
		if len(f.MessageIDs) > 0 {
			db = db.Where("message_id IN ?", f.MessageIDs)
		}
		if f.Type != "" {
			db = db.Where("type = ?", string(f.Type))
		}
		if f.IsRead != nil {
			db = db.Where("is_read = ?", *f.IsRead)
		}
		return db
	}
}
