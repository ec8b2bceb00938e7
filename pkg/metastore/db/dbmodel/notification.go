package dbmodel

import "time"

// Notification is the outbox row inserted in the same transaction as the
// catalog mutation it describes (spec I5/P6).
type Notification struct {
	ID           int64     `gorm:"id;primaryKey;autoIncrement"`
	CollectionID string    `gorm:"collection_id"`
	Type         string    `gorm:"notification_type"`
	Status       string    `gorm:"status"`
	CreatedAt    time.Time `gorm:"created_at;type:timestamp;not null;default:current_timestamp"`
}

func (Notification) TableName() string {
	return "notifications"
}

const (
	NotificationTypeCreateCollection = "create_collection"
	NotificationTypeDeleteCollection = "delete_collection"
)

const (
	NotificationStatusPending = "pending"
)

type INotificationDb interface {
	DeleteAll() error
	Delete(id []int64) error
	Insert(in *Notification) error
	GetAllPendingNotifications() ([]*Notification, error)
	GetNotificationByCollectionID(collectionID string) ([]*Notification, error)
}
