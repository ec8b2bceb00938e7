package model

import "github.com/corevecdb/corevec/pkg/types"

type NotificationType string

const (
	NotificationTypeCreateCollection NotificationType = "create_collection"
	NotificationTypeDeleteCollection NotificationType = "delete_collection"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSuccess NotificationStatus = "success"
	NotificationStatusFailure NotificationStatus = "failure"
)

// Notification is an outbox row: written in the same transaction as the
// catalog mutation it describes (spec I5/P6), delivered at-least-once by the
// notification processor, and deleted once the sink acknowledges it.
type Notification struct {
	ID           int64
	CollectionID types.UniqueID
	Type         NotificationType
	Status       NotificationStatus
}
