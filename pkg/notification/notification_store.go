// Package notification implements the outbox-delivery path (spec §4.6):
// pending rows written in the catalog transaction are drained by a
// background processor and handed to a Notifier.
package notification

import (
	"context"

	"github.com/corevecdb/corevec/pkg/model"
)

// NotificationStore is the outbox table's read/write surface, independent
// of delivery mechanism.
type NotificationStore interface {
	GetAllPendingNotifications(ctx context.Context) (map[string][]model.Notification, error)
	GetNotifications(ctx context.Context, collectionID string) ([]model.Notification, error)
	AddNotification(ctx context.Context, notification model.Notification) error
	RemoveNotifications(ctx context.Context, notifications []model.Notification) error
}
