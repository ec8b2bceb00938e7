package notification

import (
	"context"
	"sort"

	"github.com/corevecdb/corevec/pkg/model"
)

// MemoryNotificationStore backs single-node and test operation: an
// in-process substitute for the database-backed outbox table.
type MemoryNotificationStore struct {
	notifications map[string][]model.Notification
}

var _ NotificationStore = &MemoryNotificationStore{}

func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{
		notifications: make(map[string][]model.Notification),
	}
}

func (m *MemoryNotificationStore) GetAllPendingNotifications(ctx context.Context) (map[string][]model.Notification, error) {
	result := make(map[string][]model.Notification)
	for collectionID, notifications := range m.notifications {
		for _, n := range notifications {
			if n.Status == model.NotificationStatusPending {
				result[collectionID] = append(result[collectionID], n)
			}
		}
		sort.Slice(result[collectionID], func(i, j int) bool {
			return result[collectionID][i].ID < result[collectionID][j].ID
		})
	}
	return result, nil
}

func (m *MemoryNotificationStore) GetNotifications(ctx context.Context, collectionID string) ([]model.Notification, error) {
	notifications, ok := m.notifications[collectionID]
	if !ok {
		return nil, nil
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].ID < notifications[j].ID
	})
	return notifications, nil
}

func (m *MemoryNotificationStore) AddNotification(ctx context.Context, n model.Notification) error {
	m.notifications[n.CollectionID.String()] = append(m.notifications[n.CollectionID.String()], n)
	return nil
}

func (m *MemoryNotificationStore) RemoveNotifications(ctx context.Context, notifications []model.Notification) error {
	for _, n := range notifications {
		key := n.CollectionID.String()
		for i, existing := range m.notifications[key] {
			if existing.ID == n.ID {
				m.notifications[key] = append(m.notifications[key][:i], m.notifications[key][i+1:]...)
				break
			}
		}
	}
	return nil
}
