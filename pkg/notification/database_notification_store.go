package notification

import (
	"context"
	"sort"

	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
)

// DatabaseNotificationStore reads and writes the relational outbox table
// (spec I5/P6: rows are inserted in the same transaction as the catalog
// mutation they describe).
type DatabaseNotificationStore struct {
	metaDomain dbmodel.IMetaDomain
	txImpl     dbmodel.ITransaction
}

var _ NotificationStore = &DatabaseNotificationStore{}

func NewDatabaseNotificationStore(txImpl dbmodel.ITransaction, metaDomain dbmodel.IMetaDomain) *DatabaseNotificationStore {
	return &DatabaseNotificationStore{
		metaDomain: metaDomain,
		txImpl:     txImpl,
	}
}

func (d *DatabaseNotificationStore) GetAllPendingNotifications(ctx context.Context) (map[string][]model.Notification, error) {
	notifications, err := d.metaDomain.NotificationDb(ctx).GetAllPendingNotifications()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]model.Notification)
	for _, n := range notifications {
		result[n.CollectionID] = append(result[n.CollectionID], convertNotificationToModel(n))
	}
	for collectionID := range result {
		sort.Slice(result[collectionID], func(i, j int) bool {
			return result[collectionID][i].ID < result[collectionID][j].ID
		})
	}
	return result, nil
}

func (d *DatabaseNotificationStore) GetNotifications(ctx context.Context, collectionID string) ([]model.Notification, error) {
	notifications, err := d.metaDomain.NotificationDb(ctx).GetNotificationByCollectionID(collectionID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, convertNotificationToModel(n))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (d *DatabaseNotificationStore) AddNotification(ctx context.Context, n model.Notification) error {
	return d.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		return d.metaDomain.NotificationDb(txCtx).Insert(&dbmodel.Notification{
			CollectionID: n.CollectionID.String(),
			Type:         string(n.Type),
			Status:       string(n.Status),
		})
	})
}

func (d *DatabaseNotificationStore) RemoveNotifications(ctx context.Context, notifications []model.Notification) error {
	return d.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		ids := make([]int64, 0, len(notifications))
		for _, n := range notifications {
			ids = append(ids, n.ID)
		}
		return d.metaDomain.NotificationDb(txCtx).Delete(ids)
	})
}

func convertNotificationToModel(n *dbmodel.Notification) model.Notification {
	return model.Notification{
		ID:           n.ID,
		CollectionID: types.MustParse(n.CollectionID),
		Type:         model.NotificationType(n.Type),
		Status:       model.NotificationStatus(n.Status),
	}
}
