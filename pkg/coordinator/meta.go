package coordinator

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/metastore"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/notification"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// IMeta is the in-memory cache in front of the Catalog Store.
type IMeta interface {
	ResetState(ctx context.Context) error
	AddCollection(ctx context.Context, createCollection *model.CreateCollection) (*model.Collection, error)
	GetCollections(ctx context.Context, collectionID types.UniqueID, collectionName *string, collectionTopic *string, tenantID string, databaseName string) ([]*model.Collection, error)
	DeleteCollection(ctx context.Context, deleteCollection *model.DeleteCollection) error
	UpdateCollection(ctx context.Context, updateCollection *model.UpdateCollection) (*model.Collection, error)
	AddSegment(ctx context.Context, createSegment *model.CreateSegment) error
	GetSegments(ctx context.Context, segmentID types.UniqueID, segmentType *string, scope *model.SegmentScope, collectionID types.UniqueID) ([]*model.Segment, error)
	DeleteSegment(ctx context.Context, segmentID types.UniqueID) error
	UpdateSegment(ctx context.Context, updateSegment *model.UpdateSegment) (*model.Segment, error)
	CreateDatabase(ctx context.Context, createDatabase *model.CreateDatabase) (*model.Database, error)
	GetDatabase(ctx context.Context, getDatabase *model.GetDatabase) (*model.Database, error)
	ListDatabases(ctx context.Context, listDatabases *model.ListDatabases) ([]*model.Database, error)
	CreateTenant(ctx context.Context, createTenant *model.CreateTenant) (*model.Tenant, error)
	GetTenant(ctx context.Context, getTenant *model.GetTenant) (*model.Tenant, error)
	// SetCollectionLogOffset mirrors a Log Service compaction advance into
	// the cached Collection's LogPosition (Open Question (a)); the Log
	// Service is the only caller.
	SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error
	SetNotificationProcessor(notificationProcessor notification.NotificationProcessor)
}

// MetaTable loads the system catalog at startup and caches it in memory.
// Every method is guarded by ddLock so the cache stays consistent with the
// Catalog Store it mirrors.
type MetaTable struct {
	ddLock                        sync.RWMutex
	ctx                           context.Context
	catalog                       metastore.Catalog
	segmentsCache                 map[types.UniqueID]*model.Segment
	tenantDatabaseCollectionCache map[string]map[string]map[types.UniqueID]*model.Collection
	tenantDatabaseCache           map[string]map[string]*model.Database
	notificationProcessor         notification.NotificationProcessor
}

var _ IMeta = (*MetaTable)(nil)

func NewMetaTable(ctx context.Context, catalog metastore.Catalog) (*MetaTable, error) {
	mt := &MetaTable{
		ctx:                           ctx,
		catalog:                       catalog,
		segmentsCache:                 make(map[types.UniqueID]*model.Segment),
		tenantDatabaseCollectionCache: make(map[string]map[string]map[types.UniqueID]*model.Collection),
		tenantDatabaseCache:           make(map[string]map[string]*model.Database),
	}
	if err := mt.reloadWithLock(); err != nil {
		return nil, err
	}
	return mt, nil
}

func (mt *MetaTable) reloadWithLock() error {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()
	return mt.reload()
}

func (mt *MetaTable) reload() error {
	tenants, err := mt.catalog.GetAllTenants(mt.ctx, 0)
	if err != nil {
		return err
	}
	for _, tenant := range tenants {
		mt.tenantDatabaseCollectionCache[tenant.Name] = make(map[string]map[types.UniqueID]*model.Collection)
		mt.tenantDatabaseCache[tenant.Name] = make(map[string]*model.Database)
	}

	databases, err := mt.catalog.GetAllDatabases(mt.ctx, 0)
	if err != nil {
		return err
	}
	for _, database := range databases {
		mt.tenantDatabaseCollectionCache[database.Tenant][database.Name] = make(map[types.UniqueID]*model.Collection)
		mt.tenantDatabaseCache[database.Tenant][database.Name] = database
	}

	for tenantID, databases := range mt.tenantDatabaseCollectionCache {
		for databaseName := range databases {
			collections, err := mt.catalog.GetCollections(mt.ctx, types.NilUniqueID(), nil, tenantID, databaseName)
			if err != nil {
				return err
			}
			for _, collection := range collections {
				mt.tenantDatabaseCollectionCache[tenantID][databaseName][collection.ID] = collection
			}
		}
	}

	segments, err := mt.catalog.GetSegments(mt.ctx, types.NilUniqueID(), nil, nil, types.NilUniqueID())
	if err != nil {
		return err
	}
	mt.segmentsCache = make(map[types.UniqueID]*model.Segment)
	for _, segment := range segments {
		mt.segmentsCache[segment.ID] = segment
	}
	return nil
}

func (mt *MetaTable) SetNotificationProcessor(notificationProcessor notification.NotificationProcessor) {
	mt.notificationProcessor = notificationProcessor
}

func (mt *MetaTable) ResetState(ctx context.Context) error {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	if err := mt.catalog.ResetState(ctx); err != nil {
		return err
	}
	mt.segmentsCache = make(map[types.UniqueID]*model.Segment)
	mt.tenantDatabaseCache = make(map[string]map[string]*model.Database)
	mt.tenantDatabaseCollectionCache = make(map[string]map[string]map[types.UniqueID]*model.Collection)
	return mt.reload()
}

func (mt *MetaTable) CreateDatabase(ctx context.Context, createDatabase *model.CreateDatabase) (*model.Database, error) {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	tenant := createDatabase.Tenant
	if _, ok := mt.tenantDatabaseCache[tenant]; !ok {
		return nil, common.ErrTenantNotFound
	}
	if _, ok := mt.tenantDatabaseCache[tenant][createDatabase.Name]; ok {
		return nil, common.ErrDatabaseUniqueConstraintViolation
	}
	database, err := mt.catalog.CreateDatabase(ctx, createDatabase, createDatabase.Ts)
	if err != nil {
		return nil, err
	}
	mt.tenantDatabaseCache[tenant][createDatabase.Name] = database
	mt.tenantDatabaseCollectionCache[tenant][createDatabase.Name] = make(map[types.UniqueID]*model.Collection)
	return database, nil
}

func (mt *MetaTable) GetDatabase(ctx context.Context, getDatabase *model.GetDatabase) (*model.Database, error) {
	mt.ddLock.RLock()
	defer mt.ddLock.RUnlock()

	tenant := getDatabase.Tenant
	if _, ok := mt.tenantDatabaseCache[tenant]; !ok {
		return nil, common.ErrTenantNotFound
	}
	database, ok := mt.tenantDatabaseCache[tenant][getDatabase.Name]
	if !ok {
		return nil, common.ErrDatabaseNotFound
	}
	return database, nil
}

func (mt *MetaTable) ListDatabases(ctx context.Context, listDatabases *model.ListDatabases) ([]*model.Database, error) {
	mt.ddLock.RLock()
	defer mt.ddLock.RUnlock()

	byName, ok := mt.tenantDatabaseCache[listDatabases.Tenant]
	if !ok {
		return nil, common.ErrTenantNotFound
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	databases := make([]*model.Database, 0, len(names))
	for _, name := range names {
		databases = append(databases, byName[name])
	}

	if listDatabases.Offset != nil {
		offset := int(*listDatabases.Offset)
		if offset >= len(databases) {
			return []*model.Database{}, nil
		}
		databases = databases[offset:]
	}
	if listDatabases.Limit != nil {
		limit := int(*listDatabases.Limit)
		if limit < len(databases) {
			databases = databases[:limit]
		}
	}
	return databases, nil
}

func (mt *MetaTable) CreateTenant(ctx context.Context, createTenant *model.CreateTenant) (*model.Tenant, error) {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	if _, ok := mt.tenantDatabaseCache[createTenant.Name]; ok {
		return nil, common.ErrTenantUniqueConstraintViolation
	}
	tenant, err := mt.catalog.CreateTenant(ctx, createTenant, createTenant.Ts)
	if err != nil {
		return nil, err
	}
	mt.tenantDatabaseCache[createTenant.Name] = make(map[string]*model.Database)
	mt.tenantDatabaseCollectionCache[createTenant.Name] = make(map[string]map[types.UniqueID]*model.Collection)
	return tenant, nil
}

func (mt *MetaTable) GetTenant(ctx context.Context, getTenant *model.GetTenant) (*model.Tenant, error) {
	mt.ddLock.RLock()
	defer mt.ddLock.RUnlock()
	if _, ok := mt.tenantDatabaseCache[getTenant.Name]; !ok {
		return nil, common.ErrTenantNotFound
	}
	return &model.Tenant{Name: getTenant.Name}, nil
}

func (mt *MetaTable) AddCollection(ctx context.Context, createCollection *model.CreateCollection) (*model.Collection, error) {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	tenantID := createCollection.TenantID
	databaseName := createCollection.DatabaseName
	if _, ok := mt.tenantDatabaseCollectionCache[tenantID]; !ok {
		return nil, common.ErrTenantNotFound
	}
	if _, ok := mt.tenantDatabaseCollectionCache[tenantID][databaseName]; !ok {
		return nil, common.ErrDatabaseNotFound
	}
	collection, err := mt.catalog.CreateCollection(ctx, createCollection, createCollection.Ts)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrCollectionUniqueConstraintViolation
		}
		return nil, err
	}
	mt.tenantDatabaseCollectionCache[tenantID][databaseName][collection.ID] = collection

	if mt.notificationProcessor != nil {
		mt.notificationProcessor.Trigger(ctx, notification.TriggerMessage{
			Msg: model.Notification{
				CollectionID: collection.ID,
				Type:         model.NotificationTypeCreateCollection,
				Status:       model.NotificationStatusPending,
			},
			ResultChan: make(chan error, 1),
		})
	}
	return collection, nil
}

func (mt *MetaTable) GetCollections(ctx context.Context, collectionID types.UniqueID, collectionName *string, collectionTopic *string, tenantID string, databaseName string) ([]*model.Collection, error) {
	mt.ddLock.RLock()
	defer mt.ddLock.RUnlock()

	var collections []*model.Collection
	if collectionID != types.NilUniqueID() {
		for _, databases := range mt.tenantDatabaseCollectionCache {
			for _, byID := range databases {
				for _, collection := range byID {
					if model.FilterCollection(collection, collectionID, collectionName, collectionTopic) {
						collections = append(collections, collection)
					}
				}
			}
		}
		return collections, nil
	}

	if _, ok := mt.tenantDatabaseCollectionCache[tenantID]; !ok {
		return nil, common.ErrTenantNotFound
	}
	byID, ok := mt.tenantDatabaseCollectionCache[tenantID][databaseName]
	if !ok {
		return nil, common.ErrDatabaseNotFound
	}
	for _, collection := range byID {
		if model.FilterCollection(collection, collectionID, collectionName, collectionTopic) {
			collections = append(collections, collection)
		}
	}
	return collections, nil
}

func (mt *MetaTable) DeleteCollection(ctx context.Context, deleteCollection *model.DeleteCollection) error {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	tenantID := deleteCollection.TenantID
	databaseName := deleteCollection.DatabaseName
	collectionID := deleteCollection.ID
	if _, ok := mt.tenantDatabaseCollectionCache[tenantID]; !ok {
		return common.ErrTenantNotFound
	}
	collections, ok := mt.tenantDatabaseCollectionCache[tenantID][databaseName]
	if !ok {
		return common.ErrDatabaseNotFound
	}
	if _, ok := collections[collectionID]; !ok {
		return common.ErrCollectionDeleteNonExistingCollection
	}

	if err := mt.catalog.DeleteCollection(ctx, deleteCollection); err != nil {
		return err
	}
	delete(collections, collectionID)

	if mt.notificationProcessor != nil {
		mt.notificationProcessor.Trigger(ctx, notification.TriggerMessage{
			Msg: model.Notification{
				CollectionID: collectionID,
				Type:         model.NotificationTypeDeleteCollection,
				Status:       model.NotificationStatusPending,
			},
			ResultChan: make(chan error, 1),
		})
	}
	return nil
}

func (mt *MetaTable) UpdateCollection(ctx context.Context, updateCollection *model.UpdateCollection) (*model.Collection, error) {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	var oldCollection *model.Collection
outer:
	for _, databases := range mt.tenantDatabaseCollectionCache {
		for _, byID := range databases {
			if c, ok := byID[updateCollection.ID]; ok {
				oldCollection = c
				break outer
			}
		}
	}
	if oldCollection == nil {
		return nil, common.ErrCollectionNotFound
	}

	updateCollection.DatabaseName = oldCollection.DatabaseName
	updateCollection.TenantID = oldCollection.TenantID

	collection, err := mt.catalog.UpdateCollection(ctx, updateCollection, updateCollection.Ts)
	if err != nil {
		return nil, err
	}
	mt.tenantDatabaseCollectionCache[collection.TenantID][collection.DatabaseName][collection.ID] = collection
	return collection, nil
}

func (mt *MetaTable) SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	if err := mt.catalog.SetCollectionLogOffset(ctx, setLogOffset); err != nil {
		return err
	}
	for _, byID := range mt.tenantDatabaseCollectionCache {
		for _, collections := range byID {
			if collection, ok := collections[setLogOffset.ID]; ok {
				updated := *collection
				updated.LogPosition = setLogOffset.LogPosition
				collections[setLogOffset.ID] = &updated
				return nil
			}
		}
	}
	return common.ErrCollectionNotFound
}

func (mt *MetaTable) AddSegment(ctx context.Context, createSegment *model.CreateSegment) error {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	segment, err := mt.catalog.CreateSegment(ctx, createSegment, createSegment.Ts)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrSegmentUniqueConstraintViolation
		}
		return err
	}
	mt.segmentsCache[createSegment.ID] = segment
	log.Info("segment added", zap.Any("segment", segment))
	return nil
}

func (mt *MetaTable) GetSegments(ctx context.Context, segmentID types.UniqueID, segmentType *string, scope *model.SegmentScope, collectionID types.UniqueID) ([]*model.Segment, error) {
	mt.ddLock.RLock()
	defer mt.ddLock.RUnlock()

	segments := make([]*model.Segment, 0, len(mt.segmentsCache))
	for _, segment := range mt.segmentsCache {
		if model.FilterSegments(segment, segmentID, segmentType, scope, collectionID) {
			segments = append(segments, segment)
		}
	}
	return segments, nil
}

func (mt *MetaTable) DeleteSegment(ctx context.Context, segmentID types.UniqueID) error {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	if _, ok := mt.segmentsCache[segmentID]; !ok {
		return common.ErrSegmentDeleteNonExistingSegment
	}
	if err := mt.catalog.DeleteSegment(ctx, segmentID); err != nil {
		return err
	}
	delete(mt.segmentsCache, segmentID)
	return nil
}

func (mt *MetaTable) UpdateSegment(ctx context.Context, updateSegment *model.UpdateSegment) (*model.Segment, error) {
	mt.ddLock.Lock()
	defer mt.ddLock.Unlock()

	segment, err := mt.catalog.UpdateSegment(ctx, updateSegment, updateSegment.Ts)
	if err != nil {
		return nil, err
	}
	mt.segmentsCache[updateSegment.ID] = segment
	return segment, nil
}
