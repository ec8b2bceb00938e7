// Package coordinator holds the relational Catalog Store implementation:
// the GORM-backed metastore.Catalog plus its dbmodel<->model conversions.
package coordinator

import (
	"context"
	"time"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/metastore"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Catalog is the system catalog backed by a relational store through GORM.
type Catalog struct {
	metaDomain  dbmodel.IMetaDomain
	txImpl      dbmodel.ITransaction
	scopePolicy metastore.SegmentScopePolicy
}

func NewTableCatalog(txImpl dbmodel.ITransaction, metaDomain dbmodel.IMetaDomain) *Catalog {
	return &Catalog{
		txImpl:      txImpl,
		metaDomain:  metaDomain,
		scopePolicy: metastore.OneSegmentPerSystemScope{},
	}
}

// WithScopePolicy overrides the default one-segment-per-scope enforcement
// (spec §9 Open Question b).
func (tc *Catalog) WithScopePolicy(policy metastore.SegmentScopePolicy) *Catalog {
	tc.scopePolicy = policy
	return tc
}

var _ metastore.Catalog = (*Catalog)(nil)

func (tc *Catalog) ResetState(ctx context.Context) error {
	return tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		if err := tc.metaDomain.CollectionMetadataDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting collection metadata", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.CollectionDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting collections", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.SegmentMetadataDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting segment metadata", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.SegmentDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting segments", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.NotificationDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting notifications", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.DatabaseDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting databases", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.DatabaseDb(txCtx).Insert(&dbmodel.Database{
			ID:       types.NilUniqueID().String(),
			Name:     common.DefaultDatabase,
			TenantID: common.DefaultTenant,
		}); err != nil {
			log.Error("error inserting default database", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.TenantDb(txCtx).DeleteAll(); err != nil {
			log.Error("error resetting tenants", zap.Error(err))
			return err
		}
		if err := tc.metaDomain.TenantDb(txCtx).Insert(&dbmodel.Tenant{
			ID:                 common.DefaultTenant,
			LastCompactionTime: time.Now(),
		}); err != nil {
			log.Error("error inserting default tenant", zap.Error(err))
			return err
		}
		return nil
	})
}

func (tc *Catalog) CreateDatabase(ctx context.Context, createDatabase *model.CreateDatabase, ts types.Timestamp) (*model.Database, error) {
	var result *model.Database
	err := tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		if err := tc.metaDomain.DatabaseDb(txCtx).Insert(&dbmodel.Database{
			ID:       createDatabase.ID,
			Name:     createDatabase.Name,
			TenantID: createDatabase.Tenant,
			Ts:       ts,
		}); err != nil {
			log.Error("error inserting database", zap.Error(err))
			return err
		}
		databases, err := tc.metaDomain.DatabaseDb(txCtx).GetDatabases(createDatabase.Tenant, createDatabase.Name)
		if err != nil {
			return err
		}
		result = convertDatabaseToModel(databases[0])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (tc *Catalog) GetDatabases(ctx context.Context, getDatabase *model.GetDatabase, ts types.Timestamp) (*model.Database, error) {
	databases, err := tc.metaDomain.DatabaseDb(ctx).GetDatabases(getDatabase.Tenant, getDatabase.Name)
	if err != nil {
		return nil, err
	}
	if len(databases) == 0 {
		return nil, common.ErrDatabaseNotFound
	}
	return convertDatabaseToModel(databases[0]), nil
}

func (tc *Catalog) GetAllDatabases(ctx context.Context, ts types.Timestamp) ([]*model.Database, error) {
	databases, err := tc.metaDomain.DatabaseDb(ctx).GetAllDatabases()
	if err != nil {
		return nil, err
	}
	result := make([]*model.Database, 0, len(databases))
	for _, db := range databases {
		result = append(result, convertDatabaseToModel(db))
	}
	return result, nil
}

func (tc *Catalog) CreateTenant(ctx context.Context, createTenant *model.CreateTenant, ts types.Timestamp) (*model.Tenant, error) {
	var result *model.Tenant
	err := tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		if err := tc.metaDomain.TenantDb(txCtx).Insert(&dbmodel.Tenant{
			ID:                 createTenant.Name,
			Ts:                 ts,
			LastCompactionTime: time.Now(),
		}); err != nil {
			return err
		}
		tenants, err := tc.metaDomain.TenantDb(txCtx).GetTenants(createTenant.Name)
		if err != nil {
			return err
		}
		result = convertTenantToModel(tenants[0])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (tc *Catalog) GetTenants(ctx context.Context, getTenant *model.GetTenant, ts types.Timestamp) (*model.Tenant, error) {
	tenants, err := tc.metaDomain.TenantDb(ctx).GetTenants(getTenant.Name)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, common.ErrTenantNotFound
	}
	return convertTenantToModel(tenants[0]), nil
}

func (tc *Catalog) GetAllTenants(ctx context.Context, ts types.Timestamp) ([]*model.Tenant, error) {
	tenants, err := tc.metaDomain.TenantDb(ctx).GetAllTenants()
	if err != nil {
		return nil, err
	}
	result := make([]*model.Tenant, 0, len(tenants))
	for _, t := range tenants {
		result = append(result, convertTenantToModel(t))
	}
	return result, nil
}

func (tc *Catalog) SetTenantLastCompactionTime(ctx context.Context, tenantID string, lastCompactionTime int64) error {
	return tc.metaDomain.TenantDb(ctx).UpdateTenantLastCompactionTime(tenantID, lastCompactionTime)
}

func (tc *Catalog) GetTenantsLastCompactionTime(ctx context.Context, tenantIDs []string) ([]*model.Tenant, error) {
	tenants, err := tc.metaDomain.TenantDb(ctx).GetTenantsLastCompactionTime(tenantIDs)
	if err != nil {
		return nil, err
	}
	result := make([]*model.Tenant, 0, len(tenants))
	for _, t := range tenants {
		result = append(result, convertTenantToModel(t))
	}
	return result, nil
}

func (tc *Catalog) CreateCollection(ctx context.Context, createCollection *model.CreateCollection, ts types.Timestamp) (*model.Collection, error) {
	var result *model.Collection
	err := tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		databaseName := createCollection.DatabaseName
		tenantID := createCollection.TenantID
		databases, err := tc.metaDomain.DatabaseDb(txCtx).GetDatabases(tenantID, databaseName)
		if err != nil {
			return err
		}
		if len(databases) == 0 {
			return common.ErrDatabaseNotFound
		}

		collectionName := createCollection.Name
		existing, err := tc.metaDomain.CollectionDb(txCtx).GetCollections(nil, &collectionName, databaseName, tenantID)
		if err != nil {
			return err
		}
		if len(existing) != 0 {
			if !createCollection.GetOrCreate {
				return common.ErrCollectionUniqueConstraintViolation
			}
			collection := convertCollectionToModel(existing)[0]
			if createCollection.Metadata != nil && !createCollection.Metadata.Equals(collection.Metadata) {
				updated, err := tc.UpdateCollection(ctx, &model.UpdateCollection{
					ID:           collection.ID,
					Metadata:     createCollection.Metadata,
					TenantID:     tenantID,
					DatabaseName: databaseName,
				}, ts)
				if err != nil {
					return err
				}
				result = updated
			} else {
				result = collection
			}
			return nil
		}

		dbCollection := &dbmodel.Collection{
			ID:            createCollection.ID.String(),
			Name:          createCollection.Name,
			DatabaseID:    databases[0].ID,
			Dimension:     createCollection.Dimension,
			Topic:         createCollection.Topic,
			Configuration: createCollection.Configuration,
			Ts:            ts,
			LogPosition:   0,
		}
		if err := tc.metaDomain.CollectionDb(txCtx).Insert(dbCollection); err != nil {
			return err
		}

		dbMetadataList := convertCollectionMetadataToDB(createCollection.ID.String(), createCollection.Metadata)
		if len(dbMetadataList) != 0 {
			if err := tc.metaDomain.CollectionMetadataDb(txCtx).Insert(dbMetadataList); err != nil {
				return err
			}
		}

		collections, err := tc.metaDomain.CollectionDb(txCtx).GetCollections(types.FromUniqueID(createCollection.ID), nil, databaseName, tenantID)
		if err != nil {
			return err
		}
		result = convertCollectionToModel(collections)[0]

		return tc.metaDomain.NotificationDb(txCtx).Insert(&dbmodel.Notification{
			CollectionID: result.ID.String(),
			Type:         dbmodel.NotificationTypeCreateCollection,
			Status:       dbmodel.NotificationStatusPending,
		})
	})
	if err != nil {
		log.Error("error creating collection", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (tc *Catalog) GetCollections(ctx context.Context, collectionID types.UniqueID, collectionName *string, tenantID string, databaseName string) ([]*model.Collection, error) {
	collections, err := tc.metaDomain.CollectionDb(ctx).GetCollections(types.FromUniqueID(collectionID), collectionName, databaseName, tenantID)
	if err != nil {
		return nil, err
	}
	return convertCollectionToModel(collections), nil
}

func (tc *Catalog) DeleteCollection(ctx context.Context, deleteCollection *model.DeleteCollection) error {
	return tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		collectionID := deleteCollection.ID
		existing, err := tc.metaDomain.CollectionDb(txCtx).GetCollections(types.FromUniqueID(collectionID), nil, deleteCollection.DatabaseName, deleteCollection.TenantID)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return common.ErrCollectionDeleteNonExistingCollection
		}

		if _, err := tc.metaDomain.CollectionDb(txCtx).DeleteCollectionByID(collectionID.String()); err != nil {
			return err
		}
		if err := tc.metaDomain.CollectionMetadataDb(txCtx).DeleteByCollectionID(collectionID.String()); err != nil {
			return err
		}

		return tc.metaDomain.NotificationDb(txCtx).Insert(&dbmodel.Notification{
			CollectionID: collectionID.String(),
			Type:         dbmodel.NotificationTypeDeleteCollection,
			Status:       dbmodel.NotificationStatusPending,
		})
	})
}

func (tc *Catalog) UpdateCollection(ctx context.Context, updateCollection *model.UpdateCollection, ts types.Timestamp) (*model.Collection, error) {
	var result *model.Collection
	err := tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		// Dimension immutability once set (spec I4, supplemented feature):
		// reject a second non-nil dimension that differs from the current one.
		if updateCollection.Dimension != nil {
			current, err := tc.metaDomain.CollectionDb(txCtx).GetCollections(types.FromUniqueID(updateCollection.ID), nil, updateCollection.DatabaseName, updateCollection.TenantID)
			if err != nil {
				return err
			}
			if len(current) != 0 && current[0].Collection.Dimension != nil && *current[0].Collection.Dimension != *updateCollection.Dimension {
				return common.ErrCollectionDimensionImmutable
			}
		}

		if err := tc.metaDomain.CollectionDb(txCtx).Update(&dbmodel.UpdateCollection{
			ID:        updateCollection.ID.String(),
			Name:      updateCollection.Name,
			Dimension: updateCollection.Dimension,
		}); err != nil {
			return err
		}

		// Case 1: ResetMetadata true, metadata nil -> clear.
		// Case 2: ResetMetadata true, metadata non-nil -> invalid.
		// Case 3: ResetMetadata false, metadata non-nil -> replace.
		// Case 4: ResetMetadata false, metadata nil -> leave as is.
		metadata := updateCollection.Metadata
		if updateCollection.ResetMetadata {
			if metadata != nil {
				return common.ErrInvalidMetadataUpdate
			}
			if err := tc.metaDomain.CollectionMetadataDb(txCtx).DeleteByCollectionID(updateCollection.ID.String()); err != nil {
				return err
			}
		} else if metadata != nil {
			if err := tc.metaDomain.CollectionMetadataDb(txCtx).DeleteByCollectionID(updateCollection.ID.String()); err != nil {
				return err
			}
			dbMetadataList := convertCollectionMetadataToDB(updateCollection.ID.String(), metadata)
			if len(dbMetadataList) != 0 {
				if err := tc.metaDomain.CollectionMetadataDb(txCtx).Insert(dbMetadataList); err != nil {
					return err
				}
			}
		}

		collections, err := tc.metaDomain.CollectionDb(txCtx).GetCollections(types.FromUniqueID(updateCollection.ID), nil, updateCollection.DatabaseName, updateCollection.TenantID)
		if err != nil {
			return err
		}
		if len(collections) == 0 {
			return common.ErrCollectionNotFound
		}
		result = convertCollectionToModel(collections)[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetCollectionLogOffset mirrors a Log Service compaction advance into
// collections.log_position (Open Question a). The Log Service is the only
// caller of this method.
func (tc *Catalog) SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error {
	return tc.metaDomain.CollectionDb(ctx).UpdateLogPosition(setLogOffset.ID.String(), setLogOffset.LogPosition)
}

func (tc *Catalog) CreateSegment(ctx context.Context, createSegment *model.CreateSegment, ts types.Timestamp) (*model.Segment, error) {
	var result *model.Segment
	err := tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		existing, err := tc.metaDomain.SegmentDb(txCtx).GetSegments(types.NilUniqueID(), nil, nil, createSegment.CollectionID)
		if err != nil {
			return err
		}
		existingScopes := make([]model.SegmentScope, 0, len(existing))
		for _, s := range existing {
			existingScopes = append(existingScopes, model.SegmentScope(s.Segment.Scope))
		}
		if !tc.scopePolicy.Admit(createSegment.Scope, existingScopes) {
			return common.ErrSegmentScopeAlreadyTaken
		}

		collectionID := createSegment.CollectionID.String()
		dbSegment := &dbmodel.Segment{
			ID:           createSegment.ID.String(),
			CollectionID: collectionID,
			Type:         createSegment.Type,
			Scope:        string(createSegment.Scope),
			Ts:           ts,
		}
		if err := tc.metaDomain.SegmentDb(txCtx).Insert(dbSegment); err != nil {
			return err
		}

		dbMetadataList := convertSegmentMetadataToDB(createSegment.ID.String(), createSegment.Metadata)
		if len(dbMetadataList) != 0 {
			if err := tc.metaDomain.SegmentMetadataDb(txCtx).Insert(dbMetadataList); err != nil {
				return err
			}
		}

		segments, err := tc.metaDomain.SegmentDb(txCtx).GetSegments(createSegment.ID, nil, nil, types.NilUniqueID())
		if err != nil {
			return err
		}
		result = convertSegmentToModel(segments)[0]
		return nil
	})
	if err != nil {
		log.Error("error creating segment", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (tc *Catalog) GetSegments(ctx context.Context, segmentID types.UniqueID, segmentType *string, scope *model.SegmentScope, collectionID types.UniqueID) ([]*model.Segment, error) {
	var scopeStr *string
	if scope != nil {
		s := string(*scope)
		scopeStr = &s
	}
	segments, err := tc.metaDomain.SegmentDb(ctx).GetSegments(segmentID, segmentType, scopeStr, collectionID)
	if err != nil {
		return nil, err
	}
	return convertSegmentToModel(segments), nil
}

func (tc *Catalog) DeleteSegment(ctx context.Context, segmentID types.UniqueID) error {
	return tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		existing, err := tc.metaDomain.SegmentDb(txCtx).GetSegments(segmentID, nil, nil, types.NilUniqueID())
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return common.ErrSegmentDeleteNonExistingSegment
		}
		if err := tc.metaDomain.SegmentDb(txCtx).DeleteSegmentByID(segmentID.String()); err != nil {
			return err
		}
		return tc.metaDomain.SegmentMetadataDb(txCtx).DeleteBySegmentID(segmentID.String())
	})
}

func (tc *Catalog) UpdateSegment(ctx context.Context, updateSegment *model.UpdateSegment, ts types.Timestamp) (*model.Segment, error) {
	var result *model.Segment
	err := tc.txImpl.Transaction(ctx, func(txCtx context.Context) error {
		dbUpdate := &dbmodel.UpdateSegment{
			ID:              updateSegment.ID.String(),
			Collection:      updateSegment.Collection,
			ResetCollection: updateSegment.ResetCollection,
		}
		if updateSegment.FilePaths != nil {
			dbUpdate.FilePaths = updateSegment.FilePaths
		}
		if err := tc.metaDomain.SegmentDb(txCtx).Update(dbUpdate); err != nil {
			return err
		}

		metadata := updateSegment.Metadata
		if updateSegment.ResetMetadata {
			if metadata != nil {
				return common.ErrInvalidMetadataUpdate
			}
			if err := tc.metaDomain.SegmentMetadataDb(txCtx).DeleteBySegmentID(updateSegment.ID.String()); err != nil {
				return err
			}
		} else if metadata != nil {
			if err := tc.metaDomain.SegmentMetadataDb(txCtx).DeleteBySegmentIDAndKeys(updateSegment.ID.String(), metadata.Keys()); err != nil {
				return err
			}
			dbMetadataList := convertSegmentMetadataToDB(updateSegment.ID.String(), metadata)
			if len(dbMetadataList) != 0 {
				if err := tc.metaDomain.SegmentMetadataDb(txCtx).Insert(dbMetadataList); err != nil {
					return err
				}
			}
		}

		segments, err := tc.metaDomain.SegmentDb(txCtx).GetSegments(updateSegment.ID, nil, nil, types.NilUniqueID())
		if err != nil {
			return err
		}
		if len(segments) == 0 {
			return common.ErrSegmentUpdateNonExistingSegment
		}
		result = convertSegmentToModel(segments)[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
