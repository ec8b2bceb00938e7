package dao

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm/clause"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/pingcap/log"
)

type collectionDb struct {
	db *gorm.DB
}

var _ dbmodel.ICollectionDb = &collectionDb{}

func (s *collectionDb) DeleteAll() error {
	return s.db.Where("1 = 1").Delete(&dbmodel.Collection{}).Error
}

func (s *collectionDb) GetCollections(id *string, name *string, databaseName string, tenantID string) ([]*dbmodel.CollectionAndMetadata, error) {
	var logLine strings.Builder
	logLine.WriteString("GetCollections: ")

	query := s.db.Table("collections").
		Select("collections.id, collections.log_position, collections.topic, collections.configuration, collections.name, collections.dimension, collections.database_id, collections.created_at, databases.name, databases.tenant_id, collection_metadata.key, collection_metadata.str_value, collection_metadata.int_value, collection_metadata.float_value").
		Joins("LEFT JOIN collection_metadata ON collections.id = collection_metadata.collection_id").
		Joins("INNER JOIN databases ON collections.database_id = databases.id").
		Order("collections.id")

	if databaseName != "" {
		query = query.Where("databases.name = ?", databaseName)
		logLine.WriteString("databases.name=" + databaseName + " ")
	}
	if tenantID != "" {
		query = query.Where("databases.tenant_id = ?", tenantID)
		logLine.WriteString("databases.tenant_id=" + tenantID + " ")
	}
	if id != nil {
		query = query.Where("collections.id = ?", *id)
		logLine.WriteString("collections.id=" + *id + " ")
	}
	if name != nil {
		query = query.Where("collections.name = ?", *name)
		logLine.WriteString("collections.name=" + *name + " ")
	}
	log.Debug(logLine.String())

	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*dbmodel.CollectionAndMetadata
	currentCollectionID := ""
	var metadata []*dbmodel.CollectionMetadata
	var current *dbmodel.CollectionAndMetadata

	for rows.Next() {
		var (
			collectionID        string
			logPosition         int64
			topic               sql.NullString
			configuration       []byte
			collectionName      string
			collectionDimension sql.NullInt32
			databaseID          string
			createdAt           sql.NullTime
			dbName              string
			dbTenantID          string
			key                 sql.NullString
			strValue            sql.NullString
			intValue            sql.NullInt64
			floatValue          sql.NullFloat64
		)

		if err := rows.Scan(&collectionID, &logPosition, &topic, &configuration, &collectionName, &collectionDimension,
			&databaseID, &createdAt, &dbName, &dbTenantID, &key, &strValue, &intValue, &floatValue); err != nil {
			log.Error("scan collection row failed", zap.Error(err))
			return nil, err
		}

		if collectionID != currentCollectionID {
			currentCollectionID = collectionID
			metadata = nil
			current = &dbmodel.CollectionAndMetadata{
				Collection: &dbmodel.Collection{
					ID:            collectionID,
					Name:          collectionName,
					DatabaseID:    databaseID,
					LogPosition:   logPosition,
					Configuration: configuration,
				},
				TenantID:     dbTenantID,
				DatabaseName: dbName,
			}
			if topic.Valid {
				current.Collection.Topic = topic.String
			}
			if collectionDimension.Valid {
				current.Collection.Dimension = &collectionDimension.Int32
			}
			if createdAt.Valid {
				current.Collection.CreatedAt = createdAt.Time
			}
			collections = append(collections, current)
		}

		if key.Valid {
			entry := &dbmodel.CollectionMetadata{CollectionID: collectionID, Key: &key.String}
			if strValue.Valid {
				entry.StrValue = &strValue.String
			}
			if intValue.Valid {
				entry.IntValue = &intValue.Int64
			}
			if floatValue.Valid {
				entry.FloatValue = &floatValue.Float64
			}
			metadata = append(metadata, entry)
			current.CollectionMetadata = metadata
		}
	}
	return collections, nil
}

func (s *collectionDb) GetCollectionByTopic(topic string) (*dbmodel.Collection, error) {
	var collection dbmodel.Collection
	if err := s.db.Where("topic = ?", topic).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (s *collectionDb) DeleteCollectionByID(collectionID string) (int, error) {
	var collections []dbmodel.Collection
	err := s.db.Clauses(clause.Returning{}).Where("id = ?", collectionID).Delete(&collections).Error
	return len(collections), err
}

func (s *collectionDb) Insert(in *dbmodel.Collection) error {
	if err := s.db.Create(in).Error; err != nil {
		log.Error("create collection failed", zap.Error(err))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrCollectionUniqueConstraintViolation
		}
		return err
	}
	return nil
}

func (s *collectionDb) Update(in *dbmodel.UpdateCollection) error {
	log.Info("update collection", zap.String("id", in.ID))
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Dimension != nil {
		updates["dimension"] = *in.Dimension
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&dbmodel.Collection{}).Where("id = ?", in.ID).Updates(updates).Error
}

func (s *collectionDb) UpdateLogPosition(collectionID string, logPosition int64) error {
	result := s.db.Model(&dbmodel.Collection{}).Where("id = ?", collectionID).Update("log_position", logPosition)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrCollectionNotFound
	}
	return nil
}
