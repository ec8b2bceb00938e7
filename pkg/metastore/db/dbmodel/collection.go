package dbmodel

import (
	"time"

	"github.com/corevecdb/corevec/pkg/types"
)

// Collection mirrors spec §6's relational schema. Dimension is nullable and,
// once set to a non-nil value, immutable (spec I4) — enforced at the
// catalog.Catalog layer, not here.
type Collection struct {
	ID            string          `gorm:"id;primaryKey"`
	Name          string          `gorm:"name"`
	DatabaseID    string          `gorm:"database_id"`
	Dimension     *int32          `gorm:"dimension"`
	Topic         string          `gorm:"topic"`
	LogPosition   int64           `gorm:"log_position;default:0"`
	Configuration []byte          `gorm:"configuration"`
	Ts            types.Timestamp `gorm:"ts;type:bigint;default:0"`
	IsDeleted     bool            `gorm:"is_deleted;type:bool;default:false"`
	CreatedAt     time.Time       `gorm:"created_at;type:timestamp;not null;default:current_timestamp"`
	UpdatedAt     time.Time       `gorm:"updated_at;type:timestamp;not null;default:current_timestamp"`
}

func (Collection) TableName() string {
	return "collections"
}

type CollectionAndMetadata struct {
	Collection         *Collection
	CollectionMetadata []*CollectionMetadata
	TenantID           string
	DatabaseName       string
}

type UpdateCollection struct {
	ID        string
	Name      *string
	Dimension *int32
}

type ICollectionDb interface {
	GetCollections(id *string, name *string, databaseName string, tenantID string) ([]*CollectionAndMetadata, error)
	GetCollectionByTopic(topic string) (*Collection, error)
	Insert(in *Collection) error
	Update(in *UpdateCollection) error
	DeleteCollectionByID(collectionID string) (int, error)
	UpdateLogPosition(collectionID string, logPosition int64) error
	DeleteAll() error
}
