package dbmodel

import (
	"time"

	"github.com/corevecdb/corevec/pkg/types"
)

type Database struct {
	ID        string          `gorm:"id;primaryKey"`
	Name      string          `gorm:"name"`
	TenantID  string          `gorm:"tenant_id"`
	Ts        types.Timestamp `gorm:"ts;type:bigint;default:0"`
	IsDeleted bool            `gorm:"is_deleted;type:bool;default:false"`
	CreatedAt time.Time       `gorm:"created_at;type:timestamp;not null;default:current_timestamp"`
	UpdatedAt time.Time       `gorm:"updated_at;type:timestamp;not null;default:current_timestamp"`
}

func (Database) TableName() string {
	return "databases"
}

type IDatabaseDb interface {
	GetAllDatabases() ([]*Database, error)
	GetDatabases(tenantID string, databaseName string) ([]*Database, error)
	GetDatabasesByTenantID(tenantID string) ([]*Database, error)
	Insert(in *Database) error
	DeleteAll() error
}
