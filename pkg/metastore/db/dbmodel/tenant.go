package dbmodel

import (
	"time"

	"github.com/corevecdb/corevec/pkg/types"
)

// Tenant's ID column holds the tenant's name: tenants have no surrogate key
// (spec §3).
type Tenant struct {
	ID                 string          `gorm:"id;primaryKey;unique"`
	Ts                 types.Timestamp `gorm:"ts;type:bigint;default:0"`
	IsDeleted          bool            `gorm:"is_deleted;type:bool;default:false"`
	CreatedAt          time.Time       `gorm:"created_at;type:timestamp;not null;default:current_timestamp"`
	UpdatedAt          time.Time       `gorm:"updated_at;type:timestamp;not null;default:current_timestamp"`
	LastCompactionTime time.Time       `gorm:"last_compaction_time;type:timestamp;not null;default:current_timestamp"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type ITenantDb interface {
	GetAllTenants() ([]*Tenant, error)
	GetTenants(id string) ([]*Tenant, error)
	Insert(in *Tenant) error
	UpdateTenantLastCompactionTime(id string, lastCompactionTime int64) error
	GetTenantsLastCompactionTime(ids []string) ([]*Tenant, error)
	DeleteAll() error
}
