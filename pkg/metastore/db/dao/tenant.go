package dao

import (
	"errors"
	"time"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tenantDb struct {
	db *gorm.DB
}

var _ dbmodel.ITenantDb = &tenantDb{}

func (s *tenantDb) DeleteAll() error {
	return s.db.Where("1 = 1").Delete(&dbmodel.Tenant{}).Error
}

func (s *tenantDb) GetAllTenants() ([]*dbmodel.Tenant, error) {
	var tenants []*dbmodel.Tenant
	if err := s.db.Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (s *tenantDb) GetTenants(id string) ([]*dbmodel.Tenant, error) {
	var tenants []*dbmodel.Tenant
	if err := s.db.Where("id = ?", id).Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (s *tenantDb) Insert(tenant *dbmodel.Tenant) error {
	if err := s.db.Create(tenant).Error; err != nil {
		log.Error("create tenant failed", zap.Error(err))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrTenantUniqueConstraintViolation
		}
		return err
	}
	return nil
}

func (s *tenantDb) UpdateTenantLastCompactionTime(id string, lastCompactionTime int64) error {
	result := s.db.Model(&dbmodel.Tenant{}).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("id = ?", id).
		Update("last_compaction_time", time.Unix(lastCompactionTime, 0))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrTenantNotFound
	}
	return nil
}

func (s *tenantDb) GetTenantsLastCompactionTime(ids []string) ([]*dbmodel.Tenant, error) {
	var tenants []*dbmodel.Tenant
	if err := s.db.Select("id", "last_compaction_time").Find(&tenants, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
