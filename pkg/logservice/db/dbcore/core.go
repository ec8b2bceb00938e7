// Package dbcore owns the Log Store's connection. It is deliberately a
// separate pool from pkg/metastore/db/dbcore: the Log Store and Catalog
// Store are different databases, matching the teacher's split between
// pkg/metastore/db and pkg/logservice/db.
package dbcore

import (
	"fmt"

	"github.com/corevecdb/corevec/pkg/logservice/db/dbmodel"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
)

type DBConfig struct {
	Provider     string // "postgres" or "sqlite"
	Username     string
	Password     string
	Address      string
	Port         int
	DBName       string
	MaxIdleConns int
	MaxOpenConns int
	SslMode      string
}

func Connect(cfg DBConfig) (*gorm.DB, error) {
	if cfg.Provider == "sqlite" {
		dsn := cfg.DBName
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Error("failed to open in-memory log store", zap.Error(err))
			return nil, err
		}
		return db, nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Address, cfg.Username, cfg.Password, cfg.DBName, cfg.Port, cfg.SslMode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{CreateBatchSize: 100})
	if err != nil {
		log.Error("failed to connect to log store", zap.String("host", cfg.Address), zap.Error(err))
		return nil, err
	}
	idb, err := db.DB()
	if err != nil {
		return nil, err
	}
	idb.SetMaxIdleConns(cfg.MaxIdleConns)
	idb.SetMaxOpenConns(cfg.MaxOpenConns)
	return db, nil
}

func CreateSchema(db *gorm.DB) error {
	return db.AutoMigrate(&dbmodel.RecordLog{}, &dbmodel.CollectionLogState{})
}

// ConfigInMemoryDatabaseForTesting backs fast unit tests with sqlite,
// mirroring pkg/metastore/db/dbcore.ConfigInMemoryDatabaseForTesting.
func ConfigInMemoryDatabaseForTesting() (*gorm.DB, error) {
	db, err := Connect(DBConfig{Provider: "sqlite", DBName: "file::memory:?cache=shared"})
	if err != nil {
		return nil, err
	}
	if err := CreateSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}
