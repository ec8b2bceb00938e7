// Package dbcore owns the relational catalog's connection and
// context-scoped transaction plumbing, shared by every DAO in
// pkg/metastore/db/dao.
package dbcore

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var globalDB *gorm.DB

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
		return connectSQLite(cfg)
	}
	return connectPostgres(cfg)
}

func connectPostgres(cfg DBConfig) (*gorm.DB, error) {
	log.Info("connecting to postgres catalog store", zap.String("host", cfg.Address), zap.String("database", cfg.DBName), zap.Int("port", cfg.Port))
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Address, cfg.Username, cfg.Password, cfg.DBName, cfg.Port, cfg.SslMode)

	ormLogger := gormlogger.Default
	ormLogger.LogMode(gormlogger.Warn)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:          ormLogger,
		CreateBatchSize: 100,
	})
	if err != nil {
		log.Error("failed to connect to catalog store", zap.String("host", cfg.Address), zap.Error(err))
		return nil, err
	}

	idb, err := db.DB()
	if err != nil {
		return nil, err
	}
	idb.SetMaxIdleConns(cfg.MaxIdleConns)
	idb.SetMaxOpenConns(cfg.MaxOpenConns)

	globalDB = db
	log.Info("catalog store connected", zap.String("database", cfg.DBName))
	return db, nil
}

// connectSQLite backs the catalog.provider=memory path: the "memory"
// provider still runs through the same DAO/SQL layer as Postgres, only the
// dialect changes, so its behavior (uniqueness, transactions) stays honest.
func connectSQLite(cfg DBConfig) (*gorm.DB, error) {
	dsn := cfg.DBName
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error("failed to open in-memory catalog store", zap.Error(err))
		return nil, err
	}
	globalDB = db
	return db, nil
}

// SetGlobalDB installs db as the process-wide catalog connection; exported
// for tests that build their own *gorm.DB fixture.
func SetGlobalDB(db *gorm.DB) {
	globalDB = db
}

type ctxTransactionKey struct{}

func CtxWithTransaction(ctx context.Context, tx *gorm.DB) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxTransactionKey{}, tx)
}

type txImpl struct{}

func NewTxImpl() dbmodel.ITransaction {
	return &txImpl{}
}

func (*txImpl) Transaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	db := globalDB.WithContext(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		return fn(CtxWithTransaction(ctx, tx))
	})
}

// GetDB returns the transaction-scoped connection if ctx carries one,
// otherwise the global connection bound to ctx.
func GetDB(ctx context.Context) *gorm.DB {
	iface := ctx.Value(ctxTransactionKey{})
	if iface != nil {
		tx, ok := iface.(*gorm.DB)
		if !ok {
			log.Error("unexpected transaction context value type", zap.Any("type", reflect.TypeOf(iface)))
			return nil
		}
		return tx
	}
	return globalDB.WithContext(ctx)
}

func CreateDefaultTenantAndDatabase(db *gorm.DB) string {
	defaultTenant := &dbmodel.Tenant{
		ID:                 common.DefaultTenant,
		LastCompactionTime: time.Now(),
	}
	db.Model(&dbmodel.Tenant{}).Where("id = ?", common.DefaultTenant).FirstOrCreate(defaultTenant)

	var databases []dbmodel.Database
	result := db.Model(&dbmodel.Database{}).
		Where("name = ?", common.DefaultDatabase).
		Where("tenant_id = ?", common.DefaultTenant).
		Find(&databases)
	if result.Error != nil {
		return ""
	}
	if len(databases) != 0 {
		return databases[0].ID
	}

	databaseID := types.NewUniqueID().String()
	db.Create(&dbmodel.Database{
		ID:       databaseID,
		Name:     common.DefaultDatabase,
		TenantID: common.DefaultTenant,
	})
	return databaseID
}

// CreateSchema migrates every catalog table with gorm's AutoMigrate and
// seeds the default tenant and database. It is used for the memory/sqlite
// provider, for tests, and for the Postgres provider alike; there are no
// separate versioned migrations.
func CreateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&dbmodel.Tenant{},
		&dbmodel.Database{},
		&dbmodel.Collection{},
		&dbmodel.CollectionMetadata{},
		&dbmodel.Segment{},
		&dbmodel.SegmentMetadata{},
		&dbmodel.Notification{},
	); err != nil {
		return err
	}
	CreateDefaultTenantAndDatabase(db)
	return nil
}

func GetDBConfigForTesting() DBConfig {
	dbAddress := os.Getenv("POSTGRES_HOST")
	dbPort, _ := strconv.Atoi(os.Getenv("POSTGRES_PORT"))
	return DBConfig{
		Provider:     "postgres",
		Username:     "corevec",
		Password:     "corevec",
		Address:      dbAddress,
		Port:         dbPort,
		DBName:       "corevec",
		MaxIdleConns: 10,
		MaxOpenConns: 100,
		SslMode:      "disable",
	}
}

// ConfigDatabaseForTesting connects to a real Postgres instance (a
// testcontainers-go postgres module in CI) and migrates the schema, mirroring
// the relational-path integration suite.
func ConfigDatabaseForTesting() (*gorm.DB, error) {
	db, err := Connect(GetDBConfigForTesting())
	if err != nil {
		return nil, err
	}
	SetGlobalDB(db)
	if err := CreateSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ConfigInMemoryDatabaseForTesting backs fast unit tests with sqlite rather
// than a Postgres testcontainer.
func ConfigInMemoryDatabaseForTesting() (*gorm.DB, error) {
	db, err := Connect(DBConfig{Provider: "sqlite", DBName: "file::memory:?cache=shared"})
	if err != nil {
		return nil, err
	}
	SetGlobalDB(db)
	if err := CreateSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}
