package coordinator

import (
	"context"

	"github.com/corevecdb/corevec/pkg/assignment"
	"github.com/corevecdb/corevec/pkg/metastore"
	catalogstore "github.com/corevecdb/corevec/pkg/metastore/coordinator"
	"github.com/corevecdb/corevec/pkg/metastore/db/dao"
	"github.com/corevecdb/corevec/pkg/metastore/db/dbcore"
	"github.com/corevecdb/corevec/pkg/notification"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Coordinator wires the relational Catalog Store, the in-memory cache in
// front of it, and the Assignment Policy and notification processor that
// give a collection mutation its side effects (spec §4.3).
type Coordinator struct {
	ctx                        context.Context
	meta                       IMeta
	collectionAssignmentPolicy assignment.CollectionAssignmentPolicy
	notificationProcessor      notification.NotificationProcessor
}

var _ ICoordinator = (*Coordinator)(nil)

// Config selects the Assignment Policy, the notification sink and the
// segment scope policy; everything else about the Coordinator is fixed by
// spec §4.3.
type Config struct {
	AssignmentPolicy assignment.CollectionAssignmentPolicy
	Notifier         notification.Notifier
	ScopePolicy      metastore.SegmentScopePolicy
}

// NewCoordinator builds a Coordinator over db. There is no separate
// map-based "memory" catalog: the in-memory provider is this same
// relational stack pointed at a sqlite *gorm.DB (see dbcore.Connect), so its
// uniqueness and transaction semantics match production.
func NewCoordinator(ctx context.Context, db *gorm.DB, cfg Config) (*Coordinator, error) {
	txImpl := dbcore.NewTxImpl()
	metaDomain := dao.NewMetaDomain()

	catalog := catalogstore.NewTableCatalog(txImpl, metaDomain)
	if cfg.ScopePolicy != nil {
		catalog = catalog.WithScopePolicy(cfg.ScopePolicy)
	}

	metaTable, err := NewMetaTable(ctx, catalog)
	if err != nil {
		return nil, err
	}

	assignmentPolicy := cfg.AssignmentPolicy
	if assignmentPolicy == nil {
		assignmentPolicy = assignment.NewSimplePolicy("default", "default")
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notification.NewMemoryNotifier()
	}
	store := notification.NewDatabaseNotificationStore(txImpl, metaDomain)
	processor := notification.NewSimpleNotificationProcessor(ctx, store, notifier)
	metaTable.SetNotificationProcessor(processor)

	s := &Coordinator{
		ctx:                        ctx,
		meta:                       metaTable,
		collectionAssignmentPolicy: assignmentPolicy,
		notificationProcessor:      processor,
	}
	return s, nil
}

func (s *Coordinator) Start() error {
	log.Info("starting coordinator")
	return s.notificationProcessor.Start()
}

func (s *Coordinator) Stop() error {
	log.Info("stopping coordinator")
	return s.notificationProcessor.Stop()
}

func (s *Coordinator) assignCollection(collectionID types.UniqueID) (string, error) {
	topic, err := s.collectionAssignmentPolicy.AssignCollection(collectionID)
	if err != nil {
		log.Error("failed to assign collection to a log partition", zap.String("collectionID", collectionID.String()), zap.Error(err))
		return "", err
	}
	return topic, nil
}
