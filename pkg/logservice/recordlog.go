package logservice

import (
	"context"
	"time"

	"github.com/corevecdb/corevec/pkg/logservice/db/dao"
	"github.com/corevecdb/corevec/pkg/logservice/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// CatalogOffsetSetter is the Coordinator surface the Log Service mirrors a
// compaction advance into (spec §9 Open Question (a): the Log Service is
// the sole writer of collections.log_position).
type CatalogOffsetSetter interface {
	SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error
}

var _ ILogService = (*RecordLog)(nil)

type RecordLog struct {
	ctx         context.Context
	recordLogDb dao.IRecordLogDb
	catalog     CatalogOffsetSetter
}

func NewLogService(ctx context.Context, recordLogDb dao.IRecordLogDb, catalog CatalogOffsetSetter) *RecordLog {
	return &RecordLog{ctx: ctx, recordLogDb: recordLogDb, catalog: catalog}
}

func (s *RecordLog) Start() error {
	log.Info("log service starting")
	return nil
}

func (s *RecordLog) Stop() error {
	log.Info("log service stopping")
	return nil
}

func (s *RecordLog) PushLogs(ctx context.Context, collectionID types.UniqueID, records [][]byte) (int, error) {
	timestampNs := time.Now().UnixNano()
	count, err := s.recordLogDb.PushLogs(ctx, collectionID.String(), timestampNs, records)
	if err != nil {
		log.Error("PushLogs failed", zap.String("collectionID", collectionID.String()), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (s *RecordLog) PullLogs(ctx context.Context, collectionID types.UniqueID, startOffset int64, batchSize int) ([]*dbmodel.RecordLog, error) {
	return s.recordLogDb.PullLogs(ctx, collectionID.String(), startOffset, batchSize)
}

func (s *RecordLog) GetAllCollectionInfoToCompact(ctx context.Context, minCompactionSize int64) ([]*dbmodel.CollectionToCompact, error) {
	return s.recordLogDb.GetAllCollectionInfoToCompact(ctx, minCompactionSize)
}

// UpdateCollectionLogOffset advances compaction_offset in the Log Store and
// mirrors the new value into the catalog's collections.log_position in the
// same call (Open Question (a)): these are two different databases, so this
// is not one shared SQL transaction, but the Log Store write happens first
// and only a successful Log Store write triggers the catalog mirror.
func (s *RecordLog) UpdateCollectionLogOffset(ctx context.Context, collectionID types.UniqueID, newOffset int64) error {
	if err := s.recordLogDb.UpdateCollectionLogOffset(ctx, collectionID.String(), newOffset); err != nil {
		return err
	}
	if s.catalog == nil {
		return nil
	}
	if err := s.catalog.SetCollectionLogOffset(ctx, &model.SetCollectionLogOffset{ID: collectionID, LogPosition: newOffset}); err != nil {
		log.Error("failed to mirror compaction offset into the catalog", zap.String("collectionID", collectionID.String()), zap.Int64("offset", newOffset), zap.Error(err))
		return err
	}
	return nil
}

func (s *RecordLog) PurgeLogs(ctx context.Context) error {
	return s.recordLogDb.PurgeLogs(ctx)
}

func (s *RecordLog) ListCollectionLogStates(ctx context.Context) ([]*dbmodel.CollectionLogState, error) {
	return s.recordLogDb.ListCollectionLogStates(ctx)
}
