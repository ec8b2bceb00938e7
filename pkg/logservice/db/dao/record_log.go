// Package dao is the Log Store's GORM-backed implementation (spec §4.4).
package dao

import (
	"context"
	"errors"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/logservice/db/dbmodel"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockery --name=IRecordLogDb
type IRecordLogDb interface {
	PushLogs(ctx context.Context, collectionID string, timestampNs int64, records [][]byte) (int, error)
	PullLogs(ctx context.Context, collectionID string, startOffset int64, batchSize int) ([]*dbmodel.RecordLog, error)
	GetAllCollectionInfoToCompact(ctx context.Context, minCompactionSize int64) ([]*dbmodel.CollectionToCompact, error)
	UpdateCollectionLogOffset(ctx context.Context, collectionID string, newOffset int64) error
	PurgeLogs(ctx context.Context) error
	GetCollectionLogState(ctx context.Context, collectionID string) (*dbmodel.CollectionLogState, error)
	ListCollectionLogStates(ctx context.Context) ([]*dbmodel.CollectionLogState, error)
}

type recordLogDb struct {
	db *gorm.DB
}

func NewRecordLogDb(db *gorm.DB) IRecordLogDb {
	return &recordLogDb{db: db}
}

var _ IRecordLogDb = (*recordLogDb)(nil)

// PushLogs allocates contiguous offsets [enumeration_offset+1 ..
// enumeration_offset+len(records)] for collectionID within a single
// transaction (I1): a partial failure leaves enumeration_offset unchanged
// and inserts no rows. The collection_log_state row is created lazily on a
// collection's first push, matching the teacher's InsertCollectionParams
// fallback in pkg/logservice/db/dao/record_log.go.
func (s *recordLogDb) PushLogs(ctx context.Context, collectionID string, timestampNs int64, records [][]byte) (int, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state dbmodel.CollectionLogState
		err := tx.Clauses().Where("collection_id = ?", collectionID).First(&state).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			state = dbmodel.CollectionLogState{CollectionID: collectionID}
			if err := tx.Create(&state).Error; err != nil {
				return err
			}
		}

		rows := make([]*dbmodel.RecordLog, len(records))
		for i, record := range records {
			rows[i] = &dbmodel.RecordLog{
				CollectionID: collectionID,
				Offset:       state.EnumerationOffset + int64(i) + 1,
				TimestampNs:  timestampNs,
				Record:       record,
			}
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, len(rows)).Error; err != nil {
				log.Error("batch insert of record log rows failed", zap.String("collectionID", collectionID), zap.Error(err))
				return err
			}
		}

		return tx.Model(&dbmodel.CollectionLogState{}).
			Where("collection_id = ?", collectionID).
			Update("enumeration_offset", state.EnumerationOffset+int64(len(records))).Error
	})
	if err != nil {
		log.Error("PushLogs failed", zap.String("collectionID", collectionID), zap.Error(err))
		return 0, err
	}
	return len(records), nil
}

// PullLogs returns a strictly ascending, contiguous slice of rows starting
// at startOffset (P2). An unknown or not-yet-far-enough collection returns
// an empty slice, not an error (spec §4.4).
func (s *recordLogDb) PullLogs(ctx context.Context, collectionID string, startOffset int64, batchSize int) ([]*dbmodel.RecordLog, error) {
	var rows []*dbmodel.RecordLog
	result := s.db.WithContext(ctx).
		Where("collection_id = ? AND \"offset\" >= ?", collectionID, startOffset).
		Order("\"offset\"").
		Limit(batchSize).
		Find(&rows)
	if result.Error != nil {
		log.Error("PullLogs failed", zap.String("collectionID", collectionID), zap.Error(result.Error))
		return nil, result.Error
	}
	return rows, nil
}

// GetAllCollectionInfoToCompact reports, for every collection with
// enumeration_offset - compaction_offset >= minCompactionSize, the first
// uncompacted offset and its timestamp.
func (s *recordLogDb) GetAllCollectionInfoToCompact(ctx context.Context, minCompactionSize int64) ([]*dbmodel.CollectionToCompact, error) {
	var states []*dbmodel.CollectionLogState
	if err := s.db.WithContext(ctx).
		Where("enumeration_offset > compaction_offset AND (enumeration_offset - compaction_offset) >= ?", minCompactionSize).
		Find(&states).Error; err != nil {
		log.Error("GetAllCollectionInfoToCompact failed to load collection log state", zap.Error(err))
		return nil, err
	}

	result := make([]*dbmodel.CollectionToCompact, 0, len(states))
	for _, state := range states {
		firstLogID := state.CompactionOffset + 1
		var row dbmodel.RecordLog
		if err := s.db.WithContext(ctx).
			Where("collection_id = ? AND \"offset\" = ?", state.CollectionID, firstLogID).
			First(&row).Error; err != nil {
			log.Error("GetAllCollectionInfoToCompact missing first uncompacted row", zap.String("collectionID", state.CollectionID), zap.Int64("offset", firstLogID), zap.Error(err))
			return nil, err
		}
		result = append(result, &dbmodel.CollectionToCompact{
			CollectionID: state.CollectionID,
			FirstLogID:   firstLogID,
			FirstLogIDTs: row.TimestampNs,
		})
	}
	return result, nil
}

// UpdateCollectionLogOffset advances compaction_offset, rejecting a
// regressing or out-of-range update (I2, P3).
func (s *recordLogDb) UpdateCollectionLogOffset(ctx context.Context, collectionID string, newOffset int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var state dbmodel.CollectionLogState
		if err := tx.Where("collection_id = ?", collectionID).First(&state).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrCollectionNotFound
			}
			return err
		}
		if newOffset < state.CompactionOffset {
			return common.ErrLogOffsetRegression
		}
		if newOffset > state.EnumerationOffset {
			return common.ErrLogOffsetBeyondEnumeration
		}
		return tx.Model(&dbmodel.CollectionLogState{}).
			Where("collection_id = ?", collectionID).
			Update("compaction_offset", newOffset).Error
	})
}

// PurgeLogs deletes every row whose offset has already been compacted, for
// every collection at once (I3, P4). The correlated subquery keeps this
// portable across the sqlite and postgres dialects.
func (s *recordLogDb) PurgeLogs(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(`
		DELETE FROM record_logs
		WHERE EXISTS (
			SELECT 1 FROM collection_log_state s
			WHERE s.collection_id = record_logs.collection_id
			AND record_logs."offset" <= s.compaction_offset
		)`).Error
}

func (s *recordLogDb) GetCollectionLogState(ctx context.Context, collectionID string) (*dbmodel.CollectionLogState, error) {
	var state dbmodel.CollectionLogState
	err := s.db.WithContext(ctx).Where("collection_id = ?", collectionID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCollectionNotFound
		}
		return nil, err
	}
	return &state, nil
}

// ListCollectionLogStates returns every collection's log state, consulted
// by the Metrics maintenance loop (spec §4.7) to publish per-collection
// enumeration_offset - compaction_offset lag.
func (s *recordLogDb) ListCollectionLogStates(ctx context.Context) ([]*dbmodel.CollectionLogState, error) {
	var states []*dbmodel.CollectionLogState
	if err := s.db.WithContext(ctx).Find(&states).Error; err != nil {
		log.Error("ListCollectionLogStates failed", zap.Error(err))
		return nil, err
	}
	return states, nil
}
