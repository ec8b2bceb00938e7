// Package logservice implements the Log Service (spec §4.4): the
// PushLogs/PullLogs/GetAllCollectionInfoToCompact/UpdateCollectionLogOffset
// API surface in front of the Log Store, plus the internal PurgeLogs used
// by the leader-elected Purger maintenance loop.
package logservice

import (
	"context"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/logservice/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/types"
)

type ILogService interface {
	common.Component
	PushLogs(ctx context.Context, collectionID types.UniqueID, records [][]byte) (int, error)
	PullLogs(ctx context.Context, collectionID types.UniqueID, startOffset int64, batchSize int) ([]*dbmodel.RecordLog, error)
	GetAllCollectionInfoToCompact(ctx context.Context, minCompactionSize int64) ([]*dbmodel.CollectionToCompact, error)
	UpdateCollectionLogOffset(ctx context.Context, collectionID types.UniqueID, newOffset int64) error
	// PurgeLogs is internal, leader-only (spec §4.7 Purger).
	PurgeLogs(ctx context.Context) error
	// ListCollectionLogStates is internal, leader-only (spec §4.7 Metrics).
	ListCollectionLogStates(ctx context.Context) ([]*dbmodel.CollectionLogState, error)
}
