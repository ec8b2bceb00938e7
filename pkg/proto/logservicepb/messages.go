// Package logservicepb defines the Log Service API's request/response
// messages (spec §6) as plain Go structs, encoded over the wire by
// pkg/jsoncodec (see SPEC_FULL.md Open Question (c)).
package logservicepb

type PushLogsRequest struct {
	CollectionId string   `json:"collection_id"`
	Records      [][]byte `json:"records"`
}

type PushLogsResponse struct {
	RecordCount int32 `json:"record_count"`
}

type PullLogsRequest struct {
	CollectionId string `json:"collection_id"`
	StartOffset  int64  `json:"start_offset"`
	BatchSize    int32  `json:"batch_size"`
}

type LogRecord struct {
	Offset int64  `json:"offset"`
	Record []byte `json:"record"`
}

type PullLogsResponse struct {
	Records []*LogRecord `json:"records"`
}

type GetAllCollectionInfoToCompactRequest struct {
	MinCompactionSize uint64 `json:"min_compaction_size,omitempty"`
}

type CollectionInfo struct {
	CollectionId   string `json:"collection_id"`
	FirstLogOffset int64  `json:"first_log_offset"`
	FirstLogTs     int64  `json:"first_log_ts"`
}

type GetAllCollectionInfoToCompactResponse struct {
	Collections []*CollectionInfo `json:"collections"`
}

type UpdateCollectionLogOffsetRequest struct {
	CollectionId string `json:"collection_id"`
	LogOffset    int64  `json:"log_offset"`
}

type UpdateCollectionLogOffsetResponse struct{}
