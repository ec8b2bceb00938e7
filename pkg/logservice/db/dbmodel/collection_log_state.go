package dbmodel

import "time"

// CollectionLogState is the spec §3 CollectionLogState row: the largest
// offset ever assigned (EnumerationOffset) and the highest offset whose
// effects are durably compacted (CompactionOffset ≤ EnumerationOffset, I2).
type CollectionLogState struct {
	CollectionID      string `gorm:"column:collection_id;primaryKey"`
	EnumerationOffset int64  `gorm:"column:enumeration_offset;default:0"`
	CompactionOffset  int64  `gorm:"column:compaction_offset;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (CollectionLogState) TableName() string {
	return "collection_log_state"
}

// CollectionToCompact is one row of GetAllCollectionInfoToCompact's result:
// the first uncompacted offset for a dirty collection and its timestamp.
type CollectionToCompact struct {
	CollectionID string
	FirstLogID   int64
	FirstLogIDTs int64
}
