// Package dbmodel holds the Log Store's two GORM row types (spec §3/§4.4):
// the append-only record rows and the per-collection offset state.
package dbmodel

// RecordLog is one opaque record at (collectionID, offset). offset is
// allocated by the Log Store, contiguous and gap-free per collection (I1).
type RecordLog struct {
	CollectionID string `gorm:"column:collection_id;primaryKey;autoIncrement:false"`
	Offset       int64  `gorm:"column:offset;primaryKey;autoIncrement:false"`
	TimestampNs  int64  `gorm:"column:timestamp_ns"`
	Record       []byte `gorm:"column:record;type:bytea"`
}

func (RecordLog) TableName() string {
	return "record_logs"
}
