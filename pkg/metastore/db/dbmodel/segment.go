package dbmodel

import (
	"time"

	"github.com/corevecdb/corevec/pkg/types"
)

// Segment's CollectionID is part of its primary key alongside ID: every
// segment belongs to exactly one collection and that parent never changes.
type Segment struct {
	CollectionID string              `gorm:"collection_id;primaryKey"`
	ID           string              `gorm:"id;primaryKey"`
	Type         string              `gorm:"type;type:string;not null"`
	Scope        string              `gorm:"scope"`
	Ts           types.Timestamp     `gorm:"ts;type:bigint;default:0"`
	IsDeleted    bool                `gorm:"is_deleted;type:bool;default:false"`
	CreatedAt    time.Time           `gorm:"created_at;type:timestamp;not null;default:current_timestamp"`
	UpdatedAt    time.Time           `gorm:"updated_at;type:timestamp;not null;default:current_timestamp"`
	FilePaths    map[string][]string `gorm:"file_paths;serializer:json;default:'{}'"`
}

func (Segment) TableName() string {
	return "segments"
}

type SegmentAndMetadata struct {
	Segment         *Segment
	SegmentMetadata []*SegmentMetadata
}

type UpdateSegment struct {
	ID              string
	Collection      *string
	ResetCollection bool
	FilePaths       map[string][]string
	ResetFilePaths  bool
}

type ISegmentDb interface {
	GetSegments(id types.UniqueID, segmentType *string, scope *string, collectionID types.UniqueID) ([]*SegmentAndMetadata, error)
	DeleteSegmentByID(id string) error
	Insert(*Segment) error
	Update(*UpdateSegment) error
	DeleteAll() error
}
