package model

import "github.com/corevecdb/corevec/pkg/types"

type SegmentScope string

const (
	SegmentScopeVector   SegmentScope = "VECTOR"
	SegmentScopeMetadata SegmentScope = "METADATA"
	SegmentScopeRecord   SegmentScope = "RECORD"
)

// Segment is a physical storage unit belonging to exactly one collection
// (spec §3). FilePaths is an opaque map populated by the compactor, in the
// shape segmentstore.S3Locator.DeleteSegmentArtifacts accepts.
type Segment struct {
	ID           types.UniqueID
	Type         string
	Scope        SegmentScope
	CollectionID types.UniqueID
	Metadata     *CollectionMetadata[SegmentMetadataValueType]
	Ts           types.Timestamp
	FilePaths    map[string][]string
}

type CreateSegment struct {
	ID           types.UniqueID
	Type         string
	Scope        SegmentScope
	CollectionID types.UniqueID
	Metadata     *CollectionMetadata[SegmentMetadataValueType]
	Ts           types.Timestamp
}

type DeleteSegment struct {
	ID           types.UniqueID
	CollectionID types.UniqueID
}

type UpdateSegment struct {
	ID              types.UniqueID
	Collection      *string
	ResetCollection bool
	Metadata        *CollectionMetadata[SegmentMetadataValueType]
	ResetMetadata   bool
	// FilePaths, when non-nil, replaces the segment's artifact-location map.
	// The compactor sets this after writing segment artifacts, as a plain
	// UpdateSegment call (spec §4.5: segment CRUD is a straight pass-through).
	FilePaths map[string][]string
	Ts        types.Timestamp
}

type GetSegments struct {
	ID           types.UniqueID
	Type         *string
	Scope        *SegmentScope
	CollectionID types.UniqueID
}

func FilterSegments(segment *Segment, segmentID types.UniqueID, segmentType *string, scope *SegmentScope, collectionID types.UniqueID) bool {
	if segmentID != types.NilUniqueID() && segmentID != segment.ID {
		return false
	}
	if segmentType != nil && *segmentType != segment.Type {
		return false
	}
	if scope != nil && *scope != segment.Scope {
		return false
	}
	if collectionID != types.NilUniqueID() && collectionID != segment.CollectionID {
		return false
	}
	return true
}
