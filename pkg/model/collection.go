package model

import "github.com/corevecdb/corevec/pkg/types"

// Collection is a named set of embedding records within a database (spec §3).
// ID, Dimension (once set) and DatabaseName/TenantID are immutable (I4).
type Collection struct {
	ID            types.UniqueID
	Name          string
	Dimension     *int32
	Metadata      *CollectionMetadata[CollectionMetadataValueType]
	Configuration []byte
	TenantID      string
	DatabaseName  string
	Ts            types.Timestamp
	// LogPosition mirrors the Log Service's compaction_offset (spec I1-I3,
	// Open Question (a)): the highest log offset whose effects are durably
	// materialized in segment state. Monotonically non-decreasing.
	LogPosition int64
	Topic       string
}

type CreateCollection struct {
	ID            types.UniqueID
	Name          string
	Dimension     *int32
	Metadata      *CollectionMetadata[CollectionMetadataValueType]
	Configuration []byte
	GetOrCreate   bool
	TenantID      string
	DatabaseName  string
	Ts            types.Timestamp
	Topic         string
}

type DeleteCollection struct {
	ID           types.UniqueID
	TenantID     string
	DatabaseName string
	Ts           types.Timestamp
}

type UpdateCollection struct {
	ID            types.UniqueID
	Name          *string
	Dimension     *int32
	Metadata      *CollectionMetadata[CollectionMetadataValueType]
	ResetMetadata bool
	TenantID      string
	DatabaseName  string
	Ts            types.Timestamp
}

// SetCollectionLogOffset mirrors the Log Service's compaction_offset into
// the catalog's collections.log_position column (Open Question (a): the Log
// Service is the sole writer of this field, via a direct call into the
// Coordinator rather than a shared transaction).
type SetCollectionLogOffset struct {
	ID          types.UniqueID
	LogPosition int64
}

func FilterCollection(collection *Collection, collectionID types.UniqueID, collectionName *string, collectionTopic *string) bool {
	if collectionID != types.NilUniqueID() && collectionID != collection.ID {
		return false
	}
	if collectionName != nil && *collectionName != collection.Name {
		return false
	}
	if collectionTopic != nil && *collectionTopic != collection.Topic {
		return false
	}
	return true
}
