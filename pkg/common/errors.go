package common

import "errors"

// Error kinds, not types: every caller compares against these sentinels with
// errors.Is, and the gRPC boundary (pkg/grpcutils/response.go) maps each to a
// stable status code. See spec §7.
var (
	// Tenant errors
	ErrTenantNotFound                  = errors.New("tenant not found")
	ErrTenantUniqueConstraintViolation = errors.New("tenant unique constraint violation")

	// Database errors
	ErrDatabaseNotFound                  = errors.New("database not found")
	ErrDatabaseUniqueConstraintViolation = errors.New("database unique constraint violation")
	ErrDatabaseNameEmpty                 = errors.New("database name is empty")

	// Collection errors
	ErrCollectionNotFound                    = errors.New("collection not found")
	ErrCollectionIDFormat                    = errors.New("collection id format error")
	ErrCollectionNameEmpty                   = errors.New("collection name is empty")
	ErrCollectionUniqueConstraintViolation   = errors.New("collection unique constraint violation")
	ErrCollectionDeleteNonExistingCollection = errors.New("delete non existing collection")
	ErrCollectionDimensionImmutable         = errors.New("collection dimension is already set and cannot change")

	// Collection metadata errors
	ErrUnknownCollectionMetadataType = errors.New("collection metadata value type not supported")
	ErrInvalidMetadataUpdate         = errors.New("invalid metadata update: reset_metadata is true and metadata is non-empty")

	// Segment errors
	ErrSegmentIDFormat                  = errors.New("segment id format error")
	ErrInvalidCollectionUpdate          = errors.New("invalid collection update, reset collection true and collection value not empty")
	ErrMissingCollectionID              = errors.New("missing collection id")
	ErrSegmentUniqueConstraintViolation = errors.New("segment unique constraint violation")
	ErrSegmentDeleteNonExistingSegment  = errors.New("delete non existing segment")
	ErrSegmentUpdateNonExistingSegment  = errors.New("update non existing segment")
	ErrSegmentScopeAlreadyTaken         = errors.New("collection already has a segment of this scope")

	// Segment metadata errors
	ErrUnknownSegmentMetadataType = errors.New("segment metadata value type not supported")

	// Log errors
	ErrCollectionIDInvalid           = errors.New("collection id does not parse as a uuid")
	ErrLogOffsetRegression           = errors.New("compaction offset must not regress")
	ErrLogOffsetBeyondEnumeration    = errors.New("compaction offset exceeds enumeration offset")

	// Others
	ErrNotImplemented = errors.New("not implemented")
)
