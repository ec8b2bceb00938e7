// Package coordinatorpb defines the Coordinator API's request/response
// messages (spec §6) as plain Go structs. There is no .proto source in this
// repository (see SPEC_FULL.md Open Question (c)): these types are encoded
// over the wire by pkg/jsoncodec rather than generated protobuf marshaling,
// but the package is laid out the way protoc-gen-go-grpc would lay it out so
// that callers see a familiar shape.
package coordinatorpb

// --- Admin ---

type ResetStateRequest struct{}

type ResetStateResponse struct{}

// SetCollectionLogOffsetRequest is called only by the Log Service, to mirror
// a compaction advance into collections.log_position (SPEC_FULL.md Open
// Question (a)).
type SetCollectionLogOffsetRequest struct {
	Id        string `json:"id"`
	LogOffset int64  `json:"log_offset"`
}

type SetCollectionLogOffsetResponse struct{}

// --- Tenant ---

type CreateTenantRequest struct {
	Name string `json:"name"`
}

type CreateTenantResponse struct{}

type GetTenantRequest struct {
	Name string `json:"name"`
}

type GetTenantResponse struct {
	Tenant *Tenant `json:"tenant"`
}

type Tenant struct {
	Name string `json:"name"`
}

// --- Database ---

type CreateDatabaseRequest struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Tenant string `json:"tenant"`
}

type CreateDatabaseResponse struct{}

type GetDatabaseRequest struct {
	Name   string `json:"name"`
	Tenant string `json:"tenant"`
}

type GetDatabaseResponse struct {
	Database *Database `json:"database"`
}

type ListDatabasesRequest struct {
	Tenant string `json:"tenant"`
	Limit  *int32 `json:"limit,omitempty"`
	Offset *int32 `json:"offset,omitempty"`
}

type ListDatabasesResponse struct {
	Databases []*Database `json:"databases"`
}

type Database struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Tenant string `json:"tenant"`
}

// --- Collection metadata wire representation ---

// MetadataValue is a tagged union: exactly one of StringValue, IntValue,
// FloatValue is set, matching the three collection/segment metadata variants
// of spec §3.
type MetadataValue struct {
	StringValue *string  `json:"string_value,omitempty"`
	IntValue    *int64   `json:"int_value,omitempty"`
	FloatValue  *float64 `json:"float_value,omitempty"`
}

// --- Collection ---

type CreateCollectionRequest struct {
	Id            string                   `json:"id"`
	Name          string                   `json:"name"`
	Database      string                   `json:"database"`
	Tenant        string                   `json:"tenant"`
	Metadata      map[string]MetadataValue `json:"metadata,omitempty"`
	Dimension     *int32                   `json:"dimension,omitempty"`
	Configuration []byte                   `json:"configuration,omitempty"`
	GetOrCreate   bool                     `json:"get_or_create"`
}

type CreateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type UpdateCollectionRequest struct {
	Id            string                   `json:"id"`
	Name          *string                  `json:"name,omitempty"`
	Metadata      map[string]MetadataValue `json:"metadata,omitempty"`
	ResetMetadata bool                     `json:"reset_metadata"`
	Dimension     *int32                   `json:"dimension,omitempty"`
}

type UpdateCollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type DeleteCollectionRequest struct {
	Id       string `json:"id"`
	Database string `json:"database"`
	Tenant   string `json:"tenant"`
}

type DeleteCollectionResponse struct{}

type GetCollectionsRequest struct {
	Id       *string `json:"id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Database string  `json:"database"`
	Tenant   string  `json:"tenant"`
}

type GetCollectionsResponse struct {
	Collections []*Collection `json:"collections"`
}

type Collection struct {
	Id            string                   `json:"id"`
	Name          string                   `json:"name"`
	Database      string                   `json:"database"`
	Tenant        string                   `json:"tenant"`
	Metadata      map[string]MetadataValue `json:"metadata,omitempty"`
	Dimension     *int32                   `json:"dimension,omitempty"`
	Configuration []byte                   `json:"configuration,omitempty"`
	LogPosition   int64                    `json:"log_position"`
}

// --- Segment ---

type CreateSegmentRequest struct {
	Id           string                   `json:"id"`
	Type         string                   `json:"type"`
	Scope        string                   `json:"scope"`
	CollectionId string                   `json:"collection_id"`
	Metadata     map[string]MetadataValue `json:"metadata,omitempty"`
}

type CreateSegmentResponse struct{}

type UpdateSegmentRequest struct {
	Id              string                   `json:"id"`
	Collection      *string                  `json:"collection,omitempty"`
	ResetCollection bool                     `json:"reset_collection"`
	Metadata        map[string]MetadataValue `json:"metadata,omitempty"`
	ResetMetadata   bool                     `json:"reset_metadata"`
}

type UpdateSegmentResponse struct{}

type DeleteSegmentRequest struct {
	Id           string `json:"id"`
	CollectionId string `json:"collection_id"`
}

type DeleteSegmentResponse struct{}

type GetSegmentsRequest struct {
	Id           *string `json:"id,omitempty"`
	Type         *string `json:"type,omitempty"`
	Scope        *string `json:"scope,omitempty"`
	CollectionId string  `json:"collection_id,omitempty"`
}

type GetSegmentsResponse struct {
	Segments []*Segment `json:"segments"`
}

type Segment struct {
	Id           string                   `json:"id"`
	Type         string                   `json:"type"`
	Scope        string                   `json:"scope"`
	CollectionId string                   `json:"collection_id"`
	Metadata     map[string]MetadataValue `json:"metadata,omitempty"`
	FilePaths    map[string][]string      `json:"file_paths,omitempty"`
}
