package model

// SegmentMetadataValueType mirrors CollectionMetadataValueType for segment
// metadata entries (spec §3: string, int64, float64).
type SegmentMetadataValueType interface {
	IsSegmentMetadataValueType()
}

type SegmentMetadataValueStringType struct{ Value string }
type SegmentMetadataValueInt64Type struct{ Value int64 }
type SegmentMetadataValueFloat64Type struct{ Value float64 }

func (*SegmentMetadataValueStringType) IsSegmentMetadataValueType()  {}
func (*SegmentMetadataValueInt64Type) IsSegmentMetadataValueType()   {}
func (*SegmentMetadataValueFloat64Type) IsSegmentMetadataValueType() {}
