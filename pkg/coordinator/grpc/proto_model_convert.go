package grpc

import (
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
	"github.com/corevecdb/corevec/pkg/types"
)

func convertMetadataValueToProto(value model.CollectionMetadataValueType) coordinatorpb.MetadataValue {
	switch v := value.(type) {
	case *model.CollectionMetadataValueStringType:
		return coordinatorpb.MetadataValue{StringValue: &v.Value}
	case *model.CollectionMetadataValueInt64Type:
		return coordinatorpb.MetadataValue{IntValue: &v.Value}
	case *model.CollectionMetadataValueFloat64Type:
		return coordinatorpb.MetadataValue{FloatValue: &v.Value}
	default:
		return coordinatorpb.MetadataValue{}
	}
}

func convertSegmentMetadataValueToProto(value model.SegmentMetadataValueType) coordinatorpb.MetadataValue {
	switch v := value.(type) {
	case *model.SegmentMetadataValueStringType:
		return coordinatorpb.MetadataValue{StringValue: &v.Value}
	case *model.SegmentMetadataValueInt64Type:
		return coordinatorpb.MetadataValue{IntValue: &v.Value}
	case *model.SegmentMetadataValueFloat64Type:
		return coordinatorpb.MetadataValue{FloatValue: &v.Value}
	default:
		return coordinatorpb.MetadataValue{}
	}
}

func convertCollectionMetadataToProto(metadata *model.CollectionMetadata[model.CollectionMetadataValueType]) map[string]coordinatorpb.MetadataValue {
	if metadata == nil {
		return nil
	}
	out := make(map[string]coordinatorpb.MetadataValue, len(metadata.Metadata))
	for k, v := range metadata.Metadata {
		out[k] = convertMetadataValueToProto(v)
	}
	return out
}

func convertSegmentMetadataToProto(metadata *model.CollectionMetadata[model.SegmentMetadataValueType]) map[string]coordinatorpb.MetadataValue {
	if metadata == nil {
		return nil
	}
	out := make(map[string]coordinatorpb.MetadataValue, len(metadata.Metadata))
	for k, v := range metadata.Metadata {
		out[k] = convertSegmentMetadataValueToProto(v)
	}
	return out
}

func convertMetadataFromProto(in map[string]coordinatorpb.MetadataValue) *model.CollectionMetadata[model.CollectionMetadataValueType] {
	if in == nil {
		return nil
	}
	metadata := model.NewCollectionMetadata[model.CollectionMetadataValueType]()
	for k, v := range in {
		switch {
		case v.StringValue != nil:
			metadata.Set(k, &model.CollectionMetadataValueStringType{Value: *v.StringValue})
		case v.IntValue != nil:
			metadata.Set(k, &model.CollectionMetadataValueInt64Type{Value: *v.IntValue})
		case v.FloatValue != nil:
			metadata.Set(k, &model.CollectionMetadataValueFloat64Type{Value: *v.FloatValue})
		}
	}
	return metadata
}

func convertSegmentMetadataFromProto(in map[string]coordinatorpb.MetadataValue) *model.CollectionMetadata[model.SegmentMetadataValueType] {
	if in == nil {
		return nil
	}
	metadata := model.NewCollectionMetadata[model.SegmentMetadataValueType]()
	for k, v := range in {
		switch {
		case v.StringValue != nil:
			metadata.Set(k, &model.SegmentMetadataValueStringType{Value: *v.StringValue})
		case v.IntValue != nil:
			metadata.Set(k, &model.SegmentMetadataValueInt64Type{Value: *v.IntValue})
		case v.FloatValue != nil:
			metadata.Set(k, &model.SegmentMetadataValueFloat64Type{Value: *v.FloatValue})
		}
	}
	return metadata
}

func convertCollectionToProto(collection *model.Collection) *coordinatorpb.Collection {
	if collection == nil {
		return nil
	}
	return &coordinatorpb.Collection{
		Id:            collection.ID.String(),
		Name:          collection.Name,
		Database:      collection.DatabaseName,
		Tenant:        collection.TenantID,
		Metadata:      convertCollectionMetadataToProto(collection.Metadata),
		Dimension:     collection.Dimension,
		Configuration: collection.Configuration,
		LogPosition:   collection.LogPosition,
	}
}

func convertSegmentToProto(segment *model.Segment) *coordinatorpb.Segment {
	if segment == nil {
		return nil
	}
	return &coordinatorpb.Segment{
		Id:           segment.ID.String(),
		Type:         segment.Type,
		Scope:        string(segment.Scope),
		CollectionId: segment.CollectionID.String(),
		Metadata:     convertSegmentMetadataToProto(segment.Metadata),
		FilePaths:    segment.FilePaths,
	}
}

func parseOptionalUniqueID(id *string) (types.UniqueID, error) {
	if id == nil || *id == "" {
		return types.NilUniqueID(), nil
	}
	return types.Parse(*id)
}
