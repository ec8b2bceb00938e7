package coordinator

import (
	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

func convertCollectionToModel(collectionAndMetadataList []*dbmodel.CollectionAndMetadata) []*model.Collection {
	if collectionAndMetadataList == nil {
		return nil
	}
	collections := make([]*model.Collection, 0, len(collectionAndMetadataList))
	for _, cm := range collectionAndMetadataList {
		collection := &model.Collection{
			ID:            types.MustParse(cm.Collection.ID),
			Name:          cm.Collection.Name,
			Dimension:     cm.Collection.Dimension,
			Configuration: cm.Collection.Configuration,
			TenantID:      cm.TenantID,
			DatabaseName:  cm.DatabaseName,
			Ts:            cm.Collection.Ts,
			LogPosition:   cm.Collection.LogPosition,
			Topic:         cm.Collection.Topic,
		}
		collection.Metadata = convertCollectionMetadataToModel(cm.CollectionMetadata)
		collections = append(collections, collection)
	}
	return collections
}

func convertCollectionMetadataToModel(entries []*dbmodel.CollectionMetadata) *model.CollectionMetadata[model.CollectionMetadataValueType] {
	if entries == nil {
		return nil
	}
	metadata := model.NewCollectionMetadata[model.CollectionMetadataValueType]()
	for _, e := range entries {
		if e.Key == nil {
			continue
		}
		switch {
		case e.StrValue != nil:
			metadata.Set(*e.Key, &model.CollectionMetadataValueStringType{Value: *e.StrValue})
		case e.IntValue != nil:
			metadata.Set(*e.Key, &model.CollectionMetadataValueInt64Type{Value: *e.IntValue})
		case e.FloatValue != nil:
			metadata.Set(*e.Key, &model.CollectionMetadataValueFloat64Type{Value: *e.FloatValue})
		}
	}
	if len(metadata.Metadata) == 0 {
		return nil
	}
	return metadata
}

func convertCollectionMetadataToDB(collectionID string, metadata *model.CollectionMetadata[model.CollectionMetadataValueType]) []*dbmodel.CollectionMetadata {
	if metadata == nil {
		return nil
	}
	out := make([]*dbmodel.CollectionMetadata, 0, len(metadata.Metadata))
	for key, value := range metadata.Metadata {
		keyCopy := key
		entry := &dbmodel.CollectionMetadata{CollectionID: collectionID, Key: &keyCopy}
		switch v := value.(type) {
		case *model.CollectionMetadataValueStringType:
			entry.StrValue = &v.Value
		case *model.CollectionMetadataValueInt64Type:
			entry.IntValue = &v.Value
		case *model.CollectionMetadataValueFloat64Type:
			entry.FloatValue = &v.Value
		default:
			log.Error("unknown collection metadata type", zap.Any("value", v))
		}
		out = append(out, entry)
	}
	return out
}

func convertSegmentToModel(segmentAndMetadataList []*dbmodel.SegmentAndMetadata) []*model.Segment {
	if segmentAndMetadataList == nil {
		return nil
	}
	segments := make([]*model.Segment, 0, len(segmentAndMetadataList))
	for _, sm := range segmentAndMetadataList {
		segment := &model.Segment{
			ID:        types.MustParse(sm.Segment.ID),
			Type:      sm.Segment.Type,
			Scope:     model.SegmentScope(sm.Segment.Scope),
			Ts:        sm.Segment.Ts,
			FilePaths: sm.Segment.FilePaths,
		}
		if sm.Segment.CollectionID != "" {
			segment.CollectionID = types.MustParse(sm.Segment.CollectionID)
		} else {
			segment.CollectionID = types.NilUniqueID()
		}
		segment.Metadata = convertSegmentMetadataToModel(sm.SegmentMetadata)
		segments = append(segments, segment)
	}
	return segments
}

func convertSegmentMetadataToModel(entries []*dbmodel.SegmentMetadata) *model.CollectionMetadata[model.SegmentMetadataValueType] {
	if entries == nil {
		return nil
	}
	metadata := model.NewCollectionMetadata[model.SegmentMetadataValueType]()
	for _, e := range entries {
		if e.Key == nil {
			continue
		}
		switch {
		case e.StrValue != nil:
			metadata.Set(*e.Key, &model.SegmentMetadataValueStringType{Value: *e.StrValue})
		case e.IntValue != nil:
			metadata.Set(*e.Key, &model.SegmentMetadataValueInt64Type{Value: *e.IntValue})
		case e.FloatValue != nil:
			metadata.Set(*e.Key, &model.SegmentMetadataValueFloat64Type{Value: *e.FloatValue})
		}
	}
	if len(metadata.Metadata) == 0 {
		return nil
	}
	return metadata
}

func convertSegmentMetadataToDB(segmentID string, metadata *model.CollectionMetadata[model.SegmentMetadataValueType]) []*dbmodel.SegmentMetadata {
	if metadata == nil {
		return nil
	}
	out := make([]*dbmodel.SegmentMetadata, 0, len(metadata.Metadata))
	for key, value := range metadata.Metadata {
		keyCopy := key
		entry := &dbmodel.SegmentMetadata{SegmentID: segmentID, Key: &keyCopy}
		switch v := value.(type) {
		case *model.SegmentMetadataValueStringType:
			entry.StrValue = &v.Value
		case *model.SegmentMetadataValueInt64Type:
			entry.IntValue = &v.Value
		case *model.SegmentMetadataValueFloat64Type:
			entry.FloatValue = &v.Value
		default:
			log.Error("unknown segment metadata type", zap.Any("value", v))
		}
		out = append(out, entry)
	}
	return out
}

func convertDatabaseToModel(dbDatabase *dbmodel.Database) *model.Database {
	return &model.Database{
		ID:     dbDatabase.ID,
		Name:   dbDatabase.Name,
		Tenant: dbDatabase.TenantID,
	}
}

func convertTenantToModel(dbTenant *dbmodel.Tenant) *model.Tenant {
	return &model.Tenant{
		Name:               dbTenant.ID,
		LastCompactionTime: dbTenant.LastCompactionTime.Unix(),
	}
}
