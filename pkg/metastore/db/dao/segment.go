package dao

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/corevecdb/corevec/pkg/metastore/db/dbmodel"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type segmentDb struct {
	db *gorm.DB
}

var _ dbmodel.ISegmentDb = &segmentDb{}

func (s *segmentDb) DeleteAll() error {
	return s.db.Where("1=1").Delete(&dbmodel.Segment{}).Error
}

func (s *segmentDb) DeleteSegmentByID(id string) error {
	return s.db.Where("id = ?", id).Delete(&dbmodel.Segment{}).Error
}

func (s *segmentDb) Insert(in *dbmodel.Segment) error {
	if err := s.db.Create(in).Error; err != nil {
		log.Error("create segment failed", zap.Error(err))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrSegmentUniqueConstraintViolation
		}
		return err
	}
	return nil
}

func (s *segmentDb) GetSegments(id types.UniqueID, segmentType *string, scope *string, collectionID types.UniqueID) ([]*dbmodel.SegmentAndMetadata, error) {
	query := s.db.Table("segments").
		Select("segments.id, segments.collection_id, segments.type, segments.scope, segments.file_paths, segment_metadata.key, segment_metadata.str_value, segment_metadata.int_value, segment_metadata.float_value").
		Joins("LEFT JOIN segment_metadata ON segments.id = segment_metadata.segment_id").
		Order("segments.id")

	if id != types.NilUniqueID() {
		query = query.Where("segments.id = ?", id.String())
	}
	if segmentType != nil {
		query = query.Where("segments.type = ?", *segmentType)
	}
	if scope != nil {
		query = query.Where("segments.scope = ?", *scope)
	}
	if collectionID != types.NilUniqueID() {
		query = query.Where("segments.collection_id = ?", collectionID.String())
	}

	rows, err := query.Rows()
	if err != nil {
		log.Error("get segments failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var segments []*dbmodel.SegmentAndMetadata
	currentSegmentID := ""
	var metadata []*dbmodel.SegmentMetadata
	var current *dbmodel.SegmentAndMetadata

	for rows.Next() {
		var (
			segmentID     string
			collectionID  sql.NullString
			segmentType   string
			scope         string
			filePathsJSON sql.NullString
			key           sql.NullString
			strValue      sql.NullString
			intValue      sql.NullInt64
			floatValue    sql.NullFloat64
		)

		if err := rows.Scan(&segmentID, &collectionID, &segmentType, &scope, &filePathsJSON, &key, &strValue, &intValue, &floatValue); err != nil {
			log.Error("scan segment row failed", zap.Error(err))
			return nil, err
		}

		if segmentID != currentSegmentID {
			currentSegmentID = segmentID
			metadata = nil

			var filePaths map[string][]string
			if filePathsJSON.Valid && filePathsJSON.String != "" {
				if err := json.Unmarshal([]byte(filePathsJSON.String), &filePaths); err != nil {
					return nil, err
				}
			}
			current = &dbmodel.SegmentAndMetadata{
				Segment: &dbmodel.Segment{
					ID:        segmentID,
					Type:      segmentType,
					Scope:     scope,
					FilePaths: filePaths,
				},
			}
			if collectionID.Valid {
				current.Segment.CollectionID = collectionID.String
			}
			segments = append(segments, current)
		}

		if key.Valid {
			entry := &dbmodel.SegmentMetadata{SegmentID: segmentID, Key: &key.String}
			if strValue.Valid {
				entry.StrValue = &strValue.String
			}
			if intValue.Valid {
				entry.IntValue = &intValue.Int64
			}
			if floatValue.Valid {
				entry.FloatValue = &floatValue.Float64
			}
			metadata = append(metadata, entry)
			current.SegmentMetadata = metadata
		}
	}
	return segments, nil
}

func (s *segmentDb) Update(in *dbmodel.UpdateSegment) error {
	updates := map[string]interface{}{}
	if in.ResetCollection {
		updates["collection_id"] = nil
	} else if in.Collection != nil {
		updates["collection_id"] = *in.Collection
	}
	if in.ResetFilePaths {
		updates["file_paths"] = "{}"
	} else if in.FilePaths != nil {
		filePaths, err := json.Marshal(in.FilePaths)
		if err != nil {
			return err
		}
		updates["file_paths"] = string(filePaths)
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&dbmodel.Segment{}).Where("id = ?", in.ID).Updates(updates).Error
}
