package grpcutils

import (
	"errors"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func BuildInvalidArgumentGrpcError(fieldName string, desc string) (error, error) {
	log.Info("InvalidArgument", zap.String("fieldName", fieldName), zap.String("desc", desc))
	st := status.New(codes.InvalidArgument, "invalid "+fieldName)
	v := &errdetails.BadRequest_FieldViolation{
		Field:       fieldName,
		Description: desc,
	}
	br := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{v},
	}
	st, err := st.WithDetails(br)
	if err != nil {
		log.Error("unexpected error attaching metadata", zap.Error(err))
		return nil, err
	}
	return st.Err(), nil
}

func BuildInternalGrpcError(msg string) error {
	return status.Error(codes.Internal, msg)
}

func BuildAlreadyExistsGrpcError(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

func BuildNotFoundGrpcError(msg string) error {
	return status.Error(codes.NotFound, msg)
}

func BuildFailedPreconditionGrpcError(msg string) error {
	return status.Error(codes.FailedPrecondition, msg)
}

func BuildErrorForUUID(ID types.UniqueID, name string, err error) error {
	if err != nil || ID == types.NilUniqueID() {
		log.Error(name+" id format error", zap.String(name+".id", ID.String()))
		grpcError, err := BuildInvalidArgumentGrpcError(name+"_id", "wrong "+name+"_id format")
		if err != nil {
			log.Error("error building grpc error", zap.Error(err))
			return err
		}
		return grpcError
	}
	return nil
}

// notFoundErrors, alreadyExistsErrors, and invalidArgumentErrors classify the
// pkg/common sentinel taxonomy (spec §7) into the gRPC status families the
// Coordinator and Log Service RPC handlers return. BuildGrpcError is the
// single place that does this translation so the handlers themselves never
// construct a status code directly.
var notFoundErrors = []error{
	common.ErrTenantNotFound,
	common.ErrDatabaseNotFound,
	common.ErrCollectionNotFound,
	common.ErrCollectionDeleteNonExistingCollection,
	common.ErrSegmentDeleteNonExistingSegment,
	common.ErrSegmentUpdateNonExistingSegment,
}

var alreadyExistsErrors = []error{
	common.ErrTenantUniqueConstraintViolation,
	common.ErrDatabaseUniqueConstraintViolation,
	common.ErrCollectionUniqueConstraintViolation,
	common.ErrSegmentUniqueConstraintViolation,
	common.ErrSegmentScopeAlreadyTaken,
}

var invalidArgumentErrors = []error{
	common.ErrDatabaseNameEmpty,
	common.ErrCollectionIDFormat,
	common.ErrCollectionNameEmpty,
	common.ErrCollectionDimensionImmutable,
	common.ErrUnknownCollectionMetadataType,
	common.ErrInvalidMetadataUpdate,
	common.ErrSegmentIDFormat,
	common.ErrInvalidCollectionUpdate,
	common.ErrMissingCollectionID,
	common.ErrUnknownSegmentMetadataType,
	common.ErrCollectionIDInvalid,
}

var failedPreconditionErrors = []error{
	common.ErrLogOffsetRegression,
	common.ErrLogOffsetBeyondEnumeration,
}

// BuildGrpcError maps a pkg/common sentinel (or an unrecognized error, which
// is treated as Internal) to the gRPC status the wire response carries.
func BuildGrpcError(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return BuildNotFoundGrpcError(err.Error())
		}
	}
	for _, sentinel := range alreadyExistsErrors {
		if errors.Is(err, sentinel) {
			return BuildAlreadyExistsGrpcError(err.Error())
		}
	}
	for _, sentinel := range invalidArgumentErrors {
		if errors.Is(err, sentinel) {
			grpcErr, buildErr := BuildInvalidArgumentGrpcError(err.Error(), err.Error())
			if buildErr != nil {
				return BuildInternalGrpcError(buildErr.Error())
			}
			return grpcErr
		}
	}
	for _, sentinel := range failedPreconditionErrors {
		if errors.Is(err, sentinel) {
			return BuildFailedPreconditionGrpcError(err.Error())
		}
	}
	log.Error("unmapped error returned to grpc client", zap.Error(err))
	return BuildInternalGrpcError(err.Error())
}
