package grpc

import (
	"context"

	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/proto/coordinatorpb"
)

// CoordinatorOffsetSetter adapts coordinatorpb.CoordinatorClient to
// logservice.CatalogOffsetSetter, so the Log Service can mirror a
// compaction advance into the Coordinator process over the wire
// (SPEC_FULL.md Open Question (a): the Coordinator and Log Service are
// separate processes, so this call crosses a real gRPC connection rather
// than a shared in-process call).
type CoordinatorOffsetSetter struct {
	client coordinatorpb.CoordinatorClient
}

func NewCoordinatorOffsetSetter(client coordinatorpb.CoordinatorClient) *CoordinatorOffsetSetter {
	return &CoordinatorOffsetSetter{client: client}
}

func (c *CoordinatorOffsetSetter) SetCollectionLogOffset(ctx context.Context, setLogOffset *model.SetCollectionLogOffset) error {
	_, err := c.client.SetCollectionLogOffset(ctx, &coordinatorpb.SetCollectionLogOffsetRequest{
		Id:        setLogOffset.ID.String(),
		LogOffset: setLogOffset.LogPosition,
	})
	return err
}
