package coordinatorpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "corevec.coordinator.v1.Coordinator"

// CoordinatorServer is the Coordinator API surface (spec §6 / §4.5): tenant,
// database, collection and segment CRUD.
type CoordinatorServer interface {
	ResetState(context.Context, *ResetStateRequest) (*ResetStateResponse, error)
	SetCollectionLogOffset(context.Context, *SetCollectionLogOffsetRequest) (*SetCollectionLogOffsetResponse, error)
	CreateTenant(context.Context, *CreateTenantRequest) (*CreateTenantResponse, error)
	GetTenant(context.Context, *GetTenantRequest) (*GetTenantResponse, error)
	CreateDatabase(context.Context, *CreateDatabaseRequest) (*CreateDatabaseResponse, error)
	GetDatabase(context.Context, *GetDatabaseRequest) (*GetDatabaseResponse, error)
	ListDatabases(context.Context, *ListDatabasesRequest) (*ListDatabasesResponse, error)
	CreateCollection(context.Context, *CreateCollectionRequest) (*CreateCollectionResponse, error)
	UpdateCollection(context.Context, *UpdateCollectionRequest) (*UpdateCollectionResponse, error)
	DeleteCollection(context.Context, *DeleteCollectionRequest) (*DeleteCollectionResponse, error)
	GetCollections(context.Context, *GetCollectionsRequest) (*GetCollectionsResponse, error)
	CreateSegment(context.Context, *CreateSegmentRequest) (*CreateSegmentResponse, error)
	UpdateSegment(context.Context, *UpdateSegmentRequest) (*UpdateSegmentResponse, error)
	DeleteSegment(context.Context, *DeleteSegmentRequest) (*DeleteSegmentResponse, error)
	GetSegments(context.Context, *GetSegmentsRequest) (*GetSegmentsResponse, error)
}

// UnimplementedCoordinatorServer must be embedded by implementations that
// don't satisfy every method yet.
type UnimplementedCoordinatorServer struct{}

func (UnimplementedCoordinatorServer) ResetState(context.Context, *ResetStateRequest) (*ResetStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResetState not implemented")
}
func (UnimplementedCoordinatorServer) SetCollectionLogOffset(context.Context, *SetCollectionLogOffsetRequest) (*SetCollectionLogOffsetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetCollectionLogOffset not implemented")
}
func (UnimplementedCoordinatorServer) CreateTenant(context.Context, *CreateTenantRequest) (*CreateTenantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTenant not implemented")
}
func (UnimplementedCoordinatorServer) GetTenant(context.Context, *GetTenantRequest) (*GetTenantResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTenant not implemented")
}
func (UnimplementedCoordinatorServer) CreateDatabase(context.Context, *CreateDatabaseRequest) (*CreateDatabaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDatabase not implemented")
}
func (UnimplementedCoordinatorServer) GetDatabase(context.Context, *GetDatabaseRequest) (*GetDatabaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDatabase not implemented")
}
func (UnimplementedCoordinatorServer) ListDatabases(context.Context, *ListDatabasesRequest) (*ListDatabasesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDatabases not implemented")
}
func (UnimplementedCoordinatorServer) CreateCollection(context.Context, *CreateCollectionRequest) (*CreateCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCollection not implemented")
}
func (UnimplementedCoordinatorServer) UpdateCollection(context.Context, *UpdateCollectionRequest) (*UpdateCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCollection not implemented")
}
func (UnimplementedCoordinatorServer) DeleteCollection(context.Context, *DeleteCollectionRequest) (*DeleteCollectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCollection not implemented")
}
func (UnimplementedCoordinatorServer) GetCollections(context.Context, *GetCollectionsRequest) (*GetCollectionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCollections not implemented")
}
func (UnimplementedCoordinatorServer) CreateSegment(context.Context, *CreateSegmentRequest) (*CreateSegmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSegment not implemented")
}
func (UnimplementedCoordinatorServer) UpdateSegment(context.Context, *UpdateSegmentRequest) (*UpdateSegmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSegment not implemented")
}
func (UnimplementedCoordinatorServer) DeleteSegment(context.Context, *DeleteSegmentRequest) (*DeleteSegmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSegment not implemented")
}
func (UnimplementedCoordinatorServer) GetSegments(context.Context, *GetSegmentsRequest) (*GetSegmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSegments not implemented")
}

func RegisterCoordinatorServer(s grpc.ServiceRegistrar, srv CoordinatorServer) {
	s.RegisterService(&CoordinatorServiceDesc, srv)
}

func _Coordinator_ResetState_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).ResetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ResetState"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).ResetState(ctx, req.(*ResetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_SetCollectionLogOffset_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetCollectionLogOffsetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).SetCollectionLogOffset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/SetCollectionLogOffset"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).SetCollectionLogOffset(ctx, req.(*SetCollectionLogOffsetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_CreateTenant_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateTenantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).CreateTenant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CreateTenant"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).CreateTenant(ctx, req.(*CreateTenantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_GetTenant_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTenantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).GetTenant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetTenant"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).GetTenant(ctx, req.(*GetTenantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_CreateDatabase_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateDatabaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).CreateDatabase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CreateDatabase"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).CreateDatabase(ctx, req.(*CreateDatabaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_GetDatabase_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetDatabaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).GetDatabase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetDatabase"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).GetDatabase(ctx, req.(*GetDatabaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_ListDatabases_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListDatabasesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).ListDatabases(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ListDatabases"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).ListDatabases(ctx, req.(*ListDatabasesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_CreateCollection_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).CreateCollection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CreateCollection"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).CreateCollection(ctx, req.(*CreateCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_UpdateCollection_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).UpdateCollection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/UpdateCollection"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).UpdateCollection(ctx, req.(*UpdateCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_DeleteCollection_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteCollectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).DeleteCollection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DeleteCollection"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).DeleteCollection(ctx, req.(*DeleteCollectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_GetCollections_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCollectionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).GetCollections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetCollections"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).GetCollections(ctx, req.(*GetCollectionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_CreateSegment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateSegmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).CreateSegment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/CreateSegment"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).CreateSegment(ctx, req.(*CreateSegmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_UpdateSegment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateSegmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).UpdateSegment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/UpdateSegment"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).UpdateSegment(ctx, req.(*UpdateSegmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_DeleteSegment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteSegmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).DeleteSegment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DeleteSegment"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).DeleteSegment(ctx, req.(*DeleteSegmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Coordinator_GetSegments_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSegmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordinatorServer).GetSegments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetSegments"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CoordinatorServer).GetSegments(ctx, req.(*GetSegmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CoordinatorServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CoordinatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ResetState", Handler: _Coordinator_ResetState_Handler},
		{MethodName: "SetCollectionLogOffset", Handler: _Coordinator_SetCollectionLogOffset_Handler},
		{MethodName: "CreateTenant", Handler: _Coordinator_CreateTenant_Handler},
		{MethodName: "GetTenant", Handler: _Coordinator_GetTenant_Handler},
		{MethodName: "CreateDatabase", Handler: _Coordinator_CreateDatabase_Handler},
		{MethodName: "GetDatabase", Handler: _Coordinator_GetDatabase_Handler},
		{MethodName: "ListDatabases", Handler: _Coordinator_ListDatabases_Handler},
		{MethodName: "CreateCollection", Handler: _Coordinator_CreateCollection_Handler},
		{MethodName: "UpdateCollection", Handler: _Coordinator_UpdateCollection_Handler},
		{MethodName: "DeleteCollection", Handler: _Coordinator_DeleteCollection_Handler},
		{MethodName: "GetCollections", Handler: _Coordinator_GetCollections_Handler},
		{MethodName: "CreateSegment", Handler: _Coordinator_CreateSegment_Handler},
		{MethodName: "UpdateSegment", Handler: _Coordinator_UpdateSegment_Handler},
		{MethodName: "DeleteSegment", Handler: _Coordinator_DeleteSegment_Handler},
		{MethodName: "GetSegments", Handler: _Coordinator_GetSegments_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coordinator.proto",
}

// CoordinatorClient is the client-side stub, used by the compactor and other
// external collaborators (out of scope here, but kept so the service is
// callable from tests without a second codegen pass).
type CoordinatorClient interface {
	ResetState(ctx context.Context, in *ResetStateRequest, opts ...grpc.CallOption) (*ResetStateResponse, error)
	SetCollectionLogOffset(ctx context.Context, in *SetCollectionLogOffsetRequest, opts ...grpc.CallOption) (*SetCollectionLogOffsetResponse, error)
	CreateTenant(ctx context.Context, in *CreateTenantRequest, opts ...grpc.CallOption) (*CreateTenantResponse, error)
	GetTenant(ctx context.Context, in *GetTenantRequest, opts ...grpc.CallOption) (*GetTenantResponse, error)
	CreateDatabase(ctx context.Context, in *CreateDatabaseRequest, opts ...grpc.CallOption) (*CreateDatabaseResponse, error)
	GetDatabase(ctx context.Context, in *GetDatabaseRequest, opts ...grpc.CallOption) (*GetDatabaseResponse, error)
	ListDatabases(ctx context.Context, in *ListDatabasesRequest, opts ...grpc.CallOption) (*ListDatabasesResponse, error)
	CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CreateCollectionResponse, error)
	UpdateCollection(ctx context.Context, in *UpdateCollectionRequest, opts ...grpc.CallOption) (*UpdateCollectionResponse, error)
	DeleteCollection(ctx context.Context, in *DeleteCollectionRequest, opts ...grpc.CallOption) (*DeleteCollectionResponse, error)
	GetCollections(ctx context.Context, in *GetCollectionsRequest, opts ...grpc.CallOption) (*GetCollectionsResponse, error)
	CreateSegment(ctx context.Context, in *CreateSegmentRequest, opts ...grpc.CallOption) (*CreateSegmentResponse, error)
	UpdateSegment(ctx context.Context, in *UpdateSegmentRequest, opts ...grpc.CallOption) (*UpdateSegmentResponse, error)
	DeleteSegment(ctx context.Context, in *DeleteSegmentRequest, opts ...grpc.CallOption) (*DeleteSegmentResponse, error)
	GetSegments(ctx context.Context, in *GetSegmentsRequest, opts ...grpc.CallOption) (*GetSegmentsResponse, error)
}

type coordinatorClient struct {
	cc grpc.ClientConnInterface
}

func NewCoordinatorClient(cc grpc.ClientConnInterface) CoordinatorClient {
	return &coordinatorClient{cc}
}

func (c *coordinatorClient) ResetState(ctx context.Context, in *ResetStateRequest, opts ...grpc.CallOption) (*ResetStateResponse, error) {
	out := new(ResetStateResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ResetState", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) SetCollectionLogOffset(ctx context.Context, in *SetCollectionLogOffsetRequest, opts ...grpc.CallOption) (*SetCollectionLogOffsetResponse, error) {
	out := new(SetCollectionLogOffsetResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/SetCollectionLogOffset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) CreateTenant(ctx context.Context, in *CreateTenantRequest, opts ...grpc.CallOption) (*CreateTenantResponse, error) {
	out := new(CreateTenantResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/CreateTenant", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) GetTenant(ctx context.Context, in *GetTenantRequest, opts ...grpc.CallOption) (*GetTenantResponse, error) {
	out := new(GetTenantResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetTenant", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) CreateDatabase(ctx context.Context, in *CreateDatabaseRequest, opts ...grpc.CallOption) (*CreateDatabaseResponse, error) {
	out := new(CreateDatabaseResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/CreateDatabase", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) GetDatabase(ctx context.Context, in *GetDatabaseRequest, opts ...grpc.CallOption) (*GetDatabaseResponse, error) {
	out := new(GetDatabaseResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetDatabase", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) ListDatabases(ctx context.Context, in *ListDatabasesRequest, opts ...grpc.CallOption) (*ListDatabasesResponse, error) {
	out := new(ListDatabasesResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ListDatabases", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*CreateCollectionResponse, error) {
	out := new(CreateCollectionResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/CreateCollection", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) UpdateCollection(ctx context.Context, in *UpdateCollectionRequest, opts ...grpc.CallOption) (*UpdateCollectionResponse, error) {
	out := new(UpdateCollectionResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/UpdateCollection", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) DeleteCollection(ctx context.Context, in *DeleteCollectionRequest, opts ...grpc.CallOption) (*DeleteCollectionResponse, error) {
	out := new(DeleteCollectionResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DeleteCollection", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) GetCollections(ctx context.Context, in *GetCollectionsRequest, opts ...grpc.CallOption) (*GetCollectionsResponse, error) {
	out := new(GetCollectionsResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetCollections", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) CreateSegment(ctx context.Context, in *CreateSegmentRequest, opts ...grpc.CallOption) (*CreateSegmentResponse, error) {
	out := new(CreateSegmentResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/CreateSegment", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) UpdateSegment(ctx context.Context, in *UpdateSegmentRequest, opts ...grpc.CallOption) (*UpdateSegmentResponse, error) {
	out := new(UpdateSegmentResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/UpdateSegment", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) DeleteSegment(ctx context.Context, in *DeleteSegmentRequest, opts ...grpc.CallOption) (*DeleteSegmentResponse, error) {
	out := new(DeleteSegmentResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DeleteSegment", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *coordinatorClient) GetSegments(ctx context.Context, in *GetSegmentsRequest, opts ...grpc.CallOption) (*GetSegmentsResponse, error) {
	out := new(GetSegmentsResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetSegments", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
