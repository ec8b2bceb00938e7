package logservicepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "corevec.logservice.v1.LogService"

// LogServiceServer is the Log Service API surface (spec §6 / §4.4).
type LogServiceServer interface {
	PushLogs(context.Context, *PushLogsRequest) (*PushLogsResponse, error)
	PullLogs(context.Context, *PullLogsRequest) (*PullLogsResponse, error)
	GetAllCollectionInfoToCompact(context.Context, *GetAllCollectionInfoToCompactRequest) (*GetAllCollectionInfoToCompactResponse, error)
	UpdateCollectionLogOffset(context.Context, *UpdateCollectionLogOffsetRequest) (*UpdateCollectionLogOffsetResponse, error)
}

type UnimplementedLogServiceServer struct{}

func (UnimplementedLogServiceServer) PushLogs(context.Context, *PushLogsRequest) (*PushLogsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PushLogs not implemented")
}
func (UnimplementedLogServiceServer) PullLogs(context.Context, *PullLogsRequest) (*PullLogsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PullLogs not implemented")
}
func (UnimplementedLogServiceServer) GetAllCollectionInfoToCompact(context.Context, *GetAllCollectionInfoToCompactRequest) (*GetAllCollectionInfoToCompactResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAllCollectionInfoToCompact not implemented")
}
func (UnimplementedLogServiceServer) UpdateCollectionLogOffset(context.Context, *UpdateCollectionLogOffsetRequest) (*UpdateCollectionLogOffsetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCollectionLogOffset not implemented")
}

func RegisterLogServiceServer(s grpc.ServiceRegistrar, srv LogServiceServer) {
	s.RegisterService(&LogServiceServiceDesc, srv)
}

func _LogService_PushLogs_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PushLogsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).PushLogs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/PushLogs"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).PushLogs(ctx, req.(*PushLogsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LogService_PullLogs_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PullLogsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).PullLogs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/PullLogs"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).PullLogs(ctx, req.(*PullLogsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LogService_GetAllCollectionInfoToCompact_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAllCollectionInfoToCompactRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).GetAllCollectionInfoToCompact(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetAllCollectionInfoToCompact"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).GetAllCollectionInfoToCompact(ctx, req.(*GetAllCollectionInfoToCompactRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LogService_UpdateCollectionLogOffset_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateCollectionLogOffsetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).UpdateCollectionLogOffset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/UpdateCollectionLogOffset"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).UpdateCollectionLogOffset(ctx, req.(*UpdateCollectionLogOffsetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var LogServiceServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PushLogs", Handler: _LogService_PushLogs_Handler},
		{MethodName: "PullLogs", Handler: _LogService_PullLogs_Handler},
		{MethodName: "GetAllCollectionInfoToCompact", Handler: _LogService_GetAllCollectionInfoToCompact_Handler},
		{MethodName: "UpdateCollectionLogOffset", Handler: _LogService_UpdateCollectionLogOffset_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "logservice.proto",
}

// LogServiceClient is the client-side stub used by compactor/purger
// collaborators.
type LogServiceClient interface {
	PushLogs(ctx context.Context, in *PushLogsRequest, opts ...grpc.CallOption) (*PushLogsResponse, error)
	PullLogs(ctx context.Context, in *PullLogsRequest, opts ...grpc.CallOption) (*PullLogsResponse, error)
	GetAllCollectionInfoToCompact(ctx context.Context, in *GetAllCollectionInfoToCompactRequest, opts ...grpc.CallOption) (*GetAllCollectionInfoToCompactResponse, error)
	UpdateCollectionLogOffset(ctx context.Context, in *UpdateCollectionLogOffsetRequest, opts ...grpc.CallOption) (*UpdateCollectionLogOffsetResponse, error)
}

type logServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLogServiceClient(cc grpc.ClientConnInterface) LogServiceClient {
	return &logServiceClient{cc}
}

func (c *logServiceClient) PushLogs(ctx context.Context, in *PushLogsRequest, opts ...grpc.CallOption) (*PushLogsResponse, error) {
	out := new(PushLogsResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/PushLogs", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *logServiceClient) PullLogs(ctx context.Context, in *PullLogsRequest, opts ...grpc.CallOption) (*PullLogsResponse, error) {
	out := new(PullLogsResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/PullLogs", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *logServiceClient) GetAllCollectionInfoToCompact(ctx context.Context, in *GetAllCollectionInfoToCompactRequest, opts ...grpc.CallOption) (*GetAllCollectionInfoToCompactResponse, error) {
	out := new(GetAllCollectionInfoToCompactResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetAllCollectionInfoToCompact", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *logServiceClient) UpdateCollectionLogOffset(ctx context.Context, in *UpdateCollectionLogOffsetRequest, opts ...grpc.CallOption) (*UpdateCollectionLogOffsetResponse, error) {
	out := new(UpdateCollectionLogOffsetResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/UpdateCollectionLogOffset", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
