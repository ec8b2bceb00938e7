package grpcutils

import (
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"os"

	"github.com/corevecdb/corevec/internal/otel"
	"github.com/corevecdb/corevec/pkg/jsoncodec"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const maxGrpcFrameSize = 256 * 1024 * 1024

// ReadinessProbeService is a name for operator-side readiness checks; no
// health-check service is registered under it on the servers this package
// starts.
const ReadinessProbeService = "corevec-readiness"

type GrpcServer interface {
	io.Closer
	Port() int
}

type GrpcProvider interface {
	StartGrpcServer(name string, grpcConfig *GrpcConfig, registerFunc func(grpc.ServiceRegistrar)) (GrpcServer, error)
}

var Default = &defaultProvider{}

type defaultProvider struct{}

func (d *defaultProvider) StartGrpcServer(name string, grpcConfig *GrpcConfig, registerFunc func(grpc.ServiceRegistrar)) (GrpcServer, error) {
	return newDefaultGrpcProvider(name, grpcConfig, registerFunc)
}

type defaultGrpcServer struct {
	server *grpc.Server
	port   int
}

// newDefaultGrpcProvider forces the JSON codec (SPEC_FULL.md Open Question
// (c)) onto the server and serves in the background: the teacher's
// equivalent calls server.Serve(listener) inline before returning the
// GrpcServer handle, which blocks forever and never returns it. Here Serve
// runs in its own goroutine so StartGrpcServer actually returns once the
// listener is bound.
func newDefaultGrpcProvider(name string, grpcConfig *GrpcConfig, registerFunc func(grpc.ServiceRegistrar)) (GrpcServer, error) {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(maxGrpcFrameSize),
		grpc.ForceServerCodec(jsoncodec.Codec{}),
	}
	if grpcConfig.MTLSEnabled() {
		cert, err := tls.LoadX509KeyPair(grpcConfig.CertPath, grpcConfig.KeyPath)
		if err != nil {
			return nil, err
		}
		ca := x509.NewCertPool()
		caBytes, err := os.ReadFile(grpcConfig.CAPath)
		if err != nil {
			return nil, err
		}
		if !ca.AppendCertsFromPEM(caBytes) {
			return nil, err
		}
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			ClientCAs:    ca,
			ClientAuth:   tls.RequireAndVerifyClientCert,
		}
		opts = append(opts, grpc.Creds(credentials.NewTLS(tlsConfig)))
	}
	opts = append(opts, grpc.UnaryInterceptor(otel.ServerGrpcInterceptor))

	c := &defaultGrpcServer{server: grpc.NewServer(opts...)}
	registerFunc(c.server)

	listener, err := net.Listen("tcp", grpcConfig.BindAddress)
	if err != nil {
		return nil, err
	}
	c.port = listener.Addr().(*net.TCPAddr).Port

	go func() {
		if err := c.server.Serve(listener); err != nil {
			log.Error("grpc server stopped serving", zap.String("service", name), zap.Error(err))
		}
	}()

	log.Info("started grpc server", zap.String("service", name), zap.Int("port", c.port))
	return c, nil
}

func (c *defaultGrpcServer) Port() int {
	return c.port
}

func (c *defaultGrpcServer) Close() error {
	c.server.GracefulStop()
	log.Info("stopped grpc server")
	return nil
}
