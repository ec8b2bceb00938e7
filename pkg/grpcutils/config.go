package grpcutils

// GrpcConfig is the transport config shared by the Coordinator and Log
// Service gRPC servers, grounded on the teacher's pkg/grpcutils/config.go.
type GrpcConfig struct {
	BindAddress string

	MaxConcurrentStreams uint32
	NumStreamWorkers     uint32

	CertPath string
	KeyPath  string
	CAPath   string
}

func (c *GrpcConfig) MTLSEnabled() bool {
	return c.CertPath != "" && c.KeyPath != "" && c.CAPath != ""
}
