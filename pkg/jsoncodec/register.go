package jsoncodec

import "google.golang.org/grpc/encoding"

func init() {
	encoding.RegisterCodec(Codec{})
}
