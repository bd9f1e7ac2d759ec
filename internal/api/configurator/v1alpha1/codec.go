// Package configuratorv1alpha1 declares the configurator gRPC service. Messages are plain
// structs carried by a JSON codec registered under the "json" content subtype.
package configuratorv1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype clients must request
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// CallOption selects the JSON codec on a client call
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}

// DialOption makes every call of a connection use the JSON codec
func DialOption() grpc.DialOption {
	return grpc.WithDefaultCallOptions(CallOption())
}
