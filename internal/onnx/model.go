// Package onnx holds the generated types for the subset of the ONNX protobuf
// schema needed to introspect a model's declared interface.
package onnx

//go:generate protoc --go_out=. --go_opt=paths=source_relative onnx.proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
)

// ErrMalformed is returned when the input is not a well-formed ModelProto.
var ErrMalformed = errors.New("malformed ONNX protobuf")

// Unmarshal decodes a serialized ModelProto. Fields outside onnx.proto, such
// as tensor payloads and training info, are retained as unknown fields.
func Unmarshal(data []byte) (*ModelProto, error) {
	model := &ModelProto{}
	if err := proto.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return model, nil
}

// InitializerNames returns the set of names bound by dense and sparse
// initializers.
func (x *GraphProto) InitializerNames() map[string]struct{} {
	names := make(map[string]struct{}, len(x.GetInitializer())+len(x.GetSparseInitializer()))
	for _, init := range x.GetInitializer() {
		names[init.GetName()] = struct{}{}
	}
	for _, init := range x.GetSparseInitializer() {
		names[init.GetValues().GetName()] = struct{}{}
	}
	return names
}
