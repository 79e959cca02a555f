// Package onnxtest builds ONNX model files for tests.
package onnxtest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/ortmeta/internal/onnx"
)

// Shape builds a TensorShapeProto. Each dim is an int (fixed size), a string
// (symbolic dimension) or nil (unknown).
func Shape(dims ...interface{}) *onnx.TensorShapeProto {
	shape := &onnx.TensorShapeProto{Dim: make([]*onnx.TensorShapeProto_Dimension, len(dims))}
	for i, d := range dims {
		dim := &onnx.TensorShapeProto_Dimension{}
		switch v := d.(type) {
		case int:
			dim.Value = &onnx.TensorShapeProto_Dimension_DimValue{DimValue: int64(v)}
		case string:
			dim.Value = &onnx.TensorShapeProto_Dimension_DimParam{DimParam: v}
		case nil:
		default:
			panic(fmt.Sprintf("onnxtest: unsupported dim %T", d))
		}
		shape.Dim[i] = dim
	}
	return shape
}

// TensorType returns a tensor TypeProto with the given dims, see Shape.
func TensorType(elem onnx.DataType, dims ...interface{}) *onnx.TypeProto {
	return &onnx.TypeProto{Value: &onnx.TypeProto_TensorType{TensorType: &onnx.TypeProto_Tensor{
		ElemType: int32(elem),
		Shape:    Shape(dims...),
	}}}
}

// SequenceOf returns a sequence TypeProto.
func SequenceOf(elem *onnx.TypeProto) *onnx.TypeProto {
	return &onnx.TypeProto{Value: &onnx.TypeProto_SequenceType{SequenceType: &onnx.TypeProto_Sequence{ElemType: elem}}}
}

// MapOf returns a map TypeProto.
func MapOf(key onnx.DataType, value *onnx.TypeProto) *onnx.TypeProto {
	return &onnx.TypeProto{Value: &onnx.TypeProto_MapType{MapType: &onnx.TypeProto_Map{KeyType: int32(key), ValueType: value}}}
}

// OptionalOf returns an optional TypeProto.
func OptionalOf(elem *onnx.TypeProto) *onnx.TypeProto {
	return &onnx.TypeProto{Value: &onnx.TypeProto_OptionalType{OptionalType: &onnx.TypeProto_Optional{ElemType: elem}}}
}

// Value returns a ValueInfoProto with the given type, which may be nil.
func Value(name string, typ *onnx.TypeProto) *onnx.ValueInfoProto {
	return &onnx.ValueInfoProto{Name: name, Type: typ}
}

// Tensor returns a tensor-typed ValueInfoProto, see Shape for dims.
func Tensor(name string, elem onnx.DataType, dims ...interface{}) *onnx.ValueInfoProto {
	return Value(name, TensorType(elem, dims...))
}

// Model returns a minimal valid model declaring the given interface.
func Model(inputs, outputs []*onnx.ValueInfoProto) *onnx.ModelProto {
	return &onnx.ModelProto{
		IrVersion:       8,
		ProducerName:    "ortmeta-test",
		ProducerVersion: "1.0",
		OpsetImport:     []*onnx.OperatorSetIdProto{{Version: 17}},
		Graph: &onnx.GraphProto{
			Name:   "test_graph",
			Node:   []*onnx.NodeProto{{Name: "node0", OpType: "Identity"}},
			Input:  inputs,
			Output: outputs,
		},
	}
}

// Classifier is a model with input x [1, 3, 224, 224] float32 and output
// y [1, 1000] float32.
func Classifier() *onnx.ModelProto {
	return Model(
		[]*onnx.ValueInfoProto{Tensor("x", onnx.DataTypeFloat, 1, 3, 224, 224)},
		[]*onnx.ValueInfoProto{Tensor("y", onnx.DataTypeFloat, 1, 1000)},
	)
}

// Marshal encodes m, failing the test on error.
func Marshal(t testing.TB, m proto.Message) []byte {
	t.Helper()
	data, err := proto.Marshal(m)
	if err != nil {
		t.Fatalf("failed to marshal %T: %v", m, err)
	}
	return data
}

// Write encodes m into dir/name and returns the file path.
func Write(t testing.TB, dir, name string, m *onnx.ModelProto) string {
	t.Helper()
	return WriteBytes(t, dir, name, Marshal(t, m))
}

// WriteBytes writes data into dir/name and returns the file path.
func WriteBytes(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
