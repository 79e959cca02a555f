package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/zerfoo/ortmeta/internal/onnx"
)

// Kind is the category of a declared value.
type Kind int

const (
	KindUnknown Kind = iota
	KindTensor
	KindSparseTensor
	KindSequence
	KindMap
	KindOptional
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindTensor:       "tensor",
	KindSparseTensor: "sparse_tensor",
	KindSequence:     "sequence",
	KindMap:          "map",
	KindOptional:     "optional",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Dim is one shape element: a fixed size, a symbolic dimension name, or
// unknown.
type Dim struct {
	Value int64
	Param string
	Fixed bool
}

// String renders fixed dims as integers, symbolic dims verbatim and unknown
// dims as None, the way onnxruntime's Python binding prints them.
func (d Dim) String() string {
	switch {
	case d.Param != "":
		return d.Param
	case d.Fixed:
		return strconv.FormatInt(d.Value, 10)
	default:
		return "None"
	}
}

// MarshalJSON renders the dim as a number, a string or null.
func (d Dim) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.plain())
}

// MarshalYAML implements yaml.Marshaler.
func (d Dim) MarshalYAML() (interface{}, error) {
	return d.plain(), nil
}

func (d Dim) plain() interface{} {
	switch {
	case d.Param != "":
		return d.Param
	case d.Fixed:
		return d.Value
	default:
		return nil
	}
}

// Shape is an ordered list of dims. An empty shape is a scalar, or a value
// whose rank is not declared.
type Shape []Dim

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Descriptor describes one declared graph input or output.
type Descriptor struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
	// Shape is set for tensor and sparse tensor values.
	Shape Shape `json:"shape" yaml:"shape"`
	// ElemType is the tensor element type, or the innermost element type for
	// sequences and optionals.
	ElemType onnx.DataType `json:"-" yaml:"-"`
	// Type is the rendered type: the element type name for tensors, a
	// bracketed form such as "sequence<float32>" otherwise.
	Type string `json:"type" yaml:"type"`
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %s %s", d.Name, d.Shape, d.Type)
}

// Describe converts a declared ValueInfoProto into a Descriptor.
func Describe(vi *onnx.ValueInfoProto) Descriptor {
	d := Descriptor{Name: vi.GetName(), Shape: Shape{}}
	d.Kind, d.ElemType, d.Type = describeType(vi.GetType())

	shape := vi.GetType().GetTensorType().GetShape()
	if shape == nil {
		shape = vi.GetType().GetSparseTensorType().GetShape()
	}
	for _, dim := range shape.GetDim() {
		switch v := dim.GetValue().(type) {
		case *onnx.TensorShapeProto_Dimension_DimValue:
			d.Shape = append(d.Shape, Dim{Value: v.DimValue, Fixed: true})
		case *onnx.TensorShapeProto_Dimension_DimParam:
			d.Shape = append(d.Shape, Dim{Param: v.DimParam})
		default:
			d.Shape = append(d.Shape, Dim{})
		}
	}
	return d
}

func describeType(t *onnx.TypeProto) (Kind, onnx.DataType, string) {
	switch v := t.GetValue().(type) {
	case *onnx.TypeProto_TensorType:
		elem := onnx.DataType(v.TensorType.GetElemType())
		return KindTensor, elem, elem.String()
	case *onnx.TypeProto_SparseTensorType:
		elem := onnx.DataType(v.SparseTensorType.GetElemType())
		return KindSparseTensor, elem, "sparse<" + elem.String() + ">"
	case *onnx.TypeProto_SequenceType:
		_, elem, name := describeType(v.SequenceType.GetElemType())
		return KindSequence, elem, "sequence<" + name + ">"
	case *onnx.TypeProto_OptionalType:
		_, elem, name := describeType(v.OptionalType.GetElemType())
		return KindOptional, elem, "optional<" + name + ">"
	case *onnx.TypeProto_MapType:
		_, elem, name := describeType(v.MapType.GetValueType())
		key := onnx.DataType(v.MapType.GetKeyType())
		return KindMap, elem, "map<" + key.String() + "," + name + ">"
	default:
		return KindUnknown, onnx.DataTypeUndefined, "unknown"
	}
}

// DescribeAll converts each ValueInfoProto in order.
func DescribeAll(infos []*onnx.ValueInfoProto) []Descriptor {
	out := make([]Descriptor, len(infos))
	for i, vi := range infos {
		out[i] = Describe(vi)
	}
	return out
}
