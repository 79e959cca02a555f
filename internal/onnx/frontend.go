//go:build onnxruntime

package onnx

import (
	"errors"
	"fmt"
	"runtime"

	ort "github.com/yalue/onnxruntime_go"
)

// ErrRuntimeUnavailable is returned when the ONNX Runtime shared library
// cannot be loaded.
var ErrRuntimeUnavailable = errors.New("onnxruntime unavailable")

// DefaultSharedLibraryPath returns the platform's conventional name for the
// ONNX Runtime shared library, resolved by the dynamic loader's search path.
func DefaultSharedLibraryPath() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "darwin":
		return "libonnxruntime.dylib"
	default:
		return "libonnxruntime.so"
	}
}

// RuntimeModel is a model as ONNX Runtime loads it.
type RuntimeModel struct {
	Inputs   []*ValueInfoProto
	Outputs  []*ValueInfoProto
	Metadata RuntimeMetadata
}

// RuntimeMetadata is the model metadata reported by ONNX Runtime.
type RuntimeMetadata struct {
	ProducerName string
	GraphName    string
	Domain       string
	Description  string
	Version      int64
	Custom       map[string]string
}

// LoadRuntimeModel loads the serialized model in ONNX Runtime and returns its
// interface and metadata. The runtime environment lives only for the duration
// of the call.
//
// ONNX Runtime reports symbolic and unknown dimensions alike as -1, and
// describes non-tensor values by kind only. declared is the graph decoded
// from the same bytes; dimension names and nested types are restored from it
// by value name.
func LoadRuntimeModel(libraryPath string, data []byte, declared *GraphProto) (rm *RuntimeModel, err error) {
	if libraryPath == "" {
		libraryPath = DefaultSharedLibraryPath()
	}
	ort.SetSharedLibraryPath(libraryPath)

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("%w: failed to initialize ONNX Runtime environment from %s: %v", ErrRuntimeUnavailable, libraryPath, err)
	}
	defer func() {
		if derr := ort.DestroyEnvironment(); derr != nil && err == nil {
			err = fmt.Errorf("failed to destroy ONNX Runtime environment: %w", derr)
		}
	}()

	ins, outs, err := ort.GetInputOutputInfoWithONNXData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get input/output info: %v", ErrMalformed, err)
	}

	md, err := ort.GetModelMetadataWithONNXData(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get model metadata: %v", ErrMalformed, err)
	}
	defer func() {
		if derr := md.Destroy(); derr != nil && err == nil {
			err = fmt.Errorf("failed to destroy model metadata: %w", derr)
		}
	}()
	meta, err := runtimeMetadata(md)
	if err != nil {
		return nil, err
	}

	return &RuntimeModel{
		Inputs:   convertRuntimeInfo(ins, declared.GetInput()),
		Outputs:  convertRuntimeInfo(outs, declared.GetOutput()),
		Metadata: meta,
	}, nil
}

func runtimeMetadata(md *ort.ModelMetadata) (RuntimeMetadata, error) {
	var (
		out RuntimeMetadata
		err error
	)
	if out.ProducerName, err = md.GetProducerName(); err != nil {
		return out, fmt.Errorf("failed to get producer name: %w", err)
	}
	if out.GraphName, err = md.GetGraphName(); err != nil {
		return out, fmt.Errorf("failed to get graph name: %w", err)
	}
	if out.Domain, err = md.GetDomain(); err != nil {
		return out, fmt.Errorf("failed to get domain: %w", err)
	}
	if out.Description, err = md.GetDescription(); err != nil {
		return out, fmt.Errorf("failed to get description: %w", err)
	}
	if out.Version, err = md.GetVersion(); err != nil {
		return out, fmt.Errorf("failed to get version: %w", err)
	}

	keys, err := md.GetCustomMetadataMapKeys()
	if err != nil {
		return out, fmt.Errorf("failed to get custom metadata keys: %w", err)
	}
	out.Custom = make(map[string]string, len(keys))
	for _, key := range keys {
		value, ok, err := md.LookupCustomMetadataMap(key)
		if err != nil {
			return out, fmt.Errorf("failed to look up custom metadata %q: %w", key, err)
		}
		if ok {
			out.Custom[key] = value
		}
	}
	return out, nil
}

// convertRuntimeInfo builds value infos from what ONNX Runtime reports,
// matching each one to its declaration by name.
func convertRuntimeInfo(infos []ort.InputOutputInfo, declared []*ValueInfoProto) []*ValueInfoProto {
	byName := make(map[string]*ValueInfoProto, len(declared))
	for _, vi := range declared {
		byName[vi.GetName()] = vi
	}
	out := make([]*ValueInfoProto, len(infos))
	for i, info := range infos {
		out[i] = &ValueInfoProto{
			Name: info.Name,
			Type: runtimeType(info, byName[info.Name].GetType()),
		}
	}
	return out
}

func runtimeType(info ort.InputOutputInfo, declared *TypeProto) *TypeProto {
	switch info.OrtValueType {
	case ort.ONNXTypeTensor:
		return &TypeProto{Value: &TypeProto_TensorType{TensorType: &TypeProto_Tensor{
			ElemType: int32(info.DataType),
			Shape:    runtimeShape(info.Dimensions, declared.GetTensorType().GetShape()),
		}}}
	case ort.ONNXTypeSparseTensor:
		return &TypeProto{Value: &TypeProto_SparseTensorType{SparseTensorType: &TypeProto_SparseTensor{
			ElemType: int32(info.DataType),
			Shape:    runtimeShape(info.Dimensions, declared.GetSparseTensorType().GetShape()),
		}}}
	case ort.ONNXTypeSequence:
		if declared.GetSequenceType() != nil {
			return declared
		}
		return &TypeProto{Value: &TypeProto_SequenceType{SequenceType: &TypeProto_Sequence{}}}
	case ort.ONNXTypeMap:
		if declared.GetMapType() != nil {
			return declared
		}
		return &TypeProto{Value: &TypeProto_MapType{MapType: &TypeProto_Map{}}}
	case ort.ONNXTypeOptional:
		if declared.GetOptionalType() != nil {
			return declared
		}
		return &TypeProto{Value: &TypeProto_OptionalType{OptionalType: &TypeProto_Optional{}}}
	default:
		return nil
	}
}

// runtimeShape takes sizes from ONNX Runtime and the names of its -1
// dimensions from the declared shape at the same position.
func runtimeShape(dims ort.Shape, declared *TensorShapeProto) *TensorShapeProto {
	declaredDims := declared.GetDim()
	shape := &TensorShapeProto{Dim: make([]*TensorShapeProto_Dimension, len(dims))}
	for i, d := range dims {
		dim := &TensorShapeProto_Dimension{}
		switch {
		case d >= 0:
			dim.Value = &TensorShapeProto_Dimension_DimValue{DimValue: d}
		case i < len(declaredDims) && declaredDims[i].GetDimParam() != "":
			dim.Value = &TensorShapeProto_Dimension_DimParam{DimParam: declaredDims[i].GetDimParam()}
		}
		shape.Dim[i] = dim
	}
	return shape
}
