package onnx

import "fmt"

// DataType is TensorProto.DataType with NumPy-style names. ONNX Runtime's
// element type enum uses the same numbering, so values from either side
// convert directly.
type DataType int32

const (
	DataTypeUndefined      = DataType(TensorProto_UNDEFINED)
	DataTypeFloat          = DataType(TensorProto_FLOAT)
	DataTypeUint8          = DataType(TensorProto_UINT8)
	DataTypeInt8           = DataType(TensorProto_INT8)
	DataTypeUint16         = DataType(TensorProto_UINT16)
	DataTypeInt16          = DataType(TensorProto_INT16)
	DataTypeInt32          = DataType(TensorProto_INT32)
	DataTypeInt64          = DataType(TensorProto_INT64)
	DataTypeString         = DataType(TensorProto_STRING)
	DataTypeBool           = DataType(TensorProto_BOOL)
	DataTypeFloat16        = DataType(TensorProto_FLOAT16)
	DataTypeDouble         = DataType(TensorProto_DOUBLE)
	DataTypeUint32         = DataType(TensorProto_UINT32)
	DataTypeUint64         = DataType(TensorProto_UINT64)
	DataTypeComplex64      = DataType(TensorProto_COMPLEX64)
	DataTypeComplex128     = DataType(TensorProto_COMPLEX128)
	DataTypeBFloat16       = DataType(TensorProto_BFLOAT16)
	DataTypeFloat8E4M3FN   = DataType(TensorProto_FLOAT8E4M3FN)
	DataTypeFloat8E4M3FNUZ = DataType(TensorProto_FLOAT8E4M3FNUZ)
	DataTypeFloat8E5M2     = DataType(TensorProto_FLOAT8E5M2)
	DataTypeFloat8E5M2FNUZ = DataType(TensorProto_FLOAT8E5M2FNUZ)
	DataTypeUint4          = DataType(TensorProto_UINT4)
	DataTypeInt4           = DataType(TensorProto_INT4)
	DataTypeFloat4E2M1     = DataType(TensorProto_FLOAT4E2M1)
)

var dataTypeNames = map[DataType]string{
	DataTypeUndefined:      "undefined",
	DataTypeFloat:          "float32",
	DataTypeUint8:          "uint8",
	DataTypeInt8:           "int8",
	DataTypeUint16:         "uint16",
	DataTypeInt16:          "int16",
	DataTypeInt32:          "int32",
	DataTypeInt64:          "int64",
	DataTypeString:         "string",
	DataTypeBool:           "bool",
	DataTypeFloat16:        "float16",
	DataTypeDouble:         "float64",
	DataTypeUint32:         "uint32",
	DataTypeUint64:         "uint64",
	DataTypeComplex64:      "complex64",
	DataTypeComplex128:     "complex128",
	DataTypeBFloat16:       "bfloat16",
	DataTypeFloat8E4M3FN:   "float8e4m3fn",
	DataTypeFloat8E4M3FNUZ: "float8e4m3fnuz",
	DataTypeFloat8E5M2:     "float8e5m2",
	DataTypeFloat8E5M2FNUZ: "float8e5m2fnuz",
	DataTypeUint4:          "uint4",
	DataTypeInt4:           "int4",
	DataTypeFloat4E2M1:     "float4e2m1",
}

// String returns the NumPy-style name of the element type.
func (d DataType) String() string {
	if name, ok := dataTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int32(d))
}
