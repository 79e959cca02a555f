//go:build onnxruntime

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zerfoo/ortmeta/internal/onnx"
	"github.com/zerfoo/ortmeta/internal/onnxtest"
)

var _ Introspector = (*runtimeSession)(nil)

func TestRuntimeMetadataOf(t *testing.T) {
	m := onnxtest.Classifier()
	m.Graph.DocString = "main"
	m.MetadataProps = []*onnx.StringStringEntryProto{{Key: "stride", Value: "32"}, {Key: "names", Value: "a,b"}}

	md := runtimeMetadataOf(onnx.RuntimeMetadata{
		ProducerName: "pytorch",
		GraphName:    "main_graph",
		Domain:       "ai.example",
		Description:  "classifier",
		Version:      2,
		Custom:       map[string]string{"names": "a,b", "stride": "32"},
	}, m)

	assert.Equal(t, &Metadata{
		ProducerName:     "pytorch",
		ProducerVersion:  "1.0",
		GraphName:        "main_graph",
		GraphDescription: "main",
		Domain:           "ai.example",
		Description:      "classifier",
		Version:          2,
		IRVersion:        8,
		Opsets:           []Opset{{Domain: "ai.onnx", Version: 17}},
		NodeCount:        1,
		Custom:           []KeyValue{{Key: "stride", Value: "32"}, {Key: "names", Value: "a,b"}},
	}, md)
}

func TestRuntimeSession_Closed(t *testing.T) {
	s := &runtimeSession{metadata: &Metadata{}}
	_, err := s.Metadata()
	assert.NoError(t, err)

	assert.NoError(t, s.Close())
	_, err = s.Inputs()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Outputs()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.Metadata()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = s.OverridableInitializers()
	assert.ErrorIs(t, err, ErrClosed)
}
