package session

import (
	"sort"

	"github.com/zerfoo/ortmeta/internal/onnx"
)

// Metadata is the model-level information recorded in the artifact.
type Metadata struct {
	ProducerName     string     `json:"producer_name" yaml:"producer_name"`
	ProducerVersion  string     `json:"producer_version" yaml:"producer_version"`
	GraphName        string     `json:"graph_name" yaml:"graph_name"`
	GraphDescription string     `json:"graph_description" yaml:"graph_description"`
	Domain           string     `json:"domain" yaml:"domain"`
	Description      string     `json:"description" yaml:"description"`
	Version          int64      `json:"version" yaml:"version"`
	IRVersion        int64      `json:"ir_version" yaml:"ir_version"`
	Opsets           []Opset    `json:"opset_import" yaml:"opset_import"`
	NodeCount        int        `json:"node_count" yaml:"node_count"`
	Custom           []KeyValue `json:"custom_metadata_map" yaml:"custom_metadata_map"`
}

// Opset is one operator set the model imports.
type Opset struct {
	Domain  string `json:"domain" yaml:"domain"`
	Version int64  `json:"version" yaml:"version"`
}

// KeyValue is a custom metadata entry. Entries keep their declared order.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// defaultOpsetDomain is how ONNX names the empty operator-set domain.
const defaultOpsetDomain = "ai.onnx"

func metadataOf(m *onnx.ModelProto) *Metadata {
	g := m.GetGraph()
	md := &Metadata{
		ProducerName:     m.GetProducerName(),
		ProducerVersion:  m.GetProducerVersion(),
		GraphName:        g.GetName(),
		GraphDescription: g.GetDocString(),
		Domain:           m.GetDomain(),
		Description:      m.GetDocString(),
		Version:          m.GetModelVersion(),
		IRVersion:        m.GetIrVersion(),
		Opsets:           make([]Opset, 0, len(m.GetOpsetImport())),
		NodeCount:        len(g.GetNode()),
		Custom:           make([]KeyValue, 0, len(m.GetMetadataProps())),
	}
	for _, op := range m.GetOpsetImport() {
		domain := op.GetDomain()
		if domain == "" {
			domain = defaultOpsetDomain
		}
		md.Opsets = append(md.Opsets, Opset{Domain: domain, Version: op.GetVersion()})
	}
	for _, e := range m.GetMetadataProps() {
		md.Custom = append(md.Custom, KeyValue{Key: e.GetKey(), Value: e.GetValue()})
	}
	return md
}

// orderCustom lists custom metadata in the order the model declares it.
// Keys the model does not declare follow in sorted order.
func orderCustom(declared []*onnx.StringStringEntryProto, custom map[string]string) []KeyValue {
	out := make([]KeyValue, 0, len(custom))
	seen := make(map[string]bool, len(custom))
	for _, e := range declared {
		value, ok := custom[e.GetKey()]
		if !ok || seen[e.GetKey()] {
			continue
		}
		seen[e.GetKey()] = true
		out = append(out, KeyValue{Key: e.GetKey(), Value: value})
	}
	rest := make([]string, 0, len(custom)-len(out))
	for key := range custom {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		out = append(out, KeyValue{Key: key, Value: custom[key]})
	}
	return out
}
