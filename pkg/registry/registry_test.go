package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New[func() string]()
	r.Register("native", func() string { return "native" })

	got, ok := r.Get("native")
	require.True(t, ok)
	assert.Equal(t, "native", got())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := New[int]()
	r.Register("a", 1)
	r.Register("a", 2)

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := New[int]()
	r.Register("onnxruntime", 1)
	r.Register("native", 2)
	r.Register("alpha", 3)

	assert.Equal(t, []string{"alpha", "native", "onnxruntime"}, r.Names())
	assert.Empty(t, New[int]().Names())
}

func TestRegistry_Unregister(t *testing.T) {
	r := New[int]()
	r.Register("native", 1)
	r.Register("fake", 2)

	r.Unregister("fake")
	r.Unregister("missing")

	_, ok := r.Get("fake")
	assert.False(t, ok)
	assert.Equal(t, []string{"native"}, r.Names())
}
