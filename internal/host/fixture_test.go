package host

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smir/internal/alloc"
	"smir/internal/errors"
	"smir/internal/target"
	"smir/internal/ty"
)

func fixtureDoc(t *testing.T) string {
	t.Helper()
	payload := base64.StdEncoding.EncodeToString([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	return fmt.Sprintf(`{
		"machine": {"endian": "little", "pointer_width": 8},
		"allocations": [
			{"id": 1, "kind": "memory", "bytes": %q, "align": 8,
			 "provenance": [{"offset": 0, "alloc": 2}]},
			{"id": 2, "kind": "function", "name": "main", "def_id": 7},
			{"id": 3, "kind": "static", "name": "GREETING", "def_id": 9}
		],
		"roots": [1, 3]
	}`, payload)
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(strings.NewReader(fixtureDoc(t)))
	require.NoError(t, err)

	assert.Equal(t, target.LittleEndian, f.Machine().Endian)
	assert.Equal(t, 8, f.Machine().PointerWidth)
	assert.Equal(t, []ty.AllocId{1, 3}, f.Roots())

	g, err := f.GlobalAlloc(1)
	require.NoError(t, err)
	mem, ok := g.(*alloc.MemoryAlloc)
	require.True(t, ok)
	assert.Len(t, mem.Allocation.Bytes, 8)
	require.Len(t, mem.Allocation.Provenance.Ptrs, 1)
	assert.Equal(t, ty.AllocId(2), mem.Allocation.Provenance.Ptrs[0].Alloc)

	g, err = f.GlobalAlloc(2)
	require.NoError(t, err)
	fn, ok := g.(*alloc.FunctionAlloc)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Instance.Def.Name)

	_, err = f.GlobalAlloc(99)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnknownItem, errors.CodeOf(err))
}

func TestLoadFixtureDefaults(t *testing.T) {
	f, err := LoadFixture(strings.NewReader(`{"allocations": [], "roots": []}`))
	require.NoError(t, err)
	assert.Equal(t, target.DefaultMachine(), f.Machine())
}

func TestLoadFixtureFaults(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"unknown endian", `{"machine": {"endian": "middle"}}`},
		{"pointer width", `{"machine": {"pointer_width": 16}}`},
		{"unknown kind", `{"allocations": [{"id": 1, "kind": "blob"}]}`},
		{"unnamed function", `{"allocations": [{"id": 1, "kind": "function"}]}`},
		{"unnamed static", `{"allocations": [{"id": 1, "kind": "static"}]}`},
		{"dangling root", `{"allocations": [], "roots": [5]}`},
		{"provenance offset", `{"allocations": [{"id": 1, "kind": "memory", "provenance": [{"offset": 4, "alloc": 1}]}]}`},
		{"mask length", `{"allocations": [{"id": 1, "kind": "memory", "bytes": "AAA=", "init_mask": [true]}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFixture(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Equal(t, errors.ErrorBadFixture, errors.CodeOf(err))
		})
	}
}

func TestFixtureDrivesSerialization(t *testing.T) {
	f, err := LoadFixture(strings.NewReader(fixtureDoc(t)))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, alloc.WriteGraph(f, f.Roots(), &buf))

	out := buf.String()
	assert.Contains(t, out, `"kind": "memory"`)
	assert.Contains(t, out, `"kind": "function"`)
	assert.Contains(t, out, `"kind": "static"`)
	assert.Contains(t, out, `"name": "GREETING"`)
}

func TestFixtureBodies(t *testing.T) {
	f := NewFixture(target.DefaultMachine())
	_, err := f.Body("missing")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnknownItem, errors.CodeOf(err))
	assert.Empty(t, f.Items())
}