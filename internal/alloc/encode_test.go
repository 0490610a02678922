package alloc

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smir/internal/errors"
	"smir/internal/ty"
)

func decodeGraph(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func TestWriteGraphEmitsFlattenedOrder(t *testing.T) {
	resolver := mapResolver{
		7: memoryPointingAt(9),
		9: fnAlloc("callee"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(resolver, []ty.AllocId{7}, &buf))

	doc := decodeGraph(t, &buf)

	roots := doc["roots"].([]interface{})
	require.Len(t, roots, 1)
	root := roots[0].(map[string]interface{})
	assert.Equal(t, float64(7), root["id"])
	assert.Equal(t, float64(0), root["index"])

	allocs := doc["allocations"].([]interface{})
	require.Len(t, allocs, 2)

	first := allocs[0].(map[string]interface{})
	assert.Equal(t, "memory", first["kind"])
	prov := first["memory"].(map[string]interface{})["provenance"].([]interface{})
	require.Len(t, prov, 1)
	edge := prov[0].(map[string]interface{})["alloc"].(map[string]interface{})
	assert.Equal(t, float64(9), edge["id"])
	assert.Equal(t, float64(1), edge["index"], "edge carries the target's flattened index")

	second := allocs[1].(map[string]interface{})
	assert.Equal(t, "function", second["kind"])
	fn := second["function"].(map[string]interface{})
	assert.Equal(t, "item", fn["kind"])
	assert.Equal(t, "callee", fn["def"].(map[string]interface{})["name"])
}

func TestWriteGraphCyclicInput(t *testing.T) {
	resolver := mapResolver{
		1: memoryPointingAt(2),
		2: memoryPointingAt(1),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(resolver, []ty.AllocId{1}, &buf))

	doc := decodeGraph(t, &buf)
	allocs := doc["allocations"].([]interface{})
	assert.Len(t, allocs, 2, "each allocation appears exactly once")

	// The back edge refers to index 0 instead of re-embedding.
	second := allocs[1].(map[string]interface{})
	prov := second["memory"].(map[string]interface{})["provenance"].([]interface{})
	back := prov[0].(map[string]interface{})["alloc"].(map[string]interface{})
	assert.Equal(t, float64(0), back["index"])
}

func TestWriteGraphStaticBreaksRecursion(t *testing.T) {
	// A static referencing memory that points back at the static: the
	// static entry carries no edges, so the pass terminates.
	resolver := mapResolver{
		1: &StaticAlloc{Def: ty.StaticDef{DefId: ty.DefId{Id: 11, Name: "COUNTER"}}},
		2: memoryPointingAt(1),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(resolver, []ty.AllocId{2}, &buf))

	doc := decodeGraph(t, &buf)
	allocs := doc["allocations"].([]interface{})
	require.Len(t, allocs, 2)
	static := allocs[1].(map[string]interface{})
	assert.Equal(t, "static", static["kind"])
	assert.Equal(t, "COUNTER", static["static"].(map[string]interface{})["def"].(map[string]interface{})["name"])
}

func TestWriteGraphVTable(t *testing.T) {
	trait := &ty.Binder[ty.ExistentialTraitRef]{
		Value: ty.ExistentialTraitRef{Def: ty.TraitDef{DefId: ty.DefId{Id: 3, Name: "Display"}}},
	}
	resolver := mapResolver{
		4: &VTableAlloc{Ty: ty.NewTy(&ty.StrTy{}), TraitRef: trait},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(resolver, []ty.AllocId{4}, &buf))

	doc := decodeGraph(t, &buf)
	allocs := doc["allocations"].([]interface{})
	require.Len(t, allocs, 1)
	vt := allocs[0].(map[string]interface{})["vtable"].(map[string]interface{})
	assert.Equal(t, "str", vt["ty"])
	assert.Equal(t, "Display", vt["trait"])
}

func TestWriteGraphResolverFault(t *testing.T) {
	resolver := mapResolver{
		1: memoryPointingAt(99),
	}

	var buf bytes.Buffer
	err := WriteGraph(resolver, []ty.AllocId{1}, &buf)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnknownItem, errors.CodeOf(err))
}