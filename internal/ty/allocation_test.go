package ty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smir/internal/errors"
	"smir/internal/target"
)

func TestAllocationReadUint(t *testing.T) {
	a := &Allocation{Bytes: []byte{0x2a, 0, 0, 0, 1, 0, 0, 0}}
	m := target.DefaultMachine()

	v, err := a.ReadUint(m, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	v, err = a.ReadUint(m, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestAllocationReadInt(t *testing.T) {
	a := &Allocation{Bytes: []byte{0xff, 0xff}}
	m := target.DefaultMachine()

	v, err := a.ReadInt(m, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

func TestAllocationReadOutOfBounds(t *testing.T) {
	a := &Allocation{Bytes: []byte{1, 2, 3, 4}}
	m := target.DefaultMachine()

	_, err := a.ReadUint(m, 2, 4)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorDecodeOutOfBounds, errors.CodeOf(err))

	_, err = a.ReadUint(m, -1, 2)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorDecodeOutOfBounds, errors.CodeOf(err))
}

func TestAllocationReadUninit(t *testing.T) {
	a := &Allocation{
		Bytes:    []byte{1, 2, 3, 4},
		InitMask: []bool{true, true, false, true},
	}
	m := target.DefaultMachine()

	v, err := a.ReadUint(m, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0201), v)

	_, err = a.ReadUint(m, 1, 2)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorDecodeUninit, errors.CodeOf(err))
}

func TestAllocationReadPtr(t *testing.T) {
	a := &Allocation{
		Bytes: []byte{8, 0, 0, 0, 0, 0, 0, 0, 0xee, 0, 0, 0, 0, 0, 0, 0},
		Provenance: ProvenanceMap{Ptrs: []ProvenanceEntry{
			{Offset: 0, Alloc: 7},
		}},
	}
	m := target.DefaultMachine()

	value, id, ok, err := a.ReadPtr(m, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(8), value)
	assert.Equal(t, AllocId(7), id)

	value, _, ok, err = a.ReadPtr(m, 8)
	require.NoError(t, err)
	assert.False(t, ok, "no provenance recorded at offset 8")
	assert.Equal(t, uint64(0xee), value)
}