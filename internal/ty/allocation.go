package ty

import (
	"smir/internal/errors"
	"smir/internal/target"
)

// AllocId identifies one unit of global memory inside the host context. The
// raw value is derived from host addresses and is not stable across runs;
// serialized output pairs it with a flattened-order index that is.
type AllocId uint64

// ProvenanceEntry records that the pointer-sized range starting at Offset
// inside an allocation's bytes points into another allocation.
type ProvenanceEntry struct {
	Offset int
	Alloc  AllocId
}

// ProvenanceMap is the sparse, offset-ordered set of pointer ranges inside
// an allocation. Entries can reference the owning allocation itself; that is
// how cycles enter the graph.
type ProvenanceMap struct {
	Ptrs []ProvenanceEntry
}

// At returns the provenance entry starting exactly at offset.
func (p *ProvenanceMap) At(offset int) (ProvenanceEntry, bool) {
	for _, e := range p.Ptrs {
		if e.Offset == offset {
			return e, true
		}
	}
	return ProvenanceEntry{}, false
}

// Allocation is concrete global memory: raw bytes, an optional
// initialization mask (nil means fully initialized), and the provenance of
// any pointers stored in the bytes.
type Allocation struct {
	Bytes      []byte
	InitMask   []bool
	Provenance ProvenanceMap
	Align      uint64
	Mutability Mutability
}

// initialized reports whether every byte in [start, start+size) is
// initialized.
func (a *Allocation) initialized(start, size int) bool {
	if a.InitMask == nil {
		return true
	}
	for i := start; i < start+size; i++ {
		if i >= len(a.InitMask) || !a.InitMask[i] {
			return false
		}
	}
	return true
}

// checkRange validates a read of size bytes at start.
func (a *Allocation) checkRange(start, size int) error {
	if start < 0 || size < 0 || start+size > len(a.Bytes) {
		return errors.Newf(errors.ErrorDecodeOutOfBounds,
			"read of %d bytes at offset %d exceeds allocation of %d bytes",
			size, start, len(a.Bytes))
	}
	if !a.initialized(start, size) {
		return errors.Newf(errors.ErrorDecodeUninit,
			"read of %d bytes at offset %d covers uninitialized memory", size, start)
	}
	return nil
}

// ReadUint decodes an unsigned integer of size bytes at the given offset.
func (a *Allocation) ReadUint(m target.MachineInfo, start, size int) (uint64, error) {
	if err := a.checkRange(start, size); err != nil {
		return 0, err
	}
	return target.ReadUint(a.Bytes[start:start+size], m)
}

// ReadInt decodes a signed integer of size bytes at the given offset.
func (a *Allocation) ReadInt(m target.MachineInfo, start, size int) (int64, error) {
	if err := a.checkRange(start, size); err != nil {
		return 0, err
	}
	return target.ReadInt(a.Bytes[start:start+size], m)
}

// ReadPtr decodes a pointer-sized value at the given offset and resolves its
// provenance, when any is recorded there.
func (a *Allocation) ReadPtr(m target.MachineInfo, start int) (uint64, AllocId, bool, error) {
	value, err := a.ReadUint(m, start, m.PointerWidth)
	if err != nil {
		return 0, 0, false, err
	}
	entry, ok := a.Provenance.At(start)
	return value, entry.Alloc, ok, nil
}
