// Package target describes the properties of the machine the IR under
// inspection was compiled for. The host compiler context owns the real
// answers; this package only fixes the vocabulary.
package target

// Endian is the byte order of the target machine.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	switch e {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "endian?"
	}
}

// MachineInfo bundles the target facts the core needs when reading raw
// allocation bytes.
type MachineInfo struct {
	Endian       Endian
	PointerWidth int // in bytes
}

// DefaultMachine matches the most common compilation target and is what the
// fixture loader assumes when a fixture does not say otherwise.
func DefaultMachine() MachineInfo {
	return MachineInfo{Endian: LittleEndian, PointerWidth: 8}
}
