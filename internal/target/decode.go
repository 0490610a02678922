package target

import (
	"smir/internal/errors"
)

// maximum number of bytes a fixed-width integer read may cover
const maxIntBytes = 8

// ReadUint decodes an unsigned integer of len(b) bytes in the machine's
// byte order. Requests outside 1..=8 bytes are reported as decode faults,
// never truncated or zero-filled.
func ReadUint(b []byte, m MachineInfo) (uint64, error) {
	if len(b) == 0 || len(b) > maxIntBytes {
		return 0, errors.Newf(errors.ErrorDecodeLength,
			"cannot decode %d bytes as a fixed-width integer", len(b))
	}
	var v uint64
	switch m.Endian {
	case LittleEndian:
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
	case BigEndian:
		for i := 0; i < len(b); i++ {
			v = v<<8 | uint64(b[i])
		}
	}
	return v, nil
}

// ReadInt decodes a signed integer of len(b) bytes in the machine's byte
// order, sign-extending to 64 bits.
func ReadInt(b []byte, m MachineInfo) (int64, error) {
	v, err := ReadUint(b, m)
	if err != nil {
		return 0, err
	}
	shift := uint(64 - len(b)*8)
	return int64(v<<shift) >> shift, nil
}
