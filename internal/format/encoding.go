package format

import (
	"encoding/binary"
	"math"
)

// Binary encoding utilities for little- and big-endian integers.
//
// The core record format is little-endian throughout, RcnA blocks included,
// but the ExSM block type was authored against a big-endian wire convention
// and is decoded that way rather than "fixed" to match the rest of the format.
//
// Performance note: after benchmarking, we determined that Go's standard
// library implementation is already highly optimized by the compiler.
// Unsafe pointer implementations provided no measurable benefit and added
// complexity. Modern Go compilers inline and optimize binary.LittleEndian
// calls extremely well.
//
// This is a read-only decoder: there is no write path, so only the integer
// widths and byte orders the format actually stores are exposed here.

// ReadI32 reads an int32 value from the buffer at the specified offset in little-endian format.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}

// ReadI16 reads an int16 value from the buffer at the specified offset in little-endian format.
func ReadI16(b []byte, off int) int16 {
	return int16(binary.LittleEndian.Uint16(b[off : off+2]))
}

// ReadI64 reads an int64 value from the buffer at the specified offset in little-endian format.
func ReadI64(b []byte, off int) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}

// ReadF64 reads a float64 value from the buffer at the specified offset in little-endian format.
func ReadF64(b []byte, off int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[off : off+8]))
}

// ReadI32BE reads an int32 value from the buffer at the specified offset in big-endian format.
// Used for the ExSM block type, which was authored against a big-endian
// convention unlike the rest of the format.
func ReadI32BE(b []byte, off int) int32 {
	return int32(binary.BigEndian.Uint32(b[off : off+4]))
}

// ReadSizeEntryKey reads a size-table entry's packed (index, tag) key from
// b[off:off+4]. The tag half, b[off+2:off+4], is a leading-zero big-endian
// uint16: single-byte tags are stored with a zero high byte first. The
// index half, b[off:off+2], drops its byte order the other way: a
// single-byte index is stored as the value byte followed by a zero, so a
// zero second byte means the index is just b[off], not b[off]<<8.
func ReadSizeEntryKey(b []byte, off int) (tag, index uint16) {
	tag = binary.BigEndian.Uint16(b[off+2 : off+4])
	if b[off+1] == 0 {
		index = uint16(b[off])
	} else {
		index = binary.BigEndian.Uint16(b[off : off+2])
	}
	return tag, index
}
