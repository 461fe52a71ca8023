package format

import "testing"

func TestReadI32(t *testing.T) {
	b := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if got := ReadI32(b, 0); got != -1 {
		t.Errorf("ReadI32 = %d, want -1", got)
	}
}

func TestReadI16(t *testing.T) {
	b := []byte{0xFF, 0xFF}
	if got := ReadI16(b, 0); got != -1 {
		t.Errorf("ReadI16 = %d, want -1", got)
	}
}

func TestReadI64(t *testing.T) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0x80}
	if got := ReadI64(b, 0); got >= 0 {
		t.Errorf("ReadI64 = %d, want negative", got)
	}
}

func TestReadF64(t *testing.T) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if got := ReadF64(b, 0); got != 0 {
		t.Errorf("ReadF64(zero bits) = %v, want 0", got)
	}
}

func TestReadI32BE(t *testing.T) {
	b := []byte{0x00, 0x00, 0x01, 0x00}
	if got := ReadI32BE(b, 0); got != 0x100 {
		t.Errorf("ReadI32BE = %d, want %d", got, 0x100)
	}
}

func TestReadSizeEntryKey(t *testing.T) {
	// index half (first 2 bytes) = 0x2C01, tag half (next 2 bytes) = 0x001E
	b := []byte{0x2C, 0x01, 0x00, 0x1E}
	tag, index := ReadSizeEntryKey(b, 0)
	if tag != 0x1E {
		t.Errorf("tag = %#x, want %#x", tag, 0x1E)
	}
	if index != 0x2C01 {
		t.Errorf("index = %#x, want %#x", index, 0x2C01)
	}
}

func TestReadSizeEntryKeySingleByteIndex(t *testing.T) {
	// single-byte index 0x08 is stored as [value, 0], not a big-endian
	// uint16; the tag half 0x0B is a leading-zero big-endian uint16.
	b := []byte{0x08, 0x00, 0x00, 0x0B}
	tag, index := ReadSizeEntryKey(b, 0)
	if tag != 0x0B {
		t.Errorf("tag = %#x, want %#x", tag, 0x0B)
	}
	if index != 0x08 {
		t.Errorf("index = %#x, want %#x", index, 0x08)
	}
}
