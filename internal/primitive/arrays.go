package primitive

import (
	"time"

	"github.com/hshore29/pyolk/internal/format"
)

// IntList decodes a 4-byte count followed by that many signed 32-bit
// integers.
func IntList(data []byte) []int64 {
	if len(data) < 4 {
		return nil
	}
	n := int(format.ReadI32(data, 0))
	data = data[4:]
	out := make([]int64, 0, n)
	for i := 0; i < n && len(data) >= 4; i++ {
		out = append(out, int64(format.ReadI32(data, 0)))
		data = data[4:]
	}
	return out
}

// LongList decodes a 4-byte count followed by that many signed 64-bit
// integers.
func LongList(data []byte) []int64 {
	if len(data) < 4 {
		return nil
	}
	n := int(format.ReadI32(data, 0))
	data = data[4:]
	out := make([]int64, 0, n)
	for i := 0; i < n && len(data) >= 8; i++ {
		out = append(out, format.ReadI64(data, 0))
		data = data[8:]
	}
	return out
}

// DateList decodes a run of signed 32-bit Windows-epoch-minute values (no
// length prefix; the caller supplies exactly the date array bytes) into
// date-only timestamps.
func DateList(data []byte) []time.Time {
	out := make([]time.Time, 0, len(data)/4)
	for len(data) >= 4 {
		m := format.ReadI32(data, 0)
		t := WindowsEpochMinutes(m)
		out = append(out, time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
		data = data[4:]
	}
	return out
}
