package olk

import (
	"fmt"

	"github.com/hshore29/pyolk/decoder"
	"github.com/hshore29/pyolk/internal/recordio"
)

// Record is the public alias for a decoded entity or block, re-exported so
// callers don't need to import the decoder package directly.
type Record = decoder.Record

// LoadFile memory-maps path and decodes it as a single record. The decoder
// keeps slices directly into the record file's bytes (raw property values,
// opaque block data), so the mapping is copied into an owned buffer before
// it's unmapped, rather than unmapped out from under the returned Record.
func LoadFile(path string) (*Record, error) {
	mapped, cleanup, err := recordio.Map(path)
	if err != nil {
		return nil, fmt.Errorf("olk: %w", err)
	}
	data := make([]byte, len(mapped))
	copy(data, mapped)
	if err := cleanup(); err != nil {
		return nil, fmt.Errorf("olk: %w", err)
	}

	rec, err := decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("olk: %s: %w", path, err)
	}
	return rec, nil
}
