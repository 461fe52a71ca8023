package decoder

import (
	"fmt"

	"github.com/hshore29/pyolk/internal/buf"
	"github.com/hshore29/pyolk/internal/format"
	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/hshore29/pyolk/pmap"
	"github.com/hshore29/pyolk/schema"
)

// longFooterSizeArrayIndex is the index half of the 0x20:0x15 key, the one
// size-table entry whose length field is 64-bit rather than 32-bit.
const longFooterSizeArrayIndex = 0x15

// ReadCollection decodes a count-prefixed, size-table-keyed run of
// properties: a 12-byte header (item count, header size, body size), a
// size table of (tag, index, length) entries, and a body split by those
// lengths in size-table order. sch selects the per-class overrides and
// skip sets applied while naming and filtering each property; a nil sch
// falls back to the global dictionary alone.
func ReadCollection(data []byte, sch *schema.Schema) (pmap.Map, error) {
	if !buf.Has(data, 0, format.CollectionHeaderSize) {
		return nil, fmt.Errorf("decoder: collection header truncated, have %d bytes", len(data))
	}

	itemCount := int(format.ReadI32(data, format.CollectionItemCountOffset))
	headerSize := int(format.ReadI32(data, format.CollectionHeaderLenOffset))
	if itemCount < 0 || itemCount > format.MaxCollectionItems {
		return nil, fmt.Errorf("decoder: collection item count %d exceeds sanity limit", itemCount)
	}
	if headerSize < format.CollectionHeaderSize || !buf.Has(data, 0, headerSize) {
		return nil, fmt.Errorf("decoder: collection header size %d out of bounds", headerSize)
	}

	sizeTable := data[format.CollectionSizeTableOffset:headerSize]
	body := data[headerSize:]
	if len(body) > format.MaxBodySize {
		return nil, fmt.Errorf("decoder: collection body size %d exceeds sanity limit", len(body))
	}

	out := make(pmap.Map, itemCount)
	off := 0
	for off+format.SizeEntryKeyWidth <= len(sizeTable) {
		tag, index := format.ReadSizeEntryKey(sizeTable, off)

		// Every entry is 8 bytes (a 4-byte key plus a 32-bit length) except
		// the 0x20:0x15 long-footer key, whose length field is 64-bit.
		entryWidth := format.SizeEntryWidth32
		if tag == format.VTFooterLong && index == longFooterSizeArrayIndex {
			entryWidth = format.SizeEntryWidth64
		}
		if off+entryWidth > len(sizeTable) {
			return nil, fmt.Errorf("decoder: collection size table truncated at offset %d", off)
		}

		var size int
		if entryWidth == format.SizeEntryWidth64 {
			size = int(format.ReadI64(sizeTable, off+format.SizeEntryKeyWidth))
		} else {
			size = int(format.ReadI32(sizeTable, off+format.SizeEntryKeyWidth))
		}
		off += entryWidth

		if size < 0 || size > len(body) {
			return nil, fmt.Errorf("decoder: collection entry size %d out of bounds", size)
		}
		chunk := body[:size]
		body = body[size:]

		key := pmap.PropertyKey{Tag: tag, Index: index}
		name, value, store := decodeProperty(key, chunk, sch)
		if store {
			out[name] = value
		}
	}

	if len(body) > 0 {
		obslog.Warn("residual bytes after last collection item", "bytes", len(body))
	}

	return out, nil
}
