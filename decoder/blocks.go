package decoder

import (
	"github.com/hshore29/pyolk/internal/format"
	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/hshore29/pyolk/internal/primitive"
	"github.com/hshore29/pyolk/pmap"
)

// decodeBlockBody dispatches an already-identified block type to its
// parser. Blocks this decoder doesn't special-case keep their payload as
// opaque bytes rather than failing the record. Every returned map, known
// or unknown block-type alike, carries the four-char BlockType code it was
// decoded under.
func decodeBlockBody(blockType string, data []byte) pmap.Map {
	var out pmap.Map
	switch blockType {
	case format.BlockTypeImage:
		out = pmap.Map{"FileData": pmap.NewBytes(data)}
	case format.BlockTypeAttachment, format.BlockTypeMessageSrc, format.BlockTypeClippedAttc:
		s, err := primitive.DecodeANSI(data)
		if err != nil {
			out = pmap.Map{"FileData": pmap.NewBytes(data)}
		} else {
			out = pmap.Map{"FileContents": pmap.NewText(s)}
		}
	case format.BlockTypeRecent:
		out = decodeRecentAddresses(data)
	case format.BlockTypeSyncMap:
		out = decodeSyncMap(data)
	case format.BlockTypeFolderSync:
		out = pmap.Map{"Data": pmap.NewBytes(data)}
	default:
		obslog.Warn("unknown block type", "block_type", blockType)
		out = pmap.Map{"BlockData": pmap.NewBytes(data)}
	}
	out["BlockType"] = pmap.NewText(blockType)
	return out
}

// decodeRecentAddresses decodes an RcnA block: a count-prefixed run of
// 16-bit chunk sizes, the chunks those sizes carve out of the remaining
// bytes, a leading chunk giving the address-field count, and for each
// field a value chunk plus an int32 offset-table chunk (little-endian, like
// the block's counts and chunk sizes; only ExSM is big-endian) that splits
// the value chunk into per-record
// slices. Fields are zipped address/first name/last name.
func decodeRecentAddresses(data []byte) pmap.Map {
	if len(data) < 4 {
		return pmap.Map{}
	}
	n := int(format.ReadI32(data, 0))
	data = data[4:]

	if n < 0 || n*2 > len(data) {
		return pmap.Map{}
	}
	sizes := make([]int, n)
	for i := 0; i < n; i++ {
		sizes[i] = int(format.ReadI16(data, i*2))
	}
	data = data[n*2:]

	chunks := make([][]byte, 0, n)
	for _, s := range sizes {
		if s < 0 || s > len(data) {
			return pmap.Map{}
		}
		chunks = append(chunks, data[:s])
		data = data[s:]
	}
	if len(chunks) < 1 {
		return pmap.Map{}
	}

	listCount := int(format.ReadI32(chunks[0], 0))
	chunks = chunks[1:]

	fields := make([][][]byte, 0, listCount)
	for i := 0; i < listCount && len(chunks) >= 2; i++ {
		values, sizesRaw := chunks[0], chunks[1]
		chunks = chunks[2:]

		offsets := make([]int32, len(sizesRaw)/4)
		for j := range offsets {
			offsets[j] = format.ReadI32(sizesRaw, j*4)
		}

		var entries [][]byte
		if len(offsets) > 0 {
			x0 := offsets[0]
			for _, x1 := range offsets[1:] {
				if x0 < 0 || x1 < x0 || int(x1) > len(values) {
					break
				}
				entries = append(entries, values[x0:x1])
				x0 = x1
			}
		}
		fields = append(fields, entries)
	}

	var addresses []pmap.Map
	if len(fields) >= 3 {
		addrs, firsts, lasts := fields[0], fields[1], fields[2]
		n := min(len(addrs), min(len(firsts), len(lasts)))
		for i := 0; i < n; i++ {
			addr, _ := primitive.DecodeANSI(addrs[i])
			addresses = append(addresses, pmap.Map{
				"Address":   pmap.NewText(addr),
				"FirstName": pmap.NewText(primitive.DecodeUTF16LE(firsts[i])),
				"LastName":  pmap.NewText(primitive.DecodeUTF16LE(lasts[i])),
			})
		}
	}

	return pmap.Map{"RecentAddresses": pmap.NewList(addresses)}
}

// decodeSyncMap decodes an ExSM block: a fixed 8-byte reserved prefix, an
// 8-byte flag, a big-endian length-prefixed chunk, a 4-byte reserved gap,
// then a big-endian item count and a "has items" flag gating a run of
// per-item Exchange id/change-key pairs followed by an arbitrary number of
// big-endian length-prefixed string key/value pairs.
func decodeSyncMap(data []byte) pmap.Map {
	if len(data) < 20 {
		return pmap.Map{}
	}
	data = data[8:]
	out := pmap.Map{"Flag1": pmap.NewBytes(data[:8])}
	data = data[8:]

	if len(data) < 4 {
		return out
	}
	size1 := int(format.ReadI32BE(data, 0))
	data = data[4:]
	if size1 < 0 || size1 > len(data) {
		return out
	}
	out["Part1"] = pmap.NewBytes(data[:size1])
	data = data[size1:]

	if len(data) < 8 {
		return out
	}
	data = data[4:] // reserved
	count := int(format.ReadI32BE(data, 0))
	data = data[4:]
	if len(data) < 4 {
		return out
	}
	notNull := format.ReadI32BE(data, 0) == 1
	data = data[4:]

	var items []pmap.Map
	if notNull {
		for i := 0; i < count; i++ {
			item, rest, ok := decodeSyncMapItem(data)
			if !ok {
				break
			}
			items = append(items, item)
			data = rest
		}
	}
	out["Items"] = pmap.NewList(items)
	return out
}

func decodeSyncMapItem(data []byte) (pmap.Map, []byte, bool) {
	if len(data) < 20 {
		return nil, data, false
	}
	data = data[20:]

	exID, data, ok := readBEString(data)
	if !ok {
		return nil, data, false
	}
	changeKey, data, ok := readBEString(data)
	if !ok {
		return nil, data, false
	}

	item := pmap.Map{
		"ExchangeID":        pmap.NewText(exID),
		"ExchangeChangeKey": pmap.NewText(changeKey),
	}

	if len(data) < 4 {
		return nil, data, false
	}
	count2 := int(format.ReadI32BE(data, 0))
	data = data[4:]

	for i := 0; i < count2; i++ {
		k, rest, ok := readBEString(data)
		if !ok {
			return nil, data, false
		}
		v, rest2, ok := readBEString(rest)
		if !ok {
			return nil, data, false
		}
		item[k] = pmap.NewText(v)
		data = rest2
	}

	if len(data) < 4 {
		return nil, data, false
	}
	data = data[4:] // trailer

	return item, data, true
}

func readBEString(data []byte) (string, []byte, bool) {
	if len(data) < 4 {
		return "", data, false
	}
	size := int(format.ReadI32BE(data, 0))
	data = data[4:]
	if size < 0 || size > len(data) {
		return "", data, false
	}
	s, err := primitive.DecodeANSI(data[:size])
	if err != nil {
		return "", data, false
	}
	return s, data[size:], true
}
