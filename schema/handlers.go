package schema

import (
	"strings"

	"github.com/hshore29/pyolk/internal/format"
	"github.com/hshore29/pyolk/internal/primitive"
	"github.com/hshore29/pyolk/pmap"
)

// The functions below back HandlerFunc FieldSpecs in the global dictionary.
// Every one of them takes the raw property bytes (and, for non-raw fields,
// the already primitive-decoded value) and returns the final stored value.
// They are self-contained: none of them may call into the decoder package,
// since the decoder imports schema for dictionary and class-schema lookups.

func int32Field(raw []byte, _ pmap.Value) pmap.Value {
	if len(raw) < 4 {
		return pmap.Null()
	}
	return pmap.NewInt(int64(format.ReadI32(raw, 0)))
}

func longField(raw []byte, _ pmap.Value) pmap.Value {
	if len(raw) < 8 {
		return pmap.Null()
	}
	return pmap.NewLong(format.ReadI64(raw, 0))
}

func asciiField(raw []byte, _ pmap.Value) pmap.Value {
	s, err := primitive.DecodeANSI(raw)
	if err != nil {
		return pmap.Null()
	}
	return pmap.NewText(s)
}

func winMinutesRawField(raw []byte, _ pmap.Value) pmap.Value {
	if len(raw) < 4 {
		return pmap.Null()
	}
	return pmap.NewDateTime(primitive.WindowsEpochMinutes(format.ReadI32(raw, 0)))
}

// winMinutesField handles a 0x03 (int32) field whose primitive decode has
// already produced an int, then reinterprets it as Windows-epoch minutes.
func winMinutesField(_ []byte, v pmap.Value) pmap.Value {
	if v.IsNull() {
		return pmap.Null()
	}
	return pmap.NewDateTime(primitive.WindowsEpochMinutes(int32(v.Int())))
}

func typeCodeField(raw []byte, _ pmap.Value) pmap.Value {
	return pmap.NewTypeCode(primitive.TypeCode(raw))
}

func colorField(raw []byte, _ pmap.Value) pmap.Value {
	return pmap.NewColor(primitive.Color(raw))
}

func int8Field(raw []byte, _ pmap.Value) pmap.Value {
	if len(raw) < 1 {
		return pmap.Null()
	}
	return pmap.NewInt(int64(int8(raw[0])))
}

// daysOfWeekField reinterprets an already-decoded short as a day-of-week
// bitmask, joining the set days into a comma-separated code list.
func daysOfWeekField(_ []byte, v pmap.Value) pmap.Value {
	if v.IsNull() {
		return pmap.Null()
	}
	return pmap.NewText(strings.Join(primitive.DaysOfWeek(byte(v.Int())), ","))
}

// dateListField decodes a run of Windows-epoch-minute values with no length
// prefix (the recurrence rule's RecurrenceDates/ExceptionDates entries).
func dateListField(raw []byte, _ pmap.Value) pmap.Value {
	return pmap.NewDateList(primitive.DateList(raw))
}

// boolFromShortField returns a handler that reinterprets an already-decoded
// short as a boolean, true when it equals want.
func boolFromShortField(want int64) func([]byte, pmap.Value) pmap.Value {
	return func(_ []byte, v pmap.Value) pmap.Value {
		if v.IsNull() {
			return pmap.Null()
		}
		return pmap.NewBool(v.Int() == want)
	}
}

// sizeArrayField backs the 0x20:0x15 footer key, whose body is itself a
// nested size array rather than a scalar. It is always filtered out by the
// decoder's hardcoded footer skip set, so it is kept only as opaque bytes.
func sizeArrayField(raw []byte, _ pmap.Value) pmap.Value {
	return pmap.NewBytes(raw)
}

// splitCollectionBody parses the common "count, header size, body size,
// size table, body" layout shared by collections and the ActionsTaken
// pseudo-collection, returning each entry's raw bytes keyed by its
// (tag, index) pair. It is a deliberately minimal, local cousin of the
// decoder package's general collection reader: handlers in this file can't
// import decoder (decoder imports schema), so the handful that need this
// shape read it themselves.
func splitCollectionBody(raw []byte) map[pmap.PropertyKey][]byte {
	if len(raw) < format.CollectionHeaderSize {
		return nil
	}
	headSize := int(format.ReadI32(raw, format.CollectionHeaderLenOffset))
	if headSize < format.CollectionHeaderSize || headSize > len(raw) {
		return nil
	}
	sizeTable := raw[format.CollectionSizeTableOffset:headSize]
	body := raw[headSize:]

	out := make(map[pmap.PropertyKey][]byte)
	off := 0
	for off+format.SizeEntryWidth32 <= len(sizeTable) {
		tag, index := format.ReadSizeEntryKey(sizeTable, off)
		size := int(format.ReadI32(sizeTable, off+format.SizeEntryKeyWidth))
		off += format.SizeEntryWidth32
		if size < 0 || size > len(body) {
			break
		}
		out[pmap.PropertyKey{Tag: tag, Index: index}] = body[:size]
		body = body[size:]
	}
	return out
}

// replyToListField decodes an event's ReplyTo entry: a null byte and four
// count bytes (skipped; entries are read until the bytes run out), then per
// address an int32 length, one pad byte, the ASCII address, and four null
// trailer bytes.
func replyToListField(raw []byte, _ pmap.Value) pmap.Value {
	if len(raw) < 5 {
		return pmap.NewList(nil)
	}
	raw = raw[5:]

	var out []pmap.Map
	for len(raw) >= 4 {
		size := int(format.ReadI32(raw, 0))
		if size < 0 || 5+size > len(raw) {
			break
		}
		addr, _ := primitive.DecodeANSI(raw[5 : 5+size])
		out = append(out, pmap.Map{"Address": pmap.NewText(addr)})
		if 9+size > len(raw) {
			break
		}
		raw = raw[9+size:]
	}
	return pmap.NewList(out)
}

// messageUserField decodes a single mail participant: a 6-byte flag block
// (type code, OlUserType, and reserved flags), 22 reserved bytes, a
// length-prefixed ASCII address, and a length-prefixed UTF-16LE name.
func messageUserField(raw []byte, _ pmap.Value) pmap.Value {
	if len(raw) < 28 {
		return pmap.NewMap(nil)
	}
	userType := int64(raw[2])
	raw = raw[28:]

	if len(raw) < 4 {
		return pmap.NewMap(nil)
	}
	addrSize := int(format.ReadI32(raw, 0))
	raw = raw[4:]
	if addrSize < 0 || addrSize > len(raw) {
		return pmap.NewMap(nil)
	}
	addr, _ := primitive.DecodeANSI(raw[:addrSize])
	raw = raw[addrSize:]

	var name string
	if len(raw) >= 4 {
		nameSize := int(format.ReadI32(raw, 0))
		raw = raw[4:]
		if nameSize >= 0 && nameSize <= len(raw) {
			name = primitive.DecodeUTF16LE(raw[:nameSize])
		}
	}

	out := pmap.Map{
		"Address": pmap.NewText(addr),
		"Name":    pmap.NewText(name),
	}
	if label, ok := olUserType[userType]; ok {
		out["Type"] = pmap.NewText(label)
	}
	return pmap.NewMap(out)
}

// messageUserListField decodes a length-prefixed run of messageUserField
// entries, each itself length-prefixed by a leading int16 size.
func messageUserListField(raw []byte, v pmap.Value) pmap.Value {
	if len(raw) < 5 {
		return pmap.NewList(nil)
	}
	n := int(format.ReadI32(raw, 0))
	raw = raw[5:]

	var out []pmap.Map
	for i := 0; i < n && len(raw) >= 2; i++ {
		size := int(format.ReadI16(raw, 0))
		raw = raw[2:]
		if size < 0 || size > len(raw) {
			break
		}
		entry := messageUserField(raw[:size], pmap.Null())
		out = append(out, entry.Map())
		raw = raw[size:]
	}
	return pmap.NewList(out)
}

// actionsTakenField decodes a message's action history: a collection-shaped
// body whose first entry is the action count, followed by three entries
// per action (type enum, Mac-absolute date, and an optional source record
// id defaulting to -1 when omitted).
func actionsTakenField(raw []byte, _ pmap.Value) pmap.Value {
	items := splitCollectionBody(raw)
	if items == nil {
		return pmap.NewList(nil)
	}

	countBytes, ok := items[pmap.PropertyKey{Tag: 0x00, Index: 0x01}]
	if !ok || len(countBytes) < 2 {
		return pmap.NewList(nil)
	}
	count := int(format.ReadI16(countBytes, 0))

	var out []pmap.Map
	for i := 0; i < count; i++ {
		base := uint16(100 + i*10)
		typeBytes, hasType := items[pmap.PropertyKey{Tag: 0x00, Index: base}]
		dateBytes, hasDate := items[pmap.PropertyKey{Tag: 0x00, Index: base + 1}]
		if !hasType || !hasDate || len(typeBytes) < 2 || len(dateBytes) < 8 {
			continue
		}

		recordID := int32(-1)
		if idBytes, ok := items[pmap.PropertyKey{Tag: 0x00, Index: base + 2}]; ok && len(idBytes) >= 4 {
			recordID = format.ReadI32(idBytes, 0)
		}

		entry := pmap.Map{
			"Date":     pmap.NewDateTime(primitive.MacAbsoluteSeconds(format.ReadF64(dateBytes, 0))),
			"RecordID": pmap.NewInt(int64(recordID)),
		}
		if label, ok := olAction[int64(format.ReadI16(typeBytes, 0))]; ok {
			entry["Type"] = pmap.NewText(label)
		}
		out = append(out, entry)
	}
	return pmap.NewList(out)
}
