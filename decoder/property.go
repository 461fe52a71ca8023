// Package decoder turns a raw record-file entity or block into a populated
// pmap.Map, driving the property dictionary and per-class schema overlays
// in the schema package.
package decoder

import (
	"github.com/hshore29/pyolk/internal/format"
	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/hshore29/pyolk/internal/primitive"
	"github.com/hshore29/pyolk/pmap"
	"github.com/hshore29/pyolk/schema"
)

// hardcodedFooterSkip lists the footer names every schema drops regardless
// of its own skip_null/skip_dupe sets.
var hardcodedFooterSkip = map[string]bool{
	"foot14": true,
	"foot15": true,
	"foot16": true,
}

// decodeProperty resolves a single (tag, index) property into its output
// name and value, following the dictionary's seven-step dispatch: name
// resolution, override substitution (folded into sch.Lookup), primitive
// decode, handler dispatch, rename, skip filtering, and store. store is
// false when the property should be dropped from the output map.
func decodeProperty(key pmap.PropertyKey, raw []byte, sch *schema.Schema) (name string, value pmap.Value, store bool) {
	fs, known := sch.Lookup(key)
	name = key.String()
	if known {
		name = fs.Name
	} else {
		obslog.Warn("unmapped property key", "key", name)
	}

	v := pmap.Null()
	if !fs.Mode.Raw {
		v = decodePrimitive(key.Tag, raw)
	}

	switch fs.Mode.Kind {
	case schema.HandlerCollection:
		sub, err := ReadCollection(raw, fs.Sub)
		if err != nil {
			obslog.Warn("collection decode failed", "key", key.String(), "error", err)
		}
		v = pmap.NewMap(sub)
	case schema.HandlerList:
		items, err := ReadList(raw, fs.Sub)
		if err != nil {
			obslog.Warn("list decode failed", "key", key.String(), "error", err)
		}
		v = pmap.NewList(items)
	case schema.HandlerEnum:
		if label, ok := fs.Enum[v.Int()]; ok {
			v = pmap.NewText(label)
		} else {
			obslog.Warn("unmapped enum value", "key", key.String(), "value", v.Int())
		}
	case schema.HandlerFunc:
		if fs.Func != nil {
			v = fs.Func(raw, v)
		}
	case schema.HandlerNone:
		if fs.Mode.Raw && v.IsNull() {
			v = pmap.NewBytes(raw)
		}
	}

	if remapped, ok := sch.RemapName(key); ok {
		name = remapped
	}

	if hardcodedFooterSkip[name] {
		return name, v, false
	}
	if sch != nil {
		if sch.SkipDupe[name] || sch.SkipIndb[name] {
			return name, v, false
		}
		if sch.SkipNull[name] && isNullish(v) {
			return name, v, false
		}
	}

	return name, v, true
}

// isNullish reports whether v is the kind of "not useful" value a
// skip_null entry is meant to drop: an explicit null, a zero number, an
// empty string, or a false boolean.
func isNullish(v pmap.Value) bool {
	switch v.Kind() {
	case pmap.KindNull:
		return true
	case pmap.KindInt, pmap.KindLong:
		return v.Int() == 0
	case pmap.KindText:
		return v.Text() == ""
	case pmap.KindBool:
		return !v.Bool()
	default:
		return false
	}
}

// decodePrimitive performs the variant-tag-dispatched primitive decode,
// step three of the algorithm. Composite kinds (0x0D and the timezone
// sub-namespaces) have no generic primitive form; their handler receives
// the raw bytes directly. decodePrimitive returns Null for 0x0D; any other
// tag it does not know, the timezone sub-namespaces included, is logged and
// returned as raw bytes.
func decodePrimitive(tag uint16, raw []byte) pmap.Value {
	switch tag {
	case format.VTShort:
		if len(raw) < 2 {
			return pmap.Null()
		}
		return pmap.NewInt(int64(format.ReadI16(raw, 0)))
	case format.VTInt:
		if len(raw) < 4 {
			return pmap.Null()
		}
		return pmap.NewInt(int64(format.ReadI32(raw, 0)))
	case format.VTBString:
		return pmap.NewBytes(raw)
	case format.VTBool:
		if len(raw) < 1 {
			return pmap.Null()
		}
		return pmap.NewBool(raw[0] != 0)
	case format.VTDataObject:
		return pmap.Null()
	case format.VTLong:
		if len(raw) < 8 {
			return pmap.Null()
		}
		return pmap.NewLong(format.ReadI64(raw, 0))
	case format.VTUserBlob, format.VTAnsiString:
		s, err := primitive.DecodeANSI(raw)
		if err != nil {
			return pmap.Null()
		}
		return pmap.NewText(s)
	case format.VTUnicodeStr:
		return pmap.NewText(primitive.DecodeUTF16LE(raw))
	case format.VTFooterLong:
		if len(raw) < 8 {
			return pmap.Null()
		}
		return pmap.NewLong(format.ReadI64(raw, 0))
	case format.VTGUID:
		return pmap.NewBytes(raw)
	case format.VTMacDate:
		if len(raw) < 8 {
			return pmap.Null()
		}
		return pmap.NewDateTime(primitive.MacAbsoluteSeconds(format.ReadF64(raw, 0)))
	default:
		// TZPROP sub-namespace tags and anything new/unmapped arrive here
		// with no generic primitive form; handlers for these are always
		// registered with Raw: true, so this path shouldn't be reached for
		// well-formed dictionary entries.
		obslog.Warn("unhandled variant tag", "tag", tag)
		return pmap.NewBytes(raw)
	}
}
