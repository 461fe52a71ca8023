// Package schema holds the static tables that drive property decoding: the
// global property dictionary keyed by (variant tag, index), the per-class
// schema overlays (renames, overrides, skip sets), the enum dictionaries,
// and the handful of bespoke binary handlers that don't fit the generic
// collection/list/enum dispatch. Everything here is built once at process
// start and never mutated.
package schema

import "github.com/hshore29/pyolk/pmap"

// HandlerKind selects what a FieldSpec's handler step does with an already
// primitive-decoded (or still-raw) value.
type HandlerKind uint8

const (
	HandlerNone HandlerKind = iota
	HandlerCollection
	HandlerList
	HandlerEnum
	HandlerFunc
)

// DecodingMode is the two-letter mode flag from the property dictionary:
// Raw corresponds to the 'r' prefix (skip primitive decode, hand the
// decoder raw bytes), Kind corresponds to the second letter.
type DecodingMode struct {
	Raw  bool
	Kind HandlerKind
}

// FieldSpec is a resolved dictionary or override entry: the output name,
// its decoding mode, and whatever the handler needs.
type FieldSpec struct {
	Name string
	Mode DecodingMode

	// Sub is the sub-schema used when Mode.Kind is HandlerCollection or
	// HandlerList.
	Sub *Schema

	// Enum is the lookup table used when Mode.Kind is HandlerEnum. Keys
	// are the raw integer value observed on the wire.
	Enum map[int64]string

	// Func is invoked when Mode.Kind is HandlerFunc. It receives the raw
	// property bytes and the value produced by the primitive decode step
	// (Null if Mode.Raw suppressed that step), and returns the final
	// value to store.
	Func func(raw []byte, v pmap.Value) pmap.Value
}

// Schema is a per-record-class overlay on the global property dictionary.
type Schema struct {
	Class     string
	Overrides map[pmap.PropertyKey]FieldSpec
	Remap     map[pmap.PropertyKey]string
	SkipNull  map[string]bool
	SkipDupe  map[string]bool
	SkipIndb  map[string]bool
}

// Lookup resolves a dictionary key against the schema's overrides first,
// then the global dictionary, matching the decoder's "override replaces
// the triple entirely" rule (spec §4.4 step 2).
func (s *Schema) Lookup(key pmap.PropertyKey) (FieldSpec, bool) {
	if s != nil {
		if fs, ok := s.Overrides[key]; ok {
			return fs, true
		}
	}
	return Dictionary.Lookup(key)
}

// RemapName returns the renamed output name for key under s, or ok=false if
// s has no remap entry for it.
func (s *Schema) RemapName(key pmap.PropertyKey) (string, bool) {
	if s == nil {
		return "", false
	}
	name, ok := s.Remap[key]
	return name, ok
}
