package pmap

import "fmt"

// PropertyKey identifies a property dictionary entry by its variant tag and
// positional index, mirroring the "TAG:INDEX" string keys the dictionary
// was originally expressed with.
type PropertyKey struct {
	Tag   uint16
	Index uint16
}

// String renders the key as "hex(Tag):hex(Index)" using the minimum hex
// width needed to represent each half as a whole number of bytes, matching
// the literal keys used throughout the property dictionary (e.g. "03:2C01").
func (k PropertyKey) String() string {
	return fmt.Sprintf("%s:%s", hexMinWidth(k.Tag), hexMinWidth(k.Index))
}

func hexMinWidth(v uint16) string {
	if v > 0xFF {
		return fmt.Sprintf("%04X", v)
	}
	return fmt.Sprintf("%02X", v)
}
