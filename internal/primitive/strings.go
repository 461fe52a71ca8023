// Package primitive decodes the scalar building blocks every property value
// bottoms out in: strings in both of the format's two encodings, the date
// conventions, day-of-week bitmasks, color triples, four-char type codes,
// and the length-prefixed scalar arrays used by a handful of property keys.
package primitive

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/hshore29/pyolk/internal/format"
)

// DecodeANSI decodes a Windows-1252 (extended ASCII) string. Pure-ASCII
// input is returned without going through the charmap decoder, since
// Windows-1252 agrees with ASCII for bytes below 0x80.
func DecodeANSI(data []byte) (string, error) {
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// DecodeUTF16LE decodes a UTF-16LE string, including a fast path for the
// common all-ASCII case.
func DecodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	allASCII := len(data)%2 == 0
	if allASCII {
		for i := 0; i < len(data); i += 2 {
			if data[i+1] != 0 || data[i] >= format.UTF16ASCIIThreshold {
				allASCII = false
				break
			}
		}
	}

	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8

		if r >= format.UTF16HighSurrogateStart && r <= format.UTF16HighSurrogateEnd && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= format.UTF16LowSurrogateStart && r2 <= format.UTF16LowSurrogateEnd {
				r = format.UTF16SurrogateBase + ((r-format.UTF16HighSurrogateStart)<<10 | (r2 - format.UTF16LowSurrogateStart))
				i += 2
			}
		}

		if r > utf8.MaxRune {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	return b.String()
}
