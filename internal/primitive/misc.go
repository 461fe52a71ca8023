package primitive

import "fmt"

var daysOfWeek = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// DaysOfWeek decodes a 7-bit mask (LSB = Sunday) into the ordered list of
// two-letter day codes whose bit is set.
func DaysOfWeek(mask byte) []string {
	var days []string
	for i, code := range daysOfWeek {
		if mask&(1<<uint(i)) != 0 {
			days = append(days, code)
		}
	}
	return days
}

// Color decodes a six-byte "00 R 00 B 00 G" triple into a "#RRBBGG" string,
// preserving the RBG channel order the wire format uses (not RGB).
func Color(data []byte) string {
	if len(data) < 6 {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", data[1], data[3], data[5])
}

// TypeCode decodes a four-byte reversed ASCII code. An all-zero value has
// no code.
func TypeCode(data []byte) *string {
	if len(data) != 4 {
		return nil
	}
	allZero := true
	for _, b := range data {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil
	}
	reversed := make([]byte, 4)
	for i, b := range data {
		reversed[3-i] = b
	}
	s := string(reversed)
	return &s
}

// ReverseTypeCode encodes a four-char string back to its on-disk reversed
// raw form, the inverse of TypeCode.
func ReverseTypeCode(code string) []byte {
	b := []byte(code)
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
