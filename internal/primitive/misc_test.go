package primitive

import (
	"reflect"
	"testing"
)

func TestDaysOfWeek(t *testing.T) {
	// Sunday (bit 0) and Wednesday (bit 3) set.
	got := DaysOfWeek(0b0000_1001)
	want := []string{"SU", "WE"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaysOfWeek = %v, want %v", got, want)
	}
}

func TestDaysOfWeekNone(t *testing.T) {
	if got := DaysOfWeek(0); got != nil {
		t.Fatalf("DaysOfWeek(0) = %v, want nil", got)
	}
}

func TestColor(t *testing.T) {
	// 00 R 00 B 00 G -> #RRBBGG
	data := []byte{0x00, 0x11, 0x00, 0x22, 0x00, 0x33}
	if got := Color(data); got != "#112233" {
		t.Fatalf("Color = %q, want %q", got, "#112233")
	}
}

func TestColorShort(t *testing.T) {
	if got := Color([]byte{1, 2, 3}); got != "" {
		t.Fatalf("Color(short) = %q, want empty", got)
	}
}

func TestTypeCode(t *testing.T) {
	// "Note" reversed is "etoN"
	data := []byte("etoN")
	got := TypeCode(data)
	if got == nil || *got != "Note" {
		t.Fatalf("TypeCode = %v, want Note", got)
	}
}

func TestTypeCodeAllZero(t *testing.T) {
	if got := TypeCode([]byte{0, 0, 0, 0}); got != nil {
		t.Fatalf("TypeCode(all-zero) = %v, want nil", got)
	}
}

func TestReverseTypeCodeRoundTrip(t *testing.T) {
	raw := ReverseTypeCode("Note")
	got := TypeCode(raw)
	if got == nil || *got != "Note" {
		t.Fatalf("round trip = %v, want Note", got)
	}
}
