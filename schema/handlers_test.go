package schema

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/hshore29/pyolk/pmap"
)

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func le16(v int16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}

func TestInt32Field(t *testing.T) {
	got := int32Field(le32(-7), pmap.Null())
	if got.Int() != -7 {
		t.Fatalf("int32Field = %d, want -7", got.Int())
	}
}

func TestInt32FieldTooShort(t *testing.T) {
	if got := int32Field([]byte{1, 2}, pmap.Null()); !got.IsNull() {
		t.Fatalf("int32Field(short) = %v, want null", got)
	}
}

func TestWinMinutesField(t *testing.T) {
	got := winMinutesField(nil, pmap.NewInt(1440))
	want := time.Date(1601, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.DateTime().Equal(want) {
		t.Fatalf("winMinutesField = %v, want %v", got.DateTime(), want)
	}
}

func TestWinMinutesFieldNull(t *testing.T) {
	if got := winMinutesField(nil, pmap.Null()); !got.IsNull() {
		t.Fatalf("winMinutesField(null) = %v, want null", got)
	}
}

func TestDaysOfWeekField(t *testing.T) {
	got := daysOfWeekField(nil, pmap.NewInt(0b0000_1001))
	if got.Text() != "SU,WE" {
		t.Fatalf("daysOfWeekField = %q, want SU,WE", got.Text())
	}
}

func TestBoolFromShortField(t *testing.T) {
	fn := boolFromShortField(1)
	if got := fn(nil, pmap.NewInt(1)); !got.Bool() {
		t.Fatal("boolFromShortField(1) with v=1 should be true")
	}
	if got := fn(nil, pmap.NewInt(0)); got.Bool() {
		t.Fatal("boolFromShortField(1) with v=0 should be false")
	}
}

func TestTypeCodeField(t *testing.T) {
	got := typeCodeField([]byte("etoN"), pmap.Null())
	tc := got.TypeCode()
	if tc == nil || *tc != "Note" {
		t.Fatalf("typeCodeField = %v, want Note", tc)
	}
}

func TestColorField(t *testing.T) {
	got := colorField([]byte{0x00, 0x11, 0x00, 0x22, 0x00, 0x33}, pmap.Null())
	if got.Color() != "#112233" {
		t.Fatalf("colorField = %q, want #112233", got.Color())
	}
}

func TestMessageUserField(t *testing.T) {
	raw := make([]byte, 28)
	raw[2] = 2 // User

	raw = append(raw, le32(3)...)
	raw = append(raw, []byte("a@b")...)

	raw = append(raw, le32(4)...)
	raw = append(raw, []byte{'A', 0, 'l', 0}...) // "Al" UTF-16LE

	got := messageUserField(raw, pmap.Null())
	m := got.Map()
	if m["Address"].Text() != "a@b" {
		t.Errorf("Address = %q, want a@b", m["Address"].Text())
	}
	if m["Name"].Text() != "Al" {
		t.Errorf("Name = %q, want Al", m["Name"].Text())
	}
	if m["Type"].Text() != "User" {
		t.Errorf("Type = %q, want User", m["Type"].Text())
	}
}

func TestMessageUserFieldTooShort(t *testing.T) {
	got := messageUserField([]byte{1, 2, 3}, pmap.Null())
	if len(got.Map()) != 0 {
		t.Fatalf("messageUserField(short) = %v, want empty map", got.Map())
	}
}

func TestReplyToListField(t *testing.T) {
	raw := []byte{0, 1, 0, 0, 0} // null byte + count=1 (int32 LE)
	raw = append(raw, le32(3)...)
	raw = append(raw, 0) // 1-byte pad before the address
	raw = append(raw, []byte("abc")...)
	raw = append(raw, 0, 0, 0, 0) // 4-byte trailer

	got := replyToListField(raw, pmap.Null())
	list := got.List()
	if len(list) != 1 {
		t.Fatalf("replyToListField len = %d, want 1", len(list))
	}
	if list[0]["Address"].Text() != "abc" {
		t.Errorf("Address = %q, want abc", list[0]["Address"].Text())
	}
}

func TestActionsTakenField(t *testing.T) {
	// One action: type=2 (Reply), date=0 (2001-01-01), recordID=42.
	countBytes := le16(1)
	typeBytes := le16(2)
	dateBytes := make([]byte, 8) // all-zero float64 bits == 0.0 seconds
	idBytes := le32(42)

	entries := []struct {
		index uint16
		body  []byte
	}{
		{0x01, countBytes},
		{100, typeBytes},
		{101, dateBytes},
		{102, idBytes},
	}

	// A single-byte index e.g. 0x01 is stored on disk as [0x01, 0x00] (value
	// then a trailing zero), and a single-byte tag (here always 0x00) as
	// [0x00, 0x00] (leading zero then value).
	headSize := 12 + len(entries)*8
	var sizeTable, body []byte
	for _, e := range entries {
		sizeTable = append(sizeTable, byte(e.index), 0x00, 0x00, 0x00)
		sizeTable = append(sizeTable, le32(int32(len(e.body)))...)
		body = append(body, e.body...)
	}

	raw := make([]byte, 0, headSize+len(body))
	raw = append(raw, le32(int32(len(entries)))...)
	raw = append(raw, le32(int32(headSize))...)
	raw = append(raw, le32(int32(len(body)))...)
	raw = append(raw, sizeTable...)
	raw = append(raw, body...)

	got := actionsTakenField(raw, pmap.Null())
	list := got.List()
	if len(list) != 1 {
		t.Fatalf("actionsTakenField len = %d, want 1", len(list))
	}
	if list[0]["Type"].Text() != "Reply" {
		t.Errorf("Type = %q, want Reply", list[0]["Type"].Text())
	}
	if list[0]["RecordID"].Int() != 42 {
		t.Errorf("RecordID = %d, want 42", list[0]["RecordID"].Int())
	}
	want := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	if !list[0]["Date"].DateTime().Equal(want) {
		t.Errorf("Date = %v, want %v", list[0]["Date"].DateTime(), want)
	}
}
