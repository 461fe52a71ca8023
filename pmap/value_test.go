package pmap

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValueKindZeroValue(t *testing.T) {
	var v Value
	if v.Kind() != KindNull {
		t.Fatalf("zero Value kind = %v, want KindNull", v.Kind())
	}
	if !v.IsNull() {
		t.Fatalf("zero Value should be null")
	}
}

func TestValueAccessors(t *testing.T) {
	if !NewBool(true).Bool() {
		t.Error("NewBool(true).Bool() = false")
	}
	if NewInt(42).Int() != 42 {
		t.Error("NewInt(42).Int() != 42")
	}
	if NewLong(42).Long() != 42 {
		t.Error("NewLong(42).Long() != 42")
	}
	if NewFloat(1.5).Float() != 1.5 {
		t.Error("NewFloat(1.5).Float() != 1.5")
	}
	if NewText("hi").Text() != "hi" {
		t.Error("NewText(\"hi\").Text() != \"hi\"")
	}
	if string(NewBytes([]byte{1, 2}).Bytes()) != "\x01\x02" {
		t.Error("NewBytes round-trip mismatch")
	}
	if NewColor("#FF00BB").Color() != "#FF00BB" {
		t.Error("NewColor round-trip mismatch")
	}
}

func TestValueTypeCodeNull(t *testing.T) {
	v := NewTypeCode(nil)
	if v.Kind() != KindTypeCode {
		t.Fatalf("kind = %v, want KindTypeCode", v.Kind())
	}
	if got := v.TypeCode(); got != nil {
		t.Fatalf("TypeCode() = %v, want nil", got)
	}
}

func TestValueTypeCodeSet(t *testing.T) {
	s := "IPM.Note"
	v := NewTypeCode(&s)
	got := v.TypeCode()
	if got == nil || *got != s {
		t.Fatalf("TypeCode() = %v, want %q", got, s)
	}
}

func TestValueMarshalJSONScalars(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{NewBool(true), "true"},
		{NewInt(7), "7"},
		{NewText("hi"), `"hi"`},
		{NewColor("#FF00BB"), `"#FF00BB"`},
	}
	for _, tc := range cases {
		got, err := json.Marshal(tc.v)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(got) != tc.want {
			t.Errorf("Marshal(%+v) = %s, want %s", tc.v, got, tc.want)
		}
	}
}

func TestValueMarshalJSONMap(t *testing.T) {
	m := Map{"Subject": NewText("hello"), "Size": NewInt(100)}
	got, err := json.Marshal(NewMap(m))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(got, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out["Subject"] != "hello" {
		t.Errorf("Subject = %v, want hello", out["Subject"])
	}
}

func TestValueMarshalJSONDateTime(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got, err := json.Marshal(NewDateTime(ts))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want, _ := json.Marshal(ts)
	if string(got) != string(want) {
		t.Errorf("Marshal(DateTime) = %s, want %s", got, want)
	}
}
