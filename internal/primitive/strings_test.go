package primitive

import "testing"

func TestDecodeANSIAscii(t *testing.T) {
	got, err := DecodeANSI([]byte("hello"))
	if err != nil {
		t.Fatalf("DecodeANSI: %v", err)
	}
	if got != "hello" {
		t.Fatalf("DecodeANSI = %q, want %q", got, "hello")
	}
}

func TestDecodeANSIExtended(t *testing.T) {
	// 0x93/0x94 are Windows-1252 curly quotes, invalid in plain ASCII.
	got, err := DecodeANSI([]byte{0x93, 'h', 'i', 0x94})
	if err != nil {
		t.Fatalf("DecodeANSI: %v", err)
	}
	if got != "“hi”" {
		t.Fatalf("DecodeANSI = %q, want curly-quoted hi", got)
	}
}

func TestDecodeUTF16LEAscii(t *testing.T) {
	data := []byte{'h', 0, 'i', 0}
	if got := DecodeUTF16LE(data); got != "hi" {
		t.Fatalf("DecodeUTF16LE = %q, want %q", got, "hi")
	}
}

func TestDecodeUTF16LEEmpty(t *testing.T) {
	if got := DecodeUTF16LE(nil); got != "" {
		t.Fatalf("DecodeUTF16LE(nil) = %q, want empty", got)
	}
}

func TestDecodeUTF16LESurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as surrogate pair 0xD83D 0xDE00 (LE).
	data := []byte{0x3D, 0xD8, 0x00, 0xDE}
	got := DecodeUTF16LE(data)
	want := "\U0001F600"
	if got != want {
		t.Fatalf("DecodeUTF16LE(surrogate pair) = %q, want %q", got, want)
	}
}

func TestDecodeUTF16LENonAsciiBMP(t *testing.T) {
	// U+00E9 (e acute), LE encoded.
	data := []byte{0xE9, 0x00}
	if got := DecodeUTF16LE(data); got != "é" {
		t.Fatalf("DecodeUTF16LE = %q, want %q", got, "é")
	}
}
