package schema

import "testing"

func TestClassToSchemaResolves(t *testing.T) {
	sch, ok := ClassToSchema[3]
	if !ok {
		t.Fatal("expected class-id 3 to resolve")
	}
	if sch.Class != "OlkMessage" {
		t.Errorf("Class = %q, want OlkMessage", sch.Class)
	}
}

func TestClassToSchemaUnknown(t *testing.T) {
	if _, ok := ClassToSchema[999]; ok {
		t.Fatal("expected unregistered class-id to miss")
	}
}

func TestSchemaLookupOverrideWinsOverGlobal(t *testing.T) {
	// 03:04 is a plain global entry, but olkMessage overrides it to a
	// typeCode-handled MessageType.
	fs, ok := olkMessage.Lookup(key(0x03, 0x04))
	if !ok {
		t.Fatal("expected override lookup to hit")
	}
	if fs.Name != "MessageType" {
		t.Errorf("Name = %q, want MessageType", fs.Name)
	}
	if fs.Mode.Kind != HandlerFunc || !fs.Mode.Raw {
		t.Errorf("Mode = %+v, want raw func", fs.Mode)
	}
}

func TestSchemaLookupFallsBackToGlobal(t *testing.T) {
	// olkMessage has no override for 1F:01, so this falls through to the
	// global dictionary entry ("Name"), which is then renamed via Remap.
	fs, ok := olkMessage.Lookup(key(0x1F, 0x01))
	if !ok {
		t.Fatal("expected global fallback to hit")
	}
	if fs.Name != "Name" {
		t.Errorf("Name = %q, want Name (pre-remap)", fs.Name)
	}
	name, ok := olkMessage.RemapName(key(0x1F, 0x01))
	if !ok || name != "Subject" {
		t.Errorf("RemapName = (%q, %v), want (Subject, true)", name, ok)
	}
}

func TestSchemaRemapNameMiss(t *testing.T) {
	if _, ok := olkMessage.RemapName(key(0xFFFF, 0xFFFF)); ok {
		t.Fatal("expected remap miss for unregistered key")
	}
}

func TestSchemaSkipSets(t *testing.T) {
	if !olkMessage.SkipDupe["From2"] {
		t.Error("expected From2 in olkMessage.SkipDupe")
	}
	if !olkMessage.SkipIndb["ConversationID"] {
		t.Error("expected ConversationID in olkMessage.SkipIndb")
	}
	if olkMessage.SkipNull["From2"] {
		t.Error("From2 should not be in SkipNull")
	}
}

func TestNilSchemaLookupFallsBackToGlobal(t *testing.T) {
	var s *Schema
	fs, ok := s.Lookup(key(0x02, 0x80))
	if !ok || fs.Name != "Sensitivity" {
		t.Errorf("nil schema Lookup = (%+v, %v), want global Sensitivity entry", fs, ok)
	}
	if _, ok := s.RemapName(key(0x02, 0x80)); ok {
		t.Error("nil schema RemapName should miss")
	}
}

func TestOlkRecurrenceOverridesAndRemap(t *testing.T) {
	fs, ok := olkRecurrence.Lookup(key(0x03, 0x01))
	if !ok || fs.Name != "RecurrenceType" {
		t.Fatalf("Lookup(03:01) = (%+v, %v), want RecurrenceType", fs, ok)
	}
	name, ok := olkRecurrence.RemapName(key(0x03, 0x02))
	if !ok || name != "Interval" {
		t.Fatalf("RemapName(03:02) = (%q, %v), want (Interval, true)", name, ok)
	}
}
