package decoder

import (
	"testing"

	"github.com/hshore29/pyolk/pmap"
)

// TestPostprocessEventDailyInterval matches seed scenario 3: a Daily
// recurrence's Interval field is encoded in minutes and must be divided by
// 1440 to read back as days.
func TestPostprocessEventDailyInterval(t *testing.T) {
	props := pmap.Map{
		"RRule": pmap.NewMap(pmap.Map{
			"RecurrenceType": pmap.NewText("Daily"),
			"Interval":       pmap.NewInt(2880),
			"EndType":        pmap.NewText("NoEndDate"),
		}),
	}
	postprocessEvent(props)

	rrule := props["RRule"].Map()
	if got := rrule["Interval"].Int(); got != 2 {
		t.Fatalf("Interval = %d, want 2", got)
	}
}

// TestPostprocessEventMonthNthLastFriday matches seed scenario 5: MonthNth
// value 5 ("last") maps to SetPos -1, and MonthDOW is renamed to Day.
func TestPostprocessEventMonthNthLastFriday(t *testing.T) {
	props := pmap.Map{
		"RRule": pmap.NewMap(pmap.Map{
			"RecurrenceType": pmap.NewText("MonthNth"),
			"MonthDOW":       pmap.NewText("FR"),
			"MonthNth":       pmap.NewInt(5),
			"EndType":        pmap.NewText("NoEndDate"),
		}),
	}
	postprocessEvent(props)

	rrule := props["RRule"].Map()
	if got := rrule["Day"].Text(); got != "FR" {
		t.Fatalf("Day = %q, want FR", got)
	}
	if _, ok := rrule["MonthDOW"]; ok {
		t.Error("expected MonthDOW to be renamed away")
	}
	if got := rrule["SetPos"].Int(); got != -1 {
		t.Fatalf("SetPos = %d, want -1", got)
	}
	if _, ok := rrule["MonthNth"]; ok {
		t.Error("expected MonthNth to be renamed away")
	}
}

func TestPostprocessEventMonthNthOrdinary(t *testing.T) {
	props := pmap.Map{
		"RRule": pmap.NewMap(pmap.Map{
			"RecurrenceType": pmap.NewText("MonthNth"),
			"MonthDOW":       pmap.NewText("MO"),
			"MonthNth":       pmap.NewInt(2),
			"EndType":        pmap.NewText("NoEndDate"),
		}),
	}
	postprocessEvent(props)

	rrule := props["RRule"].Map()
	if got := rrule["SetPos"].Int(); got != 2 {
		t.Fatalf("SetPos = %d, want 2 (only value 5 means \"last\")", got)
	}
}

func TestPostprocessEventWeeklyRenamesDay(t *testing.T) {
	props := pmap.Map{
		"RRule": pmap.NewMap(pmap.Map{
			"RecurrenceType": pmap.NewText("Weekly"),
			"WeekDay":        pmap.NewText("MO,WE"),
			"EndType":        pmap.NewText("NoEndDate"),
		}),
	}
	postprocessEvent(props)

	rrule := props["RRule"].Map()
	if got := rrule["Day"].Text(); got != "MO,WE" {
		t.Fatalf("Day = %q, want MO,WE", got)
	}
	if _, ok := rrule["WeekDay"]; ok {
		t.Error("expected WeekDay to be renamed away")
	}
}

func TestPostprocessEventEndTypePruning(t *testing.T) {
	cases := []struct {
		endType       string
		wantUntil     bool
		wantOccurs    bool
	}{
		{"NoEndDate", false, false},
		{"EndAfterCount", false, true},
		{"EndOnDate", true, false},
	}
	for _, c := range cases {
		props := pmap.Map{
			"RRule": pmap.NewMap(pmap.Map{
				"RecurrenceType": pmap.NewText("Daily"),
				"Interval":       pmap.NewInt(1440),
				"EndType":        pmap.NewText(c.endType),
				"Until":          pmap.NewDateTime(pmap.Null().DateTime()),
				"Occurrences":    pmap.NewInt(5),
			}),
		}
		postprocessEvent(props)
		rrule := props["RRule"].Map()
		_, hasUntil := rrule["Until"]
		_, hasOccurs := rrule["Occurrences"]
		if hasUntil != c.wantUntil {
			t.Errorf("%s: Until present = %v, want %v", c.endType, hasUntil, c.wantUntil)
		}
		if hasOccurs != c.wantOccurs {
			t.Errorf("%s: Occurrences present = %v, want %v", c.endType, hasOccurs, c.wantOccurs)
		}
	}
}

func TestPostprocessEventDefaultsExceptionDates(t *testing.T) {
	props := pmap.Map{
		"RRule": pmap.NewMap(pmap.Map{
			"RecurrenceType": pmap.NewText("Daily"),
			"Interval":       pmap.NewInt(1440),
			"EndType":        pmap.NewText("NoEndDate"),
		}),
	}
	postprocessEvent(props)
	rrule := props["RRule"].Map()
	ed, ok := rrule["ExceptionDates"]
	if !ok {
		t.Fatal("expected ExceptionDates to default in")
	}
	if len(ed.DateList()) != 0 {
		t.Errorf("ExceptionDates = %v, want empty", ed.DateList())
	}
}

// TestPostprocessContactEmailAssembly matches seed scenario 4: a bitmask of
// 0b0110 with count 2 expands to [Other, Home]; zipped against the sorted
// EmailAddress_N properties and the default-index pointer.
func TestPostprocessContactEmailAssembly(t *testing.T) {
	props := pmap.Map{
		"EmailTypesRaw":   pmap.NewInt(0b0110),
		"EmailCount":      pmap.NewInt(2),
		"EmailAddress_1":  pmap.NewText("a@x"),
		"EmailAddress_2":  pmap.NewText("b@y"),
		"DefaultEmailRaw": pmap.NewBytes([]byte{103}),
	}
	postprocessContact(props)

	list := props["EmailAddresses"].List()
	if len(list) != 2 {
		t.Fatalf("EmailAddresses len = %d, want 2", len(list))
	}
	if list[0]["Type"].Text() != "Other" || list[0]["Address"].Text() != "a@x" {
		t.Errorf("EmailAddresses[0] = %v, want {Other, a@x}", list[0])
	}
	if list[1]["Type"].Text() != "Home" || list[1]["Address"].Text() != "b@y" {
		t.Errorf("EmailAddresses[1] = %v, want {Home, b@y}", list[1])
	}
	if got := props["DefaultEmailAddress"].Text(); got != "b@y" {
		t.Fatalf("DefaultEmailAddress = %q, want b@y", got)
	}
	if _, ok := props["EmailTypesRaw"]; ok {
		t.Error("expected EmailTypesRaw to be consumed")
	}
	if _, ok := props["EmailAddress_1"]; ok {
		t.Error("expected EmailAddress_1 to be consumed")
	}
}

func TestPostprocessCollectXMLIdempotent(t *testing.T) {
	props := pmap.Map{
		"XML:foo": pmap.NewText("1"),
		"XML:bar": pmap.NewText("2"),
		"Other":   pmap.NewText("keep"),
	}
	postprocessCollectXML(props)

	xml := props["XML"].Map()
	if xml["foo"].Text() != "1" || xml["bar"].Text() != "2" {
		t.Fatalf("XML = %v, want {foo:1, bar:2}", xml)
	}
	if props["Other"].Text() != "keep" {
		t.Error("expected unrelated property to survive untouched")
	}

	before := len(props)
	postprocessCollectXML(props)
	if len(props) != before {
		t.Fatalf("second pass changed prop count: %d -> %d", before, len(props))
	}
	xml2 := props["XML"].Map()
	if xml2["foo"].Text() != "1" || xml2["bar"].Text() != "2" {
		t.Fatalf("XML after second pass = %v, want unchanged", xml2)
	}
}

func TestTypeListParse(t *testing.T) {
	got := typeListParse(0b0110, 2)
	want := []string{"Other", "Home"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("typeListParse = %v, want %v", got, want)
	}
}
