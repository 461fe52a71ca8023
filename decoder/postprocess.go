package decoder

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/hshore29/pyolk/pmap"
)

// attachZone reinterprets t's wall-clock fields in the named IANA zone: the
// zone is replaced and no conversion is done, so the wall-clock reading is
// kept and the instant moves with the new zone. Organizer-local timestamps
// are decoded with no zone information; the event's own timezone supplies it.
func attachZone(t time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		obslog.Warn("unknown timezone", "tz", tz, "error", err)
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// truncateToDate drops t's time-of-day component, keeping only the
// calendar date in UTC.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// postprocessEvent normalizes an event's recurrence rule, applies the
// end-type-dependent Until/Occurrences pruning, and attaches the event's
// own timezone to its organizer-local timestamps.
func postprocessEvent(props pmap.Map) {
	if rv, ok := props["RRule"]; ok {
		rrule := rv.Map()

		switch text(rrule["RecurrenceType"]) {
		case "Daily":
			rrule["Interval"] = pmap.NewInt(rrule["Interval"].Int() / 1440)
		case "Weekly":
			rrule["Day"] = rrule["WeekDay"]
			delete(rrule, "WeekDay")
		case "MonthNth":
			rrule["Day"] = rrule["MonthDOW"]
			delete(rrule, "MonthDOW")
			setpos := rrule["MonthNth"].Int()
			delete(rrule, "MonthNth")
			if setpos == 5 {
				setpos = -1
			}
			rrule["SetPos"] = pmap.NewInt(setpos)
		}

		if sd, ok := rrule["StartDate"]; ok {
			rrule["StartDate"] = pmap.NewDate(truncateToDate(sd.DateTime()))
		}
		if until, ok := rrule["Until"]; ok {
			rrule["Until"] = pmap.NewDate(truncateToDate(until.DateTime()))
		}

		switch text(rrule["EndType"]) {
		case "NoEndDate":
			delete(rrule, "Until")
			delete(rrule, "Occurrences")
		case "EndAfterCount":
			delete(rrule, "Until")
		case "EndOnDate":
			delete(rrule, "Occurrences")
		}

		if _, ok := rrule["ExceptionDates"]; !ok {
			rrule["ExceptionDates"] = pmap.NewDateList(nil)
		}
	}

	tz := ""
	if tzv, ok := props["Timezone"]; ok {
		tz = text(tzv.Map()["TZID"])
	}
	if tz == "" {
		return
	}
	for _, field := range []string{"StartDateOrganizer", "EndDateOrganizer", "ReplyTime"} {
		if v, ok := props[field]; ok && v.Kind() == pmap.KindDateTime {
			props[field] = pmap.NewDateTime(attachZone(v.DateTime(), tz))
		}
	}
}

// postprocessContact turns the raw email/IM type bitmask and the
// index-suffixed EmailAddress_N/IMAddress_N fields into EmailAddresses and
// IMAddresses lists, and resolves the DefaultEmailAddress/DefaultIMAddress
// pointers from their raw byte offsets.
func postprocessContact(props pmap.Map) {
	emailFlags := popInt(props, "EmailTypesRaw")
	emailCount := popInt(props, "EmailCount")
	emailTypes := typeListParse(emailFlags, emailCount)
	emails := extractAddressList(props, "EmailAddress")

	var emailList []pmap.Map
	for i := 0; i < len(emailTypes) && i < len(emails); i++ {
		emailList = append(emailList, pmap.Map{
			"Type":    pmap.NewText(emailTypes[i]),
			"Address": pmap.NewText(emails[i].addr),
		})
	}
	props["EmailAddresses"] = pmap.NewList(emailList)

	emailDefault := popBytes(props, "DefaultEmailRaw")
	if len(emailList) > 0 && len(emailDefault) > 0 {
		idx := int(emailDefault[0]) - 102
		if idx >= 0 && idx < len(emailList) {
			props["DefaultEmailAddress"] = emailList[idx]["Address"]
		}
	}

	imFlags := popInt(props, "IMTypesRaw")
	imCount := popInt(props, "IMCount")
	imTypes := typeListParse(imFlags, imCount)
	ims := extractAddressList(props, "IMAddress")

	var imList []pmap.Map
	for i := 0; i < len(imTypes) && i < len(ims); i++ {
		imList = append(imList, pmap.Map{
			"Type":    pmap.NewText(imTypes[i]),
			"Address": pmap.NewText(ims[i].addr),
		})
	}
	props["IMAddresses"] = pmap.NewList(imList)

	imDefault := popBytes(props, "DefaultIMRaw")
	if len(imList) > 0 && len(imDefault) > 0 {
		idx := int(imDefault[0]) - 120
		if idx >= 0 && idx < len(imList) {
			props["DefaultIMAddress"] = imList[idx]["Address"]
		}
	}
}

// postprocessMain assembles each country's AddressFormats entry into a
// single multi-line format string from its per-line part fields.
func postprocessMain(props pmap.Map) {
	fv, ok := props["AddressFormats"]
	if !ok {
		return
	}

	formats := make(pmap.Map)
	for _, entry := range fv.List() {
		code := text(entry["country_code"])

		var b strings.Builder
		if p1 := text(entry["part_1"]); p1 != "" {
			b.WriteString("{" + p1 + "}")
		}
		if p2 := text(entry["part_2"]); p2 != "" {
			b.WriteString("\n{" + p2 + "}")
		}

		p5, p6, p7 := text(entry["part_5"]), text(entry["part_6"]), text(entry["part_7"])
		s5 := text(entry["sep_5_6"]) + " "
		if p5 != "" || p6 != "" || p7 != "" {
			b.WriteString("\n")
		}
		if p5 != "" {
			b.WriteString("{" + p5 + "}")
			if p6 != "" || p7 != "" {
				b.WriteString(s5)
			}
		}
		if p6 != "" {
			b.WriteString("{" + p6 + "}")
			if p7 != "" {
				b.WriteString(" ")
			}
		}
		if p7 != "" {
			b.WriteString("{" + p7 + "}")
		}

		p9, pA := text(entry["part_9"]), text(entry["part_A"])
		s9 := text(entry["sep_9_A"]) + " "
		if p9 != "" || pA != "" {
			b.WriteString("\n")
		}
		if p9 != "" {
			b.WriteString("{" + p9 + "}")
			if pA != "" {
				b.WriteString(s9)
			}
		}
		if pA != "" {
			b.WriteString("{" + pA + "}")
		}

		if pD := text(entry["part_D"]); pD != "" {
			b.WriteString("\n{" + pD + "}")
		}

		sepStreet := " "
		if s, ok := entry["sep_street"]; ok && s.Text() != "" {
			sepStreet = s.Text()
		}

		fmtEntry := pmap.Map{
			"format_string": pmap.NewText(b.String()),
			"sep_street":    pmap.NewText(sepStreet),
		}
		if int14, ok := entry["int14"]; ok {
			fmtEntry["int14"] = int14
		}
		formats[code] = pmap.NewMap(fmtEntry)
	}
	props["AddressFormats"] = pmap.NewMap(formats)
}

// postprocessCollectXML gathers every "XML:"-prefixed property into a
// single nested XML map, keyed by the part of the name after the colon.
func postprocessCollectXML(props pmap.Map) {
	xml := make(pmap.Map)
	for k := range props {
		if strings.HasPrefix(k, "XML:") {
			xml[strings.TrimPrefix(k, "XML:")] = props[k]
		}
	}
	for k := range xml {
		delete(props, "XML:"+k)
	}
	if len(xml) > 0 {
		props["XML"] = pmap.NewMap(xml)
	}
}

// typeListParse walks a 2-bit-per-entry flag word, low bits first, mapping
// each pair to Home (bit 0 set), Other (bit 1 set, bit 0 clear), or Work
// (neither bit set).
func typeListParse(flag, count int64) []string {
	types := make([]string, 0, count)
	for i := int64(0); i < count; i++ {
		t := "Work"
		if flag&1 != 0 {
			t = "Home"
		} else if flag&2 != 0 {
			t = "Other"
		}
		types = append(types, t)
		flag >>= 2
	}
	return types
}

type indexedAddress struct {
	idx  int
	addr string
}

// extractAddressList pulls every "<prefix>_<N>" property out of props,
// removing it, and returns the addresses sorted by their numeric suffix.
func extractAddressList(props pmap.Map, prefix string) []indexedAddress {
	var out []indexedAddress
	match := prefix + "_"
	for k, v := range props {
		if !strings.HasPrefix(k, match) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(k, match))
		if err != nil {
			continue
		}
		out = append(out, indexedAddress{idx: idx, addr: v.Text()})
		delete(props, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].idx < out[j].idx })
	return out
}

func text(v pmap.Value) string {
	if v.Kind() != pmap.KindText {
		return ""
	}
	return v.Text()
}

func popInt(m pmap.Map, key string) int64 {
	v, ok := m[key]
	delete(m, key)
	if !ok {
		return 0
	}
	return v.Int()
}

func popBytes(m pmap.Map, key string) []byte {
	v, ok := m[key]
	delete(m, key)
	if !ok {
		return nil
	}
	return v.Bytes()
}
