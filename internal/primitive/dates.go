package primitive

import (
	"time"

	"github.com/hshore29/pyolk/internal/obslog"
)

var (
	winEpoch = time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)
	macEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	// maxTime stands in for a value that overflows time.Time's usable range.
	maxTime = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
)

// WindowsEpochMinutes converts a count of minutes since the Windows epoch
// (1601-01-01T00:00:00Z) to time.Time. Overflow is logged and clamped to
// maxTime rather than returned as an error, since a single bad date should
// not fail decoding of the rest of the record.
func WindowsEpochMinutes(m int32) time.Time {
	t := time.Unix(winEpoch.Unix()+int64(m)*60, 0).UTC()
	if t.Year() > 9999 || t.Year() < 1 {
		obslog.Warn("datetime overflow", "minutes", m)
		return maxTime
	}
	return t
}

// MacAbsoluteSeconds converts a float64 count of seconds since the Mac
// absolute epoch (2001-01-01T00:00:00Z) to time.Time.
func MacAbsoluteSeconds(s float64) time.Time {
	return macEpoch.Add(time.Duration(s * float64(time.Second)))
}
