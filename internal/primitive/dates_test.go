package primitive

import (
	"testing"
	"time"
)

func TestWindowsEpochMinutes(t *testing.T) {
	got := WindowsEpochMinutes(0)
	want := time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("WindowsEpochMinutes(0) = %v, want %v", got, want)
	}

	// One day (1440 minutes) after the epoch.
	got = WindowsEpochMinutes(1440)
	want = time.Date(1601, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("WindowsEpochMinutes(1440) = %v, want %v", got, want)
	}
}

func TestWindowsEpochMinutesOverflow(t *testing.T) {
	got := WindowsEpochMinutes(-2147483648)
	if got.Year() != maxTime.Year() {
		t.Fatalf("expected overflow clamp to maxTime, got %v", got)
	}
}

func TestMacAbsoluteSeconds(t *testing.T) {
	got := MacAbsoluteSeconds(0)
	want := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("MacAbsoluteSeconds(0) = %v, want %v", got, want)
	}

	got = MacAbsoluteSeconds(86400)
	want = time.Date(2001, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("MacAbsoluteSeconds(86400) = %v, want %v", got, want)
	}
}
