package chrono_test

import (
	"testing"
	"time"

	"github.com/warp/chrono"
)

// =============================================================================
// JDN AND ORDERING
// =============================================================================

func TestDate_JDNRoundTrip(t *testing.T) {
	for _, jdn := range []int64{0, 1, -1, 2440588, 2453738, -100000} {
		if got := chrono.FromJDN(jdn).JDN(); got != jdn {
			t.Errorf("round trip of JDN %d returned %d", jdn, got)
		}
	}
}

func TestDate_DayArithmetic(t *testing.T) {
	d := chrono.FromJDN(2440588)

	if got := d.AddDays(31).JDN(); got != 2440619 {
		t.Errorf("expected 2440619, got %d", got)
	}
	if got := d.AddDays(-1).JDN(); got != 2440587 {
		t.Errorf("expected 2440587, got %d", got)
	}
	if got := d.AddWeeks(2).JDN(); got != 2440602 {
		t.Errorf("expected 2440602, got %d", got)
	}
}

func TestDaysBetween_MagnitudeAndDirection(t *testing.T) {
	a := chrono.FromJDN(100)
	b := chrono.FromJDN(110)

	forward := chrono.DaysBetween(a, b)
	if forward.Days != 10 || forward.Direction != chrono.IntoFuture {
		t.Errorf("unexpected forward result: %+v", forward)
	}
	backward := chrono.DaysBetween(b, a)
	if backward.Days != 10 || backward.Direction != chrono.IntoPast {
		t.Errorf("unexpected backward result: %+v", backward)
	}
}

// =============================================================================
// WEEKDAYS
// =============================================================================

func TestDate_WeekdayAnchors(t *testing.T) {
	// JDN 0 is a Monday; the epoch date (JDN 2440588, 1970-01-01) is a
	// Thursday. Both follow from the same cyclic anchor.
	if wd := chrono.FromJDN(0).Weekday(); wd != time.Monday {
		t.Errorf("JDN 0 should be Monday, got %s", wd)
	}
	if wd := chrono.FromJDN(2440588).Weekday(); wd != time.Thursday {
		t.Errorf("epoch date should be Thursday, got %s", wd)
	}
	// Negative day counts stay on the same cycle.
	if wd := chrono.FromJDN(-1).Weekday(); wd != time.Sunday {
		t.Errorf("JDN -1 should be Sunday, got %s", wd)
	}
}

func TestDate_NextAndLastNeverMoveZeroDays(t *testing.T) {
	// GIVEN: Any date and any target weekday
	// WHEN: Seeking the weekday forward and backward
	// THEN: The move is always 1-7 days, and exactly 7 when the date
	//       already falls on the target

	start := chrono.FromJDN(2440588)
	for offset := int64(0); offset < 7; offset++ {
		d := start.AddDays(offset)
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			next := d.Next(wd)
			diff := next.JDN() - d.JDN()
			if diff < 1 || diff > 7 {
				t.Errorf("Next(%s) from %s moved %d days", wd, d.Weekday(), diff)
			}
			if next.Weekday() != wd {
				t.Errorf("Next(%s) landed on %s", wd, next.Weekday())
			}

			last := d.Last(wd)
			diff = d.JDN() - last.JDN()
			if diff < 1 || diff > 7 {
				t.Errorf("Last(%s) from %s moved %d days", wd, d.Weekday(), diff)
			}
			if last.Weekday() != wd {
				t.Errorf("Last(%s) landed on %s", wd, last.Weekday())
			}
		}

		// Seeking the weekday the date is already on moves a full week.
		if diff := d.Next(d.Weekday()).JDN() - d.JDN(); diff != 7 {
			t.Errorf("Next of own weekday moved %d days, want 7", diff)
		}
		if diff := d.JDN() - d.Last(d.Weekday()).JDN(); diff != 7 {
			t.Errorf("Last of own weekday moved %d days, want 7", diff)
		}
	}
}

// =============================================================================
// COLLECT
// =============================================================================

func TestDate_CollectExcludesStart(t *testing.T) {
	// GIVEN: A weekly step
	// WHEN: Collecting 3 dates
	// THEN: The start date is excluded and steps apply in order

	start := chrono.FromJDN(1000)
	weekly := func(d chrono.Date) chrono.Date { return d.AddWeeks(1) }

	dates := start.Collect(3, weekly)
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	for i, want := range []int64{1007, 1014, 1021} {
		if dates[i].JDN() != want {
			t.Errorf("date %d: expected JDN %d, got %d", i, want, dates[i].JDN())
		}
	}
}

func TestDate_CollectZero(t *testing.T) {
	dates := chrono.FromJDN(1000).Collect(0, func(d chrono.Date) chrono.Date { return d.AddDays(1) })
	if len(dates) != 0 {
		t.Errorf("expected no dates, got %d", len(dates))
	}
}
