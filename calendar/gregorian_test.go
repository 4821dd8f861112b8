package calendar_test

import (
	"testing"
	"time"

	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
)

// =============================================================================
// LEAP YEARS AND MONTH LENGTHS
// =============================================================================

func TestIsLeapYear(t *testing.T) {
	cases := map[int]bool{
		2000: true,  // divisible by 400
		1900: false, // century, not divisible by 400
		1600: true,
		2004: true,
		2003: false,
		2019: false,
		2100: false,
		0:    true,
		-4:   true,
	}
	for year, want := range cases {
		if got := calendar.IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := calendar.DaysInMonth(time.February, 2004); got != 29 {
		t.Errorf("February 2004 should have 29 days, got %d", got)
	}
	if got := calendar.DaysInMonth(time.February, 2003); got != 28 {
		t.Errorf("February 2003 should have 28 days, got %d", got)
	}
	lengths := map[time.Month]int{
		time.January: 31, time.April: 30, time.June: 30,
		time.September: 30, time.November: 30, time.December: 31,
	}
	for m, want := range lengths {
		if got := calendar.DaysInMonth(m, 2019); got != want {
			t.Errorf("%s 2019 should have %d days, got %d", m, want, got)
		}
	}
}

// =============================================================================
// JDN CODEC
// =============================================================================

func TestGregorian_KnownDates(t *testing.T) {
	cases := []struct {
		jdn   int64
		year  int
		month time.Month
		day   int
	}{
		{2440588, 1970, time.January, 1},   // the epoch date
		{2453738, 2006, time.January, 2},   // classic JDN reference value
		{2451604, 2000, time.February, 29}, // leap day of a 400-year
		{2458574, 2019, time.March, 31},    // the Brussels switch date
		{0, -4713, time.November, 24},      // JDN origin, proleptic Gregorian
	}

	for _, tc := range cases {
		got := calendar.ToGregorian(chrono.FromJDN(tc.jdn))
		want := calendar.GregorianDate{Year: tc.year, Month: tc.month, Day: tc.day}
		if got != want {
			t.Errorf("ToGregorian(%d) = %+v, want %+v", tc.jdn, got, want)
		}
		if back := calendar.FromGregorian(want); back.JDN() != tc.jdn {
			t.Errorf("FromGregorian(%+v) = %d, want %d", want, back.JDN(), tc.jdn)
		}
	}
}

func TestGregorian_RoundTripSweep(t *testing.T) {
	// GIVEN: A sweep of day counts across century and leap boundaries
	// WHEN: Decoding and re-encoding each
	// THEN: Every value survives unchanged

	starts := []int64{0, 1_721_060, 2_299_161, 2_440_588, 2_451_545}
	for _, start := range starts {
		for offset := int64(-400); offset <= 400; offset += 7 {
			jdn := start + offset
			g := calendar.ToGregorian(chrono.FromJDN(jdn))
			if back := calendar.FromGregorian(g); back.JDN() != jdn {
				t.Fatalf("round trip of JDN %d via %+v returned %d", jdn, g, back.JDN())
			}
			if g.Day < 1 || g.Day > calendar.DaysInMonth(g.Month, g.Year) {
				t.Fatalf("JDN %d decoded to impossible date %+v", jdn, g)
			}
		}
	}
}

func TestGregorian_EpochWeekday(t *testing.T) {
	if wd := calendar.On(1970, time.January, 1).Weekday(); wd != time.Thursday {
		t.Errorf("1970-01-01 should be a Thursday, got %s", wd)
	}
	if wd := calendar.On(2019, time.March, 22).Weekday(); wd != time.Friday {
		t.Errorf("2019-03-22 should be a Friday, got %s", wd)
	}
}

// =============================================================================
// MONTH DISPLACEMENT (through the Moves surface)
// =============================================================================

func TestMonths_LeapAwareClamping(t *testing.T) {
	// GIVEN: January 30 in a common year and in a leap year
	// WHEN: Adding one month with StayInSameMonth
	// THEN: The day clamps to that February's actual length

	got := calendar.Travel(calendar.Months(1, calendar.StayInSameMonth), calendar.On(2003, time.January, 30))
	if want := calendar.On(2003, time.February, 28); !got.Equal(want) {
		t.Errorf("2003-01-30 + 1 month = %+v", calendar.ToGregorian(got))
	}

	got = calendar.Travel(calendar.Months(1, calendar.StayInSameMonth), calendar.On(2004, time.January, 30))
	if want := calendar.On(2004, time.February, 29); !got.Equal(want) {
		t.Errorf("2004-01-30 + 1 month = %+v", calendar.ToGregorian(got))
	}
}

func TestMonths_SplitAcrossYears(t *testing.T) {
	cases := []struct {
		year   int
		month  time.Month
		day    int
		months int
		wYear  int
		wMonth time.Month
		wDay   int
	}{
		{2019, time.November, 15, 3, 2020, time.February, 15},
		{2020, time.January, 15, -13, 2018, time.December, 15},
		{2020, time.March, 31, -1, 2020, time.February, 29},
		{2019, time.May, 10, 0, 2019, time.May, 10},
		{2019, time.May, 10, 24, 2021, time.May, 10},
	}

	for _, tc := range cases {
		got := calendar.Travel(
			calendar.Months(tc.months, calendar.StayInSameMonth),
			calendar.On(tc.year, tc.month, tc.day),
		)
		want := calendar.On(tc.wYear, tc.wMonth, tc.wDay)
		if !got.Equal(want) {
			t.Errorf("%d-%02d-%02d %+d months = %+v, want %d-%02d-%02d",
				tc.year, tc.month, tc.day, tc.months,
				calendar.ToGregorian(got), tc.wYear, tc.wMonth, tc.wDay)
		}
	}
}

func TestYears_LeapDayResolution(t *testing.T) {
	// February 29 plus one year is impossible; the strategy decides.
	start := calendar.On(2004, time.February, 29)

	stay := calendar.Travel(calendar.Years(1, calendar.StayInSameMonth), start)
	if want := calendar.On(2005, time.February, 28); !stay.Equal(want) {
		t.Errorf("stay-in-month: %+v", calendar.ToGregorian(stay))
	}

	spill := calendar.Travel(calendar.Years(1, calendar.SpillToNextMonth), start)
	if want := calendar.On(2005, time.March, 1); !spill.Equal(want) {
		t.Errorf("spill-to-next-month: %+v", calendar.ToGregorian(spill))
	}
}
