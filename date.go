/*
date.go - Opaque day-count dates

PURPOSE:
  Date is a signed Julian Day Number (JDN). JDN 0 falls on November 24,
  4713 BCE in the proleptic Gregorian calendar; the epoch moment 0
  corresponds to JDN 2440588 in the zero-offset frame. A Date has no
  notion of month or year; decoding into a civil {year, month, day}
  reading is the calendar package's job.

WEEKDAYS:
  Weekday is derived purely from the day count. The cycle is anchored so
  that JDN 0 is a Monday, which makes JDN 2440588 (1970-01-01) a Thursday.

SEE ALSO:
  - calendar: Gregorian decoding and calendar-aware displacement
  - datetime.go: pairing a Date with a Time
*/
package chrono

import "time"

// Date is an opaque signed Julian Day Number. Arithmetic is pure integer
// day-count addition.
type Date struct {
	jdn int64
}

// EpochJDN is the Julian Day Number of the zero moment's civil date in
// the zero-offset frame (1970-01-01).
const EpochJDN int64 = 2440588

func FromJDN(jdn int64) Date { return Date{jdn} }

func (d Date) JDN() int64 { return d.jdn }

// AddDays moves the date by n whole days; negative n moves into the past.
func (d Date) AddDays(n int64) Date { return Date{d.jdn + n} }

// AddWeeks moves the date by n whole weeks.
func (d Date) AddWeeks(n int64) Date { return Date{d.jdn + 7*n} }

// Comparison
func (d Date) Before(other Date) bool { return d.jdn < other.jdn }
func (d Date) After(other Date) bool  { return d.jdn > other.jdn }
func (d Date) Equal(other Date) bool  { return d.jdn == other.jdn }

// Compare returns -1, 0 or +1 ordering d against other.
func (d Date) Compare(other Date) int {
	switch {
	case d.jdn < other.jdn:
		return -1
	case d.jdn > other.jdn:
		return 1
	default:
		return 0
	}
}

// Weekday derives the day of the week from the day count alone. The
// anchor makes JDN 0 a Monday.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(floorMod(d.jdn+1, 7))
}

// Next returns the next date strictly in the future falling on the given
// weekday. The move is always 1-7 days: a date already on the weekday
// moves a full week, never zero days.
func (d Date) Next(wd time.Weekday) Date {
	diff := floorMod(int64(wd)-int64(d.Weekday()), 7)
	if diff == 0 {
		diff = 7
	}
	return d.AddDays(diff)
}

// Last returns the closest date strictly in the past falling on the given
// weekday. Same 1-7 day guarantee as Next.
func (d Date) Last(wd time.Weekday) Date {
	diff := floorMod(int64(d.Weekday())-int64(wd), 7)
	if diff == 0 {
		diff = 7
	}
	return d.AddDays(-diff)
}

// Collect produces n dates by repeatedly applying step, starting from d
// but excluding d itself, in application order.
func (d Date) Collect(n int, step func(Date) Date) []Date {
	var out []Date
	current := d
	for i := 0; i < n; i++ {
		current = step(current)
		out = append(out, current)
	}
	return out
}

// ElapsedDays is a whole-day magnitude with the direction it points.
type ElapsedDays struct {
	Days      int64
	Direction Direction
}

// DaysBetween returns the whole-day distance from one date to another and
// the direction leading from the first to the second.
func DaysBetween(from, to Date) ElapsedDays {
	if to.jdn >= from.jdn {
		return ElapsedDays{Days: to.jdn - from.jdn, Direction: IntoFuture}
	}
	return ElapsedDays{Days: from.jdn - to.jdn, Direction: IntoPast}
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the Euclidean remainder; non-negative for positive b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
