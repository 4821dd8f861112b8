/*
Package calendar is the Gregorian layer over the chrono core.

PURPOSE:
  chrono.Date is a bare day count. This package decodes it into a civil
  {year, month, day} reading and back, and builds calendar-aware
  displacement on top: month and year arithmetic that must resolve
  impossible dates (January 31 plus one month), and the Moves
  mini-language for composable calendar travel.

KEY CONCEPTS IN THIS FILE (gregorian.go):
  - GregorianDate: a transient decoded view of a chrono.Date
  - ToGregorian / FromGregorian: exact integer JDN conversion,
    proleptic Gregorian, floor-division safe for dates before the epoch
  - Leap years and month lengths

DESIGN PRINCIPLES:
  1. Integer only: no floating point anywhere in the conversion
  2. Totality: FromGregorian extends over out-of-range days
     (February 30 decodes as March 2); overflow resolution is the
     move strategy's job, not the codec's

SEE ALSO:
  - moves.go: the Moves mini-language
  - strategy.go: impossible-date resolution strategies
*/
package calendar

import (
	"time"

	"github.com/warp/chrono"
)

// GregorianDate is a decoded civil view of a chrono.Date. It is a
// transient value for application logic, not a long-lived entity.
type GregorianDate struct {
	Year  int
	Month time.Month
	Day   int
}

// =============================================================================
// JDN CODEC
// =============================================================================

// FromGregorian encodes a civil date as a day count. The calculation is
// the standard integer JDN formula with floor division, so it is exact
// for negative years as well. Day values past the month's end keep
// counting into the following month.
func FromGregorian(g GregorianDate) chrono.Date {
	y := int64(g.Year)
	m := int64(g.Month)
	d := int64(g.Day)

	a := floorDiv(14-m, 12)
	y2 := y + 4800 - a
	m2 := m + 12*a - 3

	jdn := d + floorDiv(153*m2+2, 5) + 365*y2 +
		floorDiv(y2, 4) - floorDiv(y2, 100) + floorDiv(y2, 400) - 32045
	return chrono.FromJDN(jdn)
}

// ToGregorian decodes a day count into its civil reading. Exact inverse
// of FromGregorian for every valid Gregorian date.
func ToGregorian(d chrono.Date) GregorianDate {
	a := d.JDN() + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d2 := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d2, 4)
	m := floorDiv(5*e+2, 153)

	day := e - floorDiv(153*m+2, 5) + 1
	month := m + 3 - 12*floorDiv(m, 10)
	year := 100*b + d2 - 4800 + floorDiv(m, 10)

	return GregorianDate{Year: int(year), Month: time.Month(month), Day: int(day)}
}

// On is shorthand for FromGregorian.
func On(year int, month time.Month, day int) chrono.Date {
	return FromGregorian(GregorianDate{Year: year, Month: month, Day: day})
}

// =============================================================================
// CALENDAR RULES
// =============================================================================

// IsLeapYear follows the Gregorian rule: divisible by 4, except century
// years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthLengths = [...]int{
	time.January:   31,
	time.February:  28,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

// DaysInMonth returns the length of the month in the given year.
func DaysInMonth(month time.Month, year int) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// =============================================================================
// MONTH AND YEAR DISPLACEMENT
// =============================================================================

// addMonths displaces the civil date by n months, splitting n into whole
// years (floor) and a non-negative month remainder (Euclidean), carrying
// any month-index overflow into the year, then handing a possibly
// impossible day to the strategy.
func addMonths(g GregorianDate, n int, resolve MoveStrategy) GregorianDate {
	months := int(floorMod(int64(n), 12))
	aPrioriYears := int(floorDiv(int64(n), 12))

	idx := int(g.Month) - 1 + months
	carry := int(floorDiv(int64(idx), 12))
	month := time.Month(1 + int(floorMod(int64(idx), 12)))

	return resolveOverflow(GregorianDate{
		Year:  g.Year + aPrioriYears + carry,
		Month: month,
		Day:   g.Day,
	}, resolve)
}

// addYears displaces the civil date by n years, then resolves a possibly
// impossible day (February 29 off a leap year).
func addYears(g GregorianDate, n int, resolve MoveStrategy) GregorianDate {
	return resolveOverflow(GregorianDate{Year: g.Year + n, Month: g.Month, Day: g.Day}, resolve)
}

// resolveOverflow hands the date to the strategy only when the day
// exceeds the target month's length. Never a silent wraparound, never an
// error.
func resolveOverflow(g GregorianDate, resolve MoveStrategy) GregorianDate {
	if resolve == nil {
		resolve = StayInSameMonth
	}
	if g.Day > DaysInMonth(g.Month, g.Year) {
		return resolve(g)
	}
	return g
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
