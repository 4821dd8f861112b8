/*
moves.go - The Moves mini-language for calendar travel

PURPOSE:
  A Moves value is an ordered sequence of primitive calendar
  displacements: whole days or weeks, months or years with an
  impossible-date strategy, seeking a weekday, seeking a day in the
  month, seeking the Nth weekday of the month, and predicate-gated
  sub-sequences. Travel replays the sequence against a date.

ORDER MATTERS:
  Moves compose by concatenation and apply strictly left to right.
  Days-then-months is not months-then-days in general: February 28 2000
  moved +3 days then +3 months lands on June 2, while +3 months then
  +3 days lands on May 31. There is no reordering and no associativity
  beyond concatenation.

DESIGN:
  Each move kind is one case of a closed sum type (the unexported apply
  method seals it); Travel is a fold applying the per-variant handler.
  Moves values are immutable; AndThen returns a fresh sequence.

SEE ALSO:
  - gregorian.go: month/year displacement underneath month and year moves
  - strategy.go: what happens to February 30
*/
package calendar

import (
	"time"

	"github.com/warp/chrono"
)

// Move is one primitive calendar displacement. The set of variants is
// closed; construct them through the package-level builders.
type Move interface {
	apply(chrono.Date) chrono.Date
}

// Moves is an immutable ordered sequence of moves.
type Moves []Move

// AndThen concatenates two sequences into a fresh one. Application order
// is strictly left to right.
func (m Moves) AndThen(next Moves) Moves {
	out := make(Moves, 0, len(m)+len(next))
	out = append(out, m...)
	out = append(out, next...)
	return out
}

// Travel replays the sequence against a date, left to right.
func Travel(moves Moves, d chrono.Date) chrono.Date {
	for _, mv := range moves {
		d = mv.apply(d)
	}
	return d
}

// Predicate gates a sub-sequence; see OnlyWhen.
type Predicate func(chrono.Date) bool

// Ordinal selects which occurrence of a weekday within a month. Positive
// ordinals count from the start of the month; see NthToLast for counting
// from the end.
type Ordinal int

const (
	First Ordinal = iota + 1
	Second
	Third
	Fourth
	Fifth
)

// NthToLast counts occurrences from the end of the month; NthToLast(1) is
// the last occurrence. n is clamped to at least 1.
func NthToLast(n int) Ordinal {
	if n < 1 {
		n = 1
	}
	return Ordinal(-n)
}

// =============================================================================
// BUILDERS
// =============================================================================

// Days moves by n whole days; negative n moves into the past.
func Days(n int64) Moves { return Moves{dayMove{n}} }

// Weeks moves by n whole weeks; negative n moves into the past.
func Weeks(n int64) Moves { return Moves{dayMove{7 * n}} }

// Months moves by n calendar months, resolving impossible dates with the
// strategy (StayInSameMonth when nil). Negative n moves into the past.
func Months(n int, resolve MoveStrategy) Moves { return Moves{monthMove{n, resolve}} }

// Years moves by n calendar years, resolving impossible dates with the
// strategy (StayInSameMonth when nil). Negative n moves into the past.
func Years(n int, resolve MoveStrategy) Moves { return Moves{yearMove{n, resolve}} }

// Next seeks the given weekday strictly into the future: 1-7 days, a full
// week when already on it.
func Next(wd time.Weekday) Moves { return Moves{weekdayMove{wd, chrono.IntoFuture}} }

// Last seeks the given weekday strictly into the past: 1-7 days, a full
// week when already on it.
func Last(wd time.Weekday) Moves { return Moves{weekdayMove{wd, chrono.IntoPast}} }

// ToDayInMonth moves to the given day within the current month, clamped
// below to 1 and resolved with the strategy when past the month's end.
func ToDayInMonth(day int, resolve MoveStrategy) Moves { return Moves{dayInMonthMove{day, resolve}} }

// NthInMonth seeks the ordinal occurrence of the weekday within the
// current month: NthInMonth(Second, time.Tuesday) is the second Tuesday.
func NthInMonth(ord Ordinal, wd time.Weekday) Moves { return Moves{ordinalMove{ord, wd}} }

// OnlyWhen applies the sub-sequence only if the predicate holds for the
// date reached so far; otherwise it is a no-op.
func OnlyWhen(when Predicate, moves Moves) Moves { return Moves{conditionalMove{when, moves}} }

// =============================================================================
// PREDICATES
// =============================================================================

// OnWeekday holds when the date falls on the given weekday.
func OnWeekday(wd time.Weekday) Predicate {
	return func(d chrono.Date) bool { return d.Weekday() == wd }
}

// InMonth holds when the date falls in the given month.
func InMonth(m time.Month) Predicate {
	return func(d chrono.Date) bool { return ToGregorian(d).Month == m }
}

// =============================================================================
// VARIANTS
// =============================================================================

type dayMove struct {
	days int64
}

func (mv dayMove) apply(d chrono.Date) chrono.Date { return d.AddDays(mv.days) }

type monthMove struct {
	months  int
	resolve MoveStrategy
}

func (mv monthMove) apply(d chrono.Date) chrono.Date {
	return FromGregorian(addMonths(ToGregorian(d), mv.months, mv.resolve))
}

type yearMove struct {
	years   int
	resolve MoveStrategy
}

func (mv yearMove) apply(d chrono.Date) chrono.Date {
	return FromGregorian(addYears(ToGregorian(d), mv.years, mv.resolve))
}

type weekdayMove struct {
	weekday   time.Weekday
	direction chrono.Direction
}

func (mv weekdayMove) apply(d chrono.Date) chrono.Date {
	if mv.direction == chrono.IntoPast {
		return d.Last(mv.weekday)
	}
	return d.Next(mv.weekday)
}

type dayInMonthMove struct {
	day     int
	resolve MoveStrategy
}

func (mv dayInMonthMove) apply(d chrono.Date) chrono.Date {
	g := ToGregorian(d)
	g.Day = mv.day
	if g.Day < 1 {
		g.Day = 1
	}
	return FromGregorian(resolveOverflow(g, mv.resolve))
}

type ordinalMove struct {
	ordinal Ordinal
	weekday time.Weekday
}

func (mv ordinalMove) apply(d chrono.Date) chrono.Date {
	g := ToGregorian(d)

	if mv.ordinal > 0 {
		// Seek day 1, then the first occurrence of the weekday (which
		// may be day 1 itself), then advance the remaining weeks.
		first := On(g.Year, g.Month, 1)
		hit := first
		if hit.Weekday() != mv.weekday {
			hit = hit.Next(mv.weekday)
		}
		return hit.AddWeeks(int64(mv.ordinal - 1))
	}

	// Nth-to-last: seek day 1 of the following month, step to the last
	// occurrence strictly before it, then retreat the remaining weeks.
	firstOfNext := FromGregorian(addMonths(GregorianDate{Year: g.Year, Month: g.Month, Day: 1}, 1, nil))
	hit := firstOfNext.Last(mv.weekday)
	return hit.AddWeeks(int64(mv.ordinal + 1))
}

type conditionalMove struct {
	when  Predicate
	moves Moves
}

func (mv conditionalMove) apply(d chrono.Date) chrono.Date {
	if mv.when(d) {
		return Travel(mv.moves, d)
	}
	return d
}
