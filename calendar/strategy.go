package calendar

// =============================================================================
// MOVE STRATEGY - Impossible-date resolution
// =============================================================================

// MoveStrategy resolves a civil date whose day exceeds the target month's
// length, as produced by month or year arithmetic (March 31 plus one
// month). The engine is strategy-parametric: it invokes whatever strategy
// the caller supplied, only when the day actually overflows.
type MoveStrategy func(GregorianDate) GregorianDate

// StayInSameMonth clamps the day to the last day of the target month.
// January 30 plus one month becomes February 28, or February 29 in a leap
// year.
func StayInSameMonth(g GregorianDate) GregorianDate {
	if max := DaysInMonth(g.Month, g.Year); g.Day > max {
		g.Day = max
	}
	return g
}

// SpillToNextMonth rolls the excess days into the following month.
// January 30 plus one month becomes March 2 in a common year.
func SpillToNextMonth(g GregorianDate) GregorianDate {
	// FromGregorian already counts excess days into the next month.
	return ToGregorian(FromGregorian(g))
}
