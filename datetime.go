package chrono

// =============================================================================
// DATE AND TIME - Abstract civil reading
// =============================================================================

// DateAndTime pairs a Date with a Time. It has no zone attached: it is an
// abstract civil reading, meaningless against physical time until a
// TimeZone interprets it.
type DateAndTime struct {
	Date Date
	Time Time
}

// At combines a date and a time of day into one civil reading.
func At(d Date, t Time) DateAndTime { return DateAndTime{Date: d, Time: t} }

// AtNoon is the civil reading of noon on the given date.
func AtNoon(d Date) DateAndTime { return DateAndTime{Date: d, Time: Noon()} }

// Compare orders civil readings lexicographically: date first, then time.
func (dt DateAndTime) Compare(other DateAndTime) int {
	if c := dt.Date.Compare(other.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(other.Time)
}

func (dt DateAndTime) Before(other DateAndTime) bool { return dt.Compare(other) < 0 }
func (dt DateAndTime) After(other DateAndTime) bool  { return dt.Compare(other) > 0 }
func (dt DateAndTime) Equal(other DateAndTime) bool  { return dt.Compare(other) == 0 }
