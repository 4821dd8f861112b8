/*
timeofday.go - Noon-relative time of day

PURPOSE:
  Time is a millisecond offset from noon, range [-43_200_000, 43_199_999].
  Noon is 0 and midnight (start of day) is -43_200_000. Centering on noon
  instead of midnight keeps the day/time-of-day split of a Moment free of
  asymmetric modulo behavior around the day boundary.

CONSTRUCTION:
  AM/PM/H24 yield an HourOfDay, an intentionally incomplete intermediate:
  only HourOfDay.Minutes produces a Time, so a Time without minutes cannot
  be constructed. All numeric inputs are clamped, never rejected -
  AM(15) behaves as AM(12).

SEE ALSO:
  - datetime.go: pairing with a Date
  - zone.go: how the noon-relative offset drives day-boundary decisions
*/
package chrono

// Time is a time of day, stored as milliseconds since noon.
type Time struct {
	sinceNoon int64
}

// Meridiem is the 12-hour clock half-day marker.
type Meridiem string

const (
	AnteMeridiem Meridiem = "AM"
	PostMeridiem Meridiem = "PM"
)

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// HourOfDay is a deliberately incomplete value: an hour with no minutes
// yet. Call Minutes to finish constructing a Time.
type HourOfDay struct {
	hour24 int
}

// AM interprets h on the 12-hour morning clock. h is clamped to [1, 12];
// 12 AM is hour zero.
func AM(h int) HourOfDay {
	h = clamp(h, 1, 12)
	if h == 12 {
		h = 0
	}
	return HourOfDay{h}
}

// PM interprets h on the 12-hour afternoon clock. h is clamped to [1, 12];
// 12 PM stays hour twelve.
func PM(h int) HourOfDay {
	h = clamp(h, 1, 12)
	if h != 12 {
		h += 12
	}
	return HourOfDay{h}
}

// H24 interprets h on the 24-hour clock, clamped to [0, 23].
func H24(h int) HourOfDay {
	return HourOfDay{clamp(h, 0, 23)}
}

// Minutes completes the time of day. m is clamped to [0, 59]; seconds and
// milliseconds start at zero.
func (h HourOfDay) Minutes(m int) Time {
	m = clamp(m, 0, 59)
	return Time{int64(h.hour24)*msPerHour + int64(m)*msPerMinute - msPerHalfDay}
}

// Noon is 12:00:00.000.
func Noon() Time { return Time{0} }

// Midnight is 00:00:00.000, the start of the day.
func Midnight() Time { return Time{-msPerHalfDay} }

// AndSeconds replaces the seconds component, clamped to [0, 59]. The
// millisecond component is kept.
func (t Time) AndSeconds(s int) Time {
	s = clamp(s, 0, 59)
	shifted := t.sinceNoon + msPerHalfDay
	shifted = shifted - shifted%msPerMinute + int64(s)*msPerSecond + shifted%msPerSecond
	return Time{shifted - msPerHalfDay}
}

// AndMilliseconds replaces any previously set sub-second value, clamped
// to [0, 999]. It replaces, never adds.
func (t Time) AndMilliseconds(ms int) Time {
	ms = clamp(ms, 0, 999)
	shifted := t.sinceNoon + msPerHalfDay
	shifted = shifted - shifted%msPerSecond + int64(ms)
	return Time{shifted - msPerHalfDay}
}

// =============================================================================
// VIEWS
// =============================================================================

// TimeView is the decomposed 24-hour reading of a Time.
type TimeView struct {
	Hour24      int
	Minute      int
	Second      int
	Millisecond int
}

// View decomposes the time by successive remaindering, after shifting by
// +12h so every intermediate value is non-negative.
func (t Time) View() TimeView {
	shifted := t.sinceNoon + msPerHalfDay
	hour := shifted / msPerHour
	shifted -= hour * msPerHour
	minute := shifted / msPerMinute
	shifted -= minute * msPerMinute
	second := shifted / msPerSecond
	shifted -= second * msPerSecond
	return TimeView{
		Hour24:      int(hour),
		Minute:      int(minute),
		Second:      int(second),
		Millisecond: int(shifted),
	}
}

// Clock12 maps a 24-hour hour onto the 12-hour clock. Hours 0 and 12 both
// display as 12.
func Clock12(hour24 int) (int, Meridiem) {
	hour24 = clamp(hour24, 0, 23)
	meridiem := AnteMeridiem
	if hour24 >= 12 {
		meridiem = PostMeridiem
	}
	h := hour24 % 12
	if h == 0 {
		h = 12
	}
	return h, meridiem
}

// =============================================================================
// ORDERING
// =============================================================================

// Chronological comparison is a direct integer compare of the noon offset.
func (t Time) Before(other Time) bool { return t.sinceNoon < other.sinceNoon }
func (t Time) After(other Time) bool  { return t.sinceNoon > other.sinceNoon }
func (t Time) Equal(other Time) bool  { return t.sinceNoon == other.sinceNoon }

// Compare returns -1, 0 or +1 ordering t against other.
func (t Time) Compare(other Time) int {
	switch {
	case t.sinceNoon < other.sinceNoon:
		return -1
	case t.sinceNoon > other.sinceNoon:
		return 1
	default:
		return 0
	}
}

// SinceNoonMillis exposes the raw noon-relative offset. This is the
// conversion point matching FromJDN/EpochMillis on the other wrappers.
func (t Time) SinceNoonMillis() int64 { return t.sinceNoon }

// FromSinceNoonMillis wraps a raw noon-relative offset. The caller is
// responsible for keeping it inside [-43_200_000, 43_199_999].
func FromSinceNoonMillis(ms int64) Time { return Time{ms} }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
