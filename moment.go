/*
Package chrono is the core date/time algebra engine.

PURPOSE:
  This package distinguishes three concepts that most time libraries blur
  together:
  - Moment: an absolute point on the physical timeline (epoch milliseconds)
  - Date / Time / DateAndTime: an abstract civil reading, meaningless
    without a zone to interpret it
  - TimeZone: a piecewise bijection between the two

KEY CONCEPTS IN THIS FILE (moment.go):
  - Moment: opaque signed millisecond count since 1970-01-01T00:00:00 in
    the zero-offset frame
  - TimeLapse: elapsed physical time in milliseconds (never calendar days;
    24h is not one calendar day under DST)
  - Direction / ElapsedResult: magnitude-plus-direction results

DESIGN PRINCIPLES:
  1. Immutability: every type is a value; operations return new values
  2. Totality: no error channels; constructors clamp, arithmetic is total
  3. Opacity: raw integers never leak except through the From, To and
     View conversion points

SEE ALSO:
  - date.go: day-count Date and weekday arithmetic
  - timeofday.go: noon-relative Time
  - zone.go: the Moment <-> DateAndTime conversion engine
*/
package chrono

// =============================================================================
// UNITS
// =============================================================================

const (
	msPerSecond  int64 = 1000
	msPerMinute        = 60 * msPerSecond
	msPerHour          = 60 * msPerMinute
	msPerHalfDay       = 12 * msPerHour
	msPerDay           = 24 * msPerHour
)

// =============================================================================
// DIRECTION
// =============================================================================

// Direction tags which way along the timeline an elapsed magnitude points.
type Direction int

const (
	IntoFuture Direction = iota
	IntoPast
)

func (d Direction) String() string {
	if d == IntoPast {
		return "into the past"
	}
	return "into the future"
}

// =============================================================================
// TIME LAPSE
// =============================================================================

// TimeLapse is elapsed physical time in milliseconds. It has no notion of
// calendar days: a TimeLapse of 24 hours is not one calendar day when a
// DST transition sits in between. Compose with And; callers are expected
// to build lapses from non-negative components and carry direction
// separately via Direction (see ElapsedResult).
type TimeLapse struct {
	ms int64
}

func Hours(n int64) TimeLapse        { return TimeLapse{n * msPerHour} }
func Minutes(n int64) TimeLapse      { return TimeLapse{n * msPerMinute} }
func Seconds(n int64) TimeLapse      { return TimeLapse{n * msPerSecond} }
func Milliseconds(n int64) TimeLapse { return TimeLapse{n} }

// And adds two lapses. Hours(2).And(Minutes(30)) is two and a half hours.
func (l TimeLapse) And(other TimeLapse) TimeLapse { return TimeLapse{l.ms + other.ms} }

func (l TimeLapse) IsZero() bool                  { return l.ms == 0 }
func (l TimeLapse) Equal(other TimeLapse) bool    { return l.ms == other.ms }
func (l TimeLapse) LessThan(other TimeLapse) bool { return l.ms < other.ms }

// TimeLapseView is the decomposed form of a TimeLapse.
type TimeLapseView struct {
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// View decomposes the lapse by successive remaindering. For lapses built
// from non-negative components every field is non-negative.
func (l TimeLapse) View() TimeLapseView {
	ms := l.ms
	hours := ms / msPerHour
	ms -= hours * msPerHour
	minutes := ms / msPerMinute
	ms -= minutes * msPerMinute
	seconds := ms / msPerSecond
	ms -= seconds * msPerSecond
	return TimeLapseView{Hours: hours, Minutes: minutes, Seconds: seconds, Milliseconds: ms}
}

// ElapsedResult pairs an absolute magnitude with the direction it points.
type ElapsedResult struct {
	Magnitude TimeLapse
	Direction Direction
}

// =============================================================================
// MOMENT
// =============================================================================

// Moment is an absolute point on the physical timeline, counted in signed
// milliseconds from 1970-01-01T00:00:00 in the zero-offset frame.
// Moments are totally ordered and carry no civil meaning of their own.
type Moment struct {
	ms int64
}

func FromEpochMillis(ms int64) Moment { return Moment{ms} }

func (m Moment) EpochMillis() int64 { return m.ms }

// IntoFuture moves the moment forward by the lapse. A negative lapse
// silently reverses direction; the library's own contract is that lapse
// magnitudes are non-negative.
func (m Moment) IntoFuture(l TimeLapse) Moment { return Moment{m.ms + l.ms} }

// IntoPast moves the moment backward by the lapse. Same sign caveat as
// IntoFuture.
func (m Moment) IntoPast(l TimeLapse) Moment { return Moment{m.ms - l.ms} }

// Elapsed returns the absolute magnitude between two moments and the
// direction leading from the first to the second. Equal moments report a
// zero magnitude pointing into the future.
func Elapsed(from, to Moment) ElapsedResult {
	if to.ms >= from.ms {
		return ElapsedResult{Magnitude: TimeLapse{to.ms - from.ms}, Direction: IntoFuture}
	}
	return ElapsedResult{Magnitude: TimeLapse{from.ms - to.ms}, Direction: IntoPast}
}

// Earliest returns whichever moment comes first.
func Earliest(a, b Moment) Moment {
	if a.ms <= b.ms {
		return a
	}
	return b
}

// Comparison
func (m Moment) Before(other Moment) bool { return m.ms < other.ms }
func (m Moment) After(other Moment) bool  { return m.ms > other.ms }
func (m Moment) Equal(other Moment) bool  { return m.ms == other.ms }

// Compare returns -1, 0 or +1 ordering m against other.
func (m Moment) Compare(other Moment) int {
	switch {
	case m.ms < other.ms:
		return -1
	case m.ms > other.ms:
		return 1
	default:
		return 0
	}
}
