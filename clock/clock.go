/*
Package clock supplies "now" as an explicit capability.

PURPOSE:
  The chrono core never reads the host clock. Anything that needs the
  current moment, or the host's unnamed local UTC offset, takes a Clock
  and asks. System wraps the real host clock; Fixed pins time for tests.
  There is deliberately no ambient global.
*/
package clock

import (
	"time"

	"github.com/warp/chrono"
)

// Clock supplies the current moment and the host's local UTC offset. The
// offset carries no named zone rules; it is just the displacement in
// force right now.
type Clock interface {
	Now() chrono.Moment
	LocalOffset() (chrono.TimeLapse, chrono.Direction)
}

// System reads the host clock.
type System struct{}

func (System) Now() chrono.Moment {
	return chrono.FromEpochMillis(time.Now().UnixMilli())
}

func (System) LocalOffset() (chrono.TimeLapse, chrono.Direction) {
	_, seconds := time.Now().Zone()
	if seconds < 0 {
		return chrono.Seconds(int64(-seconds)), chrono.IntoPast
	}
	return chrono.Seconds(int64(seconds)), chrono.IntoFuture
}

// Fixed is a deterministic clock for tests and replay.
type Fixed struct {
	Moment    chrono.Moment
	Offset    chrono.TimeLapse
	Direction chrono.Direction
}

func (f Fixed) Now() chrono.Moment { return f.Moment }

func (f Fixed) LocalOffset() (chrono.TimeLapse, chrono.Direction) {
	return f.Offset, f.Direction
}

// LocalZone builds the fixed constant-offset zone the clock reports. It
// carries no transition rules; it is a snapshot of the offset in force
// when asked.
func LocalZone(c Clock) chrono.TimeZone {
	offset, direction := c.LocalOffset()
	return chrono.FixedOffset(offset, direction)
}
