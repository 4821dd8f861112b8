/*
presets.go - Hand-authored zones shipped with the engine

PURPOSE:
  A small set of ready-made zones for demos, tests, and the CLI, built
  the same way a zone file would build them: literal {moment, civil}
  mappings. Brussels2019 covers one full DST cycle, which is enough to
  exercise every interesting path through the conversion engine.
*/
package zonefile

import (
	"time"

	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
)

// Brussels2019 is Europe/Brussels over 2019: CET (+1h) by default, with
// the two DST transitions of that year as explicit periods.
//
//	2019-03-31 02:00 CET  -> 03:00 CEST  (moment 2019-03-31T01:00Z)
//	2019-10-27 03:00 CEST -> 02:00 CET   (moment 2019-10-27T01:00Z)
func Brussels2019() chrono.TimeZone {
	return chrono.TimeZone{
		Default: chrono.Mapping{
			Moment: chrono.FromEpochMillis(0),
			Civil: chrono.At(
				calendar.On(1970, time.January, 1),
				chrono.AM(1).Minutes(0),
			),
		},
		Periods: []chrono.Period{
			{Start: chrono.Mapping{
				Moment: chrono.FromEpochMillis(1553994000000),
				Civil: chrono.At(
					calendar.On(2019, time.March, 31),
					chrono.AM(3).Minutes(0),
				),
			}},
			{Start: chrono.Mapping{
				Moment: chrono.FromEpochMillis(1572138000000),
				Civil: chrono.At(
					calendar.On(2019, time.October, 27),
					chrono.AM(2).Minutes(0),
				),
			}},
		},
	}
}

// Presets returns the zones every registry starts from.
func Presets() Registry {
	return Registry{
		"UTC":             chrono.UTC(),
		"Europe/Brussels": Brussels2019(),
		"Etc/GMT-1":       chrono.FixedOffset(chrono.Hours(1), chrono.IntoFuture),
		"Etc/GMT+5":       chrono.FixedOffset(chrono.Hours(5), chrono.IntoPast),
		"Asia/Kolkata":    chrono.FixedOffset(chrono.Hours(5).And(chrono.Minutes(30)), chrono.IntoFuture),
	}
}
