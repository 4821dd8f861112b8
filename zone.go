/*
zone.go - The Moment <-> DateAndTime conversion engine

PURPOSE:
  A TimeZone is a piecewise bijection between physical moments and civil
  readings. It carries a default mapping plus an ordered list of periods,
  each overriding the mapping from its start onward. DST transitions are
  modeled as period boundaries rather than as a continuous offset
  function: within one period the conversion is plain linear arithmetic,
  and all the subtlety lives in picking the right period.

CRITICAL INVARIANTS:
  1. Exactly one period (or the default) is active for any moment; the
     period whose start moment is the latest one <= the moment wins.
  2. The symmetric rule holds for civil readings under the lexicographic
     (date, then time) order.
  3. Within a period, Moment <-> DateAndTime is a bijection, so
     ToMoment(z, ToDateAndTime(z, m)) == m for every moment m.
  4. At the exact instant a period starts, that period is already the
     active one (<= comparison, not <).

PRECONDITIONS (documented, not checked):
  Periods must be strictly increasing in both their start moments and
  their start civil readings. Malformed zone data is a construction
  contract violation; behavior is undefined. The zonefile package
  validates this ordering at the data boundary so the core can stay
  total.

SEE ALSO:
  - moment.go, datetime.go: the two value domains being mapped
  - zonefile: loading and validating zone data
*/
package chrono

// =============================================================================
// ZONE DATA
// =============================================================================

// Mapping asserts that a moment and a civil reading denote the same
// instant.
type Mapping struct {
	Moment Moment
	Civil  DateAndTime
}

// Period marks the beginning of an interval of constant offset. Its end
// is implicitly the start of the chronologically next period, or
// unbounded if it is the last one.
type Period struct {
	Start Mapping
}

// TimeZone is a default mapping plus the periods that override it. A zone
// with zero periods is a fixed constant-offset zone entirely defined by
// its default mapping.
type TimeZone struct {
	Default Mapping
	Periods []Period
}

// UTC is the zero-offset zone: moment 0 maps to midnight on JDN 2440588.
func UTC() TimeZone {
	return TimeZone{
		Default: Mapping{
			Moment: FromEpochMillis(0),
			Civil:  At(FromJDN(EpochJDN), Midnight()),
		},
	}
}

// FixedOffset builds a constant-offset zone, with the offset applied in
// the given direction relative to the zero-offset frame. An offset of one
// hour IntoFuture reads one hour later than UTC.
func FixedOffset(offset TimeLapse, direction Direction) TimeZone {
	shifted := FromEpochMillis(0)
	if direction == IntoFuture {
		shifted = shifted.IntoFuture(offset)
	} else {
		shifted = shifted.IntoPast(offset)
	}
	return TimeZone{
		Default: Mapping{
			Moment: FromEpochMillis(0),
			Civil:  UTC().ToDateAndTime(shifted),
		},
	}
}

// =============================================================================
// PERIOD SELECTION
// =============================================================================

// mappingForMoment picks the period with the latest start moment that is
// still <= m, falling back to the default mapping.
func (z TimeZone) mappingForMoment(m Moment) Mapping {
	relevant := z.Default
	found := false
	for _, p := range z.Periods {
		if p.Start.Moment.After(m) {
			continue
		}
		if !found || p.Start.Moment.After(relevant.Moment) {
			relevant = p.Start
			found = true
		}
	}
	return relevant
}

// mappingForCivil picks the period with the latest start civil reading
// that is still <= dt under the lexicographic order, falling back to the
// default mapping.
func (z TimeZone) mappingForCivil(dt DateAndTime) Mapping {
	relevant := z.Default
	found := false
	for _, p := range z.Periods {
		if p.Start.Civil.After(dt) {
			continue
		}
		if !found || p.Start.Civil.After(relevant.Civil) {
			relevant = p.Start
			found = true
		}
	}
	return relevant
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// ToDateAndTime converts a physical moment to the civil reading the zone
// assigns it.
//
// The elapsed lapse from the relevant mapping is split into whole days
// and a sub-day remainder, measured against the mapping's own civil time
// of day rather than a fixed midnight. The remainder may still step over
// one more day boundary than the whole-day count accounts for; when it
// does, an extra day is added and the remainder wraps modulo 24h.
func (z TimeZone) ToDateAndTime(m Moment) DateAndTime {
	ref := z.mappingForMoment(m)
	elapsed := Elapsed(ref.Moment, m)

	days := elapsed.Magnitude.ms / msPerDay
	rem := elapsed.Magnitude.ms % msPerDay
	start := ref.Civil.Time.sinceNoon

	if elapsed.Direction == IntoFuture {
		// A remainder reaching 12h - start lands on or past the next
		// midnight; midnight belongs to the following day.
		if rem >= msPerHalfDay-start {
			return At(ref.Civil.Date.AddDays(days+1), Time{start + rem - msPerDay})
		}
		return At(ref.Civil.Date.AddDays(days), Time{start + rem})
	}

	if rem > msPerHalfDay+start {
		return At(ref.Civil.Date.AddDays(-(days + 1)), Time{start - rem + msPerDay})
	}
	return At(ref.Civil.Date.AddDays(-days), Time{start - rem})
}

// ToMoment converts a civil reading to the physical moment the zone
// assigns it. Within one period civil readings and moments are bijective,
// so the displacement from the relevant mapping is plain subtraction in
// the civil domain, applied to the mapping's moment. No day-boundary
// correction is needed: both ends are civil values inside the same
// period.
func (z TimeZone) ToMoment(dt DateAndTime) Moment {
	ref := z.mappingForCivil(dt)
	days := dt.Date.jdn - ref.Civil.Date.jdn
	ms := dt.Time.sinceNoon - ref.Civil.Time.sinceNoon
	return Moment{ref.Moment.ms + days*msPerDay + ms}
}

// ToNoon is the moment of civil noon on the given date in this zone.
func (z TimeZone) ToNoon(d Date) Moment {
	return z.ToMoment(AtNoon(d))
}
