package zonefile_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
	"github.com/warp/chrono/zonefile"
)

const brusselsYAML = `
zones:
  - name: Europe/Brussels
    default:
      epoch_ms: 0
      year: 1970
      month: 1
      day: 1
      hour: 1
      minute: 0
    periods:
      - epoch_ms: 1553994000000
        year: 2019
        month: 3
        day: 31
        hour: 3
        minute: 0
      - epoch_ms: 1572138000000
        year: 2019
        month: 10
        day: 27
        hour: 2
        minute: 0
`

// =============================================================================
// PARSING
// =============================================================================

func TestParse_ValidDocument(t *testing.T) {
	reg, err := zonefile.Parse(strings.NewReader(brusselsYAML))
	require.NoError(t, err)
	require.Len(t, reg, 1)

	zone, err := reg.Lookup("Europe/Brussels")
	require.NoError(t, err)
	require.Len(t, zone.Periods, 2)

	// The default mapping pins the epoch instant to 01:00 local.
	civil := zone.ToDateAndTime(chrono.FromEpochMillis(0))
	assert.True(t, civil.Date.Equal(calendar.On(1970, time.January, 1)))
	assert.Equal(t, 1, civil.Time.View().Hour24)
	assert.Equal(t, 0, civil.Time.View().Minute)
}

func TestParse_DefaultsSubSecondFieldsToZero(t *testing.T) {
	reg, err := zonefile.Parse(strings.NewReader(brusselsYAML))
	require.NoError(t, err)

	zone, err := reg.Lookup("Europe/Brussels")
	require.NoError(t, err)

	view := zone.Default.Civil.Time.View()
	assert.Equal(t, 0, view.Second)
	assert.Equal(t, 0, view.Millisecond)
}

func TestParse_EmptyZoneList(t *testing.T) {
	_, err := zonefile.Parse(strings.NewReader("zones: []\n"))
	assert.ErrorIs(t, err, zonefile.ErrNoZones)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	doc := `
zones:
  - name: X
    offset_hours: 2
    default:
      epoch_ms: 0
      year: 1970
      month: 1
      day: 1
      hour: 0
      minute: 0
`
	_, err := zonefile.Parse(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestParse_UnnamedZone(t *testing.T) {
	doc := `
zones:
  - default:
      epoch_ms: 0
      year: 1970
      month: 1
      day: 1
      hour: 0
      minute: 0
`
	_, err := zonefile.Parse(strings.NewReader(doc))
	assert.ErrorIs(t, err, zonefile.ErrUnnamedZone)
}

func TestParse_UnorderedPeriods(t *testing.T) {
	// Moments increase but the civil starts do not, which would make
	// period selection ambiguous during civil-to-moment conversion.
	doc := `
zones:
  - name: Broken
    default:
      epoch_ms: 0
      year: 1970
      month: 1
      day: 1
      hour: 0
      minute: 0
    periods:
      - epoch_ms: 1000
        year: 1980
        month: 1
        day: 1
        hour: 0
        minute: 0
      - epoch_ms: 2000
        year: 1975
        month: 1
        day: 1
        hour: 0
        minute: 0
`
	_, err := zonefile.Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, zonefile.ErrUnorderedPeriods)

	var zerr *zonefile.ZoneDataError
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, "Broken", zerr.Zone)
}

// =============================================================================
// REGISTRY
// =============================================================================

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := zonefile.Registry{}
	_, err := reg.Lookup("Mars/Olympus")
	require.ErrorIs(t, err, zonefile.ErrUnknownZone)

	var zerr *zonefile.ZoneDataError
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, "Mars/Olympus", zerr.Zone)
}

func TestRegistry_MergeOverwrites(t *testing.T) {
	base := zonefile.Registry{
		"UTC":  chrono.UTC(),
		"Keep": chrono.UTC(),
	}
	plusOne := chrono.FixedOffset(chrono.Hours(1), chrono.IntoFuture)
	base.Merge(zonefile.Registry{"UTC": plusOne, "New": chrono.UTC()})

	require.Len(t, base, 3)
	assert.Contains(t, base.Names(), "Keep")
	assert.Contains(t, base.Names(), "New")

	// The clash took the incoming definition.
	zone := base["UTC"]
	civil := zone.ToDateAndTime(chrono.FromEpochMillis(0))
	assert.Equal(t, 1, civil.Time.View().Hour24)
}
