/*
Package zonefile loads TimeZone values from hand-authored YAML.

PURPOSE:
  The chrono core accepts zone rules as explicit data and assumes they
  are well formed. This package is the zone-data collaborator sitting at
  that boundary: it reads YAML documents of literal mappings, validates
  what the core only documents as a precondition (strictly increasing
  period starts in both the moment and the civil order), and hands back
  ready-to-use chrono.TimeZone values.

  This is NOT a tz database parser. The input is explicit
  {moment, civil} pairs authored by whoever supplies the rules.

FILE SHAPE:
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

SEE ALSO:
  - presets.go: hand-authored zones shipped with the engine
  - factory: the matching JSON-to-Moves conversion
*/
package zonefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNoZones is returned when a document defines no zones at all.
	ErrNoZones = errors.New("zone file defines no zones")

	// ErrUnnamedZone is returned when a zone entry has an empty name.
	ErrUnnamedZone = errors.New("zone entry has no name")

	// ErrUnorderedPeriods is returned when period starts are not strictly
	// increasing in both the moment and the civil order.
	ErrUnorderedPeriods = errors.New("period starts must be strictly increasing")

	// ErrUnknownZone is returned by Registry lookups for missing names.
	ErrUnknownZone = errors.New("unknown zone")
)

// ZoneDataError reports which zone entry failed validation.
type ZoneDataError struct {
	Zone string
	Err  error
}

func (e *ZoneDataError) Error() string {
	return fmt.Sprintf("zone %q: %v", e.Zone, e.Err)
}

func (e *ZoneDataError) Unwrap() error { return e.Err }

// =============================================================================
// FILE SHAPE
// =============================================================================

// File is the top-level YAML document.
type File struct {
	Zones []ZoneDef `yaml:"zones"`
}

// ZoneDef is one zone entry: a default mapping plus period start
// mappings.
type ZoneDef struct {
	Name    string       `yaml:"name"`
	Default MappingDef   `yaml:"default"`
	Periods []MappingDef `yaml:"periods"`
}

// MappingDef is one literal {moment, civil} assertion. Second and
// millisecond default to zero.
type MappingDef struct {
	EpochMillis int64 `yaml:"epoch_ms"`
	Year        int   `yaml:"year"`
	Month       int   `yaml:"month"`
	Day         int   `yaml:"day"`
	Hour        int   `yaml:"hour"`
	Minute      int   `yaml:"minute"`
	Second      int   `yaml:"second"`
	Millisecond int   `yaml:"millisecond"`
}

func (m MappingDef) mapping() chrono.Mapping {
	date := calendar.On(m.Year, time.Month(m.Month), m.Day)
	tod := chrono.H24(m.Hour).Minutes(m.Minute).
		AndSeconds(m.Second).
		AndMilliseconds(m.Millisecond)
	return chrono.Mapping{
		Moment: chrono.FromEpochMillis(m.EpochMillis),
		Civil:  chrono.At(date, tod),
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Parse reads a YAML document and returns the zones it defines, validated
// and keyed by name.
func Parse(r io.Reader) (Registry, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode zone file: %w", err)
	}
	if len(file.Zones) == 0 {
		return nil, ErrNoZones
	}

	reg := make(Registry, len(file.Zones))
	for _, def := range file.Zones {
		zone, err := def.build()
		if err != nil {
			return nil, err
		}
		reg[def.Name] = zone
	}
	return reg, nil
}

// Load reads and parses a zone file from disk.
func Load(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zone file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (def ZoneDef) build() (chrono.TimeZone, error) {
	if def.Name == "" {
		return chrono.TimeZone{}, ErrUnnamedZone
	}

	zone := chrono.TimeZone{Default: def.Default.mapping()}
	for _, p := range def.Periods {
		zone.Periods = append(zone.Periods, chrono.Period{Start: p.mapping()})
	}

	// The core treats unordered or overlapping periods as undefined
	// behavior; reject them here, at the data boundary.
	for i := 1; i < len(zone.Periods); i++ {
		prev, cur := zone.Periods[i-1].Start, zone.Periods[i].Start
		if !prev.Moment.Before(cur.Moment) || !prev.Civil.Before(cur.Civil) {
			return chrono.TimeZone{}, &ZoneDataError{Zone: def.Name, Err: ErrUnorderedPeriods}
		}
	}
	return zone, nil
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is a set of named zones.
type Registry map[string]chrono.TimeZone

// Lookup returns the named zone or ErrUnknownZone.
func (r Registry) Lookup(name string) (chrono.TimeZone, error) {
	zone, ok := r[name]
	if !ok {
		return chrono.TimeZone{}, &ZoneDataError{Zone: name, Err: ErrUnknownZone}
	}
	return zone, nil
}

// Names lists the registered zone names in no particular order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

// Merge copies every zone from other into r, overwriting name clashes.
func (r Registry) Merge(other Registry) {
	for name, zone := range other {
		r[name] = zone
	}
}
