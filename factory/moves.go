/*
Package factory provides JSON to Go move-sequence conversion.

PURPOSE:
  Converts JSON move definitions into calendar.Moves values. This lets
  clients of the HTTP API (and anything else that speaks JSON) describe
  calendar travel without code changes: a recurrence rule is just a list
  of move objects replayed in order.

JSON SCHEMA:
  [
    {"type": "days", "count": 3},
    {"type": "months", "count": 3, "strategy": "stay_in_month"},
    {"type": "next_weekday", "weekday": "friday"},
    {"type": "nth_weekday", "ordinal": 2, "weekday": "tuesday"},
    {"type": "day_in_month", "day": 31}
  ]

  Ordinals are 1-based; negative ordinals count from the end of the
  month (-1 is the last occurrence). Counts may be negative to move into
  the past. Strategy defaults to "stay_in_month".

NOT REPRESENTABLE:
  Predicate-gated sub-sequences (calendar.OnlyWhen) carry function
  values and have no JSON form. They are a code-level facility.

SEE ALSO:
  - calendar/moves.go: the move variants themselves
  - api: the travel endpoint driving this factory
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/warp/chrono/calendar"
)

// MoveJSON is the JSON representation of one primitive move.
type MoveJSON struct {
	Type     string `json:"type"`
	Count    int    `json:"count,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Weekday  string `json:"weekday,omitempty"`
	Day      int    `json:"day,omitempty"`
	Ordinal  int    `json:"ordinal,omitempty"`
}

// ParseMoves converts a JSON array of move objects into a Moves sequence.
func ParseMoves(data []byte) (calendar.Moves, error) {
	var defs []MoveJSON
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse moves: %w", err)
	}
	return FromDefinitions(defs)
}

// FromDefinitions converts already-decoded move definitions, preserving
// their order.
func FromDefinitions(defs []MoveJSON) (calendar.Moves, error) {
	var moves calendar.Moves
	for i, def := range defs {
		mv, err := def.toMoves()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = moves.AndThen(mv)
	}
	return moves, nil
}

func (def MoveJSON) toMoves() (calendar.Moves, error) {
	switch def.Type {
	case "days":
		return calendar.Days(int64(def.Count)), nil

	case "weeks":
		return calendar.Weeks(int64(def.Count)), nil

	case "months":
		resolve, err := parseStrategy(def.Strategy)
		if err != nil {
			return nil, err
		}
		return calendar.Months(def.Count, resolve), nil

	case "years":
		resolve, err := parseStrategy(def.Strategy)
		if err != nil {
			return nil, err
		}
		return calendar.Years(def.Count, resolve), nil

	case "next_weekday":
		wd, err := parseWeekday(def.Weekday)
		if err != nil {
			return nil, err
		}
		return calendar.Next(wd), nil

	case "last_weekday":
		wd, err := parseWeekday(def.Weekday)
		if err != nil {
			return nil, err
		}
		return calendar.Last(wd), nil

	case "day_in_month":
		resolve, err := parseStrategy(def.Strategy)
		if err != nil {
			return nil, err
		}
		return calendar.ToDayInMonth(def.Day, resolve), nil

	case "nth_weekday":
		wd, err := parseWeekday(def.Weekday)
		if err != nil {
			return nil, err
		}
		if def.Ordinal == 0 {
			return nil, fmt.Errorf("nth_weekday needs a non-zero ordinal")
		}
		ord := calendar.Ordinal(def.Ordinal)
		if def.Ordinal < 0 {
			ord = calendar.NthToLast(-def.Ordinal)
		}
		return calendar.NthInMonth(ord, wd), nil

	default:
		return nil, fmt.Errorf("unknown move type %q", def.Type)
	}
}

func parseStrategy(name string) (calendar.MoveStrategy, error) {
	switch name {
	case "", "stay_in_month":
		return calendar.StayInSameMonth, nil
	case "spill_to_next_month":
		return calendar.SpillToNextMonth, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}
