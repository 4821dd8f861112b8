/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal value types (which keep their integers opaque) from the
  external API contract. The civil side of every response is the
  decomposed view the core provides for display collaborators; the API
  does no formatting beyond that.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - factory: MoveJSON, the wire form of a move sequence
*/
package api

import (
	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
	"github.com/warp/chrono/factory"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CivilDateDTO is a decoded calendar date.
type CivilDateDTO struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
	JDN     int64  `json:"jdn"`
}

// CivilTimeDTO is a decoded time of day.
type CivilTimeDTO struct {
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Millisecond int    `json:"millisecond"`
	Hour12      int    `json:"hour12"`
	Meridiem    string `json:"meridiem"`
}

// CivilDTO is a full civil reading.
type CivilDTO struct {
	Date CivilDateDTO `json:"date"`
	Time CivilTimeDTO `json:"time"`
}

// ZoneDTO summarizes a registered zone.
type ZoneDTO struct {
	Name    string `json:"name"`
	Periods int    `json:"periods"`
}

// ToCivilRequest asks for the civil reading of a moment in a zone.
type ToCivilRequest struct {
	Zone        string `json:"zone"`
	EpochMillis int64  `json:"epoch_ms"`
}

// ToCivilResponse carries the conversion result.
type ToCivilResponse struct {
	Zone        string   `json:"zone"`
	EpochMillis int64    `json:"epoch_ms"`
	Civil       CivilDTO `json:"civil"`
}

// ToMomentRequest asks for the moment of a civil reading in a zone.
type ToMomentRequest struct {
	Zone        string `json:"zone"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Millisecond int    `json:"millisecond"`
}

// ToMomentResponse carries the conversion result.
type ToMomentResponse struct {
	Zone        string `json:"zone"`
	EpochMillis int64  `json:"epoch_ms"`
}

// TravelRequest replays a move sequence against a start date.
type TravelRequest struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Day   int                `json:"day"`
	Moves []factory.MoveJSON `json:"moves"`
}

// TravelResponse carries the start and end of the journey.
type TravelResponse struct {
	Start  CivilDateDTO `json:"start"`
	Result CivilDateDTO `json:"result"`
}

// NowResponse is the current moment read through a zone.
type NowResponse struct {
	Zone        string   `json:"zone"`
	EpochMillis int64    `json:"epoch_ms"`
	Civil       CivilDTO `json:"civil"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func civilDateDTO(d chrono.Date) CivilDateDTO {
	g := calendar.ToGregorian(d)
	return CivilDateDTO{
		Year:    g.Year,
		Month:   int(g.Month),
		Day:     g.Day,
		Weekday: d.Weekday().String(),
		JDN:     d.JDN(),
	}
}

func civilTimeDTO(t chrono.Time) CivilTimeDTO {
	view := t.View()
	hour12, meridiem := chrono.Clock12(view.Hour24)
	return CivilTimeDTO{
		Hour:        view.Hour24,
		Minute:      view.Minute,
		Second:      view.Second,
		Millisecond: view.Millisecond,
		Hour12:      hour12,
		Meridiem:    string(meridiem),
	}
}

func civilDTO(dt chrono.DateAndTime) CivilDTO {
	return CivilDTO{
		Date: civilDateDTO(dt.Date),
		Time: civilTimeDTO(dt.Time),
	}
}
