/*
handlers.go - HTTP handlers for the conversion engine

PURPOSE:
  Exposes the chrono engine over REST. Handles HTTP request/response and
  JSON serialization, and delegates every conversion to the core.

ENDPOINTS:
  GET  /api/zones            List registered zones
  GET  /api/now?zone=NAME    Current moment read through a zone
  POST /api/convert/civil    Moment -> civil reading
  POST /api/convert/moment   Civil reading -> moment
  POST /api/travel           Replay a move sequence against a date

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, unknown move type or strategy
  - 404: Unknown zone
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/warp/chrono"
	"github.com/warp/chrono/calendar"
	"github.com/warp/chrono/clock"
	"github.com/warp/chrono/factory"
	"github.com/warp/chrono/zonefile"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Zones zonefile.Registry
	Clock clock.Clock
}

// NewHandler creates a handler over the given zone registry and clock.
func NewHandler(zones zonefile.Registry, clk clock.Clock) *Handler {
	return &Handler{Zones: zones, Clock: clk}
}

// =============================================================================
// ZONE HANDLERS
// =============================================================================

// ListZones handles GET /api/zones.
func (h *Handler) ListZones(w http.ResponseWriter, r *http.Request) {
	names := h.Zones.Names()
	sort.Strings(names)

	zones := make([]ZoneDTO, 0, len(names))
	for _, name := range names {
		zone := h.Zones[name]
		zones = append(zones, ZoneDTO{Name: name, Periods: len(zone.Periods)})
	}
	writeJSON(w, http.StatusOK, zones)
}

// Now handles GET /api/now?zone=NAME.
func (h *Handler) Now(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("zone")
	if name == "" {
		name = "UTC"
	}
	zone, err := h.Zones.Lookup(name)
	if err != nil {
		writeError(w, err)
		return
	}

	now := h.Clock.Now()
	writeJSON(w, http.StatusOK, NowResponse{
		Zone:        name,
		EpochMillis: now.EpochMillis(),
		Civil:       civilDTO(zone.ToDateAndTime(now)),
	})
}

// =============================================================================
// CONVERSION HANDLERS
// =============================================================================

// ToCivil handles POST /api/convert/civil.
func (h *Handler) ToCivil(w http.ResponseWriter, r *http.Request) {
	var req ToCivilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	zone, err := h.Zones.Lookup(req.Zone)
	if err != nil {
		writeError(w, err)
		return
	}

	civil := zone.ToDateAndTime(chrono.FromEpochMillis(req.EpochMillis))
	writeJSON(w, http.StatusOK, ToCivilResponse{
		Zone:        req.Zone,
		EpochMillis: req.EpochMillis,
		Civil:       civilDTO(civil),
	})
}

// ToMoment handles POST /api/convert/moment.
func (h *Handler) ToMoment(w http.ResponseWriter, r *http.Request) {
	var req ToMomentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	zone, err := h.Zones.Lookup(req.Zone)
	if err != nil {
		writeError(w, err)
		return
	}

	civil := chrono.At(
		calendar.On(req.Year, time.Month(req.Month), req.Day),
		chrono.H24(req.Hour).Minutes(req.Minute).
			AndSeconds(req.Second).
			AndMilliseconds(req.Millisecond),
	)
	moment := zone.ToMoment(civil)
	writeJSON(w, http.StatusOK, ToMomentResponse{
		Zone:        req.Zone,
		EpochMillis: moment.EpochMillis(),
	})
}

// Travel handles POST /api/travel.
func (h *Handler) Travel(w http.ResponseWriter, r *http.Request) {
	var req TravelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	moves, err := factory.FromDefinitions(req.Moves)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	start := calendar.On(req.Year, time.Month(req.Month), req.Day)
	result := calendar.Travel(moves, start)
	writeJSON(w, http.StatusOK, TravelResponse{
		Start:  civilDateDTO(start),
		Result: civilDateDTO(result),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, zonefile.ErrUnknownZone) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
