// Package api provides HTTP API handlers for the Kido navigation system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ayusman/kido/internal/store"
)

// EventsHandler handles HTTP requests for the gesture event log.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates a new EventsHandler with the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/events or /api/events/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/events")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/events
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodDelete:
			h.prune(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/events/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type eventResponse struct {
	ID         string   `json:"id"`
	Gesture    string   `json:"gesture"`
	DX         *float64 `json:"dx,omitempty"`
	DY         *float64 `json:"dy,omitempty"`
	RecordedAt string   `json:"recorded_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type pruneEventsResponse struct {
	Deleted int64 `json:"deleted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Event to an eventResponse.
func toResponse(e *store.Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Gesture:    e.Gesture,
		DX:         e.DX,
		DY:         e.DY,
		RecordedAt: e.RecordedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/events and returns the most recent events, newest first.
// An optional ?limit= query parameter bounds the result.
func (h *EventsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	events, err := h.store.Events().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
	}

	for _, e := range events {
		response.Events = append(response.Events, toResponse(e))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/events/{id} and returns a single event.
func (h *EventsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	event, err := h.store.Events().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(event))
}

// prune handles DELETE /api/events?before={RFC3339} and removes events
// recorded before the cutoff.
func (h *EventsHandler) prune(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("before")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Missing 'before' parameter")
		return
	}

	cutoff, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid 'before' timestamp")
		return
	}

	deleted, err := h.store.Events().DeleteBefore(cutoff)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to prune events")
		return
	}

	writeJSON(w, http.StatusOK, pruneEventsResponse{Deleted: deleted})
}
