// Package server provides the HTTP server for the Kido navigation system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/kido/internal/capture"
	"github.com/ayusman/kido/internal/engine"
	"github.com/ayusman/kido/internal/server/api"
	"github.com/ayusman/kido/internal/store"
	"github.com/ayusman/kido/internal/tracker"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Tracker   *tracker.Tracker
	Engine    *engine.Engine
}

// Server represents the HTTP server for the Kido application.
type Server struct {
	config  Config
	mux     *http.ServeMux
	start   time.Time
	gesture *GestureStreamHandler
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config:  config,
		mux:     http.NewServeMux(),
		start:   time.Now(),
		gesture: NewGestureStreamHandler(),
	}
	s.setupRoutes()
	return s
}

// GestureStream returns the WebSocket broadcaster for classified
// gestures. Register it as an engine sink to feed it.
func (s *Server) GestureStream() *GestureStreamHandler {
	return s.gesture
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/state", s.handleState)
	s.mux.Handle("/api/gestures", s.gesture)

	// Register event log API if Store is configured
	if s.config.Store != nil {
		eventsHandler := api.NewEventsHandler(s.config.Store)
		s.mux.Handle("/api/events", eventsHandler)
		s.mux.Handle("/api/events/", eventsHandler)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Register landmarks WebSocket endpoint if Tracker is configured
	if s.config.Tracker != nil {
		landmarksHandler := NewLandmarksHandler(s.config.Tracker)
		s.mux.Handle("/api/landmarks", landmarksHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

type stateResponse struct {
	Enabled bool   `json:"enabled"`
	Gesture string `json:"gesture"`
}

type updateStateRequest struct {
	Enabled *bool `json:"enabled"`
}

// handleState handles /api/state: GET reports whether navigation is
// enabled and the current confirmed gesture, PUT toggles navigation.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if s.config.Engine == nil {
		http.Error(w, "Engine not configured", http.StatusServiceUnavailable)
		return
	}

	switch r.Method {
	case http.MethodGet:
	case http.MethodPut:
		var req updateStateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Enabled == nil {
			http.Error(w, "Missing 'enabled' field", http.StatusBadRequest)
			return
		}
		s.config.Engine.SetEnabled(*req.Enabled)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := stateResponse{
		Enabled: s.config.Engine.IsEnabled(),
		Gesture: string(s.config.Engine.Current()),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
