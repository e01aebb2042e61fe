package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/kido/internal/classifier"
	"github.com/ayusman/kido/internal/tracker"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// GestureStreamHandler broadcasts classified gesture ticks via
// WebSocket. It implements engine.Sink, so each tick the engine
// dispatches reaches every connected client.
type GestureStreamHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewGestureStreamHandler creates a new GestureStreamHandler.
func NewGestureStreamHandler() *GestureStreamHandler {
	return &GestureStreamHandler{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *GestureStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

type gestureMessage struct {
	Gesture   string            `json:"gesture"`
	Delta     *classifier.Delta `json:"delta,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// HandleGesture implements engine.Sink.
func (h *GestureStreamHandler) HandleGesture(g classifier.Gesture, delta *classifier.Delta) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, _ := json.Marshal(gestureMessage{
		Gesture:   string(g),
		Delta:     delta,
		Timestamp: time.Now().UnixMilli(),
	})

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}

// Snapshots is the hand observation source for the landmarks stream.
// Satisfied by tracker.Tracker.
type Snapshots interface {
	Latest() (*tracker.HandSnapshot, uint64)
}

// LandmarksHandler broadcasts real-time hand landmarks via WebSocket.
type LandmarksHandler struct {
	source  Snapshots
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewLandmarksHandler creates a new LandmarksHandler over the given source.
func NewLandmarksHandler(source Snapshots) *LandmarksHandler {
	h := &LandmarksHandler{
		source:  source,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LandmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the latest hand observation to all connected clients.
func (h *LandmarksHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	var lastSeq uint64

	for range ticker.C {
		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		hand, seq := h.source.Latest()
		if seq == lastSeq {
			continue
		}
		lastSeq = seq

		msg, _ := json.Marshal(map[string]any{
			"hand":      hand,
			"timestamp": time.Now().UnixMilli(),
		})

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
