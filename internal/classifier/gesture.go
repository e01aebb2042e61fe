// Package classifier converts a stream of hand snapshots into discrete
// viewport navigation gestures. It is a stateful, single-consumer engine:
// one Update call per frame, strictly sequential, with temporal smoothing,
// confidence-frame hysteresis and a post-zoom cooldown to suppress jitter
// and false triggers.
package classifier

// Gesture is the classified navigation intent for one tick.
type Gesture string

const (
	// GestureIdle means no actionable pose was detected.
	GestureIdle Gesture = "idle"
	// GestureOrbit means a mostly-open hand is moving; orbit the viewport.
	GestureOrbit Gesture = "orbit"
	// GestureZoomIn means a fist is opening into a palm; zoom in.
	GestureZoomIn Gesture = "zoom_in"
	// GestureZoomOut means a palm is closing into a fist; zoom out.
	GestureZoomOut Gesture = "zoom_out"
)

// IsZoom reports whether the gesture is one of the two zoom gestures.
func (g Gesture) IsZoom() bool {
	return g == GestureZoomIn || g == GestureZoomOut
}

// Delta is the orbit payload: hand displacement since the previous tick
// in normalized image coordinates. Gestures other than orbit carry no
// payload.
type Delta struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}
