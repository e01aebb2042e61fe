// Package navigate drives viewport navigation from confirmed gestures.
// A Navigator consumes classified gesture ticks and issues pointer
// actions (drag, scroll) through the plugin system.
package navigate

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ayusman/kido/internal/capture"
	"github.com/ayusman/kido/internal/classifier"
	"github.com/ayusman/kido/internal/plugin"
)

const (
	// ActionOrbitStart begins a drag (button press).
	ActionOrbitStart = "orbit-start"
	// ActionOrbitMove moves the pointer while dragging.
	ActionOrbitMove = "orbit-move"
	// ActionOrbitEnd finishes a drag (button release).
	ActionOrbitEnd = "orbit-end"
	// ActionScroll emits one scroll tick.
	ActionScroll = "scroll"

	// DefaultSensitivity scales normalized hand displacement to pixels.
	DefaultSensitivity = 2.0

	// scrollInterval is the minimum time between scroll ticks so a held
	// zoom gesture does not flood the target application.
	scrollInterval = 50 * time.Millisecond
)

// Runner executes plugin requests. Satisfied by plugin.Executor.
type Runner interface {
	Execute(p *plugin.Plugin, req *plugin.Request) (*plugin.Response, error)
}

// moveParams is the payload for orbit-move actions, in screen pixels.
type moveParams struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// scrollParams is the payload for scroll actions.
type scrollParams struct {
	Direction string `json:"direction"`
}

// Navigator translates gesture ticks into pointer plugin requests.
// It tracks drag state so orbit entry presses the button once, each
// orbit tick moves, and leaving orbit releases.
type Navigator struct {
	runner      Runner
	pointer     *plugin.Plugin
	sensitivity float64

	orbiting   bool
	lastScroll time.Time

	now func() time.Time
}

// New creates a Navigator that drives the given pointer plugin.
func New(runner Runner, pointer *plugin.Plugin) *Navigator {
	return &Navigator{
		runner:      runner,
		pointer:     pointer,
		sensitivity: DefaultSensitivity,
		now:         time.Now,
	}
}

// SetSensitivity adjusts the displacement-to-pixel scale factor.
func (n *Navigator) SetSensitivity(s float64) {
	if s > 0 {
		n.sensitivity = s
	}
}

// HandleGesture implements engine.Sink.
func (n *Navigator) HandleGesture(g classifier.Gesture, delta *classifier.Delta) {
	switch g {
	case classifier.GestureOrbit:
		n.handleOrbit(delta)
	case classifier.GestureZoomIn:
		n.endOrbit(g)
		n.scroll(g, "up")
	case classifier.GestureZoomOut:
		n.endOrbit(g)
		n.scroll(g, "down")
	default:
		n.endOrbit(g)
	}
}

// Release ends any in-progress drag. Call on shutdown so the pointer
// button is not left pressed.
func (n *Navigator) Release() {
	n.endOrbit(classifier.GestureIdle)
}

func (n *Navigator) handleOrbit(delta *classifier.Delta) {
	if !n.orbiting {
		if err := n.execute(classifier.GestureOrbit, ActionOrbitStart, nil); err != nil {
			log.Printf("Failed to start orbit: %v", err)
			return
		}
		n.orbiting = true
	}

	if delta == nil {
		return
	}

	params := moveParams{
		DX: int(delta.DX * n.sensitivity * capture.DefaultWidth),
		DY: int(delta.DY * n.sensitivity * capture.DefaultHeight),
	}
	if params.DX == 0 && params.DY == 0 {
		return
	}
	if err := n.execute(classifier.GestureOrbit, ActionOrbitMove, params); err != nil {
		log.Printf("Failed to move orbit: %v", err)
	}
}

func (n *Navigator) endOrbit(g classifier.Gesture) {
	if !n.orbiting {
		return
	}
	n.orbiting = false
	if err := n.execute(g, ActionOrbitEnd, nil); err != nil {
		log.Printf("Failed to end orbit: %v", err)
	}
}

func (n *Navigator) scroll(g classifier.Gesture, direction string) {
	if n.now().Sub(n.lastScroll) < scrollInterval {
		return
	}
	n.lastScroll = n.now()

	if err := n.execute(g, ActionScroll, scrollParams{Direction: direction}); err != nil {
		log.Printf("Failed to scroll: %v", err)
	}
}

func (n *Navigator) execute(g classifier.Gesture, action string, params interface{}) error {
	req := &plugin.Request{
		Action:  action,
		Gesture: string(g),
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("failed to marshal params: %w", err)
		}
		req.Params = raw
	}

	resp, err := n.runner.Execute(n.pointer, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("plugin rejected %s: %s", action, resp.Error)
	}
	return nil
}
