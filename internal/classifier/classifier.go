package classifier

import (
	"math"
	"time"

	"github.com/ayusman/kido/internal/tracker"
)

// Classifier is the stateful gesture classification engine. It consumes
// one hand snapshot (or absence) per tick and emits a confirmed gesture
// plus an optional orbit payload.
//
// A Classifier must be driven by a single consumer: exactly one Update
// call per frame, never concurrently. It owns no handles or goroutines
// and never fails; degenerate input only biases the output toward idle.
type Classifier struct {
	params Params

	smoother *PositionSmoother

	// Previous tick's smoothed position, for the orbit delta.
	prevX, prevY float64
	hasPrev      bool

	history *History
	hyst    *Hysteresis

	// When the most recent zoom wound down; anchors the orbit cooldown.
	zoomEnd time.Time

	// now is the clock; tests override it to control cooldown and
	// speed-window timing.
	now func() time.Time
}

// New creates a Classifier with the given parameters.
func New(params Params) *Classifier {
	return &Classifier{
		params:   params,
		smoother: NewPositionSmoother(params.EMAAlpha),
		history:  NewHistory(params.HistoryCapacity),
		hyst:     NewHysteresis(params.ConfidenceFrames),
		now:      time.Now,
	}
}

// Current returns the confirmed gesture as of the last tick.
func (c *Classifier) Current() Gesture {
	return c.hyst.Confirmed()
}

// Update feeds one tick's snapshot, or nil when no hand is visible, and
// returns the confirmed gesture and the orbit displacement payload.
// The payload is non-nil only when the confirmed gesture is orbit, and
// always holds the current tick's freshly computed delta.
func (c *Classifier) Update(hand *tracker.HandSnapshot) (Gesture, *Delta) {
	if hand == nil {
		// Loss of tracking clears positional state and the openness
		// window, but not the hysteresis memory: one dropped frame
		// must not discard an established gesture's confirmation
		// progress. Sustained absence still converges to idle.
		c.resetTracking()
		return c.hyst.Advance(GestureIdle), nil
	}

	now := c.now()

	openness := HandOpenness(hand, c.params.OpennessFistRatio, c.params.OpennessPalmRatio)

	cx, cy, cz := hand.FingertipCenter()
	sx, sy, _ := c.smoother.Smooth(cx, cy, cz)

	gesture, delta := c.classify(openness, sx, sy, now)

	// Store this tick's smoothed position for the next delta, and feed
	// the openness window. Both happen after classification so the
	// speed and delta seen above cover strictly earlier ticks.
	c.prevX, c.prevY = sx, sy
	c.hasPrev = true
	c.history.Push(now, openness)

	if gesture != GestureOrbit {
		delta = nil
	}
	return gesture, delta
}

// classify decides the raw candidate for this tick and runs it through
// the hysteresis filter. Precedence: speed-triggered zoom, zoom
// sustain, post-zoom cooldown, orbit, idle.
func (c *Classifier) classify(openness, sx, sy float64, now time.Time) (Gesture, *Delta) {
	speed, speedKnown := c.history.Speed(c.params.SpeedMinSamples, c.params.SpeedMinSpan)

	// Transition-based zoom: a fast-opening fist zooms in, a
	// fast-closing palm zooms out.
	if speedKnown {
		if speed > c.params.ZoomSpeedThreshold {
			return c.hyst.Advance(GestureZoomIn), nil
		}
		if speed < -c.params.ZoomSpeedThreshold {
			return c.hyst.Advance(GestureZoomOut), nil
		}
	}

	// Sustained zoom pose: once a zoom is confirmed, holding the hand
	// in the triggering pose keeps it active even after the opening or
	// closing speed decays. Keyed off the previously confirmed gesture
	// deliberately, so an engaged zoom does not flicker through the
	// confidence filter.
	confirmed := c.hyst.Confirmed()
	if confirmed == GestureZoomIn && openness > c.params.ZoomInSustainOpenness {
		return c.hyst.Advance(GestureZoomIn), nil
	}
	if confirmed == GestureZoomOut && openness < c.params.ZoomOutSustainOpenness {
		return c.hyst.Advance(GestureZoomOut), nil
	}

	// The zoom just wound down: remember when, and suppress orbit for
	// the cooldown window so the hand motion that follows a zoom does
	// not rotate the viewport.
	if confirmed.IsZoom() && speedKnown && math.Abs(speed) < c.params.ZoomSpeedThreshold {
		c.zoomEnd = now
	}
	if now.Sub(c.zoomEnd) < c.params.ZoomCooldown {
		return c.hyst.Advance(GestureIdle), nil
	}

	// Orbit: a mostly-open hand that moved beyond the dead zone.
	if openness > c.params.OrbitMinOpenness && c.hasPrev {
		dx := sx - c.prevX
		dy := sy - c.prevY
		if math.Hypot(dx, dy) > c.params.OrbitDeadZone {
			return c.hyst.Advance(GestureOrbit), &Delta{DX: dx, DY: dy}
		}
	}

	return c.hyst.Advance(GestureIdle), nil
}

// resetTracking clears position smoothing, the previous position and
// the openness history. Hysteresis state is left intact.
func (c *Classifier) resetTracking() {
	c.smoother.Reset()
	c.hasPrev = false
	c.history.Clear()
}
