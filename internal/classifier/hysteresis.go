package classifier

// Hysteresis is the confidence-frame filter between raw per-tick
// candidates and the confirmed output gesture. The confirmed gesture
// only changes after the same candidate has been produced for a fixed
// number of consecutive ticks, so a single-tick blip never reaches the
// output.
type Hysteresis struct {
	frames    int
	candidate Gesture
	streak    int
	confirmed Gesture
}

// NewHysteresis creates a filter requiring the given number of
// consecutive frames before a candidate is confirmed.
func NewHysteresis(frames int) *Hysteresis {
	if frames < 1 {
		frames = 1
	}
	return &Hysteresis{
		frames:    frames,
		candidate: GestureIdle,
		confirmed: GestureIdle,
	}
}

// Advance feeds this tick's candidate and returns the confirmed
// gesture. A repeated candidate extends the streak; a different one
// restarts it at 1. Once the streak reaches the confidence-frame
// count, the candidate becomes the confirmed gesture.
func (h *Hysteresis) Advance(candidate Gesture) Gesture {
	if candidate == h.candidate {
		h.streak++
	} else {
		h.candidate = candidate
		h.streak = 1
	}

	if h.streak >= h.frames {
		h.confirmed = candidate
	}

	return h.confirmed
}

// Confirmed returns the current confirmed gesture without advancing.
func (h *Hysteresis) Confirmed() Gesture {
	return h.confirmed
}
