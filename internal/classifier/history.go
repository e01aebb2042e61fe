package classifier

import "time"

// opennessSample is one time-stamped openness observation.
type opennessSample struct {
	t time.Time
	v float64
}

// History is a fixed-capacity ring buffer of time-stamped openness
// values. Pushing onto a full buffer evicts the oldest sample, so the
// window always covers the most recent observations.
type History struct {
	samples []opennessSample
	head    int // index of the oldest sample
	size    int
}

// NewHistory creates a history with the given capacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{samples: make([]opennessSample, capacity)}
}

// Push appends a sample, evicting the oldest when the buffer is full.
func (h *History) Push(t time.Time, openness float64) {
	tail := (h.head + h.size) % len(h.samples)
	h.samples[tail] = opennessSample{t: t, v: openness}
	if h.size < len(h.samples) {
		h.size++
	} else {
		h.head = (h.head + 1) % len(h.samples)
	}
}

// Len returns the number of buffered samples.
func (h *History) Len() int {
	return h.size
}

// Clear drops all samples.
func (h *History) Clear() {
	h.head = 0
	h.size = 0
}

// Speed estimates the openness rate of change in units per second from
// the oldest and newest samples in the window. Positive means the hand
// is opening, negative closing.
//
// The estimate is withheld (ok=false) when fewer than minSamples are
// buffered or when the window spans less than minSpan, since either
// makes the quotient meaningless or noise-dominated.
func (h *History) Speed(minSamples int, minSpan time.Duration) (speed float64, ok bool) {
	if h.size < minSamples {
		return 0, false
	}

	oldest := h.samples[h.head]
	newest := h.samples[(h.head+h.size-1)%len(h.samples)]

	dt := newest.t.Sub(oldest.t)
	if dt < minSpan {
		return 0, false
	}

	return (newest.v - oldest.v) / dt.Seconds(), true
}
