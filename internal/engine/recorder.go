package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/ayusman/kido/internal/classifier"
	"github.com/ayusman/kido/internal/store"
)

// Recorder is a Sink that logs confirmed gesture transitions to the
// store. Per-tick repeats of the same gesture are not recorded; only
// the moment the confirmed gesture changes.
type Recorder struct {
	events *store.EventRepository
	last   classifier.Gesture
}

// NewRecorder creates a Recorder over the given event repository.
func NewRecorder(events *store.EventRepository) *Recorder {
	return &Recorder{
		events: events,
		last:   classifier.GestureIdle,
	}
}

// HandleGesture implements Sink.
func (r *Recorder) HandleGesture(g classifier.Gesture, delta *classifier.Delta) {
	if g == r.last {
		return
	}
	r.last = g

	event := &store.Event{
		ID:      uuid.NewString(),
		Gesture: string(g),
	}
	if delta != nil {
		dx, dy := delta.DX, delta.DY
		event.DX = &dx
		event.DY = &dy
	}

	if err := r.events.Insert(event); err != nil {
		log.Printf("Failed to record gesture event: %v", err)
	}
}
