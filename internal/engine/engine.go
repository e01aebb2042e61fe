// Package engine wires the hand tracker to the gesture classifier and
// fans classified gestures out to the configured sinks.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/kido/internal/classifier"
	"github.com/ayusman/kido/internal/tracker"
)

// PollInterval is how often the engine checks the tracker for a new
// frame. It is well under the active capture interval so frames are
// picked up promptly without busy-waiting.
const PollInterval = 10 * time.Millisecond

// Source supplies the most recent hand observation and a sequence
// counter that increases once per processed frame. The Tracker is the
// production implementation.
type Source interface {
	Latest() (*tracker.HandSnapshot, uint64)
}

// Sink consumes one classified tick: the confirmed gesture and the
// orbit payload (nil for non-orbit gestures). Sinks are invoked from
// the engine goroutine and must not block.
type Sink interface {
	HandleGesture(g classifier.Gesture, delta *classifier.Delta)
}

// Engine polls the tracker, feeds each new frame to the classifier
// exactly once and in order, and dispatches the result to its sinks.
// The classifier is only ever touched from the engine goroutine, which
// keeps its single-consumer contract.
type Engine struct {
	source     Source
	classifier *classifier.Classifier
	sinks      []Sink

	mu      sync.RWMutex
	enabled bool
	stopCh  chan struct{}
	lastSeq uint64
}

// New creates an Engine over the given source and classifier. The
// engine starts disabled; call SetEnabled(true) to begin classifying.
func New(source Source, c *classifier.Classifier, sinks ...Sink) *Engine {
	return &Engine{
		source:     source,
		classifier: c,
		sinks:      sinks,
	}
}

// AddSink registers an additional sink. Must be called before Start.
func (e *Engine) AddSink(s Sink) {
	e.sinks = append(e.sinks, s)
}

// SetEnabled enables or disables gesture classification.
func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled = enabled
}

// IsEnabled returns whether classification is currently enabled.
func (e *Engine) IsEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.enabled
}

// Current returns the classifier's confirmed gesture as of the last
// processed frame.
func (e *Engine) Current() classifier.Gesture {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.classifier.Current()
}

// Start begins the classification loop.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopCh != nil {
		return
	}
	e.stopCh = make(chan struct{})
	go e.run(e.stopCh)

	log.Println("Gesture engine started")
}

// Stop halts the classification loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopCh == nil {
		return
	}
	close(e.stopCh)
	e.stopCh = nil

	log.Println("Gesture engine stopped")
}

func (e *Engine) run(stopCh chan struct{}) {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !e.IsEnabled() {
				continue
			}
			e.step()
		}
	}
}

// step processes at most one new frame. Frames the engine missed while
// busy are dropped, never replayed: the classifier's time-based logic
// works on wall-clock deltas and tolerates irregular gaps.
func (e *Engine) step() {
	hand, seq := e.source.Latest()

	e.mu.Lock()
	if seq == e.lastSeq {
		e.mu.Unlock()
		return
	}
	e.lastSeq = seq

	gesture, delta := e.classifier.Update(hand)
	e.mu.Unlock()

	for _, s := range e.sinks {
		s.HandleGesture(gesture, delta)
	}
}
