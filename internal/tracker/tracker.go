package tracker

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/kido/internal/capture"
)

// Capture loop timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds without motion before
	// dropping back to idle mode.
	IdleTimeoutMs = 2000
)

// Tracker runs camera capture and hand detection in a background
// goroutine and exposes the most recent snapshot via Latest.
//
// Consumers poll Latest and compare the sequence counter to detect new
// observations; intermediate snapshots may be dropped if the consumer
// is slower than the capture loop (at-most-once delivery).
type Tracker struct {
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector Detector

	mu      sync.RWMutex
	hand    *HandSnapshot
	seq     uint64
	stopCh  chan struct{}
	running bool
}

// New creates a Tracker over the given camera, motion detector and
// hand detector.
func New(camera capture.Camera, motion *capture.MotionDetector, detector Detector) *Tracker {
	return &Tracker{
		camera:   camera,
		motion:   motion,
		detector: detector,
	}
}

// Start opens the camera and begins the capture loop.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return nil
	}

	if err := t.camera.Open(); err != nil {
		return err
	}
	t.camera.SetFPS(IdleFPS)

	t.stopCh = make(chan struct{})
	t.running = true
	go t.loop(t.stopCh)

	log.Println("Hand tracking started")
	return nil
}

// Stop halts the capture loop and releases camera and detector resources.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	close(t.stopCh)
	t.stopCh = nil
	t.running = false

	if err := t.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if t.motion != nil {
		t.motion.Close()
	}
	if t.detector != nil {
		if err := t.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Hand tracking stopped")
}

// IsRunning reports whether the capture loop is active.
func (t *Tracker) IsRunning() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.running
}

// Latest returns the most recent snapshot (nil when no hand is visible)
// and the sequence counter, which increases once per processed frame.
func (t *Tracker) Latest() (*HandSnapshot, uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hand, t.seq
}

// Camera returns the camera instance.
func (t *Tracker) Camera() capture.Camera {
	return t.camera
}

// publish stores the snapshot for this frame and bumps the sequence.
// A nil snapshot means no hand was visible on this frame.
func (t *Tracker) publish(hand *HandSnapshot) {
	t.mu.Lock()
	t.hand = hand
	t.seq++
	t.mu.Unlock()
}

// loop is the capture loop. It switches between idle and active frame
// rates based on motion detection, runs hand detection while active,
// and publishes one snapshot-or-absence per frame.
func (t *Tracker) loop(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := t.camera.ReadFrame()
			if err != nil {
				continue
			}

			motionDetected := false
			if t.motion != nil {
				motionDetected, _ = t.motion.Detect(frame)
			}

			if motionDetected {
				lastMotionTime = time.Now()
				if !activeMode {
					activeMode = true
					t.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Tracker switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					t.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Tracker switched to idle mode")
				}
			}

			// No motion detector configured means always-active tracking.
			if t.motion != nil && !activeMode {
				frame.Close()
				t.publish(nil)
				continue
			}

			hands, err := t.detector.Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				t.publish(nil)
				continue
			}

			if len(hands) == 0 {
				t.publish(nil)
				continue
			}

			// Single-hand engine: take the first detected hand.
			hand := hands[0]
			hand.Timestamp = time.Now()
			t.publish(&hand)
		}
	}
}
