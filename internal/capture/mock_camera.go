package capture

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// ErrClipExhausted is returned by a non-looping MockCamera once every
// frame of its clip has been read.
var ErrClipExhausted = errors.New("mock camera clip exhausted")

// MockCamera replays a fixed clip of frames in place of a real webcam.
// Tests build clips from synthetic scenes (a hand sweeping across the
// view, a static background) and either play them once or loop them to
// simulate a continuous feed.
type MockCamera struct {
	frames  []*gocv.Mat
	index   int
	loop    bool
	mu      sync.Mutex
	running bool
}

// NewMockCamera creates a MockCamera over the given clip. With loop set,
// playback wraps around instead of exhausting.
func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

// Open rewinds the clip and starts playback.
func (c *MockCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = true
	c.index = 0
	return nil
}

// Close stops playback.
func (c *MockCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	return nil
}

// ReadFrame returns a clone of the next frame in the clip, so callers
// can close or modify it without corrupting the clip.
func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil, ErrCameraNotOpen
	}

	if len(c.frames) == 0 {
		return nil, ErrClipExhausted
	}

	if c.index >= len(c.frames) {
		if !c.loop {
			return nil, ErrClipExhausted
		}
		c.index = 0
	}

	frame := c.frames[c.index].Clone()
	c.index++

	return &frame, nil
}

// SetFPS is a no-op; the mock replays frames as fast as they are read.
func (c *MockCamera) SetFPS(fps int) {}

// FPS reports the active tracking rate.
func (c *MockCamera) FPS() int { return 15 }

// IsOpen reports whether playback has been started.
func (c *MockCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// SetFrames swaps in a new clip and rewinds playback.
func (c *MockCamera) SetFrames(frames []*gocv.Mat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = frames
	c.index = 0
}

// Reset rewinds playback to the start of the clip.
func (c *MockCamera) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = 0
}
