package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

// clipFrame builds a single-channel frame filled with the given value,
// so playback order is checkable from any pixel.
func clipFrame(t *testing.T, value float64) *gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSize(DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC1)
	t.Cleanup(func() { mat.Close() })
	mat.SetTo(gocv.NewScalar(value, 0, 0, 0))
	return &mat
}

func TestMockCamera_ReplaysClipInOrder(t *testing.T) {
	clip := []*gocv.Mat{clipFrame(t, 1), clipFrame(t, 2), clipFrame(t, 3)}

	cam := NewMockCamera(clip, false)
	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cam.Close()

	for i := 1; i <= 3; i++ {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		if got := frame.GetUCharAt(0, 0); got != uint8(i) {
			t.Errorf("frame %d pixel value = %d, want %d", i, got, i)
		}
		frame.Close()
	}

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrClipExhausted) {
		t.Errorf("read past the clip error = %v, want ErrClipExhausted", err)
	}
}

func TestMockCamera_LoopingFeed(t *testing.T) {
	clip := []*gocv.Mat{clipFrame(t, 7), clipFrame(t, 8)}

	cam := NewMockCamera(clip, true)
	cam.Open()
	defer cam.Close()

	// Five reads over a two-frame loop: 7, 8, 7, 8, 7.
	want := []uint8{7, 8, 7, 8, 7}
	for i, w := range want {
		frame, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() iteration %d error = %v", i, err)
		}
		if got := frame.GetUCharAt(0, 0); got != w {
			t.Errorf("iteration %d pixel value = %d, want %d", i, got, w)
		}
		frame.Close()
	}
}

func TestMockCamera_ReadBeforeOpen(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() before Open() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestMockCamera_ReadFrameClones(t *testing.T) {
	clip := []*gocv.Mat{clipFrame(t, 5)}

	cam := NewMockCamera(clip, true)
	cam.Open()
	defer cam.Close()

	frame, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	frame.SetTo(gocv.NewScalar(0, 0, 0, 0))
	frame.Close()

	// Scribbling on a returned frame must not corrupt the clip.
	again, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	defer again.Close()
	if got := again.GetUCharAt(0, 0); got != 5 {
		t.Errorf("clip frame pixel value = %d after caller writes, want 5", got)
	}
}

func TestMockCamera_Reset(t *testing.T) {
	clip := []*gocv.Mat{clipFrame(t, 1), clipFrame(t, 2)}

	cam := NewMockCamera(clip, false)
	cam.Open()
	defer cam.Close()

	first, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	first.Close()

	cam.Reset()

	frame, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() after Reset error = %v", err)
	}
	defer frame.Close()
	if got := frame.GetUCharAt(0, 0); got != 1 {
		t.Errorf("frame after Reset pixel value = %d, want 1", got)
	}
}
