package capture

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

// blankScene returns an all-black frame at the capture resolution.
func blankScene(t *testing.T) *gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSize(DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return &mat
}

// sceneWithHand returns a frame with a bright hand-sized blob, as if a
// hand entered an otherwise static view. The blob covers roughly 10%
// of the frame.
func sceneWithHand(t *testing.T) *gocv.Mat {
	t.Helper()
	mat := blankScene(t)

	hand := mat.Region(image.Rect(240, 140, 400, 340))
	defer hand.Close()
	hand.SetTo(gocv.NewScalar(220, 220, 220, 0))

	return mat
}

func TestNewMotionDetector(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
	}{
		{name: "default sensitivity", threshold: 1.0},
		{name: "strict", threshold: 8.0},
		{name: "hair trigger", threshold: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NewMotionDetector(tt.threshold)
			if md == nil {
				t.Fatal("NewMotionDetector returned nil")
			}
			defer md.Close()

			if md.threshold != tt.threshold {
				t.Errorf("threshold = %f, want %f", md.threshold, tt.threshold)
			}
			if md.initialized {
				t.Error("detector should not be initialized before the first frame")
			}
		})
	}
}

func TestMotionDetector_StaticScene(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	// The first frame only seeds the reference; it never counts as motion.
	detected, changePercent := md.Detect(blankScene(t))
	if detected {
		t.Error("seed frame should not detect motion")
	}
	if changePercent != 0 {
		t.Errorf("seed frame changePercent = %f, want 0", changePercent)
	}

	detected, changePercent = md.Detect(blankScene(t))
	if detected {
		t.Errorf("static scene should not detect motion, changePercent = %f", changePercent)
	}
}

func TestMotionDetector_HandEntersFrame(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	md.Detect(blankScene(t))

	detected, changePercent := md.Detect(sceneWithHand(t))
	if !detected {
		t.Errorf("hand entering the frame should detect motion, changePercent = %f", changePercent)
	}

	// The blob covers about a tenth of the frame, nowhere near all of it.
	if changePercent < 1.0 || changePercent > 50.0 {
		t.Errorf("changePercent = %f, expected a hand-sized change", changePercent)
	}
}

func TestMotionDetector_HandHoldsStill(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	// Once the hand is part of the reference frame, holding it still
	// must not keep the detector in the active state.
	md.Detect(sceneWithHand(t))
	detected, changePercent := md.Detect(sceneWithHand(t))
	if detected {
		t.Errorf("motionless hand should not detect motion, changePercent = %f", changePercent)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	md.Detect(blankScene(t))
	if !md.initialized {
		t.Error("detector should be initialized after the first Detect")
	}

	md.Reset()

	if md.initialized {
		t.Error("detector should not be initialized after Reset")
	}
	if !md.prevGray.Empty() {
		t.Error("reference frame should be empty after Reset")
	}
}

func TestMotionDetector_SetThreshold(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	md.SetThreshold(5.0)
	if md.threshold != 5.0 {
		t.Errorf("threshold = %f, want 5.0 after SetThreshold", md.threshold)
	}

	// Non-positive values are ignored.
	md.SetThreshold(-1.0)
	if md.threshold != 5.0 {
		t.Errorf("negative threshold should be ignored, got %f, want 5.0", md.threshold)
	}
}

func TestMotionDetector_Close_Multiple(t *testing.T) {
	md := NewMotionDetector(1.0)

	md.Close()
	md.Close()
}

func TestMotionDetector_Detect_AfterClose(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)

	md.Detect(blankScene(t))
	md.Close()

	// Detect after Close re-seeds the reference frame.
	detected, _ := md.Detect(blankScene(t))
	if detected {
		t.Error("first frame after Close should not detect motion")
	}
}

func TestMotionDetector_HighThresholdIgnoresHand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	// A threshold above the blob's coverage must leave the detector idle.
	md := NewMotionDetector(60.0)
	defer md.Close()

	md.Detect(blankScene(t))
	detected, changePercent := md.Detect(sceneWithHand(t))
	if detected {
		t.Errorf("hand-sized change %f%% should not cross a 60%% threshold", changePercent)
	}
}
