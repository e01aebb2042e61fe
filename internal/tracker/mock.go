package tracker

import (
	"math"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandSnapshot
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandSnapshot) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// SyntheticSnapshot builds a hand pose whose openness estimate equals the
// given value (clamped to [0,1]). Fingers are laid out along five directions
// that cancel each other out, so the fingertip centroid stays at the wrist
// no matter how open the hand is. That keeps positional-delta logic inert
// in tests that only care about openness.
func SyntheticSnapshot(openness float64) HandSnapshot {
	if openness < 0 {
		openness = 0
	}
	if openness > 1 {
		openness = 1
	}

	// Openness maps the average tip/knuckle ratio from [0.6, 1.6] onto
	// [0, 1], so invert that mapping to pick the ratio.
	ratio := 0.6 + openness

	snap := HandSnapshot{
		Handedness: "Right",
		Score:      0.95,
	}

	wrist := Landmark{X: 0.5, Y: 0.6, Z: 0.0}
	snap.Landmarks[Wrist] = wrist

	const knuckleDist = 0.12

	for f := 0; f < 5; f++ {
		// Five evenly spaced directions around the wrist sum to zero.
		angle := 2 * math.Pi * float64(f) / 5
		ux, uy := math.Cos(angle), math.Sin(angle)

		knuckle := Landmark{
			X: wrist.X + ux*knuckleDist,
			Y: wrist.Y + uy*knuckleDist,
			Z: wrist.Z,
		}
		tip := Landmark{
			X: wrist.X + ux*knuckleDist*ratio,
			Y: wrist.Y + uy*knuckleDist*ratio,
			Z: wrist.Z,
		}

		snap.Landmarks[KnuckleIndices[f]] = knuckle
		snap.Landmarks[FingertipIndices[f]] = tip

		// Fill the intermediate joints along the same ray so the
		// snapshot looks like a plausible hand to consumers that
		// read all 21 points.
		mid := Landmark{
			X: (knuckle.X + tip.X) / 2,
			Y: (knuckle.Y + tip.Y) / 2,
			Z: wrist.Z,
		}
		switch f {
		case 0:
			snap.Landmarks[ThumbCMC] = Landmark{X: (wrist.X + knuckle.X) / 2, Y: (wrist.Y + knuckle.Y) / 2, Z: wrist.Z}
			snap.Landmarks[ThumbIP] = mid
		case 1:
			snap.Landmarks[IndexPIP] = mid
			snap.Landmarks[IndexDIP] = mid
		case 2:
			snap.Landmarks[MiddlePIP] = mid
			snap.Landmarks[MiddleDIP] = mid
		case 3:
			snap.Landmarks[RingPIP] = mid
			snap.Landmarks[RingDIP] = mid
		case 4:
			snap.Landmarks[PinkyPIP] = mid
			snap.Landmarks[PinkyDIP] = mid
		}
	}

	return snap
}

// OpenPalmSnapshot returns a preset snapshot of a mostly open hand.
func OpenPalmSnapshot() HandSnapshot {
	return SyntheticSnapshot(0.9)
}

// FistSnapshot returns a preset snapshot of a closed fist.
func FistSnapshot() HandSnapshot {
	return SyntheticSnapshot(0.1)
}

// TranslateSnapshot returns a copy of the snapshot with every landmark
// shifted by (dx, dy) in normalized coordinates.
func TranslateSnapshot(h HandSnapshot, dx, dy float64) HandSnapshot {
	out := h
	for i := range out.Landmarks {
		out.Landmarks[i].X += dx
		out.Landmarks[i].Y += dy
	}
	return out
}
