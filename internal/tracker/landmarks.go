// Package tracker provides hand tracking types and the background capture
// loop that feeds the gesture classifier.
package tracker

import (
	"math"
	"time"
)

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// FingertipIndices lists the five fingertip landmarks in thumb-to-pinky order.
var FingertipIndices = [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}

// KnuckleIndices lists the proximal knuckle paired with each fingertip.
// The thumb uses its MCP joint; the other fingers use their MCP joints.
var KnuckleIndices = [5]int{ThumbMCP, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

// Landmark is a single 3D point in normalized image coordinates.
// X and Y are roughly in [0,1]; Z is relative depth.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandSnapshot is one tick's observation of a detected hand: the 21
// MediaPipe landmarks, which hand it is, the detector confidence, and
// the capture timestamp.
type HandSnapshot struct {
	Landmarks  [NumLandmarks]Landmark `json:"landmarks"`
	Handedness string                 `json:"handedness"` // "Left" or "Right"
	Score      float64                `json:"score"`
	Timestamp  time.Time              `json:"timestamp"`
}

// Distance3 returns the Euclidean distance between two landmarks.
func Distance3(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Wrist returns the wrist landmark.
func (h *HandSnapshot) Wrist() Landmark {
	return h.Landmarks[Wrist]
}

// FingertipCenter returns the mean position of the five fingertips.
func (h *HandSnapshot) FingertipCenter() (x, y, z float64) {
	for _, i := range FingertipIndices {
		x += h.Landmarks[i].X
		y += h.Landmarks[i].Y
		z += h.Landmarks[i].Z
	}
	n := float64(len(FingertipIndices))
	return x / n, y / n, z / n
}

// PalmCenter returns the mean position of the wrist and the four
// finger MCP joints (landmarks 0, 5, 9, 13, 17).
func (h *HandSnapshot) PalmCenter() (x, y, z float64) {
	ids := [5]int{Wrist, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}
	for _, i := range ids {
		x += h.Landmarks[i].X
		y += h.Landmarks[i].Y
		z += h.Landmarks[i].Z
	}
	n := float64(len(ids))
	return x / n, y / n, z / n
}
