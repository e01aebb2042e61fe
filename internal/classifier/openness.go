package classifier

import (
	"gonum.org/v1/gonum/stat"

	"github.com/ayusman/kido/internal/tracker"
)

// minKnuckleDist guards against degenerate geometry: a finger whose
// knuckle sits on top of the wrist contributes no usable ratio.
const minKnuckleDist = 1e-6

// HandOpenness estimates how open a hand is, from 0.0 (tight fist) to
// 1.0 (fully open palm).
//
// For each finger it measures the ratio of tip-to-wrist distance over
// knuckle-to-wrist distance, skips fingers with degenerate geometry,
// and maps the average ratio linearly from [fistRatio, palmRatio] onto
// [0, 1], clamped at both ends. A hand with no usable fingers reads as
// fully closed.
func HandOpenness(h *tracker.HandSnapshot, fistRatio, palmRatio float64) float64 {
	wrist := h.Wrist()

	ratios := make([]float64, 0, len(tracker.FingertipIndices))
	for f, tipIdx := range tracker.FingertipIndices {
		tip := h.Landmarks[tipIdx]
		knuckle := h.Landmarks[tracker.KnuckleIndices[f]]

		dKnuckle := tracker.Distance3(knuckle, wrist)
		if dKnuckle < minKnuckleDist {
			continue
		}
		ratios = append(ratios, tracker.Distance3(tip, wrist)/dKnuckle)
	}

	if len(ratios) == 0 {
		return 0.0
	}

	avg := stat.Mean(ratios, nil)

	openness := (avg - fistRatio) / (palmRatio - fistRatio)
	if openness < 0 {
		return 0
	}
	if openness > 1 {
		return 1
	}
	return openness
}
