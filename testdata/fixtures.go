// Package testdata provides synthetic hand motion sequences for
// pipeline tests.
package testdata

import "github.com/ayusman/kido/internal/tracker"

// OpeningHand returns snapshots whose openness rises linearly from
// closed to open, the motion that drives a zoom-in.
func OpeningHand(steps int) []tracker.HandSnapshot {
	return opennessRamp(steps, 0.2, 0.9)
}

// ClosingHand returns snapshots whose openness falls linearly from open
// to closed, the motion that drives a zoom-out.
func ClosingHand(steps int) []tracker.HandSnapshot {
	return opennessRamp(steps, 0.9, 0.2)
}

// SteadyHand returns snapshots of an open hand holding still.
func SteadyHand(steps int) []tracker.HandSnapshot {
	return opennessRamp(steps, 0.8, 0.8)
}

// SweepingHand returns snapshots of an open hand translating by dx per
// step, the motion that drives an orbit.
func SweepingHand(steps int, dx float64) []tracker.HandSnapshot {
	seq := make([]tracker.HandSnapshot, steps)
	for i := range seq {
		seq[i] = tracker.TranslateSnapshot(tracker.SyntheticSnapshot(0.8), float64(i)*dx, 0)
	}
	return seq
}

func opennessRamp(steps int, from, to float64) []tracker.HandSnapshot {
	seq := make([]tracker.HandSnapshot, steps)
	for i := range seq {
		openness := from
		if steps > 1 {
			openness = from + (to-from)*float64(i)/float64(steps-1)
		}
		seq[i] = tracker.SyntheticSnapshot(openness)
	}
	return seq
}
