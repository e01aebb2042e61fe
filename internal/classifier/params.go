package classifier

import "time"

// Params holds the tunable constants of the classification engine.
// They are fixed at construction; the values in DefaultParams were
// calibrated empirically and are not recomputed per user.
type Params struct {
	// EMAAlpha is the exponential-moving-average factor for hand
	// position smoothing. Higher is more responsive but noisier.
	EMAAlpha float64

	// ConfidenceFrames is the number of consecutive frames a candidate
	// gesture must be seen before the confirmed gesture switches.
	ConfidenceFrames int

	// OrbitDeadZone is the minimum smoothed hand displacement (in
	// normalized coordinates) before an orbit intent registers.
	OrbitDeadZone float64

	// OrbitMinOpenness is how open the hand must be for orbit.
	OrbitMinOpenness float64

	// ZoomSpeedThreshold is the openness rate of change (units/sec) at
	// which a fist opening or closing triggers zoom.
	ZoomSpeedThreshold float64

	// ZoomInSustainOpenness keeps zoom-in active while the hand stays
	// at least this open after the opening speed decays.
	ZoomInSustainOpenness float64

	// ZoomOutSustainOpenness keeps zoom-out active while the hand stays
	// at most this open after the closing speed decays.
	ZoomOutSustainOpenness float64

	// ZoomCooldown suppresses orbit for this long after a zoom gesture
	// ends, so the follow-through motion does not rotate the viewport.
	ZoomCooldown time.Duration

	// HistoryCapacity bounds the openness history ring buffer.
	HistoryCapacity int

	// SpeedMinSamples is the minimum number of buffered openness
	// samples before a speed estimate is attempted.
	SpeedMinSamples int

	// SpeedMinSpan is the minimum time covered by the openness history
	// for a speed estimate; shorter windows are too noisy.
	SpeedMinSpan time.Duration

	// OpennessFistRatio and OpennessPalmRatio are the empirical
	// tip/knuckle ratio averages of a tight fist and a fully open
	// palm. Openness maps this range linearly onto [0, 1].
	OpennessFistRatio float64
	OpennessPalmRatio float64
}

// DefaultParams returns the calibrated engine parameters.
func DefaultParams() Params {
	return Params{
		EMAAlpha:               0.45,
		ConfidenceFrames:       3,
		OrbitDeadZone:          0.015,
		OrbitMinOpenness:       0.55,
		ZoomSpeedThreshold:     0.8,
		ZoomInSustainOpenness:  0.7,
		ZoomOutSustainOpenness: 0.3,
		ZoomCooldown:           300 * time.Millisecond,
		HistoryCapacity:        10,
		SpeedMinSamples:        4,
		SpeedMinSpan:           50 * time.Millisecond,
		OpennessFistRatio:      0.6,
		OpennessPalmRatio:      1.6,
	}
}
