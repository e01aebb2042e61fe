package classifier

// PositionSmoother applies an exponential moving average to the hand's
// representative point. The first observation after a reset seeds the
// smoother directly, with no warm-up blending.
type PositionSmoother struct {
	alpha   float64
	x, y, z float64
	seeded  bool
}

// NewPositionSmoother creates a smoother with the given EMA factor.
func NewPositionSmoother(alpha float64) *PositionSmoother {
	return &PositionSmoother{alpha: alpha}
}

// Smooth feeds a new observation and returns the smoothed position.
func (s *PositionSmoother) Smooth(x, y, z float64) (sx, sy, sz float64) {
	if !s.seeded {
		s.x, s.y, s.z = x, y, z
		s.seeded = true
	} else {
		a := s.alpha
		s.x = a*x + (1-a)*s.x
		s.y = a*y + (1-a)*s.y
		s.z = a*z + (1-a)*s.z
	}
	return s.x, s.y, s.z
}

// Reset clears the smoother; the next observation re-seeds it.
func (s *PositionSmoother) Reset() {
	s.seeded = false
}

// Seeded reports whether the smoother holds a position, which is true
// exactly when a hand has been observed since the last reset.
func (s *PositionSmoother) Seeded() bool {
	return s.seeded
}
