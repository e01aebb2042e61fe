package classifier

import (
	"math"
	"testing"
	"time"
)

func TestHistory_Speed(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	minSamples := 4
	minSpan := 50 * time.Millisecond

	t.Run("fewer than minimum samples returns unknown", func(t *testing.T) {
		h := NewHistory(10)

		for i := 0; i < 3; i++ {
			h.Push(base.Add(time.Duration(i)*100*time.Millisecond), 0.5)
			if _, ok := h.Speed(minSamples, minSpan); ok {
				t.Fatalf("speed known with only %d samples", i+1)
			}
		}
	})

	t.Run("four samples over a sufficient span returns a finite value", func(t *testing.T) {
		h := NewHistory(10)

		// Openness rising 0.2 -> 0.9 over 100ms: speed = 7.0/s.
		h.Push(base, 0.2)
		h.Push(base.Add(30*time.Millisecond), 0.4)
		h.Push(base.Add(60*time.Millisecond), 0.6)
		h.Push(base.Add(100*time.Millisecond), 0.9)

		speed, ok := h.Speed(minSamples, minSpan)
		if !ok {
			t.Fatal("speed unknown with 4 samples over 100ms")
		}
		want := (0.9 - 0.2) / 0.1
		if math.Abs(speed-want) > 1e-9 {
			t.Errorf("speed = %f, want %f", speed, want)
		}
	})

	t.Run("span below minimum returns unknown", func(t *testing.T) {
		h := NewHistory(10)

		for i := 0; i < 4; i++ {
			h.Push(base.Add(time.Duration(i)*10*time.Millisecond), float64(i)*0.2)
		}

		if _, ok := h.Speed(minSamples, minSpan); ok {
			t.Error("speed known over a 30ms span, want unknown")
		}
	})

	t.Run("identical timestamps degrade to unknown", func(t *testing.T) {
		h := NewHistory(10)

		for i := 0; i < 4; i++ {
			h.Push(base, float64(i)*0.2)
		}

		if _, ok := h.Speed(minSamples, minSpan); ok {
			t.Error("speed known with zero time span, want unknown")
		}
	})

	t.Run("negative speed while closing", func(t *testing.T) {
		h := NewHistory(10)

		h.Push(base, 0.9)
		h.Push(base.Add(50*time.Millisecond), 0.7)
		h.Push(base.Add(100*time.Millisecond), 0.4)
		h.Push(base.Add(200*time.Millisecond), 0.1)

		speed, ok := h.Speed(minSamples, minSpan)
		if !ok {
			t.Fatal("speed unknown")
		}
		if speed >= 0 {
			t.Errorf("speed = %f, want negative while closing", speed)
		}
	})
}

func TestHistory_Eviction(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	h := NewHistory(10)
	for i := 0; i < 15; i++ {
		h.Push(base.Add(time.Duration(i)*100*time.Millisecond), float64(i))
	}

	if h.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", h.Len())
	}

	// Samples 0-4 were evicted, so the window is values 5..14 over
	// 900ms: speed = 9/0.9 = 10.
	speed, ok := h.Speed(4, 50*time.Millisecond)
	if !ok {
		t.Fatal("speed unknown on full buffer")
	}
	if math.Abs(speed-10.0) > 1e-9 {
		t.Errorf("speed = %f, want 10.0 (window must exclude evicted samples)", speed)
	}
}

func TestHistory_Clear(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	h := NewHistory(10)
	for i := 0; i < 6; i++ {
		h.Push(base.Add(time.Duration(i)*100*time.Millisecond), 0.5)
	}
	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", h.Len())
	}
	if _, ok := h.Speed(4, 50*time.Millisecond); ok {
		t.Error("speed known after Clear, want unknown")
	}
}
