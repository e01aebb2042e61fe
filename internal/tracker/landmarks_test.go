package tracker

import (
	"math"
	"testing"
)

func TestDistance3(t *testing.T) {
	tests := []struct {
		name string
		a, b Landmark
		want float64
	}{
		{
			name: "identical points",
			a:    Landmark{X: 0.5, Y: 0.5, Z: 0.1},
			b:    Landmark{X: 0.5, Y: 0.5, Z: 0.1},
			want: 0,
		},
		{
			name: "unit x",
			a:    Landmark{},
			b:    Landmark{X: 1},
			want: 1,
		},
		{
			name: "3-4-5 triangle",
			a:    Landmark{X: 0, Y: 0},
			b:    Landmark{X: 3, Y: 4},
			want: 5,
		},
		{
			name: "uses depth",
			a:    Landmark{},
			b:    Landmark{X: 1, Y: 2, Z: 2},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance3(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance3() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestHandSnapshot_Centers(t *testing.T) {
	var h HandSnapshot
	h.Landmarks[Wrist] = Landmark{X: 0.5, Y: 0.5}

	// Place fingertips symmetrically around (0.4, 0.6).
	offsets := [][2]float64{{0.1, 0}, {-0.1, 0}, {0, 0.1}, {0, -0.1}, {0, 0}}
	for i, tip := range FingertipIndices {
		h.Landmarks[tip] = Landmark{X: 0.4 + offsets[i][0], Y: 0.6 + offsets[i][1]}
	}

	x, y, z := h.FingertipCenter()
	if math.Abs(x-0.4) > 1e-9 || math.Abs(y-0.6) > 1e-9 || z != 0 {
		t.Errorf("FingertipCenter() = (%f, %f, %f), want (0.4, 0.6, 0)", x, y, z)
	}

	if got := h.Wrist(); got != h.Landmarks[Wrist] {
		t.Errorf("Wrist() = %+v, want %+v", got, h.Landmarks[Wrist])
	}
}

func TestHandSnapshot_PalmCenter(t *testing.T) {
	var h HandSnapshot

	// Wrist and the four finger MCP joints all at the same point.
	for _, i := range []int{Wrist, IndexMCP, MiddleMCP, RingMCP, PinkyMCP} {
		h.Landmarks[i] = Landmark{X: 0.3, Y: 0.7, Z: 0.1}
	}

	x, y, z := h.PalmCenter()
	if math.Abs(x-0.3) > 1e-9 || math.Abs(y-0.7) > 1e-9 || math.Abs(z-0.1) > 1e-9 {
		t.Errorf("PalmCenter() = (%f, %f, %f), want (0.3, 0.7, 0.1)", x, y, z)
	}
}

func TestSyntheticSnapshot_Geometry(t *testing.T) {
	h := SyntheticSnapshot(0.5)

	// Fingertip directions sum to zero, so the fingertip centroid sits
	// on the wrist regardless of openness.
	wrist := h.Wrist()
	for _, openness := range []float64{0.0, 0.3, 0.9} {
		snap := SyntheticSnapshot(openness)
		x, y, _ := snap.FingertipCenter()
		if math.Abs(x-wrist.X) > 1e-9 || math.Abs(y-wrist.Y) > 1e-9 {
			t.Errorf("openness %.1f: FingertipCenter() = (%f, %f), want wrist (%f, %f)",
				openness, x, y, wrist.X, wrist.Y)
		}
	}

	// Knuckles sit at a fixed distance from the wrist.
	for _, knuckle := range KnuckleIndices {
		d := Distance3(wrist, h.Landmarks[knuckle])
		if math.Abs(d-0.12) > 1e-9 {
			t.Errorf("knuckle %d at distance %f from wrist, want 0.12", knuckle, d)
		}
	}
}

func TestTranslateSnapshot(t *testing.T) {
	h := SyntheticSnapshot(0.7)
	moved := TranslateSnapshot(h, 0.1, -0.05)

	for i := 0; i < NumLandmarks; i++ {
		if math.Abs(moved.Landmarks[i].X-h.Landmarks[i].X-0.1) > 1e-9 {
			t.Fatalf("landmark %d X not shifted by 0.1", i)
		}
		if math.Abs(moved.Landmarks[i].Y-h.Landmarks[i].Y+0.05) > 1e-9 {
			t.Fatalf("landmark %d Y not shifted by -0.05", i)
		}
		if moved.Landmarks[i].Z != h.Landmarks[i].Z {
			t.Fatalf("landmark %d Z changed by translation", i)
		}
	}
}
