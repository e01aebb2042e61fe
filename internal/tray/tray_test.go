package tray

import (
	"testing"

	"github.com/ayusman/kido/internal/classifier"
)

func TestNew_StartsDisabled(t *testing.T) {
	tr := New()

	if tr.IsEnabled() {
		t.Error("a fresh tray must report navigation disabled")
	}

	if got := tr.toggleTitle(); got != "○ Disabled" {
		t.Errorf("toggleTitle() = %q, want %q", got, "○ Disabled")
	}
}

func TestToggleTitle_TracksState(t *testing.T) {
	tr := New()

	tr.enabled = true
	if got := tr.toggleTitle(); got != "● Enabled" {
		t.Errorf("toggleTitle() = %q, want %q", got, "● Enabled")
	}

	tr.enabled = false
	if got := tr.toggleTitle(); got != "○ Disabled" {
		t.Errorf("toggleTitle() = %q, want %q", got, "○ Disabled")
	}
}

func TestHandleGesture_BeforeMenuReady(t *testing.T) {
	tr := New()

	// Gestures can arrive before systray has built the menu; they must
	// not panic and must still be remembered for deduplication.
	tr.HandleGesture(classifier.GestureOrbit, nil)

	if tr.lastShown != classifier.GestureOrbit {
		t.Errorf("lastShown = %q, want %q", tr.lastShown, classifier.GestureOrbit)
	}

	// Idle ticks never overwrite the last meaningful gesture.
	tr.HandleGesture(classifier.GestureIdle, nil)
	if tr.lastShown != classifier.GestureOrbit {
		t.Errorf("lastShown = %q after idle tick, want %q", tr.lastShown, classifier.GestureOrbit)
	}
}
