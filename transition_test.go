package glide

import (
	"math"
	"testing"
)

func TestTransitionProgressWindow(t *testing.T) {
	tr := newTransition(Linear, Lerp[float64], 1, 3, 0.0, 10.0, 0.0, 1)

	if p := tr.Progress(0.5); p != 0 {
		t.Errorf("progress before start = %f, want 0", p)
	}
	if p := tr.Progress(2); math.Abs(p-0.5) > 1e-12 {
		t.Errorf("progress at midpoint = %f, want 0.5", p)
	}
	if p := tr.Progress(3); p != 1 {
		t.Errorf("progress at end = %f, want 1", p)
	}
	if p := tr.Progress(99); p != 1 {
		t.Errorf("progress after end = %f, want 1", p)
	}
	if v := tr.Value(2.5); math.Abs(v-7.5) > 1e-12 {
		t.Errorf("value = %f, want 7.5", v)
	}
	if tr.Finished(2.999) {
		t.Error("should not be finished before the end")
	}
	if !tr.Finished(3) {
		t.Error("should be finished at the end")
	}
}

func TestTransitionProgressMonotonic(t *testing.T) {
	for _, c := range []Curve{Linear, Ease, EaseIn, EaseOut, EaseInOut, StepEnd} {
		tr := newTransition(c, Lerp[float64], 0.2, 1.2, 0.0, 1.0, 0.0, 1)
		prev := -1.0
		for now := 0.0; now <= 1.5; now += 0.01 {
			p := tr.Progress(now)
			if p < prev-1e-9 {
				t.Fatalf("progress decreased at %f: %f < %f", now, p, prev)
			}
			if p < 0 || p > 1 {
				t.Fatalf("progress %f out of range at %f", p, now)
			}
			prev = p
		}
	}
}

func TestTransitionZeroLengthWindow(t *testing.T) {
	tr := newTransition(Linear, Lerp[float64], 2, 2, 0.0, 10.0, 0.0, 1)

	if p := tr.Progress(1.9); p != 0 {
		t.Errorf("progress before instant = %f, want 0", p)
	}
	if p := tr.Progress(2); p != 1 {
		t.Errorf("progress at instant = %f, want 1", p)
	}
	if !tr.Finished(2) {
		t.Error("zero-length window should be finished at its instant")
	}
	if v := tr.Value(2); v != 10 {
		t.Errorf("value at instant = %f, want 10", v)
	}
}

func TestTransitionPanicsOnInvertedWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for end before start")
		}
	}()
	newTransition(Linear, Lerp[float64], 2, 1, 0.0, 1.0, 0.0, 1)
}
