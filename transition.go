package glide

import "fmt"

// LerpFunc interpolates between a and b. t is eased progress and may leave
// [0, 1] for curves that overshoot.
type LerpFunc[V any] func(t float64, a, b V) V

// Transition is one running interpolation between two values over a fixed
// time window. It is never modified after construction: a retarget replaces
// it with a new Transition.
type Transition[V any] struct {
	curve      Curve
	lerp       LerpFunc[V]
	startTime  float64
	endTime    float64
	startValue V
	endValue   V

	// reverseStart is compared against later targets to detect a reversal
	// back toward where this transition came from.
	reverseStart V
	// shortFactor scales the configured duration, in [0, 1].
	shortFactor float64
}

func newTransition[V any](curve Curve, lerp LerpFunc[V], startTime, endTime float64,
	startValue, endValue, reverseStart V, shortFactor float64) *Transition[V] {
	if endTime < startTime {
		panic(fmt.Sprintf("glide: transition ends at %g before it starts at %g", endTime, startTime))
	}
	return &Transition[V]{
		curve:        curve,
		lerp:         lerp,
		startTime:    startTime,
		endTime:      endTime,
		startValue:   startValue,
		endValue:     endValue,
		reverseStart: reverseStart,
		shortFactor:  shortFactor,
	}
}

// Progress returns eased progress at now: 0 during the delay, 1 once now has
// reached the end time. A zero-length window reads as finished at its instant.
func (t *Transition[V]) Progress(now float64) float64 {
	if now >= t.endTime {
		return 1
	}
	if now < t.startTime {
		return 0
	}
	return t.curve.Solve((now - t.startTime) / (t.endTime - t.startTime))
}

// Value returns the interpolated value at now.
func (t *Transition[V]) Value(now float64) V {
	return t.lerp(t.Progress(now), t.startValue, t.endValue)
}

// Finished reports whether now has reached the end time.
func (t *Transition[V]) Finished(now float64) bool {
	return now >= t.endTime
}

// StartTime returns the time interpolation begins, after any delay.
func (t *Transition[V]) StartTime() float64 { return t.startTime }

// EndTime returns the time the end value is reached.
func (t *Transition[V]) EndTime() float64 { return t.endTime }

// Duration returns EndTime() - StartTime().
func (t *Transition[V]) Duration() float64 { return t.endTime - t.startTime }

// StartValue returns the value interpolated from.
func (t *Transition[V]) StartValue() V { return t.startValue }

// EndValue returns the value interpolated to.
func (t *Transition[V]) EndValue() V { return t.endValue }

// ReverseStartValue returns the value that, if targeted next, counts as a
// reversal of this transition.
func (t *Transition[V]) ReverseStartValue() V { return t.reverseStart }

// ShortFactor returns the fraction of the configured duration this
// transition runs for. Fresh transitions have 1.
func (t *Transition[V]) ShortFactor() float64 { return t.shortFactor }
