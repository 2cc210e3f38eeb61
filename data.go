package glide

import (
	"fmt"
	"strings"
	"time"
)

// TransitionData is the timing configuration of a transition: duration,
// delay and easing curve. It is immutable once built and may be shared by any
// number of properties and states.
type TransitionData struct {
	duration float64
	delay    float64
	curve    Curve
	combined float64
}

// NoTransition applies targets immediately. States use it for properties
// added without timing configuration.
var NoTransition = NewTransitionData(0, Linear, 0)

// NewTransitionData returns timing configuration from seconds. Negative
// durations are clamped to 0. The delay is kept as given: a negative delay
// starts the transition part of the way through. A nil curve means Ease.
func NewTransitionData(duration float64, curve Curve, delay float64) *TransitionData {
	if duration < 0 {
		duration = 0
	}
	if curve == nil {
		curve = Ease
	}
	return &TransitionData{
		duration: duration,
		delay:    delay,
		curve:    curve,
		combined: delay + duration,
	}
}

// ParseTransitionData builds timing configuration from CSS-style strings,
// for example ParseTransitionData("0.25s", "ease", "100ms"). Empty strings
// fall back to "0s" for times and "ease" for the curve.
func ParseTransitionData(duration, curve, delay string) (*TransitionData, error) {
	d, err := parseTimeOrZero(duration)
	if err != nil {
		return nil, err
	}
	c := Ease
	if strings.TrimSpace(curve) != "" {
		if c, err = ParseCurve(curve); err != nil {
			return nil, err
		}
	}
	dl, err := parseTimeOrZero(delay)
	if err != nil {
		return nil, err
	}
	return NewTransitionData(d, c, dl), nil
}

// ParseTransition parses the CSS transition shorthand without the property
// name: "<duration> [<curve>] [<delay>]" in any order, for example
// "0.25s ease-in 50ms". The first time is the duration, the second the delay.
func ParseTransition(s string) (*TransitionData, error) {
	var (
		times    []float64
		curve    Curve
		curveSet bool
	)
	for _, tok := range splitShorthand(s) {
		if t, err := ParseTime(tok); err == nil {
			if len(times) == 2 {
				return nil, fmt.Errorf("glide: transition %q has more than two times", s)
			}
			times = append(times, t)
			continue
		}
		c, err := ParseCurve(tok)
		if err != nil {
			return nil, fmt.Errorf("glide: transition %q: %w", s, err)
		}
		if curveSet {
			return nil, fmt.Errorf("glide: transition %q has more than one curve", s)
		}
		curve, curveSet = c, true
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("glide: transition %q has no duration", s)
	}
	var delay float64
	if len(times) == 2 {
		delay = times[1]
	}
	return NewTransitionData(times[0], curve, delay), nil
}

// splitShorthand splits on whitespace outside parentheses so that
// "cubic-bezier(0, 0, 1, 1)" stays one token.
func splitShorthand(s string) []string {
	var (
		toks  []string
		depth int
		start = -1
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if start >= 0 {
				toks = append(toks, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, s[start:])
	}
	return toks
}

// ParseTime parses a CSS time such as "0.25s", "250ms" or "-1s" into seconds.
// Go duration units ("1m30s") are accepted as well. Unitless values other
// than "0" are rejected.
func ParseTime(s string) (float64, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("glide: invalid time %q: %w", s, err)
	}
	return d.Seconds(), nil
}

func parseTimeOrZero(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ParseTime(s)
}

// Duration returns the transition length in seconds, never negative.
func (d *TransitionData) Duration() float64 { return d.duration }

// Delay returns the delay in seconds. It may be negative.
func (d *TransitionData) Delay() float64 { return d.delay }

// Curve returns the easing curve.
func (d *TransitionData) Curve() Curve { return d.curve }

// CombinedDuration returns Delay() + Duration(). When it is not positive the
// target is applied immediately.
func (d *TransitionData) CombinedDuration() float64 { return d.combined }

// String formats the duration and delay in seconds.
func (d *TransitionData) String() string {
	return fmt.Sprintf("%gs %gs", d.duration, d.delay)
}
