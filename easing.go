package glide

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves are
// stateless and may be shared by any number of TransitionData values.
type Curve interface {
	Solve(progress float64) float64
}

// CurveFunc adapts a plain function to the Curve interface.
type CurveFunc func(progress float64) float64

// Solve calls f with progress clamped to [0, 1].
func (f CurveFunc) Solve(progress float64) float64 {
	return f(clamp01(progress))
}

type linearCurve struct{}

func (linearCurve) Solve(p float64) float64 { return clamp01(p) }

// Linear is the identity curve.
var Linear Curve = linearCurve{}

// The CSS keyword curves.
var (
	Ease      Curve = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    Curve = CubicBezier(0.42, 0, 1, 1)
	EaseOut   Curve = CubicBezier(0, 0, 0.58, 1)
	EaseInOut Curve = CubicBezier(0.42, 0, 0.58, 1)
	StepStart Curve = Steps(1, false)
	StepEnd   Curve = Steps(1, true)
)

// FromTween adapts a gween easing function. The tween is evaluated over a
// unit duration from 0 to 1, so back and elastic curves keep their overshoot.
func FromTween(fn ease.TweenFunc) Curve {
	return CurveFunc(func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	})
}

// bezierCurve is a CSS cubic-bezier timing function with fixed endpoints
// (0,0) and (1,1).
type bezierCurve struct {
	x1, y1, x2, y2 float64
}

// CubicBezier returns the CSS cubic-bezier(x1, y1, x2, y2) timing function.
// x1 and x2 are clamped to [0, 1] so the curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return bezierCurve{clamp01(x1), y1, clamp01(x2), y2}
}

func bezierAxis(t, a, b float64) float64 {
	// B(t) with P0=0, P3=1 and control values a, b.
	u := 1 - t
	return 3*u*u*t*a + 3*u*t*t*b + t*t*t
}

func bezierSlope(t, a, b float64) float64 {
	u := 1 - t
	return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
}

func (c bezierCurve) Solve(p float64) float64 {
	p = clamp01(p)
	if p == 0 || p == 1 {
		return p
	}

	// Newton-Raphson on x(t) = p, falling back to bisection when the slope
	// flattens out.
	t := p
	for i := 0; i < 8; i++ {
		x := bezierAxis(t, c.x1, c.x2) - p
		if math.Abs(x) < 1e-7 {
			return bezierAxis(t, c.y1, c.y2)
		}
		d := bezierSlope(t, c.x1, c.x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t = clamp01(t - x/d)
	}

	lo, hi := 0.0, 1.0
	t = p
	for i := 0; i < 50; i++ {
		x := bezierAxis(t, c.x1, c.x2)
		if math.Abs(x-p) < 1e-7 {
			break
		}
		if x < p {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezierAxis(t, c.y1, c.y2)
}

// stepCurve is the CSS steps() timing function.
type stepCurve struct {
	n       int
	jumpEnd bool
}

// Steps returns the CSS steps(n) timing function. With jumpEnd the first
// jump happens at the end of the first interval (CSS "end"), otherwise at
// the start (CSS "start"). n below 1 is treated as 1.
func Steps(n int, jumpEnd bool) Curve {
	if n < 1 {
		n = 1
	}
	return stepCurve{n: n, jumpEnd: jumpEnd}
}

func (c stepCurve) Solve(p float64) float64 {
	p = clamp01(p)
	step := math.Floor(p * float64(c.n))
	if !c.jumpEnd {
		step++
	}
	return math.Min(step/float64(c.n), 1)
}

// tweenCurves maps the gween easing functions to their curve names.
var tweenCurves = map[string]ease.TweenFunc{
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

var keywordCurves = map[string]Curve{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"step-start":  StepStart,
	"step-end":    StepEnd,
}

// CurveNames returns every name ParseCurve accepts without arguments, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(keywordCurves)+len(tweenCurves))
	for name := range keywordCurves {
		names = append(names, name)
	}
	for name := range tweenCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseCurve resolves a curve by name. It accepts the CSS keywords
// (linear, ease, ease-in, ease-out, ease-in-out, step-start, step-end), the
// CSS functions cubic-bezier(x1, y1, x2, y2) and steps(n[, start|end]), and
// the gween curve names such as outBounce or inOutSine.
func ParseCurve(name string) (Curve, error) {
	name = strings.TrimSpace(name)
	if c, ok := keywordCurves[name]; ok {
		return c, nil
	}
	if fn, ok := tweenCurves[name]; ok {
		return FromTween(fn), nil
	}

	fn, args, ok := splitCall(name)
	if !ok {
		return nil, fmt.Errorf("glide: unknown easing curve %q", name)
	}
	switch fn {
	case "cubic-bezier":
		if len(args) != 4 {
			return nil, fmt.Errorf("glide: cubic-bezier needs 4 arguments, got %d", len(args))
		}
		var v [4]float64
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("glide: cubic-bezier argument %q: %w", a, err)
			}
			v[i] = f
		}
		if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
			return nil, fmt.Errorf("glide: cubic-bezier x values must be in [0, 1]: %q", name)
		}
		return CubicBezier(v[0], v[1], v[2], v[3]), nil
	case "steps":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("glide: steps needs 1 or 2 arguments, got %d", len(args))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("glide: steps count %q must be a positive integer", args[0])
		}
		jumpEnd := true
		if len(args) == 2 {
			switch args[1] {
			case "end", "jump-end":
			case "start", "jump-start":
				jumpEnd = false
			default:
				return nil, fmt.Errorf("glide: unsupported steps position %q", args[1])
			}
		}
		return Steps(n, jumpEnd), nil
	}
	return nil, fmt.Errorf("glide: unknown easing function %q", fn)
}

// splitCall splits "fn(a, b)" into its name and trimmed arguments.
func splitCall(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	fn := strings.TrimSpace(s[:open])
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if inner == "" {
		return fn, nil, true
	}
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return fn, args, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
