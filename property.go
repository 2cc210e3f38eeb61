package glide

import (
	"fmt"
	"math"
)

// Slot is read and write access to one value on a host object.
type Slot[V any] struct {
	Get func() V
	Set func(V)
}

// Field returns a Slot reading and writing *p.
func Field[V any](p *V) Slot[V] {
	return Slot[V]{
		Get: func() V { return *p },
		Set: func(v V) { *p = v },
	}
}

// Number is the set of types Lerp interpolates.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lerp interpolates linearly between a and b. Integer types round to the
// nearest value. Unsigned types clamp at 0 and their maximum, since
// overshooting curves can carry t outside [0, 1].
func Lerp[N Number](t float64, a, b N) N {
	v := float64(a) + (float64(b)-float64(a))*t
	half := 0.5
	if N(half) == 0 {
		v = math.Round(v)
	}
	var zero N
	if hi := zero - 1; hi > zero {
		if v <= 0 {
			return zero
		}
		if v >= float64(hi) {
			return hi
		}
	}
	return N(v)
}

// Animated is a property a Group can drive. It is implemented by
// *Property[V] for every value type V.
type Animated interface {
	// Name returns the property name states refer to.
	Name() string
	// Update advances the property to the time on its clock.
	Update()
	// UpdateAt advances the property to now.
	UpdateAt(now float64)
	// Running reports whether a transition is still interpolating at now.
	Running(now float64) bool

	accepts(value any) error
	setTarget(value any, data *TransitionData) error
	setClock(c Clock)
	setDebug(on bool)
}

// Property drives one value on a host object toward a target, starting,
// reversing and restarting transitions the way CSS transitions do when the
// target changes. Only one Property may be bound to a given slot.
type Property[V comparable] struct {
	name  string
	slot  Slot[V]
	lerp  LerpFunc[V]
	clock Clock
	debug bool

	transition *Transition[V]
	target     V
	hasTarget  bool
	data       *TransitionData
}

// NewProperty binds name to slot, interpolating with lerp.
func NewProperty[V comparable](name string, slot Slot[V], lerp LerpFunc[V]) *Property[V] {
	if slot.Get == nil || slot.Set == nil {
		panic(fmt.Sprintf("glide: property %q needs both a getter and a setter", name))
	}
	if lerp == nil {
		panic(fmt.Sprintf("glide: property %q needs an interpolation function", name))
	}
	return &Property[V]{
		name:  name,
		slot:  slot,
		lerp:  lerp,
		clock: SystemClock,
		data:  NoTransition,
	}
}

// NewNumber binds a numeric slot interpolated with Lerp.
func NewNumber[N Number](name string, slot Slot[N]) *Property[N] {
	return NewProperty(name, slot, Lerp[N])
}

// NewColor binds a Color slot interpolated with LerpColor.
func NewColor(name string, slot Slot[Color]) *Property[Color] {
	return NewProperty(name, slot, LerpColor)
}

// Name returns the property name.
func (p *Property[V]) Name() string { return p.name }

// Value returns the host's current value.
func (p *Property[V]) Value() V { return p.slot.Get() }

// Target returns the value the property is heading to.
func (p *Property[V]) Target() V { return p.target }

// Data returns the timing configuration used for the next update.
func (p *Property[V]) Data() *TransitionData { return p.data }

// Transition returns the current transition, or nil when none is held. A
// finished transition is kept until the next retarget.
func (p *Property[V]) Transition() *Transition[V] { return p.transition }

// SetClock replaces the clock read by Update.
func (p *Property[V]) SetClock(c Clock) { p.clock = c }

// SetTarget sets the value to move to and the timing to use. Nothing
// changes on the host until the next Update. A nil data means NoTransition.
func (p *Property[V]) SetTarget(v V, data *TransitionData) {
	if data == nil {
		data = NoTransition
	}
	p.target = v
	p.hasTarget = true
	p.data = data
}

// Running reports whether a transition is interpolating at now.
func (p *Property[V]) Running(now float64) bool {
	return p.transition != nil && !p.transition.Finished(now)
}

// Update advances the property to the time on its clock.
func (p *Property[V]) Update() {
	p.UpdateAt(p.clock.Now())
}

// UpdateAt advances the property to now and writes the result to the host.
func (p *Property[V]) UpdateAt(now float64) {
	if !p.hasTarget {
		return
	}
	data := p.data
	cur := p.slot.Get()

	switch {
	case data.combined <= 0:
		p.slot.Set(p.target)
		p.transition = nil
	case (p.transition == nil || p.transition.Finished(now) && p.transition.endValue != p.target) && cur != p.target:
		p.start(now, data, cur)
	case p.transition != nil && p.transition.endValue != p.target:
		p.retarget(now, data, cur)
	}

	if tr := p.transition; tr != nil {
		if tr.Finished(now) {
			p.slot.Set(tr.endValue)
		} else {
			p.slot.Set(tr.Value(now))
		}
	}
}

// start begins a full-length transition from cur to the target.
func (p *Property[V]) start(now float64, data *TransitionData, cur V) {
	start := now + data.delay
	p.transition = newTransition(data.curve, p.lerp, start, start+data.duration,
		cur, p.target, cur, 1)
	if p.debug {
		debugf("%s: start %v -> %v over %gs (delay %gs)", p.name, cur, p.target, data.duration, data.delay)
	}
}

// retarget handles a target change while a transition is held.
func (p *Property[V]) retarget(now float64, data *TransitionData, cur V) {
	old := p.transition
	switch {
	case old.Value(now) == p.target:
		p.transition = nil
		p.slot.Set(p.target)
		if p.debug {
			debugf("%s: already at %v", p.name, p.target)
		}
	case old.reverseStart == p.target:
		factor := old.Progress(now)*old.shortFactor + (1 - old.shortFactor)
		factor = clamp01(math.Abs(factor))

		start := now + data.delay
		if data.delay < 0 {
			start = now + data.delay*factor
		}
		p.transition = newTransition(data.curve, p.lerp, start, start+data.duration*factor,
			cur, p.target, old.endValue, factor)
		if p.debug {
			debugf("%s: reverse %v -> %v, factor %g", p.name, cur, p.target, factor)
		}
	default:
		p.start(now, data, cur)
	}
}

func (p *Property[V]) accepts(value any) error {
	if _, ok := value.(V); !ok {
		var zero V
		return fmt.Errorf("%w: property %q holds %T, got %T", ErrTypeMismatch, p.name, zero, value)
	}
	return nil
}

func (p *Property[V]) setTarget(value any, data *TransitionData) error {
	v, ok := value.(V)
	if !ok {
		return p.accepts(value)
	}
	p.SetTarget(v, data)
	return nil
}

func (p *Property[V]) setClock(c Clock) { p.clock = c }

func (p *Property[V]) setDebug(on bool) { p.debug = on }
