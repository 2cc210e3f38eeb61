package glide

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultState is the name a Group registers its default state under.
const DefaultState = "default"

var (
	// ErrUnknownProperty is returned when a state sets a property the
	// default state does not define.
	ErrUnknownProperty = errors.New("glide: property not in default state")
	// ErrMissingProperty is returned when a property has no binding or no
	// default target.
	ErrMissingProperty = errors.New("glide: missing property")
	// ErrDuplicateProperty is returned when two bindings share a name.
	ErrDuplicateProperty = errors.New("glide: duplicate property")
	// ErrTypeMismatch is returned when a target value does not fit the
	// bound property's value type.
	ErrTypeMismatch = errors.New("glide: value type mismatch")
)

// Group binds a set of properties on one host to a registry of named states
// and moves the properties whenever the selected state changes. A Group is
// not safe for concurrent use; drive it from the frame loop.
type Group struct {
	props    map[string]Animated
	order    []string
	states   map[string]*State
	defaults *State
	current  string
	clock    Clock
	debug    bool
}

// NewGroup binds props to the targets of defaultState. Every property the
// default state defines needs exactly one binding and every binding needs a
// default target. The default state is registered as DefaultState and
// selected.
func NewGroup(defaultState *State, props ...Animated) (*Group, error) {
	if defaultState == nil {
		defaultState = NewState()
	}
	g := &Group{
		props:    make(map[string]Animated, len(props)),
		states:   make(map[string]*State),
		defaults: defaultState,
		clock:    SystemClock,
	}
	for _, p := range props {
		name := p.Name()
		if _, ok := g.props[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProperty, name)
		}
		g.props[name] = p
		g.order = append(g.order, name)
	}
	sort.Strings(g.order)

	for _, name := range defaultState.Names() {
		if _, ok := g.props[name]; !ok {
			return nil, fmt.Errorf("%w: no binding for %q", ErrMissingProperty, name)
		}
	}
	if err := g.validate(DefaultState, defaultState); err != nil {
		return nil, err
	}

	g.states[DefaultState] = defaultState
	g.SetState(DefaultState)
	return g, nil
}

// validate checks that s has a target for every bound property, defines
// nothing the group does not bind, and that every value fits its property.
func (g *Group) validate(name string, s *State) error {
	for _, prop := range s.Names() {
		if _, ok := g.props[prop]; !ok {
			return fmt.Errorf("%w: state %q sets %q", ErrUnknownProperty, name, prop)
		}
	}
	for _, prop := range g.order {
		t, ok := s.Lookup(prop)
		if !ok {
			return fmt.Errorf("%w: state %q has no target for %q", ErrMissingProperty, name, prop)
		}
		if err := g.props[prop].accepts(t.Value); err != nil {
			return fmt.Errorf("state %q: %w", name, err)
		}
	}
	return nil
}

// AddState registers state under name after filling its unset properties
// from the default state. Registering a name again replaces the old state.
//
// The inherited targets are written into state itself, so a State value
// belongs to one group: registering it with a second group leaves it
// holding the first group's defaults. Build a fresh State per group, as
// sheet.Sheet.States does.
func (g *Group) AddState(name string, state *State) error {
	if state == nil {
		return fmt.Errorf("glide: state %q is nil", name)
	}
	probe := state.clone()
	probe.Inherit(g.defaults)
	if err := g.validate(name, probe); err != nil {
		return err
	}
	state.Inherit(g.defaults)
	g.states[name] = state
	return nil
}

// AddStates registers several states, in name order. It stops at the first
// error; states before it stay registered.
func (g *Group) AddStates(states map[string]*State) error {
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := g.AddState(name, states[name]); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceStates swaps the whole registry for defaultState plus states, for
// example after a stylesheet reload. Nothing changes unless every state is
// valid. Running transitions continue; the current state is selected again
// from the new registry, or DefaultState if it no longer exists.
func (g *Group) ReplaceStates(defaultState *State, states map[string]*State) error {
	if defaultState == nil {
		return fmt.Errorf("glide: nil default state")
	}
	if err := g.validate(DefaultState, defaultState); err != nil {
		return err
	}
	next := map[string]*State{DefaultState: defaultState}
	for name, s := range states {
		if name == DefaultState {
			continue
		}
		c := s.clone()
		c.Inherit(defaultState)
		if err := g.validate(name, c); err != nil {
			return err
		}
		next[name] = c
	}

	g.defaults = defaultState
	g.states = next
	current := g.current
	if _, ok := next[current]; !ok {
		current = DefaultState
	}
	g.SetState(current)
	return nil
}

// SetState selects the named state. Properties pick up their new targets on
// the next Update. SetState panics if name was never registered.
func (g *Group) SetState(name string) {
	s, ok := g.states[name]
	if !ok {
		panic(fmt.Sprintf("glide: unknown state %q", name))
	}
	if g.debug && name != g.current {
		debugf("state %q -> %q", g.current, name)
	}
	g.current = name
	for _, prop := range g.order {
		t, _ := s.Lookup(prop)
		if err := g.props[prop].setTarget(t.Value, t.Data); err != nil {
			// validate rejects mismatches before a state is registered.
			panic(err)
		}
	}
}

// CurrentState returns the name of the selected state.
func (g *Group) CurrentState() string { return g.current }

// State returns the registered state called name.
func (g *Group) State(name string) (*State, bool) {
	s, ok := g.states[name]
	return s, ok
}

// StateNames returns the registered state names, sorted.
func (g *Group) StateNames() []string {
	names := make([]string, 0, len(g.states))
	for name := range g.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property returns the bound property called name, or nil.
func (g *Group) Property(name string) Animated { return g.props[name] }

// SetClock replaces the clock read by Update for the group and every bound
// property.
func (g *Group) SetClock(c Clock) {
	g.clock = c
	for _, p := range g.props {
		p.setClock(c)
	}
}

// SetDebug turns on logging of state switches and retarget decisions to
// stderr.
func (g *Group) SetDebug(on bool) {
	g.debug = on
	for _, p := range g.props {
		p.setDebug(on)
	}
}

// Update reads the clock once and advances every property to that time.
func (g *Group) Update() {
	g.UpdateAt(g.clock.Now())
}

// UpdateAt advances every property to now.
func (g *Group) UpdateAt(now float64) {
	for _, prop := range g.order {
		g.props[prop].UpdateAt(now)
	}
}

// Running reports whether any property is still interpolating at the clock's
// current time.
func (g *Group) Running() bool {
	now := g.clock.Now()
	for _, p := range g.props {
		if p.Running(now) {
			return true
		}
	}
	return false
}
