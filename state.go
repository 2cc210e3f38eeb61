package glide

import "sort"

// Target is the value and timing a state assigns to one property.
// Inherited targets are shared between states and must not be modified.
type Target struct {
	Value any
	Data  *TransitionData
}

// Entry names one property of a state for NewState.
type Entry struct {
	Name  string
	Value any
	Data  *TransitionData
}

// State is a named bundle of targets, like a CSS class that sets several
// properties at once. Register it with Group.AddState.
type State struct {
	targets map[string]*Target
}

// NewState builds a state from entries. Later entries replace earlier ones
// with the same name.
func NewState(entries ...Entry) *State {
	s := &State{targets: make(map[string]*Target, len(entries))}
	for _, e := range entries {
		s.AddProperty(e.Name, e.Value, e.Data)
	}
	return s
}

// AddProperty sets the target for name. A nil data means NoTransition.
func (s *State) AddProperty(name string, value any, data *TransitionData) *State {
	if data == nil {
		data = NoTransition
	}
	if s.targets == nil {
		s.targets = make(map[string]*Target)
	}
	s.targets[name] = &Target{Value: value, Data: data}
	return s
}

// Inherit copies every target of base that s does not define. The copied
// targets are shared with base, not cloned.
func (s *State) Inherit(base *State) {
	if base == nil {
		return
	}
	if s.targets == nil {
		s.targets = make(map[string]*Target, len(base.targets))
	}
	for name, t := range base.targets {
		if _, ok := s.targets[name]; !ok {
			s.targets[name] = t
		}
	}
}

// Lookup returns the target for name.
func (s *State) Lookup(name string) (*Target, bool) {
	t, ok := s.targets[name]
	return t, ok
}

// Names returns the defined property names, sorted.
func (s *State) Names() []string {
	names := make([]string, 0, len(s.targets))
	for name := range s.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined properties.
func (s *State) Len() int { return len(s.targets) }

// clone returns a shallow copy sharing every target.
func (s *State) clone() *State {
	c := &State{targets: make(map[string]*Target, len(s.targets))}
	for name, t := range s.targets {
		c.targets[name] = t
	}
	return c
}
