// Package sheet loads glide states from YAML stylesheets.
//
// A sheet declares the kind of every property and the states that set them:
//
//	properties:
//	  slider_left: number
//	  track_color: color
//	states:
//	  default:
//	    slider_left: {value: 2, transition: "0.25s ease"}
//	    track_color: {value: "#d7d7d7", transition: "0.25s ease"}
//	  checked:
//	    slider_left: {value: 18, transition: "0.25s ease"}
//	    track_color: "#70c000"
//
// An entry is either a mapping with a value and an optional transition in
// CSS shorthand, or a bare value applied without a transition. Numbers
// become float64 and colors become glide.Color, parsed as CSS colors. The
// default state must set every property; other states inherit what they
// leave out.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phanxgames/glide"
	"gopkg.in/yaml.v3"
)

// Kind is the value type of a sheet property.
type Kind string

const (
	KindNumber Kind = "number"
	KindColor  Kind = "color"
)

type file struct {
	Properties map[string]Kind             `yaml:"properties" validate:"required,min=1,dive,keys,required,endkeys,oneof=number color"`
	States     map[string]map[string]entry `yaml:"states" validate:"required,min=1,dive,keys,required,endkeys,required"`
}

type entry struct {
	Value      any    `yaml:"value"`
	Transition string `yaml:"transition"`
}

// UnmarshalYAML accepts a bare scalar as shorthand for {value: scalar}.
func (e *entry) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		type plain entry
		return n.Decode((*plain)(e))
	}
	return n.Decode(&e.Value)
}

var validate = validator.New()

// Sheet is a parsed stylesheet.
type Sheet struct {
	kinds  map[string]Kind
	states map[string]*glide.State
}

// Parse decodes and checks a sheet.
func Parse(data []byte) (*Sheet, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("sheet: empty document")
		}
		return nil, fmt.Errorf("sheet: decode: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("sheet: %s", describe(err))
	}

	def, ok := f.States[glide.DefaultState]
	if !ok {
		return nil, fmt.Errorf("sheet: no %q state", glide.DefaultState)
	}
	for _, name := range sortedKeys(f.Properties) {
		if _, ok := def[name]; !ok {
			return nil, fmt.Errorf("sheet: %q state does not set %q", glide.DefaultState, name)
		}
	}

	s := &Sheet{
		kinds:  f.Properties,
		states: make(map[string]*glide.State, len(f.States)),
	}
	timings := make(map[string]*glide.TransitionData)
	for _, stateName := range sortedKeys(f.States) {
		entries := f.States[stateName]
		st := glide.NewState()
		for _, prop := range sortedKeys(entries) {
			e := entries[prop]
			kind, ok := f.Properties[prop]
			if !ok {
				return nil, fmt.Errorf("sheet: state %q sets undeclared property %q", stateName, prop)
			}
			v, err := convert(kind, e.Value)
			if err != nil {
				return nil, fmt.Errorf("sheet: state %q, property %q: %w", stateName, prop, err)
			}
			data, err := timing(timings, e.Transition)
			if err != nil {
				return nil, fmt.Errorf("sheet: state %q, property %q: %w", stateName, prop, err)
			}
			st.AddProperty(prop, v, data)
		}
		s.states[stateName] = st
	}
	return s, nil
}

// Load reads a sheet from r.
func Load(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sheet: read: %w", err)
	}
	return Parse(data)
}

// LoadFile reads the sheet at path.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// timing parses a transition shorthand, sharing one TransitionData per
// distinct string.
func timing(cache map[string]*glide.TransitionData, s string) (*glide.TransitionData, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return glide.NoTransition, nil
	}
	if d, ok := cache[s]; ok {
		return d, nil
	}
	d, err := glide.ParseTransition(s)
	if err != nil {
		return nil, err
	}
	cache[s] = d
	return d, nil
}

func convert(kind Kind, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("missing value")
	}
	switch kind {
	case KindNumber:
		switch n := v.(type) {
		case int:
			return float64(n), nil
		case float64:
			return n, nil
		}
		return nil, fmt.Errorf("want a number, got %T %v", v, v)
	case KindColor:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("want a color string, got %T %v", v, v)
		}
		return glide.ParseColor(s)
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

// describe flattens validator errors into one line.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "file.")
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s fails %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Kind returns the declared kind of a property.
func (s *Sheet) Kind(name string) (Kind, bool) {
	k, ok := s.kinds[name]
	return k, ok
}

// PropertyNames returns the declared property names, sorted.
func (s *Sheet) PropertyNames() []string { return sortedKeys(s.kinds) }

// StateNames returns every state name including the default, sorted.
func (s *Sheet) StateNames() []string { return sortedKeys(s.states) }

// Default returns the default state.
func (s *Sheet) Default() *glide.State { return s.states[glide.DefaultState] }

// State returns the named state as written in the sheet, before any
// inheritance.
func (s *Sheet) State(name string) (*glide.State, bool) {
	st, ok := s.states[name]
	return st, ok
}

// States returns the states other than the default. Each call builds fresh
// State values, so the result can be registered with any number of groups.
func (s *Sheet) States() map[string]*glide.State {
	out := make(map[string]*glide.State, len(s.states))
	for name, st := range s.states {
		if name == glide.DefaultState {
			continue
		}
		c := glide.NewState()
		for _, prop := range st.Names() {
			t, _ := st.Lookup(prop)
			c.AddProperty(prop, t.Value, t.Data)
		}
		out[name] = c
	}
	return out
}

// Group binds props to the sheet's default state and registers every other
// state.
func (s *Sheet) Group(props ...glide.Animated) (*glide.Group, error) {
	g, err := glide.NewGroup(s.Default(), props...)
	if err != nil {
		return nil, err
	}
	if err := g.AddStates(s.States()); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply swaps g's states for the sheet's, keeping running transitions.
func (s *Sheet) Apply(g *glide.Group) error {
	return g.ReplaceStates(s.Default(), s.States())
}
