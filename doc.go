// Package glide animates values the way CSS transitions do.
//
// A property moves from its current value toward a target over a duration,
// after an optional delay, along an easing curve. When the target changes
// before the property arrives, glide follows the CSS Transitions rules for
// interrupted transitions: heading back to where the transition came from
// runs for only as long as the interrupted transition had been running, and
// any other new target restarts at full length from the current value.
//
// # Quick start
//
// Bind the host's fields, describe the states, and drive the group once per
// frame:
//
//	type Switch struct {
//		SliderX float64
//		Track   glide.Color
//		anim    *glide.Group
//	}
//
//	fade := glide.NewTransitionData(0.25, glide.Ease, 0)
//	off := glide.NewState(
//		glide.Entry{Name: "slider_x", Value: 2.0, Data: fade},
//		glide.Entry{Name: "track", Value: glide.RGB(215, 215, 215), Data: fade},
//	)
//	on := glide.NewState(
//		glide.Entry{Name: "slider_x", Value: 18.0, Data: fade},
//		glide.Entry{Name: "track", Value: glide.RGB(112, 192, 0), Data: fade},
//	)
//
//	s.anim, err = glide.NewGroup(off,
//		glide.NewNumber("slider_x", glide.Field(&s.SliderX)),
//		glide.NewColor("track", glide.Field(&s.Track)),
//	)
//	err = s.anim.AddState("checked", on)
//
//	// every frame
//	s.anim.SetState("checked")
//	s.anim.Update()
//
// # Timing
//
// [TransitionData] holds duration, delay and curve. Build it from seconds
// with [NewTransitionData] or from CSS strings with [ParseTransitionData] and
// [ParseTransition]:
//
//	d, err := glide.ParseTransition("0.25s ease-in-out 50ms")
//
// Curves implement [Curve]. The CSS keywords, cubic-bezier() and steps() are
// built in, and every [gween] easing function is available through
// [FromTween] or by name through [ParseCurve].
//
// # States
//
// A [State] maps property names to a target value and timing. States
// registered with a [Group] inherit any property they leave out from the
// group's default state, so a state only names what it changes. Selecting a
// state with [Group.SetState] does not move anything by itself; the next
// [Group.Update] starts, reverses or restarts transitions as needed.
//
// # Time
//
// Groups read a [Clock] once per update. [SystemClock] is monotonic wall
// time; [ManualClock] only moves when advanced, for fixed-step loops and
// tests.
//
// There is no global animation manager: hosts call Update themselves, and a
// Group must only be used from one goroutine.
//
// [gween]: https://github.com/tanema/gween
package glide
