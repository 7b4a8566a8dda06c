package input

import "fmt"

// ActionMap lists the physical controls that satisfy one logical action.
// The three collections are unordered and any may be empty; an action whose
// map is entirely empty never fires. "Pressed" for the action is the OR of
// every control across all three collections.
type ActionMap struct {
	Keys    []KeyControl
	Pointer []PointerControl
	Pad     []PadControl
}

// Bindings owns one ActionMap per Action. It is built once and read-only
// afterwards; construct it explicitly and hand it to a Manager rather than
// sharing a process-wide table, so separate input contexts can coexist.
type Bindings struct {
	maps [actionCount]ActionMap
}

// Map returns the ActionMap for a. Passing a value outside the closed
// enumeration is a programmer error and panics.
func (b *Bindings) Map(a Action) *ActionMap {
	if !a.Valid() {
		panic(fmt.Sprintf("input: unknown action %d", int(a)))
	}
	return &b.maps[a]
}

// Bind appends controls to a's map. Intended for table construction;
// Bindings are not meant to change once a Manager starts reading them.
func (b *Bindings) Bind(a Action, controls ...Control) {
	m := b.Map(a)
	for _, c := range controls {
		switch c := c.(type) {
		case KeyControl:
			m.Keys = append(m.Keys, c)
		case PointerControl:
			m.Pointer = append(m.Pointer, c)
		case PadControl:
			m.Pad = append(m.Pad, c)
		default:
			panic(fmt.Sprintf("input: unknown control type %T", c))
		}
	}
}
