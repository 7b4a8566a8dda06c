package input

import "github.com/hajimehoshi/ebiten/v2"

// keyCount sizes the keyboard snapshot over the full ebiten key space.
const keyCount = int(ebiten.KeyMax) + 1

// MouseButton identifies a pointer button within a PointerSnapshot.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	mouseButtonCount
)

// PadButton identifies a physical gamepad button within a GamepadSnapshot.
// Directional controls (up/down/left/right) are not listed here: they are
// virtual, resolved from the D-pad and the left stick by the state buffer.
type PadButton int

const (
	PadStart PadButton = iota
	PadBack
	PadA
	PadB
	PadX
	PadY
	PadLeftShoulder
	PadRightShoulder

	padButtonCount
)

// PadDirection identifies one of the four virtual directional controls.
type PadDirection int

const (
	PadUp PadDirection = iota
	PadDown
	PadLeft
	PadRight

	padDirectionCount
)

// Vec2 is a normalized analog stick reading. +Y is up, matching the
// directional-control convention; pollers convert from the host axis
// orientation when necessary.
type Vec2 struct {
	X, Y float64
}

// KeyboardSnapshot is an immutable per-frame capture of every key's state.
type KeyboardSnapshot struct {
	Keys [keyCount]bool
}

// KeyDown reports whether k reads down in this snapshot.
func (s *KeyboardSnapshot) KeyDown(k ebiten.Key) bool {
	if k < 0 || int(k) >= keyCount {
		return false
	}
	return s.Keys[k]
}

// PointerSnapshot is an immutable per-frame capture of the pointer state.
// Wheel is a cumulative value: scroll edges are detected from its
// frame-to-frame delta, so there is no persistent scroll "pressed" state.
type PointerSnapshot struct {
	Buttons [mouseButtonCount]bool
	X, Y    int
	Wheel   float64
}

// ButtonDown reports whether b reads down in this snapshot.
func (s *PointerSnapshot) ButtonDown(b MouseButton) bool {
	if b < 0 || b >= mouseButtonCount {
		return false
	}
	return s.Buttons[b]
}

// GamepadSnapshot is an immutable per-frame capture of one gamepad's state.
// When Connected is false every predicate over this snapshot reads false,
// regardless of the remaining fields.
type GamepadSnapshot struct {
	Connected bool

	Buttons [padButtonCount]bool
	DPad    [padDirectionCount]bool

	LeftStick  Vec2
	RightStick Vec2

	// Trigger readings normalized to 0..1.
	LeftTrigger  float64
	RightTrigger float64
}

// ButtonDown reports whether b reads down in this snapshot. It does not
// apply the connectivity override; the state buffer does.
func (s *GamepadSnapshot) ButtonDown(b PadButton) bool {
	if b < 0 || b >= padButtonCount {
		return false
	}
	return s.Buttons[b]
}

// Poller produces one snapshot per device class per frame. All three calls
// are synchronous and non-blocking; the state buffer invokes each exactly
// once per Update.
type Poller interface {
	PollKeyboard() KeyboardSnapshot
	PollPointer() PointerSnapshot
	PollGamepad() GamepadSnapshot
}
