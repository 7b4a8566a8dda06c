package input

import "github.com/hajimehoshi/ebiten/v2"

// Control is a single physical input primitive: a keyboard key, a pointer
// control, or a gamepad control. Each kind reads itself against a State,
// so action evaluation never branches on device specifics.
type Control interface {
	Pressed(s *State) bool
	Triggered(s *State) bool
}

// KeyControl binds a keyboard key.
type KeyControl ebiten.Key

func (k KeyControl) Pressed(s *State) bool   { return s.IsKeyPressed(ebiten.Key(k)) }
func (k KeyControl) Triggered(s *State) bool { return s.IsKeyTriggered(ebiten.Key(k)) }

// PointerControl binds a pointer button or a scroll-wheel edge.
type PointerControl int

const (
	PointerLeft PointerControl = iota
	PointerRight
	PointerMiddle
	ScrollUp
	ScrollDown
)

// Pressed reads the button state; scroll controls have no held state, so
// for them Pressed is the same wheel-delta edge as Triggered.
func (p PointerControl) Pressed(s *State) bool {
	switch p {
	case PointerLeft:
		return s.IsMouseButtonPressed(MouseLeft)
	case PointerRight:
		return s.IsMouseButtonPressed(MouseRight)
	case PointerMiddle:
		return s.IsMouseButtonPressed(MouseMiddle)
	case ScrollUp:
		return s.IsScrollUpTriggered()
	case ScrollDown:
		return s.IsScrollDownTriggered()
	}
	return false
}

func (p PointerControl) Triggered(s *State) bool {
	switch p {
	case PointerLeft:
		return s.IsMouseButtonTriggered(MouseLeft)
	case PointerRight:
		return s.IsMouseButtonTriggered(MouseRight)
	case PointerMiddle:
		return s.IsMouseButtonTriggered(MouseMiddle)
	case ScrollUp:
		return s.IsScrollUpTriggered()
	case ScrollDown:
		return s.IsScrollDownTriggered()
	}
	return false
}

// PadControl binds a gamepad control. The directional values are virtual:
// the D-pad and the left stick both satisfy them.
type PadControl int

const (
	PadControlStart PadControl = iota
	PadControlBack
	PadControlA
	PadControlB
	PadControlX
	PadControlY
	PadControlUp
	PadControlDown
	PadControlLeft
	PadControlRight
	PadControlLeftShoulder
	PadControlRightShoulder
	PadControlLeftTrigger
	PadControlRightTrigger
)

var padControlButtons = map[PadControl]PadButton{
	PadControlStart:         PadStart,
	PadControlBack:          PadBack,
	PadControlA:             PadA,
	PadControlB:             PadB,
	PadControlX:             PadX,
	PadControlY:             PadY,
	PadControlLeftShoulder:  PadLeftShoulder,
	PadControlRightShoulder: PadRightShoulder,
}

var padControlDirections = map[PadControl]PadDirection{
	PadControlUp:    PadUp,
	PadControlDown:  PadDown,
	PadControlLeft:  PadLeft,
	PadControlRight: PadRight,
}

func (p PadControl) Pressed(s *State) bool {
	if b, ok := padControlButtons[p]; ok {
		return s.IsPadButtonPressed(b)
	}
	if d, ok := padControlDirections[p]; ok {
		return s.IsPadDirectionPressed(d)
	}
	switch p {
	case PadControlLeftTrigger:
		return s.IsPadLeftTriggerPressed()
	case PadControlRightTrigger:
		return s.IsPadRightTriggerPressed()
	}
	return false
}

func (p PadControl) Triggered(s *State) bool {
	if b, ok := padControlButtons[p]; ok {
		return s.IsPadButtonTriggered(b)
	}
	if d, ok := padControlDirections[p]; ok {
		return s.IsPadDirectionTriggered(d)
	}
	switch p {
	case PadControlLeftTrigger:
		return s.IsPadLeftTriggerTriggered()
	case PadControlRightTrigger:
		return s.IsPadRightTriggerTriggered()
	}
	return false
}
