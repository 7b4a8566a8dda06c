package input

import "github.com/hajimehoshi/ebiten/v2"

// triggerThreshold is the fixed activation level for analog trigger and
// stick axes, on a normalized 0..1 (triggers) or -1..1 (sticks) scale.
// The test is instantaneous with no hysteresis, so readings hovering at
// the boundary can double-fire across frames; that matches the reference
// behavior and is a known limitation.
const triggerThreshold = 0.5

type deviceState struct {
	keyboard KeyboardSnapshot
	pointer  PointerSnapshot
	gamepad  GamepadSnapshot
}

// State holds the current and previous-frame snapshot for each device
// class as an explicit double buffer: two slots swapped by index on each
// Update, so rotation copies no snapshots and allocates nothing.
//
// Pressed means a control reads active in the current snapshot. Triggered
// means it reads active in the current snapshot and inactive in the
// previous one (rising edge only; falling edges are not exposed).
type State struct {
	poller Poller
	slots  [2]deviceState
	cur    int
}

// NewState returns a State that samples the given poller. All snapshots
// start zeroed, so nothing reads pressed before the first Update.
func NewState(p Poller) *State {
	return &State{poller: p}
}

// Update rotates previous<-current and samples a fresh snapshot per device
// class. It must run exactly once per logical frame; running it twice in
// one frame silently drops that frame's transition edges.
func (s *State) Update() {
	s.cur ^= 1
	slot := &s.slots[s.cur]
	slot.keyboard = s.poller.PollKeyboard()
	slot.pointer = s.poller.PollPointer()
	slot.gamepad = s.poller.PollGamepad()
}

// Keyboard returns the current keyboard snapshot.
func (s *State) Keyboard() *KeyboardSnapshot { return &s.slots[s.cur].keyboard }

// PrevKeyboard returns the previous-frame keyboard snapshot.
func (s *State) PrevKeyboard() *KeyboardSnapshot { return &s.slots[s.cur^1].keyboard }

// Pointer returns the current pointer snapshot.
func (s *State) Pointer() *PointerSnapshot { return &s.slots[s.cur].pointer }

// PrevPointer returns the previous-frame pointer snapshot.
func (s *State) PrevPointer() *PointerSnapshot { return &s.slots[s.cur^1].pointer }

// Gamepad returns the current gamepad snapshot.
func (s *State) Gamepad() *GamepadSnapshot { return &s.slots[s.cur].gamepad }

// PrevGamepad returns the previous-frame gamepad snapshot.
func (s *State) PrevGamepad() *GamepadSnapshot { return &s.slots[s.cur^1].gamepad }

// IsKeyPressed reports whether k is down this frame.
func (s *State) IsKeyPressed(k ebiten.Key) bool {
	return s.Keyboard().KeyDown(k)
}

// IsKeyTriggered reports whether k went down between the previous frame
// and this one.
func (s *State) IsKeyTriggered(k ebiten.Key) bool {
	return s.Keyboard().KeyDown(k) && !s.PrevKeyboard().KeyDown(k)
}

// IsMouseButtonPressed reports whether b is down this frame.
func (s *State) IsMouseButtonPressed(b MouseButton) bool {
	return s.Pointer().ButtonDown(b)
}

// IsMouseButtonTriggered reports whether b went down between the previous
// frame and this one.
func (s *State) IsMouseButtonTriggered(b MouseButton) bool {
	return s.Pointer().ButtonDown(b) && !s.PrevPointer().ButtonDown(b)
}

// IsScrollUpTriggered reports whether the wheel value grew this frame.
// Scroll controls are edge-only; there is no held state to query.
func (s *State) IsScrollUpTriggered() bool {
	return s.Pointer().Wheel > s.PrevPointer().Wheel
}

// IsScrollDownTriggered reports whether the wheel value shrank this frame.
func (s *State) IsScrollDownTriggered() bool {
	return s.Pointer().Wheel < s.PrevPointer().Wheel
}

// CursorPosition returns the current pointer coordinates.
func (s *State) CursorPosition() (int, int) {
	p := s.Pointer()
	return p.X, p.Y
}

// CursorDelta returns the pointer movement since the previous frame, for
// consumers that pan on raw motion instead of a named action.
func (s *State) CursorDelta() (int, int) {
	cur, prev := s.Pointer(), s.PrevPointer()
	return cur.X - prev.X, cur.Y - prev.Y
}

// WheelDelta returns the wheel movement since the previous frame.
func (s *State) WheelDelta() float64 {
	return s.Pointer().Wheel - s.PrevPointer().Wheel
}

// IsPadButtonPressed reports whether b is down this frame. A disconnected
// pad reads not-pressed no matter what the snapshot's button values say.
func (s *State) IsPadButtonPressed(b PadButton) bool {
	pad := s.Gamepad()
	return pad.Connected && pad.ButtonDown(b)
}

// IsPadButtonTriggered reports whether b went down between the previous
// frame and this one. False whenever the current snapshot is disconnected.
func (s *State) IsPadButtonTriggered(b PadButton) bool {
	pad := s.Gamepad()
	return pad.Connected && pad.ButtonDown(b) && !s.PrevGamepad().ButtonDown(b)
}

// stickToward reports whether the stick deflects past the activation
// threshold toward d. Negative directions sign-invert the axis so the same
// threshold test applies.
func stickToward(v Vec2, d PadDirection) bool {
	switch d {
	case PadUp:
		return v.Y >= triggerThreshold
	case PadDown:
		return -v.Y >= triggerThreshold
	case PadLeft:
		return -v.X >= triggerThreshold
	case PadRight:
		return v.X >= triggerThreshold
	}
	return false
}

func directionActive(pad *GamepadSnapshot, d PadDirection) bool {
	if d < 0 || d >= padDirectionCount {
		return false
	}
	return pad.DPad[d] || stickToward(pad.LeftStick, d)
}

// IsPadDirectionPressed reports whether the virtual direction d is active:
// the D-pad reads down OR the left stick deflects past the threshold.
func (s *State) IsPadDirectionPressed(d PadDirection) bool {
	pad := s.Gamepad()
	return pad.Connected && directionActive(pad, d)
}

// IsPadDirectionTriggered reports whether either source of the virtual
// direction rose this frame: the D-pad's own edge OR the left stick's
// threshold crossing. A source that was already held does not mask the
// other one firing.
func (s *State) IsPadDirectionTriggered(d PadDirection) bool {
	pad := s.Gamepad()
	if !pad.Connected || d < 0 || d >= padDirectionCount {
		return false
	}
	prev := s.PrevGamepad()
	if pad.DPad[d] && !prev.DPad[d] {
		return true
	}
	return stickToward(pad.LeftStick, d) && !stickToward(prev.LeftStick, d)
}

// IsPadLeftTriggerPressed reports whether the left trigger reads at or
// past the activation threshold this frame.
func (s *State) IsPadLeftTriggerPressed() bool {
	pad := s.Gamepad()
	return pad.Connected && pad.LeftTrigger >= triggerThreshold
}

// IsPadLeftTriggerTriggered reports the left trigger crossing the
// threshold from below between the previous frame and this one.
func (s *State) IsPadLeftTriggerTriggered() bool {
	pad := s.Gamepad()
	return pad.Connected && pad.LeftTrigger >= triggerThreshold &&
		s.PrevGamepad().LeftTrigger < triggerThreshold
}

// IsPadRightTriggerPressed reports whether the right trigger reads at or
// past the activation threshold this frame.
func (s *State) IsPadRightTriggerPressed() bool {
	pad := s.Gamepad()
	return pad.Connected && pad.RightTrigger >= triggerThreshold
}

// IsPadRightTriggerTriggered reports the right trigger crossing the
// threshold from below between the previous frame and this one.
func (s *State) IsPadRightTriggerTriggered() bool {
	pad := s.Gamepad()
	return pad.Connected && pad.RightTrigger >= triggerThreshold &&
		s.PrevGamepad().RightTrigger < triggerThreshold
}
