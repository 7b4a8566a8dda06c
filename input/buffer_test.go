package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakePoller returns whatever the test staged before the next Update.
type fakePoller struct {
	keyboard KeyboardSnapshot
	pointer  PointerSnapshot
	gamepad  GamepadSnapshot
}

func (f *fakePoller) PollKeyboard() KeyboardSnapshot { return f.keyboard }
func (f *fakePoller) PollPointer() PointerSnapshot   { return f.pointer }
func (f *fakePoller) PollGamepad() GamepadSnapshot   { return f.gamepad }

func connectedPad() GamepadSnapshot {
	return GamepadSnapshot{Connected: true}
}

func TestKeyEdgeDetection(t *testing.T) {
	cases := []struct {
		name          string
		prev, cur     bool
		wantPressed   bool
		wantTriggered bool
	}{
		{"up_then_down", false, true, true, true},
		{"held_both_frames", true, true, true, false},
		{"up_both_frames", false, false, false, false},
		{"released", true, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakePoller{}
			s := NewState(f)

			f.keyboard = KeyboardSnapshot{}
			if c.prev {
				f.keyboard.Keys[ebiten.KeyA] = true
			}
			s.Update()

			f.keyboard = KeyboardSnapshot{}
			if c.cur {
				f.keyboard.Keys[ebiten.KeyA] = true
			}
			s.Update()

			if got := s.IsKeyPressed(ebiten.KeyA); got != c.wantPressed {
				t.Fatalf("IsKeyPressed = %v, want %v", got, c.wantPressed)
			}
			if got := s.IsKeyTriggered(ebiten.KeyA); got != c.wantTriggered {
				t.Fatalf("IsKeyTriggered = %v, want %v", got, c.wantTriggered)
			}
		})
	}
}

func TestKeyHeldAcrossThreeFrames(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	// frame 1: key up
	s.Update()

	// frame 2: key down
	f.keyboard.Keys[ebiten.KeyA] = true
	s.Update()
	if !s.IsKeyPressed(ebiten.KeyA) || !s.IsKeyTriggered(ebiten.KeyA) {
		t.Fatalf("frame 2: pressed=%v triggered=%v, want both true",
			s.IsKeyPressed(ebiten.KeyA), s.IsKeyTriggered(ebiten.KeyA))
	}

	// frame 3: key still down
	s.Update()
	if !s.IsKeyPressed(ebiten.KeyA) {
		t.Fatalf("frame 3: key should still read pressed")
	}
	if s.IsKeyTriggered(ebiten.KeyA) {
		t.Fatalf("frame 3: held key must not re-trigger")
	}
}

func TestScrollWheelEdges(t *testing.T) {
	cases := []struct {
		name       string
		prev, cur  float64
		wantUp     bool
		wantDown   bool
	}{
		{"wheel_decreased", 100, 80, false, true},
		{"wheel_increased", 80, 100, true, false},
		{"wheel_unchanged", 50, 50, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakePoller{}
			s := NewState(f)

			f.pointer.Wheel = c.prev
			s.Update()
			f.pointer.Wheel = c.cur
			s.Update()

			if got := s.IsScrollUpTriggered(); got != c.wantUp {
				t.Fatalf("IsScrollUpTriggered = %v, want %v", got, c.wantUp)
			}
			if got := s.IsScrollDownTriggered(); got != c.wantDown {
				t.Fatalf("IsScrollDownTriggered = %v, want %v", got, c.wantDown)
			}
		})
	}
}

func TestPadTriggerThresholdCrossing(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	pad := connectedPad()
	pad.LeftTrigger = 0.3
	f.gamepad = pad
	s.Update()

	pad.LeftTrigger = 0.7
	f.gamepad = pad
	s.Update()

	if !s.IsPadLeftTriggerTriggered() {
		t.Fatalf("left trigger crossing 0.3 -> 0.7 should trigger")
	}
	if !s.IsPadLeftTriggerPressed() {
		t.Fatalf("left trigger at 0.7 should read pressed")
	}

	// held past the threshold: no re-trigger
	s.Update()
	if s.IsPadLeftTriggerTriggered() {
		t.Fatalf("trigger held past threshold must not re-trigger")
	}
}

func TestDisconnectedPadReadsNothing(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	// previous frame: connected with everything idle
	f.gamepad = connectedPad()
	s.Update()

	// current frame: pad gone, but the stale field values would otherwise
	// satisfy every predicate
	pad := GamepadSnapshot{}
	for b := range pad.Buttons {
		pad.Buttons[b] = true
	}
	for d := range pad.DPad {
		pad.DPad[d] = true
	}
	pad.LeftStick = Vec2{X: 1, Y: 1}
	pad.LeftTrigger = 1
	pad.RightTrigger = 1
	f.gamepad = pad
	s.Update()

	if s.IsPadButtonPressed(PadA) || s.IsPadButtonTriggered(PadA) {
		t.Fatalf("disconnected pad: button predicates must read false")
	}
	if s.IsPadDirectionPressed(PadUp) || s.IsPadDirectionTriggered(PadUp) {
		t.Fatalf("disconnected pad: direction predicates must read false")
	}
	if s.IsPadLeftTriggerPressed() || s.IsPadLeftTriggerTriggered() {
		t.Fatalf("disconnected pad: trigger predicates must read false")
	}
	if s.IsPadRightTriggerPressed() || s.IsPadRightTriggerTriggered() {
		t.Fatalf("disconnected pad: right trigger predicates must read false")
	}
}

func TestDirectionalPadStickOr(t *testing.T) {
	cases := []struct {
		name  string
		dpad  bool
		stick bool
		want  bool
	}{
		{"neither", false, false, false},
		{"pad_only", true, false, true},
		{"stick_only", false, true, true},
		{"both", true, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakePoller{}
			s := NewState(f)

			f.gamepad = connectedPad()
			s.Update()

			pad := connectedPad()
			pad.DPad[PadUp] = c.dpad
			if c.stick {
				pad.LeftStick.Y = 0.6
			}
			f.gamepad = pad
			s.Update()

			if got := s.IsPadDirectionPressed(PadUp); got != c.want {
				t.Fatalf("IsPadDirectionPressed(up) = %v, want %v", got, c.want)
			}
			if got := s.IsPadDirectionTriggered(PadUp); got != c.want {
				t.Fatalf("IsPadDirectionTriggered(up) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDirectionalEdgesArePerSource(t *testing.T) {
	// Each source of the virtual direction carries its own rising edge: a
	// held stick must not mask a fresh D-pad press, and vice versa.
	cases := []struct {
		name                 string
		prevDpad, prevStick  bool
		curDpad, curStick    bool
		wantTriggered        bool
	}{
		{"dpad_fires_while_stick_held", false, true, true, true, true},
		{"stick_fires_while_dpad_held", true, false, true, true, true},
		{"both_held_no_retrigger", true, true, true, true, false},
		{"stick_held_alone", false, true, false, true, false},
		{"dpad_held_alone", true, false, true, false, false},
		{"stick_released_dpad_fires", false, true, true, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakePoller{}
			s := NewState(f)

			prev := connectedPad()
			prev.DPad[PadUp] = c.prevDpad
			if c.prevStick {
				prev.LeftStick.Y = 0.8
			}
			f.gamepad = prev
			s.Update()

			cur := connectedPad()
			cur.DPad[PadUp] = c.curDpad
			if c.curStick {
				cur.LeftStick.Y = 0.8
			}
			f.gamepad = cur
			s.Update()

			if got := s.IsPadDirectionTriggered(PadUp); got != c.wantTriggered {
				t.Fatalf("IsPadDirectionTriggered(up) = %v, want %v", got, c.wantTriggered)
			}
			if !s.IsPadDirectionPressed(PadUp) && (c.curDpad || c.curStick) {
				t.Fatalf("direction should read pressed while any source is active")
			}
		})
	}
}

func TestNegativeStickDirectionInverts(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	f.gamepad = connectedPad()
	s.Update()

	pad := connectedPad()
	pad.LeftStick = Vec2{X: -0.8, Y: -0.8}
	f.gamepad = pad
	s.Update()

	if !s.IsPadDirectionPressed(PadLeft) || !s.IsPadDirectionPressed(PadDown) {
		t.Fatalf("stick at (-0.8,-0.8) should read left and down")
	}
	if s.IsPadDirectionPressed(PadRight) || s.IsPadDirectionPressed(PadUp) {
		t.Fatalf("stick at (-0.8,-0.8) must not read right or up")
	}
}

func TestStickExactlyAtThreshold(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	f.gamepad = connectedPad()
	s.Update()

	pad := connectedPad()
	pad.LeftStick.Y = 0.5
	f.gamepad = pad
	s.Update()

	if !s.IsPadDirectionPressed(PadUp) {
		t.Fatalf("stick at exactly 0.5 should read active")
	}
}

func TestCursorDeltaAndWheelDelta(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	f.pointer = PointerSnapshot{X: 10, Y: 20, Wheel: 3}
	s.Update()
	f.pointer = PointerSnapshot{X: 25, Y: 14, Wheel: 5}
	s.Update()

	dx, dy := s.CursorDelta()
	if dx != 15 || dy != -6 {
		t.Fatalf("CursorDelta = (%d,%d), want (15,-6)", dx, dy)
	}
	if got := s.WheelDelta(); got != 2 {
		t.Fatalf("WheelDelta = %v, want 2", got)
	}
	x, y := s.CursorPosition()
	if x != 25 || y != 14 {
		t.Fatalf("CursorPosition = (%d,%d), want (25,14)", x, y)
	}
}

func TestMouseButtonEdges(t *testing.T) {
	f := &fakePoller{}
	s := NewState(f)

	s.Update()
	f.pointer.Buttons[MouseLeft] = true
	s.Update()

	if !s.IsMouseButtonPressed(MouseLeft) || !s.IsMouseButtonTriggered(MouseLeft) {
		t.Fatalf("fresh left press should read pressed and triggered")
	}
	if s.IsMouseButtonPressed(MouseRight) {
		t.Fatalf("right button should stay up")
	}

	s.Update()
	if s.IsMouseButtonTriggered(MouseLeft) {
		t.Fatalf("held left button must not re-trigger")
	}
}
