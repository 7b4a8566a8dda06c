package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DevicePoller samples Ebiten's keyboard, cursor, wheel, and standard
// gamepad layout into snapshots. One poller serves one gamepad slot,
// chosen at construction; slot n is the n-th connected pad Ebiten reports.
type DevicePoller struct {
	slot int

	// reused between frames to keep polling allocation-free
	keys  []ebiten.Key
	pads  []ebiten.GamepadID
	wheel float64
}

// NewDevicePoller returns a poller reading gamepad slot (0 = first pad).
func NewDevicePoller(slot int) *DevicePoller {
	if slot < 0 {
		slot = 0
	}
	return &DevicePoller{slot: slot}
}

// PollKeyboard captures every currently pressed key.
func (p *DevicePoller) PollKeyboard() KeyboardSnapshot {
	var s KeyboardSnapshot
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if k >= 0 && int(k) < keyCount {
			s.Keys[k] = true
		}
	}
	return s
}

// PollPointer captures the mouse buttons, cursor position, and wheel.
// Ebiten reports the wheel as a per-frame offset; the poller accumulates
// it so the snapshot carries the cumulative value scroll edges diff.
func (p *DevicePoller) PollPointer() PointerSnapshot {
	var s PointerSnapshot
	s.Buttons[MouseLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.Buttons[MouseRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.Buttons[MouseMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	s.X, s.Y = ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	p.wheel += dy
	s.Wheel = p.wheel
	return s
}

var standardPadButtons = [padButtonCount]ebiten.StandardGamepadButton{
	PadStart:         ebiten.StandardGamepadButtonCenterRight,
	PadBack:          ebiten.StandardGamepadButtonCenterLeft,
	PadA:             ebiten.StandardGamepadButtonRightBottom,
	PadB:             ebiten.StandardGamepadButtonRightRight,
	PadX:             ebiten.StandardGamepadButtonRightLeft,
	PadY:             ebiten.StandardGamepadButtonRightTop,
	PadLeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	PadRightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
}

var standardPadDirections = [padDirectionCount]ebiten.StandardGamepadButton{
	PadUp:    ebiten.StandardGamepadButtonLeftTop,
	PadDown:  ebiten.StandardGamepadButtonLeftBottom,
	PadLeft:  ebiten.StandardGamepadButtonLeftLeft,
	PadRight: ebiten.StandardGamepadButtonLeftRight,
}

// PollGamepad captures the configured slot's standard-layout state. A
// missing pad, or one without the standard layout, reads as disconnected.
func (p *DevicePoller) PollGamepad() GamepadSnapshot {
	var s GamepadSnapshot
	p.pads = ebiten.AppendGamepadIDs(p.pads[:0])
	if p.slot >= len(p.pads) {
		return s
	}
	id := p.pads[p.slot]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return s
	}
	s.Connected = true

	for b, std := range standardPadButtons {
		s.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, std)
	}
	for d, std := range standardPadDirections {
		s.DPad[d] = ebiten.IsStandardGamepadButtonPressed(id, std)
	}

	// Ebiten's vertical stick axes grow downward; snapshots use +Y = up.
	s.LeftStick.X = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	s.LeftStick.Y = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	s.RightStick.X = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	s.RightStick.Y = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)

	s.LeftTrigger = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	s.RightTrigger = ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
	return s
}
