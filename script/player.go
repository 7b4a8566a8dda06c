package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/robotButler/battlelines/input"
)

// Player evaluates a tengo script once per frame and serves the result
// through the input.Poller interface, so a scripted input stream can drive
// an input.Manager exactly like live devices. The script defines
//
//	frame := func(n) { ... }
//
// returning a map describing that frame's device state:
//
//	{
//	  keys: ["w", "space"],
//	  pointer: {x: 10, y: 20, wheel: 2, left: true, right: false, middle: false},
//	  pad: {
//	    connected: true,
//	    buttons: ["a", "start"],
//	    dpad: ["up"],
//	    left_stick: [0.0, 0.7],
//	    right_stick: [0.0, 0.0],
//	    left_trigger: 0.0,
//	    right_trigger: 0.8,
//	  },
//	}
//
// Omitted sections read as idle. Call Advance once per frame before the
// manager's Update.
type Player struct {
	compiled *tengo.Compiled
	frame    int

	keyboard input.KeyboardSnapshot
	pointer  input.PointerSnapshot
	gamepad  input.GamepadSnapshot
}

const frameDispatchScript = `
__out = frame(__frame)
`

// NewPlayer compiles src. The script must define frame as a callable.
func NewPlayer(src []byte) (*Player, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+frameDispatchScript)...))
	if err := s.Add("__frame", 0); err != nil {
		return nil, fmt.Errorf("input script globals: %w", err)
	}
	if err := s.Add("__out", map[string]any{}); err != nil {
		return nil, fmt.Errorf("input script globals: %w", err)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile input script: %w", err)
	}
	return &Player{compiled: compiled}, nil
}

// Frame returns the number of frames advanced so far.
func (p *Player) Frame() int { return p.frame }

// Advance evaluates the script for the next frame and stages its snapshots.
func (p *Player) Advance() error {
	if err := p.compiled.Set("__frame", p.frame); err != nil {
		return err
	}
	if err := p.compiled.Run(); err != nil {
		return fmt.Errorf("input script frame %d: %w", p.frame, err)
	}
	p.frame++

	p.keyboard, p.pointer, p.gamepad = decodeFrame(p.compiled.Get("__out").Map())
	return nil
}

func (p *Player) PollKeyboard() input.KeyboardSnapshot { return p.keyboard }
func (p *Player) PollPointer() input.PointerSnapshot   { return p.pointer }
func (p *Player) PollGamepad() input.GamepadSnapshot   { return p.gamepad }

func decodeFrame(out map[string]any) (input.KeyboardSnapshot, input.PointerSnapshot, input.GamepadSnapshot) {
	var kb input.KeyboardSnapshot
	var ptr input.PointerSnapshot
	var pad input.GamepadSnapshot
	if out == nil {
		return kb, ptr, pad
	}

	for _, name := range toStrings(out["keys"]) {
		if k, ok := LookupKey(name); ok {
			kb.Keys[k] = true
		}
	}

	if m, ok := out["pointer"].(map[string]any); ok {
		ptr.X = int(toFloat(m["x"]))
		ptr.Y = int(toFloat(m["y"]))
		ptr.Wheel = toFloat(m["wheel"])
		ptr.Buttons[input.MouseLeft] = toBool(m["left"])
		ptr.Buttons[input.MouseRight] = toBool(m["right"])
		ptr.Buttons[input.MouseMiddle] = toBool(m["middle"])
	}

	if m, ok := out["pad"].(map[string]any); ok {
		pad.Connected = toBool(m["connected"])
		for _, name := range toStrings(m["buttons"]) {
			if b, ok := padButtonNames[name]; ok {
				pad.Buttons[b] = true
			}
		}
		for _, name := range toStrings(m["dpad"]) {
			if d, ok := padDirectionNames[name]; ok {
				pad.DPad[d] = true
			}
		}
		pad.LeftStick = toVec2(m["left_stick"])
		pad.RightStick = toVec2(m["right_stick"])
		pad.LeftTrigger = toFloat(m["left_trigger"])
		pad.RightTrigger = toFloat(m["right_trigger"])
	}

	return kb, ptr, pad
}

var padButtonNames = map[string]input.PadButton{
	"start":          input.PadStart,
	"back":           input.PadBack,
	"a":              input.PadA,
	"b":              input.PadB,
	"x":              input.PadX,
	"y":              input.PadY,
	"left_shoulder":  input.PadLeftShoulder,
	"right_shoulder": input.PadRightShoulder,
}

var padDirectionNames = map[string]input.PadDirection{
	"up":    input.PadUp,
	"down":  input.PadDown,
	"left":  input.PadLeft,
	"right": input.PadRight,
}

func toStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func toVec2(v any) input.Vec2 {
	arr, ok := v.([]any)
	if !ok || len(arr) < 2 {
		return input.Vec2{}
	}
	return input.Vec2{X: toFloat(arr[0]), Y: toFloat(arr[1])}
}
