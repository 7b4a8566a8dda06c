package input

import "github.com/hajimehoshi/ebiten/v2"

// DefaultBindings builds the compiled-in binding table. It is a pure data
// constructor: deterministic, no I/O, no failure path. Every action gets a
// map, even when the control set it receives is empty.
func DefaultBindings() *Bindings {
	b := &Bindings{}

	b.Bind(ExitGame, KeyControl(ebiten.KeyEscape), PadControlBack)

	b.Bind(Select1, KeyControl(ebiten.KeyDigit1))
	b.Bind(Select2, KeyControl(ebiten.KeyDigit2))
	b.Bind(Select3, KeyControl(ebiten.KeyDigit3))
	b.Bind(Select4, KeyControl(ebiten.KeyDigit4))

	b.Bind(SelectAtCursor, PointerLeft, PadControlA)
	b.Bind(MoveTo, PointerRight, PadControlX)
	b.Bind(ActionAt, PointerMiddle, PadControlB)

	b.Bind(Retreat, KeyControl(ebiten.KeyR), PadControlLeftTrigger)
	b.Bind(Advance, KeyControl(ebiten.KeyF), PadControlRightTrigger)

	b.Bind(StatusItemNext, KeyControl(ebiten.KeyE), PadControlRightShoulder)
	b.Bind(StatusItemPrev, KeyControl(ebiten.KeyQ), PadControlLeftShoulder)

	b.Bind(Chat, KeyControl(ebiten.KeyT), KeyControl(ebiten.KeyEnter), PadControlStart)

	b.Bind(ViewLeft, KeyControl(ebiten.KeyArrowLeft), KeyControl(ebiten.KeyA), PadControlLeft)
	b.Bind(ViewRight, KeyControl(ebiten.KeyArrowRight), KeyControl(ebiten.KeyD), PadControlRight)
	b.Bind(ViewUp, KeyControl(ebiten.KeyArrowUp), KeyControl(ebiten.KeyW), PadControlUp)
	b.Bind(ViewDown, KeyControl(ebiten.KeyArrowDown), KeyControl(ebiten.KeyS), PadControlDown)

	b.Bind(ZoomOut, KeyControl(ebiten.KeyMinus), ScrollDown)
	b.Bind(ZoomIn, KeyControl(ebiten.KeyEqual), ScrollUp)

	return b
}
