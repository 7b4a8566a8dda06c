package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	for a := Action(0); a.Valid(); a++ {
		m := b.Map(a)
		if m == nil {
			t.Fatalf("action %q has no map", a)
		}
		if len(m.Keys)+len(m.Pointer)+len(m.Pad) == 0 {
			t.Fatalf("default map for %q is empty", a)
		}
	}
}

func TestDefaultBindingSpotChecks(t *testing.T) {
	b := DefaultBindings()

	hasKey := func(a Action, k ebiten.Key) bool {
		for _, bound := range b.Map(a).Keys {
			if bound == KeyControl(k) {
				return true
			}
		}
		return false
	}
	hasPad := func(a Action, p PadControl) bool {
		for _, bound := range b.Map(a).Pad {
			if bound == p {
				return true
			}
		}
		return false
	}
	hasPointer := func(a Action, p PointerControl) bool {
		for _, bound := range b.Map(a).Pointer {
			if bound == p {
				return true
			}
		}
		return false
	}

	if !hasKey(ExitGame, ebiten.KeyEscape) {
		t.Fatalf("ExitGame should bind Escape")
	}
	if !hasPointer(SelectAtCursor, PointerLeft) {
		t.Fatalf("SelectAtCursor should bind the left button")
	}
	if !hasPointer(MoveTo, PointerRight) {
		t.Fatalf("MoveTo should bind the right button")
	}
	if !hasPad(ViewUp, PadControlUp) {
		t.Fatalf("ViewUp should bind the virtual pad direction")
	}
	if !hasPointer(ZoomIn, ScrollUp) || !hasPointer(ZoomOut, ScrollDown) {
		t.Fatalf("zoom actions should bind the scroll edges")
	}
	if !hasPad(Advance, PadControlRightTrigger) || !hasPad(Retreat, PadControlLeftTrigger) {
		t.Fatalf("stance actions should bind the analog triggers")
	}
}

func TestMapPanicsOutsideEnumeration(t *testing.T) {
	b := DefaultBindings()
	defer func() {
		if recover() == nil {
			t.Fatalf("Map outside the enumeration should panic")
		}
	}()
	b.Map(Action(ActionCount))
}

type bogusControl struct{}

func (bogusControl) Pressed(*State) bool   { return false }
func (bogusControl) Triggered(*State) bool { return false }

func TestBindRejectsUnknownControlKind(t *testing.T) {
	b := &Bindings{}
	defer func() {
		if recover() == nil {
			t.Fatalf("Bind should panic on a control kind it cannot file")
		}
	}()
	b.Bind(Chat, bogusControl{})
}
