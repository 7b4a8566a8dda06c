package input

import "fmt"

// Action is a logical, device-independent game input. The enumeration is
// closed and ordered; every value owns exactly one display name and one
// ActionMap entry in a Bindings table.
type Action int

const (
	ExitGame Action = iota
	Select1
	Select2
	Select3
	Select4
	SelectAtCursor
	MoveTo
	ActionAt
	Retreat
	Advance
	StatusItemNext
	StatusItemPrev
	Chat
	ViewLeft
	ViewRight
	ViewUp
	ViewDown
	ZoomOut
	ZoomIn

	actionCount
)

// ActionCount is the number of logical actions.
const ActionCount = int(actionCount)

var actionNames = [actionCount]string{
	ExitGame:       "Exit Game",
	Select1:        "Select Unit 1",
	Select2:        "Select Unit 2",
	Select3:        "Select Unit 3",
	Select4:        "Select Unit 4",
	SelectAtCursor: "Select At Cursor",
	MoveTo:         "Move To",
	ActionAt:       "Action At",
	Retreat:        "Retreat",
	Advance:        "Advance",
	StatusItemNext: "Next Status Item",
	StatusItemPrev: "Previous Status Item",
	Chat:           "Chat",
	ViewLeft:       "Scroll View Left",
	ViewRight:      "Scroll View Right",
	ViewUp:         "Scroll View Up",
	ViewDown:       "Scroll View Down",
	ZoomOut:        "Zoom Out",
	ZoomIn:         "Zoom In",
}

// Valid reports whether a falls inside the closed enumeration.
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

// String returns the fixed display name. Passing a value outside the closed
// enumeration is a programmer error and panics.
func (a Action) String() string {
	if !a.Valid() {
		panic(fmt.Sprintf("input: invalid action index %d", int(a)))
	}
	return actionNames[a]
}
