package script

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyNames maps script-facing key names to ebiten keys. Names are matched
// case-insensitively.
var keyNames = buildKeyNames()

func buildKeyNames() map[string]ebiten.Key {
	m := map[string]ebiten.Key{
		"space":     ebiten.KeySpace,
		"enter":     ebiten.KeyEnter,
		"escape":    ebiten.KeyEscape,
		"tab":       ebiten.KeyTab,
		"backspace": ebiten.KeyBackspace,
		"minus":     ebiten.KeyMinus,
		"equal":     ebiten.KeyEqual,
		"left":      ebiten.KeyArrowLeft,
		"right":     ebiten.KeyArrowRight,
		"up":        ebiten.KeyArrowUp,
		"down":      ebiten.KeyArrowDown,
		"shift":     ebiten.KeyShiftLeft,
		"control":   ebiten.KeyControlLeft,
		"alt":       ebiten.KeyAltLeft,
	}
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = ebiten.KeyA + ebiten.Key(c-'a')
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = ebiten.KeyDigit0 + ebiten.Key(c-'0')
	}
	return m
}

// LookupKey resolves a script key name. The bool result is false for names
// outside the table.
func LookupKey(name string) (ebiten.Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}
