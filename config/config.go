package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Settings holds the game's tunable configuration. Input bindings are not
// here: the binding table is compiled in and owned by the input layer.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Gamepad GamepadSettings `yaml:"gamepad"`
	View    ViewSettings    `yaml:"view"`
	Chat    ChatSettings    `yaml:"chat"`
}

type WindowSettings struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type GamepadSettings struct {
	// Slot selects which connected pad the input layer reads (0 = first).
	Slot int `yaml:"slot"`
}

type ViewSettings struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
	ZoomStep    float64 `yaml:"zoom_step"`
	MinZoom     float64 `yaml:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom"`
}

type ChatSettings struct {
	History int `yaml:"history"`
}

// Default returns the embedded baseline settings.
func Default() Settings {
	var s Settings
	// the embedded file is a build artifact; failing to parse it is a bug
	if err := yaml.Unmarshal(defaultYAML, &s); err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return s
}

// Load reads path over the defaults, so a partial file only overrides the
// keys it names. A missing file is not an error: it yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
