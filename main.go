package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/robotButler/battlelines/config"
	"github.com/robotButler/battlelines/input"
	"github.com/robotButler/battlelines/script"
)

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "path to the settings file (missing file uses defaults)")
	watch := flag.Bool("watch", false, "live-apply settings file changes")
	scriptPath := flag.String("script", "", "drive input from a tengo script instead of live devices")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	var poller input.Poller = input.NewDevicePoller(settings.Gamepad.Slot)
	var driver frameDriver
	if *scriptPath != "" {
		src, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		player, err := script.NewPlayer(src)
		if err != nil {
			log.Fatal(err)
		}
		poller = player
		driver = player
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	game := NewGame(settings, poller, driver)

	if *watch {
		watcher, err := config.NewWatcher(*settingsPath)
		if err != nil {
			log.Printf("settings watcher disabled: %v", err)
		} else {
			defer watcher.Close()
			game.watcher = watcher
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
