// replay runs a tengo input script against the action layer without a
// window and prints which actions fire each frame. Useful for checking a
// script before handing it to the game's -script flag.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/robotButler/battlelines/input"
	"github.com/robotButler/battlelines/script"
)

func main() {
	scriptPath := flag.String("script", "", "tengo input script to replay (required)")
	frames := flag.Int("frames", 60, "number of frames to simulate")
	held := flag.Bool("held", false, "also report actions held on frames they do not trigger")
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}
	player, err := script.NewPlayer(src)
	if err != nil {
		log.Fatal(err)
	}

	mgr := input.New(player, nil)
	for f := 0; f < *frames; f++ {
		if err := player.Advance(); err != nil {
			log.Fatal(err)
		}
		mgr.Update()

		var hits []string
		for a := input.Action(0); a.Valid(); a++ {
			switch {
			case mgr.IsActionTriggered(a):
				hits = append(hits, mgr.ActionName(a))
			case *held && mgr.IsActionPressed(a):
				hits = append(hits, mgr.ActionName(a)+" (held)")
			}
		}
		if len(hits) > 0 {
			fmt.Printf("frame %3d: %s\n", f, strings.Join(hits, ", "))
		}
	}
}
