// Swipesim is a headless simulator for the interactive back gesture. It
// replays scripted pointer events against a route stack and prints the
// transition timeline.
package main

import (
	"os"

	"github.com/go-drift/swipeback/cmd/swipesim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
