// pambu — a terminal snake drawn with box glyphs.
// Arrow keys steer; running into yourself ends the game.
//
// Run: go run ./cmd/pambu/
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/pambu/internal/snakeui"
)

func main() {
	p := tea.NewProgram(snakeui.NewModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
