package snakeui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/pambu/pkg/geom"
	"github.com/wesen/pambu/pkg/snake"
)

// arrowKeys maps Bubbletea key names to compass directions.
var arrowKeys = map[string]geom.Direction{
	"up":    geom.North,
	"down":  geom.South,
	"left":  geom.West,
	"right": geom.East,
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.Snake == nil && m.Width > 0 && m.Height > 0 {
			r := m.canvasRect()
			m.Snake = snake.New(r.Dy(), r.Dx())
		}

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tickMsg:
		return m.advance()
	}

	return m, nil
}

// handleKeys processes keyboard input. Arrow keys are buffered until
// the next tick; the most recent press wins.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}

	if d, ok := arrowKeys[key]; ok {
		m.Pending = d
	}

	return m, nil
}

// advance runs one frame: move the snake with whatever direction was
// buffered and schedule the next tick. After a collision the loop stops
// ticking and waits for a quit key.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.GameOver {
		return m, nil
	}
	if m.Snake == nil {
		// No terminal size yet; keep ticking until there is one.
		return m, tick()
	}

	requested := m.Pending
	m.Pending = geom.None
	m.Ticks++

	if m.Snake.Move(requested) == snake.Collided {
		m.GameOver = true
		return m, nil
	}
	return m, tick()
}

// canvasRect computes the playfield rectangle for the current terminal
// size.
func (m Model) canvasRect() image.Rectangle {
	// Must match the layout in View
	topH := 1
	bottomH := 1
	return image.Rect(0, topH, m.Width, m.Height-bottomH)
}
