package snakeui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/pambu/pkg/geom"
	"github.com/wesen/pambu/pkg/snake"
)

// tickInterval is the frame delay between snake moves.
const tickInterval = 200 * time.Millisecond

// tickMsg drives one snake move per frame.
type tickMsg time.Time

// Model is the game state the Bubbletea loop owns.
type Model struct {
	Width, Height int

	// Snake is created on the first WindowSizeMsg, sized to the canvas
	// region, and lives until the program exits.
	Snake *snake.Snake

	// Pending is the latest arrow key seen since the previous tick;
	// None means steer straight.
	Pending geom.Direction

	GameOver bool
	Ticks    int
}

// NewModel creates the initial model. The snake itself waits for the
// terminal dimensions.
func NewModel() Model {
	return Model{}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
