package snakeui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/pambu/pkg/cellbuf"
	"github.com/wesen/pambu/pkg/drawutil"
	"github.com/wesen/pambu/pkg/tealayout"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	modalStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(modalBorder).
		Foreground(modalText).
		Background(colorBG).
		Padding(1, 3).
		AlignHorizontal(lipgloss.Center)
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	// Layout: toolbar(1) + footer(1) + playfield(remaining)
	layout := tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		Remaining("playfield").
		Build()

	fieldRegion := layout.Get("playfield")

	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(fieldRegion, bgStyle, "playfield-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	// Toolbar content
	tbContent := " pambu  │  ←↑↓→ steer  │  [q]/esc quit"
	layers = append(layers,
		tealayout.ToolbarLayer(tbContent, m.Width, tbStyle),
	)

	// Footer content
	ftContent := fmt.Sprintf(" Tick: %d  Dir: %s  Length: %d",
		m.Ticks, m.snakeDirection(), m.snakeLength())
	layers = append(layers,
		tealayout.FooterLayer(ftContent, m.Width, m.Height-1, ftStyle),
	)

	// Snake body layer (Z=1, on top of the playfield background)
	layers = append(layers, m.buildSnakeLayer(fieldRegion.Rect))

	// Collision modal
	if m.GameOver {
		layers = append(layers,
			tealayout.ModalLayer("Collision Detected!\n\npress q to quit",
				m.Width, m.Height, modalStyle),
		)
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	return v
}

// buildSnakeLayer draws the body into a fresh cellbuf and wraps it as a
// single Layer positioned over the playfield region.
func (m Model) buildSnakeLayer(viewport image.Rectangle) *lipgloss.Layer {
	w := viewport.Dx()
	h := viewport.Dy()
	if w <= 0 || h <= 0 || m.Snake == nil {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(1)
	}

	buf := cellbuf.New(w, h, styleBG)
	m.Snake.Draw(drawutil.NewCanvas(buf, styleSnake))

	rendered := buf.Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(viewport.Min.X).Y(viewport.Min.Y).Z(1).ID("snake")
}

func (m Model) snakeDirection() string {
	if m.Snake == nil {
		return "-"
	}
	return m.Snake.Direction().String()
}

func (m Model) snakeLength() int {
	if m.Snake == nil {
		return 0
	}
	return int(m.Snake.Length())
}
