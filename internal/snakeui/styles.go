package snakeui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/pambu/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette — CRT green terminal aesthetic.
var (
	colorBG = c("#080e0b")

	snakeColor   = c("#00d4a0")
	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")

	modalBorder = c("#ffcc00")
	modalText   = c("#ffee66")
)

// cellbuf style keys for the playfield layer.
const (
	styleBG    cellbuf.StyleKey = 0
	styleSnake cellbuf.StyleKey = 1
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:    lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	styleSnake: lipgloss.NewStyle().Foreground(snakeColor).Background(colorBG).Bold(true),
}
