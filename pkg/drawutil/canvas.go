// Package drawutil provides the terminal drawing side of the game: the
// box-drawing line glyphs the snake's body is stroked with, and Canvas,
// a cellbuf-backed implementation of geom.Surface.
package drawutil

import (
	"github.com/wesen/pambu/pkg/cellbuf"
	"github.com/wesen/pambu/pkg/geom"
)

// Default line glyphs, the curses ACS_HLINE/ACS_VLINE equivalents.
const (
	HLineGlyph = '─'
	VLineGlyph = '│'
)

// Canvas draws into a cellbuf.Buffer with a fixed style. Writes outside
// the buffer are clipped by the buffer itself, so callers never need
// bounds checks.
type Canvas struct {
	Buf   *cellbuf.Buffer
	Style cellbuf.StyleKey
}

var _ geom.Surface = (*Canvas)(nil)

// NewCanvas wraps a buffer as a drawing surface.
func NewCanvas(buf *cellbuf.Buffer, style cellbuf.StyleKey) *Canvas {
	return &Canvas{Buf: buf, Style: style}
}

// HLine draws length cells of the horizontal line glyph, extending east
// from origin.
func (c *Canvas) HLine(origin geom.Point, length int) {
	for i := 0; i < length; i++ {
		c.Buf.Set(origin.X+i, origin.Y, HLineGlyph, c.Style)
	}
}

// VLine draws length cells of the vertical line glyph, extending south
// from origin.
func (c *Canvas) VLine(origin geom.Point, length int) {
	for i := 0; i < length; i++ {
		c.Buf.Set(origin.X, origin.Y+i, VLineGlyph, c.Style)
	}
}

// PutRune places a single glyph at p. Used for the corner characters.
func (c *Canvas) PutRune(p geom.Point, glyph rune) {
	c.Buf.Set(p.X, p.Y, glyph, c.Style)
}
