package drawutil

import (
	"testing"

	"github.com/wesen/pambu/pkg/cellbuf"
	"github.com/wesen/pambu/pkg/geom"
)

const (
	bg   cellbuf.StyleKey = 0
	body cellbuf.StyleKey = 1
)

func TestHLine(t *testing.T) {
	buf := cellbuf.New(10, 5, bg)
	c := NewCanvas(buf, body)
	c.HLine(geom.Point{Y: 2, X: 3}, 4)

	for x := 3; x < 7; x++ {
		cell := buf.Cells[2][x]
		if cell.Ch != HLineGlyph {
			t.Errorf("cell (%d,2): expected %c, got %c", x, HLineGlyph, cell.Ch)
		}
		if cell.Style != body {
			t.Errorf("cell (%d,2): expected style %d, got %d", x, body, cell.Style)
		}
	}
	// One past the run stays untouched
	if buf.Cells[2][7].Ch != ' ' {
		t.Errorf("cell (7,2) should be untouched, got %c", buf.Cells[2][7].Ch)
	}
}

func TestVLine(t *testing.T) {
	buf := cellbuf.New(10, 8, bg)
	c := NewCanvas(buf, body)
	c.VLine(geom.Point{Y: 1, X: 4}, 5)

	for y := 1; y < 6; y++ {
		cell := buf.Cells[y][4]
		if cell.Ch != VLineGlyph {
			t.Errorf("cell (4,%d): expected %c, got %c", y, VLineGlyph, cell.Ch)
		}
	}
	if buf.Cells[6][4].Ch != ' ' {
		t.Errorf("cell (4,6) should be untouched, got %c", buf.Cells[6][4].Ch)
	}
}

func TestPutRune(t *testing.T) {
	buf := cellbuf.New(10, 5, bg)
	c := NewCanvas(buf, body)
	c.PutRune(geom.Point{Y: 3, X: 6}, geom.LowerRightCorner)

	cell := buf.Cells[3][6]
	if cell.Ch != geom.LowerRightCorner || cell.Style != body {
		t.Errorf("expected ┘/body at (6,3), got %c/%d", cell.Ch, cell.Style)
	}
}

func TestZeroLengthStrokes(t *testing.T) {
	buf := cellbuf.New(5, 5, bg)
	c := NewCanvas(buf, body)
	c.HLine(geom.Point{Y: 2, X: 2}, 0)
	c.VLine(geom.Point{Y: 2, X: 2}, 0)

	if buf.Cells[2][2].Ch != ' ' {
		t.Errorf("zero-length stroke drew a cell: %c", buf.Cells[2][2].Ch)
	}
}

// Strokes leaving the buffer are clipped cell by cell, never panic.
func TestClipping(t *testing.T) {
	buf := cellbuf.New(5, 5, bg)
	c := NewCanvas(buf, body)
	c.HLine(geom.Point{Y: 2, X: 3}, 10)
	c.VLine(geom.Point{Y: -2, X: 1}, 10)
	c.PutRune(geom.Point{Y: 100, X: 100}, geom.UpperLeftCorner)

	if buf.Cells[2][3].Ch != HLineGlyph || buf.Cells[2][4].Ch != HLineGlyph {
		t.Error("in-bounds part of clipped hline missing")
	}
	for y := 0; y < 5; y++ {
		if buf.Cells[y][1].Ch != VLineGlyph {
			t.Errorf("in-bounds part of clipped vline missing at row %d", y)
		}
	}
}
