package geom

// Surface is the drawing target segments render onto. Implementations
// draw horizontal and vertical runs of their default line glyph and
// place single corner glyphs.
type Surface interface {
	// HLine draws length cells of the default horizontal glyph,
	// extending east from origin.
	HLine(origin Point, length int)
	// VLine draws length cells of the default vertical glyph,
	// extending south from origin.
	VLine(origin Point, length int)
	// PutRune places a single glyph at p.
	PutRune(p Point, glyph rune)
}

// Corner glyphs written where a horizontal and a vertical segment meet.
// Same set as the curses ACS corner characters.
const (
	UpperLeftCorner  = '┌'
	LowerLeftCorner  = '└'
	UpperRightCorner = '┐'
	LowerRightCorner = '┘'
)
