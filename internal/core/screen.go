package core

import "strings"

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// blank is what every cell holds after Clear.
var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character framebuffer. Games draw into it; the platform turns
// it into terminal output. Writes outside the buffer are dropped, so callers
// can draw sprites that are partly off screen.
type Screen struct {
	width, height int
	cells         []Cell // Row-major, width*height
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// Resize changes the size and blanks the screen. Games redraw every frame,
// so old content is not kept.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	if n := s.width * s.height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// SetColored writes one cell.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text in the default color starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes text one rune per cell starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawRect fills r with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < x1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, y1, '─', c)
	}
	for y := r.Y + 1; y < y1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(x1, y, '│', c)
	}
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(x1, r.Y, '┐', c)
	s.SetColored(r.X, y1, '└', c)
	s.SetColored(x1, y1, '┘', c)
}

// Row returns row y without colors, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns all rows without colors, joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
