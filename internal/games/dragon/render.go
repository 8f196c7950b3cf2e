package dragon

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	EyeLeftChar  = '◀'
	EyeRightChar = '▶'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
	hudRows      = 1
)

// obstacleChars holds one fill glyph per obstacle variant, reused cyclically.
var obstacleChars = []rune{'▒', '░', '▓'}

// Overlay text
const (
	gameOverTitle = "Game Over"
	winTitle      = "You have achieved OMEGA DRAGON!"
	winSubtitle   = `(Press "r" to restart.)`
)

// Render draws the current frame, scaled from the world viewport to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	frame := g.session.Frame()
	sc := newScaler(frame.View, dst.Width(), dst.Height()-hudRows)

	for _, d := range frame.Drawables {
		cells := sc.cells(d.Rect)
		switch d.Kind {
		case KindEnemy:
			color := core.ColorThreat
			if d.Edible {
				color = core.ColorEdible
			}
			drawDragon(dst, cells, d.Facing, color)
		case KindObstacle:
			fill(dst, cells, obstacleChars[d.Variant%len(obstacleChars)], core.ColorRock)
		case KindPlayer:
			drawDragon(dst, cells, d.Facing, core.ColorPlayer)
		}
	}

	drawHUD(dst, frame)

	switch frame.Phase {
	case PhaseGameOver:
		drawCenteredMessage(dst, gameOverTitle, "")
	case PhaseWon:
		drawCenteredMessage(dst, winTitle, winSubtitle)
	}
}

// drawDragon fills the body and marks the head on the facing side.
func drawDragon(dst *core.Screen, r core.Rect, facing Facing, color core.Color) {
	fill(dst, r, BodyChar, color)
	if facing == FacingLeft {
		setField(dst, r.X, r.Y, EyeLeftChar, color)
	} else {
		setField(dst, r.Right()-1, r.Y, EyeRightChar, color)
	}
}

// drawHUD draws the health meter and growth progress on the top row.
func drawHUD(dst *core.Screen, f Frame) {
	hearts := strings.Repeat(string(HeartFull), f.Health) +
		strings.Repeat(string(HeartEmpty), f.MaxHealth-f.Health)
	dst.DrawTextColored(1, 0, hearts, core.ColorHeart)

	progress := fmt.Sprintf("Size %d/%d", f.Size, f.WinSize)
	dst.DrawTextColored(f.MaxHealth+3, 0, progress, core.ColorText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := max(titleLen, subtitleLen) + 4
	boxH := 3
	if subtitle != "" {
		boxH = 5
	}
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorFrame)

	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, core.ColorFrame)
	if subtitle != "" {
		dst.DrawTextColored(box.X+(boxW-subtitleLen)/2, box.Y+3, subtitle, core.ColorText)
	}
}

// fill paints a field rectangle, leaving the HUD rows alone.
func fill(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			setField(dst, x, y, ch, color)
		}
	}
}

// setField sets a cell in field coordinates (row 0 is just below the HUD).
func setField(dst *core.Screen, x, y int, ch rune, color core.Color) {
	if y < 0 {
		return
	}
	dst.SetColored(x, y+hudRows, ch, color)
}

// scaler maps screen-space pixels to terminal cells.
type scaler struct {
	view       View
	cols, rows int
}

func newScaler(view View, cols, rows int) scaler {
	return scaler{view: view, cols: max(cols, 1), rows: max(rows, 1)}
}

// cells converts a pixel rectangle to the covering cell rectangle. Anything
// visible gets at least one cell.
func (s scaler) cells(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*s.cols, s.view.W)
	y0 := floorDiv(r.Y*s.rows, s.view.H)
	x1 := ceilDiv(r.Right()*s.cols, s.view.W)
	y1 := ceilDiv(r.Bottom()*s.rows, s.view.H)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
