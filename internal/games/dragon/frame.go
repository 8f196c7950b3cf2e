package dragon

import (
	"time"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// flashInterval is how long the invulnerable player stays visible or hidden.
const flashInterval = 100 * time.Millisecond

// Kind selects which sprite a drawable uses.
type Kind int

const (
	KindEnemy Kind = iota
	KindObstacle
	KindPlayer
)

// Drawable is one sprite to paint, already in screen space.
type Drawable struct {
	Kind    Kind
	Rect    core.Rect // Screen-space rectangle, bounce applied
	Facing  Facing
	Variant int  // Obstacle sprite index
	Edible  bool // Enemy is small enough for the player to eat
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Drawables []Drawable // Paint in order: enemies, obstacles, player
	Health    int
	MaxHealth int
	Size      int
	WinSize   int
	Phase     Phase
	Camera    Camera
	View      View
}

// Frame builds the drawable list for the current state.
func (s *Session) Frame() Frame {
	enemies := s.pop.Enemies()
	obstacles := s.pop.Obstacles()

	f := Frame{
		Drawables: make([]Drawable, 0, len(enemies)+len(obstacles)+1),
		Health:    s.player.Health,
		MaxHealth: s.cfg.Player.MaxHealth,
		Size:      s.player.Size,
		WinSize:   s.cfg.Player.WinSize,
		Phase:     s.Phase(),
		Camera:    s.camera,
		View:      s.view,
	}

	playerArea := s.player.Area()
	for _, e := range enemies {
		f.Drawables = append(f.Drawables, Drawable{
			Kind:   KindEnemy,
			Rect:   s.camera.ToScreen(e.BodyRect()),
			Facing: e.Facing,
			Edible: e.Area() <= playerArea,
		})
	}

	for _, o := range obstacles {
		f.Drawables = append(f.Drawables, Drawable{
			Kind:    KindObstacle,
			Rect:    s.camera.ToScreen(o.Rect()),
			Variant: o.Variant,
		})
	}

	if s.playerVisible() {
		f.Drawables = append(f.Drawables, Drawable{
			Kind:   KindPlayer,
			Rect:   s.camera.ToScreen(s.playerBody()),
			Facing: s.player.Facing,
		})
	}

	return f
}

// playerVisible hides the player after game over and blinks it while
// invulnerable.
func (s *Session) playerVisible() bool {
	if s.gameOver {
		return false
	}
	if !s.invulnerable {
		return true
	}
	elapsed := s.clock.Now().Sub(s.invulnStart)
	return (elapsed/flashInterval)%2 == 0
}
