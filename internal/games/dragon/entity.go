package dragon

import "github.com/vovakirdan/dragon-arcade/internal/core"

// Facing is the horizontal direction a dragon sprite looks at.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// String returns "left" or "right".
func (f Facing) String() string {
	if f == FacingRight {
		return "right"
	}
	return "left"
}

// facingFor derives the facing of a dragon moving horizontally by moveX.
func facingFor(moveX int) Facing {
	if moveX < 0 {
		return FacingLeft
	}
	return FacingRight
}

// PlayerState is the player's dragon. The sprite is always square.
type PlayerState struct {
	X, Y   int // World position of the top-left corner
	Facing Facing
	Size   int // Side length in pixels
	Bounce int // Bounce phase in [0, player bounce rate]
	Health int
}

// Rect returns the player's world rectangle without bounce.
func (p PlayerState) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Center returns the world coordinates of the sprite center.
func (p PlayerState) Center() (int, int) {
	return p.Rect().Center()
}

// BodyRect returns the world rectangle lifted by the bounce offset for the
// player's hop rate and height.
func (p PlayerState) BodyRect(rate, height int) core.Rect {
	return p.Rect().Translate(0, -BounceOffset(p.Bounce, rate, height))
}

// Area returns the sprite area used by the eat-or-be-eaten rule.
func (p PlayerState) Area() int {
	return p.Size * p.Size
}

// EnemyState is a computer-controlled dragon.
type EnemyState struct {
	X, Y          int
	Width, Height int
	MoveX, MoveY  int // Pixels per frame, never zero
	Facing        Facing
	Bounce        int
	BounceRate    int
	BounceHeight  int
}

// Rect returns the enemy's world rectangle without bounce.
func (e EnemyState) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// BodyRect returns the world rectangle lifted by the current bounce offset.
// This is the rectangle that is drawn and that collides with the player.
func (e EnemyState) BodyRect() core.Rect {
	return e.Rect().Translate(0, -BounceOffset(e.Bounce, e.BounceRate, e.BounceHeight))
}

// Area returns width*height.
func (e EnemyState) Area() int {
	return e.Width * e.Height
}

// ObstacleState is a decorative rock. It never collides with anything.
type ObstacleState struct {
	X, Y          int
	Width, Height int
	Variant       int // Index into the configured obstacle variants
}

// Rect returns the obstacle's world rectangle.
func (o ObstacleState) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}
