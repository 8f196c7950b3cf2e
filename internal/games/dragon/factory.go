package dragon

import (
	"fmt"

	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// maxSpawnAttempts bounds off-camera rejection sampling.
const maxSpawnAttempts = 10000

// Enemy size generation ranges.
const (
	enemyMinBase   = 5
	enemyMaxBase   = 25
	enemyMinMult   = 1
	enemyMaxMult   = 3
	enemyMaxJitter = 10
)

// Factory builds enemies and obstacles with randomized attributes.
type Factory struct {
	rng      *Random
	view     View
	enemies  config.EnemyConfig
	variants []config.ObstacleVariant
}

// NewFactory creates a factory drawing from rng.
func NewFactory(rng *Random, view View, enemies config.EnemyConfig, variants []config.ObstacleVariant) *Factory {
	return &Factory{
		rng:      rng,
		view:     view,
		enemies:  enemies,
		variants: variants,
	}
}

// MakeEnemy creates an enemy dragon somewhere outside the camera view.
func (f *Factory) MakeEnemy(c Camera) EnemyState {
	base := f.rng.Int(enemyMinBase, enemyMaxBase)
	mult := f.rng.Int(enemyMinMult, enemyMaxMult)

	e := EnemyState{
		Width:  (base + f.rng.Int(0, enemyMaxJitter)) * mult,
		Height: (base + f.rng.Int(0, enemyMaxJitter)) * mult,
	}
	e.X, e.Y = f.offCameraPosition(c, e.Width, e.Height)
	e.MoveX = f.RandomVelocity()
	e.MoveY = f.RandomVelocity()
	e.Facing = facingFor(e.MoveX)
	e.BounceRate = f.rng.Int(f.enemies.MinBounceRate, f.enemies.MaxBounceRate)
	e.BounceHeight = f.rng.Int(f.enemies.MinBounceHeight, f.enemies.MaxBounceHeight)
	return e
}

// MakeObstacle creates a rock somewhere outside the camera view.
func (f *Factory) MakeObstacle(c Camera) ObstacleState {
	o := f.newObstacle()
	o.X, o.Y = f.offCameraPosition(c, o.Width, o.Height)
	return o
}

// ScatterObstacle creates a rock anywhere on the first screen. It is only
// used to decorate a new session before the camera has moved.
func (f *Factory) ScatterObstacle() ObstacleState {
	o := f.newObstacle()
	o.X = f.rng.Int(0, f.view.W)
	o.Y = f.rng.Int(0, f.view.H)
	return o
}

// RandomVelocity returns a signed speed in [MinSpeed, MaxSpeed].
func (f *Factory) RandomVelocity() int {
	return f.rng.Int(f.enemies.MinSpeed, f.enemies.MaxSpeed) * f.rng.Sign()
}

func (f *Factory) newObstacle() ObstacleState {
	variant := f.rng.Int(0, len(f.variants)-1)
	size := f.variants[variant]
	return ObstacleState{
		Width:   size.Width,
		Height:  size.Height,
		Variant: variant,
	}
}

// offCameraPosition samples a top-left corner within one view of the camera
// on every side such that a w x h rectangle there misses the viewport.
func (f *Factory) offCameraPosition(c Camera, w, h int) (int, int) {
	viewport := c.Viewport(f.view)
	for range maxSpawnAttempts {
		x := f.rng.Int(c.X-f.view.W, c.X+2*f.view.W)
		y := f.rng.Int(c.Y-f.view.H, c.Y+2*f.view.H)
		if !core.NewRect(x, y, w, h).Intersects(viewport) {
			return x, y
		}
	}
	panic(fmt.Sprintf("dragon: no off-camera position for %dx%d after %d attempts", w, h, maxSpawnAttempts))
}
