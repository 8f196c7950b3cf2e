package dragon

// Population owns the enemies and obstacles alive around the camera and
// keeps both at their target counts.
type Population struct {
	factory       *Factory
	rng           *Random
	view          View
	dirChangeFreq int

	enemies   []EnemyState
	obstacles []ObstacleState

	targetEnemies   int
	targetObstacles int
}

// NewPopulation creates an empty population. Nothing is spawned until the
// first Advance.
func NewPopulation(factory *Factory, rng *Random, view View, targetEnemies, targetObstacles, dirChangeFreq int) *Population {
	return &Population{
		factory:         factory,
		rng:             rng,
		view:            view,
		dirChangeFreq:   dirChangeFreq,
		enemies:         make([]EnemyState, 0, targetEnemies),
		obstacles:       make([]ObstacleState, 0, targetObstacles),
		targetEnemies:   targetEnemies,
		targetObstacles: targetObstacles,
	}
}

// Seed scatters n obstacles over the first screen.
func (p *Population) Seed(n int) {
	for range n {
		p.obstacles = append(p.obstacles, p.factory.ScatterObstacle())
	}
}

// Advance runs one frame: enemies move and bounce, anything outside the
// active area is dropped, then both lists are refilled to their targets.
func (p *Population) Advance(c Camera) {
	p.moveEnemies()
	p.cull(c)
	p.topUp(c)
}

// moveEnemies applies velocity and bounce, occasionally picking a new heading.
func (p *Population) moveEnemies() {
	for i := range p.enemies {
		e := &p.enemies[i]
		e.X += e.MoveX
		e.Y += e.MoveY
		e.Bounce = advanceBounce(e.Bounce, e.BounceRate)

		if p.rng.Percent(p.dirChangeFreq) {
			e.MoveX = p.factory.RandomVelocity()
			e.MoveY = p.factory.RandomVelocity()
			e.Facing = facingFor(e.MoveX)
		}
	}
}

// cull removes entities that left the active area, keeping list order.
func (p *Population) cull(c Camera) {
	keptObstacles := p.obstacles[:0]
	for _, o := range p.obstacles {
		if !IsOutsideActiveArea(c, p.view, o.Rect()) {
			keptObstacles = append(keptObstacles, o)
		}
	}
	p.obstacles = keptObstacles

	keptEnemies := p.enemies[:0]
	for _, e := range p.enemies {
		if !IsOutsideActiveArea(c, p.view, e.Rect()) {
			keptEnemies = append(keptEnemies, e)
		}
	}
	p.enemies = keptEnemies
}

// topUp spawns new entities off camera until the targets are met.
func (p *Population) topUp(c Camera) {
	for len(p.obstacles) < p.targetObstacles {
		p.obstacles = append(p.obstacles, p.factory.MakeObstacle(c))
	}
	for len(p.enemies) < p.targetEnemies {
		p.enemies = append(p.enemies, p.factory.MakeEnemy(c))
	}
}

// Remove deletes the enemy at index i.
func (p *Population) Remove(i int) {
	p.enemies = append(p.enemies[:i], p.enemies[i+1:]...)
}

// Enemies returns the live enemies. The slice is owned by the population.
func (p *Population) Enemies() []EnemyState {
	return p.enemies
}

// Obstacles returns the live obstacles. The slice is owned by the population.
func (p *Population) Obstacles() []ObstacleState {
	return p.obstacles
}
