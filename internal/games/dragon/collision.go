package dragon

import "github.com/vovakirdan/dragon-arcade/internal/core"

// GrowthFor returns how much the player grows by eating an enemy of the
// given area: floor(area^0.2) + 1.
func GrowthFor(area int) int {
	return fifthRoot(area) + 1
}

// fifthRoot returns the largest k with k^5 <= n, avoiding float rounding on
// exact powers such as 32 or 243.
func fifthRoot(n int) int {
	if n <= 0 {
		return 0
	}
	k := 0
	for pow5(k+1) <= n {
		k++
	}
	return k
}

func pow5(k int) int {
	return k * k * k * k * k
}

// resolveCollisions applies eat-or-be-eaten to every enemy touching the
// player. Enemies are scanned back to front so removals keep indices valid.
func (s *Session) resolveCollisions() {
	body := s.playerBody()

	for i := len(s.pop.enemies) - 1; i >= 0; i-- {
		enemy := s.pop.enemies[i]
		if !body.Intersects(enemy.BodyRect()) {
			continue
		}

		if enemy.Area() <= s.player.Area() {
			s.eat(i, enemy)
			continue
		}

		if !s.invulnerable {
			s.takeHit()
			if s.gameOver {
				return
			}
		}
	}
}

// eat grows the player by the enemy at index i and removes it.
func (s *Session) eat(i int, enemy EnemyState) {
	s.player.Size += GrowthFor(enemy.Area())
	s.pop.Remove(i)
	s.eaten++
	s.emit(core.EventEat)

	if s.player.Size > s.cfg.Player.WinSize && !s.won {
		s.won = true
		s.emit(core.EventWin)
	}
}

// takeHit costs one health and starts the invulnerability window.
func (s *Session) takeHit() {
	now := s.clock.Now()
	s.invulnerable = true
	s.invulnStart = now
	s.player.Health--
	s.hits++

	if s.player.Health < 0 {
		panic("dragon: player health went negative")
	}
	s.emit(core.EventHit)

	if s.player.Health == 0 {
		s.gameOver = true
		s.gameOverAt = now
		s.emit(core.EventGameOver)
	}
}
