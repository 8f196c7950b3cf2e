package dragon

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	PlayerX   int
	PlayerY   int
	Size      int
	Health    int
	Bounce    int
	CameraX   int
	CameraY   int
	Enemies   int
	Obstacles int
	Eaten     int
	Hits      int
	// EnemyHash folds every enemy position so diverging spawns show up.
	EnemyHash int64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	var hash int64
	for _, e := range s.pop.Enemies() {
		hash = hash*31 + int64(e.X)
		hash = hash*31 + int64(e.Y)
		hash = hash*31 + int64(e.Width*e.Height)
	}

	return Snapshot{
		Tick:      s.ticks,
		Phase:     s.Phase(),
		PlayerX:   s.player.X,
		PlayerY:   s.player.Y,
		Size:      s.player.Size,
		Health:    s.player.Health,
		Bounce:    s.player.Bounce,
		CameraX:   s.camera.X,
		CameraY:   s.camera.Y,
		Enemies:   len(s.pop.Enemies()),
		Obstacles: len(s.pop.Obstacles()),
		Eaten:     s.eaten,
		Hits:      s.hits,
		EnemyHash: hash,
	}
}
