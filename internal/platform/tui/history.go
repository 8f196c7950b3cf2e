package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

// Recorder logs game events and writes finished runs to the history store.
// A nil store disables history.
type Recorder struct {
	logger *log.Logger
	store  *storage.Store
	seed   int64
	best   int
}

// NewRecorder creates a recorder. The best size is preloaded from the store
// so new records can be announced.
func NewRecorder(logger *log.Logger, store *storage.Store) *Recorder {
	r := &Recorder{logger: logger, store: store}
	if store != nil {
		best, err := store.BestSize()
		if err != nil {
			logger.Warn("cannot read best size", "err", err)
		}
		r.best = best
	}
	return r
}

// Record handles one event.
func (r *Recorder) Record(ev core.Event) {
	switch ev.Kind {
	case core.EventSessionStart:
		r.seed = ev.Seed
		r.logger.Info("session start", "seed", ev.Seed, "size", ev.Size, "health", ev.Health)
	case core.EventEat:
		r.logger.Debug("eat", "size", ev.Size, "eaten", ev.Eaten)
	case core.EventHit:
		r.logger.Info("hit", "health", ev.Health, "size", ev.Size)
	case core.EventWin:
		r.logger.Info("omega dragon", "size", ev.Size, "eaten", ev.Eaten)
	case core.EventGameOver:
		r.logger.Info("game over", "size", ev.Size, "eaten", ev.Eaten)
	case core.EventSessionEnd:
		r.logger.Info("session end",
			"reason", ev.Reason,
			"size", ev.Size,
			"eaten", ev.Eaten,
			"hits", ev.Hits,
			"duration", ev.Duration,
		)
		r.save(ev)
	}
}

// save stores runs that ended by game over or by restarting after a win.
// Quitting mid-run is not recorded.
func (r *Recorder) save(ev core.Event) {
	if r.store == nil {
		return
	}
	if ev.Reason != storage.OutcomeGameOver && ev.Reason != storage.OutcomeRestart {
		return
	}

	_, err := r.store.SaveRun(storage.RunRecord{
		Outcome:   ev.Reason,
		FinalSize: ev.Size,
		Eaten:     ev.Eaten,
		Hits:      ev.Hits,
		Seed:      r.seed,
		Duration:  ev.Duration,
	})
	if err != nil {
		r.logger.Error("cannot save run", "err", err)
		return
	}

	if ev.Size > r.best {
		r.logger.Info("new best size", "size", ev.Size, "previous", r.best)
		r.best = ev.Size
	}
}

// Best returns the largest final size seen so far.
func (r *Recorder) Best() int {
	return r.best
}
