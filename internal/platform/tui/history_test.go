package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

func newTestRecorder(t *testing.T) (*Recorder, *storage.Store, *bytes.Buffer) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return NewRecorder(logger, store), store, &buf
}

func TestRecorderSavesFinishedRuns(t *testing.T) {
	r, store, _ := newTestRecorder(t)

	r.Record(core.Event{Kind: core.EventSessionStart, Seed: 77, Size: 25, Health: 3})
	r.Record(core.Event{
		Kind:     core.EventSessionEnd,
		Reason:   "game_over",
		Size:     60,
		Eaten:    9,
		Hits:     3,
		Duration: 42 * time.Second,
	})

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Outcome != storage.OutcomeGameOver || got.FinalSize != 60 || got.Eaten != 9 ||
		got.Hits != 3 || got.Seed != 77 || got.Duration != 42*time.Second {
		t.Errorf("Unexpected run: %+v", got)
	}
	if r.Best() != 60 {
		t.Errorf("Best should follow the saved run, got %d", r.Best())
	}
}

func TestRecorderSkipsQuit(t *testing.T) {
	r, store, _ := newTestRecorder(t)

	r.Record(core.Event{Kind: core.EventSessionEnd, Reason: "quit", Size: 80})

	runs, _ := store.AllRuns()
	if len(runs) != 0 {
		t.Errorf("Quit runs should not be recorded, got %d", len(runs))
	}
}

func TestRecorderLogsEvents(t *testing.T) {
	r, _, buf := newTestRecorder(t)

	r.Record(core.Event{Kind: core.EventSessionStart, Seed: 5})
	r.Record(core.Event{Kind: core.EventEat, Size: 27})
	r.Record(core.Event{Kind: core.EventHit, Health: 2})
	r.Record(core.Event{Kind: core.EventWin, Size: 301})
	r.Record(core.Event{Kind: core.EventGameOver})

	out := buf.String()
	for _, want := range []string{"session start", "eat", "hit", "omega dragon", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log should mention %q:\n%s", want, out)
		}
	}
}

func TestRecorderPreloadsBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.RunRecord{Outcome: storage.OutcomeRestart, FinalSize: 320})

	r := NewRecorder(log.New(&bytes.Buffer{}), store)
	if r.Best() != 320 {
		t.Errorf("Expected best 320 from store, got %d", r.Best())
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(log.New(&bytes.Buffer{}), nil)
	r.Record(core.Event{Kind: core.EventSessionEnd, Reason: "game_over", Size: 40})
	if r.Best() != 0 {
		t.Errorf("Without a store nothing is saved, best %d", r.Best())
	}
}
