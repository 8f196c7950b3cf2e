package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: 40}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := RunRecord{
		Outcome:   OutcomeRestart,
		FinalSize: 312,
		Eaten:     57,
		Hits:      2,
		Seed:      99,
		Duration:  95*time.Second + 250*time.Millisecond,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id {
		t.Errorf("ID: expected %d, got %d", id, got.ID)
	}
	if got.Outcome != want.Outcome || got.FinalSize != want.FinalSize ||
		got.Eaten != want.Eaten || got.Hits != want.Hits || got.Seed != want.Seed {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.Duration != want.Duration {
		t.Errorf("Duration: expected %v, got %v", want.Duration, got.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Errorf("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRunRequiresOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunRecord{FinalSize: 30}); err == nil {
		t.Error("Expected error for a run without outcome")
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, size := range []int{40, 310, 25, 120, 80} {
		if _, err := store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: size}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].FinalSize != 310 || runs[1].FinalSize != 120 || runs[2].FinalSize != 80 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	// Non-positive limit falls back to 10
	runs, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected all 5 runs, got %d", len(runs))
	}
}

func TestStoreAllRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: 25 + i})
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Fatalf("Expected 20 runs, got %d", len(runs))
	}
	if runs[0].FinalSize != 44 {
		t.Errorf("Newest run should come first, got size %d", runs[0].FinalSize)
	}
}

func TestStoreBestSize(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestSize()
	if err != nil {
		t.Fatalf("BestSize() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: 100})
	store.SaveRun(RunRecord{Outcome: OutcomeRestart, FinalSize: 305})
	store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: 200})

	best, err = store.BestSize()
	if err != nil {
		t.Fatalf("BestSize() failed: %v", err)
	}
	if best != 305 {
		t.Errorf("Expected best size 305, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestSize != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", stats)
	}

	store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: 100, Eaten: 10})
	store.SaveRun(RunRecord{Outcome: OutcomeRestart, FinalSize: 302, Eaten: 60})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 {
		t.Errorf("Expected 2 runs and 1 win, got %+v", stats)
	}
	if stats.BestSize != 302 || stats.AvgSize != 201 || stats.TotalEaten != 70 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Errorf("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Outcome: OutcomeGameOver, FinalSize: 100})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.AllRuns()
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
