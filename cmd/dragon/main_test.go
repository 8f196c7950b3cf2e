package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

func TestOpenLoggerDisabled(t *testing.T) {
	for _, path := range []string{"", "-"} {
		logger, closer, err := openLogger(path, "info")
		if err != nil {
			t.Fatalf("openLogger(%q) failed: %v", path, err)
		}
		logger.Info("dropped")
		if err := closer.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dragon.log")

	logger, closer, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger failed: %v", err)
	}
	logger.Debug("eat", "size", 27)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Log file not created: %v", err)
	}
	if !strings.Contains(string(data), "eat") || !strings.Contains(string(data), "dragon") {
		t.Errorf("Unexpected log contents: %q", data)
	}
}

func TestOpenLoggerBadLevel(t *testing.T) {
	if _, _, err := openLogger("-", "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestPrintRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printRuns(&buf, store, 10); err != nil {
		t.Fatalf("printRuns failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet") {
		t.Errorf("Empty history should say so:\n%s", buf.String())
	}

	store.SaveRun(storage.RunRecord{Outcome: storage.OutcomeRestart, FinalSize: 304, Eaten: 66, Duration: 125 * time.Second})
	store.SaveRun(storage.RunRecord{Outcome: storage.OutcomeGameOver, FinalSize: 51, Hits: 3})

	buf.Reset()
	if err := printRuns(&buf, store, 10); err != nil {
		t.Fatalf("printRuns failed: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "304") > strings.Index(out, "51 ") {
		t.Errorf("Biggest run should be listed first:\n%s", out)
	}
	for _, want := range []string{"2:05", "Runs: 2", "OMEGA: 1", "Best: 304"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output should contain %q:\n%s", want, out)
		}
	}
}
