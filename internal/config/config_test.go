package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDragonConfig()) {
		t.Errorf("embedded defaults drifted from DefaultDragonConfig:\n%+v\n%+v", cfg, DefaultDragonConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestTimingDurations(t *testing.T) {
	timing := TimingConfig{InvulnSeconds: 2, GameOverSeconds: 0.5}

	if timing.InvulnTime() != 2*time.Second {
		t.Errorf("InvulnTime() = %v, expected 2s", timing.InvulnTime())
	}
	if timing.GameOverTime() != 500*time.Millisecond {
		t.Errorf("GameOverTime() = %v, expected 500ms", timing.GameOverTime())
	}
}

func TestLoadDragonCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragon.yaml")
	data := "player:\n  win_size: 120\npopulation:\n  enemies: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadDragon(path)
	if err != nil {
		t.Fatalf("LoadDragon() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Player.WinSize != 120 || cfg.Population.Enemies != 5 {
		t.Errorf("overrides not applied: win_size=%d enemies=%d", cfg.Player.WinSize, cfg.Population.Enemies)
	}

	// Untouched fields keep their defaults
	def := DefaultDragonConfig()
	if cfg.Player.StartSize != def.Player.StartSize {
		t.Errorf("start_size = %d, expected default %d", cfg.Player.StartSize, def.Player.StartSize)
	}
	if len(cfg.Obstacles.Variants) != len(def.Obstacles.Variants) {
		t.Errorf("variants = %d, expected default %d", len(cfg.Obstacles.Variants), len(def.Obstacles.Variants))
	}
}

func TestLoadDragonReplacesVariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragon.yaml")
	data := "obstacles:\n  variants:\n    - { width: 10, height: 12 }\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadDragon(path)
	if err != nil {
		t.Fatalf("LoadDragon() failed: %v", err)
	}
	want := []ObstacleVariant{{Width: 10, Height: 12}}
	if !reflect.DeepEqual(cfg.Obstacles.Variants, want) {
		t.Errorf("variants = %+v, expected %+v", cfg.Obstacles.Variants, want)
	}
}

func TestLoadDragonErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadDragon(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadDragon(broken); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  win_size: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadDragon(invalid)
	if err == nil || !strings.Contains(err.Error(), "win_size") {
		t.Errorf("win_size below start_size should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DragonConfig)
	}{
		{"zero view", func(c *DragonConfig) { c.World.ViewWidth = 0 }},
		{"slack too large", func(c *DragonConfig) { c.World.CameraSlack = 240 }},
		{"zero move rate", func(c *DragonConfig) { c.Player.MoveRate = 0 }},
		{"zero bounce rate", func(c *DragonConfig) { c.Player.BounceRate = 0 }},
		{"zero health", func(c *DragonConfig) { c.Player.MaxHealth = 0 }},
		{"zero fps", func(c *DragonConfig) { c.Timing.FPS = 0 }},
		{"negative timer", func(c *DragonConfig) { c.Timing.InvulnSeconds = -1 }},
		{"negative enemies", func(c *DragonConfig) { c.Population.Enemies = -1 }},
		{"inverted speed", func(c *DragonConfig) { c.Enemies.MaxSpeed = 1 }},
		{"zero min speed", func(c *DragonConfig) { c.Enemies.MinSpeed = 0 }},
		{"freq over 100", func(c *DragonConfig) { c.Enemies.DirChangeFreq = 101 }},
		{"inverted bounce rate", func(c *DragonConfig) { c.Enemies.MaxBounceRate = 5 }},
		{"inverted bounce height", func(c *DragonConfig) { c.Enemies.MaxBounceHeight = 5 }},
		{"no variants", func(c *DragonConfig) { c.Obstacles.Variants = nil }},
		{"empty variant", func(c *DragonConfig) { c.Obstacles.Variants[0].Height = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDragonConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadEnv(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}

	const key = "DRAGON_TEST_LOAD_ENV"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := GetEnv(key, "fallback"); got != "from-file" {
		t.Errorf("GetEnv() = %q, expected value from .env", got)
	}
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/runs.db")

	if got := GetEnv(EnvDBPath, "default"); got != "/tmp/runs.db" {
		t.Errorf("GetEnv() = %q, expected env value", got)
	}
	if got := GetEnv("DRAGON_TEST_UNSET_KEY", "default"); got != "default" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}
