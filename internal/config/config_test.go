package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  port: "9090"
gamification:
  points:
    gameWin: 100
  levels:
    1: 0
    2: 50
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("port = %s", cfg.Server.Port)
	}

	points := cfg.ActionPoints()
	if points.GameWin != 100 {
		t.Fatalf("configured gameWin not applied: %d", points.GameWin)
	}
	if points.CreatePost != 10 || points.ChallengeSubmission != 20 {
		t.Fatalf("unset points must fall back to defaults: %+v", points)
	}

	levels, err := cfg.LevelTable()
	if err != nil {
		t.Fatalf("level table: %v", err)
	}
	if levels.LevelFor(49) != 1 || levels.LevelFor(50) != 2 {
		t.Fatalf("configured levels not applied")
	}
}

func TestEmptyLevelsUseCanonicalTable(t *testing.T) {
	var cfg Config
	levels, err := cfg.LevelTable()
	if err != nil {
		t.Fatalf("level table: %v", err)
	}
	if levels.LevelFor(10000) != 10 {
		t.Fatalf("expected canonical top level 10")
	}
}

func TestTTLDuration(t *testing.T) {
	if d := TTLDuration("", time.Minute); d != time.Minute {
		t.Fatalf("empty must fall back, got %v", d)
	}
	if d := TTLDuration("30s", time.Minute); d != 30*time.Second {
		t.Fatalf("expected 30s, got %v", d)
	}
	if d := TTLDuration("bogus", time.Minute); d != time.Minute {
		t.Fatalf("invalid must fall back, got %v", d)
	}
}
