package main

import (
	"os"
	"path/filepath"
	"testing"
)

func withFlags(t *testing.T, configPath, difficulty string) {
	t.Helper()
	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = configPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldConfig, oldDifficulty
	})
}

func TestLoadConfigPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	withFlags(t, "", "hard")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Physics.Gravity != 470 || cfg.Enemies.MinCount != 3 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	dir := t.TempDir()
	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("arena:\n  width: 20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		difficulty string
	}{
		{"unknown preset", "", "nightmare"},
		{"missing file", filepath.Join(dir, "nope.yaml"), ""},
		{"arena too small to spawn", tiny, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			withFlags(t, tc.path, tc.difficulty)
			if _, err := loadConfig(); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restoring working directory failed: %v", err)
		}
	})
}
