package main

import (
	"path/filepath"
	"testing"

	"pacmaze/internal/config"
	"pacmaze/internal/level"
)

func TestLoadGridFallsBackToBundledMap(t *testing.T) {
	cfg := config.Default()
	cfg.Level.MapFile = filepath.Join(t.TempDir(), "missing.map")

	grid := loadGrid(cfg, level.NewMapLoader(false))
	if grid.Height() != 15 || grid.Width() != 14 {
		t.Errorf("Expected the bundled 15x14 quadrant, got %dx%d", grid.Height(), grid.Width())
	}
}

func TestLoadGridUsesConfiguredMap(t *testing.T) {
	cfg := config.Default()
	cfg.Level.MapFile = filepath.Join("assets", "levels", "pacstudent.map")

	grid := loadGrid(cfg, level.NewMapLoader(false))
	if grid.FullHeight() != 29 || grid.FullWidth() != 27 {
		t.Errorf("Expected a 29x27 level, got %dx%d", grid.FullHeight(), grid.FullWidth())
	}
}
