package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pacmaze/internal/camera"
	"pacmaze/internal/config"
	"pacmaze/internal/level"
	"pacmaze/internal/world"
)

func newTestGame(t *testing.T) *PacGame {
	t.Helper()
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Display.ScreenWidth = 620
	cfg.Display.ScreenHeight = 620

	catalog := world.NewTileManager()
	if err := catalog.LoadTileConfig(filepath.Join("..", "..", "assets", "tiles.yaml")); err != nil {
		t.Fatalf("Failed to load tile config: %v", err)
	}

	g, err := NewPacGame(cfg, catalog, level.ReferenceGrid())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTileTransform(t *testing.T) {
	view := camera.Fit(27, 29, 1.0) // 20 px per unit on a 620px screen

	tile := &world.Tile{X: 0, Y: 0, Rotation: 0}
	geo := tileTransform(view, tile, 32, 620, 620)
	if x, y := geo.Apply(0, 0); !approx(x, 30) || !approx(y, 10) {
		t.Errorf("Expected sprite top-left at (30,10), got (%v,%v)", x, y)
	}
	if x, y := geo.Apply(32, 32); !approx(x, 50) || !approx(y, 30) {
		t.Errorf("Expected sprite bottom-right at (50,30), got (%v,%v)", x, y)
	}

	// A quarter turn moves the sprite's top-right corner to the bottom-right
	tile.Rotation = 90
	geo = tileTransform(view, tile, 32, 620, 620)
	if x, y := geo.Apply(32, 0); !approx(x, 50) || !approx(y, 30) {
		t.Errorf("Expected rotated top-right at (50,30), got (%v,%v)", x, y)
	}
}

func TestNewPacGameBuildsLevel(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	if g.builder.Current() == nil || len(g.builder.Current().Tiles()) != 699 {
		t.Fatalf("Expected a 699 tile level")
	}
	if g.sound.Moving() != g.walker.Moving() {
		t.Error("Expected movement sound to follow the walker")
	}
}

func TestRegenerateKeepsOneLevel(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	first := g.builder.Current()
	g.Regenerate()

	if first.Alive() {
		t.Error("Expected previous level to be destroyed")
	}
	if len(g.scene.Groups()) != 1 || g.scene.TileCount() != 699 {
		t.Errorf("Expected a single 699 tile level, got %d groups and %d tiles",
			len(g.scene.Groups()), g.scene.TileCount())
	}
}

func TestLayoutRefitsCamera(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	w, h := g.Layout(310, 620)
	if w != 310 || h != 620 {
		t.Errorf("Expected layout to follow the window, got %dx%d", w, h)
	}
	if g.builder.View().OrthoSize != 28 {
		t.Errorf("Expected size 28 for a half-width window, got %v", g.builder.View().OrthoSize)
	}

	if w, h := g.Layout(0, 0); w != 310 || h != 620 {
		t.Errorf("Expected zero sizes to be ignored, got %dx%d", w, h)
	}
}

func TestLegendEntries(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	entries := legendEntries(g.builder.Current(), g.catalog)
	want := map[level.TileKind]int{
		level.OutsideCorner: 9,
		level.OutsideWall:   144,
		level.InsideCorner:  88,
		level.InsideWall:    164,
		level.Pellet:        280,
		level.PowerPellet:   8,
		level.TJunction:     4,
		level.GhostExitWall: 2,
	}

	if len(entries) != len(want) {
		t.Fatalf("Expected %d legend entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Count != want[e.Kind] {
			t.Errorf("%s: expected %d, got %d", e.Kind, want[e.Kind], e.Count)
		}
		if i > 0 && entries[i-1].Kind >= e.Kind {
			t.Errorf("Legend not in code order at %d", i)
		}
	}
	if entries[0].Label != "Outside Corner" {
		t.Errorf("Expected catalog name as label, got %q", entries[0].Label)
	}

	if legendEntries(nil, g.catalog) != nil {
		t.Error("Expected no legend without a level")
	}
}

func TestStatusLines(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	lines := statusLines(g)
	if !strings.Contains(lines[0], "699 tiles") {
		t.Errorf("Expected tile count in %q", lines[0])
	}
	if !strings.Contains(lines[1], "WalkRight") {
		t.Errorf("Expected starting animation in %q", lines[1])
	}
	if lines[2] != "Lap 0, waypoint 1" {
		t.Errorf("Expected patrol progress, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Frame 0.0 ms") {
		t.Errorf("Expected no frames drawn yet in %q", lines[3])
	}
	if len(lines) != 5 {
		t.Errorf("Expected no cell line without a cursor, got %d lines", len(lines))
	}

	g.hover = g.cellAt(40, 20)
	lines = statusLines(g)
	if len(lines) != 6 || lines[4] != "Cell 0,0" {
		t.Errorf("Expected the hovered cell, got %q", lines)
	}
	if g.stats.Snapshot().Builds != 1 {
		t.Errorf("Expected the first build to be timed, got %d", g.stats.Snapshot().Builds)
	}
}

func TestCellAt(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	// 20 px per unit on a 620px screen, cell (0,0) centred at (40,20)
	tests := []struct {
		sx, sy   float64
		row, col int
		ok       bool
	}{
		{40, 20, 0, 0, true},
		{45, 29, 0, 0, true},
		{51, 20, 0, 1, true},
		{40 + 26*20, 20 + 28*20, 28, 26, true},
		{5, 5, 0, 0, false},
		{615, 615, 0, 0, false},
	}
	for _, tt := range tests {
		got := g.cellAt(tt.sx, tt.sy)
		if got.ok != tt.ok || (tt.ok && (got.row != tt.row || got.col != tt.col)) {
			t.Errorf("cellAt(%v,%v) = %+v, want row %d col %d ok %v", tt.sx, tt.sy, got, tt.row, tt.col, tt.ok)
		}
	}
}

func TestRegenerateReloadsMapFile(t *testing.T) {
	g := newTestGame(t)
	defer g.Close()

	// Catalog letters and digits mix freely in a row
	mapPath := filepath.Join(t.TempDir(), "small.map")
	if err := os.WriteFile(mapPath, []byte("O=\n=5\n"), 0o644); err != nil {
		t.Fatalf("Failed to write map: %v", err)
	}
	g.config.Level.MapFile = mapPath
	g.Regenerate()

	if g.scene.TileCount() != 9 {
		t.Errorf("Expected the 3x3 level from the edited map, got %d tiles", g.scene.TileCount())
	}

	// A missing file keeps the grid already in use
	g.config.Level.MapFile = filepath.Join(t.TempDir(), "missing.map")
	g.Regenerate()
	if g.scene.TileCount() != 9 || g.builder.Builds() != 3 {
		t.Errorf("Expected a rebuild of the same grid, got %d tiles after %d builds",
			g.scene.TileCount(), g.builder.Builds())
	}
}
