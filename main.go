package main

import (
	"fmt"
	"log"

	"pacmaze/internal/config"
	"pacmaze/internal/game"
	"pacmaze/internal/level"
	"pacmaze/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Language, cfg.Locale.Domain)

	// Load tile catalog
	catalog := world.NewTileManager()
	if err := catalog.LoadTileConfig(cfg.Level.TilesFile); err != nil {
		return fmt.Errorf("failed to load tile config: %w", err)
	}
	for _, key := range catalog.UnknownKeys() {
		log.Printf("Warning: tile catalog entry %q does not match any tile kind", key)
	}

	grid := loadGrid(cfg, level.NewMapLoader(false).WithLetters(catalog))

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.NewPacGame(cfg, catalog, grid)
	if err != nil {
		return err
	}
	defer g.Close()

	return ebiten.RunGame(g)
}

// loadGrid reads the configured map, then the bundled map, then falls back to
// the built-in reference level
func loadGrid(cfg *config.Config, loader *level.MapLoader) *level.SourceGrid {
	grid, err := loader.LoadMap(cfg.Level.MapFile)
	if err == nil {
		return grid
	}
	log.Printf("Warning: %v; trying the bundled map", err)

	grid, err = loader.LoadDefaultMap()
	if err == nil {
		return grid
	}
	log.Printf("Warning: %v; using the built-in level", err)
	return level.ReferenceGrid()
}
