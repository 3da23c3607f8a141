// Command map_dump prints a generated level to the terminal.
package main

import (
	"flag"
	"log"
	"os"

	"pacmaze/internal/config"
	"pacmaze/internal/dump"
	"pacmaze/internal/level"
	"pacmaze/internal/world"

	"github.com/leonelquinteros/gotext"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	mapPath := flag.String("map", "", "map file to dump (default: level.map_file from the config)")
	quadrant := flag.Bool("quadrant", false, "print only the authored quadrant")
	legend := flag.Bool("legend", true, "print the legend with tile counts")
	colorMode := flag.String("color", "auto", "colour output: auto, always or never")
	lang := flag.String("lang", "", "override locale.language from the config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("Warning: %v; using built-in defaults", err)
		cfg = config.Default()
	}

	language := cfg.Locale.Language
	if *lang != "" {
		language = *lang
	}
	gotext.Configure(cfg.Locale.Dir, language, cfg.Locale.Domain)

	catalog := world.NewTileManager()
	if err := catalog.LoadTileConfig(cfg.Level.TilesFile); err != nil {
		log.Fatalf("Failed to load tile config: %v", err)
	}

	path := cfg.Level.MapFile
	if *mapPath != "" {
		path = *mapPath
	}
	grid, err := level.NewMapLoader(false).WithLetters(catalog).LoadMap(path)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	opts := dump.Options{
		QuadrantOnly: *quadrant,
		Legend:       *legend,
	}
	switch *colorMode {
	case "always":
		opts.Color = true
	case "never":
		opts.Color = false
	default:
		opts.Color = dump.IsTerminal()
	}

	cols := grid.FullWidth()
	if opts.QuadrantOnly {
		cols = grid.Width()
	}
	if width, _ := dump.TerminalSize(); dump.IsTerminal() && !dump.Fits(cols, width) {
		log.Printf("Warning: level is %d columns wide but the terminal has %d", cols, width)
	}

	r := dump.NewRenderer(catalog, cfg.GetRotationOverrides())
	if err := r.Write(os.Stdout, grid, opts); err != nil {
		log.Fatalf("Failed to write level: %v", err)
	}
}
