package game

import (
	"fmt"
	"log"
	"math"

	"pacmaze/internal/audio"
	"pacmaze/internal/config"
	"pacmaze/internal/graphics"
	"pacmaze/internal/level"
	"pacmaze/internal/monitoring"
	"pacmaze/internal/patrol"
	"pacmaze/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// alertInterval is how many ticks pass between timing checks
const alertInterval = 600

// hoverCell is the full-grid cell under the mouse cursor
type hoverCell struct {
	row, col int
	ok       bool
}

// PacGame shows the generated level with the patrolling actor on top
type PacGame struct {
	config   *config.Config
	catalog  *world.TileManager
	scene    *world.Scene
	builder  *world.LevelBuilder
	sprites  *graphics.SpriteManager
	walker   *patrol.Walker
	sound    *audio.SoundManager
	input    *InputHandler
	renderer *Renderer
	hud      *HUD
	stats    *monitoring.FrameStats
	loader   *level.MapLoader

	clock         float64 // Seconds since start, drives the actor's mouth
	ticks         int
	hover         hoverCell
	width, height int
	showLegend    bool
}

// NewPacGame builds the first level and prepares the actor and sound
func NewPacGame(cfg *config.Config, catalog *world.TileManager, grid *level.SourceGrid) (*PacGame, error) {
	walker, err := patrol.NewWalkerFromConfig(cfg.Patrol)
	if err != nil {
		return nil, fmt.Errorf("failed to create patrol: %w", err)
	}

	scene := world.NewScene(catalog)
	g := &PacGame{
		config:     cfg,
		catalog:    catalog,
		scene:      scene,
		builder:    world.NewLevelBuilder(cfg, scene, grid),
		sprites:    graphics.NewSpriteManager(catalog, cfg.Display.TilePixels),
		walker:     walker,
		sound:      audio.NewSoundManager(cfg.Audio),
		stats:      monitoring.NewFrameStats(cfg.Display.MinFPS),
		loader:     level.NewMapLoader(false).WithLetters(catalog),
		width:      cfg.GetScreenWidth(),
		height:     cfg.GetScreenHeight(),
		showLegend: true,
	}
	g.input = NewInputHandler(g)
	g.renderer = NewRenderer(g)
	g.hud = NewHUD(g)

	if err := g.rebuild(); err != nil {
		return nil, err
	}

	// Non-fatal, the level runs without sound
	if err := g.sound.Initialize(); err != nil {
		log.Printf("Warning: audio initialization failed: %v", err)
	}
	g.sound.SetMoving(g.walker.Moving())

	return g, nil
}

// Regenerate reloads the map file, so saved edits show up, then tears down
// the current level and builds it again. An unreadable map keeps the grid
// already in use.
func (g *PacGame) Regenerate() {
	if grid, err := g.loader.LoadMap(g.config.Level.MapFile); err != nil {
		log.Printf("Warning: keeping the current map: %v", err)
	} else {
		g.builder.SetGrid(grid)
	}
	if err := g.rebuild(); err != nil {
		log.Printf("Warning: failed to regenerate level: %v", err)
	}
	g.builder.Refit(float64(g.width) / float64(g.height))
}

func (g *PacGame) rebuild() error {
	var err error
	g.stats.TimeBuild(func() {
		_, err = g.builder.Rebuild()
	})
	return err
}

// Update advances one tick
func (g *PacGame) Update() error {
	if err := g.input.HandleInput(); err != nil {
		return err
	}

	mx, my := ebiten.CursorPosition()
	g.hover = g.cellAt(float64(mx), float64(my))

	dt := 1.0 / float64(ebiten.TPS())
	g.clock += dt
	g.walker.Update(dt)
	g.sound.SetMoving(g.walker.Moving())

	g.ticks++
	if g.ticks%alertInterval == 0 {
		for _, alert := range g.stats.Alerts() {
			log.Printf("Warning: %s (%.1f, threshold %.1f)", alert.Message, alert.Value, alert.Threshold)
		}
	}
	return nil
}

func (g *PacGame) Draw(screen *ebiten.Image) {
	timer := g.stats.StartFrame()
	g.renderer.Draw(screen)
	g.hud.Draw(screen)
	timer.EndFrame()
}

// cellAt returns the full-grid cell drawn at screen position (sx, sy)
func (g *PacGame) cellAt(sx, sy float64) hoverCell {
	grid := g.builder.Grid()
	if grid == nil {
		return hoverCell{}
	}
	wx, wy := g.builder.View().ScreenToWorld(sx, sy, g.width, g.height)
	col := int(math.Round(wx))
	row := int(math.Round(-wy))
	if row < 0 || col < 0 || row >= grid.FullHeight() || col >= grid.FullWidth() {
		return hoverCell{}
	}
	return hoverCell{row: row, col: col, ok: true}
}

// Layout follows the window and reframes the camera when its shape changes
func (g *PacGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.builder.Refit(float64(outsideWidth) / float64(outsideHeight))
	}
	return g.width, g.height
}

// Close releases the audio device
func (g *PacGame) Close() {
	g.sound.Cleanup()
}
