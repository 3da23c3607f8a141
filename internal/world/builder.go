package world

import (
	"fmt"
	"log"
	"sort"

	"pacmaze/internal/camera"
	"pacmaze/internal/config"
	"pacmaze/internal/level"
)

// LevelBuilder owns the live level: it tears the previous one down, expands
// the source grid into a fresh group and frames the camera on the result.
type LevelBuilder struct {
	config   *config.Config
	scene    *Scene
	expander *level.QuadrantMirrorExpander
	grid     *level.SourceGrid
	current  *Group
	view     camera.View
	builds   int
}

// NewLevelBuilder creates a builder for grid. Nothing is placed until Rebuild.
func NewLevelBuilder(cfg *config.Config, scene *Scene, grid *level.SourceGrid) *LevelBuilder {
	return &LevelBuilder{
		config:   cfg,
		scene:    scene,
		expander: level.NewQuadrantMirrorExpander(cfg.GetRotationOverrides()),
		grid:     grid,
	}
}

// Rebuild destroys the current level if one exists and generates a new one.
// On error the previous level is already gone and no group is current.
func (b *LevelBuilder) Rebuild() (*Group, error) {
	if b.current != nil {
		b.scene.Destroy(b.current)
		b.current = nil
	}
	if b.grid == nil {
		return nil, &level.ConfigurationError{Component: "level builder", Reason: "no source grid loaded"}
	}

	group, err := b.scene.NewGroup(b.config.Level.GroupName)
	if err != nil {
		return nil, fmt.Errorf("failed to create level group: %w", err)
	}

	placed, err := b.expander.Generate(b.grid, group)
	if err != nil {
		b.scene.Destroy(group)
		return nil, fmt.Errorf("failed to generate level: %w", err)
	}

	b.builds++
	b.current = group
	b.Refit(b.config.GetAspectRatio())

	b.reportSkipped(group)
	fmt.Printf("[LevelBuilder] Build %d: %d placements, %d tiles in %q (%dx%d)\n",
		b.builds, placed, len(group.Tiles()), group.Name, b.grid.FullWidth(), b.grid.FullHeight())
	return group, nil
}

func (b *LevelBuilder) reportSkipped(group *Group) {
	skipped := group.Skipped()
	kinds := make([]level.TileKind, 0, len(skipped))
	for kind := range skipped {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, kind := range kinds {
		log.Printf("Warning: no tile asset for %s, skipped %d placements", kind, skipped[kind])
	}
}

// Refit recomputes the camera for a new aspect ratio
func (b *LevelBuilder) Refit(aspectRatio float64) camera.View {
	if b.grid == nil || aspectRatio <= 0 {
		return b.view
	}
	b.view = camera.FitPadded(b.grid.FullWidth(), b.grid.FullHeight(), aspectRatio, b.config.Camera.Padding)
	return b.view
}

// SetGrid swaps the source grid. The new grid takes effect on the next Rebuild.
func (b *LevelBuilder) SetGrid(grid *level.SourceGrid) {
	b.grid = grid
}

func (b *LevelBuilder) Grid() *level.SourceGrid { return b.grid }

// Current returns the live level group, or nil before the first build
func (b *LevelBuilder) Current() *Group { return b.current }

func (b *LevelBuilder) View() camera.View { return b.view }

// Builds returns how many levels have been generated successfully
func (b *LevelBuilder) Builds() int { return b.builds }
