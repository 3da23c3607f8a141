package level

import (
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Placement is a request to put one tile into the world.
type Placement struct {
	Kind     TileKind
	Cell     Cell // Position in the full grid
	Source   Cell // Cell of the source grid that produced it
	Quadrant Quadrant
	X, Y, Z  float64 // World position, one unit per cell, y pointing up
	Rotation Rotation
	FlipH    bool
	FlipV    bool
}

// TileSink receives placements. Implementations resolve the kind to an asset
// and make it live; the expander never waits for an acknowledgement.
type TileSink interface {
	PlaceTile(kind TileKind, x, y float64, rotation float64)
}

// QuadrantMirrorExpander rebuilds a full symmetric level from its top-left
// quadrant.
type QuadrantMirrorExpander struct {
	overrides Overrides
}

// NewQuadrantMirrorExpander creates an expander. overrides pins T-junction
// rotations by source cell and may be nil.
func NewQuadrantMirrorExpander(overrides Overrides) *QuadrantMirrorExpander {
	return &QuadrantMirrorExpander{overrides: overrides}
}

// Expand yields one placement per non-empty full-grid cell in row-major order.
// Ranging over the result again repeats the same sweep.
func (e *QuadrantMirrorExpander) Expand(grid *SourceGrid) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		solver := NewRotationSolver(grid, e.overrides)
		for row := 0; row < grid.FullHeight(); row++ {
			for col := 0; col < grid.FullWidth(); col++ {
				m := grid.Resolve(row, col)
				if grid.isSeamDuplicate(row, col) {
					continue
				}

				kind := grid.KindAt(m.Source.Row, m.Source.Col)
				if kind == Empty {
					continue
				}

				p := Placement{
					Kind:     kind,
					Cell:     Cell{Row: row, Col: col},
					Source:   m.Source,
					Quadrant: m.Quadrant,
					X:        float64(col),
					Y:        -float64(row),
					Rotation: solver.Rotation(m.Source.Row, m.Source.Col, m.Quadrant),
					FlipH:    m.Quadrant.FlipH(),
					FlipV:    m.Quadrant.FlipV(),
				}
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Generate expands grid into sink and returns the number of placements made.
// A nil sink or grid is reported before anything is placed.
func (e *QuadrantMirrorExpander) Generate(grid *SourceGrid, sink TileSink) (int, error) {
	if sink == nil {
		return 0, &ConfigurationError{Component: "level generator", Reason: "no tile sink configured"}
	}
	if grid == nil {
		return 0, &ConfigurationError{Component: "level generator", Reason: "no source grid loaded"}
	}

	placed := 0
	for p := range e.Expand(grid) {
		sink.PlaceTile(p.Kind, p.X, p.Y, p.Rotation.Degrees())
		placed++
	}
	return placed, nil
}

// Collect gathers the whole expansion into a slice.
func (e *QuadrantMirrorExpander) Collect(grid *SourceGrid) []Placement {
	var out []Placement
	for p := range e.Expand(grid) {
		out = append(out, p)
	}
	return out
}

// FallbackCorners returns the source cells whose corner rotation could not be
// classified from neighbours and came from the position fallback instead.
func FallbackCorners(grid *SourceGrid) mapset.Set[Cell] {
	cells := mapset.New[Cell]()
	solver := NewRotationSolver(grid, nil)
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if !grid.KindAt(row, col).IsCorner() {
				continue
			}
			if _, fallback := solver.cornerRotation(row, col); fallback {
				cells.Put(Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}
