package dump

import (
	"fmt"
	"io"
	"strings"

	"pacmaze/internal/level"
	"pacmaze/internal/world"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// dynamicGet translates catalog names, which are not format strings
var dynamicGet = gotext.Get

// Options control how a level is written
type Options struct {
	Color        bool // Colour glyphs with the catalog colours
	QuadrantOnly bool // Only the authored top-left quadrant
	Legend       bool
}

// Renderer writes expansions of one grid as text
type Renderer struct {
	catalog  *world.TileManager
	expander *level.QuadrantMirrorExpander
}

func NewRenderer(catalog *world.TileManager, overrides level.Overrides) *Renderer {
	return &Renderer{
		catalog:  catalog,
		expander: level.NewQuadrantMirrorExpander(overrides),
	}
}

// Lines renders the grid as one string per row, without a trailing newline
func (r *Renderer) Lines(grid *level.SourceGrid, opts Options) []string {
	rows, cols := grid.FullHeight(), grid.FullWidth()
	if opts.QuadrantOnly {
		rows, cols = grid.Height(), grid.Width()
	}

	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
		for j := range cells[i] {
			cells[i][j] = " "
		}
	}

	for p := range r.expander.Expand(grid) {
		if p.Cell.Row >= rows || p.Cell.Col >= cols {
			continue
		}
		cells[p.Cell.Row][p.Cell.Col] = r.cell(p.Kind, p.Rotation, opts.Color)
	}

	lines := make([]string, rows)
	for i, row := range cells {
		lines[i] = strings.TrimRight(strings.Join(row, ""), " ")
	}
	return lines
}

func (r *Renderer) cell(kind level.TileKind, rotation level.Rotation, colored bool) string {
	double := false
	if data := r.catalog.GetTileData(kind); data != nil {
		double = data.DoubleLine
	}
	glyph := string(Glyph(kind, rotation, double))
	if !colored {
		return glyph
	}
	c := r.catalog.GetColor(kind)
	return color.RGB(uint8(c[0]), uint8(c[1]), uint8(c[2])).Sprint(glyph)
}

// LegendLines lists every kind present in the expansion with its glyph and
// count, labelled with the translated catalog name
func (r *Renderer) LegendLines(grid *level.SourceGrid) []string {
	counts := make(map[level.TileKind]int)
	total := 0
	for p := range r.expander.Expand(grid) {
		counts[p.Kind]++
		total++
	}

	lines := []string{gotext.Get("Legend")}
	for _, kind := range level.AllKinds() {
		n := counts[kind]
		if n == 0 {
			continue
		}
		double := false
		if data := r.catalog.GetTileData(kind); data != nil {
			double = data.DoubleLine
		}
		lines = append(lines, fmt.Sprintf("  %c  %-16s %4d", Glyph(kind, level.Rot0, double), dynamicGet(r.catalog.GetName(kind)), n))
	}
	lines = append(lines, fmt.Sprintf("     %-16s %4d", gotext.Get("Total"), total))
	return lines
}

// Write renders the grid, a heading and, if asked, the legend into w
func (r *Renderer) Write(w io.Writer, grid *level.SourceGrid, opts Options) error {
	rows, cols := grid.FullHeight(), grid.FullWidth()
	if opts.QuadrantOnly {
		rows, cols = grid.Height(), grid.Width()
	}

	heading := gotext.Get("Level %dx%d", cols, rows)
	if opts.Color {
		heading = color.Style{color.FgYellow, color.OpBold}.Sprint(heading)
	}
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}

	for _, line := range r.Lines(grid, opts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if !opts.Legend {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range r.LegendLines(grid) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
