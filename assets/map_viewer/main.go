package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"pacmaze/internal/config"
	"pacmaze/internal/level"
	"pacmaze/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

const (
	tabInfo = iota
	tabLegend
)

// gridLayout places the full grid inside the map panel
type gridLayout struct {
	originX, originY int
	tileSize         int
	rows, cols       int
}

// cellAt returns the full-grid cell under a screen position
func (l gridLayout) cellAt(x, y int) (level.Cell, bool) {
	if l.tileSize <= 0 || x < l.originX || y < l.originY {
		return level.Cell{}, false
	}
	col := (x - l.originX) / l.tileSize
	row := (y - l.originY) / l.tileSize
	if row >= l.rows || col >= l.cols {
		return level.Cell{}, false
	}
	return level.Cell{Row: row, Col: col}, true
}

func fitLayout(x, y, w, h, rows, cols int) gridLayout {
	tileSize := w / cols
	if alt := h / rows; alt < tileSize {
		tileSize = alt
	}
	if tileSize < 2 {
		tileSize = 2
	}
	return gridLayout{
		originX:  x + (w-cols*tileSize)/2,
		originY:  y + (h-rows*tileSize)/2,
		tileSize: tileSize,
		rows:     rows,
		cols:     cols,
	}
}

type viewer struct {
	grid         *level.SourceGrid
	placements   map[level.Cell]level.Placement
	fallback     map[level.Cell]bool
	tileManager  *world.TileManager
	legendLines  []string
	legendScroll int
	sidebarTab   int
	showQuadrant bool
	layout       gridLayout
	hover        level.Cell
	hovering     bool
}

func newViewer(cfg *config.Config, grid *level.SourceGrid, tm *world.TileManager) *viewer {
	v := &viewer{
		grid:         grid,
		placements:   make(map[level.Cell]level.Placement),
		fallback:     make(map[level.Cell]bool),
		tileManager:  tm,
		sidebarTab:   tabInfo,
		showQuadrant: true,
	}

	expander := level.NewQuadrantMirrorExpander(cfg.GetRotationOverrides())
	for p := range expander.Expand(grid) {
		v.placements[p.Cell] = p
	}
	level.FallbackCorners(grid).Each(func(c level.Cell) {
		v.fallback[c] = true
	})
	v.legendLines = buildLegendLines(tm, grid)
	return v
}

func main() {
	ensureRuntimeCWD()

	cfg := config.MustLoadConfig("config.yaml")

	tm := world.NewTileManager()
	if err := tm.LoadTileConfig(cfg.Level.TilesFile); err != nil {
		log.Printf("Warning: Failed to load tile config: %v", err)
	}

	mapPath := cfg.Level.MapFile
	if len(os.Args) > 1 {
		mapPath = os.Args[1]
	}
	grid, err := level.NewMapLoader(true).WithLetters(tm).LoadMap(mapPath)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	v := newViewer(cfg, grid, tm)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("PacStudent Quadrant Inspector")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if v.sidebarTab == tabInfo {
			v.sidebarTab = tabLegend
		} else {
			v.sidebarTab = tabInfo
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.sidebarTab = tabInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.sidebarTab = tabLegend
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		v.showQuadrant = !v.showQuadrant
	}

	v.hover, v.hovering = v.layout.cellAt(ebiten.CursorPosition())

	if v.sidebarTab == tabLegend {
		_, wheelY := ebiten.Wheel()
		if wheelY != 0 {
			v.legendScroll -= int(wheelY * 14)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
			v.legendScroll += 14
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
			v.legendScroll -= 14
		}
		v.legendScroll = max(0, min(v.legendScroll, v.maxLegendScroll()))
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	padding := 16
	mapAreaW := windowWidth - sidebarWidth - padding*3
	mapAreaH := windowHeight - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, padding, padding, mapAreaW, mapAreaH)
	v.drawSidebar(screen, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) maxLegendScroll() int {
	lineHeight := 14
	contentHeight := windowHeight - 32 - 24 - 12
	totalHeight := len(v.legendLines) * lineHeight
	if totalHeight <= contentHeight {
		return 0
	}
	return totalHeight - contentHeight
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	header := 40
	v.layout = fitLayout(x+8, y+header, w-16, h-header-8, v.grid.FullHeight(), v.grid.FullWidth())
	ts := v.layout.tileSize

	if v.showQuadrant {
		drawFilledRect(screen, v.layout.originX, v.layout.originY,
			v.grid.Width()*ts, v.grid.Height()*ts, color.RGBA{40, 40, 70, 255})
	}

	for cell, p := range v.placements {
		cx := float32(v.layout.originX + cell.Col*ts + ts/2)
		cy := float32(v.layout.originY + cell.Row*ts + ts/2)
		clr := colorFromRGB(v.tileManager.GetColor(p.Kind), 255)

		if p.Kind.IsPellet() {
			r := float32(ts) * 0.12
			if p.Kind == level.PowerPellet {
				r = float32(ts) * 0.3
			}
			vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
			continue
		}

		conns := level.Connections(p.Kind, p.Rotation)
		for _, d := range level.AllDirections() {
			if !conns.Has(d) {
				continue
			}
			dr, dc := d.Delta()
			ex := cx + float32(dc*ts)/2
			ey := cy + float32(dr*ts)/2
			vector.StrokeLine(screen, cx, cy, ex, ey, float32(ts)*0.2, clr, true)
		}
		if v.fallback[p.Source] {
			vector.StrokeCircle(screen, cx, cy, float32(ts)*0.4, 1, color.RGBA{255, 80, 80, 255}, true)
		}
	}

	if v.hovering {
		drawRectBorder(screen, v.layout.originX+v.hover.Col*ts, v.layout.originY+v.hover.Row*ts, ts, ts, 1,
			color.RGBA{255, 255, 255, 255})
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%dx%d source, %dx%d level",
		v.grid.Height(), v.grid.Width(), v.grid.FullHeight(), v.grid.FullWidth()), x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Hover a cell, Q toggles quadrant shading, Esc to quit", x+12, y+24)
}

func (v *viewer) drawSidebar(screen *ebiten.Image, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	tabHeight := 24
	drawSidebarTabs(screen, x, y, w, tabHeight, v.sidebarTab)
	row := y + tabHeight + 12

	if v.sidebarTab == tabLegend {
		drawLegendList(screen, x, row, h-(row-y)-12, v.legendLines, v.legendScroll)
		return
	}

	var lines []string
	if v.hovering {
		lines = cellInfoLines(v.hover, v.placements, v.grid, v.tileManager)
	} else {
		lines = []string{"Hover a cell to inspect it"}
	}
	if n := len(v.fallback); n > 0 {
		lines = append(lines, "", fmt.Sprintf("Corners on fallback: %d (circled)", n))
	}
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
}

// cellInfoLines describes how one full-grid cell was derived
func cellInfoLines(cell level.Cell, placements map[level.Cell]level.Placement, grid *level.SourceGrid, tm *world.TileManager) []string {
	m := grid.Resolve(cell.Row, cell.Col)
	lines := []string{
		fmt.Sprintf("Cell: row %d, col %d", cell.Row, cell.Col),
		fmt.Sprintf("Quadrant: %s", m.Quadrant),
		fmt.Sprintf("Source: row %d, col %d", m.Source.Row, m.Source.Col),
	}

	p, ok := placements[cell]
	if !ok {
		return append(lines, "Kind: Empty")
	}

	var dirs []string
	conns := level.Connections(p.Kind, p.Rotation)
	for _, d := range level.AllDirections() {
		if conns.Has(d) {
			dirs = append(dirs, d.String())
		}
	}
	if len(dirs) == 0 {
		dirs = []string{"none"}
	}

	return append(lines,
		fmt.Sprintf("Kind: %s (%s)", tm.GetName(p.Kind), tm.GetLetter(p.Kind)),
		fmt.Sprintf("Rotation: %g", p.Rotation.Degrees()),
		fmt.Sprintf("Flip: h=%v v=%v", p.FlipH, p.FlipV),
		fmt.Sprintf("World: (%g, %g)", p.X, p.Y),
		fmt.Sprintf("Joins: %s", strings.Join(dirs, ", ")),
	)
}

func buildLegendLines(tm *world.TileManager, grid *level.SourceGrid) []string {
	var lines []string
	lines = append(lines, "Tiles (code letter name: quadrant count)")
	lines = append(lines, "----------------------------------------")

	counts := grid.CountKinds()
	for _, kind := range level.AllKinds() {
		if kind == level.Empty {
			continue
		}
		missing := ""
		if !tm.HasKind(kind) {
			missing = " [no asset]"
		}
		lines = append(lines, fmt.Sprintf("%d %s %s: %d%s", int(kind), tm.GetLetter(kind), tm.GetName(kind), counts[kind], missing))
	}

	lines = append(lines, "")
	lines = append(lines, "Notes")
	lines = append(lines, "-----")
	lines = append(lines, "Shaded area = source quadrant")
	lines = append(lines, "Red circle = corner with no wall neighbours")
	return lines
}

func drawSidebarTabs(screen *ebiten.Image, x, y, w, h int, active int) {
	tabW := w / 2
	infoColor := color.RGBA{40, 40, 55, 255}
	legendColor := color.RGBA{40, 40, 55, 255}
	if active == tabInfo {
		infoColor = color.RGBA{70, 70, 95, 255}
	} else {
		legendColor = color.RGBA{70, 70, 95, 255}
	}
	drawFilledRect(screen, x, y, tabW, h, infoColor)
	drawFilledRect(screen, x+tabW, y, w-tabW, h, legendColor)
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})
	ebitenutil.DebugPrintAt(screen, "Info (1)", x+10, y+6)
	ebitenutil.DebugPrintAt(screen, "Legend (2)", x+tabW+10, y+6)
}

func drawLegendList(screen *ebiten.Image, x, y, h int, lines []string, scroll int) {
	lineHeight := 14
	startY := y - scroll
	for i, line := range lines {
		drawY := startY + i*lineHeight
		if drawY < y-lineHeight {
			continue
		}
		if drawY > y+h-lineHeight {
			break
		}
		ebitenutil.DebugPrintAt(screen, line, x+10, drawY)
	}
}

func colorFromRGB(rgb [3]int, a uint8) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), a}
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
