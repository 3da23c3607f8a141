package game

import (
	"fmt"
	"image/color"
	"time"

	"pacmaze/internal/level"
	"pacmaze/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor  = color.RGBA{230, 230, 230, 255}
	hudPanelColor = color.RGBA{0, 0, 0, 170}
)

// HUD draws the level statistics and the tile legend
type HUD struct {
	game *PacGame
}

func NewHUD(game *PacGame) *HUD {
	return &HUD{game: game}
}

// dynamicGet translates catalog names, which are not format strings
var dynamicGet = gotext.Get

type legendEntry struct {
	Kind  level.TileKind
	Label string
	Count int
	Color color.RGBA
}

// legendEntries counts the live tiles of group per kind, in code order,
// labelled with the translated catalog name
func legendEntries(group *world.Group, catalog *world.TileManager) []legendEntry {
	if group == nil {
		return nil
	}
	counts := make(map[level.TileKind]int)
	for _, tile := range group.Tiles() {
		counts[tile.Kind]++
	}

	var entries []legendEntry
	for _, kind := range level.AllKinds() {
		n := counts[kind]
		if n == 0 {
			continue
		}
		c := catalog.GetColor(kind)
		entries = append(entries, legendEntry{
			Kind:  kind,
			Label: dynamicGet(catalog.GetName(kind)),
			Count: n,
			Color: color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255},
		})
	}
	return entries
}

// statusLines are the always-visible HUD lines
func statusLines(g *PacGame) []string {
	snap := g.stats.Snapshot()
	_, waypoint := g.walker.Target()
	lines := []string{
		gotext.Get("Level %d: %d tiles", g.builder.Builds(), g.scene.TileCount()),
		gotext.Get("Animation: %s", g.walker.Animation.String()),
		gotext.Get("Lap %d, waypoint %d", g.walker.Laps(), waypoint),
		gotext.Get("Frame %.1f ms  Build %.1f ms", millis(snap.AverageFrame), millis(snap.LastBuild)),
	}
	if g.hover.ok {
		lines = append(lines, gotext.Get("Cell %d,%d", g.hover.row, g.hover.col))
	}
	return append(lines, gotext.Get("R: regenerate  L: legend  Esc: quit"))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (h *HUD) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lineHeight := 16
	x, y := 10, 10

	lines := statusLines(h.game)
	var entries []legendEntry
	if h.game.showLegend {
		entries = legendEntries(h.game.builder.Current(), h.game.catalog)
	}

	panelHeight := (len(lines)+len(entries))*lineHeight + 12
	vector.DrawFilledRect(screen, float32(x-6), float32(y-6), 260, float32(panelHeight), hudPanelColor, false)

	for _, line := range lines {
		ebitext.Draw(screen, line, face, x, y+face.Ascent, hudTextColor)
		y += lineHeight
	}

	for _, e := range entries {
		vector.DrawFilledRect(screen, float32(x), float32(y+2), 10, 10, e.Color, false)
		ebitext.Draw(screen, fmt.Sprintf("%-16s %4d", e.Label, e.Count), face, x+16, y+face.Ascent, hudTextColor)
		y += lineHeight
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), h.game.width-80, 4)
}
