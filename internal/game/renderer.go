package game

import (
	"image/color"
	"math"

	"pacmaze/internal/camera"
	"pacmaze/internal/graphics"
	"pacmaze/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws the level and the actor in world space
type Renderer struct {
	game *PacGame
}

// NewRenderer creates a new renderer
func NewRenderer(game *PacGame) *Renderer {
	return &Renderer{game: game}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image) {
	g := r.game
	bg := g.config.Display.Background
	screen.Fill(color.RGBA{uint8(bg[0]), uint8(bg[1]), uint8(bg[2]), 255})

	group := g.builder.Current()
	if group == nil {
		return
	}

	view := g.builder.View()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, tile := range group.Tiles() {
		sprite := g.sprites.GetSprite(tile.Kind)
		if sprite == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM = tileTransform(view, tile, g.sprites.Size(), w, h)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sprite, op)
	}

	r.drawActor(screen, view, w, h)
}

func (r *Renderer) drawActor(screen *ebiten.Image, view camera.View, w, h int) {
	g := r.game
	sx, sy := view.WorldToScreen(g.walker.X, g.walker.Y, w, h)
	radius := 0.45 * view.Scale(h)
	c := g.config.Patrol.Color
	graphics.DrawActor(screen, float32(sx), float32(sy), float32(radius),
		g.walker.Animation, g.clock, color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255})
}

// tileTransform maps a square sprite of spriteSize pixels onto the tile's
// cell, centred on its world position and turned clockwise by its rotation
func tileTransform(view camera.View, tile *world.Tile, spriteSize, screenWidth, screenHeight int) ebiten.GeoM {
	var geo ebiten.GeoM
	half := float64(spriteSize) / 2
	geo.Translate(-half, -half)
	geo.Rotate(tile.Rotation * math.Pi / 180)

	scale := view.Scale(screenHeight) / float64(spriteSize)
	geo.Scale(scale, scale)

	sx, sy := view.WorldToScreen(tile.X, tile.Y, screenWidth, screenHeight)
	geo.Translate(sx, sy)
	return geo
}
