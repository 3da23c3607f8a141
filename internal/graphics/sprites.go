package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"

	"pacmaze/internal/config"
	"pacmaze/internal/level"
	"pacmaze/internal/patrol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// TileCatalog is the part of the tile manager sprites need
type TileCatalog interface {
	GetTileData(kind level.TileKind) *config.TileData
}

// SpriteManager builds one unrotated sprite per tile kind. A PNG under
// assets/sprites/tiles/<key>.png replaces the procedural drawing.
type SpriteManager struct {
	catalog TileCatalog
	size    int
	sprites map[level.TileKind]*ebiten.Image
	loaded  map[level.TileKind]bool // Cache file lookups, hit or miss
}

func NewSpriteManager(catalog TileCatalog, size int) *SpriteManager {
	return &SpriteManager{
		catalog: catalog,
		size:    size,
		sprites: make(map[level.TileKind]*ebiten.Image),
		loaded:  make(map[level.TileKind]bool),
	}
}

// Size returns the sprite edge length in pixels
func (sm *SpriteManager) Size() int {
	return sm.size
}

// GetSprite returns the sprite for kind at rotation 0, or nil for kinds the
// catalog has no entry for
func (sm *SpriteManager) GetSprite(kind level.TileKind) *ebiten.Image {
	if sprite, exists := sm.sprites[kind]; exists {
		return sprite
	}

	data := sm.catalog.GetTileData(kind)
	if data == nil {
		return nil
	}

	if !sm.loaded[kind] {
		sm.loaded[kind] = true
		if img := loadSpriteIfExists("assets/sprites/tiles/" + kind.Key() + ".png"); img != nil {
			sm.sprites[kind] = img
			return img
		}
	}

	sprite := sm.drawTile(kind, data)
	sm.sprites[kind] = sprite
	return sprite
}

func (sm *SpriteManager) drawTile(kind level.TileKind, data *config.TileData) *ebiten.Image {
	img := ebiten.NewImage(sm.size, sm.size)
	s := float32(sm.size)
	clr := toRGBA(data.Color)

	if kind.IsPellet() {
		radius := data.Radius
		if radius <= 0 {
			radius = 0.1
		}
		vector.DrawFilledCircle(img, s/2, s/2, float32(radius)*s, clr, true)
		return img
	}

	width := data.StrokeWidth
	if width <= 0 {
		width = 0.1
	}
	for _, seg := range Strokes(kind, data.DoubleLine, 2.5*width) {
		vector.StrokeLine(img,
			float32(seg.X0)*s, float32(seg.Y0)*s,
			float32(seg.X1)*s, float32(seg.Y1)*s,
			float32(width)*s, clr, true)
	}
	return img
}

// DrawActor draws the walker as a wedge-mouthed disc centred at (cx, cy)
func DrawActor(dst *ebiten.Image, cx, cy, radius float32, anim patrol.Animation, clock float64, clr color.RGBA) {
	facing := FacingAngle(anim)
	mouth := MouthAngle(clock)

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, radius, float32(facing+mouth), float32(facing+2*math.Pi-mouth), vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff
		vs[i].ColorG = float32(clr.G) / 0xff
		vs[i].ColorB = float32(clr.B) / 0xff
		vs[i].ColorA = float32(clr.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// loadSpriteIfExists decodes a PNG override, or returns nil
func loadSpriteIfExists(spritePath string) *ebiten.Image {
	file, err := os.Open(spritePath)
	if err != nil {
		return nil
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

func toRGBA(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}
