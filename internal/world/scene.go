package world

import (
	"fmt"

	"pacmaze/internal/config"
	"pacmaze/internal/level"
)

// Tile is one instantiated piece of a level
type Tile struct {
	ID       int
	Name     string
	Kind     level.TileKind
	X, Y     float64
	Rotation float64 // Degrees, clockwise on screen
	Data     *config.TileData
}

// Group parents the tiles of one generated level so they can be torn down
// together. It implements level.TileSink.
type Group struct {
	Name    string
	scene   *Scene
	tiles   []*Tile
	skipped map[level.TileKind]int
	alive   bool
}

// Scene owns every live group
type Scene struct {
	catalog *TileManager
	groups  []*Group
	nextID  int
}

// NewScene creates a scene whose groups resolve kinds through catalog
func NewScene(catalog *TileManager) *Scene {
	return &Scene{catalog: catalog}
}

// NewGroup creates an empty live group
func (s *Scene) NewGroup(name string) (*Group, error) {
	if s.catalog == nil {
		return nil, &level.ConfigurationError{Component: "scene", Reason: "no tile catalog loaded"}
	}
	g := &Group{
		Name:    name,
		scene:   s,
		skipped: make(map[level.TileKind]int),
		alive:   true,
	}
	s.groups = append(s.groups, g)
	return g, nil
}

// Destroy removes g and all its tiles. Destroying nil or an already
// destroyed group does nothing.
func (s *Scene) Destroy(g *Group) {
	if g == nil || !g.alive || g.scene != s {
		return
	}
	for i, other := range s.groups {
		if other == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			break
		}
	}
	g.tiles = nil
	g.alive = false
}

// Groups returns the live groups in creation order
func (s *Scene) Groups() []*Group {
	return append([]*Group(nil), s.groups...)
}

// TileCount returns the number of live tiles across all groups
func (s *Scene) TileCount() int {
	n := 0
	for _, g := range s.groups {
		n += len(g.tiles)
	}
	return n
}

// PlaceTile instantiates a tile of the given kind. Kinds without a catalog
// entry are skipped, as is anything placed into a destroyed group.
func (g *Group) PlaceTile(kind level.TileKind, x, y float64, rotation float64) {
	if !g.alive {
		return
	}
	data := g.scene.catalog.GetTileData(kind)
	if data == nil {
		g.skipped[kind]++
		return
	}

	g.scene.nextID++
	tile := &Tile{
		ID:       g.scene.nextID,
		Name:     fmt.Sprintf("%s_%g_%g", kind, unsigned(x), unsigned(-y)),
		Kind:     kind,
		X:        x,
		Y:        y,
		Rotation: rotation,
		Data:     data,
	}
	g.tiles = append(g.tiles, tile)
}

// Tiles returns the group's tiles in placement order
func (g *Group) Tiles() []*Tile {
	return g.tiles
}

// Alive reports whether g has not been destroyed
func (g *Group) Alive() bool {
	return g.alive
}

// Skipped returns how many placements of each kind had no catalog entry
func (g *Group) Skipped() map[level.TileKind]int {
	out := make(map[level.TileKind]int, len(g.skipped))
	for k, v := range g.skipped {
		out[k] = v
	}
	return out
}

// unsigned folds negative zero so names never read "_-0"
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
