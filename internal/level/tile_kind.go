package level

// TileKind identifies what occupies a cell of a level grid.
// The numeric values are the codes used in authored map data.
type TileKind int

const (
	Empty         TileKind = iota // No tile
	OutsideCorner                 // Rounded corner of the outer boundary
	OutsideWall                   // Straight piece of the outer boundary
	InsideCorner                  // Rounded corner of an inner block
	InsideWall                    // Straight piece of an inner block
	Pellet                        // Walkable path carrying a pellet
	PowerPellet                   // Walkable path carrying a power pellet
	TJunction                     // Outer boundary piece joining an inner wall
	GhostExitWall                 // Gate of the ghost house

	tileKindCount
)

// AllKinds returns every instantiable kind in code order.
func AllKinds() []TileKind {
	return []TileKind{
		OutsideCorner, OutsideWall, InsideCorner, InsideWall,
		Pellet, PowerPellet, TJunction, GhostExitWall,
	}
}

// KindFromCode converts an authored code into a TileKind.
// Unknown codes resolve to Empty so bad data is dropped instead of failing.
func KindFromCode(code int) TileKind {
	k := TileKind(code)
	if !k.Valid() {
		return Empty
	}
	return k
}

// Valid reports whether k is one of the known kinds (Empty included).
func (k TileKind) Valid() bool {
	return k >= Empty && k < tileKindCount
}

// IsWallFamily reports whether k joins neighbouring walls.
func (k TileKind) IsWallFamily() bool {
	switch k {
	case OutsideCorner, OutsideWall, InsideCorner, InsideWall, TJunction, GhostExitWall:
		return true
	}
	return false
}

// IsCorner reports whether k is one of the two corner kinds.
func (k TileKind) IsCorner() bool {
	return k == OutsideCorner || k == InsideCorner
}

// IsStraightWall reports whether k is one of the two straight wall kinds.
func (k TileKind) IsStraightWall() bool {
	return k == OutsideWall || k == InsideWall
}

// IsPellet reports whether k is a walkable pellet space.
func (k TileKind) IsPellet() bool {
	return k == Pellet || k == PowerPellet
}

// String returns the name used for placed tiles, e.g. "OutsideCorner".
func (k TileKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case OutsideCorner:
		return "OutsideCorner"
	case OutsideWall:
		return "OutsideWall"
	case InsideCorner:
		return "InsideCorner"
	case InsideWall:
		return "InsideWall"
	case Pellet:
		return "Pellet"
	case PowerPellet:
		return "PowerPellet"
	case TJunction:
		return "TJunction"
	case GhostExitWall:
		return "GhostExit"
	default:
		return "Unknown"
	}
}

// Key returns the catalog key for k as used in tiles.yaml.
func (k TileKind) Key() string {
	switch k {
	case OutsideCorner:
		return "outside_corner"
	case OutsideWall:
		return "outside_wall"
	case InsideCorner:
		return "inside_corner"
	case InsideWall:
		return "inside_wall"
	case Pellet:
		return "pellet"
	case PowerPellet:
		return "power_pellet"
	case TJunction:
		return "t_junction"
	case GhostExitWall:
		return "ghost_exit"
	default:
		return ""
	}
}

// KindFromKey is the inverse of Key.
func KindFromKey(key string) (TileKind, bool) {
	for _, k := range AllKinds() {
		if k.Key() == key {
			return k, true
		}
	}
	return Empty, false
}
