package level

// Direction is one of the four orthogonal neighbours of a cell.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns the directions in clockwise order starting at Up.
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offsets for d.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// RotateCW turns d clockwise by the given number of quarter turns.
func (d Direction) RotateCW(quarters int) Direction {
	return Direction(((int(d)+quarters)%4 + 4) % 4)
}

// DirSet is a bitmask of directions.
type DirSet uint8

// NewDirSet builds a set from the given directions.
func NewDirSet(dirs ...Direction) DirSet {
	var s DirSet
	for _, d := range dirs {
		s |= 1 << uint(d)
	}
	return s
}

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// RotateCW turns every direction in the set clockwise.
func (s DirSet) RotateCW(quarters int) DirSet {
	var out DirSet
	for _, d := range AllDirections() {
		if s.Has(d) {
			out |= 1 << uint(d.RotateCW(quarters))
		}
	}
	return out
}

// Connections returns the sides a placed tile joins once drawn at the given
// rotation. Rotations turn clockwise on screen, so a corner at 0 joins right
// and down, and at 90 joins down and left. Kinds without direction (pellets)
// return an empty set; the ghost exit is a horizontal bar.
func Connections(kind TileKind, rotation Rotation) DirSet {
	var base DirSet
	switch {
	case kind.IsCorner():
		base = NewDirSet(Right, Down)
	case kind.IsStraightWall(), kind == GhostExitWall:
		base = NewDirSet(Left, Right)
	case kind == TJunction:
		base = NewDirSet(Up, Down, Left)
	default:
		return 0
	}
	return base.RotateCW(rotation.Quarters())
}
