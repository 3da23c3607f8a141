package level

// Rotation is a tile orientation in degrees, one of 0, 90, 180 or 270.
type Rotation int

const (
	Rot0   Rotation = 0
	Rot90  Rotation = 90
	Rot180 Rotation = 180
	Rot270 Rotation = 270
)

// Quarters returns the number of clockwise quarter turns.
func (r Rotation) Quarters() int {
	return (int(r) / 90) % 4
}

// Degrees returns r as a float for engine transforms.
func (r Rotation) Degrees() float64 {
	return float64(r)
}

// Flip tables. Corners swap with their mirror image across the flipped axis;
// a T-junction keeps the arm that lies along the axis.
var (
	cornerFlipH = map[Rotation]Rotation{Rot0: Rot90, Rot90: Rot0, Rot180: Rot270, Rot270: Rot180}
	cornerFlipV = map[Rotation]Rotation{Rot0: Rot270, Rot90: Rot180, Rot180: Rot90, Rot270: Rot0}
	teeFlipH    = map[Rotation]Rotation{Rot0: Rot180, Rot90: Rot90, Rot180: Rot0, Rot270: Rot270}
	teeFlipV    = map[Rotation]Rotation{Rot0: Rot0, Rot90: Rot270, Rot180: Rot180, Rot270: Rot90}
)

func lookup(table map[Rotation]Rotation, r Rotation) Rotation {
	if out, ok := table[r]; ok {
		return out
	}
	return r
}

// FlipHorizontal adjusts a base rotation for a column-mirrored copy.
// Only corners and T-junctions change.
func FlipHorizontal(kind TileKind, r Rotation) Rotation {
	switch {
	case kind.IsCorner():
		return lookup(cornerFlipH, r)
	case kind == TJunction:
		return lookup(teeFlipH, r)
	}
	return r
}

// FlipVertical adjusts a base rotation for a row-mirrored copy.
func FlipVertical(kind TileKind, r Rotation) Rotation {
	switch {
	case kind.IsCorner():
		return lookup(cornerFlipV, r)
	case kind == TJunction:
		return lookup(teeFlipV, r)
	}
	return r
}

// Overrides pins the base rotation of T-junction cells by source position.
type Overrides map[Cell]Rotation

// RotationSolver infers tile orientation from the authored neighbourhood.
type RotationSolver struct {
	grid      *SourceGrid
	overrides Overrides
}

// NewRotationSolver creates a solver over grid. overrides may be nil.
func NewRotationSolver(grid *SourceGrid, overrides Overrides) *RotationSolver {
	return &RotationSolver{grid: grid, overrides: overrides}
}

// Rotation returns the final rotation for the source cell (row, col) as seen
// through the given quadrant.
func (s *RotationSolver) Rotation(row, col int, q Quadrant) Rotation {
	kind := s.grid.KindAt(row, col)
	r := s.Base(row, col)
	if q.FlipH() {
		r = FlipHorizontal(kind, r)
	}
	if q.FlipV() {
		r = FlipVertical(kind, r)
	}
	return r
}

// Base returns the rotation of the source cell before any mirror adjustment.
func (s *RotationSolver) Base(row, col int) Rotation {
	switch kind := s.grid.KindAt(row, col); {
	case kind.IsCorner():
		r, _ := s.cornerRotation(row, col)
		return r
	case kind.IsStraightWall():
		return s.wallRotation(row, col)
	case kind == TJunction:
		return s.teeRotation(row, col)
	}
	return Rot0
}

// connected reports whether a corner at (row, col) joins its neighbour in d.
func (s *RotationSolver) connected(row, col int, d Direction) bool {
	n := s.grid.Neighbor(row, col, d)
	return n != Empty && !n.IsPellet()
}

// cornerRotation classifies a corner by its connected neighbours. The second
// result is true when no pattern matched and the position fallback was used.
func (s *RotationSolver) cornerRotation(row, col int) (Rotation, bool) {
	up := s.connected(row, col, Up)
	down := s.connected(row, col, Down)
	left := s.connected(row, col, Left)
	right := s.connected(row, col, Right)

	switch {
	case right && down:
		return Rot0, false
	case left && down:
		return Rot90, false
	case left && up:
		return Rot180, false
	case right && up:
		return Rot270, false
	}

	last := Cell{Row: s.grid.Height() - 1, Col: s.grid.Width() - 1}
	switch {
	case row == 0 && col == 0:
		return Rot0, true
	case row == 0 && col == last.Col:
		return Rot90, true
	case row == last.Row && col == last.Col:
		return Rot180, true
	case row == last.Row && col == 0:
		return Rot270, true
	}
	return Rot0, true
}

func (s *RotationSolver) wallRotation(row, col int) Rotation {
	horizontal := s.grid.Neighbor(row, col, Left).IsWallFamily() ||
		s.grid.Neighbor(row, col, Right).IsWallFamily()
	vertical := s.grid.Neighbor(row, col, Up).IsWallFamily() ||
		s.grid.Neighbor(row, col, Down).IsWallFamily()

	if vertical && !horizontal {
		return Rot90
	}
	return Rot0
}

func (s *RotationSolver) teeRotation(row, col int) Rotation {
	if r, ok := s.overrides[Cell{Row: row, Col: col}]; ok {
		return r
	}
	if row == 0 {
		return Rot270
	}
	return Rot0
}
