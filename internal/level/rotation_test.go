package level

import "testing"

var quarterTurns = []Rotation{Rot0, Rot90, Rot180, Rot270}

func TestFlipTablesAreInvolutions(t *testing.T) {
	for _, kind := range []TileKind{OutsideCorner, InsideCorner, TJunction} {
		for _, r := range quarterTurns {
			if got := FlipHorizontal(kind, FlipHorizontal(kind, r)); got != r {
				t.Errorf("%v: horizontal twice turned %d into %d", kind, r, got)
			}
			if got := FlipVertical(kind, FlipVertical(kind, r)); got != r {
				t.Errorf("%v: vertical twice turned %d into %d", kind, r, got)
			}
		}
	}
}

func TestFlipTables(t *testing.T) {
	tests := []struct {
		kind       TileKind
		in         Rotation
		horizontal Rotation
		vertical   Rotation
	}{
		{OutsideCorner, Rot0, Rot90, Rot270},
		{OutsideCorner, Rot90, Rot0, Rot180},
		{InsideCorner, Rot180, Rot270, Rot90},
		{InsideCorner, Rot270, Rot180, Rot0},
		{TJunction, Rot0, Rot180, Rot0},
		{TJunction, Rot90, Rot90, Rot270},
		{TJunction, Rot180, Rot0, Rot180},
		{TJunction, Rot270, Rot270, Rot90},
		{OutsideWall, Rot90, Rot90, Rot90},
		{InsideWall, Rot0, Rot0, Rot0},
		{Pellet, Rot0, Rot0, Rot0},
		{GhostExitWall, Rot0, Rot0, Rot0},
	}

	for _, tt := range tests {
		if got := FlipHorizontal(tt.kind, tt.in); got != tt.horizontal {
			t.Errorf("%v %d horizontal: expected %d, got %d", tt.kind, tt.in, tt.horizontal, got)
		}
		if got := FlipVertical(tt.kind, tt.in); got != tt.vertical {
			t.Errorf("%v %d vertical: expected %d, got %d", tt.kind, tt.in, tt.vertical, got)
		}
	}
}

func TestFlipMatchesMirroredConnections(t *testing.T) {
	mirrorH := func(s DirSet) DirSet {
		var out DirSet
		for _, d := range AllDirections() {
			if !s.Has(d) {
				continue
			}
			switch d {
			case Left:
				d = Right
			case Right:
				d = Left
			}
			out |= NewDirSet(d)
		}
		return out
	}

	for _, kind := range []TileKind{OutsideCorner, TJunction} {
		for _, r := range quarterTurns {
			want := mirrorH(Connections(kind, r))
			if got := Connections(kind, FlipHorizontal(kind, r)); got != want {
				t.Errorf("%v %d: mirrored sprite joins %08b, flipped rotation joins %08b", kind, r, want, got)
			}
		}
	}
}

func TestCornerRotationFromNeighbours(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want Rotation
	}{
		{"right and down", [][]int{
			{0, 0, 0},
			{0, 3, 4},
			{0, 4, 0},
		}, Rot0},
		{"left and down", [][]int{
			{0, 0, 0},
			{4, 3, 0},
			{0, 4, 0},
		}, Rot90},
		{"left and up", [][]int{
			{0, 4, 0},
			{4, 3, 0},
			{0, 0, 0},
		}, Rot180},
		{"right and up", [][]int{
			{0, 4, 0},
			{0, 3, 4},
			{0, 0, 0},
		}, Rot270},
		{"pellets do not connect", [][]int{
			{0, 5, 0},
			{6, 3, 4},
			{0, 4, 0},
		}, Rot0},
		{"first pattern wins", [][]int{
			{0, 4, 0},
			{4, 3, 4},
			{0, 4, 0},
		}, Rot0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRotationSolver(MustSourceGrid(tt.rows), nil)
			if got := s.Base(1, 1); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCornerAtOriginWithRightAndDown(t *testing.T) {
	g := MustSourceGrid([][]int{
		{1, 2},
		{2, 5},
	})
	s := NewRotationSolver(g, nil)
	if got := s.Base(0, 0); got != Rot0 {
		t.Errorf("expected 0, got %d", got)
	}
	if FallbackCorners(g).Has(Cell{0, 0}) {
		t.Error("corner with two neighbours should not use the fallback")
	}
}

func TestCornerFallbackBranches(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		cell Cell
		want Rotation
	}{
		{"lone corner", [][]int{{1}}, Cell{0, 0}, Rot0},
		{"top-left with one arm", [][]int{{1, 1}}, Cell{0, 0}, Rot0},
		{"top-right", [][]int{{1, 1}}, Cell{0, 1}, Rot90},
		{"bottom-right", [][]int{{5, 5}, {5, 1}}, Cell{1, 1}, Rot180},
		{"bottom-left", [][]int{{5, 5}, {1, 5}}, Cell{1, 0}, Rot270},
		{"interior", [][]int{{5, 5, 5}, {5, 3, 5}, {5, 5, 5}}, Cell{1, 1}, Rot0},
		{"unknown neighbour", [][]int{{0, 0, 0}, {0, 3, 9}, {0, 9, 0}}, Cell{1, 1}, Rot0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustSourceGrid(tt.rows)
			if got := NewRotationSolver(g, nil).Base(tt.cell.Row, tt.cell.Col); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
			if !FallbackCorners(g).Has(tt.cell) {
				t.Errorf("expected %v to be reported as a fallback corner", tt.cell)
			}
		})
	}
}

func TestReferenceGridNeverUsesCornerFallback(t *testing.T) {
	cells := FallbackCorners(ReferenceGrid())
	if cells.Size() != 0 {
		cells.Each(func(c Cell) {
			t.Errorf("corner at %v uses the position fallback", c)
		})
	}
}

func TestWallRotation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want Rotation
	}{
		{"isolated", [][]int{{0, 0, 0}, {0, 4, 0}, {0, 0, 0}}, Rot0},
		{"vertical", [][]int{{0, 4, 0}, {0, 4, 0}, {0, 4, 0}}, Rot90},
		{"vertical to ghost exit", [][]int{{0, 8, 0}, {0, 2, 0}, {0, 0, 0}}, Rot90},
		{"horizontal", [][]int{{0, 0, 0}, {4, 4, 4}, {0, 0, 0}}, Rot0},
		{"crossing", [][]int{{0, 4, 0}, {4, 4, 0}, {0, 4, 0}}, Rot0},
		{"pellets ignored", [][]int{{0, 2, 0}, {5, 2, 6}, {0, 0, 0}}, Rot90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRotationSolver(MustSourceGrid(tt.rows), nil).Base(1, 1); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTJunctionRotation(t *testing.T) {
	g := MustSourceGrid([][]int{
		{1, 7, 1},
		{7, 5, 2},
		{1, 2, 1},
	})
	s := NewRotationSolver(g, nil)
	if got := s.Base(0, 1); got != Rot270 {
		t.Errorf("row 0: expected 270, got %d", got)
	}
	if got := s.Base(1, 0); got != Rot0 {
		t.Errorf("row 1: expected 0, got %d", got)
	}

	s = NewRotationSolver(g, Overrides{{Row: 1, Col: 0}: Rot180})
	if got := s.Base(1, 0); got != Rot180 {
		t.Errorf("override: expected 180, got %d", got)
	}
	if got := s.Rotation(1, 0, HorizontalFlip); got != Rot0 {
		t.Errorf("override mirrored: expected 0, got %d", got)
	}
}

func TestConnections(t *testing.T) {
	tests := []struct {
		kind     TileKind
		rotation Rotation
		want     DirSet
	}{
		{OutsideCorner, Rot0, NewDirSet(Right, Down)},
		{OutsideCorner, Rot90, NewDirSet(Left, Down)},
		{InsideCorner, Rot180, NewDirSet(Left, Up)},
		{InsideCorner, Rot270, NewDirSet(Right, Up)},
		{OutsideWall, Rot0, NewDirSet(Left, Right)},
		{InsideWall, Rot90, NewDirSet(Up, Down)},
		{TJunction, Rot270, NewDirSet(Left, Right, Down)},
		{TJunction, Rot90, NewDirSet(Left, Right, Up)},
		{GhostExitWall, Rot0, NewDirSet(Left, Right)},
		{Pellet, Rot0, 0},
	}

	for _, tt := range tests {
		if got := Connections(tt.kind, tt.rotation); got != tt.want {
			t.Errorf("%v at %d: expected %04b, got %04b", tt.kind, tt.rotation, tt.want, got)
		}
	}
}
