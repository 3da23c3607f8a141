package level

// Cell addresses a grid position by row and column.
type Cell struct {
	Row, Col int
}

// SourceGrid is the authored top-left quadrant of a symmetric level.
// Its last row and last column are shared with the mirrored quadrants.
type SourceGrid struct {
	codes  [][]int
	height int
	width  int
}

// NewSourceGrid copies rows into a new grid. Rows must all have the same,
// non-zero length.
func NewSourceGrid(rows [][]int) (*SourceGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ShapeError{Row: -1}
	}
	width := len(rows[0])
	codes := make([][]int, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{Row: i, Expected: width, Got: len(row)}
		}
		codes[i] = append([]int(nil), row...)
	}
	return &SourceGrid{codes: codes, height: len(rows), width: width}, nil
}

// MustSourceGrid is NewSourceGrid for literals known to be well formed.
func MustSourceGrid(rows [][]int) *SourceGrid {
	g, err := NewSourceGrid(rows)
	if err != nil {
		panic("invalid source grid: " + err.Error())
	}
	return g
}

// Height returns the number of rows.
func (g *SourceGrid) Height() int { return g.height }

// Width returns the number of columns.
func (g *SourceGrid) Width() int { return g.width }

// FullHeight is the row count of the mirrored level; the centre row is shared.
func (g *SourceGrid) FullHeight() int { return 2*g.height - 1 }

// FullWidth is the column count of the mirrored level; the centre column is shared.
func (g *SourceGrid) FullWidth() int { return 2*g.width - 1 }

// InBounds reports whether (row, col) lies inside the grid.
func (g *SourceGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Code returns the raw authored code at (row, col).
func (g *SourceGrid) Code(row, col int) int {
	return g.codes[row][col]
}

// KindAt returns the tile kind at (row, col). Out-of-bounds positions and
// unknown codes are Empty.
func (g *SourceGrid) KindAt(row, col int) TileKind {
	if !g.InBounds(row, col) {
		return Empty
	}
	return KindFromCode(g.codes[row][col])
}

// Neighbor returns the kind next to (row, col) in direction d.
func (g *SourceGrid) Neighbor(row, col int, d Direction) TileKind {
	dr, dc := d.Delta()
	return g.KindAt(row+dr, col+dc)
}

// Rows returns a copy of the authored codes.
func (g *SourceGrid) Rows() [][]int {
	out := make([][]int, g.height)
	for i, row := range g.codes {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// CountKinds tallies the kinds present in the quadrant.
func (g *SourceGrid) CountKinds() map[TileKind]int {
	counts := make(map[TileKind]int)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if k := g.KindAt(row, col); k != Empty {
				counts[k]++
			}
		}
	}
	return counts
}

var referenceRows = [][]int{
	{1, 2, 2, 2, 2, 2, 2, 7, 2, 2, 2, 2, 2, 1},
	{2, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 2},
	{2, 6, 3, 4, 4, 3, 5, 3, 4, 4, 4, 3, 6, 2},
	{2, 5, 4, 0, 0, 4, 5, 4, 0, 0, 0, 4, 5, 2},
	{2, 5, 3, 4, 4, 3, 5, 3, 4, 4, 4, 3, 5, 2},
	{2, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 2},
	{2, 5, 3, 4, 4, 3, 5, 3, 3, 5, 3, 4, 4, 2},
	{2, 5, 4, 0, 0, 4, 5, 4, 4, 5, 4, 0, 0, 2},
	{2, 5, 5, 5, 5, 5, 5, 4, 4, 5, 5, 5, 5, 2},
	{2, 5, 3, 4, 4, 3, 5, 4, 3, 4, 4, 3, 5, 2},
	{2, 5, 4, 0, 0, 4, 5, 4, 4, 0, 0, 4, 5, 2},
	{2, 5, 3, 4, 4, 3, 5, 4, 4, 0, 0, 0, 5, 2},
	{2, 5, 5, 5, 5, 5, 5, 3, 3, 0, 3, 4, 5, 8},
	{2, 5, 5, 5, 5, 5, 5, 0, 0, 0, 4, 0, 5, 2},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
}

// ReferenceGrid returns the built-in 15x14 quadrant of the classic maze.
func ReferenceGrid() *SourceGrid {
	return MustSourceGrid(referenceRows)
}
