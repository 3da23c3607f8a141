package level

// Quadrant names the mirror transform that produces a region of the full grid.
type Quadrant int

const (
	Identity       Quadrant = iota // Top-left, the authored quadrant
	HorizontalFlip                 // Top-right
	VerticalFlip                   // Bottom-left
	BothFlip                       // Bottom-right
)

func (q Quadrant) String() string {
	switch q {
	case Identity:
		return "identity"
	case HorizontalFlip:
		return "horizontal"
	case VerticalFlip:
		return "vertical"
	case BothFlip:
		return "both"
	default:
		return "unknown"
	}
}

// FlipH reports whether q mirrors columns.
func (q Quadrant) FlipH() bool { return q == HorizontalFlip || q == BothFlip }

// FlipV reports whether q mirrors rows.
func (q Quadrant) FlipV() bool { return q == VerticalFlip || q == BothFlip }

// Mapping is the result of resolving a full-grid cell back to the source.
type Mapping struct {
	Quadrant Quadrant
	Source   Cell
}

// Resolve maps a full-grid coordinate to its source cell and quadrant.
// The caller must keep row < FullHeight and col < FullWidth.
func (g *SourceGrid) Resolve(row, col int) Mapping {
	h, w := g.height, g.width
	switch {
	case row < h && col < w:
		return Mapping{Quadrant: Identity, Source: Cell{Row: row, Col: col}}
	case row < h:
		return Mapping{Quadrant: HorizontalFlip, Source: Cell{Row: row, Col: w - 1 - (col - w + 1)}}
	case col < w:
		return Mapping{Quadrant: VerticalFlip, Source: Cell{Row: h - 1 - (row - h + 1), Col: col}}
	default:
		return Mapping{Quadrant: BothFlip, Source: Cell{Row: h - 1 - (row - h + 1), Col: w - 1 - (col - w + 1)}}
	}
}

// isSeamDuplicate reports whether a full-grid cell is a second copy of the
// shared centre row or column. The centre lines belong to the Identity copy.
func (g *SourceGrid) isSeamDuplicate(row, col int) bool {
	return (row == g.height-1 && row >= g.height) ||
		(col == g.width-1 && col >= g.width)
}
