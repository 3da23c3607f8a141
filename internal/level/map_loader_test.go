package level

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestMapLoader_BundledMapMatchesReference(t *testing.T) {
	grid, err := NewMapLoader(false).LoadMap(filepath.Join("..", "..", "assets", "levels", "pacstudent.map"))
	if err != nil {
		t.Fatalf("load map: %v", err)
	}

	if grid.Height() != 15 || grid.Width() != 14 {
		t.Fatalf("expected 15x14, got %dx%d", grid.Height(), grid.Width())
	}
	ref := ReferenceGrid().Rows()
	for i, row := range grid.Rows() {
		if !slices.Equal(row, ref[i]) {
			t.Errorf("row %d: expected %v, got %v", i, ref[i], row)
		}
	}
}

func TestMapLoader_ParseFormats(t *testing.T) {
	content := `# comment line
1227

2, 5, 5, x
`
	grid, err := NewMapLoader(false).Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if grid.Height() != 2 || grid.Width() != 4 {
		t.Fatalf("expected 2x4, got %dx%d", grid.Height(), grid.Width())
	}
	if grid.KindAt(0, 3) != TJunction {
		t.Errorf("expected T-junction at (0,3), got %v", grid.KindAt(0, 3))
	}
	if grid.Code(1, 3) != unknownCode || grid.KindAt(1, 3) != Empty {
		t.Errorf("unknown character should load as an empty cell, got code %d", grid.Code(1, 3))
	}
}

func TestMapLoader_RaggedRows(t *testing.T) {
	mapPath := filepath.Join(t.TempDir(), "ragged.map")
	if err := os.WriteFile(mapPath, []byte("122\n25\n"), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	_, err := NewMapLoader(false).LoadMap(mapPath)
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if shapeErr.Row != 1 || shapeErr.Expected != 3 || shapeErr.Got != 2 {
		t.Errorf("unexpected shape error %+v", shapeErr)
	}
}

func TestMapLoader_EmptyAndMissing(t *testing.T) {
	_, err := NewMapLoader(false).Parse(strings.NewReader("# nothing here\n\n"))
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Row != -1 {
		t.Errorf("expected empty-grid ShapeError, got %v", err)
	}

	if _, err := NewMapLoader(false).LoadMap(filepath.Join(t.TempDir(), "missing.map")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSourceGridIsImmutable(t *testing.T) {
	rows := [][]int{{1, 2}, {2, 5}}
	g := MustSourceGrid(rows)
	rows[0][0] = 0
	if g.KindAt(0, 0) != OutsideCorner {
		t.Error("grid changed after caller mutated its input")
	}

	copyRows := g.Rows()
	copyRows[1][1] = 0
	if g.KindAt(1, 1) != Pellet {
		t.Error("grid changed after caller mutated Rows()")
	}
}

func TestSourceGridBounds(t *testing.T) {
	g := ReferenceGrid()
	if g.KindAt(-1, 0) != Empty || g.KindAt(0, g.Width()) != Empty {
		t.Error("out-of-bounds cells should be empty")
	}
	if g.Neighbor(0, 7, Down) != Pellet {
		t.Errorf("expected pellet below the T-junction, got %v", g.Neighbor(0, 7, Down))
	}
	counts := g.CountKinds()
	if counts[OutsideCorner] != 4 || counts[TJunction] != 1 || counts[GhostExitWall] != 1 {
		t.Errorf("unexpected quadrant counts %v", counts)
	}
}

func TestTileKindCodes(t *testing.T) {
	for code := -2; code <= 10; code++ {
		k := KindFromCode(code)
		if code >= 1 && code <= 8 {
			if int(k) != code {
				t.Errorf("code %d resolved to %v", code, k)
			}
			if back, ok := KindFromKey(k.Key()); !ok || back != k {
				t.Errorf("%v does not round-trip through key %q", k, k.Key())
			}
			continue
		}
		if k != Empty {
			t.Errorf("code %d should resolve to Empty, got %v", code, k)
		}
	}

	for _, k := range AllKinds() {
		if k.IsWallFamily() == k.IsPellet() {
			t.Errorf("%v must be exactly one of wall family or pellet", k)
		}
	}
}

type letterMap map[string]TileKind

func (m letterMap) GetKindFromLetter(letter string) (TileKind, bool) {
	k, ok := m[letter]
	return k, ok
}

func TestMapLoader_Letters(t *testing.T) {
	letters := letterMap{"O": OutsideCorner, "=": OutsideWall, "T": TJunction, ".": Pellet}
	grid, err := NewMapLoader(false).WithLetters(letters).Parse(strings.NewReader("O=T\n=.x\n=5.\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := [][]TileKind{
		{OutsideCorner, OutsideWall, TJunction},
		{OutsideWall, Pellet, Empty},
		{OutsideWall, Pellet, Pellet},
	}
	for row := range want {
		for col, kind := range want[row] {
			if got := grid.KindAt(row, col); got != kind {
				t.Errorf("(%d,%d): expected %v, got %v", row, col, kind, got)
			}
		}
	}

	// Without a resolver letters are unknown cells
	plain, err := NewMapLoader(false).Parse(strings.NewReader("O=\n5."))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if plain.Code(0, 0) != unknownCode || plain.KindAt(1, 0) != Pellet {
		t.Errorf("expected letters to be unknown without a resolver")
	}
}

func TestMapLoader_LoadDefaultMap(t *testing.T) {
	grid, err := NewMapLoader(false).LoadDefaultMap()
	if err != nil {
		t.Fatalf("LoadDefaultMap: %v", err)
	}
	if grid.Height() != 15 || grid.Width() != 14 {
		t.Errorf("expected the 15x14 reference quadrant, got %dx%d", grid.Height(), grid.Width())
	}
}
