package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// unknownCode marks map characters that are not a tile digit. It is kept in
// the grid and resolves to Empty.
const unknownCode = -1

// MapLoader reads quadrant grids from .map files.
//
// A map file holds one grid row per line, one digit per cell. Blank lines and
// lines starting with '#' are ignored. Commas and spaces between digits are
// allowed, so both "1227" and "1,2,2,7" describe the same row. With a
// LetterResolver the catalog letters ("O==T") may stand in for digits.
type MapLoader struct {
	verbose bool
	letters LetterResolver
}

// LetterResolver maps a catalog letter onto a tile kind.
type LetterResolver interface {
	GetKindFromLetter(letter string) (TileKind, bool)
}

// NewMapLoader creates a map loader. verbose prints each parsed row.
func NewMapLoader(verbose bool) *MapLoader {
	return &MapLoader{verbose: verbose}
}

// WithLetters lets map rows use the letters known to letters as well as digits.
func (ml *MapLoader) WithLetters(letters LetterResolver) *MapLoader {
	ml.letters = letters
	return ml
}

// LoadMap loads a quadrant grid from the file at mapPath.
func (ml *MapLoader) LoadMap(mapPath string) (*SourceGrid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	grid, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", filepath.Base(mapPath), err)
	}
	return grid, nil
}

// Parse reads a quadrant grid from r.
func (ml *MapLoader) Parse(r io.Reader) (*SourceGrid, error) {
	var rows [][]int
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row := ml.parseRow(line)
		rows = append(rows, row)
		if ml.verbose {
			fmt.Printf("[MapLoader] Loaded row %d: '%s' (cells: %d)\n", len(rows), line, len(row))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map data: %w", err)
	}

	return NewSourceGrid(rows)
}

func (ml *MapLoader) parseRow(line string) []int {
	row := make([]int, 0, len(line))
	for _, char := range line {
		switch {
		case char == ',' || char == ' ' || char == '\t':
			continue
		case char >= '0' && char <= '9':
			row = append(row, int(char-'0'))
		default:
			row = append(row, ml.letterCode(char))
		}
	}
	return row
}

func (ml *MapLoader) letterCode(char rune) int {
	if ml.letters == nil {
		return unknownCode
	}
	if kind, ok := ml.letters.GetKindFromLetter(string(char)); ok {
		return int(kind)
	}
	return unknownCode
}

// LoadDefaultMap finds the bundled reference map relative to a few likely
// working directories.
func (ml *MapLoader) LoadDefaultMap() (*SourceGrid, error) {
	possiblePaths := []string{
		filepath.Join("assets", "levels", "pacstudent.map"),
		filepath.Join("..", "assets", "levels", "pacstudent.map"),
		filepath.Join("..", "..", "assets", "levels", "pacstudent.map"),
	}

	for _, mapPath := range possiblePaths {
		if _, err := os.Stat(mapPath); err == nil {
			return ml.LoadMap(mapPath)
		}
	}

	return nil, fmt.Errorf("pacstudent.map not found in any of the expected locations")
}
