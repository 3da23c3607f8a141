// Package dump renders generated levels as box-drawing text.
package dump

import "pacmaze/internal/level"

var (
	singleLine = map[level.DirSet]rune{
		level.NewDirSet(level.Left, level.Right):             '─',
		level.NewDirSet(level.Up, level.Down):                '│',
		level.NewDirSet(level.Right, level.Down):             '┌',
		level.NewDirSet(level.Down, level.Left):              '┐',
		level.NewDirSet(level.Up, level.Left):                '┘',
		level.NewDirSet(level.Up, level.Right):               '└',
		level.NewDirSet(level.Up, level.Down, level.Left):    '┤',
		level.NewDirSet(level.Up, level.Left, level.Right):   '┴',
		level.NewDirSet(level.Up, level.Right, level.Down):   '├',
		level.NewDirSet(level.Right, level.Down, level.Left): '┬',
	}
	doubleLine = map[level.DirSet]rune{
		level.NewDirSet(level.Left, level.Right):             '═',
		level.NewDirSet(level.Up, level.Down):                '║',
		level.NewDirSet(level.Right, level.Down):             '╔',
		level.NewDirSet(level.Down, level.Left):              '╗',
		level.NewDirSet(level.Up, level.Left):                '╝',
		level.NewDirSet(level.Up, level.Right):               '╚',
		level.NewDirSet(level.Up, level.Down, level.Left):    '╣',
		level.NewDirSet(level.Up, level.Left, level.Right):   '╩',
		level.NewDirSet(level.Up, level.Right, level.Down):   '╠',
		level.NewDirSet(level.Right, level.Down, level.Left): '╦',
	}
	heavyLine = map[level.DirSet]rune{
		level.NewDirSet(level.Left, level.Right): '━',
		level.NewDirSet(level.Up, level.Down):    '┃',
	}
)

// Glyph returns the character drawn for a placed tile. double selects the
// double-line set for walls; the ghost exit always uses a heavy bar.
func Glyph(kind level.TileKind, rotation level.Rotation, double bool) rune {
	switch kind {
	case level.Empty:
		return ' '
	case level.Pellet:
		return '·'
	case level.PowerPellet:
		return '●'
	}

	conns := level.Connections(kind, rotation)
	table := singleLine
	switch {
	case kind == level.GhostExitWall:
		table = heavyLine
	case double:
		table = doubleLine
	}
	if r, ok := table[conns]; ok {
		return r
	}
	return '?'
}
