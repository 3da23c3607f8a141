package graphics

import (
	"math"

	"pacmaze/internal/level"
	"pacmaze/internal/patrol"
)

// Segment is a line in unit cell space: (0,0) top-left, (1,1) bottom-right
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// edgeMidpoint returns where a connection in direction d leaves the cell
func edgeMidpoint(d level.Direction) (float64, float64) {
	dr, dc := d.Delta()
	return 0.5 + 0.5*float64(dc), 0.5 + 0.5*float64(dr)
}

// Strokes returns the wall lines of kind in its unrotated orientation. Each
// connection is a stroke from the cell centre to the matching edge. With
// doubleLine every stroke is drawn twice, gap apart, and stretched past the
// centre so the two lines of a bend still meet.
func Strokes(kind level.TileKind, doubleLine bool, gap float64) []Segment {
	if !kind.IsWallFamily() {
		return nil
	}

	conns := level.Connections(kind, level.Rot0)
	var segments []Segment
	for _, d := range level.AllDirections() {
		if !conns.Has(d) {
			continue
		}
		ex, ey := edgeMidpoint(d)
		if !doubleLine {
			segments = append(segments, Segment{0.5, 0.5, ex, ey})
			continue
		}

		dr, dc := d.Delta()
		// Perpendicular offset, and an overshoot back through the centre
		px, py := float64(-dr)*gap/2, float64(dc)*gap/2
		bx, by := -float64(dc)*gap/2, -float64(dr)*gap/2
		for _, side := range []float64{-1, 1} {
			segments = append(segments, Segment{
				X0: 0.5 + bx + side*px, Y0: 0.5 + by + side*py,
				X1: ex + side*px, Y1: ey + side*py,
			})
		}
	}
	return segments
}

// FacingAngle returns the screen angle, in radians clockwise from +x, the
// actor faces while playing anim
func FacingAngle(anim patrol.Animation) float64 {
	switch anim {
	case patrol.WalkDown:
		return math.Pi / 2
	case patrol.WalkLeft:
		return math.Pi
	case patrol.WalkUp:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}

// MouthAngle returns the half-opening of the actor's mouth for an animation
// clock t in seconds. It opens and closes four times a second.
func MouthAngle(t float64) float64 {
	const maxOpen = math.Pi / 4
	phase := t*4 - math.Floor(t*4)
	return maxOpen * (1 - math.Abs(2*phase-1))
}
