// Package patrol moves an actor around a closed loop of waypoints.
package patrol

import (
	"fmt"
	"math"

	"pacmaze/internal/config"
)

// Animation names the walk cycle to play
type Animation int

const (
	WalkRight Animation = iota
	WalkLeft
	WalkUp
	WalkDown
)

func (a Animation) String() string {
	switch a {
	case WalkRight:
		return "WalkRight"
	case WalkLeft:
		return "WalkLeft"
	case WalkUp:
		return "WalkUp"
	case WalkDown:
		return "WalkDown"
	default:
		return "Unknown"
	}
}

// AnimationFor picks the walk cycle for a movement direction in world space
// (y up). The dominant axis wins; ties go to the vertical cycles.
func AnimationFor(dx, dy float64) Animation {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return WalkRight
		}
		return WalkLeft
	}
	if dy > 0 {
		return WalkUp
	}
	return WalkDown
}

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Walker follows its waypoints forever at a constant speed
type Walker struct {
	X, Y      float64
	Animation Animation

	waypoints      []Point
	target         int
	speed          float64
	arriveDistance float64
	laps           int
}

// NewWalker places a walker on the first waypoint, heading for the second
func NewWalker(waypoints []Point, speed, arriveDistance float64) (*Walker, error) {
	if len(waypoints) == 0 {
		return nil, fmt.Errorf("patrol needs at least one waypoint")
	}
	if speed <= 0 {
		return nil, fmt.Errorf("patrol speed must be positive, got %v", speed)
	}
	w := &Walker{
		X:              waypoints[0].X,
		Y:              waypoints[0].Y,
		waypoints:      append([]Point(nil), waypoints...),
		target:         1 % len(waypoints),
		speed:          speed,
		arriveDistance: arriveDistance,
	}
	w.Animation = AnimationFor(w.waypoints[w.target].X-w.X, w.waypoints[w.target].Y-w.Y)
	return w, nil
}

// NewWalkerFromConfig builds a walker from the patrol section of the config
func NewWalkerFromConfig(cfg config.PatrolConfig) (*Walker, error) {
	points := make([]Point, len(cfg.Waypoints))
	for i, wp := range cfg.Waypoints {
		points[i] = Point{X: wp[0], Y: wp[1]}
	}
	return NewWalker(points, cfg.MoveSpeed, cfg.ArriveDistance)
}

// Update advances the walker by dt seconds. It never overshoots the current
// waypoint; once within the arrive distance the next waypoint becomes the target.
func (w *Walker) Update(dt float64) {
	if dt <= 0 {
		return
	}

	target := w.waypoints[w.target]
	dx := target.X - w.X
	dy := target.Y - w.Y
	dist := math.Hypot(dx, dy)

	if dist > 0 {
		step := math.Min(w.speed*dt, dist)
		w.X += dx / dist * step
		w.Y += dy / dist * step
		w.Animation = AnimationFor(dx, dy)
	}

	if math.Hypot(target.X-w.X, target.Y-w.Y) < w.arriveDistance {
		w.advance()
	}
}

func (w *Walker) advance() {
	w.target = (w.target + 1) % len(w.waypoints)
	if w.target == 0 {
		w.laps++
	}
}

// Target returns the waypoint currently being approached
func (w *Walker) Target() (Point, int) {
	return w.waypoints[w.target], w.target
}

// Laps counts completed loops back to the first waypoint
func (w *Walker) Laps() int {
	return w.laps
}

// Moving reports whether the walker has anywhere to go
func (w *Walker) Moving() bool {
	return len(w.waypoints) > 1
}
