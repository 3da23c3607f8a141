// Package camera frames a generated level in an orthographic view.
package camera

import "math"

// DefaultPadding is the margin, in world units, kept around the level on each axis.
const DefaultPadding = 1.0

// View is an orthographic camera. OrthoSize is half the visible height in
// world units, as in most 2D engines.
type View struct {
	CenterX   float64
	CenterY   float64
	OrthoSize float64
}

// Fit centres the view on a fullWidth x fullHeight level whose row 0 sits at
// y = 0 and grows downward, sized so the whole level fits the aspect ratio
// with one unit of padding.
func Fit(fullWidth, fullHeight int, aspectRatio float64) View {
	return FitPadded(fullWidth, fullHeight, aspectRatio, DefaultPadding)
}

// FitPadded is Fit with a custom padding.
func FitPadded(fullWidth, fullHeight int, aspectRatio, padding float64) View {
	w := float64(fullWidth)
	h := float64(fullHeight)

	verticalSize := h/2 + padding
	horizontalSize := w/(2*aspectRatio) + padding

	return View{
		CenterX:   w / 2,
		CenterY:   -h / 2,
		OrthoSize: math.Max(verticalSize, horizontalSize),
	}
}

// Scale returns screen pixels per world unit for a screen of the given height.
func (v View) Scale(screenHeight int) float64 {
	if v.OrthoSize <= 0 {
		return 1
	}
	return float64(screenHeight) / (2 * v.OrthoSize)
}

// WorldToScreen converts a world position into screen pixels. Screen y grows
// downward while world y grows upward.
func (v View) WorldToScreen(x, y float64, screenWidth, screenHeight int) (float64, float64) {
	scale := v.Scale(screenHeight)
	sx := (x-v.CenterX)*scale + float64(screenWidth)/2
	sy := (v.CenterY-y)*scale + float64(screenHeight)/2
	return sx, sy
}

// ScreenToWorld is the inverse of WorldToScreen.
func (v View) ScreenToWorld(sx, sy float64, screenWidth, screenHeight int) (float64, float64) {
	scale := v.Scale(screenHeight)
	x := (sx-float64(screenWidth)/2)/scale + v.CenterX
	y := v.CenterY - (sy-float64(screenHeight)/2)/scale
	return x, y
}
