package stage

// Surface is the drawing target entities render onto. Implementations must
// make Push/Pop scope both the transform and the alpha, so a render call can
// never leak state into the next one. The core issues only these primitives.
type Surface interface {
	// Push saves the current transform and alpha.
	Push()
	// Pop restores the most recently pushed transform and alpha.
	Pop()
	// Translate moves the origin by (x, y) in the current coordinate space.
	Translate(x, y float64)
	// Rotate rotates the coordinate space by `radians` around the origin.
	Rotate(radians float64)
	// SetAlpha sets the global alpha for subsequent draws, clamped to 0..1.
	SetAlpha(alpha float64)
	// DrawFrameCentered draws `f` centered on the origin at width x height.
	DrawFrameCentered(f Frame, width, height float64)
	// StrokeRect outlines a rectangle in the current coordinate space.
	StrokeRect(x, y, width, height float64)
}
