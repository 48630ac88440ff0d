// Package core provides the drawing surface and runtime types for the
// game. It contains no external dependencies (especially no Bubble Tea)
// to keep the simulation pure and testable.
package core

// A terminal cell is roughly twice as tall as it is wide, so a cell
// covers 8×16 surface units. Keeping the density fixed preserves shape
// proportions regardless of terminal size.
const (
	UnitsPerCol = 8.0
	UnitsPerRow = 16.0
)

// Maximum surface dimensions in units. Larger terminals get a centered
// play area instead of a larger one.
const (
	MaxSurfaceW = 800.0
	MaxSurfaceH = 600.0
)

// Minimum playable surface. Below this the platform declines to start a
// session rather than run a degenerate game.
const (
	MinSurfaceW = 200.0
	MinSurfaceH = 200.0
)

// FitSurface computes the playable surface size in units for a terminal
// of the given cell dimensions: at most 800×600, scaled down to occupy
// no more than 95% of the width and 80% of the height of the viewport.
func FitSurface(cols, rows int) (w, h float64) {
	usableCols := float64(cols) * 0.95
	usableRows := float64(rows) * 0.80

	w = usableCols * UnitsPerCol
	h = usableRows * UnitsPerRow

	if w > MaxSurfaceW {
		w = MaxSurfaceW
	}
	if h > MaxSurfaceH {
		h = MaxSurfaceH
	}
	return w, h
}

// SurfaceTooSmall reports whether a fitted surface is below the minimum
// playable size.
func SurfaceTooSmall(w, h float64) bool {
	return w < MinSurfaceW || h < MinSurfaceH
}
