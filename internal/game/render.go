package game

import (
	"math"

	"github.com/stardodge/stardodge/internal/core"
	"github.com/stardodge/stardodge/internal/geom"
)

// Glow underdraw tuning for the ship.
const (
	glowScale = 1.6
	glowAlpha = 0.2
)

// Render draws the current state onto the canvas. It is a pure read of
// the session; layering is trail, then ship, then asteroids, so an
// asteroid overlapping the ship visually covers it at the moment of
// collision.
func (s *Session) Render(dst *core.Canvas) {
	dst.Clear()

	for _, p := range s.trail {
		dst.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, core.ColorCyan, p.Alpha)
	}

	s.renderShip(dst)

	for _, a := range s.asteroids {
		renderAsteroid(dst, a)
	}
}

// renderShip draws the triangular ship facing up, over a soft glow.
func (s *Session) renderShip(dst *core.Canvas) {
	r := s.player.Radius

	dst.Save()
	dst.Translate(s.player.Pos.X, s.player.Pos.Y)

	dst.FillCircle(0, 0, r*glowScale, core.ColorCyan, glowAlpha)

	hull := []geom.Vec2{
		{X: 0, Y: -r},       // nose
		{X: r * 0.8, Y: r},  // starboard
		{X: -r * 0.8, Y: r}, // port
	}
	dst.FillPolygon(hull, s.player.Color, 1)

	dst.Restore()
}

// renderAsteroid draws a rotated regular hexagon with a darker crater
// decoration offset from center.
func renderAsteroid(dst *core.Canvas, a Asteroid) {
	dst.Save()
	dst.Translate(a.Pos.X, a.Pos.Y)
	dst.Rotate(a.Rotation)

	dst.FillPolygon(hexagon(a.Size), a.Color, 1)
	dst.FillCircle(a.Size*0.35, -a.Size*0.2, a.Size*0.3, core.ColorGray, 0.5)

	dst.Restore()
}

// hexagon returns the vertices of a regular hexagon of the given radius
// centered on the local origin.
func hexagon(r float64) []geom.Vec2 {
	pts := make([]geom.Vec2, 6)
	for i := range pts {
		angle := float64(i) * math.Pi / 3
		sin, cos := math.Sincos(angle)
		pts[i] = geom.Vec2{X: r * cos, Y: r * sin}
	}
	return pts
}
