package core

import (
	"math"
	"strings"

	"github.com/stardodge/stardodge/internal/geom"
)

// Cell is a single drawable terminal cell.
type Cell struct {
	Rune  rune
	Color Color
}

// affine is a 2D transform matrix:
//
//	| A C Tx |
//	| B D Ty |
type affine struct {
	a, b, c, d, tx, ty float64
}

func identity() affine {
	return affine{a: 1, d: 1}
}

// apply maps a point through the transform.
func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.tx, m.b*x + m.d*y + m.ty
}

// Canvas is an immediate-mode drawing surface. Shapes are specified in
// surface units (float coordinates) and rasterized into a terminal cell
// buffer, with translucency rendered as a shade ramp. It supports a
// save/restore transform stack with translate and rotate, mirroring a
// 2D drawing context.
type Canvas struct {
	cols, rows int     // drawable cells
	surfaceW   float64 // surface width in units
	surfaceH   float64 // surface height in units

	offsetCol int // centering offset within the terminal
	offsetRow int

	cells []Cell

	cur   affine
	stack []affine
}

// NewCanvas creates a canvas for the given surface size, centered in a
// terminal of termCols×termRows cells.
func NewCanvas(termCols, termRows int, surfaceW, surfaceH float64) *Canvas {
	c := &Canvas{cur: identity()}
	c.Resize(termCols, termRows, surfaceW, surfaceH)
	return c
}

// Resize refits the canvas to new terminal and surface dimensions.
// Cell content is discarded; the next render repaints everything.
func (c *Canvas) Resize(termCols, termRows int, surfaceW, surfaceH float64) {
	c.surfaceW = surfaceW
	c.surfaceH = surfaceH
	c.cols = int(math.Ceil(surfaceW / UnitsPerCol))
	c.rows = int(math.Ceil(surfaceH / UnitsPerRow))
	if c.cols < 1 {
		c.cols = 1
	}
	if c.rows < 1 {
		c.rows = 1
	}

	c.offsetCol = (termCols - c.cols) / 2
	c.offsetRow = (termRows - c.rows) / 2
	if c.offsetCol < 0 {
		c.offsetCol = 0
	}
	if c.offsetRow < 0 {
		c.offsetRow = 0
	}

	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

// Cols returns the drawable width in cells.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the drawable height in cells.
func (c *Canvas) Rows() int { return c.rows }

// OffsetCol returns the centering column offset in the terminal.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the centering row offset in the terminal.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// SurfaceSize returns the surface dimensions in units.
func (c *Canvas) SurfaceSize() (float64, float64) {
	return c.surfaceW, c.surfaceH
}

// Clear fills the canvas with blanks and resets the transform.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Color: ColorDefault}
	}
	c.cur = identity()
	c.stack = c.stack[:0]
}

// Save pushes the current transform onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops the most recently saved transform.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the origin by (dx, dy) in the current local frame.
func (c *Canvas) Translate(dx, dy float64) {
	c.cur.tx, c.cur.ty = c.cur.apply(dx, dy)
}

// Rotate rotates the current frame by theta radians.
func (c *Canvas) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	m := c.cur
	c.cur.a = m.a*cos + m.c*sin
	c.cur.b = m.b*cos + m.d*sin
	c.cur.c = -m.a*sin + m.c*cos
	c.cur.d = -m.b*sin + m.d*cos
}

// shadeRune maps a fill alpha to a block-shade rune. Alphas at or below
// the threshold draw nothing.
func shadeRune(alpha float64) (rune, bool) {
	switch {
	case alpha >= 0.85:
		return '█', true
	case alpha >= 0.6:
		return '▓', true
	case alpha >= 0.35:
		return '▒', true
	case alpha > 0.02:
		return '░', true
	default:
		return ' ', false
	}
}

func (c *Canvas) setCell(col, row int, r rune, color Color) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = Cell{Rune: r, Color: color}
}

// GetCell returns the cell at (col, row), or a blank cell out of bounds.
func (c *Canvas) GetCell(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return c.cells[row*c.cols+col]
}

// cellCenter returns the surface-unit coordinates of a cell's center.
func cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * UnitsPerCol, (float64(row) + 0.5) * UnitsPerRow
}

// FillCircle fills a circle of radius r centered at (cx, cy) in the
// current transform, with the given color and fill alpha.
func (c *Canvas) FillCircle(cx, cy, r float64, color Color, alpha float64) {
	shade, ok := shadeRune(alpha)
	if !ok || r <= 0 {
		return
	}

	// Rotation preserves distance, so only the center transforms.
	tx, ty := c.cur.apply(cx, cy)

	minCol := int(math.Floor((tx - r) / UnitsPerCol))
	maxCol := int(math.Ceil((tx + r) / UnitsPerCol))
	minRow := int(math.Floor((ty - r) / UnitsPerRow))
	maxRow := int(math.Ceil((ty + r) / UnitsPerRow))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			px, py := cellCenter(col, row)
			if math.Hypot(px-tx, py-ty) <= r {
				c.setCell(col, row, shade, color)
			}
		}
	}
}

// FillPolygon fills the polygon described by pts (in the current
// transform) with the given color and fill alpha.
func (c *Canvas) FillPolygon(pts []geom.Vec2, color Color, alpha float64) {
	shade, ok := shadeRune(alpha)
	if !ok || len(pts) < 3 {
		return
	}

	// Transform vertices to surface coordinates.
	verts := make([]geom.Vec2, len(pts))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range pts {
		x, y := c.cur.apply(p.X, p.Y)
		verts[i] = geom.Vec2{X: x, Y: y}
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	minCol := int(math.Floor(minX / UnitsPerCol))
	maxCol := int(math.Ceil(maxX / UnitsPerCol))
	minRow := int(math.Floor(minY / UnitsPerRow))
	maxRow := int(math.Ceil(maxY / UnitsPerRow))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			px, py := cellCenter(col, row)
			if pointInPolygon(px, py, verts) {
				c.setCell(col, row, shade, color)
			}
		}
	}
}

// pointInPolygon tests containment with the even-odd ray-crossing rule.
func pointInPolygon(x, y float64, verts []geom.Vec2) bool {
	inside := false
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > y) != (vj.Y > y) &&
			x < (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// String converts the canvas to a plain string, one line per row.
// Used for screenshots and tests; the platform renderer applies color.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows + c.rows)
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < c.cols; col++ {
			sb.WriteRune(c.cells[row*c.cols+col].Rune)
		}
	}
	return sb.String()
}
