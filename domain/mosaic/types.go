package mosaic

// Point is a 2-D coordinate in either display space (widget-relative pixels)
// or image space, depending on context. Display-space points are produced by
// pointer events and stay fractional until mapped.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Min returns the componentwise minimum of p and q.
func (p Point) Min(q Point) Point {
	if q.X < p.X {
		p.X = q.X
	}
	if q.Y < p.Y {
		p.Y = q.Y
	}
	return p
}

// Max returns the componentwise maximum of p and q.
func (p Point) Max(q Point) Point {
	if q.X > p.X {
		p.X = q.X
	}
	if q.Y > p.Y {
		p.Y = q.Y
	}
	return p
}

// Scale multiplies both components by ratio.
func (p Point) Scale(ratio float64) Point {
	return Point{X: p.X * ratio, Y: p.Y * ratio}
}

const (
	// MinRadius and MaxRadius bound the user-adjustable block radius.
	MinRadius = 1
	MaxRadius = 20
)

// ClampRadius forces r into the valid [MinRadius, MaxRadius] range.
func ClampRadius(r int) int {
	if r < MinRadius {
		return MinRadius
	}
	if r > MaxRadius {
		return MaxRadius
	}
	return r
}
