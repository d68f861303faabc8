package geom

// Rect is an axis-aligned box. A value is either in normalized UV space or in
// pixel space; callers convert between the two explicitly.
type Rect struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w"`
	H float32 `json:"h"`
}

type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type Size struct {
	W float32 `json:"w"`
	H float32 `json:"h"`
}

func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float32   { return r.X }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// ContainsPoint reports whether p lies strictly inside r. Points on an edge
// are outside, so a zero-sized rect contains nothing.
func ContainsPoint(r Rect, p Point) bool {
	return r.Left() < p.X && r.Right() > p.X && r.Top() < p.Y && r.Bottom() > p.Y
}

// Offset translates r by p.
func Offset(r Rect, p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

func Center(r Rect) Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether r and other overlap with a non-zero area.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
