package game

// Rect is an axis aligned box described by its center and size.
type Rect struct {
	Pos  Vec
	Size Vec
}

func NewRect(w, h float64) Rect {
	return Rect{Size: Vec{X: w, Y: h}}
}

func (r Rect) Left() float64   { return r.Pos.X - r.Size.X/2 }
func (r Rect) Right() float64  { return r.Pos.X + r.Size.X/2 }
func (r Rect) Top() float64    { return r.Pos.Y - r.Size.Y/2 }
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Size.Y/2 }

// Overlaps is a strict AABB test: boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}
