package physics

// Bounded exposes the axis-aligned extents of a body in play-area units
type Bounded interface {
	Left() float32
	Right() float32
	Top() float32
	Bottom() float32
}

// Intersects reports whether the boxes of a and b overlap; touching edges count
func Intersects(a, b Bounded) bool {
	return a.Right() >= b.Left() && a.Left() <= b.Right() &&
		a.Bottom() >= b.Top() && a.Top() <= b.Bottom()
}

// Box is a plain Bounded value, handy for probes and tests
type Box struct {
	MinX, MinY, MaxX, MaxY float32
}

func (b Box) Left() float32   { return b.MinX }
func (b Box) Right() float32  { return b.MaxX }
func (b Box) Top() float32    { return b.MinY }
func (b Box) Bottom() float32 { return b.MaxY }
