package render

import (
	"github.com/lixenwraith/arkanoid/vmath"
)

// Drawable is a filled shape in play-area coordinates
// Backends rasterize by sampling Contains over the Bounds rectangle
type Drawable interface {
	Bounds() (min, max vmath.Vec2)
	Contains(p vmath.Vec2) bool
	Fill() RGB
}

// Rect is an axis-aligned rectangle given by center and half extents
type Rect struct {
	Center   vmath.Vec2
	HalfSize vmath.Vec2
	Color    RGB
}

func (r Rect) Bounds() (vmath.Vec2, vmath.Vec2) {
	return r.Center.Sub(r.HalfSize), r.Center.Add(r.HalfSize)
}

func (r Rect) Contains(p vmath.Vec2) bool {
	d := p.Sub(r.Center)
	return vmath.Abs(d.X) <= r.HalfSize.X && vmath.Abs(d.Y) <= r.HalfSize.Y
}

func (r Rect) Fill() RGB {
	return r.Color
}

// Circle is a disc given by center and radius
type Circle struct {
	Center vmath.Vec2
	Radius float32
	Color  RGB
}

func (c Circle) Bounds() (vmath.Vec2, vmath.Vec2) {
	ext := vmath.V(c.Radius, c.Radius)
	return c.Center.Sub(ext), c.Center.Add(ext)
}

func (c Circle) Contains(p vmath.Vec2) bool {
	d := p.Sub(c.Center)
	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}

func (c Circle) Fill() RGB {
	return c.Color
}
