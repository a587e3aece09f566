package vmath

import "math"

// Vec2 is a 2D vector in play-area units
type Vec2 struct {
	X, Y float32
}

// V constructs a Vec2
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v*f
func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Abs returns |f|
func Abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// Sign returns -1, 0 or 1
func Sign(f float32) float32 {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}
