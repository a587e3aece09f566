package component

import (
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/render"
	"github.com/lixenwraith/arkanoid/vmath"
)

// ShapeKind selects the drawable a ShapeComponent emits
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// ShapeComponent keeps a drawable in sync with the sibling position and submits it on Draw
type ShapeComponent struct {
	engine.Base

	Kind     ShapeKind
	HalfSize vmath.Vec2 // rect
	Radius   float32    // circle
	Color    render.RGB

	canvas render.Canvas
	pos    *PositionComponent
	center vmath.Vec2
}

// NewRectShape creates a rectangle with half extents halfSize
func NewRectShape(canvas render.Canvas, halfSize vmath.Vec2, color render.RGB) *ShapeComponent {
	return &ShapeComponent{Kind: ShapeRect, HalfSize: halfSize, Color: color, canvas: canvas}
}

// NewCircleShape creates a circle of radius r
func NewCircleShape(canvas render.Canvas, r float32, color render.RGB) *ShapeComponent {
	return &ShapeComponent{Kind: ShapeCircle, Radius: r, Color: color, canvas: canvas}
}

func (s *ShapeComponent) Init() {
	s.pos = engine.GetComponent[*PositionComponent](s.Entity())
	s.center = s.pos.Pos
}

func (s *ShapeComponent) Update(float32) {
	s.center = s.pos.Pos
}

func (s *ShapeComponent) Draw() {
	s.canvas.Draw(s.Drawable())
}

// Drawable returns the shape at its last synced position
func (s *ShapeComponent) Drawable() render.Drawable {
	if s.Kind == ShapeCircle {
		return render.Circle{Center: s.center, Radius: s.Radius, Color: s.Color}
	}
	return render.Rect{Center: s.center, HalfSize: s.HalfSize, Color: s.Color}
}
