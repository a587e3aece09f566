package component

import (
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/vmath"
)

// PositionComponent holds an entity's center in play-area units
type PositionComponent struct {
	engine.Base
	Pos vmath.Vec2
}

// NewPosition creates a position at (x, y)
func NewPosition(x, y float32) *PositionComponent {
	return &PositionComponent{Pos: vmath.V(x, y)}
}

func (p *PositionComponent) X() float32 { return p.Pos.X }
func (p *PositionComponent) Y() float32 { return p.Pos.Y }
