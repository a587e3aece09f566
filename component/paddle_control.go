package component

import (
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/render"
)

// PaddleControlComponent steers the sibling physics body horizontally from held keys
// The paddle stops at the play-area edges instead of relying on a boundary callback
type PaddleControlComponent struct {
	engine.Base

	Speed float32

	keys render.KeyState
	phys *PhysicsComponent
}

// NewPaddleControl creates a controller moving at speed units per step
func NewPaddleControl(keys render.KeyState, speed float32) *PaddleControlComponent {
	return &PaddleControlComponent{Speed: speed, keys: keys}
}

func (c *PaddleControlComponent) Init() {
	c.phys = engine.GetComponent[*PhysicsComponent](c.Entity())
}

func (c *PaddleControlComponent) Update(float32) {
	switch {
	case c.keys.IsKeyPressed(render.KeyLeft) && c.phys.Left() > 0:
		c.phys.Velocity.X = -c.Speed
	case c.keys.IsKeyPressed(render.KeyRight) && c.phys.Right() < c.phys.Area.X:
		c.phys.Velocity.X = c.Speed
	default:
		c.phys.Velocity.X = 0
	}
}
