package component

import (
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/vmath"
)

// PhysicsComponent integrates the sibling position by a linear velocity and reports play-area
// boundary crossings. It has no bounce policy of its own: OnOutOfBounds decides what a crossing
// does. Collision rules also write Velocity directly.
type PhysicsComponent struct {
	engine.Base

	Velocity vmath.Vec2
	HalfSize vmath.Vec2
	// Area is the play area size; bounds are [0, Area.X] x [0, Area.Y]
	Area vmath.Vec2
	// OnOutOfBounds receives the unit direction pointing back into the play area
	OnOutOfBounds func(side vmath.Vec2)

	pos *PositionComponent
}

// NewPhysics creates a physics body with the given half extents inside area
func NewPhysics(halfSize, area vmath.Vec2) *PhysicsComponent {
	return &PhysicsComponent{HalfSize: halfSize, Area: area}
}

// Init resolves the position component; PositionComponent must be attached first
func (p *PhysicsComponent) Init() {
	p.pos = engine.GetComponent[*PositionComponent](p.Entity())
}

func (p *PhysicsComponent) Update(dt float32) {
	p.pos.Pos = p.pos.Pos.Add(p.Velocity.Scale(dt))

	if p.OnOutOfBounds == nil {
		return
	}

	if p.Left() < 0 {
		p.OnOutOfBounds(vmath.V(1, 0))
	} else if p.Right() > p.Area.X {
		p.OnOutOfBounds(vmath.V(-1, 0))
	}

	if p.Top() < 0 {
		p.OnOutOfBounds(vmath.V(0, 1))
	} else if p.Bottom() > p.Area.Y {
		p.OnOutOfBounds(vmath.V(0, -1))
	}
}

func (p *PhysicsComponent) X() float32      { return p.pos.Pos.X }
func (p *PhysicsComponent) Y() float32      { return p.pos.Pos.Y }
func (p *PhysicsComponent) Left() float32   { return p.X() - p.HalfSize.X }
func (p *PhysicsComponent) Right() float32  { return p.X() + p.HalfSize.X }
func (p *PhysicsComponent) Top() float32    { return p.Y() - p.HalfSize.Y }
func (p *PhysicsComponent) Bottom() float32 { return p.Y() + p.HalfSize.Y }

// Reflect returns a boundary callback that points each crossed axis of p's velocity back into
// the play area, keeping its magnitude. Repeated calls while still outside leave the sign as is.
func Reflect(p *PhysicsComponent) func(side vmath.Vec2) {
	return func(side vmath.Vec2) {
		if side.X != 0 {
			p.Velocity.X = vmath.Abs(p.Velocity.X) * side.X
		}
		if side.Y != 0 {
			p.Velocity.Y = vmath.Abs(p.Velocity.Y) * side.Y
		}
	}
}
