package game

import (
	"github.com/lixenwraith/arkanoid/audio"
	"github.com/lixenwraith/arkanoid/component"
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/render"
	"github.com/lixenwraith/arkanoid/vmath"
)

// Entity groups
const (
	GroupPaddle engine.GroupID = iota
	GroupBrick
	GroupBall
)

// Each factory attaches the complete component set before returning, so every
// dependent component has resolved its siblings before the entity's first update

func (g *Game) area() vmath.Vec2 {
	return vmath.V(float32(g.cfg.Window.Width), float32(g.cfg.Window.Height))
}

func (g *Game) createBall() *engine.Entity {
	c := g.cfg.Ball
	area := g.area()

	e := g.manager.AddEntity()
	engine.AddComponent(e, component.NewPosition(area.X/2, area.Y/2))
	phys := engine.AddComponent(e, component.NewPhysics(vmath.V(c.Radius, c.Radius), area))
	engine.AddComponent(e, component.NewCircleShape(g.backend, c.Radius, render.RGBRed))

	phys.Velocity = vmath.V(-c.Velocity, -c.Velocity)
	reflect := component.Reflect(phys)
	phys.OnOutOfBounds = func(side vmath.Vec2) {
		before := phys.Velocity
		reflect(side)
		if phys.Velocity != before {
			g.sound.Play(audio.CueWall)
		}
	}

	e.AddGroup(GroupBall)
	return e
}

func (g *Game) createPaddle() *engine.Entity {
	c := g.cfg.Paddle
	area := g.area()
	half := vmath.V(c.Width/2, c.Height/2)

	e := g.manager.AddEntity()
	engine.AddComponent(e, component.NewPosition(area.X/2, area.Y-c.OffsetY))
	engine.AddComponent(e, component.NewPhysics(half, area))
	engine.AddComponent(e, component.NewRectShape(g.backend, half, render.RGBRed))
	engine.AddComponent(e, component.NewPaddleControl(g.backend, c.Velocity))

	e.AddGroup(GroupPaddle)
	return e
}

func (g *Game) createBrick(x, y float32) *engine.Entity {
	c := g.cfg.Bricks
	half := vmath.V(c.Width/2, c.Height/2)

	e := g.manager.AddEntity()
	engine.AddComponent(e, component.NewPosition(x, y))
	engine.AddComponent(e, component.NewPhysics(half, g.area()))
	engine.AddComponent(e, component.NewRectShape(g.backend, half, render.RGBYellow))

	e.AddGroup(GroupBrick)
	return e
}

// populate builds the brick wall, the paddle and the ball
func (g *Game) populate() {
	c := g.cfg.Bricks
	for iX := 0; iX < c.Columns; iX++ {
		for iY := 0; iY < c.Rows; iY++ {
			x := float32(iX+1)*(c.Width+c.Gap) + c.OffsetX
			y := float32(iY+c.OffsetRows) * (c.Height + c.Gap)
			g.createBrick(x, y)
		}
	}
	g.createPaddle()
	g.createBall()
}
