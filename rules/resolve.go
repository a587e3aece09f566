package rules

import (
	"github.com/lixenwraith/arkanoid/component"
	"github.com/lixenwraith/arkanoid/engine"
	"github.com/lixenwraith/arkanoid/physics"
	"github.com/lixenwraith/arkanoid/vmath"
)

// Resolver applies paddle/ball and brick/ball collision rules to entities carrying
// PhysicsComponent. It mutates the ball's velocity and the brick's liveness in place.
type Resolver struct {
	// Speed is the ball's per-axis speed after any bounce
	Speed float32
	// Rule decides the vertical velocity for brick hits; nil means ReflectRule
	Rule BounceRule

	OnPaddleHit func()
	OnBrickHit  func(brick *engine.Entity)
}

// ResolvePaddleBall sends the ball upward on overlap, to the side of the paddle center it is on
func (r *Resolver) ResolvePaddleBall(paddle, ball *engine.Entity) bool {
	mPaddle := engine.GetComponent[*component.PhysicsComponent](paddle)
	mBall := engine.GetComponent[*component.PhysicsComponent](ball)

	if !physics.Intersects(mPaddle, mBall) {
		return false
	}

	mBall.Velocity.Y = -r.Speed
	if mBall.X() < mPaddle.X() {
		mBall.Velocity.X = -r.Speed
	} else {
		mBall.Velocity.X = r.Speed
	}

	if r.OnPaddleHit != nil {
		r.OnPaddleHit()
	}
	return true
}

// ResolveBrickBall destroys the brick on overlap and bounces the ball off the axis of
// shallower penetration. Ties resolve toward the right/bottom faces and the vertical axis.
func (r *Resolver) ResolveBrickBall(brick, ball *engine.Entity) bool {
	mBrick := engine.GetComponent[*component.PhysicsComponent](brick)
	mBall := engine.GetComponent[*component.PhysicsComponent](ball)

	if !physics.Intersects(mBrick, mBall) {
		return false
	}

	brick.Destroy()

	overlapLeft := mBall.Right() - mBrick.Left()
	overlapRight := mBrick.Right() - mBall.Left()
	overlapTop := mBall.Bottom() - mBrick.Top()
	overlapBottom := mBrick.Bottom() - mBall.Top()

	fromLeft := vmath.Abs(overlapLeft) < vmath.Abs(overlapRight)
	fromTop := vmath.Abs(overlapTop) < vmath.Abs(overlapBottom)

	minOverlapX := overlapRight
	if fromLeft {
		minOverlapX = overlapLeft
	}
	minOverlapY := overlapBottom
	if fromTop {
		minOverlapY = overlapTop
	}

	if vmath.Abs(minOverlapX) < vmath.Abs(minOverlapY) {
		if fromLeft {
			mBall.Velocity.X = -r.Speed
		} else {
			mBall.Velocity.X = r.Speed
		}
	} else {
		mBall.Velocity.Y = r.rule().Vertical(Contact{
			FromLeft: fromLeft,
			FromTop:  fromTop,
			OverlapX: minOverlapX,
			OverlapY: minOverlapY,
			Speed:    r.Speed,
			Velocity: mBall.Velocity,
		})
	}

	if r.OnBrickHit != nil {
		r.OnBrickHit(brick)
	}
	return true
}

func (r *Resolver) rule() BounceRule {
	if r.Rule == nil {
		return ReflectRule{}
	}
	return r.Rule
}
