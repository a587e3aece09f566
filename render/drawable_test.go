package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/arkanoid/vmath"
)

func TestRectContainsAndBounds(t *testing.T) {
	r := Rect{Center: vmath.V(10, 10), HalfSize: vmath.V(5, 2), Color: RGBRed}

	min, max := r.Bounds()
	assert.Equal(t, vmath.V(5, 8), min)
	assert.Equal(t, vmath.V(15, 12), max)

	assert.True(t, r.Contains(vmath.V(15, 12)))
	assert.False(t, r.Contains(vmath.V(15.5, 10)))
	assert.Equal(t, RGBRed, r.Fill())
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: vmath.V(0, 0), Radius: 2}

	assert.True(t, c.Contains(vmath.V(2, 0)))
	assert.False(t, c.Contains(vmath.V(1.5, 1.5)))
}

func TestBlendEndpoints(t *testing.T) {
	assert.Equal(t, RGBBlack, RGBBlack.Blend(RGBWhite, 0))
	assert.Equal(t, RGBWhite, RGBBlack.Blend(RGBWhite, 1))
}
