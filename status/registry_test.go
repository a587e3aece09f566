package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()

	ticks := r.Ints.Get("engine.ticks")
	ticks.Add(3)

	assert.Same(t, ticks, r.Ints.Get("engine.ticks"))
	assert.Equal(t, int64(3), r.Ints.Get("engine.ticks").Load())
	assert.Equal(t, 1, r.TotalCount())
}

func TestStringSortedByKey(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b").Store(2)
	r.Ints.Get("a").Store(1)
	r.Floats.Get("fps").Set(59.94)

	assert.Equal(t, "a=1 b=2 fps=59.94", r.String())
}

func TestAtomicFloatZeroValue(t *testing.T) {
	var f AtomicFloat
	assert.Zero(t, f.Get())

	f.Set(1.5)
	assert.Equal(t, 1.5, f.Get())
}
