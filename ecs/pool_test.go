package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolResizeGrowsNeverShrinks(t *testing.T) {
	p := newPool[int]()
	assert.Equal(t, 0, p.len())

	p.resize(4)
	assert.Equal(t, 4, p.len())

	p.set(3, 42)

	// Shrinking is a no-op and keeps stored values intact.
	p.resize(2)
	assert.Equal(t, 4, p.len())
	assert.Equal(t, 42, *p.get(3))

	p.resize(16)
	assert.Equal(t, 16, p.len())
	assert.Equal(t, 42, *p.get(3))
}

func TestPoolGetReturnsMutableSlot(t *testing.T) {
	p := newPool[Positionish]()
	p.resize(2)
	p.set(1, Positionish{X: 1})

	p.get(1).X = 7
	assert.Equal(t, 7.0, p.get(1).X)
}

func TestPoolValueOutOfRange(t *testing.T) {
	p := newPool[int]()
	p.resize(2)
	assert.Nil(t, p.value(5))
	assert.Nil(t, p.value(-1))
}

func TestPoolClearDropsStorage(t *testing.T) {
	p := newPool[int]()
	p.resize(8)
	p.set(0, 1)

	p.clear()
	assert.Equal(t, 0, p.len())
}

type Positionish struct {
	X, Y float64
}
