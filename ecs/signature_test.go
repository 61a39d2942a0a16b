package ecs_test

import (
	"testing"

	"github.com/plus3/sigil/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSignatureSetClearTest(t *testing.T) {
	var s ecs.Signature

	assert.False(t, s.Test(0))
	s.Set(0)
	s.Set(5)
	assert.True(t, s.Test(0))
	assert.True(t, s.Test(5))
	assert.False(t, s.Test(1))

	s.Clear(0)
	assert.False(t, s.Test(0))
	assert.True(t, s.Test(5))

	// Clearing an absent bit is a no-op.
	s.Clear(3)
	assert.Equal(t, 1, s.Count())
}

func TestSignatureContainsAll(t *testing.T) {
	var entity, system ecs.Signature

	entity.Set(0)
	entity.Set(1)
	entity.Set(4)

	system.Set(0)
	system.Set(1)
	assert.True(t, entity.ContainsAll(system))

	system.Set(2)
	assert.False(t, entity.ContainsAll(system))

	// Every signature contains the empty signature.
	assert.True(t, entity.ContainsAll(0))
	assert.True(t, ecs.Signature(0).ContainsAll(0))
}

func TestSignatureIDs(t *testing.T) {
	var s ecs.Signature
	s.Set(3)
	s.Set(0)
	s.Set(63)

	assert.Equal(t, []ecs.ComponentID{0, 3, 63}, s.IDs())
	assert.Equal(t, 3, s.Count())
}

func TestSignatureString(t *testing.T) {
	var s ecs.Signature
	s.Set(4)
	assert.Equal(t, "0x0000000000000010", s.String())
}
