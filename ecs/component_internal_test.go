package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// distinctTypes fabricates n distinct reflect.Types without declaring n Go
// types, so a fresh typeTable can be exhausted without touching the
// process-wide table.
func distinctTypes(n int) []reflect.Type {
	types := make([]reflect.Type, n)
	for i := range types {
		types[i] = reflect.ArrayOf(i+1, reflect.TypeFor[byte]())
	}
	return types
}

func TestTypeTableSequentialFromZero(t *testing.T) {
	tt := newTypeTable()

	for i, typ := range distinctTypes(5) {
		id, err := tt.id(typ)
		require.NoError(t, err)
		assert.Equal(t, ComponentID(i), id)
	}
}

func TestTypeTableCapacityExceeded(t *testing.T) {
	tt := newTypeTable()

	types := distinctTypes(MaxComponentTypes + 1)
	for _, typ := range types[:MaxComponentTypes] {
		_, err := tt.id(typ)
		require.NoError(t, err)
	}

	_, err := tt.id(types[MaxComponentTypes])
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Already-assigned types still resolve after the table is full.
	id, err := tt.id(types[0])
	require.NoError(t, err)
	assert.Equal(t, ComponentID(0), id)
}

func TestTypeTableTypeOfUnassigned(t *testing.T) {
	tt := newTypeTable()
	assert.Nil(t, tt.typeOf(7))
}
