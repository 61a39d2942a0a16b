package ecs

import (
	"fmt"
	"math/bits"
)

// Signature is a fixed-capacity bit set over ComponentIDs. For an entity,
// bit i set means the entity currently owns component type i; for a system,
// bit i set means the system requires component type i.
type Signature uint64

// Set marks the given component id as present.
func (s *Signature) Set(id ComponentID) {
	*s |= 1 << id
}

// Clear marks the given component id as absent.
func (s *Signature) Clear(id ComponentID) {
	*s &^= 1 << id
}

// Test reports whether the given component id is present.
func (s Signature) Test(id ComponentID) bool {
	return s&(1<<id) != 0
}

// ContainsAll reports whether every bit set in required is also set in s.
// This is the entity-matches-system rule.
func (s Signature) ContainsAll(required Signature) bool {
	return s&required == required
}

// Count returns the number of component ids present.
func (s Signature) Count() int {
	return bits.OnesCount64(uint64(s))
}

// IDs returns the component ids present, in ascending order.
func (s Signature) IDs() []ComponentID {
	out := make([]ComponentID, 0, s.Count())
	for v := uint64(s); v != 0; v &= v - 1 {
		out = append(out, ComponentID(bits.TrailingZeros64(v)))
	}
	return out
}

func (s Signature) String() string {
	return fmt.Sprintf("%#018x", uint64(s))
}
