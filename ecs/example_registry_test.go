package ecs_test

import (
	"fmt"

	"github.com/plus3/sigil/ecs"
)

// ExampleRegistry demonstrates the entity lifecycle: entities and their
// component changes are staged, and system membership is computed at the
// single Update call per frame. An entity created mid-frame is invisible to
// every system until Update runs.
func ExampleRegistry() {
	registry := ecs.NewRegistry()

	movement := NewMovementSystem()
	ecs.AddSystem(registry, movement)

	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{X: 10, Y: 20}) //nolint:errcheck
	ecs.AddComponent(e, Velocity{X: 5, Y: 0})   //nolint:errcheck

	fmt.Printf("before update: %d entities in MovementSystem\n", movement.NumEntities())

	registry.Update()

	fmt.Printf("after update: %d entities in MovementSystem\n", movement.NumEntities())

	pos, _ := ecs.GetComponent[Position](e)
	fmt.Printf("position: %.0f,%.0f\n", pos.X, pos.Y)

	// Output:
	// before update: 0 entities in MovementSystem
	// after update: 1 entities in MovementSystem
	// position: 10,20
}

// ExampleRegistry_AddEntityToSystems shows the manual re-matching escape
// hatch: component changes on an already active entity never re-run system
// membership on their own.
func ExampleRegistry_AddEntityToSystems() {
	registry := ecs.NewRegistry()

	movement := NewMovementSystem()
	ecs.AddSystem(registry, movement)

	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{}) //nolint:errcheck
	registry.Update()

	ecs.AddComponent(e, Velocity{}) //nolint:errcheck
	registry.Update()
	fmt.Printf("after component add: %d\n", movement.NumEntities())

	registry.AddEntityToSystems(e)
	fmt.Printf("after explicit re-match: %d\n", movement.NumEntities())

	// Output:
	// after component add: 0
	// after explicit re-match: 1
}
