package ecs_test

import (
	"testing"

	"github.com/plus3/sigil/ecs"
)

func BenchmarkCreateEntity(b *testing.B) {
	registry := ecs.NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		registry.CreateEntity()
	}
}

func BenchmarkAddComponent(b *testing.B) {
	registry := ecs.NewRegistry()

	entities := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		entities[i] = registry.CreateEntity()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.AddComponent(entities[i], Position{X: 1, Y: 2}) //nolint:errcheck
	}
}

func BenchmarkGetComponent(b *testing.B) {
	registry := ecs.NewRegistry()
	e := registry.CreateEntity()
	ecs.AddComponent(e, Position{X: 1, Y: 2}) //nolint:errcheck

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.GetComponent[Position](e)
	}
}

func BenchmarkUpdateDispatch(b *testing.B) {
	registry := ecs.NewRegistry()
	ecs.AddSystem(registry, NewMovementSystem())
	ecs.AddSystem(registry, NewRenderSystem())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := registry.CreateEntity()
		ecs.AddComponent(e, Position{}) //nolint:errcheck
		ecs.AddComponent(e, Velocity{}) //nolint:errcheck
		registry.Update()
	}
}

func BenchmarkSystemIteration(b *testing.B) {
	registry := ecs.NewRegistry()
	movement := NewMovementSystem()
	ecs.AddSystem(registry, movement)

	for i := 0; i < 10000; i++ {
		e := registry.CreateEntity()
		ecs.AddComponent(e, Position{X: float64(i)}) //nolint:errcheck
		ecs.AddComponent(e, Velocity{X: 1, Y: 1})    //nolint:errcheck
	}
	registry.Update()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		movement.Update(1.0 / 60.0)
	}
}

func BenchmarkKillAndUpdate(b *testing.B) {
	registry := ecs.NewRegistry()
	ecs.AddSystem(registry, NewMovementSystem())

	entities := make([]ecs.Entity, b.N)
	for i := 0; i < b.N; i++ {
		e := registry.CreateEntity()
		ecs.AddComponent(e, Position{}) //nolint:errcheck
		ecs.AddComponent(e, Velocity{}) //nolint:errcheck
		entities[i] = e
	}
	registry.Update()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entities[i].Kill() //nolint:errcheck
		registry.Update()
	}
}
