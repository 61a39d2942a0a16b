package main

import (
	"math/rand"

	"github.com/plus3/sigil/ecs"
)

// The fixed palette of component types the stress test draws from.
// Spawned entities receive a random subset, which produces a spread of
// signatures across the registered systems.

type Transform struct {
	X, Y     float64
	Rotation float64
}

type Velocity struct {
	DX, DY float64
}

type Acceleration struct {
	AX, AY float64
}

type Health struct {
	Current, Max int
}

type Damage struct {
	PerSecond float64
}

type Lifetime struct {
	Remaining float64
}

type Team struct {
	ID int
}

type Label struct {
	Name string
}

const componentCount = 8

// SpawnRandomEntity creates an entity carrying n components picked at
// random from the palette (without repeats).
func SpawnRandomEntity(registry *ecs.Registry, n int) (ecs.Entity, error) {
	e := registry.CreateEntity()

	for _, pick := range rand.Perm(componentCount)[:n] {
		var err error
		switch pick {
		case 0:
			err = ecs.AddComponent(e, Transform{X: rand.Float64() * 1000, Y: rand.Float64() * 1000})
		case 1:
			err = ecs.AddComponent(e, Velocity{DX: rand.Float64()*20 - 10, DY: rand.Float64()*20 - 10})
		case 2:
			err = ecs.AddComponent(e, Acceleration{AX: rand.Float64()*2 - 1, AY: rand.Float64()*2 - 1})
		case 3:
			err = ecs.AddComponent(e, Health{Current: 100, Max: 100})
		case 4:
			err = ecs.AddComponent(e, Damage{PerSecond: rand.Float64() * 5})
		case 5:
			err = ecs.AddComponent(e, Lifetime{Remaining: rand.Float64()*30 + 5})
		case 6:
			err = ecs.AddComponent(e, Team{ID: rand.Intn(4)})
		case 7:
			err = ecs.AddComponent(e, Label{Name: "stress"})
		}
		if err != nil {
			return e, err
		}
	}
	return e, nil
}
