package main

import (
	"math/rand"

	"github.com/plus3/sigil/ecs"
)

const systemCount = 5

// MotionSystem integrates velocity into position.
type MotionSystem struct {
	ecs.System
}

func NewMotionSystem() *MotionSystem {
	s := &MotionSystem{}
	ecs.RequireComponent[Transform](s)
	ecs.RequireComponent[Velocity](s)
	return s
}

func (m *MotionSystem) Update(dt float64) {
	for _, e := range m.GetSystemEntities() {
		tf := ecs.MustGetComponent[Transform](e)
		vel := ecs.MustGetComponent[Velocity](e)
		tf.X += vel.DX * dt
		tf.Y += vel.DY * dt
	}
}

// ForceSystem integrates acceleration into velocity.
type ForceSystem struct {
	ecs.System
}

func NewForceSystem() *ForceSystem {
	s := &ForceSystem{}
	ecs.RequireComponent[Velocity](s)
	ecs.RequireComponent[Acceleration](s)
	return s
}

func (f *ForceSystem) Update(dt float64) {
	for _, e := range f.GetSystemEntities() {
		vel := ecs.MustGetComponent[Velocity](e)
		acc := ecs.MustGetComponent[Acceleration](e)
		vel.DX += acc.AX * dt
		vel.DY += acc.AY * dt
	}
}

// AttritionSystem drains health over time and kills entities at zero.
type AttritionSystem struct {
	ecs.System
	Kills int64
}

func NewAttritionSystem() *AttritionSystem {
	s := &AttritionSystem{}
	ecs.RequireComponent[Health](s)
	ecs.RequireComponent[Damage](s)
	return s
}

func (a *AttritionSystem) Update(dt float64) {
	for _, e := range a.GetSystemEntities() {
		health := ecs.MustGetComponent[Health](e)
		dmg := ecs.MustGetComponent[Damage](e)
		health.Current -= int(dmg.PerSecond * dt)
		if health.Current <= 0 {
			if e.Kill() == nil {
				a.Kills++
			}
		}
	}
}

// LifetimeSystem expires entities and spawns replacements, keeping the
// pending-add and pending-kill buffers busy every frame.
type LifetimeSystem struct {
	ecs.System
	registry *ecs.Registry
	Expired  int64
}

func NewLifetimeSystem(registry *ecs.Registry) *LifetimeSystem {
	s := &LifetimeSystem{registry: registry}
	ecs.RequireComponent[Lifetime](s)
	return s
}

func (l *LifetimeSystem) Update(dt float64) {
	for _, e := range l.GetSystemEntities() {
		life := ecs.MustGetComponent[Lifetime](e)
		life.Remaining -= dt
		if life.Remaining <= 0 {
			if e.Kill() == nil {
				l.Expired++
				SpawnRandomEntity(l.registry, rand.Intn(5)+1)
			}
		}
	}
}

// CensusSystem counts living members per team each frame.
type CensusSystem struct {
	ecs.System
	Counts [4]int
}

func NewCensusSystem() *CensusSystem {
	s := &CensusSystem{}
	ecs.RequireComponent[Team](s)
	return s
}

func (c *CensusSystem) Update(dt float64) {
	c.Counts = [4]int{}
	for _, e := range c.GetSystemEntities() {
		team := ecs.MustGetComponent[Team](e)
		c.Counts[team.ID]++
	}
}
