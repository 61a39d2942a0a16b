package ecs_test

import "github.com/plus3/sigil/ecs"

// Common test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Sprite struct {
	Asset  string
	Width  int
	Height int
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type PlayerController struct{}

// MovementSystem integrates velocity into position for entities carrying
// both components.
type MovementSystem struct {
	ecs.System
	UpdateCount int
}

func NewMovementSystem() *MovementSystem {
	s := &MovementSystem{}
	ecs.RequireComponent[Position](s)
	ecs.RequireComponent[Velocity](s)
	return s
}

func (m *MovementSystem) Update(dt float64) {
	m.UpdateCount++
	for _, e := range m.GetSystemEntities() {
		pos := ecs.MustGetComponent[Position](e)
		vel := ecs.MustGetComponent[Velocity](e)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}
}

// RenderSystem tracks entities with a position and a sprite.
type RenderSystem struct {
	ecs.System
	Drawn []string
}

func NewRenderSystem() *RenderSystem {
	s := &RenderSystem{}
	ecs.RequireComponent[Position](s)
	ecs.RequireComponent[Sprite](s)
	return s
}

func (r *RenderSystem) Update(dt float64) {
	r.Drawn = r.Drawn[:0]
	for _, e := range r.GetSystemEntities() {
		sprite := ecs.MustGetComponent[Sprite](e)
		r.Drawn = append(r.Drawn, sprite.Asset)
	}
}

// HealthSystem sums health across matching entities and kills the dead.
type HealthSystem struct {
	ecs.System
	TotalHealth int
}

func NewHealthSystem() *HealthSystem {
	s := &HealthSystem{}
	ecs.RequireComponent[Health](s)
	return s
}

func (h *HealthSystem) Update(dt float64) {
	h.TotalHealth = 0
	for _, e := range h.GetSystemEntities() {
		hp := ecs.MustGetComponent[Health](e)
		if hp.Current <= 0 {
			e.Kill() //nolint:errcheck
			continue
		}
		h.TotalHealth += hp.Current
	}
}
