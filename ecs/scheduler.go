package ecs

import (
	"context"
	"reflect"
	"time"
)

// Runnable is a system with per-frame behavior. The scheduler drives these
// after the registry's Update each frame.
type Runnable interface {
	EntitySystem
	Update(dt float64)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler drives a registry through frames: each tick it applies the
// registry's staged entity mutations, then executes the registered runnable
// systems in registration order.
type Scheduler struct {
	registry    *Registry
	systems     []Runnable
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler for the given registry.
func NewScheduler(registry *Registry) *Scheduler {
	return &Scheduler{
		registry: registry,
		systems:  make([]Runnable, 0),
	}
}

// Registry returns the registry this scheduler drives.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// Register adds the system to both the registry (under its own type, so it
// receives entity dispatch) and the scheduler's execution order.
func (s *Scheduler) Register(system Runnable) {
	s.registry.addSystem(systemKey(reflect.TypeOf(system)), system)
	s.systems = append(s.systems, system)

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemKey(reflect.TypeOf(system)).Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once applies staged entity mutations and executes all registered systems
// once with the given delta time.
func (s *Scheduler) Once(dt float64) {
	s.registry.Update()

	for i, system := range s.systems {
		start := time.Now()
		system.Update(dt)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run executes frames repeatedly at the given interval until the context is
// cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
