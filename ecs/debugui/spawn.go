package debugui

import "github.com/plus3/sigil/ecs"

// SpawnDebugUI creates the standard debug windows as entities on the
// registry and returns the system that renders them. Register the returned
// system with the scheduler; the windows become visible after the next
// registry Update.
func SpawnDebugUI(registry *ecs.Registry, scheduler *ecs.Scheduler) *DebugSystem {
	system := NewDebugSystem()
	scheduler.Register(system)

	browser := NewEntityBrowser(100)
	inspector := NewComponentInspector()
	viewer := NewSystemViewer()
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()

	spawnWindow(registry, func() {
		browser.Render(registry)
	})
	spawnWindow(registry, func() {
		inspector.Render(registry, browser.GetSelectedEntity())
	})
	spawnWindow(registry, func() {
		viewer.Render(registry)
	})
	spawnWindow(registry, func() {
		perf.Render(registry, scheduler, timer.GetDeltaTime())
	})

	return system
}

func spawnWindow(registry *ecs.Registry, render func()) {
	e := registry.CreateEntity()
	ecs.AddComponent(e, ImguiItem{Render: render}) //nolint:errcheck
}
