package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/sigil/ecs"
	"github.com/plus3/sigil/ecs/debugui"
	debugui_ebiten "github.com/plus3/sigil/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scheduler *ecs.Scheduler
	backend   debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before running systems
	g.backend.BeginFrame()

	// Apply staged mutations and run all systems (including DebugSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	registry := ecs.NewRegistry()
	scheduler := ecs.NewScheduler(registry)

	// Spawn the standard inspection windows and their render system
	debugui.SpawnDebugUI(registry, scheduler)

	// Any entity with an ImguiItem renders its own widgets
	e := registry.CreateEntity()
	ecs.AddComponent(e, debugui.ImguiItem{ //nolint:errcheck
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	game := &Game{
		scheduler: scheduler,
		backend:   debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend},
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
