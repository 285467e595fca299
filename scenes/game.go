package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the placeholder run started from the menu
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new game scene
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateRun(func(_ *ecs.ECS, ticks int) {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, ticks))
	}))

	// Audio runs last so sounds queued on a scene change still play
	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ecs.AddRenderer(cfg.Default, systems.DrawRun)
}
