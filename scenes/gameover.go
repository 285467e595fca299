package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/arcadeshell/components"
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/automoto/arcadeshell/menu"
	"github.com/automoto/arcadeshell/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gameOverCommands pairs with cfg.GameOver.EntryLabels
var gameOverCommands = []menu.Command{menu.CommandRetry, menu.CommandMainMenu}

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs           *ecs.ECS
	sceneChanger  SceneChanger
	survivedTicks int
	once          sync.Once
}

// NewGameOverScene creates a new game over scene for a run that lasted survivedTicks
func NewGameOverScene(sc SceneChanger, survivedTicks int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, survivedTicks: survivedTicks}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	systems.GetOrCreateGameOver(gs.ecs).SurvivedTicks = gs.survivedTicks

	labels := i18n.Strings(cfg.GameOver.EntryLabels)
	data := components.NewMenuData(labels,
		systems.GameOverMenuLayout(cfg.C.Width, cfg.C.Height),
		cfg.GameOver.InactiveStyle, cfg.GameOver.ActiveStyle, cfg.Menu.HighlightFrames)
	if _, err := systems.CreateMenu(gs.ecs, menuEntries(labels, gameOverCommands), data,
		menu.WithDefault(menu.CommandMainMenu)); err != nil {
		log.Fatalf("failed to build game over menu: %v", err)
	}

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateMenu(func(_ *ecs.ECS, cmd menu.Command) {
		runCommand(gs.sceneChanger, cmd)
	}))

	// Audio runs last so the confirm sound plays before the scene changes
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
