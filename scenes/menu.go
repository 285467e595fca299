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

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// titleCommands pairs with cfg.Menu.EntryLabels
var titleCommands = []menu.Command{menu.CommandStartGame, menu.CommandHowTo, menu.CommandCredits}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	labels := i18n.Strings(cfg.Menu.EntryLabels)
	data := components.NewMenuData(labels,
		systems.TitleMenuLayout(cfg.C.Width, cfg.C.Height),
		cfg.Menu.InactiveStyle, cfg.Menu.ActiveStyle, cfg.Menu.HighlightFrames)
	if _, err := systems.CreateMenu(ms.ecs, menuEntries(labels, titleCommands), data); err != nil {
		log.Fatalf("failed to build main menu: %v", err)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(func(_ *ecs.ECS, cmd menu.Command) {
		runCommand(ms.sceneChanger, cmd)
	}))
	ms.ecs.AddSystem(newBackSystem(func() {
		runCommand(ms.sceneChanger, menu.CommandQuit)
	}))

	// Audio runs last so the confirm sound plays before the scene changes
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
