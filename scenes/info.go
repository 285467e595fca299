package scenes

import (
	"sync"

	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/automoto/arcadeshell/menu"
	"github.com/automoto/arcadeshell/systems"
	"github.com/automoto/arcadeshell/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InfoKind selects which static screen an InfoScene shows
type InfoKind int

const (
	InfoHowTo InfoKind = iota
	InfoCredits
)

// keys returns the i18n keys for the screen's title and body.
func (k InfoKind) keys() (title, body string) {
	if k == InfoCredits {
		return "CreditsTitle", "CreditsBody"
	}
	return "HowToTitle", "HowToBody"
}

// InfoScene shows the how-to or credits text until the player goes back
type InfoScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	kind         InfoKind
	infoUI       *ui.InfoUI
	once         sync.Once
	shouldGoBack bool
}

func NewInfoScene(sc SceneChanger, kind InfoKind) *InfoScene {
	return &InfoScene{sceneChanger: sc, kind: kind}
}

// Kind reports which screen this scene shows.
func (s *InfoScene) Kind() InfoKind {
	return s.kind
}

func (s *InfoScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.infoUI.UI.Update()

	if s.shouldGoBack {
		runCommand(s.sceneChanger, menu.CommandMainMenu)
	}
}

func (s *InfoScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Info.BackgroundColor)

	if s.ecsWorld == nil {
		return
	}

	s.infoUI.UI.Draw(screen)
}

func (s *InfoScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())

	s.ecsWorld.AddSystem(systems.UpdateInput)
	s.ecsWorld.AddSystem(newBackSystem(func() { s.shouldGoBack = true }))

	titleKey, bodyKey := s.kind.keys()
	s.infoUI = ui.NewInfoUI(
		i18n.GetString(titleKey),
		i18n.GetString(bodyKey),
		i18n.GetString("InfoBack"),
		func() { s.shouldGoBack = true },
	)
}
