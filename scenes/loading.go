package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/arcadeshell/components"
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/fonts"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/automoto/arcadeshell/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadingScene warms caches one step per frame behind a progress bar.
type LoadingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewLoadingScene(sc SceneChanger) *LoadingScene {
	return &LoadingScene{sceneChanger: sc}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LoadingScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	systems.CreateLoading(ls.ecs, LoadSteps())

	ls.ecs.AddSystem(systems.NewUpdateLoading(func(*ecs.ECS) {
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger))
	}))
	ls.ecs.AddRenderer(cfg.Default, systems.DrawLoading)
}

// LoadSteps lists the work done before the menu appears.
func LoadSteps() []components.LoadStep {
	return []components.LoadStep{
		{Label: "LoadingFonts", Run: warmFonts},
		{Label: "LoadingAudio", Run: systems.PreloadAllSFX},
		{Label: "LoadingLocale", Run: checkLabels},
	}
}

// warmFonts builds every face the menus draw with so the first frame does not
// rasterize them.
func warmFonts() error {
	styles := []cfg.TextStyle{
		cfg.Menu.TitleStyle, cfg.Menu.InactiveStyle, cfg.Menu.ActiveStyle, cfg.Menu.InstructionStyle,
		cfg.GameOver.TitleStyle, cfg.GameOver.ScoreStyle, cfg.GameOver.InactiveStyle, cfg.GameOver.ActiveStyle,
	}
	for _, s := range styles {
		fonts.For(s.Bold, s.Size)
	}
	return nil
}

// checkLabels reports menu label keys missing from the active catalog.
func checkLabels() error {
	var missing []string
	lists := append([][]string{cfg.Menu.EntryLabels, cfg.GameOver.EntryLabels}, cfg.Menu.Hints.All()...)
	for _, keys := range lists {
		for _, key := range keys {
			if !i18n.Has(key) {
				missing = append(missing, key)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing labels for %s: %v", i18n.Language(), missing)
	}
	return nil
}
