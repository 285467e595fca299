package scenes

import (
	"image/color"
	"log"

	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/fonts"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/automoto/arcadeshell/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// BootScene loads fonts and the locale catalog, then hands off to loading.
type BootScene struct {
	sceneChanger SceneChanger
}

func NewBootScene(sc SceneChanger) *BootScene {
	return &BootScene{sceneChanger: sc}
}

func (bs *BootScene) Update() {
	if err := Boot(cfg.Debug.Language, cfg.Audio.DefaultSFXVol); err != nil {
		log.Fatalf("boot failed: %v", err)
	}

	if cfg.Debug.SkipMenu {
		bs.sceneChanger.ChangeScene(NewGameScene(bs.sceneChanger))
		return
	}
	bs.sceneChanger.ChangeScene(NewLoadingScene(bs.sceneChanger))
}

func (bs *BootScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
}

// Boot parses the fonts and locale files every scene depends on and sets the
// sound effect volume. An unknown language falls back to English with a warning.
func Boot(language string, sfxVolume float64) error {
	systems.SetSFXVolume(sfxVolume)

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	if err := i18n.Init(); err != nil {
		return err
	}
	if err := i18n.SetWithCode(language); err != nil {
		log.Printf("Warning: %v, using %s", err, i18n.Language())
	}
	return nil
}
