package systems

import (
	"github.com/automoto/arcadeshell/components"
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	drawCentered(screen, i18n.GetString("GameOverTitle"), cfg.GameOver.TitleStyle, width/2, height*cfg.GameOver.TitleY)

	seconds := gameOver.Seconds(cfg.Gameplay.TicksPerSecond)
	survived := i18n.GetPluralString("GameOverSurvived", seconds, map[string]interface{}{"Seconds": seconds})
	drawCentered(screen, survived, cfg.GameOver.ScoreStyle, width/2, height*cfg.GameOver.ScoreY)

	if m := GetMenu(e); m != nil {
		DrawMenuEntries(screen, m)
	}

	drawMenuHint(e, screen, width, height)
}

// GameOverMenuLayout places the retry and menu entries below the score.
func GameOverMenuLayout(width, height int) components.MenuLayout {
	h := float64(height)
	return components.MenuLayout{
		CenterX: float64(width) / 2,
		StartY:  h * cfg.GameOver.MenuStartY,
		Spacing: h * cfg.GameOver.MenuItemSpacing,
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
