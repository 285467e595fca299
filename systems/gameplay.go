package systems

import (
	"github.com/automoto/arcadeshell/components"
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateRun creates the placeholder gameplay system. onEnd receives the
// survived ticks once the player leaves the run.
func NewUpdateRun(onEnd func(e *ecs.ECS, ticks int)) ecs.System {
	return func(e *ecs.ECS) {
		run := GetOrCreateRun(e)
		if run.Ended {
			return
		}
		input := GetOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed {
			run.Ended = true
			PlaySFX(e, cfg.SoundGameOver)
			onEnd(e, run.Ticks)
			return
		}

		run.Ticks++
		MoveRun(run, input)
	}
}

// MoveRun applies this frame's directional input and keeps the square on screen.
func MoveRun(run *components.RunData, input *components.InputData) {
	speed := cfg.Gameplay.PlayerSpeed
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		run.X -= speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		run.X += speed
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		run.Y -= speed
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		run.Y += speed
	}

	size := cfg.Gameplay.PlayerSize
	run.X = clamp(run.X, 0, float64(cfg.C.Width)-size)
	run.Y = clamp(run.Y, 0, float64(cfg.C.Height)-size)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawRun renders the square and the survival timer
func DrawRun(e *ecs.ECS, screen *ebiten.Image) {
	run := GetOrCreateRun(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Gameplay.BackgroundColor, false)

	size := float32(cfg.Gameplay.PlayerSize)
	vector.FillRect(screen, float32(run.X), float32(run.Y), size, size, cfg.Gameplay.PlayerColor, false)

	// HUD
	seconds := run.Ticks / cfg.Gameplay.TicksPerSecond
	hud := styleOf(20, cfg.Gameplay.HUDColor)
	drawCentered(screen, i18n.GetStringWithData("HUDTime", map[string]interface{}{"Seconds": seconds}),
		hud, float64(width)/2, 24)
	drawCentered(screen, i18n.GetString("HUDHint"), styleOf(14, cfg.Gameplay.HUDColor),
		float64(width)/2, float64(height)-20)
}

// GetOrCreateRun returns the singleton Run component, starting the square in
// the middle of the screen.
func GetOrCreateRun(e *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Run))
		size := cfg.Gameplay.PlayerSize
		components.Run.SetValue(entry, components.RunData{
			X: (float64(cfg.C.Width) - size) / 2,
			Y: (float64(cfg.C.Height) - size) / 2,
		})
	}
	return components.Run.Get(entry)
}
