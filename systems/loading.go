package systems

import (
	"log"

	"github.com/automoto/arcadeshell/components"
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateLoading creates the system that runs the load steps a few per frame.
// A failed step is logged and skipped. onDone runs once the full bar has been
// shown for the configured hold time.
func NewUpdateLoading(onDone func(e *ecs.ECS)) ecs.System {
	finished := false
	return func(e *ecs.ECS) {
		if finished {
			return
		}
		l := GetLoading(e)
		if l == nil {
			return
		}

		if !l.Done() {
			RunLoadSteps(l, cfg.Loading.StepsPerTick)
			if l.Done() {
				l.HoldTimer = cfg.Loading.HoldFrames
			}
			return
		}

		if l.HoldTimer > 0 {
			l.HoldTimer--
			return
		}
		finished = true
		onDone(e)
	}
}

// RunLoadSteps runs up to n pending steps and returns how many ran.
func RunLoadSteps(l *components.LoadingData, n int) int {
	if n < 1 {
		n = 1
	}
	ran := 0
	for ; ran < n && !l.Done(); ran++ {
		step := l.Steps[l.Next]
		l.Next++
		if step.Run == nil {
			continue
		}
		if err := step.Run(); err != nil {
			log.Printf("Warning: load step %s failed: %v", step.Label, err)
			l.Failed = append(l.Failed, step.Label)
		}
	}
	return ran
}

// CreateLoading adds the loading singleton with the given steps.
func CreateLoading(e *ecs.ECS, steps []components.LoadStep) *components.LoadingData {
	entry := e.World.Entry(e.World.Create(components.Loading))
	components.Loading.SetValue(entry, components.LoadingData{Steps: steps})
	return components.Loading.Get(entry)
}

// GetLoading returns the loading singleton, or nil if the scene has none.
func GetLoading(e *ecs.ECS) *components.LoadingData {
	entry, ok := components.Loading.First(e.World)
	if !ok {
		return nil
	}
	return components.Loading.Get(entry)
}

// DrawLoading renders the progress bar and the current step name
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	l := GetLoading(e)
	if l == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	barW := cfg.Loading.BarWidth
	barH := cfg.Loading.BarHeight
	x := float32((width - barW) / 2)
	y := float32((height - barH) / 2)

	vector.FillRect(screen, x, y, float32(barW), float32(barH), cfg.Loading.TrackColor, false)
	vector.FillRect(screen, x, y, float32(barW*l.Progress()), float32(barH), cfg.Loading.BarColor, false)
	vector.StrokeRect(screen, x, y, float32(barW), float32(barH), 2, cfg.Loading.TextColor, false)

	label := "LoadingDone"
	if !l.Done() {
		label = l.Current()
	}
	drawCentered(screen, i18n.GetString(label), styleOf(18, cfg.Loading.TextColor), width/2, float64(y)+float64(barH)+30)
}
