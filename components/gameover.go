package components

import "github.com/yohamta/donburi"

// GameOverData stores the result shown on the game over screen
type GameOverData struct {
	SurvivedTicks int
}

// Seconds converts the survived ticks to whole seconds.
func (g GameOverData) Seconds(ticksPerSecond int) int {
	if ticksPerSecond <= 0 {
		return 0
	}
	return g.SurvivedTicks / ticksPerSecond
}

// GameOver is the component type for game over state
var GameOver = donburi.NewComponentType[GameOverData]()
