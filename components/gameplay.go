package components

import "github.com/yohamta/donburi"

// RunData stores the placeholder gameplay state
type RunData struct {
	X, Y  float64 // player top-left
	Ticks int     // frames survived
	Ended bool
}

var Run = donburi.NewComponentType[RunData]()
