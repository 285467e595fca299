package components

import (
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputPointer
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerState is the mouse or primary touch position in logical screen pixels.
type PointerState struct {
	X, Y        int
	PrevX       int
	PrevY       int
	Present     bool // cursor inside the window or a touch is active, this frame
	JustPressed bool // primary button or touch went down this frame
}

// Moved reports whether the pointer changed position since the previous frame.
func (p PointerState) Moved() bool {
	return p.X != p.PrevX || p.Y != p.PrevY
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer         PointerState
	LastInputMethod InputMethod // Most recently used input method
}

// Action returns the full ActionState for an action ID.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
