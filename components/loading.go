package components

import "github.com/yohamta/donburi"

// LoadStep is one named unit of work run by the loading screen.
type LoadStep struct {
	Label string // i18n key shown while the step runs
	Run   func() error
}

// LoadingData tracks progress through the load steps
type LoadingData struct {
	Steps     []LoadStep
	Next      int // index of the next step to run
	Failed    []string
	HoldTimer int // frames left showing the full bar
}

// Progress returns the completed fraction in [0, 1].
func (l *LoadingData) Progress() float64 {
	if len(l.Steps) == 0 {
		return 1
	}
	return float64(l.Next) / float64(len(l.Steps))
}

// Done reports whether every step has run.
func (l *LoadingData) Done() bool {
	return l.Next >= len(l.Steps)
}

// Current returns the label of the step about to run, or the last one once done.
func (l *LoadingData) Current() string {
	if len(l.Steps) == 0 {
		return ""
	}
	if l.Done() {
		return l.Steps[len(l.Steps)-1].Label
	}
	return l.Steps[l.Next].Label
}

var Loading = donburi.NewComponentType[LoadingData]()
