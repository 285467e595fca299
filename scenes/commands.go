package scenes

import (
	"log"

	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/menu"
	"github.com/automoto/arcadeshell/systems"
	"github.com/yohamta/donburi/ecs"
)

// Quitter is implemented by the game loop. Quit stops it after the current frame.
type Quitter interface {
	Quit()
}

// sceneFor returns the scene a confirmed command opens, or nil for commands
// that do not open one.
func sceneFor(sc SceneChanger, cmd menu.Command) interface{} {
	switch cmd {
	case menu.CommandStartGame, menu.CommandRetry:
		return NewGameScene(sc)
	case menu.CommandHowTo:
		return NewInfoScene(sc, InfoHowTo)
	case menu.CommandCredits:
		return NewInfoScene(sc, InfoCredits)
	case menu.CommandMainMenu:
		return NewMenuScene(sc)
	}
	return nil
}

// runCommand performs the transition for cmd.
func runCommand(sc SceneChanger, cmd menu.Command) {
	if cmd == menu.CommandQuit {
		if q, ok := sc.(Quitter); ok {
			q.Quit()
			return
		}
		log.Printf("Warning: %s requested but the game cannot quit", cmd)
		return
	}

	next := sceneFor(sc, cmd)
	if next == nil {
		log.Printf("Warning: no scene for command %s", cmd)
		return
	}
	sc.ChangeScene(next)
}

// menuEntries zips localized labels with their commands.
func menuEntries(labels []string, commands []menu.Command) []menu.Entry {
	entries := make([]menu.Entry, 0, len(commands))
	for i, cmd := range commands {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		entries = append(entries, menu.Entry{Label: label, Command: cmd})
	}
	return entries
}

// newBackSystem runs onBack when the back action is pressed.
func newBackSystem(onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		input := systems.GetOrCreateInput(e)
		if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
			onBack()
		}
	}
}
