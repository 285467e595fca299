package systems

import (
	"fmt"
	"image"
	"log"

	"github.com/automoto/arcadeshell/components"
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/fonts"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/automoto/arcadeshell/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// CommandHandler receives the command a menu confirmed.
type CommandHandler func(e *ecs.ECS, cmd menu.Command)

// CreateMenu adds the menu singleton to the world and wires its controller to
// highlight through the stored component.
func CreateMenu(e *ecs.ECS, entries []menu.Entry, data *components.MenuData, opts ...menu.Option) (*components.MenuData, error) {
	if len(data.Labels) != len(entries) {
		return nil, fmt.Errorf("menu has %d labels for %d entries", len(data.Labels), len(entries))
	}

	entry := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(entry, *data)

	highlight := menu.HighlighterFunc(func(index int) {
		components.Menu.Get(entry).SetActive(index)
	})
	c, err := menu.New(entries, append(opts, menu.WithHighlighter(highlight))...)
	if err != nil {
		e.World.Remove(entry.Entity())
		return nil, err
	}

	m := components.Menu.Get(entry)
	m.Controller = c
	return m, nil
}

// GetMenu returns the menu singleton, or nil if the scene has none.
func GetMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return nil
	}
	return components.Menu.Get(entry)
}

// NewUpdateMenu creates the system that feeds input into the scene's menu
// controller. onCommand runs once when an entry is confirmed.
func NewUpdateMenu(onCommand CommandHandler) ecs.System {
	return func(e *ecs.ECS) {
		m := GetMenu(e)
		if m == nil || m.Controller == nil {
			return
		}
		input := GetOrCreateInput(e)

		layoutMenu(m)
		m.Tick()

		for _, ev := range MenuEvents(input, m) {
			before := m.Controller.Selected()
			cmd, ok, err := m.Controller.Dispatch(ev)
			if err != nil {
				log.Printf("Warning: menu %s event: %v", ev.Kind, err)
				continue
			}
			if ok {
				PlaySFX(e, cfg.SoundMenuSelect)
				onCommand(e, cmd)
				return
			}
			if m.Controller.Selected() != before {
				PlaySFX(e, cfg.SoundMenuNavigate)
			}
		}
	}
}

// MenuEvents translates this frame's input into menu events, in the order
// keyboard navigation, pointer, confirm key. Pointer hover only fires when the
// pointer enters an entry, so a resting cursor does not fight the keyboard.
func MenuEvents(input *components.InputData, m *components.MenuData) []menu.Event {
	var events []menu.Event

	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		events = append(events, menu.Next())
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		events = append(events, menu.Prev())
	}

	if input.Pointer.Present {
		hit := m.EntryAt(input.Pointer.X, input.Pointer.Y)
		if hit != m.Hovered {
			m.Hovered = hit
			if hit != components.NoEntry {
				events = append(events, menu.Select(hit))
			}
		}
		if input.Pointer.JustPressed && hit != components.NoEntry {
			events = append(events, menu.Click(hit))
		}
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		events = append(events, menu.Confirm())
	}
	return events
}

// layoutMenu refreshes the hit boxes from the current styles.
func layoutMenu(m *components.MenuData) {
	if len(m.Bounds) != len(m.Labels) {
		m.Bounds = make([]image.Rectangle, len(m.Labels))
	}
	for i, label := range m.Labels {
		style := m.StyleFor(i)
		cx, cy := m.Layout.Center(i)
		_, _, m.Bounds[i] = centeredText(fonts.For(style.Bold, style.Size), label, cx, cy)
	}
}

// DrawMenuEntries renders every entry: the active one in the active style,
// all others in the shared inactive style.
func DrawMenuEntries(screen *ebiten.Image, m *components.MenuData) {
	for i, label := range m.Labels {
		cx, cy := m.Layout.Center(i)
		m.Bounds[i] = drawCentered(screen, label, m.StyleFor(i), cx, cy)
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	m := GetMenu(e)
	if m == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, cfg.Menu.TitleStyle, width/2, height*cfg.Menu.TitleY)

	DrawMenuEntries(screen, m)

	drawMenuHint(e, screen, width, height)
}

// menuHint returns the control hint keys for the device the player used last.
func menuHint(method components.InputMethod) []string {
	switch method {
	case components.InputXbox:
		return cfg.Menu.Hints.Xbox
	case components.InputPlayStation:
		return cfg.Menu.Hints.PlayStation
	case components.InputPointer:
		return cfg.Menu.Hints.Pointer
	}
	return cfg.Menu.Hints.Keyboard
}

// drawMenuHint draws the control hint just above the bottom edge
func drawMenuHint(e *ecs.ECS, screen *ebiten.Image, width, height float64) {
	keys := menuHint(GetOrCreateInput(e).LastInputMethod)
	drawCenteredLines(screen, i18n.Strings(keys), cfg.Menu.InstructionStyle,
		width/2, height-cfg.Menu.InstructionInset)
}

// TitleMenuLayout places the title screen entries below the title.
func TitleMenuLayout(width, height int) components.MenuLayout {
	h := float64(height)
	return components.MenuLayout{
		CenterX: float64(width) / 2,
		StartY:  h*cfg.Menu.TitleY + h*cfg.Menu.MenuStartGap,
		Spacing: h * cfg.Menu.MenuItemSpacing,
	}
}
