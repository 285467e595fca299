package systems

import (
	"testing"

	"github.com/automoto/arcadeshell/components"
	"github.com/automoto/arcadeshell/i18n"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"
)

func TestControllerTypeFromName(t *testing.T) {
	cases := []struct {
		name string
		want components.InputMethod
	}{
		{"DualSense Wireless Controller", components.InputPlayStation},
		{"PS4 Controller", components.InputPlayStation},
		{"Sony PLAYSTATION(R)3 Controller", components.InputPlayStation},
		{"Wireless Controller DUALSHOCK", components.InputPlayStation},
		{"Xbox Wireless Controller", components.InputXbox},
		{"8BitDo Pro 2", components.InputXbox},
		{"", components.InputXbox},
	}
	for _, tc := range cases {
		if got := controllerTypeFromName(tc.name); got != tc.want {
			t.Errorf("controllerTypeFromName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMenuHintPerInputMethod(t *testing.T) {
	if err := i18n.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer i18n.SetLanguage(language.English)

	methods := []components.InputMethod{
		components.InputKeyboard, components.InputXbox,
		components.InputPlayStation, components.InputPointer,
	}
	seen := map[string]components.InputMethod{}
	for _, method := range methods {
		keys := menuHint(method)
		if len(keys) == 0 {
			t.Fatalf("method %v has no hint", method)
		}
		if prev, dup := seen[keys[0]]; dup {
			t.Errorf("methods %v and %v share hint %q", prev, method, keys[0])
		}
		seen[keys[0]] = method

		for _, tag := range i18n.Languages() {
			i18n.SetLanguage(tag)
			for _, key := range keys {
				if !i18n.Has(key) {
					t.Errorf("%s: hint %q for method %v missing", tag, key, method)
				}
			}
		}
	}
}

func TestTouchJustPressedTracksFirstTouch(t *testing.T) {
	cases := []struct {
		name        string
		justPressed []ebiten.TouchID
		want        bool
	}{
		{"first touch down", []ebiten.TouchID{3}, true},
		{"first among several", []ebiten.TouchID{5, 3}, true},
		{"second finger only", []ebiten.TouchID{5}, false},
		{"nothing pressed", nil, false},
	}
	for _, tc := range cases {
		if got := touchJustPressed(3, tc.justPressed); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSetPointerClearsPresence(t *testing.T) {
	var p components.PointerState

	setPointer(&p, 120, 80, true, true)
	if !p.Present || !p.JustPressed {
		t.Fatalf("after press: %+v", p)
	}

	setPointer(&p, 125, 80, true, false)
	if p.JustPressed || !p.Moved() || p.PrevX != 120 {
		t.Fatalf("after move: %+v", p)
	}

	// Leaving the window drops presence and any click reported with it.
	setPointer(&p, 0, 0, false, true)
	if p.Present || p.JustPressed {
		t.Fatalf("after leave: %+v", p)
	}
}
