package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
)

// Config holds general game configuration
type Config struct {
	Title           string
	Width           int
	Height          int
	BackgroundColor color.RGBA
}

// TextStyle describes how a line of menu text is drawn
type TextStyle struct {
	Size  float64 // font size in points
	Color color.RGBA
	Bold  bool
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor  color.RGBA
	Title            string
	TitleStyle       TextStyle
	InactiveStyle    TextStyle
	ActiveStyle      TextStyle
	InstructionStyle TextStyle
	TitleY           float64 // fraction of screen height
	MenuStartGap     float64 // fraction of screen height between title and first entry
	MenuItemSpacing  float64 // fraction of screen height between entries
	InstructionInset float64 // pixels from the bottom edge
	HighlightFrames  float32 // frames for the active entry to grow to full size
	// Label keys, resolved through the i18n catalog
	EntryLabels []string
	Hints       HintLabels
}

// HintLabels holds the control hint keys shown for each kind of input device
type HintLabels struct {
	Keyboard    []string
	Xbox        []string
	PlayStation []string
	Pointer     []string
}

// All returns every hint key list, keyboard first.
func (h HintLabels) All() [][]string {
	return [][]string{h.Keyboard, h.Xbox, h.PlayStation, h.Pointer}
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleStyle      TextStyle
	ScoreStyle      TextStyle
	InactiveStyle   TextStyle
	ActiveStyle     TextStyle
	TitleY          float64
	ScoreY          float64
	MenuStartY      float64
	MenuItemSpacing float64
	EntryLabels     []string
}

// InfoConfig contains the how-to and credits screen configuration values
type InfoConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	BodyColor       color.RGBA
	TitleSize       float64
	BodySize        float64
}

// LoadingConfig contains loading screen configuration values
type LoadingConfig struct {
	BarWidth     float64
	BarHeight    float64
	BarColor     color.RGBA
	TrackColor   color.RGBA
	TextColor    color.RGBA
	HoldFrames   int // frames the full bar stays on screen before the menu appears
	StepsPerTick int
}

// GameplayConfig contains the placeholder gameplay scene values
type GameplayConfig struct {
	BackgroundColor color.RGBA
	PlayerColor     color.RGBA
	HUDColor        color.RGBA
	PlayerSize      float64
	PlayerSpeed     float64
	TicksPerSecond  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   // Skip menu and go directly to game
	Language string // Locale used for labels
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var GameOver GameOverConfig
var Info InfoConfig
var Loading LoadingConfig
var Gameplay GameplayConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Blue        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	brightGreen = color.RGBA{R: 39, G: 255, B: 0, A: 255}
	lightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	lightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	darkGrey    = color.RGBA{R: 43, G: 43, B: 43, A: 255}
)

func init() {
	C = &Config{
		Title:           "Arcade Shell",
		Width:           800,
		Height:          600,
		BackgroundColor: Black,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   Black,
		Title:             "ARCADE SHELL",
		TitleStyle:        TextStyle{Size: 70, Color: Yellow, Bold: true},
		InactiveStyle:     TextStyle{Size: 40, Color: Yellow},
		ActiveStyle:       TextStyle{Size: 50, Color: Blue, Bold: true},
		InstructionStyle:  TextStyle{Size: 20, Color: brightGreen},
		TitleY:            0.2,
		MenuStartGap:      0.2,
		MenuItemSpacing:   0.1,
		InstructionInset:  46,
		HighlightFrames:   8,
		EntryLabels:       []string{"MenuStart", "MenuHowTo", "MenuCredits"},
		Hints: HintLabels{
			Keyboard:    []string{"MenuInstructionSelect", "MenuInstructionConfirm"},
			Xbox:        []string{"MenuHintXbox"},
			PlayStation: []string{"MenuHintPlayStation"},
			Pointer:     []string{"MenuHintPointer"},
		},
	}

	// Game Over Config
	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleStyle:      TextStyle{Size: 60, Color: lightRed, Bold: true},
		ScoreStyle:      TextStyle{Size: 24, Color: white},
		InactiveStyle:   TextStyle{Size: 32, Color: white},
		ActiveStyle:     TextStyle{Size: 40, Color: lightBlue, Bold: true},
		TitleY:          0.25,
		ScoreY:          0.38,
		MenuStartY:      0.55,
		MenuItemSpacing: 0.1,
		EntryLabels:     []string{"GameOverRetry", "GameOverMenu"},
	}

	// Info Config
	Info = InfoConfig{
		BackgroundColor: Black,
		PanelColor:      color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      Yellow,
		BodyColor:       white,
		TitleSize:       36,
		BodySize:        18,
	}

	// Loading Config
	Loading = LoadingConfig{
		BarWidth:     400,
		BarHeight:    24,
		BarColor:     brightGreen,
		TrackColor:   darkGrey,
		TextColor:    white,
		HoldFrames:   20,
		StepsPerTick: 1,
	}

	// Gameplay Config
	Gameplay = GameplayConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 25, A: 255},
		PlayerColor:     Yellow,
		HUDColor:        white,
		PlayerSize:      24,
		PlayerSpeed:     4,
		TicksPerSecond:  60,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Language: "en",
	}
}
