package components

import (
	"image"

	"github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/menu"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// NoEntry marks a pointer that is not over any menu entry
const NoEntry = -1

// MenuLayout positions entries: centered on CenterX, the first entry's
// center at StartY and each following one Spacing pixels lower.
type MenuLayout struct {
	CenterX float64
	StartY  float64
	Spacing float64
}

// Center returns the screen position entry index is centered on.
func (l MenuLayout) Center(index int) (float64, float64) {
	return l.CenterX, l.StartY + float64(index)*l.Spacing
}

// MenuData is the presentation side of a menu screen. Its SetActive is wired
// as the controller's highlighter; the draw system reads ActiveIndex and Size.
type MenuData struct {
	Controller *menu.Controller
	Labels     []string

	Layout   MenuLayout
	Inactive config.TextStyle
	Active   config.TextStyle

	ActiveIndex int               // last index reported by the controller
	Highlights  int               // number of SetActive calls
	Size        float32           // current font size of the active entry
	Bounds      []image.Rectangle // screen-space hit boxes, refreshed when drawn
	Hovered     int               // entry under the pointer, NoEntry if none

	tween       *gween.Tween
	tweenFrames float32
}

// NewMenuData prepares presentation state for one entry per label.
func NewMenuData(labels []string, layout MenuLayout, inactive, active config.TextStyle, tweenFrames float32) *MenuData {
	return &MenuData{
		Labels:      labels,
		Layout:      layout,
		Inactive:    inactive,
		Active:      active,
		ActiveIndex: NoEntry,
		Size:        float32(active.Size),
		Bounds:      make([]image.Rectangle, len(labels)),
		Hovered:     NoEntry,
		tweenFrames: tweenFrames,
	}
}

// SetActive marks index as the single active entry and restarts the grow tween.
func (m *MenuData) SetActive(index int) {
	m.Highlights++
	if index == m.ActiveIndex && m.tween != nil {
		return
	}
	m.ActiveIndex = index
	if m.tweenFrames <= 0 {
		m.Size = float32(m.Active.Size)
		m.tween = nil
		return
	}
	m.tween = gween.New(float32(m.Inactive.Size), float32(m.Active.Size), m.tweenFrames, ease.OutBack)
	m.Size = float32(m.Inactive.Size)
}

// Tick advances the highlight tween by one frame.
func (m *MenuData) Tick() {
	if m.tween == nil {
		return
	}
	size, done := m.tween.Update(1)
	m.Size = size
	if done {
		m.Size = float32(m.Active.Size)
	}
}

// StyleFor returns the style entry index is drawn with.
func (m *MenuData) StyleFor(index int) config.TextStyle {
	if index == m.ActiveIndex {
		s := m.Active
		s.Size = float64(m.Size)
		return s
	}
	return m.Inactive
}

// EntryAt returns the entry whose bounds contain (x, y), or NoEntry.
func (m *MenuData) EntryAt(x, y int) int {
	p := image.Pt(x, y)
	for i, r := range m.Bounds {
		if !r.Empty() && p.In(r) {
			return i
		}
	}
	return NoEntry
}

// Menu is the component type for menu state
var Menu = donburi.NewComponentType[MenuData]()
