package systems

import (
	"image"
	"image/color"

	cfg "github.com/automoto/arcadeshell/config"
	"github.com/automoto/arcadeshell/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// centeredText returns the baseline origin that centers s on (cx, cy) and the
// screen rectangle the glyphs cover.
func centeredText(face font.Face, s string, cx, cy float64) (x, y int, box image.Rectangle) {
	b := text.BoundString(face, s)
	x = int(cx) - b.Dx()/2 - b.Min.X
	y = int(cy) - b.Dy()/2 - b.Min.Y
	return x, y, b.Add(image.Pt(x, y))
}

// drawCentered draws s centered on (cx, cy) and returns its bounds.
func drawCentered(screen *ebiten.Image, s string, style cfg.TextStyle, cx, cy float64) image.Rectangle {
	face := fonts.For(style.Bold, style.Size)
	x, y, box := centeredText(face, s, cx, cy)
	text.Draw(screen, s, face, x, y, style.Color)
	return box
}

// drawCenteredLines stacks lines around cy, one line height apart.
func drawCenteredLines(screen *ebiten.Image, lines []string, style cfg.TextStyle, cx, cy float64) {
	lineHeight := style.Size * 1.3
	top := cy - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		drawCentered(screen, line, style, cx, top+float64(i)*lineHeight)
	}
}

func styleOf(size float64, clr color.RGBA) cfg.TextStyle {
	return cfg.TextStyle{Size: size, Color: clr}
}
