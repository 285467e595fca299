package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/arcadeshell/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 560

// InfoUI is a static text screen (how to play, credits) with a Back button.
type InfoUI struct {
	UI *ebitenui.UI

	OnGoBack func()

	title     string
	body      string
	backLabel string

	titleFace  text.Face
	bodyFace   text.Face
	buttonFace text.Face
}

func NewInfoUI(title, body, backLabel string, onGoBack func()) *InfoUI {
	ui := &InfoUI{
		OnGoBack:  onGoBack,
		title:     title,
		body:      body,
		backLabel: backLabel,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *InfoUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: config.Info.TitleSize}
	ui.bodyFace = &text.GoTextFace{Source: fontSource, Size: config.Info.BodySize}
	ui.buttonFace = &text.GoTextFace{Source: fontSource, Size: config.Info.BodySize}
}

func (ui *InfoUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Info.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(config.Info.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(panelWidth, 0),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(ui.title, &ui.titleFace, &widget.LabelColor{
			Idle: config.Info.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	bodyText := widget.NewText(
		widget.TextOpts.Text(ui.body, &ui.bodyFace, config.Info.BodyColor),
		widget.TextOpts.MaxWidth(panelWidth-48),
	)
	contentContainer.AddChild(bodyText)

	contentContainer.AddChild(ui.buildBackButton())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *InfoUI) buildBackButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{100, 100, 150, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{60, 60, 90, 255}),
		}),
		widget.ButtonOpts.Text(ui.backLabel, &ui.buttonFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.GoBack()
		}),
	)
}

// GoBack runs the back handler, if any.
func (ui *InfoUI) GoBack() {
	if ui.OnGoBack != nil {
		ui.OnGoBack()
	}
}
