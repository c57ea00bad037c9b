package ui

import (
	"image/color"

	"github.com/automoto/monkebucko/components"
	cfg "github.com/automoto/monkebucko/config"
	"github.com/automoto/monkebucko/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PanelUI draws the interaction panel: a strip along the bottom of the
// screen holding the revealed text and a continue hint.
type PanelUI struct {
	UI *ebitenui.UI

	strip *widget.Container
	body  *widget.Label
	hint  *widget.Label

	bodyFace text.Face
	hintFace text.Face

	opacity float64
	shown   bool
}

// NewPanelUI builds the panel widgets. Fonts must be loaded.
func NewPanelUI() *PanelUI {
	p := &PanelUI{
		bodyFace: fonts.Regular.Face(),
		hintFace: fonts.Small.Face(),
		opacity:  -1,
	}
	p.buildUI()
	return p
}

func (p *PanelUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	height := int(float64(cfg.C.Height) * cfg.Panel.HeightFraction)
	p.strip = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(cfg.Panel.FontSize))),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	p.body = widget.NewLabel(
		widget.LabelOpts.Text("", &p.bodyFace, &widget.LabelColor{
			Idle: cfg.Panel.TextColor,
		}),
	)
	p.hint = widget.NewLabel(
		widget.LabelOpts.Text("", &p.hintFace, &widget.LabelColor{
			Idle: cfg.Panel.HintColor,
		}),
	)
	p.strip.AddChild(p.body)
	p.strip.AddChild(p.hint)
	root.AddChild(p.strip)

	p.UI = &ebitenui.UI{
		Container: root,
	}
}

// Sync copies the panel state into the widgets. A nil panel hides the UI.
func (p *PanelUI) Sync(panel *components.InteractionPanelData) {
	p.shown = panel != nil
	if panel == nil {
		return
	}

	p.body.Label = panel.Visible()
	p.hint.Label = ""
	if panel.Animator != nil && panel.Animator.Done() {
		p.hint.Label = "..."
	}

	if panel.Opacity != p.opacity {
		p.opacity = panel.Opacity
		alpha := uint8(clamp01(panel.Opacity) * 255)
		p.strip.SetBackgroundImage(image.NewNineSliceColor(color.NRGBA{A: alpha}))
	}
}

// Update lets ebitenui lay out the widgets.
func (p *PanelUI) Update() {
	if p.shown {
		p.UI.Update()
	}
}

// Draw renders the panel if one is open.
func (p *PanelUI) Draw(screen *ebiten.Image) {
	if p.shown {
		p.UI.Draw(screen)
	}
}

// BodyText is the text currently shown.
func (p *PanelUI) BodyText() string {
	if !p.shown {
		return ""
	}
	return p.body.Label
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
