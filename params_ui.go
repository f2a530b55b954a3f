package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/prefabs"
)

// paramsPanel is the tunables overlay. Widgets write into g.params; the
// frame loop copies it once per frame.
type paramsPanel struct {
	ui     *ebitenui.UI
	status *widget.Label
}

type paramSlider struct {
	label string
	min   int
	max   int
	scale float32
	field func(p *component.Params) *float32
}

var paramSliders = []paramSlider{
	{label: "Velocity", min: 0, max: 100, scale: 0.1, field: func(p *component.Params) *float32 { return &p.Velocity }},
	{label: "Diffuse", min: 0, max: 100, scale: 0.01, field: func(p *component.Params) *float32 { return &p.Diffuse }},
	{label: "Specular", min: 0, max: 100, scale: 0.01, field: func(p *component.Params) *float32 { return &p.Specular }},
	{label: "Ambient", min: 0, max: 100, scale: 0.01, field: func(p *component.Params) *float32 { return &p.Ambient }},
	{label: "Light power", min: 0, max: 200, scale: 0.01, field: func(p *component.Params) *float32 { return &p.LightPower }},
}

// NewParamsUI builds a left-docked panel with one slider per tunable, one
// button per exercise and a motion mode toggle. Like the pause menu it uses
// colored nine-slices and the built-in basic font.
func NewParamsUI(g *Game, exercises *prefabs.ExercisesSpec) *paramsPanel {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})
	trackImg := &widget.SliderTrackImage{
		Idle:  imageui.NewNineSliceColor(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}),
		Hover: imageui.NewNineSliceColor(color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 255}),
	}
	handleImg := &widget.ButtonImage{Idle: btnImg, Hover: btnPressed, Pressed: btnPressed}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	labelColor := &widget.LabelColor{Idle: white, Disabled: color.Gray{Y: 140}}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)

	for _, ps := range paramSliders {
		ps := ps
		value := widget.NewLabel(widget.LabelOpts.Text("", &face, labelColor))
		setLabel := func() {
			value.Label = fmt.Sprintf("%s: %.2f", ps.label, *ps.field(&g.params))
		}
		setLabel()

		slider := widget.NewSlider(
			widget.SliderOpts.Direction(widget.DirectionHorizontal),
			widget.SliderOpts.MinMax(ps.min, ps.max),
			widget.SliderOpts.InitialCurrent(int(*ps.field(&g.params)/ps.scale+0.5)),
			widget.SliderOpts.Images(trackImg, handleImg),
			widget.SliderOpts.FixedHandleSize(8),
			widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(196, 14)),
			widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
				*ps.field(&g.params) = float32(args.Current) * ps.scale
				setLabel()
			}),
		)
		panel.AddChild(value)
		panel.AddChild(slider)
	}

	if exercises != nil {
		for _, ex := range exercises.Exercises {
			ex := ex
			panel.AddChild(widget.NewButton(
				widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
				widget.ButtonOpts.Text(fmt.Sprintf("%d  %s", ex.Number, ex.Label), &face, btnTextColor),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					g.params.Exercise = ex.Number
				}),
			))
		}
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text("Toggle motion mode", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.toggleMotion()
		}),
	))

	status := widget.NewLabel(widget.LabelOpts.Text("", &face, labelColor))
	panel.AddChild(status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &paramsPanel{ui: &ebitenui.UI{Container: root}, status: status}
}

// SetStatus replaces the status line under the buttons.
func (p *paramsPanel) SetStatus(s string) {
	if p == nil || p.status == nil {
		return
	}
	p.status.Label = s
}
