package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const volumeStep = 0.1

const helpText = `W A S D / arrows   walk
Shift              run
Mouse / right stick look
Esc                pause / back`

// PauseUI holds one ebitenui tree per pause panel. Buttons never touch game
// state directly; they hand actions to onAction, which queues them for the
// pause system.
type PauseUI struct {
	panels   map[component.PausePanel]*ebitenui.UI
	current  component.PausePanel
	volume   float64
	volLabel *widget.Text
	onAction func(action component.PauseAction, value float64)
}

type pauseTheme struct {
	face      ebtext.Face
	panel     *imageui.NineSlice
	button    *widget.ButtonImage
	textColor *widget.ButtonTextColor
}

func NewPauseUI(onAction func(action component.PauseAction, value float64)) *PauseUI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x44, B: 0x3c, A: 0xff})
	pressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})

	th := &pauseTheme{
		face:      face,
		panel:     imageui.NewNineSliceColor(color.NRGBA{A: 200}),
		button:    &widget.ButtonImage{Idle: idle, Hover: hover, Pressed: pressed},
		textColor: &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}

	p := &PauseUI{
		panels:   make(map[component.PausePanel]*ebitenui.UI),
		volume:   1,
		onAction: onAction,
	}
	p.panels[component.PanelMain] = p.buildMain(th)
	p.panels[component.PanelOptions] = p.buildOptions(th)
	p.panels[component.PanelHelp] = p.buildHelp(th)
	return p
}

func (p *PauseUI) emit(action component.PauseAction, value float64) {
	if p.onAction != nil {
		p.onAction(action, value)
	}
}

// Update refreshes the shown panel. volume is the current listener volume.
func (p *PauseUI) Update(panel component.PausePanel, volume float64) {
	p.current = panel
	p.volume = volume
	p.volLabel.Label = fmt.Sprintf("Volume %3.0f%%", volume*100)
	if ui, ok := p.panels[panel]; ok {
		ui.Update()
	}
}

func (p *PauseUI) Draw(screen *ebiten.Image) {
	if ui, ok := p.panels[p.current]; ok {
		ui.Draw(screen)
	}
}

func (p *PauseUI) buildMain(th *pauseTheme) *ebitenui.UI {
	panel := newPanel(th, "Paused")
	panel.AddChild(newButton(th, "Resume", func() { p.emit(component.PauseResume, 0) }))
	panel.AddChild(newButton(th, "Options", func() { p.emit(component.PauseOpenOptions, 0) }))
	panel.AddChild(newButton(th, "Help", func() { p.emit(component.PauseOpenHelp, 0) }))
	panel.AddChild(newButton(th, "Main Menu", func() { p.emit(component.PauseMainMenu, 0) }))
	panel.AddChild(newButton(th, "Quit", func() { p.emit(component.PauseQuit, 0) }))
	return newRoot(panel)
}

func (p *PauseUI) buildOptions(th *pauseTheme) *ebitenui.UI {
	panel := newPanel(th, "Options")

	p.volLabel = widget.NewText(
		widget.TextOpts.Text("Volume 100%", &th.face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(p.volLabel)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	row.AddChild(newButton(th, " - ", func() {
		p.emit(component.PauseSetVolume, common.Clamp(p.volume-volumeStep, 0, 1))
	}))
	row.AddChild(newButton(th, " + ", func() {
		p.emit(component.PauseSetVolume, common.Clamp(p.volume+volumeStep, 0, 1))
	}))
	panel.AddChild(row)

	panel.AddChild(newButton(th, "Back", func() { p.emit(component.PauseToggle, 0) }))
	return newRoot(panel)
}

func (p *PauseUI) buildHelp(th *pauseTheme) *ebitenui.UI {
	panel := newPanel(th, "Help")
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(helpText, &th.face, color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	panel.AddChild(newButton(th, "Back", func() { p.emit(component.PauseToggle, 0) }))
	return newRoot(panel)
}

// newPanel is a centered vertical container about half the screen in size.
func newPanel(th *pauseTheme, title string) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(th.panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &th.face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	return panel
}

func newButton(th *pauseTheme, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(th.button),
		widget.ButtonOpts.Text(label, &th.face, th.textColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newRoot(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
