package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/calafrios/common"
	"github.com/milk9111/calafrios/ecs"
	"github.com/milk9111/calafrios/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const (
	pixelsPerMeter = 48.0

	coneLength = 7.0
	coneSpread = 0.45
	coneRays   = 16

	vignetteWidth  = common.BaseWidth / 4
	vignetteHeight = common.BaseHeight / 4
)

var (
	floorColor    = color.RGBA{R: 0x10, G: 0x0e, B: 0x0c, A: 0xff}
	wallColor     = color.RGBA{R: 0x5a, G: 0x52, B: 0x48, A: 0xff}
	propColor     = color.RGBA{R: 0x8c, G: 0x6f, B: 0x3a, A: 0xff}
	flareColor    = color.RGBA{R: 0xd8, G: 0x3a, B: 0x2a, A: 0xff}
	playerColor   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xd0, A: 0xff}
	staminaColor  = color.RGBA{R: 0xb8, G: 0xc8, B: 0x60, A: 0xff}
	staminaLow    = color.RGBA{R: 0xc8, G: 0x40, B: 0x30, A: 0xff}
	hudBackground = color.RGBA{A: 0x90}
)

// Renderer draws a top-down view of the level centered on the player, with
// the flashlight cone, the stamina vignette and the fade overlay on top.
type Renderer struct {
	face     ebtext.Face
	vignette *ebiten.Image
	white    *ebiten.Image
}

func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Renderer{
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
		vignette: buildVignette(vignetteWidth, vignetteHeight),
		white:    white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// buildVignette renders a black radial mask, transparent at the center and
// opaque at the corners.
func buildVignette(w, h int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			a := common.Clamp((d-0.35)/0.65, 0, 1)
			a = a * a * (3 - 2*a)
			img.SetRGBA(x, y, color.RGBA{A: uint8(a * 255)})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func (r *Renderer) DrawTitle(screen *ebiten.Image) {
	screen.Fill(color.Black)
	r.drawCentered(screen, "CALAFRIOS", common.BaseHeight/2-20, playerColor)
	r.drawCentered(screen, "press enter to begin", common.BaseHeight/2+10, wallColor)
}

func (r *Renderer) DrawLevel(screen *ebiten.Image, w *ecs.World, player ecs.Entity) {
	screen.Fill(floorColor)

	camX, camZ, scale := viewOf(w, player)
	project := func(x, z float64) (float32, float32) {
		sx := (x-camX)*scale + common.BaseWidth/2
		sy := common.BaseHeight/2 - (z-camZ)*scale
		return float32(sx), float32(sy)
	}

	ecs.ForEach(w, component.WallComponent.Kind(), func(_ ecs.Entity, wall *component.Wall) {
		ax, ay := project(wall.AX, wall.AZ)
		bx, by := project(wall.BX, wall.BZ)
		width := float32(math.Max(wall.Thickness*scale, 2))
		vector.StrokeLine(screen, ax, ay, bx, by, width, wallColor, true)
	})

	ecs.ForEach2(w, component.PropComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, prop *component.Prop, t *component.Transform) {
		x, y := project(t.X, t.Z)
		clr := propColor
		if sd, ok := ecs.Get(w, e, component.SelfDestructComponent.Kind()); ok {
			clr = flareColor
			if sd.Count%2 == 1 {
				clr.A = 0x80
			}
		}
		vector.FillCircle(screen, x, y, float32(prop.Radius*scale), clr, true)
	})

	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	bob := 0.0
	if fb, ok := ecs.Get(w, player, component.FlashlightBobComponent.Kind()); ok {
		bob = fb.Offset
	}
	px, py := project(t.X, t.Z)
	r.drawCone(screen, px, py, t.Yaw+bob, scale)

	radius := 0.4
	if body, ok := ecs.Get(w, player, component.CharacterBodyComponent.Kind()); ok {
		radius = body.Radius
	}
	vector.FillCircle(screen, px, py, float32(radius*scale), playerColor, true)

	if v, ok := ecs.Get(w, player, component.VignetteComponent.Kind()); ok {
		r.drawVignette(screen, v.Intensity)
	}
	if st, ok := ecs.Get(w, player, component.StaminaComponent.Kind()); ok {
		r.drawStaminaBar(screen, st)
	}
}

// viewOf returns the view center and pixels per meter, from the follow camera
// when the level has one.
func viewOf(w *ecs.World, player ecs.Entity) (float64, float64, float64) {
	if e, cam, ok := ecs.Single(w, component.CameraComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return t.X, t.Z, pixelsPerMeter * cam.Zoom
		}
	}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		return t.X, t.Z, pixelsPerMeter
	}
	return 0, 0, pixelsPerMeter
}

// drawCone fills a fan of triangles from the player along the view direction.
func (r *Renderer) drawCone(screen *ebiten.Image, px, py float32, yaw, scale float64) {
	vertices := make([]ebiten.Vertex, 0, coneRays+2)
	indices := make([]uint16, 0, coneRays*3)

	vertices = append(vertices, ebiten.Vertex{
		DstX: px, DstY: py, SrcX: 1, SrcY: 1,
		ColorR: 1, ColorG: 0.95, ColorB: 0.75, ColorA: 0.35,
	})
	for i := 0; i <= coneRays; i++ {
		a := yaw - coneSpread + 2*coneSpread*float64(i)/coneRays
		// Forward is (sin yaw, cos yaw) on X/Z; screen Y grows downward.
		dx := math.Sin(a) * coneLength * scale
		dy := -math.Cos(a) * coneLength * scale
		vertices = append(vertices, ebiten.Vertex{
			DstX: px + float32(dx), DstY: py + float32(dy), SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 0.95, ColorB: 0.75, ColorA: 0,
		})
		if i > 0 {
			indices = append(indices, 0, uint16(i), uint16(i+1))
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = ebiten.BlendLighter
	screen.DrawTriangles(vertices, indices, r.white, op)
}

func (r *Renderer) drawVignette(screen *ebiten.Image, intensity float64) {
	a := common.Clamp(intensity, 0, 1)
	if a <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(common.BaseWidth)/vignetteWidth, float64(common.BaseHeight)/vignetteHeight)
	op.ColorScale.ScaleAlpha(float32(a))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.vignette, op)
}

func (r *Renderer) drawStaminaBar(screen *ebiten.Image, st *component.Stamina) {
	const (
		x, y = 20, common.BaseHeight - 36
		w, h = 200, 10
	)
	fill := 0.0
	if st.Max > 0 {
		fill = common.Clamp(st.Value/st.Max, 0, 1)
	}
	clr := staminaColor
	if st.Exhausted() {
		clr = staminaLow
	}
	vector.FillRect(screen, x-2, y-2, w+4, h+4, hudBackground, false)
	vector.FillRect(screen, x, y, float32(w*fill), h, clr, false)
}

// DrawFade covers the screen with the active scene transition.
func (r *Renderer) DrawFade(screen *ebiten.Image, w *ecs.World) {
	ecs.ForEach(w, component.SceneTransitionComponent.Kind(), func(_ ecs.Entity, st *component.SceneTransition) {
		a := common.Clamp(st.Alpha, 0, 1)
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, color.RGBA{A: uint8(a * 255)}, false)
	})
}

func (r *Renderer) DrawDebug(screen *ebiten.Image, w *ecs.World, player ecs.Entity) {
	lines := fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if mv, ok := ecs.Get(w, player, component.MovementComponent.Kind()); ok {
		lines += fmt.Sprintf("\nstate %s", mv.State)
	}
	if loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind()); ok {
		lines += fmt.Sprintf("\nspeed %.2f (x%.2f)", loco.Speed, loco.SpeedMultiplier())
	}
	if st, ok := ecs.Get(w, player, component.StaminaComponent.Kind()); ok {
		lines += fmt.Sprintf("\nstamina %.1f/%.1f tired %.1f", st.Value, st.Max, st.Tired)
	}
	if _, l, ok := ecs.Single(w, component.AudioListenerComponent.Kind()); ok {
		lines += fmt.Sprintf("\nlistener vol %.2f paused %t", l.Volume, l.Paused)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(playerColor)
	ebtext.Draw(screen, lines, r.face, op)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(common.BaseWidth/2, y)
	op.PrimaryAlign = ebtext.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, r.face, op)
}
