package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const defaultMapZoom = 0.25

var (
	colorFloor    = color.RGBA{0x1c, 0x22, 0x2b, 0xff}
	colorWall     = color.RGBA{0x8a, 0x93, 0xa3, 0xff}
	colorPlayer   = color.RGBA{0x4f, 0xc3, 0xf7, 0xff}
	colorEnemy    = color.RGBA{0xef, 0x53, 0x50, 0xff}
	colorProp     = color.RGBA{0xff, 0xca, 0x28, 0xff}
	colorHeld     = color.RGBA{0xff, 0xf1, 0x76, 0xff}
	colorFlash    = color.RGBA{0xff, 0xff, 0xe0, 0xff}
	colorImpact   = color.RGBA{0xff, 0x70, 0x43, 0xff}
	colorMiss     = color.RGBA{0x78, 0x90, 0x9c, 0xff}
	colorViewRay  = color.RGBA{0x4f, 0xc3, 0xf7, 0x60}
	colorManaBar  = color.RGBA{0x7e, 0x57, 0xc2, 0xff}
	colorBarFrame = color.RGBA{0xff, 0xff, 0xff, 0xa0}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// mapView projects the XY plane onto the screen around the viewer: the
// viewer's facing points up.
type mapView struct {
	center  mgl64.Vec3
	yaw     float64
	zoom    float64
	originX float64
	originY float64
}

func (v mapView) toScreen(p mgl64.Vec3) (float32, float32) {
	rel := p.Sub(v.center)
	forward := common.Forward(v.yaw, 0)
	right := common.Right(v.yaw)
	x := v.originX + rel.Dot(right)*v.zoom
	y := v.originY - rel.Dot(forward)*v.zoom
	return float32(x), float32(y)
}

// RenderSystem draws the arena top-down around the player plus the HUD.
type RenderSystem struct {
	Zoom float64

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewRenderSystem() *RenderSystem {
	fill := ebiten.NewImage(1, 1)
	fill.Fill(color.White)
	return &RenderSystem{Zoom: defaultMapZoom, fillImg: fill}
}

func (r *RenderSystem) view(w *ecs.World, screen *ebiten.Image) mapView {
	b := screen.Bounds()
	v := mapView{zoom: r.Zoom, originX: float64(b.Dx()) / 2, originY: float64(b.Dy()) * 0.6}
	if v.zoom <= 0 {
		v.zoom = defaultMapZoom
	}
	if player, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			v.center = t.Position
			v.yaw = t.Yaw
		}
	}
	return v
}

// Draw renders the world layer. It is drawn into the offscreen image the
// post-process shader reads.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colorFloor)
	v := r.view(w, screen)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if body.Static {
			r.drawWall(screen, v, t, body)
			return
		}
		clr := colorProp
		switch {
		case hasTag(w, e, component.TagPlayer):
			clr = colorPlayer
		case hasTag(w, e, component.TagEnemy):
			clr = colorEnemy
		case !body.CollisionEnabled:
			clr = colorHeld
		}
		x, y := v.toScreen(t.Position)
		// taller-than-floor bodies grow slightly so height reads on the map
		scale := 1 + math.Max(0, t.Position.Z()-body.HalfHeight)/800
		radius := float32(body.Radius * v.zoom * scale)
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
		fx, fy := v.toScreen(t.Position.Add(common.Forward(t.Yaw, 0).Mul(body.Radius * 1.4)))
		vector.StrokeLine(screen, x, y, fx, fy, 2, clr, true)
	})

	if player, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if origin, forward, ok := viewPoint(w, player); ok {
			x0, y0 := v.toScreen(origin)
			x1, y1 := v.toScreen(origin.Add(forward.Mul(1200)))
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorViewRay, true)
		}
	}

	ecs.ForEach2(w, component.ImpactMarkerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.ImpactMarker, t *component.Transform) {
		x, y := v.toScreen(t.Position)
		clr := colorMiss
		if m.Hit {
			clr = colorImpact
		}
		vector.StrokeCircle(screen, x, y, 5, 2, clr, true)
	})

	ecs.ForEach2(w, component.MuzzleFlashComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, f *component.MuzzleFlash, t *component.Transform) {
		x, y := v.toScreen(t.Position)
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(3, f.Radius*v.zoom*2)), colorFlash, true)
	})
}

func (r *RenderSystem) drawWall(screen *ebiten.Image, v mapView, t *component.Transform, body *component.PhysicsBody) {
	corners := [4]mgl64.Vec3{
		t.Position,
		t.Position.Add(mgl64.Vec3{body.Length, 0, 0}),
		t.Position.Add(mgl64.Vec3{body.Length, body.Width, 0}),
		t.Position.Add(mgl64.Vec3{0, body.Width, 0}),
	}
	path := vector.Path{}
	for i, c := range corners {
		x, y := v.toScreen(c)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(colorWall.R) / 255
		r.fillVs[i].ColorG = float32(colorWall.G) / 255
		r.fillVs[i].ColorB = float32(colorWall.B) / 255
		r.fillVs[i].ColorA = float32(colorWall.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawHUD draws the slow-time meters, health and debug overlay messages on
// top of the post-processed frame.
func (r *RenderSystem) DrawHUD(w *ecs.World, screen *ebiten.Image, scale float64) {
	if r == nil || w == nil || screen == nil {
		return
	}

	y := 12.0
	if player, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if st, ok := ecs.Get(w, player, component.SlowTimeComponent.Kind()); ok {
			drawBar(screen, 12, 12, 220, 12, st.Mana/math.Max(st.DefaultMana, 1e-9), colorManaBar)
			drawHUDText(screen, fmt.Sprintf("mana %.2f  blend %.2f  %s  x%.2f  world %.2f", st.Mana, st.Percent, st.State, st.Multiplier, scale), 240, 10, color.White)
		}
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			drawHUDText(screen, fmt.Sprintf("health %d/%d", h.Current, h.Default), 12, 30, color.White)
		}
		if d, ok := ecs.Get(w, player, component.DashComponent.Kind()); ok && !d.Available {
			drawHUDText(screen, "dash cooling down", 12, 46, color.White)
		}
		y = 66
	}

	ecs.ForEach(w, component.DebugOverlayComponent.Kind(), func(_ ecs.Entity, overlay *component.DebugOverlay) {
		for _, msg := range overlay.Messages {
			drawHUDText(screen, msg.Text, 12, y, msg.Color)
			y += 16
		}
	})
}

func drawBar(screen *ebiten.Image, x, y, w, h, fill float64, clr color.Color) {
	fill = common.Clamp(fill, 0, 1)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*fill), float32(h), clr, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorBarFrame, true)
}

func drawHUDText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.LineSpacing = 16
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}
