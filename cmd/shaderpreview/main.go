package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/myboss/assets"
	"github.com/milk9111/myboss/common"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 800
	screenHeight = 600
	tile         = 40
	rampSeconds  = 0.5
)

type Game struct {
	scene    *ebiten.Image
	shader   *ebiten.Shader
	shaderID string
	param    string

	blend  float64
	target float64
	face   text.Face
}

func NewGame(shaderName, param string) (*Game, error) {
	sh, err := assets.LoadShader(shaderName)
	if err != nil {
		return nil, err
	}
	return &Game{
		scene:    ebiten.NewImageFromImage(checkerboard(screenWidth, screenHeight)),
		shader:   sh,
		shaderID: shaderName,
		param:    param,
		blend:    1,
		target:   1,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// checkerboard builds a colorful test card so the grade is easy to judge.
func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	palette := []color.RGBA{
		{0xef, 0x53, 0x50, 0xff},
		{0x66, 0xbb, 0x6a, 0xff},
		{0x42, 0xa5, 0xf5, 0xff},
		{0xff, 0xca, 0x28, 0xff},
		{0xf5, 0xf5, 0xf5, 0xff},
		{0x26, 0x32, 0x38, 0xff},
	}
	for y := 0; y < h/tile+1; y++ {
		for x := 0; x < w/tile+1; x++ {
			r := image.Rect(x*tile, y*tile, x*tile+tile, y*tile+tile)
			c := palette[(x+y*3)%len(palette)]
			draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}
	return img
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.target == 1 {
			g.target = 0
		} else {
			g.target = 1
		}
	}
	step := 1 / (rampSeconds * float64(ebiten.TPS()))
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		g.blend -= step
		g.target = g.blend
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		g.blend += step
		g.target = g.blend
	case g.blend < g.target:
		g.blend = min(g.blend+step, g.target)
	case g.blend > g.target:
		g.blend = max(g.blend-step, g.target)
	}
	g.blend = common.Clamp(g.blend, 0, 1)
	g.target = common.Clamp(g.target, 0, 1)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{
			assets.UniformName(g.shaderID, g.param): float32(g.blend),
		},
	}
	op.Images[0] = g.scene
	screen.DrawRectShader(screenWidth, screenHeight, g.shader, op)

	msg := fmt.Sprintf("%s  %s = %.2f\nspace: ramp  left/right: scrub  esc: quit", g.shaderID, g.param, g.blend)
	top := &text.DrawOptions{}
	top.LineSpacing = 16
	top.GeoM.Translate(10, 10)
	text.Draw(screen, msg, g.face, top)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	shaderName := flag.String("shader", "slowtime.kage", "embedded shader to preview")
	param := flag.String("param", "Color Change Bool", "post-process parameter the blend drives")
	flag.Parse()

	log, err := common.SetupLogger("info", true)
	if err != nil {
		panic(err)
	}

	game, err := NewGame(*shaderName, *param)
	if err != nil {
		log.Fatalw("failed to load shader", "shader", *shaderName, "error", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Shader Preview")
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatalw("preview exited", "error", err)
	}
}
