package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/myboss/assets"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
	"github.com/milk9111/myboss/ecs/system"
	"github.com/milk9111/myboss/prefabs"
)

const defaultRespawnDelay = 2.0

type Game struct {
	world     *ecs.World
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	watcher   *prefabs.Watcher
	arenaFile string

	// timeScale is the global dilation reported by slow time during the last
	// update. It is consumed by the next one and falls back to 1.
	timeScale     float64
	lastScale     float64
	shaders       map[string]*ebiten.Shader
	offscreen     *ebiten.Image
	debug         bool
	paused        bool
	quitRequested bool
	pauseUI       *ebitenui.UI
}

func NewGame(arenaFile string, debug bool) (*Game, error) {
	spec, err := prefabs.LoadSpec[prefabs.ArenaSpec](arenaFile)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	inputSpec, err := prefabs.LoadSpec[prefabs.InputSpec]("input.yaml")
	if err != nil {
		return nil, fmt.Errorf("load input bindings: %w", err)
	}

	g := &Game{
		world:     ecs.NewWorld(),
		physics:   system.NewPhysicsSystem(),
		render:    system.NewRenderSystem(),
		arenaFile: arenaFile,
		timeScale: 1,
		lastScale: 1,
		shaders:   make(map[string]*ebiten.Shader),
		debug:     debug,
	}

	// prefabs/ is only present when running from a checkout; without it the
	// embedded prefabs are used and nothing is watched.
	if watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts"); err != nil {
		common.Log().Infow("prefab hot reload disabled", "error", err)
	} else {
		g.watcher = watcher
	}

	delay := spec.RespawnDelay
	if delay <= 0 {
		delay = defaultRespawnDelay
	}

	enemies := system.NewEnemySystem()
	var source system.ChangeSource
	if g.watcher != nil {
		source = g.watcher
	}

	g.world.AddSystem(system.NewHotReloadSystem(source, enemies))
	g.world.AddSystem(system.NewInputSystem(inputSpec))
	g.world.AddSystem(system.NewTouchSystem())
	g.world.AddSystem(system.NewCharacterSpawnSystem())
	g.world.AddSystem(system.NewLookSystem())
	g.world.AddSystem(system.NewLocomotionSystem())
	g.world.AddSystem(system.NewDashSystem())
	g.world.AddSystem(system.NewFireSystem(g.physics))
	g.world.AddSystem(system.NewInteractSystem(g.physics))
	g.world.AddSystem(system.NewSlowTimeSystem(func(scale float64) { g.timeScale = scale }))
	g.world.AddSystem(enemies)
	g.world.AddSystem(system.NewMovementSystem())
	g.world.AddSystem(g.physics)
	g.world.AddSystem(system.NewAttachmentSystem())
	g.world.AddSystem(system.NewTimerSystem())
	g.world.AddSystem(system.NewTTLSystem())
	g.world.AddSystem(system.NewDebugOverlaySystem())
	g.world.AddSystem(system.NewRespawnSystem(delay, g.rebuild))
	g.world.AddSystem(system.NewEventLogSystem())

	if _, err := entity.BuildArena(g.world, spec); err != nil {
		return nil, err
	}

	g.timeScale = system.WorldScale(g.world)
	g.pauseUI = NewPauseUI(g)
	common.Log().Infow("arena loaded", "arena", spec.Name, "entities", len(g.world.Entities()))
	return g, nil
}

func (g *Game) rebuild(w *ecs.World) error {
	entity.ClearWorld(w)
	g.physics.Reset()
	if _, err := entity.LoadArena(w, g.arenaFile); err != nil {
		return err
	}
	g.timeScale = system.WorldScale(w)
	common.Log().Infow("player respawned", "arena", g.arenaFile)
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	if g.paused {
		g.pauseUI.Update()
		if g.quitRequested {
			return ebiten.Termination
		}
		return nil
	}

	scale := g.timeScale
	g.timeScale = 1
	g.world.Update(ecs.Frame{Real: 1 / float64(common.TicksPerSecond), Scale: scale})
	g.lastScale = g.world.Frame().Scale
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.offscreen == nil || g.offscreen.Bounds() != b {
		g.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.render.Draw(g.world, g.offscreen)
	g.drawPostProcess(screen)

	if g.debug {
		g.render.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawPlayerStateDebug(g.world, screen)
	}
	g.render.DrawHUD(g.world, screen, g.lastScale)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// drawPostProcess runs the volume's shader over the world layer with its
// scalar parameters as uniforms. Without a volume or shader the world layer
// is copied as is.
func (g *Game) drawPostProcess(screen *ebiten.Image) {
	volume, ok := system.FindByTag(g.world, component.TagPostProcess)
	var pp *component.PostProcess
	if ok {
		pp, ok = ecs.Get(g.world, volume, component.PostProcessComponent.Kind())
	}
	var shader *ebiten.Shader
	if ok && pp.Shader != "" {
		shader = g.shader(pp.Shader)
	}
	if shader == nil {
		screen.DrawImage(g.offscreen, nil)
		return
	}

	uniforms := make(map[string]any, len(pp.Params))
	for name, v := range pp.Params {
		uniforms[assets.UniformName(pp.Shader, name)] = float32(v)
	}
	b := g.offscreen.Bounds()
	op := &ebiten.DrawRectShaderOptions{Uniforms: uniforms}
	op.Images[0] = g.offscreen
	screen.DrawRectShader(b.Dx(), b.Dy(), shader, op)
}

func (g *Game) shader(name string) *ebiten.Shader {
	if sh, ok := g.shaders[name]; ok {
		return sh
	}
	sh, err := assets.LoadShader(name)
	if err != nil {
		common.Log().Errorw("post-process shader unavailable", "shader", name, "error", err)
	}
	// failed loads are cached as nil so they are reported once
	g.shaders[name] = sh
	return sh
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
