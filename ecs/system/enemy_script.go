package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

const timerEnemyAttack = "attack"

type enemyScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	failed     bool
}

// EnemySystem drives enemies with their tengo behaviour script. Scripts read
// the enemy and target positions and answer with a desired velocity and an
// attack flag; melee hits go through ApplyDamage on a per-enemy cooldown.
type EnemySystem struct {
	scriptCache map[ecs.Entity]*enemyScriptRuntime
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{scriptCache: make(map[ecs.Entity]*enemyScriptRuntime)}
}

// Reload drops compiled scripts so edited sources are picked up.
func (s *EnemySystem) Reload() {
	if s == nil {
		return
	}
	s.scriptCache = make(map[ecs.Entity]*enemyScriptRuntime)
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for e := range s.scriptCache {
		if !w.IsAlive(e) {
			delete(s.scriptCache, e)
		}
	}

	target, hasTarget := ecs.First(w, component.PlayerComponent.Kind())
	var targetPos mgl64.Vec3
	if hasTarget {
		if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
			targetPos = t.Position
		} else {
			hasTarget = false
		}
	}

	ecs.ForEach4(w, component.EnemyComponent.Kind(), component.ScriptComponent.Kind(), component.TransformComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, script *component.Script, transform *component.Transform, move *component.Movement) {
		rt, err := s.runtime(e, script.Path)
		if err != nil {
			common.Log().Warnw("enemy script unavailable", "entity", e, "script", script.Path, "error", err)
			return
		}
		if rt == nil {
			return
		}

		out, err := rt.step(map[string]any{
			"dt":           ecs.DeltaFor(w, e),
			"x":            transform.Position.X(),
			"y":            transform.Position.Y(),
			"target_x":     targetPos.X(),
			"target_y":     targetPos.Y(),
			"speed":        enemy.Speed,
			"attack_range": enemy.AttackRange,
			"has_target":   hasTarget,
		})
		if err != nil {
			common.Log().Warnw("enemy script error", "entity", e, "script", script.Path, "error", err)
			return
		}

		if enemy.Speed > 0 && (out.vx != 0 || out.vy != 0) {
			move.PendingInput = mgl64.Vec3{out.vx / enemy.Speed, out.vy / enemy.Speed, 0}
			transform.Yaw = mgl64.RadToDeg(math.Atan2(out.vy, out.vx))
		}

		if out.attack && hasTarget {
			s.attack(w, e, enemy, target)
		}
	})
}

func (s *EnemySystem) attack(w *ecs.World, e ecs.Entity, enemy *component.Enemy, target ecs.Entity) {
	key := ecs.TimerKey{Owner: e, Name: timerEnemyAttack}
	if w.Timers().Active(key) {
		return
	}
	w.Timers().Schedule(key, enemy.AttackCooldown, func(*ecs.World) {})
	ApplyDamage(w, target, enemy.AttackDamage)
}

func (s *EnemySystem) runtime(e ecs.Entity, path string) (*enemyScriptRuntime, error) {
	if rt, ok := s.scriptCache[e]; ok && rt.scriptPath == path {
		if rt.failed {
			return nil, nil
		}
		return rt, nil
	}

	rt, err := compileEnemyScript(path)
	if err != nil {
		s.scriptCache[e] = &enemyScriptRuntime{scriptPath: path, failed: true}
		return nil, err
	}
	s.scriptCache[e] = rt
	return rt, nil
}

func compileEnemyScript(path string) (*enemyScriptRuntime, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("enemy script: load %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	for _, name := range []string{"dt", "x", "y", "target_x", "target_y", "speed", "attack_range"} {
		_ = script.Add(name, 0.0)
	}
	_ = script.Add("has_target", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("enemy script: compile %s: %w", path, err)
	}
	return &enemyScriptRuntime{scriptPath: path, compiled: compiled}, nil
}

type enemyScriptOutput struct {
	vx, vy float64
	attack bool
}

func (rt *enemyScriptRuntime) step(inputs map[string]any) (enemyScriptOutput, error) {
	for name, v := range inputs {
		if err := rt.compiled.Set(name, v); err != nil {
			return enemyScriptOutput{}, err
		}
	}
	if err := rt.compiled.Run(); err != nil {
		return enemyScriptOutput{}, err
	}
	return enemyScriptOutput{
		vx:     rt.compiled.Get("vx").Float(),
		vy:     rt.compiled.Get("vy").Float(),
		attack: rt.compiled.Get("attack").Bool(),
	}, nil
}
