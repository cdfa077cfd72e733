package system

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/myboss/common"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/prefabs"
)

const (
	ActionJump     = "Jump"
	ActionFire     = "Fire"
	ActionInteract = "Interact"
	ActionSlowTime = "Slow Time"
	ActionDash     = "Dash"
	ActionResetVR  = "ResetVR"

	AxisMoveForward = "MoveForward"
	AxisMoveRight   = "MoveRight"
	AxisTurnRate    = "TurnRate"
	AxisLookUpRate  = "LookUpRate"
)

type binding struct {
	key      ebiten.Key
	mouse    ebiten.MouseButton
	isMouse  bool
	scale    float64
	resolved bool
}

// InputSystem samples keyboard, mouse, gamepad and touch devices through the
// bindings in input.yaml and writes the result into every Input component.
type InputSystem struct {
	actions map[string][]binding
	axes    map[string][]binding

	mouseSensitivity float64
	stickDeadzone    float64

	lastCursor mgl64.Vec2
	hasCursor  bool
}

func NewInputSystem(spec prefabs.InputSpec) *InputSystem {
	s := &InputSystem{
		actions:          make(map[string][]binding),
		axes:             make(map[string][]binding),
		mouseSensitivity: spec.MouseSensitivity,
		stickDeadzone:    spec.StickDeadzone,
	}
	if s.mouseSensitivity <= 0 {
		s.mouseSensitivity = 0.1
	}
	if s.stickDeadzone <= 0 {
		s.stickDeadzone = 0.2
	}

	for action, keys := range spec.Actions {
		for _, name := range keys {
			b := resolveBinding(name, 1)
			if !b.resolved {
				common.Log().Warnw("unknown input binding", "action", action, "key", name)
				continue
			}
			s.actions[action] = append(s.actions[action], b)
		}
	}
	for axis, entries := range spec.Axes {
		for _, entry := range entries {
			b := resolveBinding(entry.Key, entry.Scale)
			if !b.resolved {
				common.Log().Warnw("unknown input binding", "axis", axis, "key", entry.Key)
				continue
			}
			s.axes[axis] = append(s.axes[axis], b)
		}
	}
	return s
}

var keysByName = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	return names
}()

func resolveBinding(name string, scale float64) binding {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch lower {
	case "mouse0", "mouseleft":
		return binding{mouse: ebiten.MouseButtonLeft, isMouse: true, scale: scale, resolved: true}
	case "mouse1", "mouseright":
		return binding{mouse: ebiten.MouseButtonRight, isMouse: true, scale: scale, resolved: true}
	case "mouse2", "mousemiddle":
		return binding{mouse: ebiten.MouseButtonMiddle, isMouse: true, scale: scale, resolved: true}
	}
	lower = strings.TrimPrefix(lower, "key")
	if k, ok := keysByName[lower]; ok {
		return binding{key: k, scale: scale, resolved: true}
	}
	return binding{}
}

func (b binding) pressed() bool {
	if b.isMouse {
		return ebiten.IsMouseButtonPressed(b.mouse)
	}
	return ebiten.IsKeyPressed(b.key)
}

func (b binding) justPressed() bool {
	if b.isMouse {
		return inpututil.IsMouseButtonJustPressed(b.mouse)
	}
	return inpututil.IsKeyJustPressed(b.key)
}

func (b binding) justReleased() bool {
	if b.isMouse {
		return inpututil.IsMouseButtonJustReleased(b.mouse)
	}
	return inpututil.IsKeyJustReleased(b.key)
}

func (s *InputSystem) actionJustPressed(action string) bool {
	for _, b := range s.actions[action] {
		if b.justPressed() {
			return true
		}
	}
	return false
}

func (s *InputSystem) actionJustReleased(action string) bool {
	for _, b := range s.actions[action] {
		if b.justReleased() {
			return true
		}
	}
	return false
}

func (s *InputSystem) axis(name string) float64 {
	v := 0.0
	for _, b := range s.axes[name] {
		if b.pressed() {
			v += b.scale
		}
	}
	return common.Clamp(v, -1, 1)
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var in component.Input
	in.MoveForward = s.axis(AxisMoveForward)
	in.MoveRight = s.axis(AxisMoveRight)
	in.TurnRate = s.axis(AxisTurnRate)
	in.LookUpRate = s.axis(AxisLookUpRate)

	in.JumpPressed = s.actionJustPressed(ActionJump)
	in.JumpReleased = s.actionJustReleased(ActionJump)
	in.FirePressed = s.actionJustPressed(ActionFire)
	in.InteractPressed = s.actionJustPressed(ActionInteract)
	in.SlowTimePressed = s.actionJustPressed(ActionSlowTime)
	in.DashPressed = s.actionJustPressed(ActionDash)
	in.ResetVRPressed = s.actionJustPressed(ActionResetVR)

	cx, cy := ebiten.CursorPosition()
	cursor := mgl64.Vec2{float64(cx), float64(cy)}
	if s.hasCursor {
		delta := cursor.Sub(s.lastCursor)
		in.Turn = delta.X() * s.mouseSensitivity
		in.LookUp = -delta.Y() * s.mouseSensitivity
	}
	s.lastCursor = cursor
	s.hasCursor = true

	s.sampleGamepad(&in)
	in.Touches = sampleTouches()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}

func (s *InputSystem) sampleGamepad(in *component.Input) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	if math.Hypot(lx, ly) > s.stickDeadzone {
		in.MoveRight = lx
		in.MoveForward = -ly
	}
	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > s.stickDeadzone {
		in.TurnRate = rx
		in.LookUpRate = -ry
	}

	just := func(b ebiten.StandardGamepadButton) bool {
		return inpututil.IsStandardGamepadButtonJustPressed(id, b)
	}
	in.JumpPressed = in.JumpPressed || just(ebiten.StandardGamepadButtonRightBottom)
	in.JumpReleased = in.JumpReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom)
	in.FirePressed = in.FirePressed || just(ebiten.StandardGamepadButtonFrontBottomRight)
	in.InteractPressed = in.InteractPressed || just(ebiten.StandardGamepadButtonRightLeft)
	in.SlowTimePressed = in.SlowTimePressed || just(ebiten.StandardGamepadButtonFrontBottomLeft)
	in.DashPressed = in.DashPressed || just(ebiten.StandardGamepadButtonRightRight)
	in.ResetVRPressed = in.ResetVRPressed || just(ebiten.StandardGamepadButtonCenterRight)
}

func sampleTouches() []component.TouchEvent {
	var events []component.TouchEvent
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, component.TouchEvent{Phase: component.TouchBegin, Finger: int(id), Location: mgl64.Vec2{float64(x), float64(y)}})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x == px && y == py {
			continue
		}
		events = append(events, component.TouchEvent{Phase: component.TouchMove, Finger: int(id), Location: mgl64.Vec2{float64(x), float64(y)}})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, component.TouchEvent{Phase: component.TouchEnd, Finger: int(id), Location: mgl64.Vec2{float64(x), float64(y)}})
	}
	return events
}
