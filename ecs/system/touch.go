package system

import (
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

// TouchSystem turns touch-screen edges into actions. A touch that begins with
// the same finger as the previous, unmoved touch fires the weapon.
type TouchSystem struct{}

func NewTouchSystem() *TouchSystem {
	return &TouchSystem{}
}

func (s *TouchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.TouchComponent.Kind(), func(e ecs.Entity, input *component.Input, touch *component.Touch) {
		for _, ev := range input.Touches {
			switch ev.Phase {
			case component.TouchBegin:
				if BeginTouch(touch, ev) {
					input.FirePressed = true
				}
			case component.TouchMove:
				if touch.Pressed && ev.Finger == touch.Finger {
					touch.Moved = true
					touch.Location = ev.Location
				}
			case component.TouchEnd:
				EndTouch(touch)
			}
		}
	})
}

// BeginTouch records a new touch and reports whether it should fire.
func BeginTouch(touch *component.Touch, ev component.TouchEvent) bool {
	if touch == nil || touch.Pressed {
		return false
	}
	fire := ev.Finger == touch.Finger && !touch.Moved
	touch.Pressed = true
	touch.Finger = ev.Finger
	touch.Location = ev.Location
	touch.Moved = false
	return fire
}

func EndTouch(touch *component.Touch) {
	if touch == nil || !touch.Pressed {
		return
	}
	touch.Pressed = false
}
