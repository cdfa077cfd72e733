package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

func TestBeginTouchFiring(t *testing.T) {
	tests := []struct {
		name  string
		prev  component.Touch
		ev    component.TouchEvent
		want  bool
		moved bool
	}{
		{"same_finger_unmoved", component.Touch{Finger: 0}, component.TouchEvent{Finger: 0}, true, false},
		{"same_finger_after_move", component.Touch{Finger: 0, Moved: true}, component.TouchEvent{Finger: 0}, false, false},
		{"different_finger", component.Touch{Finger: 1}, component.TouchEvent{Finger: 0}, false, false},
		{"already_pressed", component.Touch{Finger: 0, Pressed: true}, component.TouchEvent{Finger: 0}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			touch := tc.prev
			if got := BeginTouch(&touch, tc.ev); got != tc.want {
				t.Fatalf("BeginTouch = %v, want %v", got, tc.want)
			}
			if !touch.Pressed {
				t.Fatalf("touch should be pressed")
			}
			if touch.Moved != tc.moved {
				t.Fatalf("moved = %v, want %v", touch.Moved, tc.moved)
			}
		})
	}
}

func TestTouchSequenceThroughSystem(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewTouchSystem())
	player := newTestPlayer(t, w)
	input := mustGet(t, w, player, component.InputComponent.Kind())
	touch := mustGet(t, w, player, component.TouchComponent.Kind())

	frame := func(events ...component.TouchEvent) bool {
		input.FirePressed = false
		input.Touches = events
		w.Update(ecs.Frame{Real: tick, Scale: 1})
		return input.FirePressed
	}

	if !frame(component.TouchEvent{Phase: component.TouchBegin, Finger: 0, Location: mgl64.Vec2{10, 10}}) {
		t.Fatalf("first tap should fire")
	}
	frame(component.TouchEvent{Phase: component.TouchEnd, Finger: 0})
	if touch.Pressed {
		t.Fatalf("touch should be released")
	}

	frame(component.TouchEvent{Phase: component.TouchBegin, Finger: 0})
	frame(component.TouchEvent{Phase: component.TouchMove, Finger: 0, Location: mgl64.Vec2{40, 10}})
	if !touch.Moved || touch.Location != (mgl64.Vec2{40, 10}) {
		t.Fatalf("move should be tracked, got %+v", touch)
	}
	frame(component.TouchEvent{Phase: component.TouchEnd, Finger: 0})

	if frame(component.TouchEvent{Phase: component.TouchBegin, Finger: 0}) {
		t.Fatalf("a tap after a drag should not fire")
	}
}
