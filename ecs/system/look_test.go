package system

import (
	"math"
	"testing"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name      string
		input     component.Input
		custom    float64
		wantYaw   float64
		wantPitch float64
	}{
		{"mouse_delta", component.Input{Turn: 10, LookUp: 4}, 1, 10, 4},
		{"turn_rate_one_second", component.Input{TurnRate: 1}, 60, 45, 0},
		{"pitch_clamped", component.Input{LookUp: 500}, 1, 0, 89},
		{"yaw_wraps", component.Input{Turn: 200}, 1, -160, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.AddSystem(NewLookSystem())
			player := newTestPlayer(t, w)
			setDilation(t, w, player, tc.custom)
			cam := mustGet(t, w, player, component.CameraComponent.Kind())
			cam.YawInputScale = 1
			cam.PitchInputScale = 1
			*mustGet(t, w, player, component.InputComponent.Kind()) = tc.input

			w.Update(ecs.Frame{Real: tick, Scale: 1})

			yaw := mustGet(t, w, player, component.TransformComponent.Kind()).Yaw
			if math.Abs(yaw-tc.wantYaw) > 1e-9 {
				t.Fatalf("expected yaw %v, got %v", tc.wantYaw, yaw)
			}
			if math.Abs(cam.Pitch-tc.wantPitch) > 1e-9 {
				t.Fatalf("expected pitch %v, got %v", tc.wantPitch, cam.Pitch)
			}
		})
	}
}

func TestResetVRRecentersPitch(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewLookSystem())
	player := newTestPlayer(t, w)
	cam := mustGet(t, w, player, component.CameraComponent.Kind())
	cam.Pitch = 30
	mustGet(t, w, player, component.InputComponent.Kind()).ResetVRPressed = true

	w.Update(ecs.Frame{Real: tick, Scale: 1})
	if cam.Pitch != 0 {
		t.Fatalf("expected pitch reset, got %v", cam.Pitch)
	}
}
