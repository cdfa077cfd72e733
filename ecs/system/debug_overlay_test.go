package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
	"github.com/milk9111/myboss/ecs/entity"
)

func TestJumpMessageReplacesByKey(t *testing.T) {
	w := ecs.NewWorld()
	overlayEntity, err := entity.NewDebugOverlay(w)
	if err != nil {
		t.Fatal(err)
	}
	w.AddSystem(NewDebugOverlaySystem())
	player := newTestPlayer(t, w)
	overlay := mustGet(t, w, overlayEntity, component.DebugOverlayComponent.Kind())

	w.Update(ecs.Frame{Real: tick, Scale: 1})
	mustGet(t, w, player, component.JumpsComponent.Kind()).Current = 1
	w.Update(ecs.Frame{Real: tick, Scale: 1})

	if len(overlay.Messages) != 1 {
		t.Fatalf("expected a single jump message, got %d", len(overlay.Messages))
	}
	msg := overlay.Messages[0]
	if msg.Key != int(uint32(player)) || msg.Text != "1" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.Color != jumpMessageColor {
		t.Fatalf("expected jump message color, got %v", msg.Color)
	}

	ecs.DestroyEntity(w, player)
	for i := 0; i < 8; i++ {
		w.Update(ecs.Frame{Real: tick, Scale: 0.1})
	}
	if len(overlay.Messages) != 0 {
		t.Fatalf("messages should expire in real time, got %d", len(overlay.Messages))
	}
}

func TestDebugOverlayAdd(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		want int
	}{
		{name: "same key replaces", keys: []int{3, 3, 3}, want: 1},
		{name: "distinct keys append", keys: []int{1, 2}, want: 2},
		{name: "negative key always appends", keys: []int{-1, -1}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o component.DebugOverlay
			for i, k := range tt.keys {
				o.Add(k, 1, color.RGBA{A: 255}, string(rune('a'+i)))
			}
			if len(o.Messages) != tt.want {
				t.Fatalf("expected %d messages, got %d", tt.want, len(o.Messages))
			}
		})
	}
}
