package system

import (
	"image/color"
	"strconv"

	"github.com/milk9111/myboss/ecs"
	"github.com/milk9111/myboss/ecs/component"
)

const jumpMessageSeconds = 0.1

var jumpMessageColor = color.RGBA{R: 255, A: 255}

// DebugOverlaySystem posts the jump counter of every jumping character each
// frame and expires old messages. Messages age in real time.
type DebugOverlaySystem struct{}

func NewDebugOverlaySystem() *DebugOverlaySystem {
	return &DebugOverlaySystem{}
}

func (s *DebugOverlaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	real := w.Frame().Real
	ecs.ForEach(w, component.DebugOverlayComponent.Kind(), func(_ ecs.Entity, overlay *component.DebugOverlay) {
		kept := overlay.Messages[:0]
		for _, msg := range overlay.Messages {
			msg.Remaining -= real
			if msg.Remaining > 0 {
				kept = append(kept, msg)
			}
		}
		overlay.Messages = kept
	})

	ecs.ForEach(w, component.JumpsComponent.Kind(), func(e ecs.Entity, jumps *component.Jumps) {
		showDebugMessage(w, int(uint32(e)), jumpMessageSeconds, jumpMessageColor, strconv.Itoa(jumps.Current))
	})
}

func showDebugMessage(w *ecs.World, key int, seconds float64, clr color.RGBA, text string) {
	e, ok := ecs.First(w, component.DebugOverlayComponent.Kind())
	if !ok {
		return
	}
	if overlay, ok := ecs.Get(w, e, component.DebugOverlayComponent.Kind()); ok {
		overlay.Add(key, seconds, clr, text)
	}
}
