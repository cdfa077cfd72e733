package component

import "image/color"

// DebugMessage is an on-screen diagnostic line. Messages sharing a non-negative
// Key replace each other; Key -1 always appends.
type DebugMessage struct {
	Key       int
	Text      string
	Remaining float64
	Color     color.RGBA
}

type DebugOverlay struct {
	Messages []DebugMessage
}

// Add shows text for seconds of real time.
func (o *DebugOverlay) Add(key int, seconds float64, clr color.RGBA, text string) {
	if o == nil {
		return
	}
	msg := DebugMessage{Key: key, Text: text, Remaining: seconds, Color: clr}
	if key >= 0 {
		for i := range o.Messages {
			if o.Messages[i].Key == key {
				o.Messages[i] = msg
				return
			}
		}
	}
	o.Messages = append(o.Messages, msg)
}

var DebugOverlayComponent = NewComponent[DebugOverlay]()
