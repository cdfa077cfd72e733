package component

// Holder is the interact hold/release state. Held is non-zero exactly when
// Holding is set.
type Holder struct {
	Range    float64
	HoldLerp float64

	Holding bool
	Held    uint64
}

var HolderComponent = NewComponent[Holder]()
