package component

// TimeDilation scales the world delta for one entity. The player sets Custom to
// the slow-time multiplier so it keeps moving at real speed.
type TimeDilation struct {
	Custom float64
}

var TimeDilationComponent = NewComponent[TimeDilation]()
