package component

// Health is current and default hit points. Reaching zero destroys the owner.
type Health struct {
	Current int
	Default int
}

var HealthComponent = NewComponent[Health]()
