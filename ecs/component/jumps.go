package component

// Jumps is the limited jump counter, refilled on landing.
type Jumps struct {
	Current int
	Default int
}

var JumpsComponent = NewComponent[Jumps]()
