package component

// Player marks the locally controlled character. Spec is the prefab it was
// built from so tunables can be re-applied on hot reload.
type Player struct {
	Spec       string
	WeaponSpec string
}

var PlayerComponent = NewComponent[Player]()
