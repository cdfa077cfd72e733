package component

// Enemy is a hostile actor that chases the player and strikes at close range.
type Enemy struct {
	Speed          float64
	AttackDamage   int
	AttackRange    float64
	AttackCooldown float64
}

var EnemyComponent = NewComponent[Enemy]()

// Script points an entity at a tengo behaviour script.
type Script struct {
	Path string
}

var ScriptComponent = NewComponent[Script]()

// ImpactMarker is a short-lived marker left where a shot landed.
type ImpactMarker struct {
	Hit bool
}

var ImpactMarkerComponent = NewComponent[ImpactMarker]()
