package component

import "slices"

const (
	TagPlayer       = "Player"
	TagEnemy        = "Enemy"
	TagInteractable = "Interactable"
	TagPostProcess  = "Post Process"
)

// Actor names an entity and carries its lookup tags.
type Actor struct {
	Name string
	Tags []string
}

func (a *Actor) HasTag(tag string) bool {
	return a != nil && slices.Contains(a.Tags, tag)
}

var ActorComponent = NewComponent[Actor]()
