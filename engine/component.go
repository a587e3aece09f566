package engine

// Component is a unit of per-entity behavior owned by exactly one Entity
// Implementations embed Base, which supplies the owner reference and no-op defaults
type Component interface {
	// Init runs once, right after the component is attached
	// Sibling components the component depends on are resolved here
	Init()
	// Update advances the component by dt logic-time units
	Update(dt float32)
	// Draw submits the component's visual state
	Draw()

	bind(e *Entity)
}

// Base is embedded by every component
// The entity reference is non-owning and is never used to decide lifetime
type Base struct {
	entity *Entity
}

func (b *Base) bind(e *Entity) {
	b.entity = e
}

// Entity returns the owning entity
func (b *Base) Entity() *Entity {
	return b.entity
}

func (b *Base) Init()          {}
func (b *Base) Update(float32) {}
func (b *Base) Draw()          {}
