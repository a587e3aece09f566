package engine

// Entity is a bag of owned components with liveness and group membership
// Entities are created by Manager.AddEntity and purged by Manager.Refresh after Destroy
type Entity struct {
	id      uint64
	manager *Manager
	alive   bool

	// components keeps attach order for Update/Draw broadcast
	components []Component
	slots      [MaxComponents]Component
	present    Bitmask
	groups     Bitmask
}

// ID returns the manager-assigned id, unique for the manager's lifetime
func (e *Entity) ID() uint64 {
	return e.id
}

// Manager returns the owning manager, nil once the entity has been purged
func (e *Entity) Manager() *Manager {
	return e.manager
}

// IsAlive reports whether Destroy has not been called
func (e *Entity) IsAlive() bool {
	return e.alive
}

// Destroy marks the entity dead; storage is reclaimed at the next Manager.Refresh
func (e *Entity) Destroy() {
	e.alive = false
}

// Update broadcasts dt to every component in attach order
func (e *Entity) Update(dt float32) {
	for _, c := range e.components {
		c.Update(dt)
	}
}

// Draw broadcasts to every component in attach order
func (e *Entity) Draw() {
	for _, c := range e.components {
		c.Draw()
	}
}

// ComponentCount returns the number of attached components
func (e *Entity) ComponentCount() int {
	return len(e.components)
}

// HasGroup reports membership in g
func (e *Entity) HasGroup(g GroupID) bool {
	checkGroup("HasGroup", g)
	return e.groups.Has(uint8(g))
}

// AddGroup adds the entity to g and registers it in the manager's group index immediately
// Adding a group the entity already belongs to is a no-op
func (e *Entity) AddGroup(g GroupID) {
	checkGroup("AddGroup", g)
	if e.manager == nil {
		violate("AddGroup", "entity %d has been purged", e.id)
	}
	if e.groups.Has(uint8(g)) {
		return
	}
	e.groups.Set(uint8(g))
	e.manager.AddToGroup(e, g)
}

// DelGroup removes membership in g; the index entry is dropped at the next refresh
func (e *Entity) DelGroup(g GroupID) {
	checkGroup("DelGroup", g)
	e.groups.Clear(uint8(g))
}

// AddComponent attaches c to e, records its slot, runs Init and returns c
// Attaching a second component of the same type panics
func AddComponent[T Component](e *Entity, c T) T {
	id := TypeID[T]()
	if e.present.Has(uint8(id)) {
		violate("AddComponent", "entity %d already has a %T", e.id, c)
	}

	c.bind(e)
	e.components = append(e.components, c)
	e.slots[id] = c
	e.present.Set(uint8(id))

	c.Init()
	return c
}

// HasComponent reports whether a component of type T is attached
func HasComponent[T Component](e *Entity) bool {
	return e.present.Has(uint8(TypeID[T]()))
}

// GetComponent returns the attached component of type T
// Panics when absent; callers check HasComponent when presence is not guaranteed
func GetComponent[T Component](e *Entity) T {
	id := TypeID[T]()
	if !e.present.Has(uint8(id)) {
		var zero T
		violate("GetComponent", "entity %d has no %T", e.id, zero)
	}
	return e.slots[id].(T)
}
