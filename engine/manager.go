package engine

import (
	"go.uber.org/zap"
)

// Manager owns all entities and the per-group indices over them
//
// Group indices are non-owning views into entity storage. An entity appears in a group's
// index iff it is alive and a member of the group, but that invariant only holds right after
// Refresh: between refreshes an index may still hold entities destroyed or removed from the
// group during the current tick.
type Manager struct {
	log *zap.Logger

	nextID   uint64
	entities []*Entity
	grouped  [MaxGroups][]*Entity
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithLogger sets the logger used for lifecycle diagnostics
func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates an empty manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		log:      zap.NewNop(),
		entities: make([]*Entity, 0, 64),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddEntity creates a live entity owned by the manager
// The pointer stays valid until the entity is destroyed and a Refresh purges it
func (m *Manager) AddEntity() *Entity {
	m.nextID++
	e := &Entity{
		id:      m.nextID,
		manager: m,
		alive:   true,
	}
	m.entities = append(m.entities, e)
	return e
}

// Update broadcasts dt to every stored entity, including dead ones not yet purged
// Entities added during the broadcast receive their first update on the next call
func (m *Manager) Update(dt float32) {
	for _, e := range m.entities {
		e.Update(dt)
	}
}

// Draw broadcasts to every stored entity, including dead ones not yet purged
func (m *Manager) Draw() {
	for _, e := range m.entities {
		e.Draw()
	}
}

// Refresh drops stale group index entries, then purges dead entities from storage
// Index cleanup runs first so no index holds an entity after it leaves storage
func (m *Manager) Refresh() {
	for g := range m.grouped {
		index := m.grouped[g]
		kept := index[:0]
		for _, e := range index {
			if e.alive && e.groups.Has(uint8(g)) {
				kept = append(kept, e)
			}
		}
		clear(index[len(kept):])
		m.grouped[g] = kept
	}

	kept := m.entities[:0]
	purged := 0
	for _, e := range m.entities {
		if e.alive {
			kept = append(kept, e)
			continue
		}
		e.manager = nil
		purged++
	}
	clear(m.entities[len(kept):])
	m.entities = kept

	if purged > 0 {
		m.log.Debug("purged dead entities",
			zap.Int("purged", purged),
			zap.Int("remaining", len(kept)),
		)
	}
}

// AddToGroup appends e to g's index
// Entity.AddGroup is the normal entry point; it sets the membership bit and guards duplicates
func (m *Manager) AddToGroup(e *Entity, g GroupID) {
	checkGroup("AddToGroup", g)
	m.grouped[g] = append(m.grouped[g], e)
}

// GetEntitiesByGroup returns the live index for g
// The slice is owned by the manager and is rewritten by Refresh
func (m *Manager) GetEntitiesByGroup(g GroupID) []*Entity {
	checkGroup("GetEntitiesByGroup", g)
	return m.grouped[g]
}

// Entities returns the live entity storage, in creation order
func (m *Manager) Entities() []*Entity {
	return m.entities
}

// Len returns the number of stored entities, dead-but-unpurged included
func (m *Manager) Len() int {
	return len(m.entities)
}

// Clear destroys every entity and purges them
func (m *Manager) Clear() {
	for _, e := range m.entities {
		e.Destroy()
	}
	m.Refresh()
}
