package engine

import (
	"sync"
)

// ComponentTypeID identifies a component type for slot lookup and presence checks
type ComponentTypeID uint8

// typeRegistry maps a typed nil pointer per component type to its id
// Interface values holding (*T)(nil) compare equal only for the same T
var typeRegistry = struct {
	mu  sync.Mutex
	ids map[any]ComponentTypeID
}{
	ids: make(map[any]ComponentTypeID, MaxComponents),
}

// TypeID returns the stable id of component type T, assigning the next free id on first use
// Panics when more than MaxComponents distinct types are referenced
func TypeID[T Component]() ComponentTypeID {
	key := any((*T)(nil))

	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()

	if id, ok := typeRegistry.ids[key]; ok {
		return id
	}

	if len(typeRegistry.ids) >= MaxComponents {
		violate("TypeID", "component type capacity %d exhausted", MaxComponents)
	}

	id := ComponentTypeID(len(typeRegistry.ids))
	typeRegistry.ids[key] = id
	return id
}

// RegisteredTypes returns the number of component types assigned an id so far
func RegisteredTypes() int {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()
	return len(typeRegistry.ids)
}
