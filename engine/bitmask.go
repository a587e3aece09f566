package engine

// Capacity of the per-entity presence and group sets
const (
	MaxComponents = 32
	MaxGroups     = 32
)

// Both capacities must fit the Bitmask width; raising either past 32 fails to compile
const (
	_ Bitmask = 1 << (MaxComponents - 1)
	_ Bitmask = 1 << (MaxGroups - 1)
)

// Bitmask is a fixed-width bit set indexed by component type or group id
type Bitmask uint32

// Has reports whether bit i is set
func (m Bitmask) Has(i uint8) bool {
	return m&(1<<i) != 0
}

// Set sets bit i
func (m *Bitmask) Set(i uint8) {
	*m |= 1 << i
}

// Clear clears bit i
func (m *Bitmask) Clear(i uint8) {
	*m &^= 1 << i
}

// Empty reports whether no bit is set
func (m Bitmask) Empty() bool {
	return m == 0
}
