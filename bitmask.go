package entitycs

// Mask records which components an entity owns. Component i occupies bit i+1;
// bit 0 is reserved for ScriptBit, which marks entities carrying behavior
// hooks. Query masks never set bit 0.
type Mask uint64

// ScriptBit is set on an entity mask once a Script has been attached.
const ScriptBit Mask = 1

// bitFor returns the mask bit for a component ID.
func bitFor(id ComponentID) Mask {
	return Mask(1) << (uint64(id) + 1)
}

// With returns a copy of m with the bit for id set.
func (m Mask) With(id ComponentID) Mask {
	return m | bitFor(id)
}

// Has checks if the bit for component id is set.
func (m Mask) Has(id ComponentID) bool {
	return m&bitFor(id) != 0
}

// Contains checks if all the bits set in `sub` are also set in m. This is the
// query matching rule: an entity matches when its mask contains the query
// mask.
func (m Mask) Contains(sub Mask) bool {
	return m&sub == sub
}

// Intersects checks if m has any bit in common with other.
func (m Mask) Intersects(other Mask) bool {
	return m&other != 0
}

// MaskOf builds a query mask from component IDs.
func MaskOf(ids ...ComponentID) Mask {
	var m Mask
	for _, id := range ids {
		m |= bitFor(id)
	}
	return m
}
