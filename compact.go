package entitycs

// compactEntities removes every dead entity from list in a single pass. A dead
// entity found from the left is swapped with the nearest live entity from the
// right and the list shrinks by one; dead entities met from the right are
// dropped directly. Relative order is not preserved.
//
// It returns the shortened list, the number of removed entities and the union
// of their masks. The union carries ScriptBit when a removed entity had
// scripts, and callers use it to skip lists that cannot contain any of them.
// Vacated slots past the new length are cleared.
func compactEntities(list []*Entity) ([]*Entity, int, Mask) {
	n := len(list)
	if n == 0 {
		return list, 0, 0
	}
	var bits Mask
	left, right := 0, n-1
	for left <= right {
		if !list[left].alive {
			bits |= list[left].mask
			// drop dead entities at the tail
			for right > left && !list[right].alive {
				bits |= list[right].mask
				right--
			}
			if right > left {
				list[left], list[right] = list[right], list[left]
			}
			right--
		}
		left++
	}
	kept := right + 1
	clear(list[kept:])
	return list[:kept], n - kept, bits
}
