package entitycs

// query is a cached list of entities matching a required mask.
type query struct {
	entities []*Entity
	mask     Mask
}

// AddQuery declares a persistent query. Its entity list is kept up to date
// incrementally on every Tick. Declaring the same mask twice has no effect.
//
// It panics once the manager is running. Systems declare their queries in
// InitQueries.
func (m *Manager) AddQuery(mask Mask) {
	if m.state != StateInit {
		panic("ecs: queries must be added before Start")
	}
	if _, ok := m.queryIndex[mask]; ok {
		return
	}
	m.queryIndex[mask] = len(m.queries)
	m.queries = append(m.queries, query{
		mask:     mask,
		entities: make([]*Entity, 0, m.capacity),
	})
}

// EntitiesWith returns the entities whose mask contains mask.
//
// A persistent query is returned as is. Any other mask is answered by a scan
// of all entities, cached until the next Tick so repeated calls in the same
// tick are O(1). The returned slice is owned by the manager and must not be
// modified; it is only valid until the next Tick.
func (m *Manager) EntitiesWith(mask Mask) []*Entity {
	m.mustRun("EntitiesWith")
	if i, ok := m.queryIndex[mask]; ok {
		return m.queries[i].entities
	}
	if i, ok := m.transientIndex[mask]; ok {
		return m.transient[i].entities
	}
	res := make([]*Entity, 0, len(m.entities))
	for _, e := range m.entities {
		if e.mask.Contains(mask) {
			res = append(res, e)
		}
	}
	m.transientIndex[mask] = len(m.transient)
	m.transient = append(m.transient, query{mask: mask, entities: res})
	m.stats.transientScans.Add(1)
	return res
}

// HasQuery reports whether mask was declared with AddQuery.
func (m *Manager) HasQuery(mask Mask) bool {
	_, ok := m.queryIndex[mask]
	return ok
}

// clearTransient drops the per-tick query cache.
func (m *Manager) clearTransient() {
	clear(m.transient)
	m.transient = m.transient[:0]
	clear(m.transientIndex)
}

// compactQueries removes dead entities from every persistent query that may
// hold one. A query can only contain a removed entity if its mask intersects
// the removed bits, or if it is the empty query that matches everything.
func (m *Manager) compactQueries(bits Mask) {
	for i := range m.queries {
		q := &m.queries[i]
		if q.mask != 0 && !q.mask.Intersects(bits) {
			continue
		}
		q.entities, _, _ = compactEntities(q.entities)
	}
}

// insertIntoQueries appends a freshly finalized entity to every persistent
// query it matches.
func (m *Manager) insertIntoQueries(e *Entity) {
	for i := range m.queries {
		q := &m.queries[i]
		if e.mask.Contains(q.mask) {
			q.entities = append(q.entities, e)
		}
	}
}
