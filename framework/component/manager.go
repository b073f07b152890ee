package component

// Manager ties the three phases together: scan the catalog, compile the
// blueprint, resolve every singleton. Build is one-shot and synchronous;
// it either returns a fully materialized Registry or fails entirely.
//
// Build itself performs no locking. If concurrent first builds are
// possible (lazy global initialization and the like), the caller supplies
// external mutual exclusion.
type Manager struct {
	catalog *Catalog
}

// NewManager creates a manager over a catalog of registered candidates.
func NewManager(catalog *Catalog) *Manager {
	return &Manager{catalog: catalog}
}

// Build scans the catalog for candidates matching the given TypeID
// prefixes (all candidates when none are given), validates them into a
// blueprint, and materializes every singleton.
//
// Any configuration, unknown-dependency, circular-dependency, or
// construction error aborts the build immediately: no Registry is
// returned, nothing is retried, and no partial state survives.
func (m *Manager) Build(prefixes ...string) (*Registry, error) {
	bp, err := NewBlueprint(m.catalog.Scan(prefixes...))
	if err != nil {
		return nil, err
	}
	r := newResolver(bp)
	if err := r.resolveAll(); err != nil {
		return nil, err
	}
	return r.registry(), nil
}

// Build is a convenience for NewManager(catalog).Build(prefixes...).
func Build(catalog *Catalog, prefixes ...string) (*Registry, error) {
	return NewManager(catalog).Build(prefixes...)
}
