package component

// Registry is the read API over a completed build: the singleton cache and
// the supertype index. It is immutable — no operation constructs, mutates,
// or fails — and therefore safe for concurrent readers.
//
// Non-singleton types never appear here: they are built transiently during
// resolution and are not retrievable afterwards.
type Registry struct {
	cache map[TypeID]any
	order []TypeID
	index map[TypeID][]any
}

// Get returns the cached singleton for the exact TypeID, if present.
// Unknown IDs simply yield ok == false.
func (reg *Registry) Get(id TypeID) (any, bool) {
	inst, ok := reg.cache[id]
	return inst, ok
}

// GetWithType returns every cached singleton whose concrete type's
// ancestor chain includes id, in construction order. The result is a
// copy, and empty when nothing satisfies id.
func (reg *Registry) GetWithType(id TypeID) []any {
	entries := reg.index[id]
	out := make([]any, len(entries))
	copy(out, entries)
	return out
}

// Types returns the TypeIDs of all cached singletons in construction order.
func (reg *Registry) Types() []TypeID {
	out := make([]TypeID, len(reg.order))
	copy(out, reg.order)
	return out
}

// Len returns the number of cached singletons.
func (reg *Registry) Len() int { return len(reg.cache) }

// Lookup is a typed convenience over Registry.Get.
//
//	clock, ok := component.Lookup[*Clock](registry, component.Key((*Clock)(nil)))
//
// ok is false when the ID is absent or the cached instance is not a T.
func Lookup[T any](reg *Registry, id TypeID) (T, bool) {
	inst, ok := reg.Get(id)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := inst.(T)
	return typed, ok
}

// LookupAll is a typed convenience over Registry.GetWithType: it returns
// the indexed singletons for id that assert to T, in construction order.
func LookupAll[T any](reg *Registry, id TypeID) []T {
	entries := reg.index[id]
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if typed, ok := e.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}
