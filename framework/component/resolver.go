package component

// resolver materializes the blueprint's singleton set into live instances.
//
// Resolution is depth-first and strictly single-threaded: the in-progress
// stack and caches belong to one build call. Per TypeID the lifecycle is
// NotStarted → InProgress → Cached, and any failure is terminal for the
// whole build.
type resolver struct {
	bp *Blueprint

	// cache is write-once: TypeID → materialized singleton.
	cache map[TypeID]any

	// order records singleton first-materialization order; it fixes the
	// ordering of both Registry.Types and GetWithType results.
	order []TypeID

	// index maps ancestor TypeIDs to the cached singletons satisfying them.
	index map[TypeID][]any

	// stack and inProgress track types currently under construction, for
	// cycle detection and error reporting.
	stack      []TypeID
	inProgress map[TypeID]struct{}
}

func newResolver(bp *Blueprint) *resolver {
	return &resolver{
		bp:         bp,
		cache:      make(map[TypeID]any),
		index:      make(map[TypeID][]any),
		inProgress: make(map[TypeID]struct{}),
	}
}

// resolveAll eagerly materializes every singleton in discovery order.
// Non-singletons are never visited here; they are only built when some
// provider's resolution reaches them as a parameter.
func (r *resolver) resolveAll() error {
	for _, id := range r.bp.singletons {
		if _, cached := r.cache[id]; cached {
			continue
		}
		if _, err := r.resolve(id, ""); err != nil {
			return err
		}
	}
	return nil
}

// resolve materializes one TypeID. dependent is the TypeID that triggered
// this construction across a non-singleton boundary, or empty.
func (r *resolver) resolve(id, dependent TypeID) (any, error) {
	if inst, cached := r.cache[id]; cached {
		return inst, nil
	}
	if _, active := r.inProgress[id]; active {
		stack := make([]TypeID, len(r.stack))
		copy(stack, r.stack)
		return nil, CircularDependencyError{Type: id, Stack: stack}
	}
	p, known := r.bp.providers[id]
	if !known {
		var requiredBy TypeID
		if len(r.stack) > 0 {
			requiredBy = r.stack[len(r.stack)-1]
		}
		return nil, UnknownDependencyError{Missing: id, RequiredBy: requiredBy}
	}

	r.inProgress[id] = struct{}{}
	r.stack = append(r.stack, id)
	defer func() {
		delete(r.inProgress, id)
		r.stack = r.stack[:len(r.stack)-1]
	}()

	args, err := r.resolveArgs(p, dependent)
	if err != nil {
		return nil, err
	}
	inst, err := r.construct(p, args)
	if err != nil {
		return nil, err
	}

	if p.scope == Singleton {
		r.cacheSingleton(id, inst)
	}
	return inst, nil
}

// resolveArgs fills the provider's parameter slots. A dependent-marked
// slot receives the requester's TypeID as its value; every other slot is
// resolved recursively, forwarding the current TypeID as the dependent
// when the parameter's own provider is non-singleton.
func (r *resolver) resolveArgs(p *Provider, dependent TypeID) ([]any, error) {
	args := make([]any, len(p.params))
	for i, slot := range p.params {
		if slot.Dependent {
			args[i] = dependent
			continue
		}
		var next TypeID
		if dp, known := r.bp.providers[slot.Type]; known && dp.scope == NonSingleton {
			next = p.typeID
		}
		v, err := r.resolve(slot.Type, next)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// construct runs the provider's recipe. Factory-method providers resolve
// their owning factory singleton first, unless the method is static.
func (r *resolver) construct(p *Provider, args []any) (any, error) {
	var inst any
	var err error
	switch p.kind {
	case kindFactoryMethod:
		var factory any
		if !p.static {
			factory, err = r.resolve(p.factory, "")
			if err != nil {
				return nil, err
			}
		}
		inst, err = p.invoke(factory, args)
	default:
		inst, err = p.build(args)
	}
	if err != nil {
		return nil, ConstructionError{Type: p.typeID, Err: err}
	}
	return inst, nil
}

// cacheSingleton stores a materialized singleton and registers it in the
// supertype index under every ancestor of its concrete type.
func (r *resolver) cacheSingleton(id TypeID, inst any) {
	r.cache[id] = inst
	r.order = append(r.order, id)
	for _, ancestor := range r.bp.ancestors[id] {
		r.index[ancestor] = append(r.index[ancestor], inst)
	}
}

// registry freezes the resolver state into a read-only Registry.
func (r *resolver) registry() *Registry {
	return &Registry{cache: r.cache, order: r.order, index: r.index}
}
