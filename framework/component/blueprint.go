package component

import "fmt"

// Blueprint is the validated construction plan: one Provider per producible
// TypeID, partitioned into singleton and non-singleton sets, plus the
// precomputed ancestor chains used by the registry's supertype index.
//
// A Blueprint is immutable once NewBlueprint returns.
type Blueprint struct {
	providers map[TypeID]*Provider

	// singletons preserves discovery order — the resolver materializes
	// eagerly in this order, which in turn fixes GetWithType ordering for
	// independent types.
	singletons      []TypeID
	singletonSet    map[TypeID]struct{}
	nonSingletonSet map[TypeID]struct{}

	// ancestors maps each producible TypeID to its full ancestor chain
	// (the type itself, then declared interfaces and bases, transitively).
	ancestors map[TypeID][]TypeID
}

// Provider returns the construction recipe for id, if any.
func (bp *Blueprint) Provider(id TypeID) (*Provider, bool) {
	p, ok := bp.providers[id]
	return p, ok
}

// Singletons returns the singleton TypeIDs in discovery order.
func (bp *Blueprint) Singletons() []TypeID {
	out := make([]TypeID, len(bp.singletons))
	copy(out, bp.singletons)
	return out
}

// ── Builder ──────────────────────────────────────────────────────────────────

// NewBlueprint validates a sequence of descriptors and compiles them into a
// Blueprint. Building is eager and fails fast: the first invalid
// declaration aborts the whole build and no partial Blueprint is returned.
func NewBlueprint(descriptors []Descriptor) (*Blueprint, error) {
	b := &builder{
		byType:   make(map[TypeID]*Descriptor, len(descriptors)),
		declared: make(map[TypeID][]TypeID, len(descriptors)),
		bp: &Blueprint{
			providers:       make(map[TypeID]*Provider, len(descriptors)),
			singletonSet:    make(map[TypeID]struct{}),
			nonSingletonSet: make(map[TypeID]struct{}),
			ancestors:       make(map[TypeID][]TypeID, len(descriptors)),
		},
	}

	// Index first so factory methods can detect role-marked return types
	// regardless of declaration order.
	for i := range descriptors {
		d := &descriptors[i]
		if _, dup := b.byType[d.Type]; !dup {
			b.byType[d.Type] = d
		}
	}

	for i := range descriptors {
		if err := b.admit(&descriptors[i]); err != nil {
			return nil, err
		}
	}
	if err := b.checkDependentMarkers(); err != nil {
		return nil, err
	}
	b.closeAncestors()
	return b.bp, nil
}

type builder struct {
	byType map[TypeID]*Descriptor
	bp     *Blueprint

	// declared holds the raw Implements list per produced TypeID before
	// transitive closure; declaredOrder keeps closure output deterministic.
	declared      map[TypeID][]TypeID
	declaredOrder []TypeID
}

// admit validates one candidate and registers its provider claims.
func (b *builder) admit(d *Descriptor) error {
	switch d.Role {
	case RoleComponent:
		return b.admitComponent(d)
	case RoleFactory:
		return b.admitFactory(d)
	default:
		return ConfigurationError{Type: d.Type, Detail: "missing role marker"}
	}
}

func (b *builder) admitComponent(d *Descriptor) error {
	scope, detail := declaredScope(d.Scopes)
	if detail != "" {
		return ConfigurationError{Type: d.Type, Detail: detail}
	}
	ctor, err := selectConstructor(d)
	if err != nil {
		return err
	}
	if err := b.claim(&Provider{
		typeID: d.Type,
		scope:  scope,
		kind:   kindConstructor,
		params: ctor.Params,
		build:  ctor.Build,
		source: "component " + string(d.Type),
	}); err != nil {
		return err
	}
	b.declare(d.Type, d.Implements)
	return nil
}

func (b *builder) admitFactory(d *Descriptor) error {
	// Factories are inherently singleton; redeclaring a scope is an error.
	if len(d.Scopes) != 0 {
		return ConfigurationError{
			Type:   d.Type,
			Detail: "redundant scope marker on factory (factories are always Singleton)",
		}
	}
	ctor, err := selectConstructor(d)
	if err != nil {
		return err
	}
	if err := b.claim(&Provider{
		typeID: d.Type,
		scope:  Singleton,
		kind:   kindConstructor,
		params: ctor.Params,
		build:  ctor.Build,
		source: "factory " + string(d.Type),
	}); err != nil {
		return err
	}
	b.declare(d.Type, d.Implements)

	for i := range d.Methods {
		if err := b.admitMethod(d, &d.Methods[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) admitMethod(d *Descriptor, m *Method) error {
	if m.Returns == "" {
		return ConfigurationError{
			Type:   d.Type,
			Detail: fmt.Sprintf("provider method %q returns nothing", m.Name),
		}
	}
	if target, marked := b.byType[m.Returns]; marked {
		return ConfigurationError{
			Type: d.Type,
			Detail: fmt.Sprintf("provider method %q returns %q which is itself marked %s",
				m.Name, string(m.Returns), target.Role),
		}
	}
	scope, detail := declaredScope(m.Scopes)
	if detail != "" {
		return ConfigurationError{
			Type:   d.Type,
			Detail: fmt.Sprintf("provider method %q: %s", m.Name, detail),
		}
	}
	if m.Invoke == nil {
		return ConfigurationError{
			Type:   d.Type,
			Detail: fmt.Sprintf("provider method %q has no invoke function", m.Name),
		}
	}
	if err := b.claim(&Provider{
		typeID:  m.Returns,
		scope:   scope,
		kind:    kindFactoryMethod,
		params:  m.Params,
		factory: d.Type,
		static:  m.Static,
		invoke:  m.Invoke,
		source:  fmt.Sprintf("factory %s method %s", string(d.Type), m.Name),
	}); err != nil {
		return err
	}

	b.declare(m.Returns, m.Implements)
	return nil
}

// declare records the raw ancestor list of a produced type for later
// transitive closure.
func (b *builder) declare(id TypeID, implements []TypeID) {
	if _, dup := b.declared[id]; dup {
		return
	}
	b.declared[id] = implements
	b.declaredOrder = append(b.declaredOrder, id)
}

// claim registers a provider, enforcing the one-provider-per-type rule.
func (b *builder) claim(p *Provider) error {
	if prev, taken := b.bp.providers[p.typeID]; taken {
		return DuplicateProviderError{Type: p.typeID, First: prev.source, Second: p.source}
	}
	b.bp.providers[p.typeID] = p
	switch p.scope {
	case Singleton:
		b.bp.singletons = append(b.bp.singletons, p.typeID)
		b.bp.singletonSet[p.typeID] = struct{}{}
	case NonSingleton:
		b.bp.nonSingletonSet[p.typeID] = struct{}{}
	}
	return nil
}

// checkDependentMarkers rejects dependent-marked parameters on singleton
// providers. A cached singleton is built once for everybody; "who asked
// for me" only has an answer across a non-singleton boundary.
func (b *builder) checkDependentMarkers() error {
	for _, id := range b.bp.singletons {
		p := b.bp.providers[id]
		for _, slot := range p.params {
			if slot.Dependent {
				return ConfigurationError{
					Type:   id,
					Detail: "dependent-type marker on a Singleton provider parameter",
				}
			}
		}
	}
	return nil
}

// closeAncestors records the transitive ancestor chain of every produced
// type: the type itself, its declared ancestors, and — when an ancestor is
// itself a produced type with declarations of its own — that ancestor's
// ancestors, recursively.
func (b *builder) closeAncestors() {
	for _, id := range b.declaredOrder {
		chain := []TypeID{id}
		seen := map[TypeID]struct{}{id: {}}
		b.walkAncestors(b.declared[id], seen, &chain)
		b.bp.ancestors[id] = chain
	}
}

func (b *builder) walkAncestors(ids []TypeID, seen map[TypeID]struct{}, chain *[]TypeID) {
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		*chain = append(*chain, id)
		b.walkAncestors(b.declared[id], seen, chain)
	}
}

// ── Validation helpers ───────────────────────────────────────────────────────

// declaredScope enforces the exactly-one-scope-marker rule. It returns a
// non-empty detail string on violation so callers can add their own
// context to the configuration error.
func declaredScope(scopes []Scope) (Scope, string) {
	switch len(scopes) {
	case 1:
		if scopes[0] != Singleton && scopes[0] != NonSingleton {
			return 0, "unknown scope marker"
		}
		return scopes[0], ""
	case 0:
		return 0, "no scope marker declared"
	default:
		return 0, "multiple scope markers declared"
	}
}

// selectConstructor applies the designated-constructor rule: exactly one
// designated constructor wins; with none, fall back to a no-argument
// constructor; with neither, the type has no usable constructor.
func selectConstructor(d *Descriptor) (*Constructor, error) {
	var designated *Constructor
	for i := range d.Constructors {
		c := &d.Constructors[i]
		if !c.Designated {
			continue
		}
		if designated != nil {
			return nil, ConfigurationError{
				Type:   d.Type,
				Detail: "more than one designated constructor",
			}
		}
		designated = c
	}
	if designated == nil {
		for i := range d.Constructors {
			c := &d.Constructors[i]
			if len(c.Params) == 0 {
				designated = c
				break
			}
		}
	}
	if designated == nil {
		return nil, ConfigurationError{Type: d.Type, Detail: "no usable constructor"}
	}
	if designated.Build == nil {
		return nil, ConfigurationError{Type: d.Type, Detail: "constructor has no build function"}
	}
	return designated, nil
}
