// Package component provides a validated, one-shot component manager:
// candidate types are described by explicit registration records, compiled
// into an immutable construction blueprint, and materialized into a graph
// of singleton instances with transitive dependency resolution.
//
// # Overview
//
// The manager works in three strictly ordered phases:
//
//  1. Discovery — callers register Descriptors into a Catalog. A Descriptor
//     is the manifest entry for one candidate type: its role (Component or
//     Factory), its declared scope markers, its constructors, and — for
//     factories — its provider methods.
//  2. Blueprint — NewBlueprint validates every descriptor (scope marker
//     consistency, constructor selection, duplicate provider claims) and
//     produces an immutable Blueprint mapping each producible TypeID to
//     exactly one Provider, partitioned into singleton and non-singleton
//     sets. The first validation error aborts the build; there is no
//     partial blueprint.
//  3. Resolution — the resolver walks the singleton set depth-first,
//     resolving each Provider's parameters recursively, detecting cycles
//     with an in-progress stack, caching singletons write-once, and
//     populating a supertype index as a side effect of caching.
//
// The result is a Registry: a read-only view over the singleton cache and
// the supertype index. Once Build returns, the Registry never changes and
// is safe for concurrent readers.
//
// # Usage
//
//	catalog := component.NewCatalog()
//	catalog.Register(
//	    component.Descriptor{
//	        Type:   component.Key((*Clock)(nil)),
//	        Role:   component.RoleComponent,
//	        Scopes: []component.Scope{component.Singleton},
//	        Constructors: []component.Constructor{{
//	            Build: func([]any) (any, error) { return NewClock(), nil },
//	        }},
//	    },
//	)
//
//	registry, err := component.NewManager(catalog).Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	clock, ok := component.Lookup[*Clock](registry, component.Key((*Clock)(nil)))
//
// # Scopes
//
// Singleton components are built exactly once, cached, and shared by every
// dependant. NonSingleton components are built fresh each time some
// provider's resolution reaches them as a parameter; they are never cached
// and never retrievable from the Registry afterwards.
//
// # Factories
//
// A RoleFactory descriptor is an implicitly singleton type whose provider
// methods produce other managed types. Methods are either static (invoked
// without a factory instance) or instance-bound (the factory singleton is
// resolved first). A factory method's return type must not itself be a
// registered candidate — that would be a second, conflicting claim.
//
// # The dependent-type marker
//
// A parameter slot with Dependent set does not resolve a dependency at
// all: it receives the TypeID of whichever type triggered the current
// construction. The marker is only meaningful on non-singleton providers
// (a cached singleton has no single requester) and is rejected at
// blueprint time everywhere else.
package component
