package component_test

import (
	"github.com/km-arc/go-components/framework/component"
)

// singleton returns a minimal singleton component descriptor with a
// no-argument constructor.
func singleton(id component.TypeID, build func([]any) (any, error)) component.Descriptor {
	return component.Descriptor{
		Type:         id,
		Role:         component.RoleComponent,
		Scopes:       []component.Scope{component.Singleton},
		Constructors: []component.Constructor{{Build: build}},
	}
}

// singletonDeps returns a singleton descriptor whose designated
// constructor takes the given parameter types in order.
func singletonDeps(id component.TypeID, build func([]any) (any, error), deps ...component.TypeID) component.Descriptor {
	d := singleton(id, build)
	d.Constructors[0].Designated = true
	for _, dep := range deps {
		d.Constructors[0].Params = append(d.Constructors[0].Params, component.Param{Type: dep})
	}
	return d
}

// nonSingletonDeps is singletonDeps with NonSingleton scope.
func nonSingletonDeps(id component.TypeID, build func([]any) (any, error), deps ...component.TypeID) component.Descriptor {
	d := singletonDeps(id, build, deps...)
	d.Scopes = []component.Scope{component.NonSingleton}
	return d
}

// value builds a constant instance.
func value(v any) func([]any) (any, error) {
	return func([]any) (any, error) { return v, nil }
}

// fresh builds a new empty struct pointer per call, so instance identity
// is observable.
func fresh() func([]any) (any, error) {
	return func([]any) (any, error) { return &struct{ n int }{}, nil }
}

// build compiles and resolves a catalog of descriptors in one shot.
func build(descriptors ...component.Descriptor) (*component.Registry, error) {
	catalog := component.NewCatalog()
	catalog.Register(descriptors...)
	return component.Build(catalog)
}
