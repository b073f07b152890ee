package component

import "reflect"

// ── Identifiers ──────────────────────────────────────────────────────────────

// TypeID is the stable, unique key of a producible type. The core never
// inspects it — it only compares IDs — so any convention works as long as
// it is unique per type. Key derives one from a Go type.
type TypeID string

// Key returns the package-qualified type name of v as a TypeID, useful as
// a stable identifier when registering descriptors.
//
//	component.Key(&Clock{})           // "myapp/time.Clock"
//	component.Key((*Mailer)(nil))     // "myapp/mail.Mailer" — works for interfaces
func Key(v any) TypeID {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return TypeID(t.PkgPath() + "." + t.Name())
}

// ── Role & Scope markers ─────────────────────────────────────────────────────

// Role classifies a candidate type. A record without a role is not a
// candidate and is ignored by the catalog.
type Role int

const (
	// RoleComponent marks a type eligible for managed construction.
	RoleComponent Role = iota + 1

	// RoleFactory marks an implicitly singleton type whose provider
	// methods produce other managed types.
	RoleFactory
)

// String returns the marker name.
func (r Role) String() string {
	switch r {
	case RoleComponent:
		return "Component"
	case RoleFactory:
		return "ComponentFactory"
	default:
		return "Unknown"
	}
}

// Scope declares the instance lifetime of a component or provider method.
type Scope int

const (
	// Singleton instances are built once, cached, and shared.
	Singleton Scope = iota + 1

	// NonSingleton instances are built fresh per request and never cached.
	NonSingleton
)

// String returns the marker name.
func (s Scope) String() string {
	switch s {
	case Singleton:
		return "Singleton"
	case NonSingleton:
		return "NonSingleton"
	default:
		return "Unknown"
	}
}

// ── Registration records ─────────────────────────────────────────────────────

// Param describes one argument slot of a constructor or provider method.
type Param struct {
	// Type is the TypeID resolved to fill this slot.
	Type TypeID

	// Dependent marks the slot as receiving the TypeID of whichever type
	// triggered the current construction, instead of a resolved value.
	// Only valid on non-singleton providers.
	Dependent bool
}

// Constructor describes one declared constructor of a candidate type.
type Constructor struct {
	// Designated marks this constructor as the one to use. At most one
	// constructor per type may carry the marker; with none, a no-argument
	// constructor is required as fallback.
	Designated bool

	// Params lists the argument slots in call order.
	Params []Param

	// Build produces an instance from the resolved arguments.
	Build func(args []any) (any, error)
}

// Method describes a provider method declared on a factory type.
type Method struct {
	// Name identifies the method in error messages.
	Name string

	// Scopes holds the declared scope markers. Exactly one is required.
	Scopes []Scope

	// Static methods are invoked without a factory instance; otherwise the
	// owning factory's singleton is resolved first.
	Static bool

	// Returns is the TypeID this method provides. Empty means the method
	// returns nothing, which is a configuration error.
	Returns TypeID

	// Implements lists the ancestor TypeIDs (interfaces, embedded bases)
	// of the returned concrete type, for the registry's supertype index.
	Implements []TypeID

	// Params lists the argument slots in call order.
	Params []Param

	// Invoke produces an instance. factory is the resolved owning factory
	// singleton, or nil for static methods.
	Invoke func(factory any, args []any) (any, error)
}

// Descriptor is the manifest entry for one candidate type: everything the
// blueprint builder needs to know about it, supplied explicitly at
// registration time instead of discovered by reflective scanning.
type Descriptor struct {
	// Type is the candidate's TypeID.
	Type TypeID

	// Role classifies the candidate. Zero means "not a candidate".
	Role Role

	// Scopes holds the declared scope markers. Components require exactly
	// one; factories must declare none (they are inherently singleton).
	Scopes []Scope

	// Order is a declared ordering hint. It is captured for completeness
	// but currently inert: GetWithType returns construction order.
	Order int

	// Implements lists the ancestor TypeIDs (interfaces, embedded bases)
	// of the candidate, for the registry's supertype index.
	Implements []TypeID

	// Constructors lists the candidate's declared constructors.
	Constructors []Constructor

	// Methods lists the provider methods of a factory. Ignored for
	// components.
	Methods []Method
}
