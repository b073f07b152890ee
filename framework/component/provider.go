package component

// providerKind distinguishes the two construction recipe shapes.
type providerKind int

const (
	kindConstructor providerKind = iota + 1
	kindFactoryMethod
)

// Provider is the resolved construction recipe for one TypeID: either a
// selected constructor, or a factory method bound to its owning factory.
// Exactly one Provider exists per TypeID in a valid Blueprint.
type Provider struct {
	typeID TypeID
	scope  Scope
	kind   providerKind
	params []Param

	// constructor recipe
	build func(args []any) (any, error)

	// factory method recipe
	factory TypeID
	static  bool
	invoke  func(factory any, args []any) (any, error)

	// source describes where the claim came from, for conflict errors.
	source string
}

// Type returns the TypeID this provider produces.
func (p *Provider) Type() TypeID { return p.typeID }

// Scope returns the provider's declared lifetime.
func (p *Provider) Scope() Scope { return p.scope }

// Params returns the provider's argument slots in call order.
func (p *Provider) Params() []Param { return p.params }

// Source describes the declaration the provider came from, e.g.
// "component myapp.Clock" or "factory myapp.Services method NewMailer".
func (p *Provider) Source() string { return p.source }
