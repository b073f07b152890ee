package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/km-arc/go-components/framework/app"
	"github.com/km-arc/go-components/framework/component"
	"github.com/km-arc/go-components/framework/components"
	"github.com/km-arc/go-components/framework/config"
	"github.com/km-arc/go-components/framework/routing"
)

// ── Demo components ──────────────────────────────────────────────────────────

// Clock is a singleton with no dependencies.
type Clock struct{}

func (c *Clock) Now() time.Time { return time.Now() }

// Stamp is a non-singleton: every dependant gets a fresh one, tagged with
// the TypeID of whoever requested it (the dependent-type marker).
type Stamp struct {
	RequestedBy component.TypeID
	At          time.Time
}

// Greeter composes the app name from config with a per-construction stamp.
type Greeter struct {
	cfg   *config.Config
	stamp *Stamp
}

func (g *Greeter) Greet(name string) string {
	return fmt.Sprintf("hello %s, from %s (wired for %s)", name, g.cfg.App.Name, g.stamp.RequestedBy)
}

// Services is a component factory: an implicitly singleton type whose
// provider methods build other managed types.
type Services struct {
	clock *Clock
}

func (s *Services) NewStamp(requestedBy component.TypeID) *Stamp {
	return &Stamp{RequestedBy: requestedBy, At: s.clock.Now()}
}

// APIController registers routes against the managed router.
type APIController struct {
	greeter *Greeter
}

func (c *APIController) Mount(r *routing.Router) {
	r.Get("/greet/{name}", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintln(w, c.greeter.Greet(routing.Param(req, "name")))
	})
}

// ── Descriptors ──────────────────────────────────────────────────────────────

var (
	clockType      = component.Key((*Clock)(nil))
	stampType      = component.Key((*Stamp)(nil))
	greeterType    = component.Key((*Greeter)(nil))
	servicesType   = component.Key((*Services)(nil))
	controllerType = component.Key((*APIController)(nil))
)

func descriptors() []component.Descriptor {
	return []component.Descriptor{
		{
			Type:   clockType,
			Role:   component.RoleComponent,
			Scopes: []component.Scope{component.Singleton},
			Constructors: []component.Constructor{{
				Build: func([]any) (any, error) { return &Clock{}, nil },
			}},
		},
		{
			Type: servicesType,
			Role: component.RoleFactory,
			Constructors: []component.Constructor{{
				Designated: true,
				Params:     []component.Param{{Type: clockType}},
				Build: func(args []any) (any, error) {
					return &Services{clock: args[0].(*Clock)}, nil
				},
			}},
			Methods: []component.Method{{
				Name:    "NewStamp",
				Scopes:  []component.Scope{component.NonSingleton},
				Returns: stampType,
				Params:  []component.Param{{Dependent: true}},
				Invoke: func(factory any, args []any) (any, error) {
					return factory.(*Services).NewStamp(args[0].(component.TypeID)), nil
				},
			}},
		},
		{
			Type:   greeterType,
			Role:   component.RoleComponent,
			Scopes: []component.Scope{component.Singleton},
			Constructors: []component.Constructor{{
				Designated: true,
				Params: []component.Param{
					{Type: components.ConfigType},
					{Type: stampType},
				},
				Build: func(args []any) (any, error) {
					return &Greeter{cfg: args[0].(*config.Config), stamp: args[1].(*Stamp)}, nil
				},
			}},
		},
		{
			Type:   controllerType,
			Role:   component.RoleComponent,
			Scopes: []component.Scope{component.Singleton},
			Constructors: []component.Constructor{{
				Designated: true,
				Params: []component.Param{
					{Type: greeterType},
					{Type: components.RouterType},
				},
				Build: func(args []any) (any, error) {
					c := &APIController{greeter: args[0].(*Greeter)}
					c.Mount(args[1].(*routing.Router))
					return c, nil
				},
			}},
		},
	}
}

func main() {
	application := app.New()
	application.Register(descriptors()...)
	application.Run()
}
