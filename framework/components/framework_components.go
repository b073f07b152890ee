// Package components holds the stock framework component descriptors the
// kernel registers into every catalog: typed configuration and the HTTP
// router. Applications add their own descriptors next to these.
package components

import (
	"net/http"

	"github.com/km-arc/go-components/framework/component"
	"github.com/km-arc/go-components/framework/config"
	"github.com/km-arc/go-components/framework/routing"
)

// Well-known TypeIDs of the stock components.
var (
	ConfigType  = component.Key((*config.Config)(nil))
	RouterType  = component.Key((*routing.Router)(nil))
	HandlerType = component.Key((*http.Handler)(nil))
)

// Config describes the typed configuration singleton, loaded from the
// given env files (".env" by default).
func Config(envFiles ...string) component.Descriptor {
	return component.Descriptor{
		Type:   ConfigType,
		Role:   component.RoleComponent,
		Scopes: []component.Scope{component.Singleton},
		Constructors: []component.Constructor{{
			Build: func([]any) (any, error) {
				return config.Load(envFiles...), nil
			},
		}},
	}
}

// Router describes the HTTP router singleton. It is indexed under
// http.Handler so callers can query every handler-shaped singleton.
func Router() component.Descriptor {
	return component.Descriptor{
		Type:       RouterType,
		Role:       component.RoleComponent,
		Scopes:     []component.Scope{component.Singleton},
		Implements: []component.TypeID{HandlerType},
		Constructors: []component.Constructor{{
			Build: func([]any) (any, error) {
				return routing.New(), nil
			},
		}},
	}
}
