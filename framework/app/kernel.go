package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-components/framework/component"
	"github.com/km-arc/go-components/framework/components"
	"github.com/km-arc/go-components/framework/config"
	"github.com/km-arc/go-components/framework/routing"
)

// Application is the composition root: it owns the catalog of component
// descriptors, builds the registry exactly once, and runs the HTTP server.
type Application struct {
	catalog  *component.Catalog
	registry *component.Registry
}

// New creates an application with the stock framework components
// (config, router) already registered.
func New(envFiles ...string) *Application {
	catalog := component.NewCatalog()
	catalog.Register(
		components.Config(envFiles...),
		components.Router(),
	)
	return &Application{catalog: catalog}
}

// Register adds application component descriptors to the catalog.
// Must be called before Build.
func (a *Application) Register(descriptors ...component.Descriptor) *Application {
	a.catalog.Register(descriptors...)
	return a
}

// Build materializes the component graph. It may be called once; any
// validation, cycle, or construction error is returned as-is and leaves
// the application without a registry.
func (a *Application) Build(prefixes ...string) error {
	if a.registry != nil {
		return fmt.Errorf("app: already built")
	}
	registry, err := component.Build(a.catalog, prefixes...)
	if err != nil {
		return err
	}
	a.registry = registry
	return nil
}

// Registry returns the built registry, or nil before Build.
func (a *Application) Registry() *component.Registry { return a.registry }

// Config returns the configuration singleton. Valid only after Build.
func (a *Application) Config() *config.Config {
	cfg, _ := component.Lookup[*config.Config](a.registry, components.ConfigType)
	return cfg
}

// Router returns the router singleton. Valid only after Build.
func (a *Application) Router() *routing.Router {
	r, _ := component.Lookup[*routing.Router](a.registry, components.RouterType)
	return r
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }

// Run builds the graph if needed and starts the HTTP server.
func (a *Application) Run() {
	if a.registry == nil {
		if err := a.Build(); err != nil {
			log.Fatalf("app: build failed: %v", err)
		}
	}
	cfg := a.Config()
	addr := cfg.Addr()
	fmt.Printf("%s running on http://localhost%s  [%s]\n", cfg.App.Name, addr, cfg.App.Env)
	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
