// Package module wires imports into the API using modkit
package module

import (
	"context"
	"net/http"

	modkit "hearth/internal/modkit"
	"hearth/internal/modkit/httpkit"
	"hearth/internal/modkit/repokit"
	str "hearth/internal/platform/strings"
	imphttp "hearth/internal/services/imports/http"
	imprepo "hearth/internal/services/imports/repo"
	impsvc "hearth/internal/services/imports/service"
)

// Module implements the imports module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc impsvc.Service
}

// New constructs the imports module. The families module owns the stored
// label surface, so its port must be injected by the caller
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("imports"),
		modkit.WithPrefix("/imports"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Labels == nil {
		panic("imports module requires Labels port (from services/families)")
	}

	// commit batches run inside one tx; bound them so a stuck batch cannot
	// hold locks on families/people indefinitely
	db := repokit.WithBeginHooks(deps.PG, func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, `SET LOCAL statement_timeout = '30s'`)
		return err
	})

	svc := impsvc.New(db, imprepo.NewPG(), injected.Labels, deps.CH, impsvc.Config{})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptImportsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		imphttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
