// Package api provides the HTTP API for the application
package api

import (
	"hearth/internal/platform/config"
	"hearth/internal/platform/logger"
	phttp "hearth/internal/platform/net/http"
	"hearth/internal/platform/store"

	"hearth/internal/modkit"
	"hearth/internal/modkit/httpkit"
	"hearth/internal/modkit/module"
	"hearth/internal/modkit/swaggerkit"

	metamod "hearth/internal/services/api/meta/module"
	fammod "hearth/internal/services/families/module"
	impmod "hearth/internal/services/imports/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct families first and extract its stored-label port
	families := fammod.New(deps)
	labels := module.MustPortsOf[fammod.LabelsPort](families)

	// Inject the label surface into the imports module
	imports := impmod.New(
		deps,
		modkit.WithPorts(impmod.Ports{
			Labels: labels,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		families,
		imports,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
