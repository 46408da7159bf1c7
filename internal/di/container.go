// Package di provides dependency injection configuration for the BookHaven web UI.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookhavenapp/bookhaven-web/internal/config"
	"github.com/bookhavenapp/bookhaven-web/internal/di/providers"
	"github.com/bookhavenapp/bookhaven-web/internal/library"
	"github.com/bookhavenapp/bookhaven-web/internal/logger"
	"github.com/bookhavenapp/bookhaven-web/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Library API client
	do.Provide(injector, providers.ProvideLibraryClient)

	// Business services
	do.Provide(injector, providers.ProvideCatalogService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap eagerly initializes every service so configuration problems
// surface at startup instead of on the first page load.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*library.Client](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
