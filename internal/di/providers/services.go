package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookhavenapp/bookhaven-web/internal/config"
	"github.com/bookhavenapp/bookhaven-web/internal/library"
	"github.com/bookhavenapp/bookhaven-web/internal/logger"
	"github.com/bookhavenapp/bookhaven-web/internal/service"
)

// ProvideLibraryClient provides the library API client.
func ProvideLibraryClient(i do.Injector) (*library.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return library.New(library.Config{
		BaseURL:           cfg.Library.BaseURL,
		Timeout:           cfg.Library.Timeout,
		RequestsPerSecond: cfg.Library.RequestsPerSecond,
		Burst:             cfg.Library.Burst,
		Logger:            log.Logger,
	}), nil
}

// ProvideCatalogService provides the catalog orchestration service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	client := do.MustInvoke[*library.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(client, log.Logger, cfg.Session.CurrentUserID), nil
}
