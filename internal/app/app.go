// Package app wires the client together: configuration, logging, the local
// cache, the backend API client, and the application services. All state
// lives in the App value handed to the commands; nothing is package-global.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/invoicehq/invoicer-client/internal/application/service"
	"github.com/invoicehq/invoicer-client/internal/config"
	"github.com/invoicehq/invoicer-client/internal/infrastructure/api"
	"github.com/invoicehq/invoicer-client/internal/infrastructure/cache"
	"github.com/invoicehq/invoicer-client/internal/infrastructure/popup"
	"github.com/invoicehq/invoicer-client/internal/logger"
	"github.com/invoicehq/invoicer-client/internal/store"
)

// App holds the assembled client
type App struct {
	Config *config.Config
	API    *api.Client

	Auth      *service.AuthService
	Invoices  *service.InvoiceService
	Clients   *service.ClientService
	Providers *service.ProviderService

	log zerolog.Logger
}

// New loads configuration and builds the service graph
func New() (*App, error) {
	cfg := config.Load()
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	localCache, err := cache.New(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(&cfg.API)
	origin := cfg.API.Origin()

	auth := service.NewAuthService(client, popup.NewOpener(origin), origin)
	shelf := store.NewInvoiceShelf()

	return &App{
		Config:    cfg,
		API:       client,
		Auth:      auth,
		Invoices:  service.NewInvoiceService(client, client.EmailTemplates(), localCache, shelf, auth),
		Clients:   service.NewClientService(client.Clients(), localCache),
		Providers: service.NewProviderService(client.Providers(), localCache),
		log:       logger.WithComponent("app"),
	}, nil
}

// Bootstrap seeds every collection from the local cache and then refreshes
// from the collaborator. Cache reads never fail the startup; collaborator
// failures are logged and the cached working set stands.
func (a *App) Bootstrap(ctx context.Context) {
	a.Invoices.LoadFromCache(ctx)
	a.Clients.LoadFromCache(ctx)
	a.Providers.LoadFromCache(ctx)

	if _, err := a.Invoices.LoadInvoices(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not refresh invoices, using cached data")
	}
	if _, err := a.Clients.LoadClients(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not refresh clients, using cached data")
	}
	if _, err := a.Providers.LoadProviders(ctx); err != nil {
		a.log.Warn().Err(err).Msg("could not refresh providers, using cached data")
	}
}
