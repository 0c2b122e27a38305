package repository

import (
	"context"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// CacheRepository persists the working set between runs so the shelf renders
// before the first collaborator round trip. The cache is a single-writer
// resource: concurrent processes race with read-modify-write semantics and no
// locking, which is an accepted limitation.
type CacheRepository interface {
	LoadInvoices(ctx context.Context) ([]entity.Invoice, error)
	SaveInvoices(ctx context.Context, invoices []entity.Invoice) error
	LoadClients(ctx context.Context) ([]entity.ClientData, error)
	SaveClients(ctx context.Context, clients []entity.ClientData) error
	LoadProviders(ctx context.Context) ([]entity.ProviderData, error)
	SaveProviders(ctx context.Context, providers []entity.ProviderData) error
	// ActiveProvider returns the persisted provider selection, or nil when
	// none was stored. Callers must validate it against the collaborator.
	ActiveProvider(ctx context.Context) (*entity.ProviderData, error)
	SetActiveProvider(ctx context.Context, provider *entity.ProviderData) error
}
