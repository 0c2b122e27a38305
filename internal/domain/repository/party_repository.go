package repository

import (
	"context"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// ClientRepository defines the collaborator interface for client records
type ClientRepository interface {
	List(ctx context.Context) ([]entity.ClientData, error)
	Get(ctx context.Context, id string) (*entity.ClientData, error)
	Create(ctx context.Context, client *entity.ClientData) (*entity.ClientData, error)
	Update(ctx context.Context, id string, client *entity.ClientData) (*entity.ClientData, error)
	Delete(ctx context.Context, id string) error
}

// ProviderRepository defines the collaborator interface for provider records
type ProviderRepository interface {
	List(ctx context.Context) ([]entity.ProviderData, error)
	Get(ctx context.Context, id string) (*entity.ProviderData, error)
	Create(ctx context.Context, provider *entity.ProviderData) (*entity.ProviderData, error)
	Update(ctx context.Context, id string, provider *entity.ProviderData) (*entity.ProviderData, error)
	Delete(ctx context.Context, id string) error
}

// EmailTemplateRepository fetches email templates by id
type EmailTemplateRepository interface {
	Get(ctx context.Context, id string) (*entity.EmailTemplate, error)
}
