package api

import (
	"context"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// ClientAPI exposes the /clients resource
type ClientAPI struct {
	*Client
}

// Clients returns the client-resource view of the API client
func (c *Client) Clients() *ClientAPI {
	return &ClientAPI{Client: c}
}

func (a *ClientAPI) List(ctx context.Context) ([]entity.ClientData, error) {
	var clients []entity.ClientData
	if err := a.get(ctx, "/clients", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (a *ClientAPI) Get(ctx context.Context, id string) (*entity.ClientData, error) {
	var client entity.ClientData
	if err := a.get(ctx, "/clients/"+id, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (a *ClientAPI) Create(ctx context.Context, client *entity.ClientData) (*entity.ClientData, error) {
	var created entity.ClientData
	if err := a.post(ctx, "/clients", client, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *ClientAPI) Update(ctx context.Context, id string, client *entity.ClientData) (*entity.ClientData, error) {
	var updated entity.ClientData
	if err := a.put(ctx, "/clients/"+id, client, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *ClientAPI) Delete(ctx context.Context, id string) error {
	return a.delete(ctx, "/clients/"+id)
}

// ProviderAPI exposes the /providers resource
type ProviderAPI struct {
	*Client
}

// Providers returns the provider-resource view of the API client
func (c *Client) Providers() *ProviderAPI {
	return &ProviderAPI{Client: c}
}

func (a *ProviderAPI) List(ctx context.Context) ([]entity.ProviderData, error) {
	var providers []entity.ProviderData
	if err := a.get(ctx, "/providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (a *ProviderAPI) Get(ctx context.Context, id string) (*entity.ProviderData, error) {
	var provider entity.ProviderData
	if err := a.get(ctx, "/providers/"+id, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}

func (a *ProviderAPI) Create(ctx context.Context, provider *entity.ProviderData) (*entity.ProviderData, error) {
	var created entity.ProviderData
	if err := a.post(ctx, "/providers", provider, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *ProviderAPI) Update(ctx context.Context, id string, provider *entity.ProviderData) (*entity.ProviderData, error) {
	var updated entity.ProviderData
	if err := a.put(ctx, "/providers/"+id, provider, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *ProviderAPI) Delete(ctx context.Context, id string) error {
	return a.delete(ctx, "/providers/"+id)
}
