package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	return c
}

func TestCacheRoundTripsInvoices(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	invoices := []entity.Invoice{{ID: "INV-251103001", Client: entity.Party{Name: "Globex"}}}
	require.NoError(t, c.SaveInvoices(ctx, invoices))

	loaded, err := c.LoadInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Globex", loaded[0].Client.Name)
}

func TestCacheMissingKeyIsEmpty(t *testing.T) {
	c := newTestCache(t)

	loaded, err := c.LoadInvoices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestCacheOverwritesCollection(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SaveClients(ctx, []entity.ClientData{
		{Party: entity.Party{ID: "client-1", Name: "Globex"}},
		{Party: entity.Party{ID: "client-2", Name: "Acme"}},
	}))
	require.NoError(t, c.SaveClients(ctx, []entity.ClientData{
		{Party: entity.Party{ID: "client-2", Name: "Acme"}},
	}))

	loaded, err := c.LoadClients(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Acme", loaded[0].Name)
}

func TestCacheActiveProvider(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	active, err := c.ActiveProvider(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	provider := &entity.ProviderData{Party: entity.Party{ID: "provider-1", Name: "Acme Services"}}
	require.NoError(t, c.SetActiveProvider(ctx, provider))

	active, err = c.ActiveProvider(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "provider-1", active.ID)

	// Passing nil clears the selection.
	require.NoError(t, c.SetActiveProvider(ctx, nil))
	active, err = c.ActiveProvider(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}
