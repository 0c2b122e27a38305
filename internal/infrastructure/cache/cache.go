// Package cache persists the working set to a local sqlite file, keyed the
// way the backend keys its resources. It is the client-side analogue of the
// browser's storage: one writer assumed, concurrent processes race.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

const (
	keyInvoices       = "invoices"
	keyClients        = "clients"
	keyProviders      = "providers"
	keyActiveProvider = "active_provider"
)

// entry is one cached collection, stored as a JSON blob to stay oblivious to
// entity shape changes
type entry struct {
	Key       string `gorm:"primaryKey;size:32"`
	Data      []byte
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "cache_entries"
}

// Cache implements repository.CacheRepository on a sqlite file
type Cache struct {
	db *gorm.DB
}

// New opens (or creates) the cache database at the given path
func New(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) load(ctx context.Context, key string, out any) (bool, error) {
	var e entry
	err := c.db.WithContext(ctx).First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.db.WithContext(ctx).Save(&entry{Key: key, Data: data, UpdatedAt: time.Now()}).Error
}

func (c *Cache) LoadInvoices(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if _, err := c.load(ctx, keyInvoices, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *Cache) SaveInvoices(ctx context.Context, invoices []entity.Invoice) error {
	return c.save(ctx, keyInvoices, invoices)
}

func (c *Cache) LoadClients(ctx context.Context) ([]entity.ClientData, error) {
	var clients []entity.ClientData
	if _, err := c.load(ctx, keyClients, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Cache) SaveClients(ctx context.Context, clients []entity.ClientData) error {
	return c.save(ctx, keyClients, clients)
}

func (c *Cache) LoadProviders(ctx context.Context) ([]entity.ProviderData, error) {
	var providers []entity.ProviderData
	if _, err := c.load(ctx, keyProviders, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *Cache) SaveProviders(ctx context.Context, providers []entity.ProviderData) error {
	return c.save(ctx, keyProviders, providers)
}

func (c *Cache) ActiveProvider(ctx context.Context) (*entity.ProviderData, error) {
	var provider entity.ProviderData
	found, err := c.load(ctx, keyActiveProvider, &provider)
	if err != nil || !found {
		return nil, err
	}
	if provider.ID == "" {
		// Corrupt or pre-id cache entry; treat as unset.
		return nil, nil
	}
	return &provider, nil
}

func (c *Cache) SetActiveProvider(ctx context.Context, provider *entity.ProviderData) error {
	if provider == nil {
		return c.db.WithContext(ctx).Delete(&entry{}, "key = ?", keyActiveProvider).Error
	}
	return c.save(ctx, keyActiveProvider, provider)
}
