package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
	"github.com/invoicehq/invoicer-client/internal/logger"
	"github.com/invoicehq/invoicer-client/internal/store"
	"github.com/invoicehq/invoicer-client/internal/validation"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

// ProviderService handles provider records and the active-provider selection
// used when drafting new invoices
type ProviderService struct {
	repo       repository.ProviderRepository
	cache      repository.CacheRepository
	collection *store.Collection[entity.ProviderData]
	log        zerolog.Logger
}

// NewProviderService creates a new provider service
func NewProviderService(repo repository.ProviderRepository, cache repository.CacheRepository) *ProviderService {
	return &ProviderService{
		repo:       repo,
		cache:      cache,
		collection: store.NewCollection[entity.ProviderData](),
		log:        logger.WithComponent("providers"),
	}
}

// Collection exposes the in-memory provider collection
func (s *ProviderService) Collection() *store.Collection[entity.ProviderData] {
	return s.collection
}

// LoadFromCache seeds the collection from the local cache
func (s *ProviderService) LoadFromCache(ctx context.Context) {
	providers, err := s.cache.LoadProviders(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read provider cache")
		return
	}
	if len(providers) > 0 {
		s.collection.Replace(providers)
	}
}

// LoadProviders refreshes the collection from the collaborator
func (s *ProviderService) LoadProviders(ctx context.Context) ([]entity.ProviderData, error) {
	providers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.collection.Replace(providers)
	s.syncCache(ctx)
	return providers, nil
}

// GetProvider returns the provider from the local collection, falling back
// to the collaborator
func (s *ProviderService) GetProvider(ctx context.Context, id string) (*entity.ProviderData, error) {
	if provider, ok := s.collection.Get(id); ok {
		return &provider, nil
	}

	provider, err := s.repo.Get(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("provider", id)
		}
		return nil, err
	}
	s.collection.Add(*provider)
	return provider, nil
}

// SaveProvider validates and stores a provider
func (s *ProviderService) SaveProvider(ctx context.Context, provider entity.ProviderData) (*entity.ProviderData, validation.Result, error) {
	creating := provider.ID == ""
	if creating {
		provider.ID = entity.GeneratePartyID("provider")
	}

	if result := validation.ValidateParty(provider.Party, "provider"); !result.IsValid {
		return nil, result, nil
	}

	var (
		saved *entity.ProviderData
		err   error
	)
	if creating {
		saved, err = s.repo.Create(ctx, &provider)
	} else {
		saved, err = s.repo.Update(ctx, provider.ID, &provider)
	}
	if err != nil {
		return nil, validation.Result{IsValid: true}, err
	}

	s.collection.Add(*saved)
	s.syncCache(ctx)
	return saved, validation.Result{IsValid: true}, nil
}

// DeleteProvider removes the provider locally first, then tells the
// collaborator. A deleted active provider is cleared from the cache.
func (s *ProviderService) DeleteProvider(ctx context.Context, id string) error {
	s.collection.Remove(id)
	s.syncCache(ctx)

	if active, err := s.cache.ActiveProvider(ctx); err == nil && active != nil && active.ID == id {
		if err := s.cache.SetActiveProvider(ctx, nil); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear active provider")
		}
	}

	return s.repo.Delete(ctx, id)
}

// ActiveProvider returns the persisted provider selection, validated against
// the collaborator. A selection that no longer exists server-side is cleared.
func (s *ProviderService) ActiveProvider(ctx context.Context) (*entity.ProviderData, error) {
	cached, err := s.cache.ActiveProvider(ctx)
	if err != nil || cached == nil {
		return nil, err
	}

	provider, err := s.GetProvider(ctx, cached.ID)
	if err != nil {
		if apperror.IsNotFound(err) {
			if clearErr := s.cache.SetActiveProvider(ctx, nil); clearErr != nil {
				s.log.Warn().Err(clearErr).Msg("failed to clear stale active provider")
			}
			return nil, nil
		}
		// Collaborator unreachable; fall back to the cached copy.
		return cached, nil
	}
	return provider, nil
}

// SetActiveProvider persists the provider selection
func (s *ProviderService) SetActiveProvider(ctx context.Context, id string) (*entity.ProviderData, error) {
	provider, err := s.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetActiveProvider(ctx, provider); err != nil {
		return nil, err
	}
	return provider, nil
}

func (s *ProviderService) syncCache(ctx context.Context) {
	if err := s.cache.SaveProviders(ctx, s.collection.Snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("failed to write provider cache")
	}
}
