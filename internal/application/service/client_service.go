package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
	"github.com/invoicehq/invoicer-client/internal/logger"
	"github.com/invoicehq/invoicer-client/internal/store"
	"github.com/invoicehq/invoicer-client/internal/validation"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

// ClientService handles client records
type ClientService struct {
	repo       repository.ClientRepository
	cache      repository.CacheRepository
	collection *store.Collection[entity.ClientData]
	log        zerolog.Logger
}

// NewClientService creates a new client service
func NewClientService(repo repository.ClientRepository, cache repository.CacheRepository) *ClientService {
	return &ClientService{
		repo:       repo,
		cache:      cache,
		collection: store.NewCollection[entity.ClientData](),
		log:        logger.WithComponent("clients"),
	}
}

// Collection exposes the in-memory client collection
func (s *ClientService) Collection() *store.Collection[entity.ClientData] {
	return s.collection
}

// LoadFromCache seeds the collection from the local cache
func (s *ClientService) LoadFromCache(ctx context.Context) {
	clients, err := s.cache.LoadClients(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read client cache")
		return
	}
	if len(clients) > 0 {
		s.collection.Replace(clients)
	}
}

// LoadClients refreshes the collection from the collaborator
func (s *ClientService) LoadClients(ctx context.Context) ([]entity.ClientData, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.collection.Replace(clients)
	s.syncCache(ctx)
	return clients, nil
}

// GetClient returns the client from the local collection, falling back to
// the collaborator
func (s *ClientService) GetClient(ctx context.Context, id string) (*entity.ClientData, error) {
	if client, ok := s.collection.Get(id); ok {
		return &client, nil
	}

	client, err := s.repo.Get(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("client", id)
		}
		return nil, err
	}
	s.collection.Add(*client)
	return client, nil
}

// SaveClient validates and stores a client, creating it when it has no
// identifier yet. New clients get a locally generated id; the collaborator's
// assignment wins once it responds.
func (s *ClientService) SaveClient(ctx context.Context, client entity.ClientData) (*entity.ClientData, validation.Result, error) {
	creating := client.ID == ""
	if creating {
		client.ID = entity.GeneratePartyID("client")
	}

	if result := validation.ValidateParty(client.Party, "client"); !result.IsValid {
		return nil, result, nil
	}

	var (
		saved *entity.ClientData
		err   error
	)
	if creating {
		saved, err = s.repo.Create(ctx, &client)
	} else {
		saved, err = s.repo.Update(ctx, client.ID, &client)
	}
	if err != nil {
		return nil, validation.Result{IsValid: true}, err
	}

	s.collection.Add(*saved)
	s.syncCache(ctx)
	return saved, validation.Result{IsValid: true}, nil
}

// DeleteClient removes the client locally first, then tells the collaborator
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	s.collection.Remove(id)
	s.syncCache(ctx)
	return s.repo.Delete(ctx, id)
}

// SearchClients filters the local collection by a case-insensitive substring
// over name, email, and ABN
func (s *ClientService) SearchClients(query string) []entity.ClientData {
	clients := s.collection.Snapshot()
	if query == "" {
		return clients
	}

	lower := strings.ToLower(query)
	matched := make([]entity.ClientData, 0, len(clients))
	for _, client := range clients {
		if strings.Contains(strings.ToLower(client.Name), lower) ||
			strings.Contains(strings.ToLower(client.Email), lower) ||
			strings.Contains(client.ABN, query) {
			matched = append(matched, client)
		}
	}
	return matched
}

func (s *ClientService) syncCache(ctx context.Context) {
	if err := s.cache.SaveClients(ctx, s.collection.Snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("failed to write client cache")
	}
}
