package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/enum"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
	"github.com/invoicehq/invoicer-client/internal/logger"
	"github.com/invoicehq/invoicer-client/internal/pricing"
	"github.com/invoicehq/invoicer-client/internal/store"
	"github.com/invoicehq/invoicer-client/internal/validation"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
	"github.com/invoicehq/invoicer-client/pkg/format"
)

// Authorizer gates privileged actions on a confirmed session
type Authorizer interface {
	IsAuthenticated() bool
}

// InvoiceService handles invoice operations: loading, editing with derived
// pricing, deletion, and the email/PDF actions
type InvoiceService struct {
	repo      repository.InvoiceRepository
	templates repository.EmailTemplateRepository
	cache     repository.CacheRepository
	shelf     *store.InvoiceShelf
	auth      Authorizer
	now       func() time.Time
	log       zerolog.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	repo repository.InvoiceRepository,
	templates repository.EmailTemplateRepository,
	cache repository.CacheRepository,
	shelf *store.InvoiceShelf,
	auth Authorizer,
) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		templates: templates,
		cache:     cache,
		shelf:     shelf,
		auth:      auth,
		now:       time.Now,
		log:       logger.WithComponent("invoices"),
	}
}

// Shelf exposes the reactive invoice view
func (s *InvoiceService) Shelf() *store.InvoiceShelf {
	return s.shelf
}

// LoadFromCache seeds the shelf from the local cache so the view renders
// before the first collaborator round trip
func (s *InvoiceService) LoadFromCache(ctx context.Context) {
	invoices, err := s.cache.LoadInvoices(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read invoice cache")
		return
	}
	if len(invoices) > 0 {
		s.shelf.Replace(invoices)
	}
}

// LoadInvoices refreshes the working set from the collaborator
func (s *InvoiceService) LoadInvoices(ctx context.Context) ([]entity.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.shelf.Replace(invoices)
	s.syncCache(ctx)
	return invoices, nil
}

// GetInvoice returns the invoice from the local collection, falling back to
// the collaborator
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	if inv, ok := s.shelf.Get(id); ok {
		return &inv, nil
	}

	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFoundError("invoice", id)
		}
		return nil, err
	}
	s.shelf.Add(*inv)
	return inv, nil
}

// NextInvoiceID derives a new identifier from today's date and the local
// collection
func (s *InvoiceService) NextInvoiceID() string {
	return GenerateInvoiceID(s.now(), s.shelf.Snapshot())
}

// CreateInvoice validates and stores a new invoice. Item totals and pricing
// are rederived before validation so no entered totals survive. A failed
// validation is returned as data, not as an error.
func (s *InvoiceService) CreateInvoice(ctx context.Context, inv entity.Invoice) (*entity.Invoice, validation.Result, error) {
	inv.Items = pricing.RecalculateItems(inv.Items)
	inv.Pricing = pricing.Calculate(inv.Items, inv.Pricing.TaxRate)
	if inv.ID == "" {
		inv.ID = s.NextInvoiceID()
	}
	if inv.Status == "" {
		inv.Status = enum.InvoiceStatusDraft
	}

	if result := validation.ValidateInvoice(inv); !result.IsValid {
		return nil, result, nil
	}

	created, err := s.repo.Create(ctx, &inv)
	if err != nil {
		return nil, validation.Result{IsValid: true}, err
	}
	s.shelf.Add(*created)
	s.syncCache(ctx)
	return created, validation.Result{IsValid: true}, nil
}

// UpdateInvoice validates and stores changes to an invoice, rederiving item
// totals and pricing first
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, inv entity.Invoice) (*entity.Invoice, validation.Result, error) {
	inv.ID = id
	inv.Items = pricing.RecalculateItems(inv.Items)
	inv.Pricing = pricing.Calculate(inv.Items, inv.Pricing.TaxRate)

	if result := validation.ValidateInvoice(inv); !result.IsValid {
		return nil, result, nil
	}

	updated, err := s.repo.Update(ctx, id, &inv)
	if err != nil {
		return nil, validation.Result{IsValid: true}, err
	}
	s.shelf.Update(*updated)
	s.syncCache(ctx)
	return updated, validation.Result{IsValid: true}, nil
}

// DeleteInvoice removes the invoice from the local collection immediately,
// then tells the collaborator. The optimistic removal is kept even when the
// collaborator call fails.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	s.shelf.Remove(id)
	s.syncCache(ctx)
	return s.repo.Delete(ctx, id)
}

// MarkSent performs the one-way draft to send transition
func (s *InvoiceService) MarkSent(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.Status.CanTransitionTo(enum.InvoiceStatusSend) {
		return inv, nil
	}

	inv.Status = enum.InvoiceStatusSend
	updated, err := s.repo.Update(ctx, id, inv)
	if err != nil {
		return nil, err
	}
	s.shelf.Update(*updated)
	s.syncCache(ctx)
	return updated, nil
}

// SetFilter updates the shelf filter; the derived view recomputes atomically
func (s *InvoiceService) SetFilter(filter store.Filter) {
	s.shelf.SetFilter(filter)
}

// Filtered returns the current derived view
func (s *InvoiceService) Filtered() []entity.Invoice {
	return s.shelf.Filtered()
}

// DownloadPDF fetches the rendered invoice
func (s *InvoiceService) DownloadPDF(ctx context.Context, id string) ([]byte, error) {
	return s.repo.DownloadPDF(ctx, id)
}

// SendEmail dispatches the invoice by email. The action is gated on an
// authenticated mailer session; the email config is validated first and a
// failed validation is returned as data.
func (s *InvoiceService) SendEmail(ctx context.Context, id string, cfg entity.EmailConfig) (validation.Result, error) {
	if !s.auth.IsAuthenticated() {
		return validation.Result{IsValid: true}, apperror.ErrNotAuthorized
	}

	if result := validation.ValidateEmailConfig(cfg); !result.IsValid {
		return result, nil
	}

	return validation.Result{IsValid: true}, s.repo.SendEmail(ctx, id, cfg)
}

// BuildEmailConfig fetches the invoice's email template and interpolates its
// {{key}} placeholders from invoice fields. The recipient falls back from the
// invoice's explicit target to the client's email.
func (s *InvoiceService) BuildEmailConfig(ctx context.Context, inv *entity.Invoice) (*entity.EmailConfig, error) {
	templateID := inv.EmailTemplateID
	if templateID == "" {
		templateID = entity.DefaultEmailTemplateID
	}

	tmpl, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	vars := map[string]string{
		"invoice_id":     inv.ID,
		"provider_name":  inv.Provider.Name,
		"provider_email": inv.Provider.Email,
		"client_name":    inv.Client.Name,
		"total":          format.Currency(pricing.RoundCurrency(inv.Pricing.Total)),
		"due_date":       inv.Due.String(),
	}

	target := inv.EmailTarget
	if target == "" {
		target = inv.Client.Email
	}

	cfg := &entity.EmailConfig{
		Subject: format.EmailTemplate(tmpl.Subject, vars),
		Body:    format.EmailTemplate(tmpl.Body, vars),
	}
	if target != "" {
		cfg.To = []string{target}
	}
	return cfg, nil
}

// syncCache writes the current collection through to the local cache
func (s *InvoiceService) syncCache(ctx context.Context) {
	if err := s.cache.SaveInvoices(ctx, s.shelf.Snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("failed to write invoice cache")
	}
}
