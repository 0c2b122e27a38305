package service

import (
	"context"
	"sync"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

// fakeInvoiceRepo is an in-memory collaborator double for invoice tests
type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]entity.Invoice

	failAll    error
	sendErr    error
	sentEmails []entity.EmailConfig
	deleted    []string
}

func newFakeInvoiceRepo(seed ...entity.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{invoices: make(map[string]entity.Invoice)}
	for _, inv := range seed {
		r.invoices[inv.ID] = inv
	}
	return r
}

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	inv, ok := r.invoices[id]
	if !ok {
		return nil, apperror.NewAPIError(404, "Not Found", "/invoices/"+id, "")
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.invoices[invoice.ID] = *invoice
	created := *invoice
	return &created, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, id string, invoice *entity.Invoice) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	r.invoices[id] = *invoice
	updated := *invoice
	return &updated, nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return r.failAll
	}
	delete(r.invoices, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeInvoiceRepo) DownloadPDF(ctx context.Context, id string) ([]byte, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	return []byte("%PDF-1.4 " + id), nil
}

func (r *fakeInvoiceRepo) SendEmail(ctx context.Context, id string, cfg entity.EmailConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sendErr != nil {
		return r.sendErr
	}
	r.sentEmails = append(r.sentEmails, cfg)
	return nil
}

// fakeTemplateRepo serves templates by id
type fakeTemplateRepo struct {
	templates map[string]entity.EmailTemplate
}

func (r *fakeTemplateRepo) Get(ctx context.Context, id string) (*entity.EmailTemplate, error) {
	tmpl, ok := r.templates[id]
	if !ok {
		return nil, apperror.NewAPIError(404, "Not Found", "/email_templates/"+id, "")
	}
	return &tmpl, nil
}

// memCache is an in-memory CacheRepository double
type memCache struct {
	mu        sync.Mutex
	invoices  []entity.Invoice
	clients   []entity.ClientData
	providers []entity.ProviderData
	active    *entity.ProviderData
}

func (c *memCache) LoadInvoices(ctx context.Context) ([]entity.Invoice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invoices, nil
}

func (c *memCache) SaveInvoices(ctx context.Context, invoices []entity.Invoice) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invoices = invoices
	return nil
}

func (c *memCache) LoadClients(ctx context.Context) ([]entity.ClientData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clients, nil
}

func (c *memCache) SaveClients(ctx context.Context, clients []entity.ClientData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clients = clients
	return nil
}

func (c *memCache) LoadProviders(ctx context.Context) ([]entity.ProviderData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.providers, nil
}

func (c *memCache) SaveProviders(ctx context.Context, providers []entity.ProviderData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = providers
	return nil
}

func (c *memCache) ActiveProvider(ctx context.Context) (*entity.ProviderData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, nil
}

func (c *memCache) SetActiveProvider(ctx context.Context, provider *entity.ProviderData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = provider
	return nil
}

// staticAuth is a fixed Authorizer
type staticAuth struct {
	authenticated bool
}

func (a staticAuth) IsAuthenticated() bool { return a.authenticated }

// fakeGateway is a scripted SessionGateway
type fakeGateway struct {
	status    *repository.SessionStatus
	checkErr  error
	logoutErr error

	checkCalls  int
	logoutCalls int
}

func (g *fakeGateway) CheckSession(ctx context.Context) (*repository.SessionStatus, error) {
	g.checkCalls++
	if g.checkErr != nil {
		return nil, g.checkErr
	}
	return g.status, nil
}

func (g *fakeGateway) Logout(ctx context.Context) error {
	g.logoutCalls++
	return g.logoutErr
}

func (g *fakeGateway) AuthURL() string {
	return "http://localhost:8080/api/v1/mailer/auth/google"
}

// fakePopup is a scriptable PopupWindow
type fakePopup struct {
	messages chan PopupMessage

	mu         sync.Mutex
	closed     bool
	closeCalls int
}

func newFakePopup() *fakePopup {
	return &fakePopup{messages: make(chan PopupMessage, 4)}
}

func (p *fakePopup) Messages() <-chan PopupMessage { return p.messages }

func (p *fakePopup) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *fakePopup) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.closeCalls = p.closeCalls + 1
}

func (p *fakePopup) setClosed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func (p *fakePopup) timesClosed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeCalls
}

// fakeOpener hands out a prepared popup, or fails like a blocked one
type fakeOpener struct {
	popup   *fakePopup
	openErr error
}

func (o *fakeOpener) Open(ctx context.Context, url string) (PopupWindow, error) {
	if o.openErr != nil {
		return nil, o.openErr
	}
	return o.popup, nil
}
