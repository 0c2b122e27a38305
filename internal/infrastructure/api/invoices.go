package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

// List retrieves all invoices
func (c *Client) List(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if err := c.get(ctx, "/invoices", &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Get retrieves a single invoice by id
func (c *Client) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := c.get(ctx, "/invoices/"+id, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create stores a new invoice
func (c *Client) Create(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	var created entity.Invoice
	if err := c.post(ctx, "/invoices", invoice, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update stores changes to an existing invoice
func (c *Client) Update(ctx context.Context, id string, invoice *entity.Invoice) (*entity.Invoice, error) {
	var updated entity.Invoice
	if err := c.put(ctx, "/invoices/"+id, invoice, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an invoice
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.delete(ctx, "/invoices/"+id)
}

// DownloadPDF fetches the rendered invoice PDF
func (c *Client) DownloadPDF(ctx context.Context, id string) ([]byte, error) {
	return c.getBytes(ctx, fmt.Sprintf("/invoices/%s/pdf", id))
}

// SendEmail dispatches the invoice by email. The backend renders the PDF and
// talks SMTP, so this call gets its own deadline instead of the default one.
func (c *Client) SendEmail(ctx context.Context, id string, cfg entity.EmailConfig) error {
	ctx, cancel := context.WithTimeout(ctx, c.emailTimeout)
	defer cancel()

	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/invoices/%s/email", id), cfg, nil)
	if err != nil && isTimeout(err) {
		return fmt.Errorf("%w after %s", apperror.ErrEmailTimeout, c.emailTimeout.Round(time.Second))
	}
	return err
}
