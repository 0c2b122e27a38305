package repository

import (
	"context"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// InvoiceRepository defines the collaborator interface for invoice persistence
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)
	Get(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error)
	Update(ctx context.Context, id string, invoice *entity.Invoice) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
	// DownloadPDF returns the rendered invoice as raw PDF bytes.
	DownloadPDF(ctx context.Context, id string) ([]byte, error)
	// SendEmail dispatches the invoice by email. The call is bounded by the
	// configured email timeout (10s by default) and fails as a timeout error
	// after that.
	SendEmail(ctx context.Context, id string, cfg entity.EmailConfig) error
}
