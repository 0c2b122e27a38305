package entity

import (
	"github.com/invoicehq/invoicer-client/internal/domain/enum"
)

// ServiceItem represents a single line item in an invoice
type ServiceItem struct {
	Date              Date    `json:"date"`
	Description       string  `json:"description"`
	DescriptionDetail string  `json:"description_detail,omitempty"`
	Quantity          float64 `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	TotalPrice        float64 `json:"total_price"`
}

// NewServiceItem creates a line item with its total derived from quantity and
// unit price
func NewServiceItem(date Date, description string, quantity, unitPrice float64) ServiceItem {
	return ServiceItem{
		Date:        date,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  quantity * unitPrice,
	}
}

// NewEmptyServiceItem returns a line item with form defaults
func NewEmptyServiceItem() ServiceItem {
	return ServiceItem{
		Date:     Today(),
		Quantity: 1,
	}
}

// Pricing holds the derived pricing breakdown of an invoice. It is never
// patched field by field; every item or tax-rate mutation recomputes it whole.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	TaxRate  float64 `json:"tax_rate"`
	Total    float64 `json:"total"`
}

// Invoice is the core domain model
type Invoice struct {
	ID              string             `json:"id"`
	Status          enum.InvoiceStatus `json:"status"`
	Date            Date               `json:"date"`
	Due             Date               `json:"due"`
	Provider        Party              `json:"provider"`
	Client          Party              `json:"client"`
	Items           []ServiceItem      `json:"items"`
	Pricing         Pricing            `json:"pricing"`
	Payment         PaymentInfo        `json:"payment"`
	EmailTarget     string             `json:"email_target,omitempty"`
	EmailTemplateID string             `json:"email_template_id,omitempty"`
}

// EntityID implements the store key for invoices
func (inv Invoice) EntityID() string { return inv.ID }

// EntityID implements the store key for clients
func (c ClientData) EntityID() string { return c.ID }

// EntityID implements the store key for providers
func (p ProviderData) EntityID() string { return p.ID }
