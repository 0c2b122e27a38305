package entity

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Party represents either the service provider or the client/customer
type Party struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	ABN     string `json:"abn,omitempty"`
}

// HasRequiredFields reports whether the party carries the fields the backend
// refuses to store without
func (p *Party) HasRequiredFields() bool {
	return p.ID != "" && strings.TrimSpace(p.Name) != ""
}

// ClientData is a Party extended with the billing defaults used when an
// invoice is created for this client
type ClientData struct {
	Party
	TaxRate         float64 `json:"tax_rate"`
	EmailTarget     string  `json:"email_target,omitempty"`
	EmailTemplateID string  `json:"email_template_id,omitempty"`
}

// DefaultEmailTemplateID is assumed when a client carries no template id
const DefaultEmailTemplateID = "default"

// TemplateID returns the client's email template id, defaulting when unset
func (c *ClientData) TemplateID() string {
	if c.EmailTemplateID == "" {
		return DefaultEmailTemplateID
	}
	return c.EmailTemplateID
}

// ProviderData is a Party extended with the payment details printed on
// invoices issued by this provider
type ProviderData struct {
	Party
	Payment PaymentInfo `json:"payment_info"`
}

func (p *ProviderData) HasRequiredFields() bool {
	return p.Party.HasRequiredFields() && p.Payment.HasRequiredFields()
}

// PaymentInfo holds bank transfer details as opaque strings
type PaymentInfo struct {
	Method        string `json:"method"`
	AccountName   string `json:"account_name"`
	BSB           string `json:"bsb"`
	AccountNumber string `json:"account_number"`
}

func (p *PaymentInfo) HasRequiredFields() bool {
	return p.Method != "" && p.AccountName != ""
}

// NewEmptyParty returns a blank party for form editing
func NewEmptyParty() Party {
	return Party{}
}

// GeneratePartyID builds a locally unique party identifier of the form
// {kind}-{millis}-{random}. Server-assigned ids replace these on save.
func GeneratePartyID(kind string) string {
	return fmt.Sprintf("%s-%d-%03d", kind, time.Now().UnixMilli(), rand.Intn(1000))
}

var idUnsafe = regexp.MustCompile(`[^a-z0-9_-]`)
var idUnderscores = regexp.MustCompile(`_+`)

// SanitizeForID lowercases a name and strips everything that is not safe in a
// filename-backed identifier
func SanitizeForID(name string) string {
	s := strings.ToLower(name)
	s = strings.Join(strings.Fields(s), "_")
	s = idUnsafe.ReplaceAllString(s, "")
	return idUnderscores.ReplaceAllString(s, "_")
}
