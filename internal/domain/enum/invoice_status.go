package enum

// InvoiceStatus represents the lifecycle state of an invoice on the wire
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSend  InvoiceStatus = "send"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known wire values
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusSend
}

// CanTransitionTo reports whether the transition is allowed. The only defined
// transition is draft to send; there is no way back.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	return s == InvoiceStatusDraft && next == InvoiceStatusSend
}
