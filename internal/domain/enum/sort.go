package enum

// SortKey selects the primary comparator for the invoice shelf
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByClient SortKey = "client"
)

// SortOrder selects the comparator direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// StatusFilter narrows the shelf to a single status, or shows everything
type StatusFilter string

const (
	StatusFilterAll   StatusFilter = "all"
	StatusFilterDraft StatusFilter = "draft"
	StatusFilterSend  StatusFilter = "send"
)

// Matches reports whether an invoice status passes the filter
func (f StatusFilter) Matches(status InvoiceStatus) bool {
	return f == StatusFilterAll || f == "" || string(f) == string(status)
}
