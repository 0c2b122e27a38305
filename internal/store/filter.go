package store

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/enum"
)

// Filter describes the shelf view over the invoice collection
type Filter struct {
	Status    enum.StatusFilter `json:"status"`
	Query     string            `json:"query"`
	SortBy    enum.SortKey      `json:"sort_by"`
	SortOrder enum.SortOrder    `json:"sort_order"`
}

// DefaultFilter shows everything, newest first
func DefaultFilter() Filter {
	return Filter{
		Status:    enum.StatusFilterAll,
		SortBy:    enum.SortByDate,
		SortOrder: enum.SortDesc,
	}
}

// ApplyFilter derives the filtered, sorted view from a collection snapshot
// and a filter. Pure: the input slice is not modified.
func ApplyFilter(invoices []entity.Invoice, filter Filter, collator *collate.Collator) []entity.Invoice {
	result := make([]entity.Invoice, 0, len(invoices))

	query := strings.ToLower(filter.Query)
	for _, inv := range invoices {
		if !filter.Status.Matches(inv.Status) {
			continue
		}
		if query != "" && !matchesQuery(inv, query) {
			continue
		}
		result = append(result, inv)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return compareInvoices(result[i], result[j], filter, collator) < 0
	})

	return result
}

// matchesQuery checks the identifier, client name, and client email for a
// case-insensitive substring match
func matchesQuery(inv entity.Invoice, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(inv.ID), lowerQuery) ||
		strings.Contains(strings.ToLower(inv.Client.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(inv.Client.Email), lowerQuery)
}

func compareInvoices(a, b entity.Invoice, filter Filter, collator *collate.Collator) int {
	var cmp int

	switch filter.SortBy {
	case enum.SortByAmount:
		switch {
		case a.Pricing.Total < b.Pricing.Total:
			cmp = -1
		case a.Pricing.Total > b.Pricing.Total:
			cmp = 1
		}
	case enum.SortByClient:
		cmp = collator.CompareString(a.Client.Name, b.Client.Name)
	default: // date
		cmp = a.Date.Compare(b.Date.Time)
	}

	if filter.SortOrder == enum.SortDesc {
		cmp = -cmp
	}

	// Equal primary keys fall back to the identifier so the ordering is
	// reproducible across runs.
	if cmp == 0 {
		cmp = strings.Compare(a.ID, b.ID)
	}
	return cmp
}
