package store

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// InvoiceShelf holds the invoice collection together with its filter and
// keeps a derived filtered-and-sorted view. Collection and filter share one
// lock, so the view is always consistent with the most recent pair of inputs.
type InvoiceShelf struct {
	mu       sync.Mutex
	invoices []entity.Invoice
	filter   Filter
	view     []entity.Invoice
	subs     map[int]chan []entity.Invoice
	nextSub  int
	collator *collate.Collator
}

// NewInvoiceShelf creates an empty shelf with the default filter
func NewInvoiceShelf() *InvoiceShelf {
	s := &InvoiceShelf{
		filter:   DefaultFilter(),
		subs:     make(map[int]chan []entity.Invoice),
		collator: collate.New(language.English),
	}
	s.view = ApplyFilter(s.invoices, s.filter, s.collator)
	return s
}

// Filtered returns the current derived view
func (s *InvoiceShelf) Filtered() []entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Invoice, len(s.view))
	copy(out, s.view)
	return out
}

// Filter returns the current filter
func (s *InvoiceShelf) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter swaps the filter and recomputes the view
func (s *InvoiceShelf) SetFilter(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
	s.recompute()
}

// Snapshot returns the full, unfiltered collection
func (s *InvoiceShelf) Snapshot() []entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// Get returns the invoice with the given identifier
func (s *InvoiceShelf) Get(id string) (entity.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return entity.Invoice{}, false
}

// Add inserts the invoice, replacing any entry with the same identifier
func (s *InvoiceShelf) Add(inv entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == inv.ID {
			s.invoices[i] = inv
			s.recompute()
			return
		}
	}
	s.invoices = append(s.invoices, inv)
	s.recompute()
}

// Update replaces the entry with the same identifier
func (s *InvoiceShelf) Update(inv entity.Invoice) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == inv.ID {
			s.invoices[i] = inv
			s.recompute()
			return true
		}
	}
	return false
}

// Remove splices out the invoice with the given identifier
func (s *InvoiceShelf) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			s.recompute()
			return true
		}
	}
	return false
}

// Replace swaps the whole collection for a fresh list
func (s *InvoiceShelf) Replace(invoices []entity.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = make([]entity.Invoice, len(invoices))
	copy(s.invoices, invoices)
	s.recompute()
}

// Subscribe registers for view updates. Each change delivers the freshly
// derived view; slow subscribers only ever miss intermediate states, never
// the latest one. The returned func cancels the subscription.
func (s *InvoiceShelf) Subscribe() (<-chan []entity.Invoice, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan []entity.Invoice, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// recompute derives the view and notifies subscribers. Callers hold s.mu.
func (s *InvoiceShelf) recompute() {
	s.view = ApplyFilter(s.invoices, s.filter, s.collator)
	for _, ch := range s.subs {
		// Keep only the latest view in the buffer.
		select {
		case <-ch:
		default:
		}
		ch <- s.view
	}
}
