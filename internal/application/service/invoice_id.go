package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// GenerateInvoiceID builds the next invoice identifier for the given day:
// "INV-" + YYMMDD + a 3-digit sequence derived from how many invoices with
// that day prefix are already known locally. Server-assigned ids are the
// long-term source of truth; this is a local heuristic and two concurrent
// clients can collide.
func GenerateInvoiceID(now time.Time, existing []entity.Invoice) string {
	prefix := fmt.Sprintf("INV-%s", now.Format("060102"))

	count := 0
	for _, inv := range existing {
		if strings.HasPrefix(inv.ID, prefix) {
			count++
		}
	}

	return fmt.Sprintf("%s%03d", prefix, count+1)
}
