// Package pricing computes invoice totals. Every function is pure; callers
// own when and whether to round.
package pricing

import (
	"math"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

// LineItemTotal computes the total price for a single line item
func LineItemTotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// Subtotal sums the stored total of each item. It does not recompute item
// totals; callers must keep them current via RecalculateItems.
func Subtotal(items []entity.ServiceItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.TotalPrice
	}
	return sum
}

// Tax computes the tax amount from a subtotal and a percentage rate
func Tax(subtotal, taxRate float64) float64 {
	return subtotal * (taxRate / 100)
}

// Total computes the invoice total
func Total(subtotal, tax float64) float64 {
	return subtotal + tax
}

// Calculate composes the full pricing breakdown from items and a tax rate.
// No rounding is applied; use RoundCurrency at presentation boundaries.
func Calculate(items []entity.ServiceItem, taxRate float64) entity.Pricing {
	subtotal := Subtotal(items)
	tax := Tax(subtotal, taxRate)
	return entity.Pricing{
		Subtotal: subtotal,
		Tax:      tax,
		TaxRate:  taxRate,
		Total:    Total(subtotal, tax),
	}
}

// RecalculateItems rewrites every item total from its quantity and unit
// price, so no stale total survives an edit
func RecalculateItems(items []entity.ServiceItem) []entity.ServiceItem {
	for i := range items {
		items[i].TotalPrice = LineItemTotal(items[i].Quantity, items[i].UnitPrice)
	}
	return items
}

// RoundCurrency rounds to 2 decimal places, half away from zero
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
