package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
)

func TestLineItemTotal(t *testing.T) {
	assert.Equal(t, 250.0, LineItemTotal(2, 125))
	assert.Equal(t, 0.0, LineItemTotal(0, 99.5))
	assert.Equal(t, 181.25, LineItemTotal(1.45, 125))
}

func TestCalculate(t *testing.T) {
	items := []entity.ServiceItem{
		NewItem(2, 1000),
		NewItem(1, 2200),
	}

	p := Calculate(items, 10)

	assert.Equal(t, 4200.0, p.Subtotal)
	assert.Equal(t, 420.0, p.Tax)
	assert.Equal(t, 10.0, p.TaxRate)
	assert.Equal(t, 4620.0, p.Total)
}

func TestCalculateZeroRate(t *testing.T) {
	items := []entity.ServiceItem{NewItem(3, 100)}

	p := Calculate(items, 0)

	assert.Equal(t, 300.0, p.Subtotal)
	assert.Equal(t, 0.0, p.Tax)
	assert.Equal(t, 300.0, p.Total)
}

func TestCalculateEmptyItems(t *testing.T) {
	p := Calculate(nil, 10)

	assert.Equal(t, 0.0, p.Subtotal)
	assert.Equal(t, 0.0, p.Tax)
	assert.Equal(t, 0.0, p.Total)
}

func TestCalculateComposition(t *testing.T) {
	items := []entity.ServiceItem{
		NewItem(2.5, 80.4),
		NewItem(1, 19.99),
	}

	p := Calculate(items, 12.5)

	subtotal := Subtotal(items)
	tax := Tax(subtotal, 12.5)
	assert.Equal(t, subtotal, p.Subtotal)
	assert.Equal(t, tax, p.Tax)
	assert.Equal(t, Total(subtotal, tax), p.Total)
}

func TestSubtotalUsesStoredTotals(t *testing.T) {
	// A stale stored total is trusted until RecalculateItems runs.
	items := []entity.ServiceItem{{Quantity: 2, UnitPrice: 100, TotalPrice: 50}}

	assert.Equal(t, 50.0, Subtotal(items))

	items = RecalculateItems(items)
	assert.Equal(t, 200.0, Subtotal(items))
}

func TestRecalculateItems(t *testing.T) {
	items := []entity.ServiceItem{
		{Quantity: 3, UnitPrice: 110, TotalPrice: 999},
		{Quantity: 0.5, UnitPrice: 200, TotalPrice: 0},
	}

	items = RecalculateItems(items)

	assert.Equal(t, 330.0, items[0].TotalPrice)
	assert.Equal(t, 100.0, items[1].TotalPrice)
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 19.01, RoundCurrency(19.005))
	assert.Equal(t, 10.57, RoundCurrency(10.567))
	assert.Equal(t, 10.56, RoundCurrency(10.564))
	assert.Equal(t, -2.35, RoundCurrency(-2.345))
	assert.Equal(t, 100.0, RoundCurrency(100))
}

func TestRoundCurrencyIdempotent(t *testing.T) {
	for _, v := range []float64{19.005, 1234.5678, 0.004999, 99.999} {
		once := RoundCurrency(v)
		assert.Equal(t, once, RoundCurrency(once))
	}
}

// NewItem builds a line item with a derived total, shorthand for these tests
func NewItem(quantity, unitPrice float64) entity.ServiceItem {
	return entity.ServiceItem{
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: quantity * unitPrice,
	}
}
