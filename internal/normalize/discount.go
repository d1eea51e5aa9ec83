package normalize

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountedUnitPrice computes retail × (1 − discountPct/100), rounded
// half-up to two decimals. The computation runs in exact decimal arithmetic
// so that emitted prices reconcile against the invoice's printed totals.
func DiscountedUnitPrice(retail, discountPct float64) float64 {
	r := decimal.NewFromFloat(retail)
	d := decimal.NewFromFloat(discountPct)
	net := r.Mul(decimal.NewFromInt(1).Sub(d.Div(hundred)))
	v, _ := net.Round(2).Float64()
	return v
}
