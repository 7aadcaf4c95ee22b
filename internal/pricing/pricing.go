// Package pricing holds the discount arithmetic shared by the cart and the
// checkout. Amounts stay unrounded while they accumulate; callers round
// with Round2 at the presentation boundary only.
package pricing

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// EffectivePrice applies a percent discount to a unit price. A zero
// discount returns the price unchanged. Out-of-range percentages are not
// validated here and pass through.
func EffectivePrice(unit decimal.Decimal, discountPercent float64) decimal.Decimal {
	if discountPercent == 0 {
		return unit
	}
	d := decimal.NewFromFloat(discountPercent)
	return unit.Mul(one.Sub(d.Div(hundred)))
}

func LineTotal(unit decimal.Decimal, discountPercent float64, quantity uint) decimal.Decimal {
	return EffectivePrice(unit, discountPercent).Mul(decimal.NewFromInt(int64(quantity)))
}

// Savings is the difference between the pre- and post-discount price over
// the whole line.
func Savings(unit decimal.Decimal, discountPercent float64, quantity uint) decimal.Decimal {
	eff := EffectivePrice(unit, discountPercent)
	return unit.Sub(eff).Mul(decimal.NewFromInt(int64(quantity)))
}

type Line struct {
	UnitPrice decimal.Decimal
	Discount  float64
	Quantity  uint
}

// Total sums the line totals. Lines are independent; no cross-line
// interaction.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineTotal(l.UnitPrice, l.Discount, l.Quantity))
	}
	return total
}

// TotalSavings sums savings over lines carrying a positive discount.
func TotalSavings(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.Discount > 0 {
			total = total.Add(Savings(l.UnitPrice, l.Discount, l.Quantity))
		}
	}
	return total
}

func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
