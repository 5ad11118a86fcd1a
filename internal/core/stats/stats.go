// Package stats provides the shared percentage/ranking helpers used by every
// dimensional breakdown in reports and repository statistics.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Percent returns part/total*100.
// A zero total yields 0, never NaN or a division error.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// AmountPercent returns part/total*100 for monetary values.
// A zero total yields 0.
func AmountPercent(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	f, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// CountPercent returns part/total*100 for integer counts.
// A zero total yields 0.
func CountPercent(part, total int64) float64 {
	return Percent(float64(part), float64(total))
}

// FillAmountPercent assigns each entry's percentage of the given total amount.
// Entries are modified in place; ordering is preserved.
func FillAmountPercent[E any](entries []E, total decimal.Decimal, amount func(E) decimal.Decimal, set func(*E, float64)) {
	for i := range entries {
		set(&entries[i], AmountPercent(amount(entries[i]), total))
	}
}

// FillCountPercent assigns each entry's percentage of the given total count.
// Entries are modified in place; ordering is preserved.
func FillCountPercent[E any](entries []E, total int64, count func(E) int64, set func(*E, float64)) {
	for i := range entries {
		set(&entries[i], CountPercent(count(entries[i]), total))
	}
}

// SumAmounts totals a monetary metric across entries.
func SumAmounts[E any](entries []E, amount func(E) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(amount(e))
	}
	return total
}

// SumCounts totals an integer metric across entries.
func SumCounts[E any](entries []E, count func(E) int64) int64 {
	var total int64
	for _, e := range entries {
		total += count(e)
	}
	return total
}

// RankByDesc sorts entries by the given metric, highest first.
// The sort is stable so equal entries keep their incoming order.
func RankByDesc[E any](entries []E, metric func(E) float64) {
	sort.SliceStable(entries, func(i, j int) bool {
		return metric(entries[i]) > metric(entries[j])
	})
}
