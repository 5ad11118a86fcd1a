package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		part  float64
		total float64
		want  float64
	}{
		{name: "half", part: 50, total: 100, want: 50},
		{name: "full", part: 100, total: 100, want: 100},
		{name: "zero part", part: 0, total: 100, want: 0},
		{name: "zero total", part: 50, total: 0, want: 0},
		{name: "over 100", part: 150, total: 100, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.part, tt.total))
		})
	}
}

func TestAmountPercent_ZeroTotal(t *testing.T) {
	got := AmountPercent(decimal.NewFromInt(500), decimal.Zero)
	assert.Equal(t, 0.0, got)
}

func TestFillAmountPercent_SumsToHundred(t *testing.T) {
	type entry struct {
		amount decimal.Decimal
		pct    float64
	}
	entries := []entry{
		{amount: decimal.NewFromInt(700)},
		{amount: decimal.NewFromInt(200)},
		{amount: decimal.NewFromInt(100)},
	}
	total := SumAmounts(entries, func(e entry) decimal.Decimal { return e.amount })

	FillAmountPercent(entries, total,
		func(e entry) decimal.Decimal { return e.amount },
		func(e *entry, pct float64) { e.pct = pct },
	)

	assert.Equal(t, 70.0, entries[0].pct)
	assert.Equal(t, 20.0, entries[1].pct)
	assert.Equal(t, 10.0, entries[2].pct)

	var sum float64
	for _, e := range entries {
		sum += e.pct
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestFillCountPercent_ZeroTotal(t *testing.T) {
	type entry struct {
		count int64
		pct   float64
	}
	entries := []entry{{count: 3}, {count: 7}}

	FillCountPercent(entries, 0,
		func(e entry) int64 { return e.count },
		func(e *entry, pct float64) { e.pct = pct },
	)

	for _, e := range entries {
		assert.Equal(t, 0.0, e.pct)
	}
}

func TestSumCounts(t *testing.T) {
	type entry struct{ n int64 }
	entries := []entry{{2}, {3}, {5}}
	assert.Equal(t, int64(10), SumCounts(entries, func(e entry) int64 { return e.n }))
	assert.Equal(t, int64(0), SumCounts(nil, func(e entry) int64 { return e.n }))
}

func TestRankByDesc_StableForTies(t *testing.T) {
	type entry struct {
		id    int
		score float64
	}
	entries := []entry{
		{id: 1, score: 10},
		{id: 2, score: 30},
		{id: 3, score: 10},
		{id: 4, score: 20},
	}

	RankByDesc(entries, func(e entry) float64 { return e.score })

	assert.Equal(t, []entry{
		{id: 2, score: 30},
		{id: 4, score: 20},
		{id: 1, score: 10},
		{id: 3, score: 10},
	}, entries)
}
