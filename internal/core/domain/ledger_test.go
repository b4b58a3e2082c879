package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

func entry(date string, kind domain.EntryKind, amount domain.Money) domain.LedgerEntry {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.LedgerEntry{Date: d, Kind: kind, Amount: amount}
}

func TestAggregateByQuarter(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("2024-01-15", domain.EntryIncome, 100),
		entry("2024-03-31", domain.EntryIncome, 50), // still Q1
		entry("2024-04-01", domain.EntryIncome, 200),
		entry("2024-09-30", domain.EntryExpense, 70),
		entry("2024-12-31", domain.EntryIncome, 400),
		entry("2023-06-10", domain.EntryIncome, 999), // other year, excluded
	}

	buckets := domain.AggregateByQuarter(entries, 2024)

	assert.Equal(t, domain.Money(150), buckets[0].Income)
	assert.Equal(t, domain.Money(200), buckets[1].Income)
	assert.Equal(t, domain.Money(0), buckets[2].Income)
	assert.Equal(t, domain.Money(70), buckets[2].Expense)
	assert.Equal(t, domain.Money(400), buckets[3].Income)
}

func TestAggregateByQuarterKeepsDuplicateDates(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("2024-02-01", domain.EntryIncome, 100),
		entry("2024-02-01", domain.EntryIncome, 100),
	}
	buckets := domain.AggregateByQuarter(entries, 2024)
	assert.Equal(t, domain.Money(200), buckets[0].Income)
}

func TestCumulativeThroughIsMonotonic(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("2024-01-10", domain.EntryIncome, 100000),
		entry("2024-05-10", domain.EntryIncome, 150000),
		entry("2024-08-10", domain.EntryIncome, 80000),
		entry("2024-11-10", domain.EntryIncome, 200000),
		entry("2024-06-01", domain.EntryExpense, 30000),
	}
	buckets := domain.AggregateByQuarter(entries, 2024)

	var prev domain.QuarterBucket
	for q := 1; q <= 4; q++ {
		cumulative := domain.CumulativeThrough(buckets, q)
		assert.GreaterOrEqual(t, cumulative.Income, prev.Income, "income must never shrink across quarters")
		assert.GreaterOrEqual(t, cumulative.Expense, prev.Expense, "expense must never shrink across quarters")
		prev = cumulative
	}
	assert.Equal(t, domain.Money(530000), prev.Income)
}

func TestParseQuarterTag(t *testing.T) {
	tests := []struct {
		tag     string
		quarter int
		ok      bool
	}{
		{"Q1", 1, true},
		{"q3", 3, true},
		{" Q4 ", 4, true},
		{"Q5", 0, false},
		{"2024-Q1", 0, false},
		{"", 0, false},
		{"annual", 0, false},
	}
	for _, tt := range tests {
		q, ok := domain.ParseQuarterTag(tt.tag)
		assert.Equal(t, tt.ok, ok, "tag %q", tt.tag)
		assert.Equal(t, tt.quarter, q, "tag %q", tt.tag)
	}
}
