package domain

import "time"

// EntryKind indicates whether a ledger entry records income or an expense.
type EntryKind string

const (
	EntryIncome  EntryKind = "INCOME"
	EntryExpense EntryKind = "EXPENSE"
)

// LedgerEntry is a single dated income or expense record. Entries are
// immutable inputs produced by an external bookkeeping subsystem; insertion
// order is irrelevant, all aggregation is by date.
type LedgerEntry struct {
	Date         time.Time `json:"date"`
	Kind         EntryKind `json:"kind"`
	Amount       Money     `json:"amount"` // minor units, never negative
	Description  string    `json:"description"`
	Counterparty string    `json:"counterparty,omitempty"`
	TenderID     string    `json:"tenderID,omitempty"`
}

// QuarterBucket holds the income and expense totals of one calendar quarter.
type QuarterBucket struct {
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
}

// AggregateByQuarter buckets entries of the given fiscal year into the four
// calendar quarters. Entries outside the year are excluded; entries with
// identical dates are all counted (the source ledger is assumed canonical).
func AggregateByQuarter(entries []LedgerEntry, year int) [4]QuarterBucket {
	var buckets [4]QuarterBucket
	for _, e := range entries {
		if e.Date.Year() != year {
			continue
		}
		q := (int(e.Date.Month())-1)/3 + 1
		switch e.Kind {
		case EntryIncome:
			buckets[q-1].Income += e.Amount
		case EntryExpense:
			buckets[q-1].Expense += e.Amount
		}
	}
	return buckets
}

// CumulativeThrough returns the running totals of quarters 1..q.
func CumulativeThrough(buckets [4]QuarterBucket, q int) QuarterBucket {
	var total QuarterBucket
	for i := 0; i < q && i < len(buckets); i++ {
		total.Income += buckets[i].Income
		total.Expense += buckets[i].Expense
	}
	return total
}
