package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TaxKind identifies what obligation a tax payment was remitted against.
type TaxKind string

const (
	TaxUSN       TaxKind = "USN"
	TaxInsurance TaxKind = "INSURANCE"
)

// TaxPayment is money already remitted against a tax obligation. Payments
// are read-only inputs; the engine only uses them to compute the remaining
// amount owed and never writes them back.
type TaxPayment struct {
	TaxKind    TaxKind       `json:"taxKind"`
	Period     string        `json:"period"` // quarter tag of the form "Q1".."Q4"
	DueDate    time.Time     `json:"dueDate"`
	PaidAmount Money         `json:"paidAmount"`
	Status     PaymentStatus `json:"status"`
}

// ParseQuarterTag parses a period tag of the form "Q1".."Q4". A tag that
// does not parse marks the payment unclassified: it is excluded from all
// cumulative totals (and counted for the caller), never treated as an error.
func ParseQuarterTag(tag string) (int, bool) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	switch tag {
	case "Q1":
		return 1, true
	case "Q2":
		return 2, true
	case "Q3":
		return 3, true
	case "Q4":
		return 4, true
	default:
		return 0, false
	}
}

// USN6Input is the snapshot a revenue-tax (USN 6%) calculation runs over.
type USN6Input struct {
	Year         int
	HasEmployees bool
	Entries      []LedgerEntry
	Payments     []TaxPayment
}

// USN6Quarter is one cumulative quarter of the USN 6% calculation. All
// amounts are running totals from the start of the fiscal year.
type USN6Quarter struct {
	Quarter            int   `json:"quarter"`
	Income             Money `json:"income"`
	TaxCalculated      Money `json:"taxCalculated"`
	MaxDeduction       Money `json:"maxDeduction"`
	InsurancePaid      Money `json:"insurancePaid"`
	InsuranceDeduction Money `json:"insuranceDeduction"`
	TaxAfterDeduction  Money `json:"taxAfterDeduction"`
	AdvancesPaid       Money `json:"advancesPaid"`
	AdvanceDue         Money `json:"advanceDue"`
}

// USN6Summary is the year total of the USN 6% calculation.
type USN6Summary struct {
	Income             Money           `json:"income"`
	TaxCalculated      Money           `json:"taxCalculated"`
	InsuranceDeduction Money           `json:"insuranceDeduction"`
	TaxToPay           Money           `json:"taxToPay"`
	EffectiveRate      decimal.Decimal `json:"effectiveRate"` // percent of income
}

// USN6Result is the full quarterly breakdown plus year summary.
// ExcludedPayments counts payments whose period tag did not parse.
type USN6Result struct {
	Year             int           `json:"year"`
	Quarters         [4]USN6Quarter `json:"quarters"`
	Summary          USN6Summary   `json:"summary"`
	ExcludedPayments int           `json:"excludedPayments"`
}

// USN15Input is the snapshot a profit-tax (USN 15%) calculation runs over.
type USN15Input struct {
	Year     int
	Entries  []LedgerEntry
	Payments []TaxPayment
}

// USN15Quarter is one cumulative quarter of the USN 15% calculation.
type USN15Quarter struct {
	Quarter       int   `json:"quarter"`
	Income        Money `json:"income"`
	Expense       Money `json:"expense"`
	TaxBase       Money `json:"taxBase"`
	TaxCalculated Money `json:"taxCalculated"`
	AdvancesPaid  Money `json:"advancesPaid"`
	AdvanceDue    Money `json:"advanceDue"`
}

// USN15Summary is the year total of the USN 15% calculation. When the 1%
// minimum tax exceeds the computed tax, IsMinTax is set and TaxToPay and
// EffectiveRate are derived from MinimumTax.
type USN15Summary struct {
	Income        Money           `json:"income"`
	Expense       Money           `json:"expense"`
	TaxBase       Money           `json:"taxBase"`
	TaxCalculated Money           `json:"taxCalculated"`
	MinimumTax    Money           `json:"minimumTax"`
	IsMinTax      bool            `json:"isMinTax"`
	TaxToPay      Money           `json:"taxToPay"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"` // percent of income
}

// USN15Result is the full quarterly breakdown plus year summary.
type USN15Result struct {
	Year             int             `json:"year"`
	Quarters         [4]USN15Quarter `json:"quarters"`
	Summary          USN15Summary    `json:"summary"`
	ExcludedPayments int             `json:"excludedPayments"`
}

// VATWindow is the inclusive date window a VAT extraction runs over.
type VATWindow struct {
	From      time.Time
	To        time.Time
	Documents []AccountingDocument
}

// VATLineItem is one document that contributed VAT inside the window.
type VATLineItem struct {
	DocumentID   string       `json:"documentID"`
	Kind         DocumentKind `json:"kind"`
	Direction    VATDirection `json:"direction"`
	Date         time.Time    `json:"date"`
	Counterparty string       `json:"counterparty,omitempty"`
	VATAmount    Money        `json:"vatAmount"`
}

// VATResult holds the output/input VAT totals for a window. VATToPay and
// VATToRefund are mutually exclusive: at most one is non-zero.
type VATResult struct {
	OutputVAT         Money         `json:"outputVAT"`
	InputVAT          Money         `json:"inputVAT"`
	VATToPay          Money         `json:"vatToPay"`
	VATToRefund       Money         `json:"vatToRefund"`
	Lines             []VATLineItem `json:"lines"`
	ExcludedDocuments int           `json:"excludedDocuments"`
}
