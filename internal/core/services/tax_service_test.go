package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/zenbalans/taxengine_app/internal/apperrors"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
	"github.com/zenbalans/taxengine_app/internal/core/services"
)

func mustDate(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func incomeEntry(date string, amount domain.Money) domain.LedgerEntry {
	return domain.LedgerEntry{Date: mustDate(date), Kind: domain.EntryIncome, Amount: amount}
}

func expenseEntry(date string, amount domain.Money) domain.LedgerEntry {
	return domain.LedgerEntry{Date: mustDate(date), Kind: domain.EntryExpense, Amount: amount}
}

// --- Test Suite ---
type TaxServiceTestSuite struct {
	suite.Suite
	service portssvc.TaxCalculationSvc
	ctx     context.Context
}

func (s *TaxServiceTestSuite) SetupTest() {
	s.service = services.NewTaxService()
	s.ctx = context.Background()
}

func (s *TaxServiceTestSuite) TestUSN6QuarterlyScenario() {
	// 1000.00 / 1500.00 / 800.00 / 2000.00 RUB of income, one per quarter.
	input := domain.USN6Input{
		Year: 2024,
		Entries: []domain.LedgerEntry{
			incomeEntry("2024-02-10", 100000),
			incomeEntry("2024-05-10", 150000),
			incomeEntry("2024-08-10", 80000),
			incomeEntry("2024-11-10", 200000),
		},
	}

	result, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(domain.Money(100000), result.Quarters[0].Income)
	s.Equal(domain.Money(6000), result.Quarters[0].TaxCalculated)
	s.Equal(domain.Money(250000), result.Quarters[1].Income)
	s.Equal(domain.Money(15000), result.Quarters[1].TaxCalculated)
	s.Equal(domain.Money(330000), result.Quarters[2].Income)
	s.Equal(domain.Money(530000), result.Quarters[3].Income)
	s.Equal(domain.Money(31800), result.Quarters[3].TaxCalculated)

	s.Equal(domain.Money(0), result.Summary.InsuranceDeduction)
	s.Equal(domain.Money(31800), result.Summary.TaxToPay)
	s.True(decimal.NewFromInt(6).Equal(result.Summary.EffectiveRate))
	s.Equal(0, result.ExcludedPayments)
}

func (s *TaxServiceTestSuite) TestUSN6DeductionCapWithEmployees() {
	input := domain.USN6Input{
		Year:         2024,
		HasEmployees: true,
		Entries:      []domain.LedgerEntry{incomeEntry("2024-01-20", 1_000_000)},
		Payments: []domain.TaxPayment{
			// Far above the 50% cap.
			{TaxKind: domain.TaxInsurance, Period: "Q1", PaidAmount: 100_000, Status: domain.PaymentPaid},
		},
	}

	result, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)

	for _, q := range result.Quarters {
		cap := q.TaxCalculated.ApplyRate(domain.HalfRate())
		s.LessOrEqual(q.InsuranceDeduction, cap, "quarter %d deduction exceeds the 50%% cap", q.Quarter)
	}
	s.Equal(domain.Money(60000), result.Quarters[0].TaxCalculated)
	s.Equal(domain.Money(30000), result.Quarters[0].MaxDeduction)
	s.Equal(domain.Money(30000), result.Quarters[0].InsuranceDeduction)
	s.Equal(domain.Money(30000), result.Quarters[0].TaxAfterDeduction)
}

func (s *TaxServiceTestSuite) TestUSN6FullDeductionWithoutEmployees() {
	input := domain.USN6Input{
		Year:    2024,
		Entries: []domain.LedgerEntry{incomeEntry("2024-01-20", 1_000_000)},
		Payments: []domain.TaxPayment{
			{TaxKind: domain.TaxInsurance, Period: "Q1", PaidAmount: 100_000, Status: domain.PaymentPaid},
		},
	}

	result, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)

	// Without employees the deduction may consume the whole tax.
	s.Equal(domain.Money(60000), result.Quarters[0].InsuranceDeduction)
	s.Equal(domain.Money(0), result.Quarters[0].TaxAfterDeduction)
	s.Equal(domain.Money(0), result.Summary.TaxToPay)
}

func (s *TaxServiceTestSuite) TestUSN6AdvancesReduceDue() {
	input := domain.USN6Input{
		Year:    2024,
		Entries: []domain.LedgerEntry{incomeEntry("2024-01-20", 1_000_000)},
		Payments: []domain.TaxPayment{
			{TaxKind: domain.TaxUSN, Period: "Q1", PaidAmount: 40_000, Status: domain.PaymentPaid},
		},
	}

	result, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(domain.Money(20000), result.Quarters[0].AdvanceDue)
	// Overpayment never yields a negative due.
	s.GreaterOrEqual(int64(result.Quarters[3].AdvanceDue), int64(0))
}

func (s *TaxServiceTestSuite) TestUSN6ExcludesUnparseablePeriodTags() {
	input := domain.USN6Input{
		Year:    2024,
		Entries: []domain.LedgerEntry{incomeEntry("2024-01-20", 1_000_000)},
		Payments: []domain.TaxPayment{
			{TaxKind: domain.TaxInsurance, Period: "annual", PaidAmount: 10_000, Status: domain.PaymentPaid},
			{TaxKind: domain.TaxInsurance, Period: "Q9", PaidAmount: 10_000, Status: domain.PaymentPaid},
			{TaxKind: domain.TaxInsurance, Period: "Q1", PaidAmount: 5_000, Status: domain.PaymentPaid},
		},
	}

	result, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)

	// Bad tags are excluded from totals and surfaced, not errors.
	s.Equal(2, result.ExcludedPayments)
	s.Equal(domain.Money(5000), result.Quarters[0].InsurancePaid)
}

func (s *TaxServiceTestSuite) TestUSN6PendingPaymentsDoNotCount() {
	input := domain.USN6Input{
		Year:    2024,
		Entries: []domain.LedgerEntry{incomeEntry("2024-01-20", 1_000_000)},
		Payments: []domain.TaxPayment{
			{TaxKind: domain.TaxInsurance, Period: "Q1", PaidAmount: 5_000, Status: domain.PaymentPending},
		},
	}

	result, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(domain.Money(0), result.Quarters[0].InsurancePaid)
}

func (s *TaxServiceTestSuite) TestUSN6ZeroIncome() {
	result, err := s.service.CalculateUSN6(s.ctx, domain.USN6Input{Year: 2024})
	s.Require().NoError(err)

	s.Equal(domain.Money(0), result.Summary.Income)
	s.Equal(domain.Money(0), result.Summary.TaxToPay)
	s.True(decimal.Zero.Equal(result.Summary.EffectiveRate))
}

func (s *TaxServiceTestSuite) TestUSN6UnknownYearRefused() {
	_, err := s.service.CalculateUSN6(s.ctx, domain.USN6Input{Year: 1999})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrTaxParamsNotFound)
}

func (s *TaxServiceTestSuite) TestUSN6Deterministic() {
	input := domain.USN6Input{
		Year: 2024,
		Entries: []domain.LedgerEntry{
			incomeEntry("2024-02-10", 123457),
			incomeEntry("2024-07-03", 654321),
		},
		Payments: []domain.TaxPayment{
			{TaxKind: domain.TaxInsurance, Period: "Q2", PaidAmount: 777, Status: domain.PaymentPaid},
		},
	}

	first, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.service.CalculateUSN6(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *TaxServiceTestSuite) TestUSN15MinimumTaxOverride() {
	// Income 10 000.00, expenses 9 800.00: 15% of the 200.00 base (30.00)
	// loses to the 1% minimum of 100.00.
	input := domain.USN15Input{
		Year: 2024,
		Entries: []domain.LedgerEntry{
			incomeEntry("2024-03-01", 1_000_000),
			expenseEntry("2024-03-05", 980_000),
		},
	}

	result, err := s.service.CalculateUSN15(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(domain.Money(20000), result.Summary.TaxBase)
	s.Equal(domain.Money(3000), result.Summary.TaxCalculated)
	s.Equal(domain.Money(10000), result.Summary.MinimumTax)
	s.True(result.Summary.IsMinTax)
	s.Equal(domain.Money(10000), result.Summary.TaxToPay)
	s.True(decimal.NewFromInt(1).Equal(result.Summary.EffectiveRate))

	// The override never touches intermediate quarterly advances.
	s.Equal(domain.Money(3000), result.Quarters[3].TaxCalculated)
}

func (s *TaxServiceTestSuite) TestUSN15RegularTax() {
	input := domain.USN15Input{
		Year: 2024,
		Entries: []domain.LedgerEntry{
			incomeEntry("2024-03-01", 1_000_000),
			expenseEntry("2024-03-05", 400_000),
		},
	}

	result, err := s.service.CalculateUSN15(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(domain.Money(600_000), result.Summary.TaxBase)
	s.Equal(domain.Money(90_000), result.Summary.TaxCalculated)
	s.False(result.Summary.IsMinTax)
	s.Equal(domain.Money(90_000), result.Summary.TaxToPay)
}

func (s *TaxServiceTestSuite) TestUSN15NegativeBaseFloorsToZero() {
	input := domain.USN15Input{
		Year: 2024,
		Entries: []domain.LedgerEntry{
			incomeEntry("2024-02-01", 100_000),
			expenseEntry("2024-02-15", 500_000),
		},
	}

	result, err := s.service.CalculateUSN15(s.ctx, input)
	s.Require().NoError(err)

	// Losses never carry a negative tax.
	s.Equal(domain.Money(0), result.Quarters[0].TaxBase)
	s.Equal(domain.Money(0), result.Quarters[0].TaxCalculated)
	// The 1% minimum still applies against income.
	s.Equal(domain.Money(1000), result.Summary.MinimumTax)
	s.True(result.Summary.IsMinTax)
	s.Equal(domain.Money(1000), result.Summary.TaxToPay)
}

func (s *TaxServiceTestSuite) TestUSN15AdvancesCreditedAgainstMinimumTax() {
	input := domain.USN15Input{
		Year: 2024,
		Entries: []domain.LedgerEntry{
			incomeEntry("2024-03-01", 1_000_000),
			expenseEntry("2024-03-05", 980_000),
		},
		Payments: []domain.TaxPayment{
			{TaxKind: domain.TaxUSN, Period: "Q2", PaidAmount: 3_000, Status: domain.PaymentPaid},
		},
	}

	result, err := s.service.CalculateUSN15(s.ctx, input)
	s.Require().NoError(err)
	s.True(result.Summary.IsMinTax)
	s.Equal(domain.Money(7000), result.Summary.TaxToPay)
}

func (s *TaxServiceTestSuite) TestVATClassificationAndNetting() {
	window := domain.VATWindow{
		From: mustDate("2024-01-01"),
		To:   mustDate("2024-03-31"),
		Documents: []domain.AccountingDocument{
			{DocumentID: "d1", Kind: domain.DocInvoice, Date: mustDate("2024-01-15"), TotalAmount: 120_000, VATAmount: 20_000},
			{DocumentID: "d2", Kind: domain.DocAct, Date: mustDate("2024-02-15"), TotalAmount: 60_000, VATAmount: 10_000},
			{DocumentID: "d3", Kind: domain.DocPurchaseInvoice, Date: mustDate("2024-03-01"), TotalAmount: 48_000, VATAmount: 8_000},
			{DocumentID: "d4", Kind: domain.DocExpense, Date: mustDate("2024-03-20"), TotalAmount: 12_000, VATAmount: 2_000},
			{DocumentID: "d5", Kind: domain.DocInvoice, Date: mustDate("2024-06-01"), TotalAmount: 600_000, VATAmount: 100_000}, // outside window
			{DocumentID: "d6", Kind: "RECEIPT", Date: mustDate("2024-02-02"), TotalAmount: 5_000, VATAmount: 1_000},            // unknown kind
			{DocumentID: "d7", Kind: domain.DocInvoice, Date: mustDate("2024-02-03"), TotalAmount: 9_000},                      // no VAT
		},
	}

	result, err := s.service.ExtractVAT(s.ctx, window)
	s.Require().NoError(err)

	s.Equal(domain.Money(30_000), result.OutputVAT)
	s.Equal(domain.Money(10_000), result.InputVAT)
	s.Equal(domain.Money(20_000), result.VATToPay)
	s.Equal(domain.Money(0), result.VATToRefund)
	s.Equal(1, result.ExcludedDocuments)
	s.Len(result.Lines, 4) // d5 out of window, d6 excluded, d7 has no VAT
}

func (s *TaxServiceTestSuite) TestVATMutualExclusivity() {
	windows := []domain.VATWindow{
		{
			From: mustDate("2024-01-01"), To: mustDate("2024-12-31"),
			Documents: []domain.AccountingDocument{
				{Kind: domain.DocInvoice, Date: mustDate("2024-02-01"), VATAmount: 5_000},
				{Kind: domain.DocPurchaseInvoice, Date: mustDate("2024-02-01"), VATAmount: 9_000},
			},
		},
		{
			From: mustDate("2024-01-01"), To: mustDate("2024-12-31"),
			Documents: []domain.AccountingDocument{
				{Kind: domain.DocInvoice, Date: mustDate("2024-02-01"), VATAmount: 9_000},
				{Kind: domain.DocPurchaseInvoice, Date: mustDate("2024-02-01"), VATAmount: 5_000},
			},
		},
		{From: mustDate("2024-01-01"), To: mustDate("2024-12-31")},
	}

	for i, window := range windows {
		result, err := s.service.ExtractVAT(s.ctx, window)
		s.Require().NoError(err, "window %d", i)
		if result.VATToPay > 0 {
			s.Equal(domain.Money(0), result.VATToRefund, "window %d", i)
		}
		if result.VATToRefund > 0 {
			s.Equal(domain.Money(0), result.VATToPay, "window %d", i)
		}
	}
}

func TestTaxService(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}

func TestVATRefundCase(t *testing.T) {
	service := services.NewTaxService()
	result, err := service.ExtractVAT(context.Background(), domain.VATWindow{
		From: mustDate("2024-01-01"),
		To:   mustDate("2024-12-31"),
		Documents: []domain.AccountingDocument{
			{Kind: domain.DocPurchaseInvoice, Date: mustDate("2024-05-01"), VATAmount: 30_000},
			{Kind: domain.DocInvoice, Date: mustDate("2024-05-02"), VATAmount: 12_000},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Money(0), result.VATToPay)
	assert.Equal(t, domain.Money(18_000), result.VATToRefund)
}
