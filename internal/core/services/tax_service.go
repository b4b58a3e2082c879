package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zenbalans/taxengine_app/internal/core/domain"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
	"github.com/zenbalans/taxengine_app/internal/middleware"
)

// taxService implements the TaxCalculationSvc interface. It holds no state:
// every calculation is recomputed from the supplied snapshot, so identical
// inputs always yield identical results.
type taxService struct {
	BaseService
}

// NewTaxService creates a new tax calculation service
func NewTaxService() portssvc.TaxCalculationSvc {
	return &taxService{}
}

// Ensure taxService implements the TaxCalculationSvc interface
var _ portssvc.TaxCalculationSvc = (*taxService)(nil)

// classifiedPayments holds tax payments bucketed per quarter by their
// period tag. Payments whose tag did not parse are only counted; they are
// excluded from every total.
type classifiedPayments struct {
	insurance [4]domain.Money
	usn       [4]domain.Money
	excluded  int
}

// classifyPayments buckets paid tax payments by quarter tag and kind.
// Pending payments reduce nothing: only remitted money counts against the
// liability.
func classifyPayments(ctx context.Context, payments []domain.TaxPayment) classifiedPayments {
	var out classifiedPayments
	for _, p := range payments {
		if p.Status != domain.PaymentPaid {
			continue
		}
		q, ok := domain.ParseQuarterTag(p.Period)
		if !ok {
			out.excluded++
			middleware.GetLoggerFromCtx(ctx).Warn("Tax payment excluded: period tag did not parse",
				slog.String("period", p.Period),
				slog.String("tax_kind", string(p.TaxKind)))
			continue
		}
		switch p.TaxKind {
		case domain.TaxInsurance:
			out.insurance[q-1] += p.PaidAmount
		case domain.TaxUSN:
			out.usn[q-1] += p.PaidAmount
		default:
			out.excluded++
			middleware.GetLoggerFromCtx(ctx).Warn("Tax payment excluded: unknown tax kind",
				slog.String("tax_kind", string(p.TaxKind)))
		}
	}
	return out
}

// CalculateUSN6 computes the cumulative quarterly revenue tax (6% of
// cumulative income) with the insurance deduction capped at 50% of the
// computed tax when the payer has employees, or at the tax itself otherwise.
func (s *taxService) CalculateUSN6(ctx context.Context, input domain.USN6Input) (*domain.USN6Result, error) {
	params, err := domain.TaxParamsForYear(input.Year)
	if err != nil {
		s.LogError(ctx, err, "USN6 calculation refused: no tax parameters", slog.Int("year", input.Year))
		return nil, fmt.Errorf("usn6: %w", err)
	}

	buckets := domain.AggregateByQuarter(input.Entries, input.Year)
	paid := classifyPayments(ctx, input.Payments)

	result := &domain.USN6Result{Year: input.Year, ExcludedPayments: paid.excluded}

	var cumInsurance, cumAdvances domain.Money
	for q := 1; q <= 4; q++ {
		cumulative := domain.CumulativeThrough(buckets, q)
		cumInsurance += paid.insurance[q-1]
		cumAdvances += paid.usn[q-1]

		taxCalculated := cumulative.Income.ApplyRate(params.USNIncomeRate)
		maxDeduction := taxCalculated
		if input.HasEmployees {
			maxDeduction = taxCalculated.ApplyRate(domain.HalfRate())
		}
		deduction := domain.MinMoney(cumInsurance, maxDeduction)
		afterDeduction := taxCalculated - deduction
		advanceDue := domain.MaxMoney(0, afterDeduction-cumAdvances)

		result.Quarters[q-1] = domain.USN6Quarter{
			Quarter:            q,
			Income:             cumulative.Income,
			TaxCalculated:      taxCalculated,
			MaxDeduction:       maxDeduction,
			InsurancePaid:      cumInsurance,
			InsuranceDeduction: deduction,
			TaxAfterDeduction:  afterDeduction,
			AdvancesPaid:       cumAdvances,
			AdvanceDue:         advanceDue,
		}
	}

	final := result.Quarters[3]
	result.Summary = domain.USN6Summary{
		Income:             final.Income,
		TaxCalculated:      final.TaxCalculated,
		InsuranceDeduction: final.InsuranceDeduction,
		TaxToPay:           final.AdvanceDue,
		EffectiveRate:      domain.Percent(final.AdvanceDue, final.Income),
	}

	s.LogInfo(ctx, "USN6 calculation completed",
		slog.Int("year", input.Year),
		slog.Bool("has_employees", input.HasEmployees),
		slog.Int64("income", int64(result.Summary.Income)),
		slog.Int64("tax_to_pay", int64(result.Summary.TaxToPay)),
		slog.Int("excluded_payments", result.ExcludedPayments))
	return result, nil
}

// CalculateUSN15 computes the cumulative quarterly profit tax (15% of
// cumulative income minus expense, floored at zero) and applies the 1%
// minimum-tax override to the year-end liability only.
func (s *taxService) CalculateUSN15(ctx context.Context, input domain.USN15Input) (*domain.USN15Result, error) {
	params, err := domain.TaxParamsForYear(input.Year)
	if err != nil {
		s.LogError(ctx, err, "USN15 calculation refused: no tax parameters", slog.Int("year", input.Year))
		return nil, fmt.Errorf("usn15: %w", err)
	}

	buckets := domain.AggregateByQuarter(input.Entries, input.Year)
	paid := classifyPayments(ctx, input.Payments)

	result := &domain.USN15Result{Year: input.Year, ExcludedPayments: paid.excluded}

	var cumAdvances domain.Money
	for q := 1; q <= 4; q++ {
		cumulative := domain.CumulativeThrough(buckets, q)
		cumAdvances += paid.usn[q-1]

		// Losses do not carry a negative tax: the base floors at zero.
		taxBase := domain.MaxMoney(0, cumulative.Income-cumulative.Expense)
		taxCalculated := taxBase.ApplyRate(params.USNProfitRate)
		advanceDue := domain.MaxMoney(0, taxCalculated-cumAdvances)

		result.Quarters[q-1] = domain.USN15Quarter{
			Quarter:       q,
			Income:        cumulative.Income,
			Expense:       cumulative.Expense,
			TaxBase:       taxBase,
			TaxCalculated: taxCalculated,
			AdvancesPaid:  cumAdvances,
			AdvanceDue:    advanceDue,
		}
	}

	final := result.Quarters[3]
	minTax := final.Income.ApplyRate(params.USNMinimumRate)

	summary := domain.USN15Summary{
		Income:        final.Income,
		Expense:       final.Expense,
		TaxBase:       final.TaxBase,
		TaxCalculated: final.TaxCalculated,
		MinimumTax:    minTax,
	}
	if minTax > final.TaxCalculated {
		// The minimum tax replaces the year-end liability; intermediate
		// quarterly advances stay as computed. Advances already remitted
		// are still credited against it.
		summary.IsMinTax = true
		summary.TaxToPay = domain.MaxMoney(0, minTax-final.AdvancesPaid)
		summary.EffectiveRate = domain.Percent(minTax, final.Income)
	} else {
		summary.TaxToPay = final.AdvanceDue
		summary.EffectiveRate = domain.Percent(final.TaxCalculated, final.Income)
	}
	result.Summary = summary

	s.LogInfo(ctx, "USN15 calculation completed",
		slog.Int("year", input.Year),
		slog.Int64("tax_base", int64(summary.TaxBase)),
		slog.Bool("is_min_tax", summary.IsMinTax),
		slog.Int64("tax_to_pay", int64(summary.TaxToPay)),
		slog.Int("excluded_payments", result.ExcludedPayments))
	return result, nil
}

// ExtractVAT classifies documents inside the inclusive window into output
// and input VAT and nets the two. Exactly one of VATToPay/VATToRefund is
// non-zero unless both are zero.
func (s *taxService) ExtractVAT(ctx context.Context, window domain.VATWindow) (*domain.VATResult, error) {
	result := &domain.VATResult{Lines: []domain.VATLineItem{}}

	for _, doc := range window.Documents {
		if doc.Date.Before(window.From) || doc.Date.After(window.To) {
			continue
		}
		direction, ok := domain.ClassifyVAT(doc.Kind)
		if !ok {
			result.ExcludedDocuments++
			s.LogWarn(ctx, "Document excluded from VAT extraction: unknown kind",
				slog.String("document_id", doc.DocumentID),
				slog.String("kind", string(doc.Kind)))
			continue
		}
		if doc.VATAmount == 0 {
			continue
		}
		switch direction {
		case domain.VATOutput:
			result.OutputVAT += doc.VATAmount
		case domain.VATInput:
			result.InputVAT += doc.VATAmount
		}
		result.Lines = append(result.Lines, domain.VATLineItem{
			DocumentID:   doc.DocumentID,
			Kind:         doc.Kind,
			Direction:    direction,
			Date:         doc.Date,
			Counterparty: doc.Counterparty,
			VATAmount:    doc.VATAmount,
		})
	}

	result.VATToPay = domain.MaxMoney(0, result.OutputVAT-result.InputVAT)
	result.VATToRefund = domain.MaxMoney(0, result.InputVAT-result.OutputVAT)

	s.LogInfo(ctx, "VAT extraction completed",
		slog.Int64("output_vat", int64(result.OutputVAT)),
		slog.Int64("input_vat", int64(result.InputVAT)),
		slog.Int("line_items", len(result.Lines)),
		slog.Int("excluded_documents", result.ExcludedDocuments))
	return result, nil
}
