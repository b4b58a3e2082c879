package services

import (
	"context"

	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// TaxCalculationSvc defines the tax calculators: pure, synchronous
// functions of an in-memory ledger snapshot. All cumulative state is
// recomputed from the full entry set on every call.
type TaxCalculationSvc interface {
	// CalculateUSN6 computes the cumulative quarterly revenue tax (6%)
	// with the insurance deduction cap.
	CalculateUSN6(ctx context.Context, input domain.USN6Input) (*domain.USN6Result, error)

	// CalculateUSN15 computes the cumulative quarterly profit tax (15%)
	// with the year-end minimum-tax override.
	CalculateUSN15(ctx context.Context, input domain.USN15Input) (*domain.USN15Result, error)

	// ExtractVAT classifies documents into output/input VAT and sums them
	// over an inclusive date window.
	ExtractVAT(ctx context.Context, window domain.VATWindow) (*domain.VATResult, error)
}
