package services

import (
	"context"

	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// InsuranceSvc defines mandatory insurance contribution calculators.
type InsuranceSvc interface {
	// CalculateEntrepreneurContributions computes the fixed plus
	// excess-income contribution of a self-employed owner for a year.
	CalculateEntrepreneurContributions(ctx context.Context, year int, entries []domain.LedgerEntry) (*domain.EntrepreneurContributions, error)

	// CalculateEmployeeContributions computes per-employee tiered employer
	// contributions for the supplied salary list. A negative salary rejects
	// the call with a validation error.
	CalculateEmployeeContributions(ctx context.Context, year int, employees []domain.Employee) (*domain.EmployeeContributionsResult, error)
}
