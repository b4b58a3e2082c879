package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zenbalans/taxengine_app/internal/apperrors"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
)

// insuranceService implements the InsuranceSvc interface
type insuranceService struct {
	BaseService
}

// NewInsuranceService creates a new insurance contribution service
func NewInsuranceService() portssvc.InsuranceSvc {
	return &insuranceService{}
}

// Ensure insuranceService implements the InsuranceSvc interface
var _ portssvc.InsuranceSvc = (*insuranceService)(nil)

// CalculateEntrepreneurContributions computes the fixed annual contribution
// plus 1% of income above the statutory threshold, with the excess part
// capped so that fixed + excess never exceeds the pension cap.
func (s *insuranceService) CalculateEntrepreneurContributions(ctx context.Context, year int, entries []domain.LedgerEntry) (*domain.EntrepreneurContributions, error) {
	params, err := domain.TaxParamsForYear(year)
	if err != nil {
		s.LogError(ctx, err, "Entrepreneur contribution calculation refused: no tax parameters", slog.Int("year", year))
		return nil, fmt.Errorf("entrepreneur contributions: %w", err)
	}

	buckets := domain.AggregateByQuarter(entries, year)
	totalIncome := domain.CumulativeThrough(buckets, 4).Income

	excessIncome := domain.MaxMoney(0, totalIncome-params.ExcessIncomeThreshold)
	excessContribution := excessIncome.ApplyRate(params.ExcessIncomeRate)

	// Cap room is clamped at zero so a misconfigured cap below the fixed
	// amount can never drive the excess negative.
	capRoom := domain.MaxMoney(0, params.PensionCap-params.FixedContribution)
	excessContribution = domain.MinMoney(excessContribution, capRoom)

	result := &domain.EntrepreneurContributions{
		Year:               year,
		TotalIncome:        totalIncome,
		FixedContribution:  params.FixedContribution,
		ExcessIncome:       excessIncome,
		ExcessContribution: excessContribution,
		TotalContribution:  params.FixedContribution + excessContribution,
		Lines: []domain.ContributionLine{
			{
				Label:   "Фиксированный взнос",
				Amount:  params.FixedContribution,
				DueDate: time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			},
			{
				Label:   "Взнос 1% с дохода свыше порога",
				Amount:  excessContribution,
				DueDate: time.Date(year+1, time.July, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	s.LogInfo(ctx, "Entrepreneur contributions calculated",
		slog.Int("year", year),
		slog.Int64("total_income", int64(totalIncome)),
		slog.Int64("total_contribution", int64(result.TotalContribution)))
	return result, nil
}

// CalculateEmployeeContributions computes tiered employer contributions per
// employee, splitting the salary at the monthly wage threshold. Each
// component is rounded independently before summation; rounding the summed
// bases instead would drift at the kopeck level.
func (s *insuranceService) CalculateEmployeeContributions(ctx context.Context, year int, employees []domain.Employee) (*domain.EmployeeContributionsResult, error) {
	params, err := domain.TaxParamsForYear(year)
	if err != nil {
		s.LogError(ctx, err, "Employee contribution calculation refused: no tax parameters", slog.Int("year", year))
		return nil, fmt.Errorf("employee contributions: %w", err)
	}

	result := &domain.EmployeeContributionsResult{
		Year:      year,
		Employees: make([]domain.EmployeeContribution, 0, len(employees)),
	}

	for _, emp := range employees {
		if emp.MonthlySalary < 0 {
			// Clamping here could mask a data-entry bug upstream.
			err := fmt.Errorf("%w: employee %q has negative salary", apperrors.ErrValidation, emp.Name)
			s.LogError(ctx, err, "Employee contribution calculation rejected", slog.String("employee", emp.Name))
			return nil, err
		}

		contribution := contributionForSalary(emp, params)
		result.Employees = append(result.Employees, contribution)
		result.TotalPension += contribution.Pension
		result.TotalMedical += contribution.Medical
		result.TotalSocial += contribution.Social
		result.Total += contribution.Total
	}

	s.LogInfo(ctx, "Employee contributions calculated",
		slog.Int("year", year),
		slog.Int("employees", len(result.Employees)),
		slog.Int64("total", int64(result.Total)))
	return result, nil
}

// contributionForSalary splits one monthly salary at the wage threshold and
// applies full rates below it and reduced rates above it. There is no
// reduced social rate: social contributions stop at the threshold.
func contributionForSalary(emp domain.Employee, params domain.TaxParams) domain.EmployeeContribution {
	salary := emp.MonthlySalary

	var pension, medical, social domain.Money
	if salary <= params.WageThreshold {
		pension = salary.ApplyRate(params.PensionRateFull)
		medical = salary.ApplyRate(params.MedicalRateFull)
		social = salary.ApplyRate(params.SocialRateFull)
	} else {
		base := params.WageThreshold
		excess := salary - base
		pension = base.ApplyRate(params.PensionRateFull) + excess.ApplyRate(params.PensionRateReduced)
		medical = base.ApplyRate(params.MedicalRateFull) + excess.ApplyRate(params.MedicalRateReduced)
		social = base.ApplyRate(params.SocialRateFull)
	}

	return domain.EmployeeContribution{
		Name:    emp.Name,
		Salary:  salary,
		Pension: pension,
		Medical: medical,
		Social:  social,
		Total:   pension + medical + social,
	}
}
