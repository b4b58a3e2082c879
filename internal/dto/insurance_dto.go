package dto

import (
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// EntrepreneurContributionsRequest carries the ledger snapshot for an
// entrepreneur contribution calculation.
type EntrepreneurContributionsRequest struct {
	Year    int                  `json:"year" binding:"required"`
	Entries []LedgerEntryRequest `json:"entries" binding:"dive"`
}

// EmployeeRequest is one salary record for employer contribution
// calculation. Negative salaries are rejected by the service, not clamped.
type EmployeeRequest struct {
	Name          string `json:"name" binding:"required"`
	MonthlySalary int64  `json:"monthlySalary"`
}

// EmployeeContributionsRequest carries the salary list for an employer
// contribution calculation.
type EmployeeContributionsRequest struct {
	Year      int               `json:"year" binding:"required"`
	Employees []EmployeeRequest `json:"employees" binding:"required,dive"`
}

// ToEmployees converts request rows to domain employees.
func ToEmployees(rows []EmployeeRequest) []domain.Employee {
	employees := make([]domain.Employee, len(rows))
	for i, r := range rows {
		employees[i] = domain.Employee{
			Name:          r.Name,
			MonthlySalary: domain.Money(r.MonthlySalary),
		}
	}
	return employees
}

// ContributionLineResponse is one due-date line of the contribution plan.
type ContributionLineResponse struct {
	Label   string       `json:"label"`
	Amount  domain.Money `json:"amount"`
	DueDate string       `json:"dueDate"`
}

// EntrepreneurContributionsResponse is the contribution result for a year.
type EntrepreneurContributionsResponse struct {
	Year               int                        `json:"year"`
	TotalIncome        domain.Money               `json:"totalIncome"`
	FixedContribution  domain.Money               `json:"fixedContribution"`
	ExcessIncome       domain.Money               `json:"excessIncome"`
	ExcessContribution domain.Money               `json:"excessContribution"`
	TotalContribution  domain.Money               `json:"totalContribution"`
	Lines              []ContributionLineResponse `json:"lines"`
}

// ToEntrepreneurContributionsResponse converts a domain result to a DTO.
func ToEntrepreneurContributionsResponse(result *domain.EntrepreneurContributions) EntrepreneurContributionsResponse {
	response := EntrepreneurContributionsResponse{
		Year:               result.Year,
		TotalIncome:        result.TotalIncome,
		FixedContribution:  result.FixedContribution,
		ExcessIncome:       result.ExcessIncome,
		ExcessContribution: result.ExcessContribution,
		TotalContribution:  result.TotalContribution,
		Lines:              make([]ContributionLineResponse, len(result.Lines)),
	}
	for i, line := range result.Lines {
		response.Lines[i] = ContributionLineResponse{
			Label:   line.Label,
			Amount:  line.Amount,
			DueDate: line.DueDate.Format(dateLayout),
		}
	}
	return response
}

// EmployeeContributionResponse is the monthly contribution for one employee.
type EmployeeContributionResponse struct {
	Name    string       `json:"name"`
	Salary  domain.Money `json:"salary"`
	Pension domain.Money `json:"pension"`
	Medical domain.Money `json:"medical"`
	Social  domain.Money `json:"social"`
	Total   domain.Money `json:"total"`
}

// EmployeeContributionsResponse aggregates contributions over the salary list.
type EmployeeContributionsResponse struct {
	Year         int                            `json:"year"`
	Employees    []EmployeeContributionResponse `json:"employees"`
	TotalPension domain.Money                   `json:"totalPension"`
	TotalMedical domain.Money                   `json:"totalMedical"`
	TotalSocial  domain.Money                   `json:"totalSocial"`
	Total        domain.Money                   `json:"total"`
}

// ToEmployeeContributionsResponse converts a domain result to a DTO.
func ToEmployeeContributionsResponse(result *domain.EmployeeContributionsResult) EmployeeContributionsResponse {
	response := EmployeeContributionsResponse{
		Year:         result.Year,
		Employees:    make([]EmployeeContributionResponse, len(result.Employees)),
		TotalPension: result.TotalPension,
		TotalMedical: result.TotalMedical,
		TotalSocial:  result.TotalSocial,
		Total:        result.Total,
	}
	for i, emp := range result.Employees {
		response.Employees[i] = EmployeeContributionResponse{
			Name:    emp.Name,
			Salary:  emp.Salary,
			Pension: emp.Pension,
			Medical: emp.Medical,
			Social:  emp.Social,
			Total:   emp.Total,
		}
	}
	return response
}
