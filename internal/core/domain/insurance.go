package domain

import "time"

// Employee is a salary record supplied per invocation for employer
// contribution calculation; the engine does not persist it.
type Employee struct {
	Name          string `json:"name"`
	MonthlySalary Money  `json:"monthlySalary"`
}

// ContributionLine is one due-date line of an entrepreneur's mandatory
// contributions.
type ContributionLine struct {
	Label   string    `json:"label"`
	Amount  Money     `json:"amount"`
	DueDate time.Time `json:"dueDate"`
}

// EntrepreneurContributions is the fixed plus excess-income contribution of
// a self-employed owner for one fiscal year.
type EntrepreneurContributions struct {
	Year               int                `json:"year"`
	TotalIncome        Money              `json:"totalIncome"`
	FixedContribution  Money              `json:"fixedContribution"`
	ExcessIncome       Money              `json:"excessIncome"`
	ExcessContribution Money              `json:"excessContribution"`
	TotalContribution  Money              `json:"totalContribution"`
	Lines              []ContributionLine `json:"lines"`
}

// EmployeeContribution is the monthly employer contribution for a single
// employee, split into its legally defined components. Each component is
// rounded independently before Total is summed.
type EmployeeContribution struct {
	Name    string `json:"name"`
	Salary  Money  `json:"salary"`
	Pension Money  `json:"pension"`
	Medical Money  `json:"medical"`
	Social  Money  `json:"social"`
	Total   Money  `json:"total"`
}

// EmployeeContributionsResult aggregates employer contributions across the
// supplied salary list. Aggregates are simple sums, there is no
// cross-employee cap.
type EmployeeContributionsResult struct {
	Year         int                    `json:"year"`
	Employees    []EmployeeContribution `json:"employees"`
	TotalPension Money                  `json:"totalPension"`
	TotalMedical Money                  `json:"totalMedical"`
	TotalSocial  Money                  `json:"totalSocial"`
	Total        Money                  `json:"total"`
}
