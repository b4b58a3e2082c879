package dto

import (
	"github.com/shopspring/decimal"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// LedgerReportRequest carries the ledger snapshot and period for the
// income/expense and profit-and-loss reports.
type LedgerReportRequest struct {
	From    string               `json:"from" binding:"required,isodate"`
	To      string               `json:"to" binding:"required,isodate"`
	Entries []LedgerEntryRequest `json:"entries" binding:"dive"`
}

// CounterpartyReportRequest carries the document snapshot and period for
// the counterparty debt report.
type CounterpartyReportRequest struct {
	From      string            `json:"from" binding:"required,isodate"`
	To        string            `json:"to" binding:"required,isodate"`
	Documents []DocumentRequest `json:"documents" binding:"dive"`
}

// TenderRequest is one contract/tender to evaluate profitability for.
type TenderRequest struct {
	TenderID string `json:"tenderID" binding:"required"`
	Name     string `json:"name"`
	Status   string `json:"status" binding:"required,oneof=WON LOST SUBMITTED"`
}

// TenderReportRequest carries tenders and the entries linked to them.
type TenderReportRequest struct {
	Tenders []TenderRequest      `json:"tenders" binding:"dive"`
	Entries []LedgerEntryRequest `json:"entries" binding:"dive"`
}

// ToTenders converts request rows to domain tenders.
func ToTenders(rows []TenderRequest) []domain.Tender {
	tenders := make([]domain.Tender, len(rows))
	for i, r := range rows {
		tenders[i] = domain.Tender{
			TenderID: r.TenderID,
			Name:     r.Name,
			Status:   domain.TenderStatus(r.Status),
		}
	}
	return tenders
}

// CategoryTotalResponse is one category row of a breakdown report.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   domain.Money    `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

func toCategoryTotalResponses(rows []domain.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(rows))
	for i, r := range rows {
		responses[i] = CategoryTotalResponse{Category: r.Category, Amount: r.Amount, Percent: r.Percent}
	}
	return responses
}

// MonthTotalResponse is the income/expense total of one calendar month.
type MonthTotalResponse struct {
	Month   string       `json:"month"`
	Income  domain.Money `json:"income"`
	Expense domain.Money `json:"expense"`
}

// IncomeExpenseReportResponse is the month/category breakdown report.
type IncomeExpenseReportResponse struct {
	From                 string                  `json:"from"`
	To                   string                  `json:"to"`
	TotalIncome          domain.Money            `json:"totalIncome"`
	TotalExpense         domain.Money            `json:"totalExpense"`
	ByMonth              []MonthTotalResponse    `json:"byMonth"`
	IncomeByCounterparty []CategoryTotalResponse `json:"incomeByCounterparty"`
	ExpenseByCategory    []CategoryTotalResponse `json:"expenseByCategory"`
	TopIncome            []CategoryTotalResponse `json:"topIncome"`
	TopExpense           []CategoryTotalResponse `json:"topExpense"`
}

// ToIncomeExpenseReportResponse converts a domain report to a DTO.
func ToIncomeExpenseReportResponse(report *domain.IncomeExpenseReport) IncomeExpenseReportResponse {
	response := IncomeExpenseReportResponse{
		From:                 report.From.Format(dateLayout),
		To:                   report.To.Format(dateLayout),
		TotalIncome:          report.TotalIncome,
		TotalExpense:         report.TotalExpense,
		ByMonth:              make([]MonthTotalResponse, len(report.ByMonth)),
		IncomeByCounterparty: toCategoryTotalResponses(report.IncomeByCounterparty),
		ExpenseByCategory:    toCategoryTotalResponses(report.ExpenseByCategory),
		TopIncome:            toCategoryTotalResponses(report.TopIncome),
		TopExpense:           toCategoryTotalResponses(report.TopExpense),
	}
	for i, m := range report.ByMonth {
		response.ByMonth[i] = MonthTotalResponse{Month: m.Month, Income: m.Income, Expense: m.Expense}
	}
	return response
}

// ProfitAndLossReportResponse is the derived P&L statement.
type ProfitAndLossReportResponse struct {
	From                   string                  `json:"from"`
	To                     string                  `json:"to"`
	Revenue                domain.Money            `json:"revenue"`
	CostOfSales            domain.Money            `json:"costOfSales"`
	GrossProfit            domain.Money            `json:"grossProfit"`
	OperatingExpenses      []CategoryTotalResponse `json:"operatingExpenses"`
	TotalOperatingExpenses domain.Money            `json:"totalOperatingExpenses"`
	OperatingProfit        domain.Money            `json:"operatingProfit"`
	Taxes                  domain.Money            `json:"taxes"`
	NetProfit              domain.Money            `json:"netProfit"`
	ProfitMargin           decimal.Decimal         `json:"profitMargin"`
}

// ToProfitAndLossReportResponse converts a domain report to a DTO.
func ToProfitAndLossReportResponse(report *domain.ProfitAndLossReport) ProfitAndLossReportResponse {
	return ProfitAndLossReportResponse{
		From:                   report.From.Format(dateLayout),
		To:                     report.To.Format(dateLayout),
		Revenue:                report.Revenue,
		CostOfSales:            report.CostOfSales,
		GrossProfit:            report.GrossProfit,
		OperatingExpenses:      toCategoryTotalResponses(report.OperatingExpenses),
		TotalOperatingExpenses: report.TotalOperatingExpenses,
		OperatingProfit:        report.OperatingProfit,
		Taxes:                  report.Taxes,
		NetProfit:              report.NetProfit,
		ProfitMargin:           report.ProfitMargin,
	}
}

// CounterpartyBalanceResponse is one counterparty debt row.
type CounterpartyBalanceResponse struct {
	Counterparty string       `json:"counterparty"`
	Documents    int          `json:"documents"`
	Invoiced     domain.Money `json:"invoiced"`
	Paid         domain.Money `json:"paid"`
	Debt         domain.Money `json:"debt"`
}

// CounterpartyReportResponse is the counterparty debt report.
type CounterpartyReportResponse struct {
	From          string                        `json:"from"`
	To            string                        `json:"to"`
	Rows          []CounterpartyBalanceResponse `json:"rows"`
	TotalInvoiced domain.Money                  `json:"totalInvoiced"`
	TotalPaid     domain.Money                  `json:"totalPaid"`
	TotalDebt     domain.Money                  `json:"totalDebt"`
}

// ToCounterpartyReportResponse converts a domain report to a DTO.
func ToCounterpartyReportResponse(report *domain.CounterpartyReport) CounterpartyReportResponse {
	response := CounterpartyReportResponse{
		From:          report.From.Format(dateLayout),
		To:            report.To.Format(dateLayout),
		Rows:          make([]CounterpartyBalanceResponse, len(report.Rows)),
		TotalInvoiced: report.TotalInvoiced,
		TotalPaid:     report.TotalPaid,
		TotalDebt:     report.TotalDebt,
	}
	for i, row := range report.Rows {
		response.Rows[i] = CounterpartyBalanceResponse{
			Counterparty: row.Counterparty,
			Documents:    row.Documents,
			Invoiced:     row.Invoiced,
			Paid:         row.Paid,
			Debt:         row.Debt,
		}
	}
	return response
}

// TenderProfitResponse is the profitability of one tender.
type TenderProfitResponse struct {
	TenderID string          `json:"tenderID"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
	Income   domain.Money    `json:"income"`
	Expense  domain.Money    `json:"expense"`
	Profit   domain.Money    `json:"profit"`
	Margin   decimal.Decimal `json:"margin"`
}

// TenderReportResponse is the tender profitability report.
type TenderReportResponse struct {
	Rows        []TenderProfitResponse `json:"rows"`
	TotalCount  int                    `json:"totalCount"`
	WonCount    int                    `json:"wonCount"`
	WinRate     decimal.Decimal        `json:"winRate"`
	TotalProfit domain.Money           `json:"totalProfit"`
}

// ToTenderReportResponse converts a domain report to a DTO.
func ToTenderReportResponse(report *domain.TenderReport) TenderReportResponse {
	response := TenderReportResponse{
		Rows:        make([]TenderProfitResponse, len(report.Rows)),
		TotalCount:  report.TotalCount,
		WonCount:    report.WonCount,
		WinRate:     report.WinRate,
		TotalProfit: report.TotalProfit,
	}
	for i, row := range report.Rows {
		response.Rows[i] = TenderProfitResponse{
			TenderID: row.TenderID,
			Name:     row.Name,
			Status:   string(row.Status),
			Income:   row.Income,
			Expense:  row.Expense,
			Profit:   row.Profit,
			Margin:   row.Margin,
		}
	}
	return response
}
