package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one category row of a breakdown report: the category
// label, its total amount and its share of the period total in percent.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   Money           `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// MonthTotal is the income/expense total of one calendar month ("YYYY-MM").
type MonthTotal struct {
	Month   string `json:"month"`
	Income  Money  `json:"income"`
	Expense Money  `json:"expense"`
}

// IncomeExpenseReport partitions ledger entries by month and by category.
// Expenses are categorized by description keywords, income by counterparty.
// Category lists are ordered by amount descending, ties keeping
// first-encountered order; Top lists are the first five rows of those.
type IncomeExpenseReport struct {
	From                 time.Time       `json:"from"`
	To                   time.Time       `json:"to"`
	TotalIncome          Money           `json:"totalIncome"`
	TotalExpense         Money           `json:"totalExpense"`
	ByMonth              []MonthTotal    `json:"byMonth"`
	IncomeByCounterparty []CategoryTotal `json:"incomeByCounterparty"`
	ExpenseByCategory    []CategoryTotal `json:"expenseByCategory"`
	TopIncome            []CategoryTotal `json:"topIncome"`
	TopExpense           []CategoryTotal `json:"topExpense"`
}

// ProfitAndLossReport derives a P&L statement from categorized entries:
// purchases form the cost of sales, taxes are broken out separately, every
// other expense category is an operating expense bucket.
type ProfitAndLossReport struct {
	From                   time.Time       `json:"from"`
	To                     time.Time       `json:"to"`
	Revenue                Money           `json:"revenue"`
	CostOfSales            Money           `json:"costOfSales"`
	GrossProfit            Money           `json:"grossProfit"`
	OperatingExpenses      []CategoryTotal `json:"operatingExpenses"`
	TotalOperatingExpenses Money           `json:"totalOperatingExpenses"`
	OperatingProfit        Money           `json:"operatingProfit"`
	Taxes                  Money           `json:"taxes"`
	NetProfit              Money           `json:"netProfit"`
	ProfitMargin           decimal.Decimal `json:"profitMargin"` // percent of revenue
}

// CounterpartyBalance is the invoiced/paid/debt position of one
// counterparty over a period. Counterparties without documents in the
// period do not appear in the report at all.
type CounterpartyBalance struct {
	Counterparty string `json:"counterparty"`
	Documents    int    `json:"documents"`
	Invoiced     Money  `json:"invoiced"`
	Paid         Money  `json:"paid"`
	Debt         Money  `json:"debt"`
}

// CounterpartyReport lists per-counterparty debt positions, largest debt
// first.
type CounterpartyReport struct {
	From          time.Time             `json:"from"`
	To            time.Time             `json:"to"`
	Rows          []CounterpartyBalance `json:"rows"`
	TotalInvoiced Money                 `json:"totalInvoiced"`
	TotalPaid     Money                 `json:"totalPaid"`
	TotalDebt     Money                 `json:"totalDebt"`
}

// TenderStatus is the lifecycle state of a tender/contract.
type TenderStatus string

const (
	TenderWon       TenderStatus = "WON"
	TenderLost      TenderStatus = "LOST"
	TenderSubmitted TenderStatus = "SUBMITTED"
)

// Tender is a contract or tender the tenant participated in.
type Tender struct {
	TenderID string       `json:"tenderID"`
	Name     string       `json:"name"`
	Status   TenderStatus `json:"status"`
}

// TenderProfit is the profitability of one tender, derived from ledger
// entries linked to it.
type TenderProfit struct {
	TenderID string          `json:"tenderID"`
	Name     string          `json:"name"`
	Status   TenderStatus    `json:"status"`
	Income   Money           `json:"income"`
	Expense  Money           `json:"expense"`
	Profit   Money           `json:"profit"`
	Margin   decimal.Decimal `json:"margin"` // percent of tender income
}

// TenderReport aggregates tender profitability and the win rate across all
// supplied tenders. WinRate is zero when there are no tenders.
type TenderReport struct {
	Rows        []TenderProfit  `json:"rows"`
	TotalCount  int             `json:"totalCount"`
	WonCount    int             `json:"wonCount"`
	WinRate     decimal.Decimal `json:"winRate"` // percent
	TotalProfit Money           `json:"totalProfit"`
}
