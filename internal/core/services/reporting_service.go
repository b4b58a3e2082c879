package services

import (
	"context"
	"sort"
	"time"

	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
}

// NewReportingService creates a new reporting service
func NewReportingService() portssvc.ReportingSvc {
	return &reportingService{}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// categoryAccumulator keeps per-label totals in first-encountered order so
// that tie-breaking stays deterministic after sorting by amount.
type categoryAccumulator struct {
	order  []string
	totals map[string]domain.Money
}

func newCategoryAccumulator() *categoryAccumulator {
	return &categoryAccumulator{totals: map[string]domain.Money{}}
}

func (a *categoryAccumulator) add(label string, amount domain.Money) {
	if _, seen := a.totals[label]; !seen {
		a.order = append(a.order, label)
	}
	a.totals[label] += amount
}

// rows returns the categories sorted by amount descending, ties keeping
// first-encountered order, with percentages of the supplied total.
func (a *categoryAccumulator) rows(total domain.Money) []domain.CategoryTotal {
	rows := make([]domain.CategoryTotal, 0, len(a.order))
	for _, label := range a.order {
		rows = append(rows, domain.CategoryTotal{
			Category: label,
			Amount:   a.totals[label],
			Percent:  domain.Percent(a.totals[label], total),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Amount > rows[j].Amount })
	return rows
}

func topFive(rows []domain.CategoryTotal) []domain.CategoryTotal {
	if len(rows) > 5 {
		return rows[:5]
	}
	return rows
}

func inWindow(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

// counterpartyLabel is the income category for entries without a recorded
// counterparty.
const counterpartyLabel = "Не указан"

// IncomeExpense partitions entries inside the inclusive window by calendar
// month and by category: expenses through the keyword categorizer, income
// by counterparty name.
func (s *reportingService) IncomeExpense(ctx context.Context, from, to time.Time, entries []domain.LedgerEntry) (*domain.IncomeExpenseReport, error) {
	report := &domain.IncomeExpenseReport{From: from, To: to}

	months := map[string]*domain.MonthTotal{}
	var monthOrder []string
	income := newCategoryAccumulator()
	expense := newCategoryAccumulator()

	for _, e := range entries {
		if !inWindow(e.Date, from, to) {
			continue
		}
		month := e.Date.Format("2006-01")
		bucket, ok := months[month]
		if !ok {
			bucket = &domain.MonthTotal{Month: month}
			months[month] = bucket
			monthOrder = append(monthOrder, month)
		}
		switch e.Kind {
		case domain.EntryIncome:
			bucket.Income += e.Amount
			report.TotalIncome += e.Amount
			label := e.Counterparty
			if label == "" {
				label = counterpartyLabel
			}
			income.add(label, e.Amount)
		case domain.EntryExpense:
			bucket.Expense += e.Amount
			report.TotalExpense += e.Amount
			expense.add(domain.CategorizeExpense(e.Description), e.Amount)
		}
	}

	sort.Strings(monthOrder)
	report.ByMonth = make([]domain.MonthTotal, 0, len(monthOrder))
	for _, m := range monthOrder {
		report.ByMonth = append(report.ByMonth, *months[m])
	}

	report.IncomeByCounterparty = income.rows(report.TotalIncome)
	report.ExpenseByCategory = expense.rows(report.TotalExpense)
	report.TopIncome = topFive(report.IncomeByCounterparty)
	report.TopExpense = topFive(report.ExpenseByCategory)

	s.LogInfo(ctx, "Income/expense report generated",
		slog.Int64("total_income", int64(report.TotalIncome)),
		slog.Int64("total_expense", int64(report.TotalExpense)),
		slog.Int("months", len(report.ByMonth)))
	return report, nil
}

// ProfitAndLoss derives a P&L statement from the categorized entries:
// purchases form the cost of sales, taxes are netted last, every other
// expense category is an operating expense bucket.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time, entries []domain.LedgerEntry) (*domain.ProfitAndLossReport, error) {
	report := &domain.ProfitAndLossReport{From: from, To: to}
	operating := newCategoryAccumulator()

	for _, e := range entries {
		if !inWindow(e.Date, from, to) {
			continue
		}
		switch e.Kind {
		case domain.EntryIncome:
			report.Revenue += e.Amount
		case domain.EntryExpense:
			switch category := domain.CategorizeExpense(e.Description); category {
			case domain.CategoryPurchases:
				report.CostOfSales += e.Amount
			case domain.CategoryTaxes:
				report.Taxes += e.Amount
			default:
				operating.add(category, e.Amount)
				report.TotalOperatingExpenses += e.Amount
			}
		}
	}

	// Operating expense percentages are shares of revenue, matching the
	// statement's other lines.
	report.OperatingExpenses = operating.rows(report.Revenue)
	report.GrossProfit = report.Revenue - report.CostOfSales
	report.OperatingProfit = report.GrossProfit - report.TotalOperatingExpenses
	report.NetProfit = report.OperatingProfit - report.Taxes
	report.ProfitMargin = domain.Percent(report.NetProfit, report.Revenue)

	s.LogInfo(ctx, "Profit and loss report generated",
		slog.Int64("revenue", int64(report.Revenue)),
		slog.Int64("net_profit", int64(report.NetProfit)))
	return report, nil
}

// CounterpartyDebt computes the invoiced vs paid position per counterparty
// over the issued documents inside the window. Debt is what was invoiced
// minus what is already settled; counterparties without documents in the
// period are simply absent.
func (s *reportingService) CounterpartyDebt(ctx context.Context, from, to time.Time, documents []domain.AccountingDocument) (*domain.CounterpartyReport, error) {
	report := &domain.CounterpartyReport{From: from, To: to}

	balances := map[string]*domain.CounterpartyBalance{}
	var order []string

	for _, doc := range documents {
		if !inWindow(doc.Date, from, to) {
			continue
		}
		if direction, ok := domain.ClassifyVAT(doc.Kind); !ok || direction != domain.VATOutput {
			// Only documents the tenant issued create receivables.
			continue
		}
		name := doc.Counterparty
		if name == "" {
			name = counterpartyLabel
		}
		balance, ok := balances[name]
		if !ok {
			balance = &domain.CounterpartyBalance{Counterparty: name}
			balances[name] = balance
			order = append(order, name)
		}
		balance.Documents++
		balance.Invoiced += doc.TotalAmount
		if doc.PaymentStatus == domain.PaymentPaid {
			balance.Paid += doc.TotalAmount
		}
	}

	report.Rows = make([]domain.CounterpartyBalance, 0, len(order))
	for _, name := range order {
		balance := balances[name]
		balance.Debt = balance.Invoiced - balance.Paid
		report.TotalInvoiced += balance.Invoiced
		report.TotalPaid += balance.Paid
		report.TotalDebt += balance.Debt
		report.Rows = append(report.Rows, *balance)
	}
	sort.SliceStable(report.Rows, func(i, j int) bool { return report.Rows[i].Debt > report.Rows[j].Debt })

	s.LogInfo(ctx, "Counterparty debt report generated",
		slog.Int("counterparties", len(report.Rows)),
		slog.Int64("total_debt", int64(report.TotalDebt)))
	return report, nil
}

// TenderProfitability computes per-tender profit from the ledger entries
// linked to each tender, plus the aggregate win rate.
func (s *reportingService) TenderProfitability(ctx context.Context, tenders []domain.Tender, entries []domain.LedgerEntry) (*domain.TenderReport, error) {
	incomeByTender := map[string]domain.Money{}
	expenseByTender := map[string]domain.Money{}
	for _, e := range entries {
		if e.TenderID == "" {
			continue
		}
		switch e.Kind {
		case domain.EntryIncome:
			incomeByTender[e.TenderID] += e.Amount
		case domain.EntryExpense:
			expenseByTender[e.TenderID] += e.Amount
		}
	}

	report := &domain.TenderReport{
		Rows:       make([]domain.TenderProfit, 0, len(tenders)),
		TotalCount: len(tenders),
	}
	for _, t := range tenders {
		income := incomeByTender[t.TenderID]
		expense := expenseByTender[t.TenderID]
		profit := income - expense
		report.Rows = append(report.Rows, domain.TenderProfit{
			TenderID: t.TenderID,
			Name:     t.Name,
			Status:   t.Status,
			Income:   income,
			Expense:  expense,
			Profit:   profit,
			Margin:   domain.Percent(profit, income),
		})
		report.TotalProfit += profit
		if t.Status == domain.TenderWon {
			report.WonCount++
		}
	}

	if report.TotalCount > 0 {
		report.WinRate = decimal.NewFromInt(int64(report.WonCount)).
			Div(decimal.NewFromInt(int64(report.TotalCount))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	} else {
		report.WinRate = decimal.Zero
	}

	s.LogInfo(ctx, "Tender profitability report generated",
		slog.Int("tenders", report.TotalCount),
		slog.Int("won", report.WonCount))
	return report, nil
}
