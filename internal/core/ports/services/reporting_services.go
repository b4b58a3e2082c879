package services

import (
	"context"
	"time"

	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// ReportingSvc defines operations for generating financial reports over a
// ledger snapshot.
type ReportingSvc interface {
	// IncomeExpense partitions entries by month and category.
	IncomeExpense(ctx context.Context, from, to time.Time, entries []domain.LedgerEntry) (*domain.IncomeExpenseReport, error)

	// ProfitAndLoss derives a P&L statement from categorized entries.
	ProfitAndLoss(ctx context.Context, from, to time.Time, entries []domain.LedgerEntry) (*domain.ProfitAndLossReport, error)

	// CounterpartyDebt computes per-counterparty invoiced vs paid positions.
	CounterpartyDebt(ctx context.Context, from, to time.Time, documents []domain.AccountingDocument) (*domain.CounterpartyReport, error)

	// TenderProfitability computes per-tender profit and the aggregate win rate.
	TenderProfitability(ctx context.Context, tenders []domain.Tender, entries []domain.LedgerEntry) (*domain.TenderReport, error)
}
