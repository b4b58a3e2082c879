package dto

import (
	"fmt"
	"time"

	"github.com/zenbalans/taxengine_app/internal/apperrors"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// dateLayout is the wire format for all dates in request and response bodies.
const dateLayout = "2006-01-02"

// LedgerEntryRequest is one dated income or expense row of a ledger
// snapshot. Amounts are minor units (kopecks); negative amounts are
// rejected at binding.
type LedgerEntryRequest struct {
	Date         string `json:"date" binding:"required,isodate"`
	Kind         string `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Amount       int64  `json:"amount" binding:"gte=0"`
	Description  string `json:"description"`
	Counterparty string `json:"counterparty"`
	TenderID     string `json:"tenderID"`
}

// TaxPaymentRequest is one already-remitted tax payment. Period carries a
// quarter tag of the form "Q1".."Q4"; tags that do not parse are excluded
// from totals by the calculators, not rejected here.
type TaxPaymentRequest struct {
	TaxKind    string `json:"taxKind" binding:"required,oneof=USN INSURANCE"`
	Period     string `json:"period" binding:"required"`
	DueDate    string `json:"dueDate" binding:"omitempty,isodate"`
	PaidAmount int64  `json:"paidAmount" binding:"gte=0"`
	Status     string `json:"status" binding:"required,oneof=PAID PENDING"`
}

// DocumentRequest is one accounting document. Kind is deliberately not
// restricted to the known set: a document of an unknown kind is excluded
// from totals (and counted), never a request error.
type DocumentRequest struct {
	DocumentID    string `json:"documentID"`
	Kind          string `json:"kind" binding:"required"`
	Date          string `json:"date" binding:"required,isodate"`
	TotalAmount   int64  `json:"totalAmount" binding:"gte=0"`
	VATAmount     int64  `json:"vatAmount" binding:"gte=0"`
	Counterparty  string `json:"counterparty"`
	TenderID      string `json:"tenderID"`
	PaymentStatus string `json:"paymentStatus" binding:"omitempty,oneof=PAID PENDING"`
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}

// ToLedgerEntries converts request rows to domain ledger entries.
func ToLedgerEntries(rows []LedgerEntryRequest) ([]domain.LedgerEntry, error) {
	entries := make([]domain.LedgerEntry, 0, len(rows))
	for _, r := range rows {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.LedgerEntry{
			Date:         date,
			Kind:         domain.EntryKind(r.Kind),
			Amount:       domain.Money(r.Amount),
			Description:  r.Description,
			Counterparty: r.Counterparty,
			TenderID:     r.TenderID,
		})
	}
	return entries, nil
}

// ToTaxPayments converts request rows to domain tax payments.
func ToTaxPayments(rows []TaxPaymentRequest) ([]domain.TaxPayment, error) {
	payments := make([]domain.TaxPayment, 0, len(rows))
	for _, r := range rows {
		var dueDate time.Time
		if r.DueDate != "" {
			parsed, err := parseDate(r.DueDate)
			if err != nil {
				return nil, err
			}
			dueDate = parsed
		}
		payments = append(payments, domain.TaxPayment{
			TaxKind:    domain.TaxKind(r.TaxKind),
			Period:     r.Period,
			DueDate:    dueDate,
			PaidAmount: domain.Money(r.PaidAmount),
			Status:     domain.PaymentStatus(r.Status),
		})
	}
	return payments, nil
}

// ToDocuments converts request rows to domain accounting documents.
func ToDocuments(rows []DocumentRequest) ([]domain.AccountingDocument, error) {
	documents := make([]domain.AccountingDocument, 0, len(rows))
	for _, r := range rows {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, err
		}
		documents = append(documents, domain.AccountingDocument{
			DocumentID:    r.DocumentID,
			Kind:          domain.DocumentKind(r.Kind),
			Date:          date,
			TotalAmount:   domain.Money(r.TotalAmount),
			VATAmount:     domain.Money(r.VATAmount),
			Counterparty:  r.Counterparty,
			TenderID:      r.TenderID,
			PaymentStatus: domain.PaymentStatus(r.PaymentStatus),
		})
	}
	return documents, nil
}
