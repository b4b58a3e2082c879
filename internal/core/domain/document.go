package domain

import "time"

// DocumentKind identifies the type of an accounting document.
type DocumentKind string

const (
	DocInvoice         DocumentKind = "INVOICE"
	DocAct             DocumentKind = "ACT"
	DocInvoiceUPD      DocumentKind = "INVOICE_UPD"
	DocPurchaseInvoice DocumentKind = "PURCHASE_INVOICE"
	DocExpense         DocumentKind = "EXPENSE"
)

// PaymentStatus indicates whether a document or tax payment has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
)

// AccountingDocument is an issued or received document (invoice, act,
// purchase invoice, ...). A document whose VATAmount is zero carries no VAT
// and contributes nothing to VAT totals.
type AccountingDocument struct {
	DocumentID    string        `json:"documentID"`
	Kind          DocumentKind  `json:"kind"`
	Date          time.Time     `json:"date"`
	TotalAmount   Money         `json:"totalAmount"`
	VATAmount     Money         `json:"vatAmount,omitempty"`
	Counterparty  string        `json:"counterparty,omitempty"`
	TenderID      string        `json:"tenderID,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
}

// VATDirection classifies a document's VAT as charged on sales (output) or
// paid on purchases (input).
type VATDirection string

const (
	VATOutput VATDirection = "OUTPUT"
	VATInput  VATDirection = "INPUT"
)

// ClassifyVAT maps a document kind to its VAT direction. Documents the
// tenant issued carry output VAT, documents it received carry input VAT.
// The second return value is false for kinds outside the known set; such
// documents contribute to neither bucket.
func ClassifyVAT(kind DocumentKind) (VATDirection, bool) {
	switch kind {
	case DocInvoice, DocAct, DocInvoiceUPD:
		return VATOutput, true
	case DocPurchaseInvoice, DocExpense:
		return VATInput, true
	default:
		return "", false
	}
}
