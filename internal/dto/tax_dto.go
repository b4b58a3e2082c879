package dto

import (
	"github.com/shopspring/decimal"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

// USN6Request carries the ledger snapshot for a revenue-tax calculation.
type USN6Request struct {
	Year         int                  `json:"year" binding:"required"`
	HasEmployees bool                 `json:"hasEmployees"`
	Entries      []LedgerEntryRequest `json:"entries" binding:"dive"`
	Payments     []TaxPaymentRequest  `json:"payments" binding:"dive"`
}

// USN15Request carries the ledger snapshot for a profit-tax calculation.
type USN15Request struct {
	Year     int                  `json:"year" binding:"required"`
	Entries  []LedgerEntryRequest `json:"entries" binding:"dive"`
	Payments []TaxPaymentRequest  `json:"payments" binding:"dive"`
}

// VATRequest carries the documents and the inclusive date window for a VAT
// extraction.
type VATRequest struct {
	From      string            `json:"from" binding:"required,isodate"`
	To        string            `json:"to" binding:"required,isodate"`
	Documents []DocumentRequest `json:"documents" binding:"dive"`
}

// USN6QuarterResponse is one cumulative quarter of the USN 6% breakdown.
type USN6QuarterResponse struct {
	Quarter            int          `json:"quarter"`
	Income             domain.Money `json:"income"`
	TaxCalculated      domain.Money `json:"taxCalculated"`
	MaxDeduction       domain.Money `json:"maxDeduction"`
	InsurancePaid      domain.Money `json:"insurancePaid"`
	InsuranceDeduction domain.Money `json:"insuranceDeduction"`
	TaxAfterDeduction  domain.Money `json:"taxAfterDeduction"`
	AdvancesPaid       domain.Money `json:"advancesPaid"`
	AdvanceDue         domain.Money `json:"advanceDue"`
}

// USN6Response is the full revenue-tax calculation result.
type USN6Response struct {
	Year     int                   `json:"year"`
	Quarters []USN6QuarterResponse `json:"quarters"`
	Summary  struct {
		Income             domain.Money    `json:"income"`
		TaxCalculated      domain.Money    `json:"taxCalculated"`
		InsuranceDeduction domain.Money    `json:"insuranceDeduction"`
		TaxToPay           domain.Money    `json:"taxToPay"`
		EffectiveRate      decimal.Decimal `json:"effectiveRate"`
	} `json:"summary"`
	ExcludedPayments int `json:"excludedPayments"`
}

// ToUSN6Response converts a domain USN6 result to a response DTO.
func ToUSN6Response(result *domain.USN6Result) USN6Response {
	response := USN6Response{
		Year:             result.Year,
		Quarters:         make([]USN6QuarterResponse, len(result.Quarters)),
		ExcludedPayments: result.ExcludedPayments,
	}
	for i, q := range result.Quarters {
		response.Quarters[i] = USN6QuarterResponse{
			Quarter:            q.Quarter,
			Income:             q.Income,
			TaxCalculated:      q.TaxCalculated,
			MaxDeduction:       q.MaxDeduction,
			InsurancePaid:      q.InsurancePaid,
			InsuranceDeduction: q.InsuranceDeduction,
			TaxAfterDeduction:  q.TaxAfterDeduction,
			AdvancesPaid:       q.AdvancesPaid,
			AdvanceDue:         q.AdvanceDue,
		}
	}
	response.Summary.Income = result.Summary.Income
	response.Summary.TaxCalculated = result.Summary.TaxCalculated
	response.Summary.InsuranceDeduction = result.Summary.InsuranceDeduction
	response.Summary.TaxToPay = result.Summary.TaxToPay
	response.Summary.EffectiveRate = result.Summary.EffectiveRate
	return response
}

// USN15QuarterResponse is one cumulative quarter of the USN 15% breakdown.
type USN15QuarterResponse struct {
	Quarter       int          `json:"quarter"`
	Income        domain.Money `json:"income"`
	Expense       domain.Money `json:"expense"`
	TaxBase       domain.Money `json:"taxBase"`
	TaxCalculated domain.Money `json:"taxCalculated"`
	AdvancesPaid  domain.Money `json:"advancesPaid"`
	AdvanceDue    domain.Money `json:"advanceDue"`
}

// USN15Response is the full profit-tax calculation result.
type USN15Response struct {
	Year     int                    `json:"year"`
	Quarters []USN15QuarterResponse `json:"quarters"`
	Summary  struct {
		Income        domain.Money    `json:"income"`
		Expense       domain.Money    `json:"expense"`
		TaxBase       domain.Money    `json:"taxBase"`
		TaxCalculated domain.Money    `json:"taxCalculated"`
		MinimumTax    domain.Money    `json:"minimumTax"`
		IsMinTax      bool            `json:"isMinTax"`
		TaxToPay      domain.Money    `json:"taxToPay"`
		EffectiveRate decimal.Decimal `json:"effectiveRate"`
	} `json:"summary"`
	ExcludedPayments int `json:"excludedPayments"`
}

// ToUSN15Response converts a domain USN15 result to a response DTO.
func ToUSN15Response(result *domain.USN15Result) USN15Response {
	response := USN15Response{
		Year:             result.Year,
		Quarters:         make([]USN15QuarterResponse, len(result.Quarters)),
		ExcludedPayments: result.ExcludedPayments,
	}
	for i, q := range result.Quarters {
		response.Quarters[i] = USN15QuarterResponse{
			Quarter:       q.Quarter,
			Income:        q.Income,
			Expense:       q.Expense,
			TaxBase:       q.TaxBase,
			TaxCalculated: q.TaxCalculated,
			AdvancesPaid:  q.AdvancesPaid,
			AdvanceDue:    q.AdvanceDue,
		}
	}
	response.Summary.Income = result.Summary.Income
	response.Summary.Expense = result.Summary.Expense
	response.Summary.TaxBase = result.Summary.TaxBase
	response.Summary.TaxCalculated = result.Summary.TaxCalculated
	response.Summary.MinimumTax = result.Summary.MinimumTax
	response.Summary.IsMinTax = result.Summary.IsMinTax
	response.Summary.TaxToPay = result.Summary.TaxToPay
	response.Summary.EffectiveRate = result.Summary.EffectiveRate
	return response
}

// VATLineItemResponse is one document that contributed VAT in the window.
type VATLineItemResponse struct {
	DocumentID   string       `json:"documentID"`
	Kind         string       `json:"kind"`
	Direction    string       `json:"direction"`
	Date         string       `json:"date"`
	Counterparty string       `json:"counterparty,omitempty"`
	VATAmount    domain.Money `json:"vatAmount"`
}

// VATResponse is the VAT extraction result for a window.
type VATResponse struct {
	OutputVAT         domain.Money          `json:"outputVAT"`
	InputVAT          domain.Money          `json:"inputVAT"`
	VATToPay          domain.Money          `json:"vatToPay"`
	VATToRefund       domain.Money          `json:"vatToRefund"`
	Lines             []VATLineItemResponse `json:"lines"`
	ExcludedDocuments int                   `json:"excludedDocuments"`
}

// ToVATResponse converts a domain VAT result to a response DTO.
func ToVATResponse(result *domain.VATResult) VATResponse {
	response := VATResponse{
		OutputVAT:         result.OutputVAT,
		InputVAT:          result.InputVAT,
		VATToPay:          result.VATToPay,
		VATToRefund:       result.VATToRefund,
		Lines:             make([]VATLineItemResponse, len(result.Lines)),
		ExcludedDocuments: result.ExcludedDocuments,
	}
	for i, line := range result.Lines {
		response.Lines[i] = VATLineItemResponse{
			DocumentID:   line.DocumentID,
			Kind:         string(line.Kind),
			Direction:    string(line.Direction),
			Date:         line.Date.Format(dateLayout),
			Counterparty: line.Counterparty,
			VATAmount:    line.VATAmount,
		}
	}
	return response
}

// TaxParamsResponse exposes the law-defined constant set for one year.
type TaxParamsResponse struct {
	Year                  int             `json:"year"`
	USNIncomeRate         decimal.Decimal `json:"usnIncomeRate"`
	USNProfitRate         decimal.Decimal `json:"usnProfitRate"`
	USNMinimumRate        decimal.Decimal `json:"usnMinimumRate"`
	VATRate               decimal.Decimal `json:"vatRate"`
	FixedContribution     domain.Money    `json:"fixedContribution"`
	ExcessIncomeThreshold domain.Money    `json:"excessIncomeThreshold"`
	ExcessIncomeRate      decimal.Decimal `json:"excessIncomeRate"`
	PensionCap            domain.Money    `json:"pensionCap"`
	WageThreshold         domain.Money    `json:"wageThreshold"`
}

// ToTaxParamsResponse converts a domain parameter set to a response DTO.
func ToTaxParamsResponse(params domain.TaxParams) TaxParamsResponse {
	return TaxParamsResponse{
		Year:                  params.Year,
		USNIncomeRate:         params.USNIncomeRate,
		USNProfitRate:         params.USNProfitRate,
		USNMinimumRate:        params.USNMinimumRate,
		VATRate:               params.VATRate,
		FixedContribution:     params.FixedContribution,
		ExcessIncomeThreshold: params.ExcessIncomeThreshold,
		ExcessIncomeRate:      params.ExcessIncomeRate,
		PensionCap:            params.PensionCap,
		WageThreshold:         params.WageThreshold,
	}
}
