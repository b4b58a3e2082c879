package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zenbalans/taxengine_app/internal/apperrors"
)

// TaxParams is the law-defined constant set for one fiscal year: USN rates,
// entrepreneur contribution constants and employer contribution tariffs.
// Values are loaded once and only ever handed out by value, so concurrent
// requests for different years never race.
type TaxParams struct {
	Year int

	// Simplified taxation (USN).
	USNIncomeRate  decimal.Decimal // revenue variant, 6%
	USNProfitRate  decimal.Decimal // revenue-minus-expense variant, 15%
	USNMinimumRate decimal.Decimal // minimum tax on revenue, 1%

	// VAT.
	VATRate decimal.Decimal

	// Entrepreneur (IP) contributions.
	FixedContribution     Money           // fixed annual amount
	ExcessIncomeThreshold Money           // income above which the excess rate applies
	ExcessIncomeRate      decimal.Decimal // 1% of income above the threshold
	PensionCap            Money           // hard cap on fixed + excess combined

	// Employer contributions, split at the monthly wage threshold (MROT).
	WageThreshold      Money
	PensionRateFull    decimal.Decimal
	PensionRateReduced decimal.Decimal
	MedicalRateFull    decimal.Decimal
	MedicalRateReduced decimal.Decimal
	SocialRateFull     decimal.Decimal // no reduced social rate above the threshold
}

var (
	rate6    = decimal.RequireFromString("0.06")
	rate15   = decimal.RequireFromString("0.15")
	rate1    = decimal.RequireFromString("0.01")
	rate20   = decimal.RequireFromString("0.20")
	rate22   = decimal.RequireFromString("0.22")
	rate10   = decimal.RequireFromString("0.10")
	rate51   = decimal.RequireFromString("0.051")
	rate50   = decimal.RequireFromString("0.05")
	rate29   = decimal.RequireFromString("0.029")
	rateHalf = decimal.RequireFromString("0.5")
)

// taxParamsByYear is immutable after package init. Amounts are kopecks.
var taxParamsByYear = map[int]TaxParams{
	2023: {
		Year:                  2023,
		USNIncomeRate:         rate6,
		USNProfitRate:         rate15,
		USNMinimumRate:        rate1,
		VATRate:               rate20,
		FixedContribution:     4_584_200,  // 45 842.00
		ExcessIncomeThreshold: 30_000_000, // 300 000.00
		ExcessIncomeRate:      rate1,
		PensionCap:            30_290_300, // 302 903.00
		WageThreshold:         1_624_200,  // MROT 16 242.00
		PensionRateFull:       rate22,
		PensionRateReduced:    rate10,
		MedicalRateFull:       rate51,
		MedicalRateReduced:    rate50,
		SocialRateFull:        rate29,
	},
	2024: {
		Year:                  2024,
		USNIncomeRate:         rate6,
		USNProfitRate:         rate15,
		USNMinimumRate:        rate1,
		VATRate:               rate20,
		FixedContribution:     4_950_000,  // 49 500.00
		ExcessIncomeThreshold: 30_000_000, // 300 000.00
		ExcessIncomeRate:      rate1,
		PensionCap:            32_707_100, // 327 071.00
		WageThreshold:         1_924_200,  // MROT 19 242.00
		PensionRateFull:       rate22,
		PensionRateReduced:    rate10,
		MedicalRateFull:       rate51,
		MedicalRateReduced:    rate50,
		SocialRateFull:        rate29,
	},
	2025: {
		Year:                  2025,
		USNIncomeRate:         rate6,
		USNProfitRate:         rate15,
		USNMinimumRate:        rate1,
		VATRate:               rate20,
		FixedContribution:     5_365_800,  // 53 658.00
		ExcessIncomeThreshold: 30_000_000, // 300 000.00
		ExcessIncomeRate:      rate1,
		PensionCap:            35_454_600, // 354 546.00
		WageThreshold:         2_244_000,  // MROT 22 440.00
		PensionRateFull:       rate22,
		PensionRateReduced:    rate10,
		MedicalRateFull:       rate51,
		MedicalRateReduced:    rate50,
		SocialRateFull:        rate29,
	},
}

// TaxParamsForYear returns the constant set for a fiscal year. A missing
// year is a configuration error: the caller must refuse to compute rather
// than substitute another year's rates.
func TaxParamsForYear(year int) (TaxParams, error) {
	params, ok := taxParamsByYear[year]
	if !ok {
		return TaxParams{}, fmt.Errorf("%w: %d", apperrors.ErrTaxParamsNotFound, year)
	}
	return params, nil
}

// SupportedYears lists the fiscal years a parameter set exists for.
func SupportedYears() []int {
	years := make([]int, 0, len(taxParamsByYear))
	for y := range taxParamsByYear {
		years = append(years, y)
	}
	return years
}

// HalfRate is the 50% cap factor applied to the USN 6% insurance deduction
// for taxpayers with employees.
func HalfRate() decimal.Decimal {
	return rateHalf
}
