package domain

import "github.com/shopspring/decimal"

// Money is an amount of currency expressed in minor units (kopecks).
// All arithmetic between Money values is exact integer arithmetic; a
// percentage rate is realized into Money exactly once per derived quantity
// via ApplyRate, never re-rounded downstream.
type Money int64

// ApplyRate multiplies the amount by a decimal rate and rounds the result to
// whole minor units, half away from zero. This is the single place where a
// rate becomes money.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	product := decimal.NewFromInt(int64(m)).Mul(rate)
	return Money(product.Round(0).IntPart())
}

// Decimal returns the amount as a decimal number of minor units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// Percent returns part as a percentage of total, rounded to two decimal
// places. A zero total yields zero, never a division error: percentages are
// informational and a defined zero is the correct "no data" signal.
func Percent(part, total Money) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return part.Decimal().Div(total.Decimal()).Mul(decimal.NewFromInt(100)).Round(2)
}

// MaxMoney returns the larger of two amounts.
func MaxMoney(a, b Money) Money {
	if a > b {
		return a
	}
	return b
}

// MinMoney returns the smaller of two amounts.
func MinMoney(a, b Money) Money {
	if a < b {
		return a
	}
	return b
}
