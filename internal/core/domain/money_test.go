package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

func TestApplyRate(t *testing.T) {
	sixPercent := decimal.RequireFromString("0.06")
	onePercent := decimal.RequireFromString("0.01")

	tests := []struct {
		name     string
		amount   domain.Money
		rate     decimal.Decimal
		expected domain.Money
	}{
		{"exact product", 530000, sixPercent, 31800},
		{"rounds half up", 25, sixPercent, 2},         // 1.5 -> 2
		{"rounds down below half", 24, sixPercent, 1}, // 1.44 -> 1
		{"one percent of million", 1000000, onePercent, 10000},
		{"zero amount", 0, sixPercent, 0},
		{"negative rounds away from zero", -25, sixPercent, -2}, // -1.5 -> -2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.ApplyRate(tt.rate))
		})
	}
}

func TestApplyRateRoundsOnlyOnce(t *testing.T) {
	// 333 * 0.06 = 19.98 -> 20; re-applying rates to already-rounded money
	// is the caller's bug, ApplyRate itself must not accumulate error.
	assert.Equal(t, domain.Money(20), domain.Money(333).ApplyRate(decimal.RequireFromString("0.06")))
}

func TestPercent(t *testing.T) {
	assert.True(t, decimal.NewFromInt(6).Equal(domain.Percent(31800, 530000)))
	assert.True(t, decimal.NewFromInt(50).Equal(domain.Percent(1, 2)))

	// Zero denominator yields a defined zero, never a division error.
	assert.True(t, decimal.Zero.Equal(domain.Percent(100, 0)))
}

func TestMinMaxMoney(t *testing.T) {
	assert.Equal(t, domain.Money(3), domain.MinMoney(3, 7))
	assert.Equal(t, domain.Money(7), domain.MaxMoney(3, 7))
	assert.Equal(t, domain.Money(0), domain.MaxMoney(0, -5))
}
