package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenbalans/taxengine_app/internal/apperrors"
	"github.com/zenbalans/taxengine_app/internal/core/domain"
)

func TestTaxParamsForYear(t *testing.T) {
	params, err := domain.TaxParamsForYear(2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, params.Year)
	assert.Equal(t, domain.Money(4_950_000), params.FixedContribution)
	assert.Equal(t, domain.Money(30_000_000), params.ExcessIncomeThreshold)
	assert.True(t, params.PensionCap > params.FixedContribution)
	assert.True(t, params.USNIncomeRate.IsPositive())
}

func TestTaxParamsForYearMissing(t *testing.T) {
	// A missing year must refuse to compute, never substitute defaults.
	_, err := domain.TaxParamsForYear(1999)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTaxParamsNotFound)
}

func TestSupportedYearsAllResolve(t *testing.T) {
	years := domain.SupportedYears()
	require.NotEmpty(t, years)
	for _, y := range years {
		_, err := domain.TaxParamsForYear(y)
		assert.NoError(t, err, "year %d", y)
	}
}
