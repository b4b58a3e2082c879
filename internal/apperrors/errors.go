package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTaxParamsNotFound indicates that no tax parameter set is registered for
// the requested fiscal year. Calculators must refuse to compute in that case
// rather than fall back to another year's rates.
var ErrTaxParamsNotFound = errors.New("tax parameters not found for year")
