package services

import (
	portssvc "github.com/zenbalans/taxengine_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Taxes:     NewTaxService(),
		Insurance: NewInsuranceService(),
		Reporting: NewReportingService(),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TaxCalculationSvc = (*taxService)(nil)
	_ portssvc.InsuranceSvc      = (*insuranceService)(nil)
	_ portssvc.ReportingSvc      = (*reportingService)(nil)
)
