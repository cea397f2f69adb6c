package usecase

import (
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"
)

// IPricingUseCase prices the estimation builder's in-progress state.
//
// Nothing is validated or stored: the form is re-priced after every edit and a
// half-filled row simply contributes zero.
type IPricingUseCase interface {
	Preview(sections []entities.Section) pricing.EstimationBreakdown
}

type PricingUseCase struct{}

var _ IPricingUseCase = PricingUseCase{}

func NewPricingUseCase() PricingUseCase {
	return PricingUseCase{}
}

func (PricingUseCase) Preview(sections []entities.Section) pricing.EstimationBreakdown {
	return pricing.Breakdown(sections)
}
