package cart

import (
	"github.com/aryangupta0810/ecart-backend/pkg/config"
	"github.com/shopspring/decimal"
)

// estimateCheckout prices a cart: flat-rate shipping waived above the free
// shipping threshold, then tax on the subtotal. Tax is computed in decimal
// space and rounded half away from zero to whole cents.
func estimateCheckout(subtotalCents int64, pricing config.PricingConfig) *CheckoutEstimateDTO {
	estimate := &CheckoutEstimateDTO{SubtotalCents: subtotalCents}
	if subtotalCents == 0 {
		return estimate
	}

	estimate.FreeShipping = subtotalCents >= pricing.FreeShippingMinCents
	if !estimate.FreeShipping {
		estimate.ShippingCents = pricing.ShippingFlatCents
	}

	tax := decimal.NewFromInt(subtotalCents).
		Mul(decimal.NewFromInt(int64(pricing.TaxPercent))).
		Div(decimal.NewFromInt(100)).
		Round(0)
	estimate.TaxCents = tax.IntPart()

	estimate.TotalCents = estimate.SubtotalCents + estimate.ShippingCents + estimate.TaxCents
	return estimate
}
