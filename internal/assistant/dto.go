package assistant

// AdviceDTO wraps a free-text assistant reply.
type AdviceDTO struct {
	Advice string `json:"advice"`
}

// RecommendationDTO is a single suggested product.
type RecommendationDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// CartSummaryDTO is the assistant's read on the current cart. Totals are
// always locally verifiable; the text fields come from the model or from
// fixed fallbacks.
type CartSummaryDTO struct {
	TotalItems      int      `json:"total_items"`
	TotalValueCents int64    `json:"total_value_cents"`
	Recommendations []string `json:"recommendations"`
	Savings         []string `json:"savings"`
}

// StyleAnalysisDTO classifies a shopper's style profile.
type StyleAnalysisDTO struct {
	Style       string   `json:"style"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions"`
}
