package assistant

// adviceFallback is returned whenever the model call fails.
const adviceFallback = "I'm here to help you find the perfect items! Could you tell me more about what you're looking for?"

const (
	defaultStyle           = "Contemporary Casual"
	defaultStyleConfidence = 0.8
)

// fallbackRecommendations is a fixed list rather than a live catalog query,
// so it can drift from real inventory.
func fallbackRecommendations() []RecommendationDTO {
	return []RecommendationDTO{
		{ID: "1", Name: "Classic Denim Jacket", Reason: "Perfect for your casual style and fits your budget", Confidence: 0.9},
		{ID: "2", Name: "Sustainable Cotton T-Shirt", Reason: "Matches your preferred colors and occasion", Confidence: 0.8},
		{ID: "3", Name: "Versatile Sneakers", Reason: "Great for everyday wear and within your price range", Confidence: 0.85},
	}
}

func fallbackCartRecommendations() []string {
	return []string{
		"Consider adding a matching accessory to complete your look",
		"You might like our seasonal collection based on your style",
	}
}

func fallbackCartSavings() []string {
	return []string{
		"Add 2 more items to qualify for free shipping",
		"Check out our loyalty program for member discounts",
	}
}

func fallbackStyleSuggestions() []string {
	return []string{
		"Try mixing classic pieces with trendy accessories",
		"Consider adding more color variety to your wardrobe",
		"Explore sustainable fashion options",
	}
}

// backfill defaults used when a parsed summary omits text fields.
func defaultSummaryRecommendations() []string {
	return []string{"Consider adding accessories to complete your look"}
}

func defaultSummarySavings() []string {
	return []string{"Look for bundle deals to save more"}
}
