package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aryangupta0810/ecart-backend/internal/cart"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	"github.com/aryangupta0810/ecart-backend/internal/preferences"
)

// promptProductLimit caps how much catalog context is embedded in a prompt.
const promptProductLimit = 10

func recommendationsPrompt(prefs preferences.Preferences, products []catalog.ProductDTO, query string) string {
	if len(products) > promptProductLimit {
		products = products[:promptProductLimit]
	}
	productJSON := mustJSON(products)

	var b strings.Builder
	b.WriteString("As an AI shopping assistant, analyze the user's preferences and provide personalized product recommendations.\n\n")
	b.WriteString("User Preferences:\n")
	fmt.Fprintf(&b, "- Budget (minor units): %d - %d\n", prefs.Budget.Min, prefs.Budget.Max)
	fmt.Fprintf(&b, "- Size: %s\n", prefs.Size)
	fmt.Fprintf(&b, "- Style Tags: %s\n", strings.Join(prefs.StyleTags, ", "))
	fmt.Fprintf(&b, "- Preferred Categories: %s\n", strings.Join(prefs.PreferredCategories, ", "))
	fmt.Fprintf(&b, "- Favorite Colors: %s\n", strings.Join(prefs.FavoriteColors, ", "))
	fmt.Fprintf(&b, "- Occasion: %s\n\n", prefs.Occasion)
	fmt.Fprintf(&b, "User Query: %q\n\n", query)
	fmt.Fprintf(&b, "Available Products: %s\n\n", productJSON)
	b.WriteString("Please provide 3-5 product recommendations with:\n")
	b.WriteString("1. Product ID from the available products\n")
	b.WriteString("2. Reason for recommendation\n")
	b.WriteString("3. Confidence level (0-1)\n\n")
	b.WriteString("Format as JSON array with fields: id, name, reason, confidence")
	return b.String()
}

func cartSummaryPrompt(items []cart.CartItem) string {
	var b strings.Builder
	b.WriteString("Analyze this shopping cart and provide insights:\n\n")
	fmt.Fprintf(&b, "Cart Items: %s\n\n", mustJSON(items))
	b.WriteString("Please provide:\n")
	b.WriteString("1. Total items count\n")
	b.WriteString("2. Total value in minor units\n")
	b.WriteString("3. 2-3 personalized recommendations\n")
	b.WriteString("4. 1-2 potential savings tips\n\n")
	b.WriteString("Format as JSON with fields: total_items, total_value_cents, recommendations, savings")
	return b.String()
}

func styleAnalysisPrompt(prefs preferences.Preferences, history []catalog.ProductDTO) string {
	if len(history) > promptProductLimit {
		history = history[:promptProductLimit]
	}

	var b strings.Builder
	b.WriteString("Analyze the user's style preferences and shopping history to determine their style profile.\n\n")
	fmt.Fprintf(&b, "User Preferences: %s\n", mustJSON(prefs))
	fmt.Fprintf(&b, "Shopping History: %s\n\n", mustJSON(history))
	b.WriteString("Please provide:\n")
	b.WriteString("1. Primary style classification\n")
	b.WriteString("2. Confidence level (0-1)\n")
	b.WriteString("3. 3 style improvement suggestions\n\n")
	b.WriteString("Format as JSON with fields: style, confidence, suggestions")
	return b.String()
}

func advicePrompt(query string, context any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As a personal shopping assistant, provide helpful advice for: %q\n\n", query)
	fmt.Fprintf(&b, "Context: %s\n\n", mustJSON(context))
	b.WriteString("Please provide friendly, practical advice in 2-3 sentences.")
	return b.String()
}

// mustJSON renders prompt context. Inputs are plain data types, so a
// marshal failure is not reachable in practice; degrade to empty JSON.
func mustJSON(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(payload)
}
