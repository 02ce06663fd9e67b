package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aryangupta0810/ecart-backend/internal/cart"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	"github.com/aryangupta0810/ecart-backend/internal/preferences"
	"github.com/aryangupta0810/ecart-backend/pkg/logger"
	"github.com/aryangupta0810/ecart-backend/pkg/metrics"
)

// TextGenerator is the external language-model surface.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service exposes the assistant operations. Every operation degrades to a
// deterministic fallback instead of returning an error: the caller never
// sees an endpoint failure.
type Service interface {
	ShoppingAdvice(ctx context.Context, query string, adviceContext any) *AdviceDTO
	ProductRecommendations(ctx context.Context, prefs preferences.Preferences, products []catalog.ProductDTO, query string) []RecommendationDTO
	CartSummary(ctx context.Context, items []cart.CartItem) *CartSummaryDTO
	StyleAnalysis(ctx context.Context, prefs preferences.Preferences, history []catalog.ProductDTO) *StyleAnalysisDTO
}

type service struct {
	generator TextGenerator
	metrics   *metrics.AssistantMetrics
	logg      *logger.Logger
}

// NewService builds an assistant service over the provided generator.
func NewService(generator TextGenerator, assistantMetrics *metrics.AssistantMetrics, logg *logger.Logger) (Service, error) {
	if generator == nil {
		return nil, fmt.Errorf("text generator required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{generator: generator, metrics: assistantMetrics, logg: logg}, nil
}

// ShoppingAdvice returns free-text advice, or a fixed apology on failure.
func (s *service) ShoppingAdvice(ctx context.Context, query string, adviceContext any) *AdviceDTO {
	text, err := s.generate(ctx, "shopping_advice", advicePrompt(query, adviceContext))
	if err != nil {
		s.fallback(ctx, "shopping_advice", err)
		return &AdviceDTO{Advice: adviceFallback}
	}
	s.metrics.IncSuccess("shopping_advice")
	return &AdviceDTO{Advice: text}
}

// ProductRecommendations interprets the model response as a recommendation
// list, keeping only entries that name a product. Call or parse failure
// substitutes the fixed fallback list.
func (s *service) ProductRecommendations(ctx context.Context, prefs preferences.Preferences, products []catalog.ProductDTO, query string) []RecommendationDTO {
	const operation = "product_recommendations"

	text, err := s.generate(ctx, operation, recommendationsPrompt(prefs, products, query))
	if err != nil {
		s.fallback(ctx, operation, err)
		return fallbackRecommendations()
	}

	var recommendations []RecommendationDTO
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &recommendations); err != nil {
		s.fallback(ctx, operation, err)
		return fallbackRecommendations()
	}

	out := make([]RecommendationDTO, 0, len(recommendations))
	for _, rec := range recommendations {
		if rec.ID != "" && rec.Name != "" {
			out = append(out, rec)
		}
	}
	s.metrics.IncSuccess(operation)
	return out
}

// CartSummary interprets the model response as a cart summary, backfilling
// any missing field from the cart itself. The totals are always recomputed
// locally when the model omits them, so they stay consistent with the cart.
func (s *service) CartSummary(ctx context.Context, items []cart.CartItem) *CartSummaryDTO {
	const operation = "cart_summary"

	text, err := s.generate(ctx, operation, cartSummaryPrompt(items))
	if err != nil {
		s.fallback(ctx, operation, err)
		return localCartSummary(items)
	}

	var summary CartSummaryDTO
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &summary); err != nil {
		s.fallback(ctx, operation, err)
		return localCartSummary(items)
	}

	if summary.TotalItems == 0 {
		summary.TotalItems = countItems(items)
	}
	if summary.TotalValueCents == 0 {
		summary.TotalValueCents = sumValueCents(items)
	}
	if len(summary.Recommendations) == 0 {
		summary.Recommendations = defaultSummaryRecommendations()
	}
	if len(summary.Savings) == 0 {
		summary.Savings = defaultSummarySavings()
	}
	s.metrics.IncSuccess(operation)
	return &summary
}

// StyleAnalysis interprets the model response as a style profile with the
// same fallback discipline.
func (s *service) StyleAnalysis(ctx context.Context, prefs preferences.Preferences, history []catalog.ProductDTO) *StyleAnalysisDTO {
	const operation = "style_analysis"

	text, err := s.generate(ctx, operation, styleAnalysisPrompt(prefs, history))
	if err != nil {
		s.fallback(ctx, operation, err)
		return fallbackStyleAnalysis()
	}

	var analysis StyleAnalysisDTO
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &analysis); err != nil {
		s.fallback(ctx, operation, err)
		return fallbackStyleAnalysis()
	}

	if analysis.Style == "" {
		analysis.Style = defaultStyle
	}
	if analysis.Confidence == 0 {
		analysis.Confidence = defaultStyleConfidence
	}
	if len(analysis.Suggestions) == 0 {
		analysis.Suggestions = fallbackStyleSuggestions()
	}
	s.metrics.IncSuccess(operation)
	return &analysis
}

func (s *service) generate(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()
	text, err := s.generator.GenerateText(ctx, prompt)
	s.metrics.ObserveDuration(operation, time.Since(start))
	return text, err
}

func (s *service) fallback(ctx context.Context, operation string, err error) {
	s.metrics.IncFallback(operation)
	s.logg.Error(s.logg.WithField(ctx, "operation", operation), "assistant call degraded to fallback", err)
}

func localCartSummary(items []cart.CartItem) *CartSummaryDTO {
	return &CartSummaryDTO{
		TotalItems:      countItems(items),
		TotalValueCents: sumValueCents(items),
		Recommendations: fallbackCartRecommendations(),
		Savings:         fallbackCartSavings(),
	}
}

func fallbackStyleAnalysis() *StyleAnalysisDTO {
	return &StyleAnalysisDTO{
		Style:       defaultStyle,
		Confidence:  defaultStyleConfidence,
		Suggestions: fallbackStyleSuggestions(),
	}
}

func countItems(items []cart.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func sumValueCents(items []cart.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}

// stripCodeFences unwraps a fenced markdown block so fenced JSON replies
// still parse.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
