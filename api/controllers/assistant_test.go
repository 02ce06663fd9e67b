package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aryangupta0810/ecart-backend/api/middleware"
	"github.com/aryangupta0810/ecart-backend/internal/assistant"
	cartsvc "github.com/aryangupta0810/ecart-backend/internal/cart"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	prefsvc "github.com/aryangupta0810/ecart-backend/internal/preferences"
)

type stubAssistantService struct {
	advice          *assistant.AdviceDTO
	recommendations []assistant.RecommendationDTO
	summary         *assistant.CartSummaryDTO
	analysis        *assistant.StyleAnalysisDTO

	lastQuery   string
	lastHistory []catalog.ProductDTO
}

func (s *stubAssistantService) ShoppingAdvice(_ context.Context, query string, _ any) *assistant.AdviceDTO {
	s.lastQuery = query
	return s.advice
}

func (s *stubAssistantService) ProductRecommendations(_ context.Context, _ prefsvc.Preferences, _ []catalog.ProductDTO, query string) []assistant.RecommendationDTO {
	s.lastQuery = query
	return s.recommendations
}

func (s *stubAssistantService) CartSummary(_ context.Context, items []cartsvc.CartItem) *assistant.CartSummaryDTO {
	return s.summary
}

func (s *stubAssistantService) StyleAnalysis(_ context.Context, _ prefsvc.Preferences, history []catalog.ProductDTO) *assistant.StyleAnalysisDTO {
	s.lastHistory = history
	return s.analysis
}

func testAssistantDeps(gateway *stubAssistantService, catalogSvc catalog.Service,
	cartSvc cartsvc.Service, prefs prefsvc.Service) AssistantDeps {
	return AssistantDeps{
		Assistant:   gateway,
		Catalog:     catalogSvc,
		Cart:        cartSvc,
		Preferences: prefs,
	}
}

func TestShoppingAdvice(t *testing.T) {
	gateway := &stubAssistantService{advice: &assistant.AdviceDTO{Advice: "try linen for summer"}}
	deps := testAssistantDeps(gateway, &stubCatalogService{}, &stubCartService{}, &stubPreferencesService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/advice",
		strings.NewReader(`{"query": "what should I wear to a wedding?"}`))
	resp := httptest.NewRecorder()
	ShoppingAdvice(deps, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gateway.lastQuery != "what should I wear to a wedding?" {
		t.Fatalf("query not forwarded: %q", gateway.lastQuery)
	}

	var envelope struct {
		Data assistant.AdviceDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Advice != "try linen for summer" {
		t.Fatalf("unexpected advice: %q", envelope.Data.Advice)
	}
}

func TestShoppingAdviceRequiresQuery(t *testing.T) {
	deps := testAssistantDeps(&stubAssistantService{}, &stubCatalogService{}, &stubCartService{}, &stubPreferencesService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/advice", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	ShoppingAdvice(deps, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestShoppingAdviceMissingDependency(t *testing.T) {
	deps := testAssistantDeps(&stubAssistantService{}, nil, &stubCartService{}, &stubPreferencesService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/advice",
		strings.NewReader(`{"query": "hi"}`))
	resp := httptest.NewRecorder()
	ShoppingAdvice(deps, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestProductRecommendations(t *testing.T) {
	gateway := &stubAssistantService{recommendations: []assistant.RecommendationDTO{
		{ID: "1", Name: "Classic White Button-Down Shirt", Reason: "matches your style", Confidence: 0.9},
	}}
	catalogSvc := &stubCatalogService{products: []catalog.ProductDTO{{ID: "1"}, {ID: "2"}}}
	defaultPrefs := prefsvc.DefaultPreferences()
	prefs := &stubPreferencesService{prefs: &defaultPrefs}
	deps := testAssistantDeps(gateway, catalogSvc, &stubCartService{}, prefs)

	handler := middleware.Session(nil)(ProductRecommendations(deps, nil))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/recommendations",
		strings.NewReader(`{"query": "office wear"}`))
	req.Header.Set(middleware.SessionHeader, "session-a")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if prefs.lastSessionID != "session-a" {
		t.Fatalf("session not forwarded to preferences: %q", prefs.lastSessionID)
	}

	var envelope struct {
		Data []assistant.RecommendationDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "1" {
		t.Fatalf("unexpected recommendations: %+v", envelope.Data)
	}
}

func TestCartSummaryReadsSessionCart(t *testing.T) {
	gateway := &stubAssistantService{summary: &assistant.CartSummaryDTO{TotalItems: 2, TotalValueCents: 13498}}
	cartSvc := &stubCartService{cart: &cartsvc.CartDTO{Items: []cartsvc.CartItem{{ProductID: "1", Quantity: 2}}}}
	deps := testAssistantDeps(gateway, &stubCatalogService{}, cartSvc, &stubPreferencesService{})

	handler := middleware.Session(nil)(CartSummary(deps, nil))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/cart-summary", nil)
	req.Header.Set(middleware.SessionHeader, "session-c")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if cartSvc.lastSessionID != "session-c" {
		t.Fatalf("session not forwarded to cart: %q", cartSvc.lastSessionID)
	}
}

func TestStyleAnalysisSkipsUnknownHistory(t *testing.T) {
	gateway := &stubAssistantService{analysis: &assistant.StyleAnalysisDTO{Style: "Contemporary Casual"}}
	prefs := prefsvc.DefaultPreferences()
	prefs.ShoppingHistory = []string{"1", "999", "2"}
	catalogSvc := &stubCatalogService{
		productsByID: map[string]catalog.ProductDTO{
			"1": {ID: "1", Title: "Classic White Button-Down Shirt"},
			"2": {ID: "2", Title: "High-Waisted Denim Jeans"},
		},
	}
	deps := testAssistantDeps(gateway, catalogSvc, &stubCartService{}, &stubPreferencesService{prefs: &prefs})

	handler := middleware.Session(nil)(StyleAnalysis(deps, nil))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/style-analysis", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(gateway.lastHistory) != 2 {
		t.Fatalf("expected 2 resolved history products, got %d", len(gateway.lastHistory))
	}
	if gateway.lastHistory[0].ID != "1" || gateway.lastHistory[1].ID != "2" {
		t.Fatalf("unexpected history order: %+v", gateway.lastHistory)
	}
}
