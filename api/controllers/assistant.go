package controllers

import (
	"net/http"

	"github.com/aryangupta0810/ecart-backend/api/middleware"
	"github.com/aryangupta0810/ecart-backend/api/responses"
	"github.com/aryangupta0810/ecart-backend/api/validators"
	"github.com/aryangupta0810/ecart-backend/internal/assistant"
	cartsvc "github.com/aryangupta0810/ecart-backend/internal/cart"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	prefsvc "github.com/aryangupta0810/ecart-backend/internal/preferences"
	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
	"github.com/aryangupta0810/ecart-backend/pkg/logger"
)

// AssistantDeps bundles the stores the assistant reads its context from.
type AssistantDeps struct {
	Assistant   assistant.Service
	Catalog     catalog.Service
	Cart        cartsvc.Service
	Preferences prefsvc.Service
}

func (d AssistantDeps) validate() error {
	if d.Assistant == nil || d.Catalog == nil || d.Cart == nil || d.Preferences == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "assistant service unavailable")
	}
	return nil
}

type adviceRequest struct {
	Query   string `json:"query" validate:"required"`
	Context any    `json:"context,omitempty"`
}

type recommendationsRequest struct {
	Query string `json:"query" validate:"required"`
}

// ShoppingAdvice serves free-text advice. Failures degrade to the fixed
// apology inside the gateway, so this handler only errors on bad input.
func ShoppingAdvice(deps AssistantDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.validate(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload adviceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		advice := deps.Assistant.ShoppingAdvice(r.Context(), payload.Query, payload.Context)
		responses.WriteSuccess(w, advice)
	}
}

// ProductRecommendations builds catalog and preference context for the
// session, then serves the assistant's picks.
func ProductRecommendations(deps AssistantDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.validate(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload recommendationsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		prefs, err := deps.Preferences.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		products, err := deps.Catalog.ListProducts(r.Context(), catalog.ProductFilter{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		recommendations := deps.Assistant.ProductRecommendations(r.Context(), *prefs, products, payload.Query)
		responses.WriteSuccess(w, recommendations)
	}
}

// CartSummary serves the assistant's read on the session's cart.
func CartSummary(deps AssistantDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.validate(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := deps.Cart.GetCart(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary := deps.Assistant.CartSummary(r.Context(), cart.Items)
		responses.WriteSuccess(w, summary)
	}
}

// StyleAnalysis resolves the session's browsing history into products and
// serves the assistant's style profile.
func StyleAnalysis(deps AssistantDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.validate(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		prefs, err := deps.Preferences.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// Unknown history ids are skipped rather than failing the analysis.
		history := make([]catalog.ProductDTO, 0, len(prefs.ShoppingHistory))
		for _, productID := range prefs.ShoppingHistory {
			product, err := deps.Catalog.GetProduct(r.Context(), productID)
			if err != nil {
				continue
			}
			history = append(history, *product)
		}

		analysis := deps.Assistant.StyleAnalysis(r.Context(), *prefs, history)
		responses.WriteSuccess(w, analysis)
	}
}
