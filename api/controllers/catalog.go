package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aryangupta0810/ecart-backend/api/middleware"
	"github.com/aryangupta0810/ecart-backend/api/responses"
	"github.com/aryangupta0810/ecart-backend/api/validators"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	prefsvc "github.com/aryangupta0810/ecart-backend/internal/preferences"
	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
	"github.com/aryangupta0810/ecart-backend/pkg/logger"
)

// ListProducts serves the filtered, sorted catalog listing.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		priceMin, err := validators.ParseQueryCents(r, "price_min")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		priceMax, err := validators.ParseQueryCents(r, "price_max")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		availableOnly, err := validators.ParseQueryBool(r, "available")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := catalog.ProductFilter{
			Category:      strings.TrimSpace(r.URL.Query().Get("category")),
			PriceMinCents: priceMin,
			PriceMaxCents: priceMax,
			Tags:          validators.ParseQueryList(r, "tags"),
			AvailableOnly: availableOnly,
			Search:        strings.TrimSpace(r.URL.Query().Get("search")),
			Sort:          catalog.SortKey(strings.TrimSpace(r.URL.Query().Get("sort"))),
		}

		products, err := svc.ListProducts(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// GetProduct serves a single product by id. Viewing a product pushes it
// onto the session's browsing history; a history failure never fails the
// product view.
func GetProduct(svc catalog.Service, prefs prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if prefs != nil {
			if _, err := prefs.AddToHistory(r.Context(), middleware.SessionIDFromContext(r.Context()), product.ID); err != nil && logg != nil {
				logg.Warn(r.Context(), "failed to record browsing history")
			}
		}

		responses.WriteSuccess(w, product)
	}
}

// ListCollections serves every collection.
func ListCollections(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		collections, err := svc.ListCollections(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, collections)
	}
}

// GetCollection serves a single collection by id.
func GetCollection(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		collection, err := svc.GetCollection(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, collection)
	}
}

// SearchProducts serves search suggestions for the q parameter.
func SearchProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.SearchProducts(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// RelatedProducts serves products sharing a category or tag with the target.
func RelatedProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", catalog.DefaultRelatedLimit, 1, 20)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.RelatedProducts(r.Context(), chi.URLParam(r, "id"), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}
