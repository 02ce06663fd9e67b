package controllers

import (
	"net/http"

	"github.com/aryangupta0810/ecart-backend/api/middleware"
	"github.com/aryangupta0810/ecart-backend/api/responses"
	"github.com/aryangupta0810/ecart-backend/api/validators"
	prefsvc "github.com/aryangupta0810/ecart-backend/internal/preferences"
	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
	"github.com/aryangupta0810/ecart-backend/pkg/logger"
)

type setBudgetRequest struct {
	Min *int64 `json:"min" validate:"required,min=0"`
	Max *int64 `json:"max" validate:"required,min=0"`
}

type setSizeRequest struct {
	Size string `json:"size" validate:"required"`
}

type styleTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

type setCategoriesRequest struct {
	Categories []string `json:"categories" validate:"required"`
}

type historyRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type setColorsRequest struct {
	Colors []string `json:"colors" validate:"required"`
}

type setOccasionRequest struct {
	Occasion string `json:"occasion" validate:"required"`
}

type removeStyleTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

// prefsHandler wraps the shared plumbing: resolve session, mutate, respond.
func prefsHandler(svc prefsvc.Service, logg *logger.Logger,
	mutate func(r *http.Request, sessionID string) (*prefsvc.Preferences, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "preferences service unavailable"))
			return
		}

		prefs, err := mutate(r, middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, prefs)
	}
}

// GetPreferences serves the session's preferences.
func GetPreferences(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		return svc.Get(r.Context(), sessionID)
	})
}

// SetBudget replaces the budget band.
func SetBudget(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload setBudgetRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetBudget(r.Context(), sessionID, *payload.Min, *payload.Max)
	})
}

// SetSize replaces the preferred size.
func SetSize(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload setSizeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetSize(r.Context(), sessionID, payload.Size)
	})
}

// AddStyleTag appends a style tag once.
func AddStyleTag(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload styleTagRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.AddStyleTag(r.Context(), sessionID, payload.Tag)
	})
}

// RemoveStyleTag drops a style tag.
func RemoveStyleTag(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload removeStyleTagRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.RemoveStyleTag(r.Context(), sessionID, payload.Tag)
	})
}

// SetPreferredCategories replaces the category set.
func SetPreferredCategories(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload setCategoriesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetPreferredCategories(r.Context(), sessionID, payload.Categories)
	})
}

// AddToHistory pushes a product onto the browsing history.
func AddToHistory(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload historyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.AddToHistory(r.Context(), sessionID, payload.ProductID)
	})
}

// SetFavoriteColors replaces the color set.
func SetFavoriteColors(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload setColorsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetFavoriteColors(r.Context(), sessionID, payload.Colors)
	})
}

// SetOccasion replaces the occasion.
func SetOccasion(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		var payload setOccasionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetOccasion(r.Context(), sessionID, payload.Occasion)
	})
}

// ResetPreferences restores defaults.
func ResetPreferences(svc prefsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return prefsHandler(svc, logg, func(r *http.Request, sessionID string) (*prefsvc.Preferences, error) {
		return svc.Reset(r.Context(), sessionID)
	})
}
