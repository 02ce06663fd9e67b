package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aryangupta0810/ecart-backend/api/controllers"
	"github.com/aryangupta0810/ecart-backend/api/middleware"
	"github.com/aryangupta0810/ecart-backend/internal/assistant"
	cartsvc "github.com/aryangupta0810/ecart-backend/internal/cart"
	"github.com/aryangupta0810/ecart-backend/internal/catalog"
	prefsvc "github.com/aryangupta0810/ecart-backend/internal/preferences"
	"github.com/aryangupta0810/ecart-backend/pkg/config"
	"github.com/aryangupta0810/ecart-backend/pkg/logger"
	"github.com/aryangupta0810/ecart-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	redisPinger controllers.Pinger,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	preferencesService prefsvc.Service,
	assistantService assistant.Service,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Session(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": dbPinger,
			"redis":    redisPinger,
		}))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/search", controllers.SearchProducts(catalogService, logg))
		r.Get("/products/{id}", controllers.GetProduct(catalogService, preferencesService, logg))
		r.Get("/products/{id}/related", controllers.RelatedProducts(catalogService, logg))
		r.Get("/collections", controllers.ListCollections(catalogService, logg))
		r.Get("/collections/{id}", controllers.GetCollection(catalogService, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", controllers.GetCart(cartService, logg))
		r.Delete("/", controllers.ClearCart(cartService, logg))
		r.Post("/items", controllers.AddCartItem(cartService, logg))
		r.Patch("/items/{productID}", controllers.UpdateCartItem(cartService, logg))
		r.Delete("/items/{productID}", controllers.RemoveCartItem(cartService, logg))
		r.Get("/estimate", controllers.EstimateCheckout(cartService, logg))
	})

	r.Route("/api/v1/preferences", func(r chi.Router) {
		r.Get("/", controllers.GetPreferences(preferencesService, logg))
		r.Put("/budget", controllers.SetBudget(preferencesService, logg))
		r.Put("/size", controllers.SetSize(preferencesService, logg))
		r.Post("/style-tags", controllers.AddStyleTag(preferencesService, logg))
		r.Delete("/style-tags", controllers.RemoveStyleTag(preferencesService, logg))
		r.Put("/categories", controllers.SetPreferredCategories(preferencesService, logg))
		r.Post("/history", controllers.AddToHistory(preferencesService, logg))
		r.Put("/colors", controllers.SetFavoriteColors(preferencesService, logg))
		r.Put("/occasion", controllers.SetOccasion(preferencesService, logg))
		r.Post("/reset", controllers.ResetPreferences(preferencesService, logg))
	})

	assistantDeps := controllers.AssistantDeps{
		Assistant:   assistantService,
		Catalog:     catalogService,
		Cart:        cartService,
		Preferences: preferencesService,
	}
	r.Route("/api/v1/assistant", func(r chi.Router) {
		r.Post("/advice", controllers.ShoppingAdvice(assistantDeps, logg))
		r.Post("/recommendations", controllers.ProductRecommendations(assistantDeps, logg))
		r.Post("/cart-summary", controllers.CartSummary(assistantDeps, logg))
		r.Post("/style-analysis", controllers.StyleAnalysis(assistantDeps, logg))
	})

	return r
}
