package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftwell/wishlist-backend/api/controllers"
	"github.com/giftwell/wishlist-backend/api/middleware"
	"github.com/giftwell/wishlist-backend/internal/items"
	"github.com/giftwell/wishlist-backend/internal/wishlists"
	"github.com/giftwell/wishlist-backend/pkg/config"
	"github.com/giftwell/wishlist-backend/pkg/db"
	"github.com/giftwell/wishlist-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	wishlistService wishlists.Service,
	itemService items.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Route("/api/v1/wishlists", func(r chi.Router) {
		r.Get("/", controllers.ListWishlists(wishlistService, logg))
		r.Post("/", controllers.CreateWishlist(wishlistService, logg))

		r.Route("/{wishlistID}", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(wishlistService, logg))
			r.Put("/", controllers.UpdateWishlist(wishlistService, logg))
			r.Delete("/", controllers.DeleteWishlist(wishlistService, logg))

			r.Route("/items", func(r chi.Router) {
				r.Get("/", controllers.ListWishlistItems(itemService, logg))
				r.Post("/", controllers.CreateWishlistItem(itemService, logg))
				r.Get("/{itemID}", controllers.GetWishlistItem(itemService, logg))
				r.Put("/{itemID}", controllers.UpdateWishlistItem(itemService, logg))
				r.Delete("/{itemID}", controllers.DeleteWishlistItem(itemService, logg))
			})
		})
	})

	return r
}
