package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter assembles the full API surface.
func NewRouter(
	logger *zap.Logger,
	catalogH *CatalogHandler,
	cartH *CartHandler,
	paymentH *PaymentHandler,
	authH *AuthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogH.List)
			r.Get("/search", catalogH.Search)
			r.Get("/{id}", catalogH.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Post("/", cartH.AddItem)
			r.Delete("/", cartH.ClearCart)
			r.Put("/{product_id}", cartH.UpdateQuantity)
			r.Delete("/{product_id}", cartH.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", cartH.GetWishlist)
			r.Delete("/", cartH.ClearWishlist)
			r.Post("/{product_id}", cartH.ToggleWishlist)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", paymentH.History)
			r.Post("/", paymentH.Process)
			r.Post("/{id}/refund", paymentH.Refund)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authH.Login)
			r.Post("/register", authH.Register)
			r.Post("/logout", authH.Logout)
			r.Get("/me", authH.Me)
			r.Put("/profile", authH.UpdateProfile)
			r.Post("/otp/send", authH.SendOTP)
			r.Post("/otp/verify", authH.VerifyOTP)
			r.Post("/password/reset", authH.ResetPassword)
			r.Route("/addresses", func(r chi.Router) {
				r.Post("/", authH.AddAddress)
				r.Put("/{id}", authH.UpdateAddress)
				r.Delete("/{id}", authH.DeleteAddress)
			})
		})
	})

	return r
}
