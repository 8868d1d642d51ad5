package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/auth"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/checkout"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/order"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/product"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/application/user"
	jwtinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/jwt"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/transport/http/handler"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/transport/http/middleware"
)

// Deps carries everything the router needs.
type Deps struct {
	Auth     auth.Service
	Users    user.Service
	Products product.Service
	Orders   order.Service
	Checkout checkout.Service
	JWT      *jwtinfra.Provider

	AllowedOrigins []string
}

// NewRouter wires all routes, middleware and handlers.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	productHandler := handler.NewProductHandler(d.Products)
	orderHandler := handler.NewOrderHandler(d.Orders)
	checkoutHandler := handler.NewCheckoutHandler(d.Checkout)

	// 1 req/s with a burst of 5 per IP on the credential endpoints.
	authLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)
	requireAuth := middleware.Auth(d.JWT)

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			limited := r.With(authLimiter.Limit)
			limited.Post("/send-otp", authHandler.SendOTP)
			limited.Post("/verify-otp", authHandler.VerifyOTP)
			limited.Post("/signin", authHandler.SignIn)
			limited.Post("/send-reset-otp", authHandler.SendResetOTP)
			limited.Post("/reset-password", authHandler.ResetPassword)
			// Google's endpoint already throttles token verification.
			r.Post("/google-signin", authHandler.GoogleSignIn)
		})

		r.Post("/create-checkout-session", checkoutHandler.CreateSession)

		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/users/me", userHandler.Me)
			r.Put("/users/me", userHandler.UpdateMe)

			r.Post("/orders", orderHandler.Create)
			r.Get("/orders/myorders", orderHandler.MyOrders)
		})

		// Admin routes.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Use(middleware.RequireAdmin)

			r.Post("/products/add", productHandler.Create)
			r.Put("/products/{id}", productHandler.Update)
			r.Delete("/products/{id}", productHandler.Delete)
			r.Post("/products/{id}/image", productHandler.UploadImage)

			r.Get("/orders", orderHandler.ListAll)
			r.Put("/orders/{id}/status", orderHandler.UpdateStatus)
		})
	})

	return r
}
