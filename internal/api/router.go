package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/storefront-backend/internal/api/handlers"
	"github.com/baharkarakas/storefront-backend/internal/metrics"
	"github.com/baharkarakas/storefront-backend/internal/middleware"
	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/services"
)

type RouterDeps struct {
	CORSOrigins []string
	Tokens      middleware.TokenVerifier
	Auth        *services.AuthService
	Users       *services.UserService
	Products    *services.ProductService
}

func NewRouter(d RouterDeps) http.Handler {
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.Auth, d.Users)
	userH := handlers.NewUserHandler(d.Users)
	productH := handlers.NewProductHandler(d.Products)

	authn := middleware.Authenticate(d.Tokens)
	admin := middleware.Authorize(models.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/register", authH.Register)
		r.With(authn).Get("/auth/me", authH.Me)

		// ---------- products ----------
		r.Get("/products", productH.List)
		r.Get("/products/{id}", productH.Get)
		r.Group(func(r chi.Router) {
			r.Use(authn, admin)
			r.Post("/products", productH.Create)
			r.Put("/products/{id}", productH.Update)
			r.Delete("/products/{id}", productH.Delete)
		})

		// ---------- users (admin) ----------
		r.Route("/users", func(r chi.Router) {
			r.Use(authn, admin)
			r.Get("/", userH.List)
			r.Post("/", userH.Create)
			r.Get("/{id}", userH.Get)
			r.Put("/{id}", userH.Update)
			r.Delete("/{id}", userH.Delete)
		})
	})

	return r
}
