package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/handler"
	"github.com/liyedanpdx/WEB602-Project-2/internal/httputil"
	"github.com/liyedanpdx/WEB602-Project-2/internal/service"
	appmw "github.com/liyedanpdx/WEB602-Project-2/internal/transport/http/middleware"
)

// Rate-limit categories. The policy for each is injected through
// RouterConfig rather than living as package state.
const (
	RateRegister = "register"
	RateLogin    = "login"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler  *handler.AuthHandler
	PostHandler  *handler.PostHandler
	PagesHandler *handler.PagesHandler

	// AuthService backs the authentication guard.
	AuthService *service.AuthService

	// Redis may be nil; the rate limiter then fails open.
	Redis      *redis.Client
	RateLimits map[string]appmw.Policy

	// StaticDir is served under /public/.
	StaticDir string

	Logger *logrus.Logger
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.StaticDir != "" {
		fs := http.StripPrefix("/public/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.Handle("/public/*", fs)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusFound)
	})

	// Public routes - no authentication required
	registerLimit := appmw.RateLimit(cfg.Redis, RateRegister, cfg.RateLimits[RateRegister], cfg.Logger)
	loginLimit := appmw.RateLimit(cfg.Redis, RateLogin, cfg.RateLimits[RateLogin], cfg.Logger)

	r.Get("/register", cfg.AuthHandler.ShowRegister)
	r.With(registerLimit).Post("/register", cfg.AuthHandler.Register)
	r.Get("/thankyou", cfg.PagesHandler.ThankYou)
	r.With(loginLimit).Get("/login", cfg.AuthHandler.ShowLogin)
	r.With(loginLimit).Post("/login", cfg.AuthHandler.Login)

	// Protected routes - the guard redirects anonymous requests to /login
	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(cfg.AuthService))

		r.Get("/logout", cfg.AuthHandler.Logout)
		r.Get("/home", cfg.PagesHandler.Home)
		r.Get("/blog", cfg.PostHandler.Blog)
		r.Get("/blog/{id}", cfg.PostHandler.BlogPost)
		r.Post("/toggle-like", cfg.PostHandler.ToggleLike)
		r.Get("/registrations", cfg.PagesHandler.Registrations)
	})

	return r
}
