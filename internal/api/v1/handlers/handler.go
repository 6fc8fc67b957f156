package handlers

import (
	"net/http"
	"time"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Timeout      time.Duration
	CookieSecure bool
	HistoryLimit int
}

type Handler struct {
	authService     service.AuthService
	forecastService service.ForecastService
	sessions        auth.SessionManager
	timeout         time.Duration
	cookieSecure    bool
	historyLimit    int
	router          chi.Router
}

func NewHandler(
	authService service.AuthService,
	forecastService service.ForecastService,
	sessions auth.SessionManager,
	opts Options,
) *Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = 10
	}

	h := &Handler{
		authService:     authService,
		forecastService: forecastService,
		sessions:        sessions,
		timeout:         opts.Timeout,
		cookieSecure:    opts.CookieSecure,
		historyLimit:    opts.HistoryLimit,
	}
	h.router = h.routes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(requestLog)
	r.Use(recoverer)
	r.Use(securityHeaders(h.cookieSecure))
	r.Use(withTimeout(h.timeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(staticFiles())))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/logout", h.Logout)
		r.Get("/forecast", h.GetForecast)
		r.Get("/dashboard", h.Dashboard)
	})

	return r
}
