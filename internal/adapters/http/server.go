// Package http is the storefront REST surface.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mahabubulhasibshawon/storefront/internal/application"
	"github.com/mahabubulhasibshawon/storefront/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront/pkg/auth"
)

const refreshCookieName = "refresh_token"

type Services struct {
	Auth     *application.AuthService
	Carts    *application.CartService
	Vouchers *application.VoucherService
	Orders   *application.OrderService
	Payments *application.PaymentService
}

type Config struct {
	RequestTimeout time.Duration
	CookieSecure   bool
	RefreshTTL     time.Duration
	// HealthChecks run on GET /health. Any failure turns the answer into 503.
	HealthChecks map[string]func(ctx context.Context) error
}

type Server struct {
	svc     Services
	issuer  *auth.Issuer
	limiter *RateLimiter
	cfg     Config
	log     *logrus.Entry
}

func NewServer(svc Services, issuer *auth.Issuer, limiter *RateLimiter, cfg Config, log *logrus.Entry) *Server {
	return &Server{svc: svc, issuer: issuer, limiter: limiter, cfg: cfg, log: log}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(metrics.InstrumentHTTP)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/health", s.health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.register)
			r.With(s.limiter.Handler).Post("/login", s.login)
			r.Post("/refresh", s.refresh)
			r.With(BearerAuth(s.issuer)).Post("/logout", s.logout)
		})

		r.Post("/mpesa/callback", s.mpesaCallback)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(s.issuer))

			r.Get("/cart", s.getCart)
			r.Post("/cart/items", s.addCartItem)
			r.Delete("/cart/items/{id}", s.removeCartItem)
			r.Post("/vouchers/validate", s.validateVoucher)
			r.Post("/checkout", s.checkout)
			r.Get("/order/{id}", s.getOrder)
			r.Post("/mpesa/stkpush", s.stkPush)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}

func (s *Server) requestLog(r *http.Request) *logrus.Entry {
	entry := s.log.WithField("request_id", middleware.GetReqID(r.Context()))
	if id := userIDFromContext(r.Context()); id != 0 {
		entry = entry.WithField("user_id", id)
	}
	return entry
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, len(s.cfg.HealthChecks))
	status := http.StatusOK
	for name, check := range s.cfg.HealthChecks {
		if err := check(r.Context()); err != nil {
			s.requestLog(r).WithError(err).WithField("check", name).Warn("health check failed")
			checks[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	respondJSON(w, status, map[string]interface{}{"status": overall, "checks": checks})
}
