// Package server assembles the storefront HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/northshoreshop/storefront/internal/catalog"
	"github.com/northshoreshop/storefront/internal/checkout"
	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/database"
	"github.com/northshoreshop/storefront/internal/handler"
	"github.com/northshoreshop/storefront/internal/logger"
	"github.com/northshoreshop/storefront/internal/metrics"
)

// Dependencies are the services the routes are served by.
// DBPool is nil when the order ledger is disabled.
type Dependencies struct {
	Catalog        catalog.Service
	Checkout       checkout.Service
	Formatter      *currency.Formatter
	DBPool         database.Pool
	PublicBaseURL  string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler.HandleListProducts(deps.Catalog, deps.Formatter))
			r.Get("/{id}", handler.HandleGetProduct(deps.Catalog, deps.Formatter))
		})

		r.Get("/shipping-rates", handler.HandleListShippingRates(deps.Catalog, deps.Formatter))

		r.Route("/checkout_sessions", func(r chi.Router) {
			r.Post("/cart", handler.HandleCreateCheckoutSession(deps.Checkout, deps.PublicBaseURL))
			r.Get("/{id}", handler.HandleGetCheckoutSession(deps.Checkout, deps.Formatter))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func sanitizeHeaders(headers http.Header) http.Header {
	sanitized := make(http.Header, len(headers))
	for k, v := range headers {
		sanitized[k] = v
		for _, sensitive := range SensitiveHeaders {
			if strings.EqualFold(k, sensitive) {
				sanitized[k] = []string{RedactedValue}
				break
			}
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
