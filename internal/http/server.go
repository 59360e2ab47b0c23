// Package http exposes the ledger over a JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/services"
	"fintrack/internal/session"
)

type Server struct {
	http.Server

	svc        *services.LedgerService
	password   string
	sessionTTL time.Duration
	now        func() time.Time

	rateLimiter *rateLimiter
	sessions    *cache.LRUCache[session.Session]
	dashboards  *cache.LRUCache[services.Dashboard]

	stopCacheCleanup chan struct{}
}

// NewServer builds the API server. An empty password disables
// authentication entirely. The clock feeds default report windows and
// session checks; pass nil for time.Now.
func NewServer(addr string, svc *services.LedgerService, password string, sessionTTL time.Duration, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	if sessionTTL <= 0 {
		sessionTTL = session.DefaultTimeout
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		svc:              svc,
		password:         password,
		sessionTTL:       sessionTTL,
		now:              now,
		rateLimiter:      newRateLimiter(),
		sessions:         cache.NewLRUCache[session.Session](1000, sessionTTL),
		dashboards:       cache.NewLRUCache[services.Dashboard](100, 5*time.Minute),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/api/login", s.withSecurity(s.handleLogin))

	mux.HandleFunc("/api/transactions", s.withSecurity(s.withAuth(s.handleTransactions)))
	mux.HandleFunc("/api/transactions/", s.withSecurity(s.withAuth(s.handleTransactionByID)))
	mux.HandleFunc("/api/goals", s.withSecurity(s.withAuth(s.handleGoals)))
	mux.HandleFunc("/api/goals/", s.withSecurity(s.withAuth(s.handleGoalByID)))
	mux.HandleFunc("/api/investments", s.withSecurity(s.withAuth(s.handleInvestments)))
	mux.HandleFunc("/api/investments/", s.withSecurity(s.withAuth(s.handleInvestmentByID)))

	mux.HandleFunc("/api/dashboard", s.withSecurity(s.withAuth(s.handleDashboard)))
	mux.HandleFunc("/api/reports/monthly", s.withSecurity(s.withAuth(s.handleMonthlyReport)))
	mux.HandleFunc("/api/reports/categories", s.withSecurity(s.withAuth(s.handleCategoryReport)))
	mux.HandleFunc("/api/reports/networth", s.withSecurity(s.withAuth(s.handleNetWorthReport)))
	mux.HandleFunc("/api/reports/forecasts", s.withSecurity(s.withAuth(s.handleForecastReport)))
	mux.HandleFunc("/api/reports/summary", s.withSecurity(s.withAuth(s.handleSummaryReport)))

	return s
}

func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sessions.CleanExpired()
			s.dashboards.CleanExpired()
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown stops background loops before draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.rateLimiter.stop()
	close(s.stopCacheCleanup)
	return s.Server.Shutdown(ctx)
}

// withSecurity adds security headers, rate limiting of mutating requests,
// and request-scoped logging.
func (s *Server) withSecurity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := r.Context()

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// responseWriter captures the status code for request logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}
