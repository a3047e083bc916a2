// Package server provides the HTTP REST API for the career coach.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/career-coach/internal/agent"
	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/server/ratelimit"
)

// Config holds server configuration.
type Config struct {
	Addr string
}

// Server exposes the agent and conversation handler over HTTP.
type Server struct {
	httpServer *http.Server
	agent      *agent.Agent
	conv       *conversation.Handler
	validate   *validator.Validate
	limiter    *ratelimit.Limiter
	logger     *zap.Logger
}

// New creates a server instance. The caller owns the agent and handler
// lifecycles; Shutdown only stops the HTTP listener.
func New(cfg Config, a *agent.Agent, conv *conversation.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	validate := validator.New()
	// Report JSON field names in validation errors, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	s := &Server{
		agent:    a,
		conv:     conv,
		validate: validate,
		limiter:  ratelimit.New(ratelimit.DefaultRules()),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("POST /career/analyze", s.handleCareerAnalyze)
	mux.HandleFunc("POST /resume/review", s.handleResumeReview)
	mux.HandleFunc("POST /jobs/match", s.handleJobsMatch)
	mux.HandleFunc("POST /skills/gap", s.handleSkillGap)
	mux.HandleFunc("POST /interview/start", s.handleInterviewStart)
	mux.HandleFunc("POST /interview/answer", s.handleInterviewAnswer)
	mux.HandleFunc("POST /interview/end", s.handleInterviewEnd)
	mux.HandleFunc("GET /interview/{user_id}", s.handleInterviewStatus)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until the listener stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their endpoint budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.clientID(r)
		allowed, retryAfter := s.limiter.Allow(clientID, r.URL.Path)
		if !allowed {
			w.Header().Set("Retry-After", retryAfter.Round(time.Second).String())
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) clientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// jsonResponse writes a JSON response with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
