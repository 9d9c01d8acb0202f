// Package fakeapi serves the subset of the VCF backend used by the console:
// login with a session cookie and the gated virtual centers list.
// It backs the tests and the hidden fake-api command.
package fakeapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookieName = "session_token"

	RouteLogin          = "/api/login"
	RouteVirtualCenters = "/api/virtualcenters"
	RouteHealth         = "/health"
)

type Config struct {
	Username   string
	Password   string
	SessionTTL time.Duration
	// Items are raw upstream records, mapped like the real backend does.
	Items []map[string]any
	// Debug puts gin in debug mode.
	Debug bool
}

// Failure makes a route answer with an error instead of its normal response.
// RawBody, when set, is sent verbatim instead of the json error payload.
type Failure struct {
	Status  int
	Code    string
	Message string
	RawBody string
}

type Server struct {
	cfg          Config
	passwordHash []byte
	engine       *gin.Engine
	sessions     *SessionStore
	srv          *http.Server

	mu       sync.Mutex
	items    []map[string]any
	failures map[string]Failure
	hits     map[string]int
}

func New(cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = time.Hour
	}

	s := &Server{
		cfg:      cfg,
		engine:   gin.New(),
		sessions: NewSessionStore(cfg.SessionTTL),
		items:    cfg.Items,
		failures: make(map[string]Failure),
		hits:     make(map[string]int),
	}

	// Without a hash every login answers INTERNAL_ERROR.
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.S().Named("fakeapi").Errorw("failed to hash accepted password", "error", err)
	}
	s.passwordHash = hash

	s.engine.Use(
		ginzap.Ginzap(zap.L(), time.RFC3339, true),
		ginzap.RecoveryWithZap(zap.L(), true),
		s.countHits(),
	)
	s.registerHandlers()

	return s
}

// Handler returns the http handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

// SetItems replaces the upstream records.
func (s *Server) SetItems(items []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// SetFailure makes route fail until ClearFailures is called.
func (s *Server) SetFailure(route string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = f
}

func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]Failure)
}

// Hits returns the number of requests received on route.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// Start listens on addr until Stop is called.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.mu.Lock()
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}
	srv := s.srv
	s.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			zap.S().Named("fakeapi").Errorw("failed to start server", "error", err)
		}
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return
	}
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Named("fakeapi").Errorw("server shutdown", "error", err)
	}
}

func (s *Server) failure(route string) (Failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.failures[route]
	return f, ok
}

func (s *Server) currentItems() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]map[string]any, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Server) countHits() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.hits[c.Request.URL.Path]++
		s.mu.Unlock()
		c.Next()
	}
}
