package fakeapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kubev2v/vcfctl/internal/models"
)

const sessionKey = "session"

// errorResponse is the body of every error answered by the backend.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type virtualCenterItem struct {
	models.VirtualCenter
	Raw map[string]any `json:"raw"`
}

type virtualCentersResponse struct {
	Items []virtualCenterItem `json:"items"`
}

func (s *Server) registerHandlers() {
	s.engine.GET(RouteHealth, s.health)
	s.engine.POST(RouteLogin, s.login)
	s.engine.GET(RouteVirtualCenters, s.requireSession(), s.virtualCenters)
}

// health reports liveness
// (GET /health)
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// login checks the credentials and opens a session
// (POST /api/login)
func (s *Server) login(c *gin.Context) {
	if s.writeFailure(c, RouteLogin) {
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(c, http.StatusUnprocessableEntity, string(models.ErrorCodeValidation), "username and password are required")
		return
	}

	if s.passwordHash == nil {
		writeError(c, http.StatusInternalServerError, string(models.ErrorCodeInternal), "Login is not available")
		return
	}

	if !s.checkCredentials(req.Username, req.Password) {
		zap.S().Named("fakeapi").Infow("login rejected", "username", req.Username)
		writeError(c, http.StatusUnauthorized, string(models.ErrorCodeInvalidCredentials), "Invalid VCF credentials")
		return
	}

	// A new login replaces the session the caller already holds.
	if previous, err := c.Cookie(SessionCookieName); err == nil && previous != "" {
		s.sessions.Invalidate(previous)
	}

	token := s.sessions.Create(req.Username, req.BaseURL)
	c.SetCookie(SessionCookieName, token, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)

	zap.S().Named("fakeapi").Infow("login successful", "username", req.Username)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// virtualCenters lists the virtual centers of the session
// (GET /api/virtualcenters)
func (s *Server) virtualCenters(c *gin.Context) {
	if s.writeFailure(c, RouteVirtualCenters) {
		return
	}

	if session, ok := c.Get(sessionKey); ok {
		zap.S().Named("fakeapi").Debugw("listing virtual centers", "username", session.(*Session).Username)
	}

	raw := s.currentItems()
	resp := virtualCentersResponse{Items: make([]virtualCenterItem, 0, len(raw))}
	for _, item := range raw {
		resp.Items = append(resp.Items, virtualCenterItem{
			VirtualCenter: toVirtualCenter(item),
			Raw:           item,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// requireSession accepts the session cookie, or a bearer token when the cookie is missing.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}

		if token == "" {
			writeError(c, http.StatusUnauthorized, string(models.ErrorCodeAuthRequired), "Login required")
			c.Abort()
			return
		}

		session, err := s.sessions.Get(token)
		if err != nil {
			writeError(c, http.StatusUnauthorized, string(models.ErrorCodeInvalidSession), "Session expired. Please login again")
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

func (s *Server) checkCredentials(username, password string) bool {
	if username != s.cfg.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

func (s *Server) writeFailure(c *gin.Context, route string) bool {
	f, ok := s.failure(route)
	if !ok {
		return false
	}

	if f.RawBody != "" {
		c.Data(f.Status, "text/plain; charset=utf-8", []byte(f.RawBody))
		return true
	}
	if f.Code == "" && f.Message == "" {
		c.Status(f.Status)
		return true
	}
	writeError(c, f.Status, f.Code, f.Message)
	return true
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Code: code, Message: message})
}

func bearerToken(header string) string {
	if len(header) < len("bearer ") || !strings.EqualFold(header[:len("bearer ")], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("bearer "):])
}

// toVirtualCenter maps an upstream record: id falls back to uuid and fqdn to hostname.
func toVirtualCenter(raw map[string]any) models.VirtualCenter {
	return models.VirtualCenter{
		ID:      firstString(raw, "id", "uuid"),
		Name:    firstString(raw, "name"),
		Status:  firstString(raw, "status"),
		Version: firstString(raw, "version"),
		FQDN:    firstString(raw, "fqdn", "hostname"),
	}
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s := fmt.Sprint(v); s != "" {
			return s
		}
	}
	return ""
}
