package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Parallel()

	setupRouter := func(tokenService *services.TokenService) *gin.Engine {
		router := gin.New()
		router.Use(AuthMiddleware(tokenService))
		router.GET("/protected", func(c *gin.Context) {
			subject, ok := subjectFrom(c)
			if !ok {
				c.String(http.StatusInternalServerError, "subject not found in context")
				return
			}
			c.String(http.StatusOK, "Hello "+subject)
		})
		return router
	}

	secret := "test-secret-middleware"
	issuer := "test-issuer"

	t.Run("Success: Valid Token", func(t *testing.T) {
		t.Parallel()
		tokenService := services.NewTokenService(secret, issuer, 1*time.Hour)
		router := setupRouter(tokenService)

		validToken, _ := tokenService.GenerateToken(domain.OwnerSubject)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello owner", w.Body.String())
	})

	t.Run("Fail: Missing Authorization Header", func(t *testing.T) {
		t.Parallel()
		router := setupRouter(services.NewTokenService(secret, issuer, 1*time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header required")
	})

	t.Run("Fail: Invalid Header Format", func(t *testing.T) {
		t.Parallel()
		router := setupRouter(services.NewTokenService(secret, issuer, 1*time.Hour))

		formats := []string{
			"Bearer",
			"Token 12345",
			"Bearer12345",
			"Bearer ",
			"Bearer a b",
		}

		for _, h := range formats {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", h)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "Should fail for header: "+h)
		}
	})

	t.Run("Fail: Token from another secret", func(t *testing.T) {
		t.Parallel()
		router := setupRouter(services.NewTokenService(secret, issuer, 1*time.Hour))
		forged, _ := services.NewTokenService("other", issuer, time.Hour).GenerateToken(domain.OwnerSubject)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})
}
