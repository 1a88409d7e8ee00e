package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/restaurant-booking/internal/config"
)

func testCfg() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret, typ string, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":          float64(1),
		"username":     "ana",
		"is_superuser": false,
		"typ":          typ,
		"exp":          exp.Unix(),
		"iat":          time.Now().Unix(),
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.MustGet(ContextUserID),
			"username": c.MustGet(ContextUsername),
		})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testCfg()
	r := authRouter(cfg)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecret, "access", time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusUnauthorized, get(r, "Basic "+token).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", "access", time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
	})

	t.Run("expired", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecret, "access", time.Now().Add(-time.Hour))
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecret, "refresh", time.Now().Add(time.Hour))
		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_token_type")
	})

	t.Run("valid access token", func(t *testing.T) {
		token := signToken(t, cfg.JWTSecret, "access", time.Now().Add(time.Hour))
		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ana")
	})
}
