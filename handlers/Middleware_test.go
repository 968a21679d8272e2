package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amcbackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/health", Health)
	r.GET("/private", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("email"))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT(testSecret, "ops@example.com", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT(testSecret, "ops@example.com", -time.Hour)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("other-secret", "ops@example.com", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	r := authRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "ops@example.com", w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := authRouter()

	w := do(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
