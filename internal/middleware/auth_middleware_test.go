package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanck/studentapi/internal/pkg/auth"
)

func newProtectedRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	authMiddleware := NewAuthMiddleware(jwtService)
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(ContextKeyUsername)})
	})

	return router
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-signing-key",
		Issuer:         "studentapi",
		Audience:       "studentapi-clients",
		AccessTokenExp: time.Hour,
	})
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter(t, newTestJWTService())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing")
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	t.Parallel()

	router := newProtectedRouter(t, newTestJWTService())

	tests := []struct {
		name   string
		header string
	}{
		{name: "no bearer prefix", header: "abc.def.ghi"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuthRejectsInvalidToken(t *testing.T) {
	t.Parallel()

	jwtService := newTestJWTService()
	router := newProtectedRouter(t, jwtService)

	// Token signed with a different key
	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "another-key",
		Issuer:         "studentapi",
		Audience:       "studentapi-clients",
		AccessTokenExp: time.Hour,
	})
	token, _, err := otherService.GenerateToken("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	t.Parallel()

	jwtService := newTestJWTService()
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateToken("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`, "subject claim should reach the handler")
}
