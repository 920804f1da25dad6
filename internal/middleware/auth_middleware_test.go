package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinebook/backend/internal/models"
	"github.com/cinebook/backend/internal/utils"
	"github.com/cinebook/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authMiddlewareSecret = "middleware-test-secret"

func setupProtectedRouter(t *testing.T, roles ...models.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, logger.Init(false))

	router := gin.New()
	router.GET("/protected", RequireRole(authMiddlewareSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": UserID(c),
		})
	})
	return router
}

func tokenFor(t *testing.T, role models.Role, secret string, expiresIn time.Duration) string {
	t.Helper()
	token, err := utils.GenerateToken(&models.User{
		ID:   uuid.NewString(),
		Role: role,
	}, secret, expiresIn)
	require.NoError(t, err)
	return token
}

func TestRequireRole_NoToken(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Access denied, no token provided", body["error"])
}

func TestRequireRole_MalformedHeader(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", tokenFor(t, models.RoleAdmin, authMiddlewareSecret, time.Hour)) // no "Bearer " prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_InvalidToken(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid token", body["error"])
}

func TestRequireRole_ExpiredToken(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin, authMiddlewareSecret, -time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "Expired tokens get the same response as invalid ones")
}

func TestRequireRole_WrongSecret(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin, "some-other-secret", time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_RoleMismatch(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser, authMiddlewareSecret, time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Access denied, admin only", body["error"])
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	router := setupProtectedRouter(t, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin, authMiddlewareSecret, time.Hour))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["user_id"], "Verified identity must be attached to the context")
}

func TestRequireRole_NoRolesAdmitsAnyAuthenticatedUser(t *testing.T) {
	router := setupProtectedRouter(t)

	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, role, authMiddlewareSecret, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "Role %s should be admitted", role)
	}
}
