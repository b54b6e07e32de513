package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	return auth.NewTokenService("test-secret", time.Hour)
}

func issue(t *testing.T, tokens *auth.TokenService, userID, email string, role models.UserRole) string {
	t.Helper()
	raw, err := tokens.Issue(userID, email, role)
	require.NoError(t, err)
	return raw
}

func protectedRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetIdentity(c).UserID})
	})
	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := testTokens(t)
	r := protectedRouter(AuthMiddleware(tokens))

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Missing Authorization header"}`, w.Body.String())

	w = doGet(r, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Missing Authorization header"}`, w.Body.String())

	w = doGet(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid or expired token"}`, w.Body.String())

	raw := issue(t, tokens, "user-1", "dana@example.com", models.UserRoleCandidate)
	w = doGet(r, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
}

func TestAuthMiddlewareWithoutSecret(t *testing.T) {
	r := protectedRouter(AuthMiddleware(nil))

	w := doGet(r, "Bearer anything")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	tokens := testTokens(t)
	r := gin.New()
	r.GET("/maybe", OptionalAuthMiddleware(tokens), func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID})
	})

	get := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := get("")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())

	// an invalid token degrades to anonymous instead of blocking
	w = get("Bearer junk")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())

	raw := issue(t, tokens, "user-1", "dana@example.com", models.UserRoleCandidate)
	w = get("Bearer " + raw)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	tokens := testTokens(t)
	r := protectedRouter(AuthMiddleware(tokens), RequireRole(models.UserRoleEmployer))

	raw := issue(t, tokens, "user-1", "dana@example.com", models.UserRoleCandidate)
	w := doGet(r, "Bearer "+raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, w.Body.String())

	raw = issue(t, tokens, "user-2", "acme@example.com", models.UserRoleEmployer)
	w = doGet(r, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	r := protectedRouter(RequireRole(models.UserRoleEmployer))

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	tokens := testTokens(t)
	policy := auth.NewPolicy("admin@example.com")
	r := protectedRouter(AuthMiddleware(tokens), AdminMiddleware(policy))

	// non-admin answers 401, not 403
	raw := issue(t, tokens, "user-1", "dana@example.com", models.UserRoleCandidate)
	w := doGet(r, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Admin access required"}`, w.Body.String())

	raw = issue(t, tokens, "user-2", "root@example.com", models.UserRoleAdmin)
	w = doGet(r, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)

	// admin-email override admits a candidate token
	raw = issue(t, tokens, "user-3", "admin@example.com", models.UserRoleCandidate)
	w = doGet(r, "Bearer "+raw)
	assert.Equal(t, http.StatusOK, w.Code)
}
