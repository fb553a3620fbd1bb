package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk-app/auth"
	"helpdesk-app/config"
)

func signToken(t *testing.T, userID float64, sessionID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return signed
}

func newTestApp(t *testing.T, roles ...string) *fiber.App {
	t.Helper()
	config.JWTSecret = "test-secret"

	ctx := auth.NewContext()
	ctx.Login(auth.Session{
		SessionID: "sess-ok",
		UserID:    1,
		UserName:  "jdoe",
		Role:      "Engineer",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	Init(ctx, nil)

	app := fiber.New()
	app.Get("/protected", AuthMiddleware, RequireRoles(roles...), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"isSuccess": true})
	})
	return app
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	app := newTestApp(t)

	claims := jwt.MapClaims{"user_id": 1.0, "session_id": "sess-ok", "exp": time.Now().Add(time.Hour).Unix()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareUnknownSession(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-gone"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidSession(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-ok"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	app := newTestApp(t, "Engineer", "Admin")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-ok"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRolesMismatchAnswersNotFound(t *testing.T) {
	// role mismatch is reported as 404, not 403, and never as a login redirect
	app := newTestApp(t, "Admin")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-ok"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequireRolesEmptySetAdmitsAnyAuthenticated(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-ok"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareRejectsTokenOfReplacedSession(t *testing.T) {
	config.JWTSecret = "test-secret"

	ctx := auth.NewContext()
	expires := time.Now().Add(time.Hour)
	ctx.Login(auth.Session{SessionID: "sess-old", UserID: 1, UserName: "jdoe", Role: "Engineer", ExpiresAt: expires})
	ctx.Login(auth.Session{SessionID: "sess-new", UserID: 1, UserName: "jdoe", Role: "Engineer", ExpiresAt: expires})
	Init(ctx, nil)

	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"isSuccess": true})
	})

	// a second login replaces the first one everywhere
	ctx.DropOthers(1, "sess-new")
	require.Equal(t, 1, ctx.ActiveCount())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-old"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 1, "sess-new"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: signToken(t, 1, "sess-ok")})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
