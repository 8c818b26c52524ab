package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devpath/config"
	"devpath/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(cfg *config.Config, captured *Session) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware(cfg), func(c *fiber.Ctx) error {
		session, ok := SessionFromCtx(c)
		if !ok {
			return JsonResponse(c, fiber.StatusInternalServerError, false, "No session!", nil)
		}
		*captured = session
		return JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret"}
	user := &models.User{
		Name:  "Admin",
		Email: "admin@x.com",
		Type:  models.TypeAdmin,
		Level: models.LevelAdvanced,
	}
	user.ID = 42

	token, err := GenerateJWT(cfg, user)
	require.NoError(t, err)

	var session Session
	app := newGuardedApp(cfg, &session)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(42), session.UserID)
	assert.Equal(t, "Admin", session.Name)
	assert.Equal(t, "admin@x.com", session.Email)
	assert.Equal(t, models.TypeAdmin, session.Role)
	assert.Equal(t, models.LevelAdvanced, session.Level)
}

func TestJWTRejectsBadTokens(t *testing.T) {
	cfg := &config.Config{JWTKey: "test-secret"}
	var session Session
	app := newGuardedApp(cfg, &session)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestJWTRejectsTokenSignedWithOtherKey(t *testing.T) {
	user := &models.User{Email: "admin@x.com", Type: models.TypeAdmin}
	user.ID = 1

	token, err := GenerateJWT(&config.Config{JWTKey: "other-secret"}, user)
	require.NoError(t, err)

	var session Session
	app := newGuardedApp(&config.Config{JWTKey: "test-secret"}, &session)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
