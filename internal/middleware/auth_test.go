package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillconnect/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "auth-middleware-test-secret"

func signTestToken(t *testing.T, mutate func(jwt.MapClaims)) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "42",
		"iss": TokenIssuer,
		"aud": TokenAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	if mutate != nil {
		mutate(claims)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authTestApp(t *testing.T) *fiber.App {
	t.Helper()
	InitMiddleware(&config.Config{JWTSecret: testSecret})

	app := fiber.New()
	app.Get("/protected", AuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	app.Get("/ws", WebSocketAuthRequired, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	app := authTestApp(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"Valid token", "Bearer " + signTestToken(t, nil), http.StatusOK},
		{"Missing header", "", http.StatusUnauthorized},
		{"Malformed header", "NotBearer abc", http.StatusUnauthorized},
		{"Garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"Expired token", "Bearer " + signTestToken(t, func(c jwt.MapClaims) {
			c["exp"] = time.Now().Add(-time.Hour).Unix()
		}), http.StatusUnauthorized},
		{"Wrong issuer", "Bearer " + signTestToken(t, func(c jwt.MapClaims) {
			c["iss"] = "someone-else"
		}), http.StatusUnauthorized},
		{"Wrong audience", "Bearer " + signTestToken(t, func(c jwt.MapClaims) {
			c["aud"] = "other-client"
		}), http.StatusUnauthorized},
		{"Missing subject", "Bearer " + signTestToken(t, func(c jwt.MapClaims) {
			delete(c, "sub")
		}), http.StatusUnauthorized},
		{"Non-numeric subject", "Bearer " + signTestToken(t, func(c jwt.MapClaims) {
			c["sub"] = "alice"
		}), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestWebSocketAuthRequiredQueryToken(t *testing.T) {
	app := authTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ws?token="+signTestToken(t, nil), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Falls back to the Authorization header.
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, nil))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAlgorithmConfusionRejected(t *testing.T) {
	app := authTestApp(t)

	// Tokens signed with "none" must never be accepted.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "42",
		"iss": TokenIssuer,
		"aud": TokenAudience,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
