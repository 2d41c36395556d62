package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"founderhub/internal/auth"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		rid := c.Locals(RequestIDLocalKey)
		return c.SendString(rid.(string))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	for name, bad := range map[string]string{
		"separator": "abc;Set-Cookie=x",
		"spaces":    "has spaces",
		"too long":  strings.Repeat("a", maxRequestIDLen+1),
	} {
		t.Run("should replace "+name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, _ := app.Test(req)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
	assert.Equal(t, "http_request", logData["msg"])
}

func TestLogger_LevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(Logger(zap.New(core)))

	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	app.Test(httptest.NewRequest("GET", "/missing", nil))
	app.Test(httptest.NewRequest("GET", "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(404), entries[0].ContextMap()["status"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(500), entries[1].ContextMap()["status"])
}

type stubVerifier struct {
	id  *auth.Identity
	err error
}

func (s stubVerifier) Verify(raw string) (*auth.Identity, error) {
	if raw == "" {
		return nil, auth.ErrMissingToken
	}
	return s.id, s.err
}

func TestAuthenticate(t *testing.T) {
	member := &auth.Identity{Subject: "auth0|ada", Email: "ada@example.com"}
	admin := &auth.Identity{Subject: "auth0|root", Email: "root@example.com", Admin: true}

	newApp := func(v auth.TokenVerifier) *fiber.App {
		app := fiber.New()
		app.Use(Authenticate(v))
		app.Get("/me", func(c *fiber.Ctx) error {
			return c.JSON(Identity(c))
		})
		app.Get("/admin", RequireAdmin(), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})
		return app
	}

	tests := []struct {
		name   string
		v      auth.TokenVerifier
		path   string
		header string
		want   int
	}{
		{name: "missing token", v: stubVerifier{id: member}, path: "/me", want: fiber.StatusUnauthorized},
		{name: "wrong scheme", v: stubVerifier{id: member}, path: "/me", header: "Basic abc", want: fiber.StatusUnauthorized},
		{name: "invalid token", v: stubVerifier{err: auth.ErrInvalidToken}, path: "/me", header: "Bearer bad", want: fiber.StatusUnauthorized},
		{name: "valid token", v: stubVerifier{id: member}, path: "/me", header: "Bearer good", want: fiber.StatusOK},
		{name: "member on admin route", v: stubVerifier{id: member}, path: "/admin", header: "Bearer good", want: fiber.StatusForbidden},
		{name: "admin on admin route", v: stubVerifier{id: admin}, path: "/admin", header: "bearer good", want: fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := newApp(tt.v).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == fiber.StatusUnauthorized {
				assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
}
