package http

import (
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/observability"
)

type errorEnvelope struct {
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Code       string         `json:"code"`
	Timestamp  string         `json:"timestamp"`
	Details    map[string]any `json:"details"`
}

func newTestApp(t *testing.T, secret string) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	RegisterMiddlewares(app, logger, metrics, 5*time.Second)

	tokens := auth.NewTokenManager(secret, 60)
	authMW := auth.NewAuthMiddleware(tokens, logger)

	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("kaboom")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("database exploded")
	})

	protected := app.Group("/api/v1", authMW.Handle)
	protected.Get("/admin-only", auth.RequireRoles(domain.RoleAdmin), echoPrincipal)
	protected.Get("/staff-room", auth.RequireRoles(domain.RoleAdmin, domain.RoleTeacher, domain.RoleStaff), echoPrincipal)

	app.Use(NotFoundHandler())
	return app, tokens
}

func echoPrincipal(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return errors.New("principal missing after auth")
	}
	return c.JSON(fiber.Map{"id": principal.ID, "role": principal.Role, "email": principal.Email})
}

func doRequest(t *testing.T, app *fiber.App, method, path, bearer string) (int, errorEnvelope, string) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)
	return resp.StatusCode, envelope, string(body)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", "")
	assert.Equal(t, stdhttp.StatusUnauthorized, status)
	assert.Equal(t, "Access token required", envelope.Message)
	assert.Equal(t, stdhttp.StatusUnauthorized, envelope.StatusCode)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "token-without-scheme"} {
		status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", header)
		assert.Equal(t, stdhttp.StatusUnauthorized, status, "header %q", header)
		assert.Equal(t, "Access token required", envelope.Message, "header %q", header)
	}
}

func TestAuthRejectsBadSignature(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")
	other := auth.NewTokenManager("another-secret", 60)
	token, _, err := other.Generate("u1", domain.RoleAdmin, "a@school.example.com")
	require.NoError(t, err)

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", "Bearer "+token)
	assert.Equal(t, stdhttp.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", envelope.Message)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", "Bearer not.a.token")
	assert.Equal(t, stdhttp.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", envelope.Message)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	claims := &auth.Claims{
		Role:  domain.RoleAdmin,
		Email: "a@school.example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", "Bearer "+token)
	assert.Equal(t, stdhttp.StatusUnauthorized, status)
	assert.Equal(t, "Token expired", envelope.Message)
	assert.Equal(t, "TOKEN_EXPIRED", envelope.Code)
}

func TestAuthReportsMissingSecret(t *testing.T) {
	app, _ := newTestApp(t, "")

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", "Bearer whatever")
	assert.Equal(t, stdhttp.StatusInternalServerError, status)
	assert.Equal(t, "Server configuration error", envelope.Message)
}

func TestAuthAttachesPrincipal(t *testing.T) {
	app, tokens := newTestApp(t, "test-secret")
	token, _, err := tokens.Generate("u1", domain.RoleAdmin, "a@school.example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/v1/admin-only", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "u1", got["id"])
	assert.Equal(t, "ADMIN", got["role"])
	assert.Equal(t, "a@school.example.com", got["email"])
}

func TestAuthzDeniesDisallowedRole(t *testing.T) {
	app, tokens := newTestApp(t, "test-secret")
	token, _, err := tokens.Generate("u2", domain.RoleTeacher, "t@school.example.com")
	require.NoError(t, err)

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/admin-only", "Bearer "+token)
	assert.Equal(t, stdhttp.StatusForbidden, status)
	assert.Equal(t, "Access denied. Required roles: ADMIN. Your role: TEACHER", envelope.Message)
}

func TestAuthzMessageEchoesAllowListOrder(t *testing.T) {
	app, tokens := newTestApp(t, "test-secret")
	token, _, err := tokens.Generate("u3", domain.RoleParent, "p@school.example.com")
	require.NoError(t, err)

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/api/v1/staff-room", "Bearer "+token)
	assert.Equal(t, stdhttp.StatusForbidden, status)
	assert.Contains(t, envelope.Message, "Required roles: ADMIN, TEACHER, STAFF")
	assert.Contains(t, envelope.Message, "Your role: PARENT")
}

func TestAuthzAllowsListedRole(t *testing.T) {
	app, tokens := newTestApp(t, "test-secret")
	token, _, err := tokens.Generate("u4", domain.RoleStaff, "s@school.example.com")
	require.NoError(t, err)

	status, _, body := doRequest(t, app, stdhttp.MethodGet, "/api/v1/staff-room", "Bearer "+token)
	assert.Equal(t, stdhttp.StatusOK, status)
	assert.Contains(t, body, "u4")
}

func TestUnmatchedRouteReturnsEnvelope(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	status, envelope, _ := doRequest(t, app, stdhttp.MethodGet, "/no/such/route", "")
	assert.Equal(t, stdhttp.StatusNotFound, status)
	assert.Equal(t, stdhttp.StatusNotFound, envelope.StatusCode)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "/no/such/route", envelope.Details["path"])

	ts, err := time.Parse(time.RFC3339, envelope.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestPanicBecomesGenericError(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	status, envelope, body := doRequest(t, app, stdhttp.MethodGet, "/boom", "")
	assert.Equal(t, stdhttp.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", envelope.Message)
	assert.NotContains(t, body, "kaboom")
}

func TestUnclassifiedErrorIsNotLeaked(t *testing.T) {
	app, _ := newTestApp(t, "test-secret")

	status, envelope, body := doRequest(t, app, stdhttp.MethodGet, "/fail", "")
	assert.Equal(t, stdhttp.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Code)
	assert.NotContains(t, body, "database exploded")
}
