package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hareware-api/internal/application/auth"
	"github.com/jhoicas/hareware-api/internal/application/dto"
	"github.com/jhoicas/hareware-api/internal/domain"
	apphttp "github.com/jhoicas/hareware-api/internal/interfaces/http"
	"github.com/jhoicas/hareware-api/pkg/logger"
)

// stubVerifier acepta un único token.
type stubVerifier struct {
	token string
	id    *auth.Identity
	err   error
}

func (s stubVerifier) VerifyToken(_ context.Context, token string) (*auth.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	if token != s.token {
		return nil, domain.ErrUnauthorized
	}
	return s.id, nil
}

type stubResolver map[string]string

func (r stubResolver) Resolve(_ context.Context, username string) (string, error) {
	taxID, ok := r[username]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return taxID, nil
}

// buildTestApp app mínima: AuthMiddleware + RequireAccessLevel + RequireTenant y un handler que devuelve los locals.
func buildTestApp(v stubVerifier, minLevel int) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop())})
	app.Get("/protected",
		apphttp.AuthMiddleware(v),
		apphttp.RequireAccessLevel(minLevel),
		apphttp.RequireTenant(stubResolver{"ana": "12345678000190"}),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"username": apphttp.GetIdentity(c).Username,
				"tenant":   apphttp.GetTenant(c),
			})
		},
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return resp.StatusCode, body
}

func anaVerifier(level int) stubVerifier {
	return stubVerifier{token: "tok", id: &auth.Identity{UserID: 1, Username: "ana", AccessLevel: level, CompanyID: 7, Active: true}}
}

func TestAuthMiddleware_ValidTokenLoadsIdentityAndTenant(t *testing.T) {
	status, body := doRequest(t, buildTestApp(anaVerifier(1), 1), "Bearer tok")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ana", body["username"])
	assert.Equal(t, "12345678000190", body["tenant"])
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	status, _ := doRequest(t, buildTestApp(anaVerifier(1), 1), "bearer tok")
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin esquema", "tok", "INVALID_TOKEN"},
		{"esquema Basic", "Basic dXNlcjpwYXNz", "INVALID_TOKEN"},
		{"token desconocido", "Bearer otro", "INVALID_TOKEN"},
	}
	app := buildTestApp(anaVerifier(1), 1)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doRequest(t, app, tc.header)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, tc.code, body["code"])
		})
	}
}

func TestAuthMiddleware_VerifierFailureIs500(t *testing.T) {
	v := stubVerifier{err: errors.New("conexión rechazada")}
	status, body := doRequest(t, buildTestApp(v, 1), "Bearer tok")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.NotContains(t, body["message"], "conexión")
}

func TestRequireAccessLevel(t *testing.T) {
	status, body := doRequest(t, buildTestApp(anaVerifier(2), 3), "Bearer tok")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])

	status, _ = doRequest(t, buildTestApp(anaVerifier(3), 3), "Bearer tok")
	assert.Equal(t, http.StatusOK, status)
}

func TestRequireTenant_UnknownUser(t *testing.T) {
	v := stubVerifier{token: "tok", id: &auth.Identity{Username: "bruno", AccessLevel: 3}}
	status, body := doRequest(t, buildTestApp(v, 1), "Bearer tok")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "USER_NOT_FOUND", body["code"])
}

func TestErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidCNPJ, http.StatusBadRequest, "INVALID_CNPJ"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrUsernameTaken, http.StatusConflict, "USERNAME_TAKEN"},
		{domain.ErrSeatLimitReached, http.StatusConflict, "SEAT_LIMIT_REACHED"},
		{domain.ErrNoActiveContract, http.StatusConflict, "NO_ACTIVE_CONTRACT"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{&domain.UnknownTenantError{Selector: "x"}, http.StatusInternalServerError, "TENANT_NOT_CONFIGURED"},
		{&domain.UpstreamError{Service: "join", StatusCode: 401, Message: "token"}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_405"},
	}
	for _, tc := range cases {
		app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop())})
		err := tc.err
		app.Get("/", func(*fiber.Ctx) error { return err })

		resp, rerr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, rerr)
		var body dto.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		assert.Equal(t, tc.status, resp.StatusCode, tc.code)
		assert.Equal(t, tc.code, body.Code)
	}
}
