package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func newTestApp(handler fiber.Handler, middleware ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	handlers := append(middleware, handler)
	app.Get("/", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, auth string) (int, ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestErrorHandlerMapsErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"app error", NewNotFoundError("Chat session not found"), 404, "Chat session not found"},
		{"wrapped app error", errors.Join(NewBadRequestError("bad"), errors.New("x")), 400, "bad"},
		{"validation error", ValidateRequest(sampleRequest{Email: "nope"}), 400, "Validation failed"},
		{"fiber error", fiber.ErrMethodNotAllowed, 405, "Method Not Allowed"},
		{"internal error", NewInternalError("Failed to add product. Please try again.", errors.New("db down")), 500, "Failed to add product. Please try again."},
		{"unknown error", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(*fiber.Ctx) error { return tt.err })
			code, body := doRequest(t, app, "")
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.False(t, body.Success)
		})
	}
}

func TestValidationErrorsListFields(t *testing.T) {
	err := ValidateRequest(sampleRequest{Email: "nope"})
	resp := toErrorResponse(err)
	fields, ok := resp.Errors.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "Name")
	assert.Contains(t, fields, "Email")

	assert.NoError(t, ValidateRequest(sampleRequest{Name: "a", Email: "a@b.co"}))
}

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAdminMiddleware(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app := newTestApp(ok, AdminMiddleware("secret"))

	tests := []struct {
		name     string
		auth     string
		wantCode int
	}{
		{"missing header", "", 401},
		{"garbage token", "Bearer abc", 401},
		{"wrong secret", "Bearer " + signToken(t, "other", RoleAdmin), 401},
		{"wrong role", "Bearer " + signToken(t, "secret", "visitor"), 401},
		{"admin token", "Bearer " + signToken(t, "secret", RoleAdmin), 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := doRequest(t, app, tt.auth)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
