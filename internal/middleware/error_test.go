package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"kazvocab/internal/domain"
	"kazvocab/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestApp(routeErr error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return routeErr
	})
	return app
}

func fireRequest(t *testing.T, app *fiber.App) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("GET", "/boom", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestErrorHandlerDomainErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *domain.DomainError
		wantStatus int
	}{
		{"session not found", domain.NewSessionNotFoundError("01HX4QJT8ZKWV3N2P5R6S7T8V9"), fiber.StatusNotFound},
		{"insufficient words", domain.NewInsufficientWordsError(2, 4), fiber.StatusUnprocessableEntity},
		{"duplicate answer", domain.NewDuplicateAnswerError(7), fiber.StatusConflict},
		{"invalid answer index", domain.NewInvalidAnswerIndexError(9, 4), fiber.StatusBadRequest},
		{"unauthorized", domain.NewUnauthorizedError("session belongs to another user"), fiber.StatusUnauthorized},
		{"hint service", domain.NewHintServiceError(errors.New("ollama unreachable")), fiber.StatusServiceUnavailable},
		{"internal", domain.NewError(domain.CodeInternal, "boom", nil), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorTestApp(tt.err)
			status, body := fireRequest(t, app)

			assert.Equal(t, tt.wantStatus, status)
			var resp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, string(tt.err.Code), resp.Code)
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}

func TestErrorHandlerValidationErrors(t *testing.T) {
	errs := domain.ValidationErrors{
		{Field: "count", Message: "must be between 1 and 50"},
		{Field: "tier", Message: "unknown tier"},
	}
	app := newErrorTestApp(errs)

	status, body := fireRequest(t, app)

	assert.Equal(t, fiber.StatusBadRequest, status)
	var resp middleware.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, string(domain.CodeValidation), resp.Code)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "count", resp.Errors[0].Field)
}

func TestErrorHandlerFiberError(t *testing.T) {
	app := newErrorTestApp(fiber.NewError(fiber.StatusBadRequest, "invalid request body"))

	status, body := fireRequest(t, app)

	assert.Equal(t, fiber.StatusBadRequest, status)
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "HTTP_ERROR", resp.Code)
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := newErrorTestApp(errors.New("something odd"))

	status, body := fireRequest(t, app)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, string(domain.CodeInternal), resp.Code)
	assert.Equal(t, "Internal server error", resp.Message)
}
