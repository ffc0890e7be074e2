package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kazvocab/internal/config"
	"kazvocab/internal/dto"
	"kazvocab/internal/handler"
	"kazvocab/internal/middleware"
	"kazvocab/internal/repository/models"
	"kazvocab/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockAuthService
type MockAuthService struct {
	GetGoogleLoginURLFunc    func(state string) string
	HandleGoogleCallbackFunc func(ctx context.Context, code, receivedState, expectedState string) (string, string, *models.User, error)
	ValidateJWTFunc          func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWTFunc            func(ctx context.Context, user *models.User, ttl time.Duration, tokenType string) (string, error)
	RefreshTokenFunc         func(ctx context.Context, refreshTokenString string) (string, string, error)
	EncryptTokenFunc         func(token string) (string, error)
	DecryptTokenFunc         func(encryptedToken string) (string, error)
}

func (m *MockAuthService) GetGoogleLoginURL(state string) string {
	if m.GetGoogleLoginURLFunc != nil {
		return m.GetGoogleLoginURLFunc(state)
	}
	panic("MockAuthService.GetGoogleLoginURLFunc not implemented")
}
func (m *MockAuthService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (string, string, *models.User, error) {
	if m.HandleGoogleCallbackFunc != nil {
		return m.HandleGoogleCallbackFunc(ctx, code, receivedState, expectedState)
	}
	panic("MockAuthService.HandleGoogleCallbackFunc not implemented")
}
func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	panic("MockAuthService.ValidateJWTFunc not implemented")
}
func (m *MockAuthService) CreateJWT(ctx context.Context, user *models.User, ttl time.Duration, tokenType string) (string, error) {
	if m.CreateJWTFunc != nil {
		return m.CreateJWTFunc(ctx, user, ttl, tokenType)
	}
	panic("MockAuthService.CreateJWTFunc not implemented")
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshTokenString)
	}
	panic("MockAuthService.RefreshTokenFunc not implemented")
}
func (m *MockAuthService) EncryptToken(token string) (string, error) {
	if m.EncryptTokenFunc != nil {
		return m.EncryptTokenFunc(token)
	}
	panic("MockAuthService.EncryptTokenFunc not implemented")
}
func (m *MockAuthService) DecryptToken(encryptedToken string) (string, error) {
	if m.DecryptTokenFunc != nil {
		return m.DecryptTokenFunc(encryptedToken)
	}
	panic("MockAuthService.DecryptTokenFunc not implemented")
}

func newAuthTestApp(authService *MockAuthService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewAuthHandler(authService, &config.Config{})
	app.Get("/auth/google/login", h.GoogleLogin)
	app.Get("/auth/google/callback", h.GoogleCallback)
	app.Post("/auth/refresh", h.RefreshToken)
	app.Post("/auth/logout", h.Logout)
	return app
}

func TestGoogleLoginRedirects(t *testing.T) {
	authService := &MockAuthService{
		GetGoogleLoginURLFunc: func(state string) string {
			assert.NotEmpty(t, state)
			return "https://accounts.google.com/o/oauth2/auth?state=" + state
		},
	}
	app := newAuthTestApp(authService)

	req := httptest.NewRequest("GET", "/auth/google/login", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusTemporaryRedirect, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "accounts.google.com")

	var stateCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "oauthstate" {
			stateCookie = cookie
		}
	}
	require.NotNil(t, stateCookie, "state cookie should be set")
	assert.NotEmpty(t, stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)
}

func TestGoogleCallbackMissingCode(t *testing.T) {
	app := newAuthTestApp(&MockAuthService{})

	req := httptest.NewRequest("GET", "/auth/google/callback?state=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_CODE")
}

func TestGoogleCallbackStateMismatch(t *testing.T) {
	app := newAuthTestApp(&MockAuthService{})

	req := httptest.NewRequest("GET", "/auth/google/callback?code=authcode&state=tampered", nil)
	req.AddCookie(&http.Cookie{Name: "oauthstate", Value: "expected"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_STATE")
}

func TestGoogleCallbackIssuesTokens(t *testing.T) {
	authService := &MockAuthService{
		HandleGoogleCallbackFunc: func(ctx context.Context, code, receivedState, expectedState string) (string, string, *models.User, error) {
			assert.Equal(t, "authcode", code)
			assert.Equal(t, "state123", receivedState)
			return "access-jwt", "refresh-jwt", &models.User{ID: "user1", Email: "user1@example.com"}, nil
		},
	}
	app := newAuthTestApp(authService)

	req := httptest.NewRequest("GET", "/auth/google/callback?code=authcode&state=state123", nil)
	req.AddCookie(&http.Cookie{Name: "oauthstate", Value: "state123"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var tokens dto.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tokens))
	assert.Equal(t, "access-jwt", tokens.AccessToken)
	assert.Equal(t, "refresh-jwt", tokens.RefreshToken)
}

func TestGoogleCallbackExchangeFailure(t *testing.T) {
	authService := &MockAuthService{
		HandleGoogleCallbackFunc: func(ctx context.Context, code, receivedState, expectedState string) (string, string, *models.User, error) {
			return "", "", nil, service.ErrFailedToExchangeToken
		},
	}
	app := newAuthTestApp(authService)

	req := httptest.NewRequest("GET", "/auth/google/callback?code=authcode&state=state123", nil)
	req.AddCookie(&http.Cookie{Name: "oauthstate", Value: "state123"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRefreshTokenEndpoint(t *testing.T) {
	authService := &MockAuthService{
		RefreshTokenFunc: func(ctx context.Context, refreshTokenString string) (string, string, error) {
			assert.Equal(t, "old-refresh", refreshTokenString)
			return "new-access", "new-refresh", nil
		},
	}
	app := newAuthTestApp(authService)

	payload, _ := json.Marshal(dto.RefreshTokenRequest{RefreshToken: "old-refresh"})
	req := httptest.NewRequest("POST", "/auth/refresh", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var tokens dto.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tokens))
	assert.Equal(t, "new-access", tokens.AccessToken)
}

func TestRefreshTokenEndpointMissingToken(t *testing.T) {
	app := newAuthTestApp(&MockAuthService{})

	payload, _ := json.Marshal(dto.RefreshTokenRequest{})
	req := httptest.NewRequest("POST", "/auth/refresh", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRefreshTokenEndpointInvalidToken(t *testing.T) {
	authService := &MockAuthService{
		RefreshTokenFunc: func(ctx context.Context, refreshTokenString string) (string, string, error) {
			return "", "", errors.New("token expired")
		},
	}
	app := newAuthTestApp(authService)

	payload, _ := json.Marshal(dto.RefreshTokenRequest{RefreshToken: "stale"})
	req := httptest.NewRequest("POST", "/auth/refresh", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	app := newAuthTestApp(&MockAuthService{})

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Logout successful")
}
