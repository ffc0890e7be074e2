package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleUserInfo holds user information obtained from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// TokenResponse represents the response containing access and refresh tokens.
// @Description Response body for authentication tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest represents the request body for refreshing a token.
// @Description Request body for refreshing JWT tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// Pagination defines parameters for paginated requests.
// These are typically query parameters.
type Pagination struct {
	Limit  int `query:"limit"`  // Number of items per page
	Offset int `query:"offset"` // Number of items to skip
	Page   int `query:"page"`   // Page number (alternative to offset)
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// AttemptItem represents one completed quiz session in a user's history.
type AttemptItem struct {
	ID              string    `json:"id"`
	SourceTier      string    `json:"source_tier"`
	Correct         int       `json:"correct"`
	Total           int       `json:"total"`
	AccuracyPercent int       `json:"accuracy_percent"`
	AttemptedAt     time.Time `json:"attempted_at"`
}

// AttemptListResponse defines the structure for a user's attempt history.
type AttemptListResponse struct {
	Attempts       []AttemptItem  `json:"attempts"`
	PaginationInfo PaginationInfo `json:"pagination_info"`
}

// UserStatsResponse summarizes a user's performance per selection tier.
type UserStatsResponse struct {
	TierAccuracy  map[string]float64 `json:"tier_accuracy"`
	TotalAttempts int                `json:"total_attempts"`
}

// AuthenticatedUser is attached to the request context after JWT validation.
type AuthenticatedUser struct {
	ID    string
	Email string
}
