package handler

import (
	"kazvocab/internal/dto"
	"kazvocab/internal/middleware"
	"kazvocab/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles endpoints about the authenticated user.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMyProfile godoc
// @Summary Get my profile
// @Description Returns the authenticated user's profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	resp, err := h.userService.GetUserProfile(c.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMyAttempts godoc
// @Summary Get my quiz history
// @Description Returns a page of the authenticated user's completed quiz sessions
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} dto.AttemptListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me/attempts [get]
func (h *UserHandler) GetMyAttempts(c *fiber.Ctx) error {
	var pagination dto.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}

	resp, err := h.userService.GetUserAttempts(c.Context(), middleware.UserIDFromContext(c), pagination)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMyStats godoc
// @Summary Get my statistics
// @Description Returns per-tier accuracy and total attempt count
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserStatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /users/me/stats [get]
func (h *UserHandler) GetMyStats(c *fiber.Ctx) error {
	resp, err := h.userService.GetUserStats(c.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
