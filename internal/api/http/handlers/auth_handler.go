package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// AuthHandler exposes authentication and profile endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "user registered successfully",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user":    user.Public(),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user":    user.Public(),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"user": user.Public()})
}

// Refresh handles POST /api/auth/refresh-token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	token, exp, err := h.auth.Refresh(user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "token refreshed successfully",
		"token":   token,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		"user":    user.Public(),
	})
}

// GetProfile handles GET /api/auth/profile/:id (public).
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.auth.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(user.Public())
}

// UpdateProfile handles PUT /api/auth/profile/:id.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.UpdateProfile(c.Context(), actor, userID, service.UpdateProfileInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Bio:            req.Bio,
		Skills:         req.Skills,
		Education:      req.Education,
		Experience:     req.Experience,
		ResumeURL:      req.ResumeURL,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "profile updated successfully",
		"user":    user.Public(),
	})
}

// ChangePassword handles PUT /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.ChangePassword(c.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "password changed successfully"})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.Logout(c.Context(), user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logout successful"})
}
