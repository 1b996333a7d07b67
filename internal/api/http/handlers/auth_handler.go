package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrms-service/internal/api/dto"
	"github.com/spec-kit/hrms-service/internal/auth"
	"github.com/spec-kit/hrms-service/internal/domain"
	"github.com/spec-kit/hrms-service/internal/service"
	apperrors "github.com/spec-kit/hrms-service/pkg/util"
)

// AuthHandler exposes login, token lifecycle and password reset endpoints.
type AuthHandler struct {
	auth *service.AuthService
	otp  *service.OTPService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, otpService *service.OTPService) *AuthHandler {
	return &AuthHandler{auth: authService, otp: otpService}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}

	token, role, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{Token: token, Role: string(role)})
}

// Refresh handles POST /api/auth/refresh-token.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	token, err := h.auth.Refresh(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return c.JSON(dto.RefreshResponse{Token: token})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.auth.Logout(c.UserContext(), claims); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// RequestOTP handles POST /api/request-otp.
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req dto.OTPRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.UserType == "" {
		return apperrors.NewValidationError("email and userType required")
	}

	if err := h.otp.Request(c.UserContext(), req.Email, domain.AccountType(req.UserType)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "OTP sent to registered email"})
}

// VerifyOTP handles POST /api/verify-otp.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.OTPVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.OTP == "" {
		return apperrors.NewValidationError("email and otp required")
	}

	if err := h.otp.Verify(c.UserContext(), req.Email, req.OTP); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "OTP verified"})
}

// ResetPassword handles POST /api/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.NewPassword == "" || req.UserType == "" {
		return apperrors.NewValidationError("email, newPassword and userType required")
	}

	if err := h.otp.ConsumeForReset(c.UserContext(), req.Email, req.NewPassword, domain.AccountType(req.UserType)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}
