package user

import (
	"net/http"

	"tradejournal/internal/api"
	"tradejournal/internal/backend"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Register godoc
// @Summary      Register new user
// @Description  Creates the account on the backend and opens a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      backend.RegisterRequest  true  "User registration data"
// @Success      201      {object}  backend.AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req backend.RegisterRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Login user
// @Description  Authenticates by email and password and opens a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      backend.LoginRequest  true  "User credentials"
// @Success      200      {object}  backend.AuthResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req backend.LoginRequest
	if !api.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the session even when the backend call fails.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

// @Summary      Request a password reset OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body backend.EmailRequest true "Account email"
// @Success      200 {object} api.MessageResponse
// @Router       /auth/forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req backend.EmailRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	if err := h.service.RequestResetOTP(c.Request.Context(), req); err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "OTP sent to your email"})
}

// @Summary      Verify a password reset OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body backend.VerifyOTPRequest true "Email and OTP"
// @Success      200 {object} api.MessageResponse
// @Router       /auth/verify-otp [post]
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req backend.VerifyOTPRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	if err := h.service.VerifyResetOTP(c.Request.Context(), req); err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "OTP verified"})
}

// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body backend.ResetPasswordRequest true "Email, OTP and new password"
// @Success      200 {object} api.MessageResponse
// @Router       /auth/reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	var req backend.ResetPasswordRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password has been reset"})
}

// @Summary      Verify email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body backend.VerifyEmailRequest true "Email and code"
// @Success      200 {object} api.MessageResponse
// @Router       /auth/verify-email [post]
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req backend.VerifyEmailRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	if err := h.service.VerifyEmail(c.Request.Context(), req); err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Email verified"})
}

// @Summary      Resend the verification email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body backend.EmailRequest true "Account email"
// @Success      200 {object} api.MessageResponse
// @Router       /auth/resend-verification [post]
func (h *Handler) ResendVerification(c *gin.Context) {
	var req backend.EmailRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	if err := h.service.ResendVerification(c.Request.Context(), req); err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Verification email sent"})
}

// GetProfile godoc
// @Summary      Get current user
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  api.ErrorResponse
// @Router       /profile-settings [get]
func (h *Handler) GetProfile(c *gin.Context) {
	u, err := h.service.Profile(c.Request.Context())
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update profile
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body backend.UpdateProfileRequest true "Profile fields"
// @Success      200 {object} models.User
// @Failure      400 {object} api.ErrorResponse
// @Router       /profile-settings [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req backend.UpdateProfileRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	u, err := h.service.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Change password
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body backend.ChangePasswordRequest true "Current and new password"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /profile-settings/password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req backend.ChangePasswordRequest
	if !api.BindAndValidate(c, &req) {
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), req); err != nil {
		api.RespondBackendError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password updated"})
}
