package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// AuthController handles login for admins and teachers
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// LoginAdmin handles admin login
// @Summary Admin login
// @Description Authenticates an admin and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Invalid email or invalid password"
// @Router /admins/login [post]
func (c *AuthController) LoginAdmin(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.authService.LoginAdmin(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Debug().Str("email", req.Email).Err(err).Msg("Admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Login successful", token)
}

// LoginTeacher handles teacher login
// @Summary Teacher login
// @Description Authenticates a teacher and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Invalid email or invalid password"
// @Router /teachers/login [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, err := c.authService.LoginTeacher(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Debug().Str("email", req.Email).Err(err).Msg("Teacher login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.RespondJSON(ctx, http.StatusOK, "Login successful", token)
}
