// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okanck/studentapi/internal/app/models/dto"
	"github.com/okanck/studentapi/internal/middleware"
	"github.com/okanck/studentapi/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(jwtService *auth.JWTService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		jwtService: jwtService,
		logger:     logger,
	}
}

// CreateToken issues a JWT bearer token
// @Summary Issue an access token
// @Description Issues a signed bearer token for the given credentials. Demo-only: any non-blank username/password pair is accepted.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Missing username or password"
// @Failure 500 {object} dto.ErrorResponse "Signing key not configured"
// @Router /auth/token [post]
func (c *AuthController) CreateToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid token request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username and password are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Demo-only: accept any non-blank username/password. Replace with real validation.
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username and password are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, expiresAt, err := c.jwtService.GenerateToken(req.Username)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to issue token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", req.Username).Time("expiresAt", expiresAt).Msg("Token issued")

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		Token:        token,
		ExpiresAtUtc: expiresAt.UTC(),
	})
}
