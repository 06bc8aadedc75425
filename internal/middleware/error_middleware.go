package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanck/studentapi/internal/app/models/dto"
	"github.com/okanck/studentapi/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP outcomes. Every handler funnels
// its errors through here so nothing propagates unhandled past a request.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrCourseAlreadyExists),
		errors.Is(err, apperrors.ErrCourseHasStudents):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource conflict")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrTokenExpired):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))

	case errors.Is(err, apperrors.ErrSigningKeyMissing):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeConfiguration, "JWT signing key is not configured")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))

	default:
		// Store failures end up here; their message is passed through as-is
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
