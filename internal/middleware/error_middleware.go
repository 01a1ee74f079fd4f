package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusspace/backend/internal/app/models/dto"
	"github.com/campusspace/backend/internal/pkg/apperrors"
)

// HandleAPIError is the uniform catch boundary: it converts any error coming
// out of a service, expected or not, into the error envelope. Unknown errors
// collapse to 500 without leaking internals; in non-release mode the original
// error text is attached as debug info.
func HandleAPIError(c *gin.Context, err error) {
	statusCode, errorDetail := classifyError(err)

	if gin.Mode() != gin.ReleaseMode {
		errorDetail = errorDetail.WithDebugInfo("%v", err)
	}

	c.JSON(statusCode, dto.NewErrorResponse(statusCode, errorDetail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	// A CustomError carries a caller-facing message for its underlying
	// sentinel.
	message := func(fallback string) string {
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message("User not verified"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, message("User not authorized"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("All fields are required"))
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, message("Invalid password"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message("Invalid token"))
	// Duplicate email renders as a plain 400, matching the rest of the
	// bad-input family.
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("User with this email already exists"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("User not found"))
	case errors.Is(err, apperrors.ErrNoAbsencesFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("No absent teachers found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrAbsencesNotAdded):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Teachers absent not added"))
	case errors.Is(err, apperrors.ErrAbsenceTeacherLoad):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Teachers details were not fetched"))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Bad request"))
	case errors.Is(err, apperrors.ErrTokenGeneration):
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, message("Something went wrong, while generating access token"))
	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
