package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krmu/admissions/internal/app/models/dto"
	"github.com/krmu/admissions/internal/pkg/apperrors"
	"github.com/krmu/admissions/internal/pkg/logger"
)

// statusCodeFor maps an application error to its HTTP status code
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrPhoneAlreadyExists),
		errors.Is(err, apperrors.ErrStudentEmailExists),
		errors.Is(err, apperrors.ErrNoCounsellors),
		errors.Is(err, apperrors.ErrInvalidStudentPatch),
		errors.Is(err, apperrors.ErrMalformedStudentID):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageFor picks the client-facing message for an error. Unexpected
// errors get a generic message; their details stay in the server log.
func messageFor(err error, statusCode int) string {
	if statusCode == http.StatusInternalServerError {
		return "Something went very wrong!"
	}

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentEmailExists):
		return "Email already exists"
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		return "Username already exists"
	case errors.Is(err, apperrors.ErrPhoneAlreadyExists):
		return "Phone number already exists"
	case errors.Is(err, apperrors.ErrNoCounsellors):
		return "No counsellors available"
	case errors.Is(err, apperrors.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return "No student found with that ID"
	default:
		return err.Error()
	}
}

// HandleAPIError translates an application error into the JSON error
// envelope and aborts the request.
func HandleAPIError(c *gin.Context, err error) {
	statusCode := statusCodeFor(err)

	if statusCode == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
	}

	c.AbortWithStatusJSON(statusCode, dto.NewErrorResponse(statusCode, messageFor(err, statusCode)))
}
