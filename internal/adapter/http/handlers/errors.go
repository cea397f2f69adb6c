package handlers

import (
	"errors"
	"net/http"

	request "estimaflow/internal/adapter/http/dto/request"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase"
	"estimaflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Request body is not valid JSON", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

// writeError renders appErr and logs server-side failures with their cause.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error().Err(appErr.Err).Str("code", appErr.Code).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func queryError(err error) *pkg.AppError {
	if errors.Is(err, request.ErrInvalidQuery) {
		return errInvalidQuery.WithDetails(err.Error())
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func validationError(code, message string, err error) (*pkg.AppError, bool) {
	var verr *usecase.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	return pkg.NewDomainError(code, message, err, http.StatusUnprocessableEntity).WithDetails(verr.Problems...), true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapEstimationError(err error) *pkg.AppError {
	if appErr, ok := validationError("INVALID_ESTIMATION", "Estimation is not valid", err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid estimation id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapProjectError(err error) *pkg.AppError {
	if appErr, ok := validationError("INVALID_PROJECT", "Project is not valid", err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid project id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapAuthError(err error) *pkg.AppError {
	if appErr, ok := validationError("INVALID_REGISTRATION", "Registration is not valid", err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.ErrUnauthorized
	default:
		return internalError(err)
	}
}
