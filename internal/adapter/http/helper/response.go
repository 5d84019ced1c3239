package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	resp := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		resp.Message = message[0]
	}

	c.JSON(statusCode, resp)
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	SendError(c, http.StatusBadRequest, "BAD_REQUEST", fieldErrors(field, message))
}

func SendUnauthorizedError(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", fieldErrors("auth", message))
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", fieldErrors("server", message), details...)
}

// SendDomainError maps a domain failure kind onto its transport status.
// Anything the domain did not classify is a 500.
func SendDomainError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", fieldErrors("request", err.Error()))
	case domain.KindUnauthorized:
		SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", fieldErrors("auth", err.Error()))
	case domain.KindForbidden:
		SendError(c, http.StatusForbidden, "FORBIDDEN", fieldErrors("resource", err.Error()))
	case domain.KindNotFound:
		SendError(c, http.StatusNotFound, "NOT_FOUND", fieldErrors("resource", err.Error()))
	case domain.KindConflict:
		SendError(c, http.StatusConflict, "CONFLICT", fieldErrors("resource", err.Error()))
	default:
		SendInternalError(c, "internal server error")
	}
}

func fieldErrors(field, message string) []response.ValidationError {
	return []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}
}
