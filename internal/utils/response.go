package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessEnvelope always carries a data member, even when it is an empty
// object (an absent profile reads back as {}).
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorEnvelope is the uniform failure shape:
// {"success": false, "code": ..., "message": ...}.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string, details interface{}) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Details: details}
}

// RespondError maps an error to the failure envelope. Anything that is not
// an *AppError is reported as a generic internal error so that downstream
// failure text never reaches the client.
func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Success: false,
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
		return
	}

	c.JSON(appErr.Status, ErrorEnvelope{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func RespondValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Success: false,
		Code:    "VALIDATION_ERROR",
		Message: "invalid request",
		Details: details,
	})
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, SuccessEnvelope{Success: true, Data: payload})
}
