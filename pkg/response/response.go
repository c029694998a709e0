package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

// ErrorBody is the single-message error contract.
type ErrorBody struct {
	Error string `json:"error"`
}

// FieldErrorsBody is the per-field validation error contract.
type FieldErrorsBody struct {
	Errors map[string]string `json:"errors"`
}

// MessageBody confirms operations that return no record.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON sends the payload as-is. Records and lists are never wrapped.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds with HTTP 200 and a confirmation message.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, MessageBody{Message: message})
}

// Error converts err to the common structure. Wrapped causes are attached to the
// gin context for logging and never leave the process.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	if len(appErr.Fields) > 0 {
		JSON(c, appErr.Status, FieldErrorsBody{Errors: appErr.Fields})
		return
	}
	JSON(c, appErr.Status, ErrorBody{Error: appErr.Message})
}
