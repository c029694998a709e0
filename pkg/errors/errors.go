package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios. Messages are client facing.
var (
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "Recurso no encontrado")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "Payload inválido.")
	ErrFieldsNotAllowed   = New("FIELDS_NOT_ALLOWED", http.StatusBadRequest, "Campos no permitidos")
	ErrMalformedJSON      = New("MALFORMED_JSON", http.StatusBadRequest, "JSON inválido.")
	ErrMissingKey         = New("MISSING_KEY", http.StatusBadRequest, "Clave no encontrada en el payload.")
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusBadRequest, "Contraseña incorrecta.")
	ErrInvalidSession     = New("INVALID_SESSION", http.StatusBadRequest, "Sesión inválida.")
	ErrMethodNotAllowed   = New("METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed, "Método no permitido")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "Error interno del servidor.")
	ErrUnavailable        = New("SERVICE_UNAVAILABLE", http.StatusServiceUnavailable, "Servicio no disponible.")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithFields returns a validation error carrying a per-field message map.
func WithFields(fields map[string]string) *Error {
	clone := Clone(ErrValidation, "")
	clone.Fields = make(map[string]string, len(fields))
	for k, v := range fields {
		clone.Fields[k] = v
	}
	return clone
}

// Internal wraps err as a generic server error with a log-only context message.
func Internal(err error, context string) *Error {
	return Wrap(fmt.Errorf("%s: %w", context, err), ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// IsStatus reports whether err resolves to an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}
