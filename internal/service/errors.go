package service

import (
	"errors"

	"github.com/noah-isme/sicei-api/internal/validation"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

var (
	// ErrStudentNotFound is returned for unknown student ids.
	ErrStudentNotFound = appErrors.Clone(appErrors.ErrNotFound, "Alumno no encontrado")
	// ErrProfessorNotFound is returned for unknown professor ids.
	ErrProfessorNotFound = appErrors.Clone(appErrors.ErrNotFound, "Profesor no encontrado")
)

// payloadError converts validation outcomes into client facing errors.
func payloadError(err error) error {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return appErrors.WithFields(fieldErrs)
	}
	var notAllowed *validation.NotAllowedError
	if errors.As(err, &notAllowed) {
		return appErrors.Clone(appErrors.ErrFieldsNotAllowed, notAllowed.Error())
	}
	return appErrors.Internal(err, "validate payload")
}
