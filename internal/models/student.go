package models

import (
	"encoding/json"

	"github.com/noah-isme/sicei-api/internal/validation"
)

// Student represents an enrolled learner. Every attribute except ID is nullable.
type Student struct {
	ID            int64    `db:"id" json:"id"`
	Nombres       *string  `db:"nombres" json:"nombres"`
	Apellidos     *string  `db:"apellidos" json:"apellidos"`
	Matricula     *string  `db:"matricula" json:"matricula"`
	Promedio      *float64 `db:"promedio" json:"promedio"`
	FotoPerfilURL *string  `db:"foto_perfil_url" json:"fotoPerfilUrl"`
	PasswordHash  *string  `db:"password" json:"-"`
}

// MarshalJSON keeps the password key in the contract but never its value.
func (s Student) MarshalJSON() ([]byte, error) {
	type view Student
	return json.Marshal(struct {
		view
		Password *string `json:"password"`
	}{view: view(s)})
}

// SetField applies one validated value. The password field expects a bcrypt hash.
func (s *Student) SetField(name string, value interface{}) {
	switch name {
	case validation.FieldNombres:
		s.Nombres = stringPtr(value)
	case validation.FieldApellidos:
		s.Apellidos = stringPtr(value)
	case validation.FieldMatricula:
		s.Matricula = stringPtr(value)
	case validation.FieldPromedio:
		if f, ok := value.(float64); ok {
			s.Promedio = &f
		}
	case validation.FieldPassword:
		s.PasswordHash = stringPtr(value)
	}
}

// FullName joins the available name parts.
func (s *Student) FullName() string {
	switch {
	case s.Nombres != nil && s.Apellidos != nil:
		return *s.Nombres + " " + *s.Apellidos
	case s.Nombres != nil:
		return *s.Nombres
	case s.Apellidos != nil:
		return *s.Apellidos
	default:
		return ""
	}
}

func stringPtr(value interface{}) *string {
	if s, ok := value.(string); ok {
		return &s
	}
	return nil
}
