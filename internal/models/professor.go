package models

import "github.com/noah-isme/sicei-api/internal/validation"

// Professor represents a teaching staff record.
type Professor struct {
	ID             int64   `db:"id" json:"id"`
	NumeroEmpleado *int64  `db:"numero_empleado" json:"numeroEmpleado"`
	Nombres        *string `db:"nombres" json:"nombres"`
	Apellidos      *string `db:"apellidos" json:"apellidos"`
	HorasClase     *int64  `db:"horas_clase" json:"horasClase"`
}

// SetField applies one validated value.
func (p *Professor) SetField(name string, value interface{}) {
	switch name {
	case validation.FieldNombres:
		p.Nombres = stringPtr(value)
	case validation.FieldApellidos:
		p.Apellidos = stringPtr(value)
	case validation.FieldNumeroEmpleado:
		p.NumeroEmpleado = int64Ptr(value)
	case validation.FieldHorasClase:
		p.HorasClase = int64Ptr(value)
	}
}

func int64Ptr(value interface{}) *int64 {
	if n, ok := value.(int64); ok {
		return &n
	}
	return nil
}
