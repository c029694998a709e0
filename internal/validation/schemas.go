package validation

// Field names shared by the JSON contract and the schemas.
const (
	FieldNombres        = "nombres"
	FieldApellidos      = "apellidos"
	FieldMatricula      = "matricula"
	FieldPromedio       = "promedio"
	FieldPassword       = "password"
	FieldNumeroEmpleado = "numeroEmpleado"
	FieldHorasClase     = "horasClase"
)

// Client facing rejection messages.
const (
	MsgNombre         = "Nombre inválido."
	MsgApellido       = "Apellido inválido."
	MsgMatricula      = "Matrícula inválida."
	MsgPromedio       = "Promedio inválido."
	MsgPassword       = "Contraseña inválida."
	MsgNumeroEmpleado = "Número de empleado inválido."
	MsgHorasClase     = "Horas de clase inválidas."
)

var (
	// StudentSchema validates student payloads.
	StudentSchema = NewSchema(
		Rule{Field: FieldNombres, Message: MsgNombre, Check: wrapString(PersonalName)},
		Rule{Field: FieldApellidos, Message: MsgApellido, Check: wrapString(PersonalName)},
		Rule{Field: FieldMatricula, Message: MsgMatricula, Check: wrapString(RegistrationCode)},
		Rule{Field: FieldPromedio, Message: MsgPromedio, Check: wrapFloat(GradeAverage)},
		Rule{Field: FieldPassword, Message: MsgPassword, Check: wrapString(Credential)},
	)

	// ProfessorSchema validates professor payloads.
	ProfessorSchema = NewSchema(
		Rule{Field: FieldNumeroEmpleado, Message: MsgNumeroEmpleado, Check: wrapInt(Identifier)},
		Rule{Field: FieldNombres, Message: MsgNombre, Check: wrapString(PersonalName)},
		Rule{Field: FieldApellidos, Message: MsgApellido, Check: wrapString(PersonalName)},
		Rule{Field: FieldHorasClase, Message: MsgHorasClase, Check: wrapInt(HoursCount)},
	)

	// StudentUpdateFields is the PUT whitelist for students.
	StudentUpdateFields = NewFieldSet(IDField, FieldNombres, FieldApellidos, FieldMatricula, FieldPromedio)

	// ProfessorUpdateFields is the PUT whitelist for professors.
	ProfessorUpdateFields = NewFieldSet(IDField, FieldNombres, FieldApellidos, FieldNumeroEmpleado, FieldHorasClase)
)

func wrapString(fn func(Value) (string, bool)) func(Value) (interface{}, bool) {
	return func(v Value) (interface{}, bool) { return fn(v) }
}

func wrapFloat(fn func(Value) (float64, bool)) func(Value) (interface{}, bool) {
	return func(v Value) (interface{}, bool) { return fn(v) }
}

func wrapInt(fn func(Value) (int64, bool)) func(Value) (interface{}, bool) {
	return func(v Value) (interface{}, bool) { return fn(v) }
}
