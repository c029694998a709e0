package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sicei-api/internal/validation"
)

func TestStudentJSONNeverEchoesPassword(t *testing.T) {
	hash := "$2a$10$hash"
	nombres := "Ana"
	s := Student{ID: 3, Nombres: &nombres, PasswordHash: &hash}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"nombres":"Ana","apellidos":null,"matricula":null,"promedio":null,"fotoPerfilUrl":null,"password":null}`, string(data))

	data, err = json.Marshal([]Student{s})
	require.NoError(t, err)
	assert.NotContains(t, string(data), hash)
}

func TestStudentSetField(t *testing.T) {
	s := &Student{}
	s.SetField(validation.FieldNombres, "Ana")
	s.SetField(validation.FieldApellidos, "Lopez")
	s.SetField(validation.FieldPromedio, 91.5)
	s.SetField("unknown", "ignored")

	require.NotNil(t, s.Promedio)
	assert.Equal(t, 91.5, *s.Promedio)
	assert.Equal(t, "Ana Lopez", s.FullName())
	assert.Nil(t, s.Matricula)
}

func TestProfessorSetField(t *testing.T) {
	p := &Professor{}
	p.SetField(validation.FieldNumeroEmpleado, int64(77))
	p.SetField(validation.FieldHorasClase, int64(20))

	require.NotNil(t, p.NumeroEmpleado)
	assert.Equal(t, int64(77), *p.NumeroEmpleado)
	assert.Equal(t, int64(20), *p.HorasClase)
}
