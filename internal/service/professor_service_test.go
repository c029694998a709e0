package service

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/validation"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

type mockProfessorRepo struct {
	items  map[int64]*models.Professor
	nextID int64
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{items: map[int64]*models.Professor{}, nextID: 1}
}

func (m *mockProfessorRepo) List(ctx context.Context) ([]models.Professor, error) {
	var out []models.Professor
	for _, p := range m.items {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProfessorRepo) FindByID(ctx context.Context, id int64) (*models.Professor, error) {
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockProfessorRepo) Create(ctx context.Context, professor *models.Professor) error {
	professor.ID = m.nextID
	m.nextID++
	cp := *professor
	m.items[professor.ID] = &cp
	return nil
}

func (m *mockProfessorRepo) Update(ctx context.Context, professor *models.Professor) error {
	if _, ok := m.items[professor.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *professor
	m.items[professor.ID] = &cp
	return nil
}

func (m *mockProfessorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func TestProfessorServiceLifecycle(t *testing.T) {
	repo := newMockProfessorRepo()
	svc := NewProfessorService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, payload(t, `{"numeroEmpleado":1001,"nombres":"Luis","apellidos":"Mora","horasClase":20}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1001), *created.NumeroEmpleado)

	updated, err := svc.Update(ctx, created.ID, payload(t, `{"horasClase":"25"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(25), *updated.HorasClase)
	assert.Equal(t, "Luis", *updated.Nombres)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, ErrProfessorNotFound, err)
}

func TestProfessorServiceUpdateRejectsUnknownField(t *testing.T) {
	repo := newMockProfessorRepo()
	svc := NewProfessorService(repo, nil)
	created, err := svc.Create(context.Background(), payload(t, `{"nombres":"Luis"}`))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, payload(t, `{"salary":1000}`))
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Campos no permitidos: salary", appErr.Message)
}

func TestProfessorServiceCreateValidation(t *testing.T) {
	svc := NewProfessorService(newMockProfessorRepo(), nil)

	_, err := svc.Create(context.Background(), payload(t, `{"numeroEmpleado":0,"horasClase":1.5}`))
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]string{
		validation.FieldNumeroEmpleado: validation.MsgNumeroEmpleado,
		validation.FieldHorasClase:     validation.MsgHorasClase,
	}, appErr.Fields)
}
