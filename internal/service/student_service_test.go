package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/validation"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

type mockStudentRepo struct {
	items     map[int64]*models.Student
	nextID    int64
	updates   int
	listErr   error
	createErr error
}

func newMockStudentRepo(students ...models.Student) *mockStudentRepo {
	m := &mockStudentRepo{items: map[int64]*models.Student{}, nextID: 1}
	for i := range students {
		s := students[i]
		m.items[s.ID] = &s
		if s.ID >= m.nextID {
			m.nextID = s.ID + 1
		}
	}
	return m
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Student
	for _, s := range m.items {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	student.ID = m.nextID
	m.nextID++
	cp := *student
	m.items[student.ID] = &cp
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if _, ok := m.items[student.ID]; !ok {
		return sql.ErrNoRows
	}
	m.updates++
	cp := *student
	m.items[student.ID] = &cp
	return nil
}

func (m *mockStudentRepo) UpdatePhotoURL(ctx context.Context, id int64, url string) error {
	s, ok := m.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	s.FotoPerfilURL = &url
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func payload(t *testing.T, body string) validation.Payload {
	t.Helper()
	p, err := validation.DecodePayload(strings.NewReader(body))
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }

func TestStudentServiceCreate(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil)

	student, err := svc.Create(context.Background(), payload(t, `{"id":50,"nombres":"Ana","apellidos":"Lopez","matricula":"A123","promedio":95}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.ID)
	assert.Equal(t, "Ana", *student.Nombres)
	assert.Equal(t, 95.0, *student.Promedio)
	assert.Nil(t, student.FotoPerfilURL)
	assert.Nil(t, student.PasswordHash)

	stored, err := svc.Get(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, student, stored)
}

func TestStudentServiceCreateHashesPassword(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, nil)

	student, err := svc.Create(context.Background(), payload(t, `{"nombres":"Ana","password":"s3cret"}`))
	require.NoError(t, err)
	require.NotNil(t, student.PasswordHash)
	assert.NotEqual(t, "s3cret", *student.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*student.PasswordHash), []byte("s3cret")))
}

func TestStudentServiceCreateValidation(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil)

	_, err := svc.Create(context.Background(), payload(t, `{"nombres":"Ana1","promedio":101}`))
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, map[string]string{"nombres": validation.MsgNombre, "promedio": validation.MsgPromedio}, appErr.Fields)

	_, err = svc.Create(context.Background(), payload(t, `{"nombres":"Ana","edad":20}`))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Campos no permitidos: edad", appErr.Message)
	assert.Empty(t, appErr.Fields)

	long := strings.Repeat("a", 73)
	_, err = svc.Create(context.Background(), payload(t, `{"nombres":"Ana","password":"`+long+`"}`))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, map[string]string{"password": validation.MsgPassword}, appErr.Fields)
}

func TestStudentServiceUpdate(t *testing.T) {
	repo := newMockStudentRepo(models.Student{ID: 3, Nombres: strPtr("Ana"), Matricula: strPtr("A1")})
	svc := NewStudentService(repo, nil)

	updated, err := svc.Update(context.Background(), 3, payload(t, `{"id":99,"promedio":"88.5"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
	assert.Equal(t, 88.5, *updated.Promedio)
	assert.Equal(t, "Ana", *updated.Nombres)
	assert.Equal(t, "A1", *repo.items[3].Matricula)
}

func TestStudentServiceUpdateRejectedLeavesRecordUnchanged(t *testing.T) {
	repo := newMockStudentRepo(models.Student{ID: 3, Nombres: strPtr("Ana")})
	svc := NewStudentService(repo, nil)

	_, err := svc.Update(context.Background(), 3, payload(t, `{"promedio":150,"nombres":"Eva"}`))
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]string{"promedio": validation.MsgPromedio}, appErr.Fields)
	assert.Equal(t, "Ana", *repo.items[3].Nombres)
	assert.Zero(t, repo.updates)
}

func TestStudentServiceUpdateOrdering(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil)

	_, err := svc.Update(context.Background(), 999, payload(t, `{"promedio":150}`))
	assert.True(t, appErrors.IsStatus(err, http.StatusBadRequest))

	_, err = svc.Update(context.Background(), 999, payload(t, `{"promedio":50}`))
	assert.Equal(t, ErrStudentNotFound, err)
}

func TestStudentServiceDeleteThenGet(t *testing.T) {
	repo := newMockStudentRepo(models.Student{ID: 1})
	svc := NewStudentService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	_, err := svc.Get(context.Background(), 1)
	assert.Equal(t, ErrStudentNotFound, err)
	assert.Equal(t, ErrStudentNotFound, svc.Delete(context.Background(), 1))
}

func TestStudentServiceListNeverNil(t *testing.T) {
	svc := NewStudentService(newMockStudentRepo(), nil)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStudentServiceInternalErrorsAreGeneric(t *testing.T) {
	repo := newMockStudentRepo()
	repo.listErr = errors.New("pq: password authentication failed")
	svc := NewStudentService(repo, nil)

	_, err := svc.List(context.Background())
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, appErrors.ErrInternal.Message, appErr.Message)
}
