package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sicei-api/internal/models"
)

type recordingObserver struct {
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "postgres"), mock, func() { db.Close() }
}

func strPtr(s string) *string { return &s }

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	observer := &recordingObserver{}
	repo := NewStudentRepository(db, observer)

	rows := sqlmock.NewRows([]string{"id", "nombres", "apellidos", "matricula", "promedio", "foto_perfil_url", "password"}).
		AddRow(1, "Ana", "Lopez", "A123", 95.0, nil, nil).
		AddRow(2, nil, nil, nil, nil, nil, "$2a$hash")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, nombres, apellidos, matricula, promedio, foto_perfil_url, password FROM students ORDER BY id")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", *list[0].Nombres)
	assert.Equal(t, 95.0, *list[0].Promedio)
	assert.Nil(t, list[1].Nombres)
	assert.Equal(t, "$2a$hash", *list[1].PasswordHash)
	assert.Equal(t, []string{"students.list"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectQuery("SELECT .* FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombres", "apellidos", "matricula", "promedio", "foto_perfil_url", "password"}))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStudentRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM students WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	promedio := 95.0
	student := &models.Student{Nombres: strPtr("Ana"), Apellidos: strPtr("Lopez"), Matricula: strPtr("A123"), Promedio: &promedio}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (nombres, apellidos, matricula, promedio, foto_perfil_url, password)")).
		WithArgs("Ana", "Lopez", "A123", 95.0, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(7), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	student := &models.Student{ID: 3, Nombres: strPtr("Eva")}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET nombres = $1, apellidos = $2, matricula = $3, promedio = $4, foto_perfil_url = $5, password = $6 WHERE id = $7")).
		WithArgs("Eva", nil, nil, nil, nil, nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), student))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET foto_perfil_url = $1 WHERE id = $2")).
		WithArgs("http://media/x.png", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePhotoURL(context.Background(), 4, "http://media/x.png")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 999), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
