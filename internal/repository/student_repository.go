package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sicei-api/internal/models"
)

const studentColumns = "id, nombres, apellidos, matricula, promedio, foto_perfil_url, password"

// StudentRepository manages persistence for students.
type StudentRepository struct {
	baseRepository
}

// NewStudentRepository constructs a StudentRepository. observer may be nil.
func NewStudentRepository(db *sqlx.DB, observer QueryObserver) *StudentRepository {
	return &StudentRepository{baseRepository{db: db, observer: observer}}
}

// List returns every student ordered by id.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	defer r.observe("students.list", time.Now())

	students := []models.Student{}
	query := "SELECT " + studentColumns + " FROM students ORDER BY id"
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student. A missing row is reported as sql.ErrNoRows.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	defer r.observe("students.find", time.Now())

	var student models.Student
	query := r.db.Rebind("SELECT " + studentColumns + " FROM students WHERE id = ?")
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a student and stores the assigned id on it.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	defer r.observe("students.create", time.Now())

	query := r.db.Rebind(`INSERT INTO students (nombres, apellidos, matricula, promedio, foto_perfil_url, password)
VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	row := r.db.QueryRowxContext(ctx, query,
		student.Nombres, student.Apellidos, student.Matricula, student.Promedio, student.FotoPerfilURL, student.PasswordHash)
	if err := row.Scan(&student.ID); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update writes every column of the student row.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `UPDATE students SET nombres = ?, apellidos = ?, matricula = ?, promedio = ?, foto_perfil_url = ?, password = ? WHERE id = ?`
	return r.execAffecting(ctx, "students.update", query,
		student.Nombres, student.Apellidos, student.Matricula, student.Promedio, student.FotoPerfilURL, student.PasswordHash, student.ID)
}

// UpdatePhotoURL sets only the profile photo reference.
func (r *StudentRepository) UpdatePhotoURL(ctx context.Context, id int64, url string) error {
	return r.execAffecting(ctx, "students.update_photo", "UPDATE students SET foto_perfil_url = ? WHERE id = ?", url, id)
}

// Delete removes a student row.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, "students.delete", "DELETE FROM students WHERE id = ?", id)
}
