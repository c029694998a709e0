package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sicei-api/internal/models"
)

const professorColumns = "id, numero_empleado, nombres, apellidos, horas_clase"

// ProfessorRepository manages persistence for professors.
type ProfessorRepository struct {
	baseRepository
}

// NewProfessorRepository constructs a ProfessorRepository. observer may be nil.
func NewProfessorRepository(db *sqlx.DB, observer QueryObserver) *ProfessorRepository {
	return &ProfessorRepository{baseRepository{db: db, observer: observer}}
}

// List returns every professor ordered by id.
func (r *ProfessorRepository) List(ctx context.Context) ([]models.Professor, error) {
	defer r.observe("professors.list", time.Now())

	professors := []models.Professor{}
	query := "SELECT " + professorColumns + " FROM professors ORDER BY id"
	if err := r.db.SelectContext(ctx, &professors, query); err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	return professors, nil
}

// FindByID fetches a professor. A missing row is reported as sql.ErrNoRows.
func (r *ProfessorRepository) FindByID(ctx context.Context, id int64) (*models.Professor, error) {
	defer r.observe("professors.find", time.Now())

	var professor models.Professor
	query := r.db.Rebind("SELECT " + professorColumns + " FROM professors WHERE id = ?")
	if err := r.db.GetContext(ctx, &professor, query, id); err != nil {
		return nil, err
	}
	return &professor, nil
}

// Create inserts a professor and stores the assigned id on it.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	defer r.observe("professors.create", time.Now())

	query := r.db.Rebind(`INSERT INTO professors (numero_empleado, nombres, apellidos, horas_clase)
VALUES (?, ?, ?, ?) RETURNING id`)
	row := r.db.QueryRowxContext(ctx, query, professor.NumeroEmpleado, professor.Nombres, professor.Apellidos, professor.HorasClase)
	if err := row.Scan(&professor.ID); err != nil {
		return fmt.Errorf("create professor: %w", err)
	}
	return nil
}

// Update writes every column of the professor row.
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	query := `UPDATE professors SET numero_empleado = ?, nombres = ?, apellidos = ?, horas_clase = ? WHERE id = ?`
	return r.execAffecting(ctx, "professors.update", query,
		professor.NumeroEmpleado, professor.Nombres, professor.Apellidos, professor.HorasClase, professor.ID)
}

// Delete removes a professor row.
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) error {
	return r.execAffecting(ctx, "professors.delete", "DELETE FROM professors WHERE id = ?", id)
}
