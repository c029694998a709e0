package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/validation"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

type studentFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Student, error)
}

type studentRepository interface {
	studentFinder
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentService orchestrates student CRUD operations.
type StudentService struct {
	repo   studentRepository
	logger *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, logger: logger}
}

// List returns every student. The slice is never nil.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "list students")
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return findStudent(ctx, s.repo, id)
}

func findStudent(ctx context.Context, repo studentFinder, id int64) (*models.Student, error) {
	student, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, appErrors.Internal(err, "load student")
	}
	return student, nil
}

// Create validates a create payload and stores the new student. A supplied id is ignored.
func (s *StudentService) Create(ctx context.Context, payload validation.Payload) (*models.Student, error) {
	values, err := validation.StudentSchema.Validate(payload, validation.ModeCreate)
	if err != nil {
		return nil, payloadError(err)
	}

	if raw, ok := values[validation.FieldPassword].(string); ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
		if err != nil {
			return nil, appErrors.Internal(err, "hash student password")
		}
		values[validation.FieldPassword] = string(hash)
	}

	student := &models.Student{}
	validation.StudentSchema.Merge(student, values)

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Internal(err, "create student")
	}
	s.logger.Info("student created", zap.Int64("student_id", student.ID))
	return student, nil
}

// Update merges a partial payload into the stored student. The payload is checked
// before the record is loaded so an invalid payload is reported for any id.
func (s *StudentService) Update(ctx context.Context, id int64, payload validation.Payload) (*models.Student, error) {
	values, err := validation.StudentSchema.PrepareUpdate(payload, validation.StudentUpdateFields)
	if err != nil {
		return nil, payloadError(err)
	}

	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	validation.StudentSchema.Merge(student, values)
	if err := s.repo.Update(ctx, student); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, appErrors.Internal(err, "update student")
	}
	return student, nil
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrStudentNotFound
		}
		return appErrors.Internal(err, "delete student")
	}
	s.logger.Info("student deleted", zap.Int64("student_id", id))
	return nil
}
