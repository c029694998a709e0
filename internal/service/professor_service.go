package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/validation"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

type professorRepository interface {
	List(ctx context.Context) ([]models.Professor, error)
	FindByID(ctx context.Context, id int64) (*models.Professor, error)
	Create(ctx context.Context, professor *models.Professor) error
	Update(ctx context.Context, professor *models.Professor) error
	Delete(ctx context.Context, id int64) error
}

// ProfessorService orchestrates professor CRUD operations.
type ProfessorService struct {
	repo   professorRepository
	logger *zap.Logger
}

// NewProfessorService constructs a ProfessorService.
func NewProfessorService(repo professorRepository, logger *zap.Logger) *ProfessorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfessorService{repo: repo, logger: logger}
}

// List returns every professor. The slice is never nil.
func (s *ProfessorService) List(ctx context.Context) ([]models.Professor, error) {
	professors, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err, "list professors")
	}
	if professors == nil {
		professors = []models.Professor{}
	}
	return professors, nil
}

// Get returns a professor by id.
func (s *ProfessorService) Get(ctx context.Context, id int64) (*models.Professor, error) {
	professor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, appErrors.Internal(err, "load professor")
	}
	return professor, nil
}

// Create validates a create payload and stores the new professor.
func (s *ProfessorService) Create(ctx context.Context, payload validation.Payload) (*models.Professor, error) {
	values, err := validation.ProfessorSchema.Validate(payload, validation.ModeCreate)
	if err != nil {
		return nil, payloadError(err)
	}

	professor := &models.Professor{}
	validation.ProfessorSchema.Merge(professor, values)

	if err := s.repo.Create(ctx, professor); err != nil {
		return nil, appErrors.Internal(err, "create professor")
	}
	s.logger.Info("professor created", zap.Int64("professor_id", professor.ID))
	return professor, nil
}

// Update merges a partial payload into the stored professor.
func (s *ProfessorService) Update(ctx context.Context, id int64, payload validation.Payload) (*models.Professor, error) {
	values, err := validation.ProfessorSchema.PrepareUpdate(payload, validation.ProfessorUpdateFields)
	if err != nil {
		return nil, payloadError(err)
	}

	professor, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	validation.ProfessorSchema.Merge(professor, values)
	if err := s.repo.Update(ctx, professor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfessorNotFound
		}
		return nil, appErrors.Internal(err, "update professor")
	}
	return professor, nil
}

// Delete removes a professor.
func (s *ProfessorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfessorNotFound
		}
		return appErrors.Internal(err, "delete professor")
	}
	s.logger.Info("professor deleted", zap.Int64("professor_id", id))
	return nil
}
