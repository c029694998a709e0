package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sicei-api/internal/models"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

type photoStudentRepository interface {
	studentFinder
	UpdatePhotoURL(ctx context.Context, id int64, url string) error
}

type photoStorage interface {
	SaveStream(key string, r io.Reader) (string, error)
	Delete(key string) error
}

// PhotoUpload carries upload metadata and stream reader.
type PhotoUpload struct {
	Filename string
	Size     int64
	Content  io.ReadSeeker
}

// PhotoServiceConfig holds validation parameters.
type PhotoServiceConfig struct {
	MaxFileSize int64
}

var (
	allowedPhotoExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	allowedPhotoMIMEs      = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
		"image/gif":  {},
		"image/webp": {},
	}
)

// PhotoService stores student profile photos.
type PhotoService struct {
	students photoStudentRepository
	storage  photoStorage
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      PhotoServiceConfig
}

// NewPhotoService constructs the service. A nil storage reports uploads as unavailable.
func NewPhotoService(students photoStudentRepository, storage photoStorage, metrics *MetricsService, logger *zap.Logger, cfg PhotoServiceConfig) *PhotoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 5 * 1024 * 1024
	}
	return &PhotoService{students: students, storage: storage, metrics: metrics, logger: logger, cfg: cfg}
}

// Upload validates the image, stores it and records its URL on the student.
func (s *PhotoService) Upload(ctx context.Context, studentID int64, upload PhotoUpload) (*models.Student, error) {
	ext, err := s.validateUpload(upload)
	if err != nil {
		return nil, err
	}

	student, err := findStudent(ctx, s.students, studentID)
	if err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, appErrors.ErrUnavailable
	}

	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return nil, appErrors.Internal(err, "reset upload stream")
	}
	key := photoKey(studentID, ext)
	url, err := s.storage.SaveStream(key, upload.Content)
	s.metrics.RecordCollaboratorCall(CollaboratorPhotoUpload, err)
	if err != nil {
		return nil, appErrors.Internal(err, "store profile photo")
	}

	if err := s.students.UpdatePhotoURL(ctx, studentID, url); err != nil {
		if delErr := s.storage.Delete(key); delErr != nil {
			s.logger.Warn("failed to remove orphaned photo", zap.String("key", key), zap.Error(delErr))
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, appErrors.Internal(err, "record profile photo")
	}

	student.FotoPerfilURL = &url
	s.logger.Info("profile photo stored", zap.Int64("student_id", studentID), zap.String("key", key))
	return student, nil
}

func (s *PhotoService) validateUpload(upload PhotoUpload) (string, error) {
	if upload.Content == nil || upload.Size <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "No se recibió ningún archivo.")
	}
	if upload.Size > s.cfg.MaxFileSize {
		return "", appErrors.Clone(appErrors.ErrValidation, "Archivo demasiado grande.")
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !isAllowedExtension(ext) {
		return "", appErrors.Clone(appErrors.ErrValidation,
			"Extensión no permitida. Usa: "+strings.Join(allowedPhotoExtensions, ", "))
	}

	if _, err := upload.Content.Seek(0, io.SeekStart); err != nil {
		return "", appErrors.Internal(err, "reset upload stream")
	}
	detected, err := mimetype.DetectReader(upload.Content)
	if err != nil {
		return "", appErrors.Internal(err, "inspect upload")
	}
	if _, ok := allowedPhotoMIMEs[detected.String()]; !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "Tipo de archivo no permitido.")
	}
	return ext, nil
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedPhotoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func photoKey(studentID int64, ext string) string {
	return fmt.Sprintf("students/%d/profile_%s%s", studentID, uuid.NewString()[:8], ext)
}
