package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/repository"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

const sessionStringBytes = 64

type sessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	Update(ctx context.Context, session *models.Session) error
	FindBySessionString(ctx context.Context, sessionString string) (*models.Session, error)
}

// SessionService issues, verifies and closes student sessions.
type SessionService struct {
	students  studentFinder
	store     sessionStore
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewSessionService constructs a SessionService. A nil store makes every session
// operation report the collaborator as unavailable.
func NewSessionService(students studentFinder, store sessionStore, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		students:  students,
		store:     store,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Login compares the credential and opens a new session.
func (s *SessionService) Login(ctx context.Context, studentID int64, req models.SessionLoginRequest) (*models.SessionLoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMissingKey.Code, appErrors.ErrMissingKey.Status, appErrors.ErrMissingKey.Message)
	}

	student, err := findStudent(ctx, s.students, studentID)
	if err != nil {
		return nil, err
	}
	if student.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*student.PasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	if s.store == nil {
		return nil, appErrors.ErrUnavailable
	}

	sessionString, err := newSessionString()
	if err != nil {
		return nil, appErrors.Internal(err, "generate session string")
	}
	session := &models.Session{
		ID:            uuid.NewString(),
		StudentID:     student.ID,
		Timestamp:     s.now().Unix(),
		SessionString: sessionString,
		Active:        true,
	}

	err = s.store.Create(ctx, session)
	s.metrics.RecordCollaboratorCall(CollaboratorSession, err)
	if err != nil {
		return nil, appErrors.Internal(err, "store session")
	}

	s.logger.Info("session opened", zap.Int64("student_id", student.ID), zap.String("session_id", session.ID))
	return &models.SessionLoginResponse{
		SessionString: session.SessionString,
		SessionID:     session.ID,
		StudentID:     session.StudentID,
		Timestamp:     session.Timestamp,
	}, nil
}

// Verify reports an active session owned by the student.
func (s *SessionService) Verify(ctx context.Context, studentID int64, req models.SessionStringRequest) (*models.SessionStatus, error) {
	session, err := s.activeSession(ctx, studentID, req)
	if err != nil {
		return nil, err
	}
	return &models.SessionStatus{
		SessionID: session.ID,
		StudentID: session.StudentID,
		Timestamp: session.Timestamp,
		Active:    session.Active,
	}, nil
}

// Logout deactivates the session. A closed session cannot be reopened.
func (s *SessionService) Logout(ctx context.Context, studentID int64, req models.SessionStringRequest) error {
	session, err := s.activeSession(ctx, studentID, req)
	if err != nil {
		return err
	}

	session.Active = false
	err = s.store.Update(ctx, session)
	s.metrics.RecordCollaboratorCall(CollaboratorSession, err)
	if err != nil {
		return appErrors.Internal(err, "close session")
	}
	s.logger.Info("session closed", zap.Int64("student_id", studentID), zap.String("session_id", session.ID))
	return nil
}

func (s *SessionService) activeSession(ctx context.Context, studentID int64, req models.SessionStringRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMissingKey.Code, appErrors.ErrMissingKey.Status, appErrors.ErrMissingKey.Message)
	}
	if _, err := findStudent(ctx, s.students, studentID); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, appErrors.ErrUnavailable
	}

	session, err := s.store.FindBySessionString(ctx, req.SessionString)
	if errors.Is(err, repository.ErrSessionNotFound) {
		s.metrics.RecordCollaboratorCall(CollaboratorSession, nil)
		return nil, appErrors.ErrInvalidSession
	}
	s.metrics.RecordCollaboratorCall(CollaboratorSession, err)
	if err != nil {
		return nil, appErrors.Internal(err, "load session")
	}
	if !session.Active || session.StudentID != studentID {
		return nil, appErrors.ErrInvalidSession
	}
	return session, nil
}

func newSessionString() (string, error) {
	buf := make([]byte, sessionStringBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
