package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/repository"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
)

type mockSessionStore struct {
	sessions map[string]models.Session
	err      error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]models.Session{}}
}

func (m *mockSessionStore) Create(ctx context.Context, session *models.Session) error {
	if m.err != nil {
		return m.err
	}
	m.sessions[session.SessionString] = *session
	return nil
}

func (m *mockSessionStore) Update(ctx context.Context, session *models.Session) error {
	if m.err != nil {
		return m.err
	}
	m.sessions[session.SessionString] = *session
	return nil
}

func (m *mockSessionStore) FindBySessionString(ctx context.Context, sessionString string) (*models.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.sessions[sessionString]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &s, nil
}

func studentWithPassword(t *testing.T, id int64, password string) models.Student {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)
	return models.Student{ID: id, Nombres: strPtr("Ana"), PasswordHash: &h}
}

func newTestSessionService(t *testing.T, store sessionStore) *SessionService {
	repo := newMockStudentRepo(studentWithPassword(t, 1, "s3cret"), studentWithPassword(t, 2, "other"), models.Student{ID: 3})
	svc := NewSessionService(repo, store, nil, NewMetricsService(), nil)
	svc.now = func() time.Time { return time.Unix(1714557600, 0) }
	return svc
}

func TestSessionLifecycle(t *testing.T) {
	store := newMockSessionStore()
	svc := newTestSessionService(t, store)
	ctx := context.Background()

	login, err := svc.Login(ctx, 1, models.SessionLoginRequest{Password: "s3cret"})
	require.NoError(t, err)
	assert.Len(t, login.SessionString, 128)
	assert.Regexp(t, "^[0-9a-f]+$", login.SessionString)
	assert.Equal(t, int64(1), login.StudentID)
	assert.Equal(t, int64(1714557600), login.Timestamp)
	assert.NotEmpty(t, login.SessionID)

	status, err := svc.Verify(ctx, 1, models.SessionStringRequest{SessionString: login.SessionString})
	require.NoError(t, err)
	assert.Equal(t, &models.SessionStatus{SessionID: login.SessionID, StudentID: 1, Timestamp: login.Timestamp, Active: true}, status)

	require.NoError(t, svc.Logout(ctx, 1, models.SessionStringRequest{SessionString: login.SessionString}))
	assert.False(t, store.sessions[login.SessionString].Active)

	_, err = svc.Verify(ctx, 1, models.SessionStringRequest{SessionString: login.SessionString})
	assert.Equal(t, appErrors.ErrInvalidSession, err)

	err = svc.Logout(ctx, 1, models.SessionStringRequest{SessionString: login.SessionString})
	assert.Equal(t, appErrors.ErrInvalidSession, err)
}

func TestSessionLoginFailures(t *testing.T) {
	svc := newTestSessionService(t, newMockSessionStore())
	ctx := context.Background()

	_, err := svc.Login(ctx, 1, models.SessionLoginRequest{})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrMissingKey.Message, appErr.Message)

	_, err = svc.Login(ctx, 1, models.SessionLoginRequest{Password: "wrong"})
	assert.Equal(t, appErrors.ErrInvalidCredentials, err)

	_, err = svc.Login(ctx, 3, models.SessionLoginRequest{Password: "anything"})
	assert.Equal(t, appErrors.ErrInvalidCredentials, err)

	_, err = svc.Login(ctx, 404, models.SessionLoginRequest{Password: "s3cret"})
	assert.Equal(t, ErrStudentNotFound, err)
}

func TestSessionVerifyRejectsForeignSession(t *testing.T) {
	svc := newTestSessionService(t, newMockSessionStore())
	ctx := context.Background()

	login, err := svc.Login(ctx, 1, models.SessionLoginRequest{Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, 2, models.SessionStringRequest{SessionString: login.SessionString})
	assert.Equal(t, appErrors.ErrInvalidSession, err)

	_, err = svc.Verify(ctx, 1, models.SessionStringRequest{SessionString: "unknown"})
	assert.Equal(t, appErrors.ErrInvalidSession, err)

	_, err = svc.Verify(ctx, 1, models.SessionStringRequest{})
	assert.True(t, appErrors.IsStatus(err, http.StatusBadRequest))
}

func TestSessionStoreUnavailable(t *testing.T) {
	svc := newTestSessionService(t, nil)

	_, err := svc.Login(context.Background(), 1, models.SessionLoginRequest{Password: "s3cret"})
	assert.True(t, appErrors.IsStatus(err, http.StatusServiceUnavailable))

	_, err = svc.Verify(context.Background(), 1, models.SessionStringRequest{SessionString: "x"})
	assert.True(t, appErrors.IsStatus(err, http.StatusServiceUnavailable))
}

func TestSessionStoreFailure(t *testing.T) {
	store := newMockSessionStore()
	store.err = errors.New("redis: connection refused")
	svc := newTestSessionService(t, store)

	_, err := svc.Login(context.Background(), 1, models.SessionLoginRequest{Password: "s3cret"})
	assert.True(t, appErrors.IsStatus(err, http.StatusInternalServerError))
}
