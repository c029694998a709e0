package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/service"
	"github.com/noah-isme/sicei-api/pkg/response"
)

type sessionService interface {
	Login(ctx context.Context, studentID int64, req models.SessionLoginRequest) (*models.SessionLoginResponse, error)
	Verify(ctx context.Context, studentID int64, req models.SessionStringRequest) (*models.SessionStatus, error)
	Logout(ctx context.Context, studentID int64, req models.SessionStringRequest) error
}

// SessionHandler exposes student session endpoints.
type SessionHandler struct {
	service sessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(svc sessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// Login godoc
// @Summary Open a student session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body models.SessionLoginRequest true "Credential"
// @Success 200 {object} models.SessionLoginResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 503 {object} response.ErrorBody
// @Router /students/{id}/session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	var req models.SessionLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.service.Login(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}

// Verify godoc
// @Summary Verify a student session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body models.SessionStringRequest true "Session string"
// @Success 200 {object} models.SessionStatus
// @Failure 400 {object} response.ErrorBody
// @Router /students/{id}/session/verify [post]
func (h *SessionHandler) Verify(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	var req models.SessionStringRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := h.service.Verify(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// Logout godoc
// @Summary Close a student session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body models.SessionStringRequest true "Session string"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.ErrorBody
// @Router /students/{id}/session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	var req models.SessionStringRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.Logout(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Sesión cerrada")
}
