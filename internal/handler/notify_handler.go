package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/service"
	"github.com/noah-isme/sicei-api/pkg/response"
)

type notificationService interface {
	Notify(ctx context.Context, studentID int64) (*models.NotificationResult, error)
}

// NotificationHandler triggers student broadcasts.
type NotificationHandler struct {
	service notificationService
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(svc notificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// Notify godoc
// @Summary Broadcast a student summary
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.NotificationResult
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Failure 503 {object} response.ErrorBody
// @Router /students/{id}/notify [post]
func (h *NotificationHandler) Notify(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	res, err := h.service.Notify(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, res)
}
