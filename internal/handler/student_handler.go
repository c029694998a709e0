package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/service"
	"github.com/noah-isme/sicei-api/internal/validation"
	"github.com/noah-isme/sicei-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, payload validation.Payload) (*models.Student, error)
	Update(ctx context.Context, id int64, payload validation.Payload) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentHandler exposes student CRUD endpoints.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler constructs a StudentHandler.
func NewStudentHandler(svc studentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Get godoc
// @Summary Get student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	student, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Create student
// @Description Any supplied id is ignored. Unknown keys reject the whole payload.
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.Student true "Student payload"
// @Success 201 {object} models.Student
// @Failure 400 {object} response.FieldErrorsBody
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	student, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Partially update student
// @Description Accepts id, nombres, apellidos, matricula and promedio. Nothing is written unless every field validates.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body models.Student true "Fields to change"
// @Success 200 {object} models.Student
// @Failure 400 {object} response.FieldErrorsBody
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	student, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Alumno eliminado")
}
