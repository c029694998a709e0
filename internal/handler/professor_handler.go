package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/service"
	"github.com/noah-isme/sicei-api/internal/validation"
	"github.com/noah-isme/sicei-api/pkg/response"
)

type professorService interface {
	List(ctx context.Context) ([]models.Professor, error)
	Get(ctx context.Context, id int64) (*models.Professor, error)
	Create(ctx context.Context, payload validation.Payload) (*models.Professor, error)
	Update(ctx context.Context, id int64, payload validation.Payload) (*models.Professor, error)
	Delete(ctx context.Context, id int64) error
}

// ProfessorHandler exposes professor CRUD endpoints.
type ProfessorHandler struct {
	service professorService
}

// NewProfessorHandler constructs a ProfessorHandler.
func NewProfessorHandler(svc professorService) *ProfessorHandler {
	return &ProfessorHandler{service: svc}
}

// List godoc
// @Summary List professors
// @Tags Professors
// @Produce json
// @Success 200 {array} models.Professor
// @Router /professors [get]
func (h *ProfessorHandler) List(c *gin.Context) {
	professors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, professors)
}

// Get godoc
// @Summary Get professor
// @Tags Professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} models.Professor
// @Failure 404 {object} response.ErrorBody
// @Router /professors/{id} [get]
func (h *ProfessorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, service.ErrProfessorNotFound)
	if !ok {
		return
	}
	professor, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, professor)
}

// Create godoc
// @Summary Create professor
// @Tags Professors
// @Accept json
// @Produce json
// @Param payload body models.Professor true "Professor payload"
// @Success 201 {object} models.Professor
// @Failure 400 {object} response.FieldErrorsBody
// @Router /professors [post]
func (h *ProfessorHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	professor, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, professor)
}

// Update godoc
// @Summary Partially update professor
// @Tags Professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param payload body models.Professor true "Fields to change"
// @Success 200 {object} models.Professor
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /professors/{id} [put]
func (h *ProfessorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, service.ErrProfessorNotFound)
	if !ok {
		return
	}
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	professor, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, professor)
}

// Delete godoc
// @Summary Delete professor
// @Tags Professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /professors/{id} [delete]
func (h *ProfessorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, service.ErrProfessorNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Profesor eliminado")
}
