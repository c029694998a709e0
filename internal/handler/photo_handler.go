package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sicei-api/internal/models"
	"github.com/noah-isme/sicei-api/internal/service"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
	"github.com/noah-isme/sicei-api/pkg/response"
)

// multipartOverhead leaves room for boundaries and headers around the file part.
const multipartOverhead = 1 << 20

var photoFormFields = []string{"foto", "file"}

type photoService interface {
	Upload(ctx context.Context, studentID int64, upload service.PhotoUpload) (*models.Student, error)
}

// PhotoHandler accepts profile photo uploads.
type PhotoHandler struct {
	service     photoService
	maxFileSize int64
}

// NewPhotoHandler constructs a PhotoHandler.
func NewPhotoHandler(svc photoService, maxFileSize int64) *PhotoHandler {
	return &PhotoHandler{service: svc, maxFileSize: maxFileSize}
}

// Upload godoc
// @Summary Upload student profile photo
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Param foto formData file true "Image (jpg, jpeg, png, gif, webp)"
// @Success 200 {object} models.Student
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Failure 503 {object} response.ErrorBody
// @Router /students/{id}/profile-photo [post]
func (h *PhotoHandler) Upload(c *gin.Context) {
	id, ok := pathID(c, service.ErrStudentNotFound)
	if !ok {
		return
	}
	if h.maxFileSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFileSize+multipartOverhead)
	}

	fileHeader, err := formFile(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Archivo demasiado grande."))
			return
		}
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No se recibió ningún archivo."))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Internal(err, "open uploaded file"))
		return
	}
	defer src.Close()

	reader, ok := src.(io.ReadSeeker)
	if !ok {
		buf, readErr := io.ReadAll(src)
		if readErr != nil {
			response.Error(c, appErrors.Internal(readErr, "buffer uploaded file"))
			return
		}
		reader = bytes.NewReader(buf)
	}

	student, err := h.service.Upload(c.Request.Context(), id, service.PhotoUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  reader,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

func formFile(c *gin.Context) (*multipart.FileHeader, error) {
	var lastErr error
	for _, field := range photoFormFields {
		fh, err := c.FormFile(field)
		if err == nil {
			return fh, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
