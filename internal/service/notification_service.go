package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sicei-api/internal/models"
	appErrors "github.com/noah-isme/sicei-api/pkg/errors"
	"github.com/noah-isme/sicei-api/pkg/notify"
)

// NotificationService broadcasts student summaries.
type NotificationService struct {
	students  studentFinder
	publisher notify.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewNotificationService constructs the service. A nil publisher reports
// notifications as unavailable.
func NewNotificationService(students studentFinder, publisher notify.Publisher, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{students: students, publisher: publisher, metrics: metrics, logger: logger}
}

// Notify publishes the student's summary and returns the message id.
func (s *NotificationService) Notify(ctx context.Context, studentID int64) (*models.NotificationResult, error) {
	student, err := findStudent(ctx, s.students, studentID)
	if err != nil {
		return nil, err
	}
	if s.publisher == nil {
		return nil, appErrors.ErrUnavailable
	}

	n := BuildNotification(student)
	id, err := s.publisher.Publish(ctx, notify.Message{
		Subject: n.Subject,
		Body:    n.Message,
		Attributes: map[string]string{
			"AlumnoID":  n.Attributes.AlumnoID,
			"Matricula": n.Attributes.Matricula,
		},
	})
	s.metrics.RecordCollaboratorCall(CollaboratorNotification, err)
	if err != nil {
		return nil, appErrors.Internal(err, "publish notification")
	}

	s.logger.Info("notification published", zap.Int64("student_id", studentID), zap.String("message_id", id))
	return &models.NotificationResult{Message: "Notificación enviada", MessageID: id}, nil
}

// BuildNotification renders the broadcast for a student.
func BuildNotification(student *models.Student) models.Notification {
	name := student.FullName()

	matricula := "No especificada"
	if student.Matricula != nil {
		matricula = *student.Matricula
	}
	promedio := "No especificado"
	if student.Promedio != nil {
		promedio = strconv.FormatFloat(*student.Promedio, 'f', -1, 64)
	}

	var body strings.Builder
	body.WriteString("Información del alumno\n\n")
	fmt.Fprintf(&body, "Nombre completo: %s\n", name)
	fmt.Fprintf(&body, "Matrícula: %s\n", matricula)
	fmt.Fprintf(&body, "Promedio: %s\n", promedio)

	attrMatricula := "N/A"
	if student.Matricula != nil {
		attrMatricula = *student.Matricula
	}

	return models.Notification{
		Subject: "Notificación de Alumno: " + name,
		Message: body.String(),
		Attributes: models.NotificationAttributes{
			AlumnoID:  strconv.FormatInt(student.ID, 10),
			Matricula: attrMatricula,
		},
	}
}
