package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Saujankhnl/remotely-internship/internal/models"
)

// EmailService notifies applicants by email about status changes. Actual
// delivery is owned by the mailer subsystem; the default implementation
// here records the intent so environments without an outbound relay still
// run the full pipeline.
type EmailService interface {
	SendStatusChange(ctx context.Context, app *models.Application, posting *models.Posting, oldStatus, newStatus string) error
}

type logEmailService struct {
	log *logrus.Logger
}

func NewLogEmailService(log *logrus.Logger) EmailService {
	if log == nil {
		log = logrus.New()
	}
	return &logEmailService{log: log}
}

func (s *logEmailService) SendStatusChange(ctx context.Context, app *models.Application, posting *models.Posting, oldStatus, newStatus string) error {
	s.log.WithFields(logrus.Fields{
		"to":             app.Email,
		"application_id": app.ID,
		"posting":        posting.Title,
		"old_status":     oldStatus,
		"new_status":     newStatus,
	}).Info("status change email queued")
	return nil
}
