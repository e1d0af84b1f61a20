package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/Saujankhnl/remotely-internship/internal/models"
	pgrepo "github.com/Saujankhnl/remotely-internship/internal/repositories/postgres"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

// NotificationService creates in-app notification rows for applicants.
// Callers treat it as best effort: a failure is logged, never propagated
// into the triggering mutation.
type NotificationService interface {
	NotifyStatusChange(ctx context.Context, app *models.Application, posting *models.Posting, oldStatus, newStatus string) error
}

type notificationService struct {
	notifications pgrepo.NotificationRepository
}

func NewNotificationService(notifications pgrepo.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

var statusDisplay = map[string]string{
	models.StatusPending:     "Pending",
	models.StatusReviewed:    "Reviewed",
	models.StatusShortlisted: "Shortlisted",
	models.StatusOnHold:      "On Hold",
	models.StatusInterview:   "Interview",
	models.StatusRejected:    "Rejected",
	models.StatusAccepted:    "Accepted",
}

func displayStatus(status string) string {
	if d, ok := statusDisplay[status]; ok {
		return d
	}
	return status
}

func (s *notificationService) NotifyStatusChange(ctx context.Context, app *models.Application, posting *models.Posting, oldStatus, newStatus string) error {
	const op = "NotificationService.NotifyStatusChange"

	payload, err := json.Marshal(map[string]any{
		"application_id": app.ID,
		"posting_id":     posting.ID,
		"old_status":     oldStatus,
		"new_status":     newStatus,
		"match_score":    app.MatchScore,
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to encode payload", err)
	}

	n := &models.Notification{
		UserID:  app.ApplicantID,
		Type:    models.NotificationApplicationStatus,
		Title:   "Application Status Updated",
		Message: fmt.Sprintf("Your application for '%s' has been updated to: %s", posting.Title, displayStatus(newStatus)),
		Payload: datatypes.JSON(payload),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create notification", err)
	}
	return nil
}
