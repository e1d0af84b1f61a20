package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Saujankhnl/remotely-internship/internal/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(n).Error
}
