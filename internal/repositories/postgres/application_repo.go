package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Saujankhnl/remotely-internship/internal/models"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

type ApplicationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	ListPendingByPosting(ctx context.Context, postingID uint) ([]models.Application, error)
	ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).
		Preload("Posting").
		Where("id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) ListPendingByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("posting_id = ? AND status = ?", postingID, models.StatusPending).
		Order("applied_at, id").
		Find(&apps).Error
	return apps, err
}

// ListByPosting returns every application for a posting ordered by
// application time; the ranking engine relies on this order as its stable
// tie-break.
func (r *applicationRepo) ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Where("posting_id = ?", postingID).
		Order("applied_at, id").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}).Error
}
