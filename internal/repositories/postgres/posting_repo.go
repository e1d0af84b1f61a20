package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Saujankhnl/remotely-internship/internal/models"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

type PostingRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Posting, error)
	ListAutoScreenEnabled(ctx context.Context) ([]models.Posting, error)
}

type postingRepo struct {
	db *gorm.DB
}

func NewPostingRepo(db *gorm.DB) PostingRepository {
	return &postingRepo{db: db}
}

func (r *postingRepo) GetByID(ctx context.Context, id uint) (*models.Posting, error) {
	var p models.Posting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

// ListAutoScreenEnabled returns open postings that opted into automatic
// screening; the scheduled worker iterates these.
func (r *postingRepo) ListAutoScreenEnabled(ctx context.Context) ([]models.Posting, error) {
	var postings []models.Posting
	err := r.db.WithContext(ctx).
		Where("auto_screen_enabled = ? AND status = ?", true, models.PostingOpen).
		Order("id").
		Find(&postings).Error
	return postings, err
}
