package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Saujankhnl/remotely-internship/internal/models"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.Profile, error)
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

// GetByUserIDs batch-fetches profiles for a set of users in one query.
// Users without a profile are simply absent from the returned map.
func (r *profileRepo) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.Profile, error) {
	out := make(map[string]*models.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	for i := range profiles {
		out[profiles[i].UserID] = &profiles[i]
	}
	return out, nil
}
