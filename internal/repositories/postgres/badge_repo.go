package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/Saujankhnl/remotely-internship/internal/models"
)

type BadgeRepository interface {
	SkillsByUserID(ctx context.Context, userID string) ([]string, error)
	// SkillsByUserIDs fetches badge skill names for a set of users in one
	// query, keyed by user id. Users without badges are absent from the map.
	SkillsByUserIDs(ctx context.Context, userIDs []string) (map[string][]string, error)
}

type badgeRepo struct {
	db *gorm.DB
}

func NewBadgeRepo(db *gorm.DB) BadgeRepository {
	return &badgeRepo{db: db}
}

func (r *badgeRepo) SkillsByUserID(ctx context.Context, userID string) ([]string, error) {
	var skills []string
	err := r.db.WithContext(ctx).
		Model(&models.VerifiedBadge{}).
		Where("user_id = ?", userID).
		Pluck("skill_name", &skills).Error
	return skills, err
}

func (r *badgeRepo) SkillsByUserIDs(ctx context.Context, userIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var badges []models.VerifiedBadge
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&badges).Error; err != nil {
		return nil, err
	}
	for _, b := range badges {
		out[b.UserID] = append(out[b.UserID], b.SkillName)
	}
	return out, nil
}
