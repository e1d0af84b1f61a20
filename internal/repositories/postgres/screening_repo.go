package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Saujankhnl/remotely-internship/internal/models"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

type ScreeningRepository interface {
	// Save upserts the screening result keyed by application and refreshes
	// the application's match_score/auto_status summary fields in the same
	// transaction, so concurrent screeners converge to last-write-wins
	// without duplicate rows or half-written state.
	Save(ctx context.Context, res *models.ScreeningResult) error
	GetByApplicationID(ctx context.Context, applicationID uint) (*models.ScreeningResult, error)
}

type screeningRepo struct {
	db *gorm.DB
}

func NewScreeningRepo(db *gorm.DB) ScreeningRepository {
	return &screeningRepo{db: db}
}

func (r *screeningRepo) Save(ctx context.Context, res *models.ScreeningResult) error {
	now := time.Now().UTC()
	res.UpdatedAt = now
	if res.CreatedAt.IsZero() {
		res.CreatedAt = now
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("id = ?", res.ApplicationID).
			Updates(map[string]any{
				"match_score": res.TotalScore,
				"auto_status": res.SuggestedStatus,
				"updated_at":  now,
			}).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "application_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"skill_score", "course_score", "gpa_score", "experience_score",
				"location_score", "english_score", "internet_score",
				"profile_score", "assessment_score", "total_score",
				"suggested_status", "matching_skills", "missing_skills",
				"skill_gaps", "updated_at",
			}),
		}).Create(res).Error
	})
}

func (r *screeningRepo) GetByApplicationID(ctx context.Context, applicationID uint) (*models.ScreeningResult, error) {
	var res models.ScreeningResult
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Take(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &res, err
}
