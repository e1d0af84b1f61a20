package models

import "time"

// VerifiedBadge is a skill credential earned through the assessment
// subsystem. Screening consumes badges only as a set of skill names.
type VerifiedBadge struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	SkillName string    `gorm:"column:skill_name;type:text" json:"skill_name"`
	EarnedAt  time.Time `gorm:"column:earned_at;type:timestamptz" json:"earned_at"`
}

func (VerifiedBadge) TableName() string { return "verified_badges" }
