package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/Saujankhnl/remotely-internship/internal/screening"
)

// ScreeningResult stores the full per-application breakdown of one
// screening pass. At most one row exists per application: re-screens update
// the existing row in place.
type ScreeningResult struct {
	ID            uint `gorm:"column:id;primaryKey" json:"id"`
	ApplicationID uint `gorm:"column:application_id;uniqueIndex" json:"application_id"`

	SkillScore      float64 `gorm:"column:skill_score;type:numeric(5,2)" json:"skill_score"`
	CourseScore     float64 `gorm:"column:course_score;type:numeric(5,2)" json:"course_score"`
	GPAScore        float64 `gorm:"column:gpa_score;type:numeric(5,2)" json:"gpa_score"`
	ExperienceScore float64 `gorm:"column:experience_score;type:numeric(5,2)" json:"experience_score"`
	LocationScore   float64 `gorm:"column:location_score;type:numeric(5,2)" json:"location_score"`
	EnglishScore    float64 `gorm:"column:english_score;type:numeric(5,2)" json:"english_score"`
	InternetScore   float64 `gorm:"column:internet_score;type:numeric(5,2)" json:"internet_score"`
	ProfileScore    float64 `gorm:"column:profile_score;type:numeric(5,2)" json:"profile_score"`
	AssessmentScore float64 `gorm:"column:assessment_score;type:numeric(5,2)" json:"assessment_score"`

	TotalScore      float64 `gorm:"column:total_score;type:numeric(5,2)" json:"total_score"`
	SuggestedStatus string  `gorm:"column:suggested_status;type:text" json:"suggested_status"`

	MatchingSkills pq.StringArray `gorm:"column:matching_skills;type:text[]" json:"matching_skills"`
	MissingSkills  pq.StringArray `gorm:"column:missing_skills;type:text[]" json:"missing_skills"`
	SkillGaps      pq.StringArray `gorm:"column:skill_gaps;type:text[]" json:"skill_gaps"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (ScreeningResult) TableName() string { return "screening_results" }

// NewScreeningResult maps a composite breakdown onto a result row for the
// given application.
func NewScreeningResult(applicationID uint, b screening.Breakdown) *ScreeningResult {
	return &ScreeningResult{
		ApplicationID:   applicationID,
		SkillScore:      b.SkillScore,
		CourseScore:     b.CourseScore,
		GPAScore:        b.GPAScore,
		ExperienceScore: b.ExperienceScore,
		LocationScore:   b.LocationScore,
		EnglishScore:    b.EnglishScore,
		InternetScore:   b.InternetScore,
		ProfileScore:    b.ProfileScore,
		AssessmentScore: b.AssessmentScore,
		TotalScore:      b.TotalScore,
		SuggestedStatus: b.SuggestedStatus,
		MatchingSkills:  b.MatchingSkills,
		MissingSkills:   b.MissingSkills,
		SkillGaps:       b.SkillGaps,
	}
}
