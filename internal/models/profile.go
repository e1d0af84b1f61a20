package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/Saujankhnl/remotely-internship/internal/screening"
)

// Profile is the candidate-side profile. Every field is blank-capable; the
// screening core resolves blanks through its documented defaults.
type Profile struct {
	UserID   string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FullName string `gorm:"column:full_name;type:text" json:"full_name"`
	Phone    string `gorm:"column:phone;type:text" json:"phone"`
	Location string `gorm:"column:location;type:text" json:"location"`
	Bio      string `gorm:"column:bio;type:text" json:"bio"`

	Skills pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`
	Course string         `gorm:"column:course;type:text" json:"course"`
	GPA    float64        `gorm:"column:gpa;type:numeric(3,2)" json:"gpa"` // 0 means unset

	EnglishLevel    string `gorm:"column:english_level;type:text" json:"english_level"`
	InternetQuality string `gorm:"column:internet_quality;type:text" json:"internet_quality"`

	// Computed by the profile subsystem, trusted as-is here.
	CompletenessScore int `gorm:"column:completeness_score" json:"completeness_score"`

	OpenToWork bool      `gorm:"column:open_to_work" json:"open_to_work"`
	UpdatedAt  time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// Candidate normalizes the stored profile plus the applicant's verified
// badge skills into the screening core's uniform view. Safe on a nil
// receiver: a missing profile maps to a nil candidate.
func (p *Profile) Candidate(badgeSkills []string) *screening.CandidateProfile {
	if p == nil {
		return nil
	}
	return &screening.CandidateProfile{
		Skills:          p.Skills,
		Course:          p.Course,
		GPA:             p.GPA,
		Location:        p.Location,
		EnglishLevel:    screening.EnglishLevel(p.EnglishLevel),
		InternetQuality: screening.InternetQuality(p.InternetQuality),
		Completeness:    p.CompletenessScore,
		BadgeSkills:     badgeSkills,
	}
}
