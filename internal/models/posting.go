package models

import (
	"time"

	"github.com/Saujankhnl/remotely-internship/internal/screening"
)

type PostingKind string

const (
	PostingJob        PostingKind = "job"
	PostingInternship PostingKind = "internship"
)

type PostingStatus string

const (
	PostingOpen   PostingStatus = "open"
	PostingClosed PostingStatus = "closed"
)

// Posting is a job or internship listing. The two kinds share one table
// with a kind discriminator; kind-specific requirement fields (experience
// level vs free-text experience) are simply blank on the other kind.
type Posting struct {
	ID        uint        `gorm:"column:id;primaryKey" json:"id"`
	CompanyID string      `gorm:"column:company_id;type:uuid;index" json:"company_id"`
	Kind      PostingKind `gorm:"column:kind;type:text;index" json:"kind"`

	Title       string `gorm:"column:title;type:text" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	// Requirements. RequiredSkills is comma separated, as entered by the
	// company.
	RequiredSkills  string  `gorm:"column:required_skills;type:text" json:"required_skills"`
	RequiredCourse  string  `gorm:"column:required_course;type:text" json:"required_course"`
	MinGPA          float64 `gorm:"column:min_gpa;type:numeric(3,2)" json:"min_gpa"`
	ExperienceLevel string  `gorm:"column:experience_level;type:text" json:"experience_level"` // jobs: fresher/junior/mid/senior/lead
	Experience      string  `gorm:"column:experience;type:text" json:"experience"`             // internships: free text, e.g. "2 years"

	PreferredLocation        string `gorm:"column:preferred_location;type:text" json:"preferred_location"`
	PreferredEnglishLevel    string `gorm:"column:preferred_english_level;type:text" json:"preferred_english_level"`
	PreferredInternetQuality string `gorm:"column:preferred_internet_quality;type:text" json:"preferred_internet_quality"`

	IsRemote          bool `gorm:"column:is_remote" json:"is_remote"`
	IsPremium         bool `gorm:"column:is_premium" json:"is_premium"`
	AutoScreenEnabled bool `gorm:"column:auto_screen_enabled" json:"auto_screen_enabled"`

	Status    PostingStatus `gorm:"column:status;type:text;default:open" json:"status"`
	CreatedAt time.Time     `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time     `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Posting) TableName() string { return "postings" }

// Requirements projects the posting onto the screening core's uniform
// requirement view.
func (p *Posting) Requirements() screening.Requirements {
	return screening.Requirements{
		RequiredSkills:    p.RequiredSkills,
		RequiredCourse:    p.RequiredCourse,
		MinGPA:            p.MinGPA,
		ExperienceLevel:   p.ExperienceLevel,
		Experience:        p.Experience,
		PreferredLocation: p.PreferredLocation,
		PreferredEnglish:  screening.EnglishLevel(p.PreferredEnglishLevel),
		PreferredInternet: screening.InternetQuality(p.PreferredInternetQuality),
		IsRemote:          p.IsRemote,
		IsPremium:         p.IsPremium,
	}
}

// ScreeningKind maps the posting kind onto the screening core's tagged
// application kind.
func (p *Posting) ScreeningKind() screening.Kind {
	if p.Kind == PostingJob {
		return screening.KindJob
	}
	return screening.KindInternship
}
