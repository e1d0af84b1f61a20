package models

import "time"

// Application lifecycle statuses. Job postings use the full set; internship
// postings use pending/reviewed/shortlisted/rejected/accepted.
const (
	StatusPending     = "pending"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusOnHold      = "on_hold"
	StatusInterview   = "interview"
	StatusRejected    = "rejected"
	StatusAccepted    = "accepted"
)

// Application links one applicant to one posting. MatchScore and AutoStatus
// are summary fields written only by the screening orchestrator; Status is
// the authoritative lifecycle value.
type Application struct {
	ID        uint `gorm:"column:id;primaryKey" json:"id"`
	PostingID uint `gorm:"column:posting_id;index;uniqueIndex:uniq_posting_applicant" json:"posting_id"`

	Posting Posting `gorm:"foreignKey:PostingID" json:"posting,omitempty"`

	ApplicantID string `gorm:"column:applicant_id;type:uuid;index;uniqueIndex:uniq_posting_applicant" json:"applicant_id"`

	FullName    string `gorm:"column:full_name;type:text" json:"full_name"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	Phone       string `gorm:"column:phone;type:text" json:"phone"`
	CoverLetter string `gorm:"column:cover_letter;type:text" json:"cover_letter"`

	// Job applications only; internship applications have no equivalent
	// field and keep the zero value.
	YearsOfExperience int `gorm:"column:years_of_experience" json:"years_of_experience"`

	MatchScore float64 `gorm:"column:match_score;type:numeric(5,2)" json:"match_score"`
	AutoStatus string  `gorm:"column:auto_status;type:text" json:"auto_status"`
	Status     string  `gorm:"column:status;type:text;default:pending" json:"status"`

	AppliedAt time.Time `gorm:"column:applied_at;type:timestamptz" json:"applied_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
