// Package screening implements the applicant auto-screening core: nine pure
// sub-score calculators comparing a candidate profile against a posting's
// requirements, a weighted composite scorer with premium/standard profiles,
// and the simplified display score used for recruiter-facing ranking. Every
// function here is pure and total: absent profiles, blank requirement fields
// and unparseable free text resolve to documented numeric defaults, never an
// error.
package screening

import (
	"fmt"
	"math"
)

// Suggested statuses derived from the composite score.
const (
	SuggestShortlisted = "shortlisted"
	SuggestPending     = "pending"
	SuggestRejected    = "rejected"
)

// CandidateProfile is the uniform, storage-agnostic view of an applicant.
// A nil *CandidateProfile means the applicant never filled one in; zero
// values on individual fields mean the field was left blank.
type CandidateProfile struct {
	Skills          []string
	Course          string
	GPA             float64 // 0 means unset
	Location        string
	EnglishLevel    EnglishLevel
	InternetQuality InternetQuality
	Completeness    int      // 0-100, computed elsewhere and trusted as-is
	BadgeSkills     []string // verified-skill badges from the assessment subsystem
}

// Requirements is the uniform view of a posting's requirement fields,
// regardless of whether the posting is a job or an internship.
type Requirements struct {
	RequiredSkills    string // comma separated
	RequiredCourse    string
	MinGPA            float64 // 0 means no minimum
	ExperienceLevel   string  // job postings: fresher/junior/mid/senior/lead
	Experience        string  // internship postings: free text, e.g. "2 years"
	PreferredLocation string
	PreferredEnglish  EnglishLevel
	PreferredInternet InternetQuality
	IsRemote          bool
	IsPremium         bool
}

// Input gathers everything one screening pass needs. Kind is resolved once
// by the caller; the calculators never re-inspect concrete storage types.
type Input struct {
	Profile           *CandidateProfile // nil when the applicant has no profile
	Posting           Requirements
	Kind              Kind
	YearsOfExperience int // job applications only; internships have no such field
}

// Breakdown is the full result of one composite evaluation. All scores are
// rounded to two decimal places.
type Breakdown struct {
	SkillScore      float64
	CourseScore     float64
	GPAScore        float64
	ExperienceScore float64
	LocationScore   float64
	EnglishScore    float64
	InternetScore   float64
	ProfileScore    float64
	AssessmentScore float64

	TotalScore      float64
	SuggestedStatus string

	MatchingSkills []string // sorted
	MissingSkills  []string // sorted
	SkillGaps      []string // one human-readable line per missing skill, sorted
}

// Evaluate runs all nine sub-score calculators and blends them with the
// weight profile selected by the posting's premium flag.
func Evaluate(in Input) Breakdown {
	w := weightsFor(in.Posting.IsPremium)

	skill, matching, missing := skillScore(in.Profile, in.Posting)
	course := courseScore(in.Profile, in.Posting)
	gpa := gpaScore(in.Profile, in.Posting)
	experience := experienceScore(in)
	location := locationScore(in.Profile, in.Posting)
	english := englishScore(in.Profile, in.Posting)
	internet := internetScore(in.Profile, in.Posting)
	completeness := completenessScore(in.Profile)
	assessment := assessmentScore(in.Profile, in.Posting)

	total := skill*w.Skill +
		course*w.Course +
		gpa*w.GPA +
		experience*w.Experience +
		location*w.Location +
		english*w.English +
		internet*w.Internet +
		completeness*w.Profile +
		assessment*w.Assessment

	gaps := make([]string, 0, len(missing))
	for _, s := range missing {
		gaps = append(gaps, fmt.Sprintf("Learn %s to improve your match", s))
	}

	return Breakdown{
		SkillScore:      round2(skill),
		CourseScore:     round2(course),
		GPAScore:        round2(gpa),
		ExperienceScore: round2(experience),
		LocationScore:   round2(location),
		EnglishScore:    round2(english),
		InternetScore:   round2(internet),
		ProfileScore:    round2(completeness),
		AssessmentScore: round2(assessment),
		TotalScore:      round2(total),
		SuggestedStatus: w.Bands.suggest(total),
		MatchingSkills:  matching,
		MissingSkills:   missing,
		SkillGaps:       gaps,
	}
}

func (b StatusBands) suggest(total float64) string {
	switch {
	case total >= b.Shortlist:
		return SuggestShortlisted
	case total >= b.Pending:
		return SuggestPending
	default:
		return SuggestRejected
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatScore renders a score the way it is embedded in notes and
// notifications: no trailing zeros, e.g. 74.5 not 74.50.
func FormatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
