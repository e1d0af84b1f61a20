package screening

// Display-score weights for the recruiter-facing ranked list. This blend is
// deliberately independent of the composite weight profiles: it drives
// interactive browsing only and is never persisted or used for automated
// status decisions.
const (
	rankSkillWeight      = 0.50
	rankExperienceWeight = 0.20
	rankProfileWeight    = 0.10
	rankAssessmentWeight = 0.20
)

// DisplayScore computes the simplified 4-factor score used to order
// applicants in the recruiter view. Rounded to two decimal places.
func DisplayScore(in Input) float64 {
	skill, _, _ := skillScore(in.Profile, in.Posting)
	total := skill*rankSkillWeight +
		experienceScore(in)*rankExperienceWeight +
		completenessScore(in.Profile)*rankProfileWeight +
		assessmentScore(in.Profile, in.Posting)*rankAssessmentWeight
	return round2(total)
}
