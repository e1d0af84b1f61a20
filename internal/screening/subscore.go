package screening

import "strings"

// The calculators below each compare one candidate attribute against one
// posting requirement and return a score in [0, 100]. An unset requirement
// is a free pass (100) unless noted otherwise: a requirement the company
// never specified must not penalize a candidate. Absent profiles and blank
// fields always resolve to a numeric default, never an error.

func skillScore(p *CandidateProfile, post Requirements) (score float64, matching, missing []string) {
	required := parseSkillSet(post.RequiredSkills)
	if len(required) == 0 {
		return 100, nil, nil
	}
	var have map[string]struct{}
	if p != nil {
		have = normalizeSkillSet(p.Skills)
	}
	matched := intersect(required, have)
	score = float64(len(matched)) / float64(len(required)) * 100
	return score, sortedKeys(matched), sortedKeys(subtract(required, have))
}

func courseScore(p *CandidateProfile, post Requirements) float64 {
	required := strings.TrimSpace(post.RequiredCourse)
	if required == "" {
		return 100
	}
	course := ""
	if p != nil {
		course = strings.TrimSpace(p.Course)
	}
	if course == "" {
		return 0
	}
	requiredLower := strings.ToLower(required)
	courseLower := strings.ToLower(course)
	if requiredLower == courseLower {
		return 100
	}
	if strings.Contains(courseLower, requiredLower) || strings.Contains(requiredLower, courseLower) {
		return 75
	}
	reqWords := wordSet(requiredLower)
	overlap := intersect(reqWords, wordSet(courseLower))
	if len(overlap) == 0 {
		return 0
	}
	return float64(len(overlap)) / float64(len(reqWords)) * 60
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

func gpaScore(p *CandidateProfile, post Requirements) float64 {
	if post.MinGPA == 0 {
		return 100
	}
	if p == nil || p.GPA == 0 {
		return 0
	}
	if p.GPA >= post.MinGPA {
		return 100
	}
	return p.GPA / post.MinGPA * 100
}

func experienceScore(in Input) float64 {
	var required, actual int
	switch in.Kind {
	case KindJob:
		required = expLevelYears[in.Posting.ExperienceLevel]
		actual = in.YearsOfExperience
	case KindInternship:
		// Internship applications carry no years-of-experience field.
		required = parseRequiredYears(in.Posting.Experience)
	default:
		required = 0
		actual = in.YearsOfExperience
	}
	if required == 0 {
		if actual > 0 {
			return 100
		}
		return 50
	}
	score := float64(actual) / float64(required) * 100
	if score > 100 {
		return 100
	}
	return score
}

func locationScore(p *CandidateProfile, post Requirements) float64 {
	preferred := strings.TrimSpace(post.PreferredLocation)
	if preferred == "" {
		if post.IsRemote {
			return 100
		}
		return 50
	}
	loc := ""
	if p != nil {
		loc = strings.TrimSpace(p.Location)
	}
	if loc == "" {
		return 0
	}
	preferredLower := strings.ToLower(preferred)
	locLower := strings.ToLower(loc)
	if preferredLower == locLower {
		return 100
	}
	if strings.Contains(locLower, preferredLower) || strings.Contains(preferredLower, locLower) {
		return 80
	}
	return 0
}

func englishScore(p *CandidateProfile, post Requirements) float64 {
	if strings.TrimSpace(string(post.PreferredEnglish)) == "" {
		return 100
	}
	var level EnglishLevel
	if p != nil {
		level = p.EnglishLevel
	}
	if strings.TrimSpace(string(level)) == "" {
		return 0
	}
	required := post.PreferredEnglish.Rank()
	if required == 0 {
		// Unknown preference value, treat as unset.
		return 100
	}
	if level.Rank() >= required {
		return 100
	}
	return float64(level.Rank()) / float64(required) * 100
}

func internetScore(p *CandidateProfile, post Requirements) float64 {
	if strings.TrimSpace(string(post.PreferredInternet)) == "" {
		return 100
	}
	var quality InternetQuality
	if p != nil {
		quality = p.InternetQuality
	}
	if strings.TrimSpace(string(quality)) == "" {
		return 0
	}
	required := post.PreferredInternet.Rank()
	if required == 0 {
		return 100
	}
	if quality.Rank() >= required {
		return 100
	}
	return float64(quality.Rank()) / float64(required) * 100
}

func completenessScore(p *CandidateProfile) float64 {
	if p == nil {
		return 0
	}
	switch {
	case p.Completeness < 0:
		return 0
	case p.Completeness > 100:
		return 100
	default:
		return float64(p.Completeness)
	}
}

// assessmentScore returns 0 (not 100) when the posting lists no required
// skills. That is asymmetric with skillScore and matches the deployed
// behavior; see DESIGN.md before changing it.
func assessmentScore(p *CandidateProfile, post Requirements) float64 {
	required := parseSkillSet(post.RequiredSkills)
	if len(required) == 0 {
		return 0
	}
	var badges map[string]struct{}
	if p != nil {
		badges = normalizeSkillSet(p.BadgeSkills)
	}
	matched := intersect(required, badges)
	return float64(len(matched)) / float64(len(required)) * 100
}
