package screening

import (
	"fmt"
	"math"
)

// StatusBands hold the composite-score thresholds that map a total onto a
// suggested application status.
type StatusBands struct {
	Shortlist float64 // total >= Shortlist suggests "shortlisted"
	Pending   float64 // Pending <= total < Shortlist suggests "pending", below "rejected"
}

// WeightProfile holds the coefficient of each sub-score in the composite.
// The nine weights of a profile must sum to exactly 1.00; newWeightProfile
// enforces that at package init so a drifted edit fails at startup instead
// of silently skewing every score.
type WeightProfile struct {
	Skill        float64
	Course       float64
	GPA          float64
	Experience   float64
	Location     float64
	English      float64
	Internet     float64
	Profile      float64
	Assessment   float64

	Bands StatusBands
}

// Sum returns the total of the nine sub-score weights.
func (w WeightProfile) Sum() float64 {
	return w.Skill + w.Course + w.GPA + w.Experience + w.Location +
		w.English + w.Internet + w.Profile + w.Assessment
}

func newWeightProfile(name string, w WeightProfile) WeightProfile {
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		panic(fmt.Sprintf("screening: %s weights sum to %.4f, want 1.00", name, w.Sum()))
	}
	return w
}

// PremiumWeights applies to premium postings: assessment badges count more,
// raw skill overlap slightly less, and the status bands are stricter.
var PremiumWeights = newWeightProfile("premium", WeightProfile{
	Skill:      0.25,
	Course:     0.10,
	GPA:        0.10,
	Experience: 0.15,
	Location:   0.05,
	English:    0.10,
	Internet:   0.05,
	Profile:    0.05,
	Assessment: 0.15,
	Bands:      StatusBands{Shortlist: 75, Pending: 50},
})

// StandardWeights applies to every non-premium posting.
var StandardWeights = newWeightProfile("standard", WeightProfile{
	Skill:      0.30,
	Course:     0.10,
	GPA:        0.10,
	Experience: 0.15,
	Location:   0.05,
	English:    0.10,
	Internet:   0.05,
	Profile:    0.05,
	Assessment: 0.10,
	Bands:      StatusBands{Shortlist: 70, Pending: 40},
})

func weightsFor(premium bool) WeightProfile {
	if premium {
		return PremiumWeights
	}
	return StandardWeights
}
