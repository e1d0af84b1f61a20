package screening

// EnglishLevel is the self-reported proficiency level from a candidate
// profile. Levels are ordered; threshold math uses the integer rank ratio,
// so the exact rank values matter.
type EnglishLevel string

const (
	EnglishBeginner     EnglishLevel = "beginner"
	EnglishIntermediate EnglishLevel = "intermediate"
	EnglishAdvanced     EnglishLevel = "advanced"
	EnglishFluent       EnglishLevel = "fluent"
	EnglishNative       EnglishLevel = "native"
)

var englishRanks = map[EnglishLevel]int{
	EnglishBeginner:     1,
	EnglishIntermediate: 2,
	EnglishAdvanced:     3,
	EnglishFluent:       4,
	EnglishNative:       5,
}

// Rank returns the ordinal rank of the level, or 0 for unknown/empty values.
func (l EnglishLevel) Rank() int { return englishRanks[l] }

// InternetQuality is the self-reported connection quality from a candidate
// profile, ordered poor < average < good < excellent.
type InternetQuality string

const (
	InternetPoor      InternetQuality = "poor"
	InternetAverage   InternetQuality = "average"
	InternetGood      InternetQuality = "good"
	InternetExcellent InternetQuality = "excellent"
)

var internetRanks = map[InternetQuality]int{
	InternetPoor:      1,
	InternetAverage:   2,
	InternetGood:      3,
	InternetExcellent: 4,
}

// Rank returns the ordinal rank of the quality, or 0 for unknown/empty values.
func (q InternetQuality) Rank() int { return internetRanks[q] }

// expLevelYears maps a job posting's experience-level requirement to the
// number of years it implies.
var expLevelYears = map[string]int{
	"fresher": 0,
	"junior":  1,
	"mid":     3,
	"senior":  5,
	"lead":    8,
}

// Kind distinguishes job applications (which carry years of experience)
// from internship applications (which do not). It is resolved once when the
// screening input is assembled; the calculators never inspect storage types.
type Kind string

const (
	KindJob        Kind = "job"
	KindInternship Kind = "internship"
)
