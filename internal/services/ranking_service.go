package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Saujankhnl/remotely-internship/internal/cache"
	pgrepo "github.com/Saujankhnl/remotely-internship/internal/repositories/postgres"
	"github.com/Saujankhnl/remotely-internship/internal/screening"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

// RankedApplicant is one row of the recruiter-facing candidate comparison.
// The display score is computed on the fly and never persisted.
type RankedApplicant struct {
	ApplicationID uint    `json:"application_id"`
	ApplicantID   string  `json:"applicant_id"`
	FullName      string  `json:"full_name"`
	Status        string  `json:"status"`
	DisplayScore  float64 `json:"display_score"`
	TopCandidate  bool    `json:"top_candidate"`
}

// RankingService orders a posting's applicants by the simplified display
// score for interactive review. It never mutates application state.
type RankingService interface {
	RankApplicants(ctx context.Context, postingID uint) ([]RankedApplicant, error)
}

type RankingDeps struct {
	Postings     pgrepo.PostingRepository
	Applications pgrepo.ApplicationRepository
	Profiles     pgrepo.ProfileRepository
	Badges       pgrepo.BadgeRepository

	Cache cache.Cache // optional
	TTL   time.Duration

	Logger *logrus.Logger
}

type rankingService struct {
	d RankingDeps
}

func NewRankingService(d RankingDeps) RankingService {
	if d.TTL <= 0 {
		d.TTL = 5 * time.Minute
	}
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	return &rankingService{d: d}
}

func (s *rankingService) RankApplicants(ctx context.Context, postingID uint) ([]RankedApplicant, error) {
	const op = "RankingService.RankApplicants"

	key := cache.RankingKey(postingID)
	if s.d.Cache != nil {
		var cached []RankedApplicant
		hit, err := s.d.Cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.d.Logger.WithError(err).WithField("posting_id", postingID).
				Warn("ranking cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	posting, err := s.d.Postings.GetByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "posting not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load posting", err)
	}

	apps, err := s.d.Applications.ListByPosting(ctx, postingID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}

	// Profiles and badges are fetched once per posting, not once per
	// candidate.
	ids := make([]string, 0, len(apps))
	for i := range apps {
		ids = append(ids, apps[i].ApplicantID)
	}
	profiles, err := s.d.Profiles.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load profiles", err)
	}
	badges, err := s.d.Badges.SkillsByUserIDs(ctx, ids)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load badges", err)
	}

	ranked := make([]RankedApplicant, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		score := screening.DisplayScore(screening.Input{
			Profile:           profiles[app.ApplicantID].Candidate(badges[app.ApplicantID]),
			Posting:           posting.Requirements(),
			Kind:              posting.ScreeningKind(),
			YearsOfExperience: app.YearsOfExperience,
		})
		ranked = append(ranked, RankedApplicant{
			ApplicationID: app.ID,
			ApplicantID:   app.ApplicantID,
			FullName:      app.FullName,
			Status:        app.Status,
			DisplayScore:  score,
		})
	}

	// Stable sort keeps application order (applied_at, id) as the tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DisplayScore > ranked[j].DisplayScore
	})
	if len(ranked) > 0 {
		ranked[0].TopCandidate = true
	}

	if s.d.Cache != nil {
		if err := s.d.Cache.SetJSON(ctx, key, ranked, s.d.TTL); err != nil {
			s.d.Logger.WithError(err).WithField("posting_id", postingID).
				Warn("ranking cache write failed")
		}
	}
	return ranked, nil
}
