package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Saujankhnl/remotely-internship/internal/cache"
	"github.com/Saujankhnl/remotely-internship/internal/models"
	mongorepo "github.com/Saujankhnl/remotely-internship/internal/repositories/mongo"
	pgrepo "github.com/Saujankhnl/remotely-internship/internal/repositories/postgres"
	"github.com/Saujankhnl/remotely-internship/internal/screening"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

// ScreeningService is the orchestrator around the pure screening core: it
// loads the data a pass needs, persists results, and (for postings that
// opted in) applies suggested statuses with an audit trail.
type ScreeningService interface {
	ScreenApplication(ctx context.Context, applicationID uint) (*models.ScreeningResult, error)
	ScreenPendingForPosting(ctx context.Context, postingID uint) ([]models.ScreeningResult, error)
	ApplyAutoScreening(ctx context.Context, postingID uint) ([]models.Application, error)
	GetResult(ctx context.Context, applicationID uint) (*models.ScreeningResult, error)
	StatusHistory(ctx context.Context, applicationID uint) ([]models.StatusChange, error)
}

type ScreeningDeps struct {
	Applications pgrepo.ApplicationRepository
	Postings     pgrepo.PostingRepository
	Profiles     pgrepo.ProfileRepository
	Badges       pgrepo.BadgeRepository
	Results      pgrepo.ScreeningRepository
	Changes      mongorepo.StatusChangeRepository

	Notifier NotificationService // optional, best effort
	Mailer   EmailService        // optional, best effort
	Progress ProgressPublisher   // optional, best effort
	Cache    cache.Cache         // optional, ranking invalidation

	Logger *logrus.Logger
}

type screeningService struct {
	d ScreeningDeps
}

func NewScreeningService(d ScreeningDeps) ScreeningService {
	if d.Logger == nil {
		d.Logger = logrus.New()
	}
	return &screeningService{d: d}
}

func (s *screeningService) ScreenApplication(ctx context.Context, applicationID uint) (*models.ScreeningResult, error) {
	const op = "ScreeningService.ScreenApplication"

	app, err := s.d.Applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load application", err)
	}

	profile, badges, err := s.loadCandidate(ctx, app.ApplicantID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load candidate data", err)
	}

	res, err := s.screenOne(ctx, app, &app.Posting, profile, badges)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist screening result", err)
	}
	return res, nil
}

func (s *screeningService) ScreenPendingForPosting(ctx context.Context, postingID uint) ([]models.ScreeningResult, error) {
	const op = "ScreeningService.ScreenPendingForPosting"

	posting, apps, profiles, badges, err := s.loadBatch(ctx, postingID, op)
	if err != nil {
		return nil, err
	}

	results := make([]models.ScreeningResult, 0, len(apps))
	for i := range apps {
		app := &apps[i]
		res, err := s.screenOne(ctx, app, posting, profiles[app.ApplicantID], badges[app.ApplicantID])
		if err != nil {
			// One bad application must not abort the batch.
			s.d.Logger.WithError(err).WithFields(logrus.Fields{
				"application_id": app.ID,
				"posting_id":     postingID,
			}).Error("screening failed for application")
			continue
		}
		results = append(results, *res)
		s.publishProgress(ctx, ScreeningProgress{
			PostingID:       postingID,
			ApplicationID:   app.ID,
			Index:           i + 1,
			Total:           len(apps),
			TotalScore:      res.TotalScore,
			SuggestedStatus: res.SuggestedStatus,
		})
	}

	s.invalidateRanking(ctx, postingID)
	return results, nil
}

func (s *screeningService) ApplyAutoScreening(ctx context.Context, postingID uint) ([]models.Application, error) {
	const op = "ScreeningService.ApplyAutoScreening"

	posting, err := s.d.Postings.GetByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "posting not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load posting", err)
	}
	if !posting.AutoScreenEnabled {
		return []models.Application{}, nil
	}

	apps, err := s.d.Applications.ListPendingByPosting(ctx, postingID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list pending applications", err)
	}
	profiles, badges, err := s.loadCandidates(ctx, apps)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load candidate data", err)
	}

	updated := make([]models.Application, 0)
	for i := range apps {
		app := &apps[i]
		res, err := s.screenOne(ctx, app, posting, profiles[app.ApplicantID], badges[app.ApplicantID])
		if err != nil {
			s.d.Logger.WithError(err).WithFields(logrus.Fields{
				"application_id": app.ID,
				"posting_id":     postingID,
			}).Error("auto-screening failed for application")
			continue
		}
		if res.SuggestedStatus == "" || res.SuggestedStatus == app.Status {
			continue
		}

		oldStatus := app.Status
		if err := s.d.Applications.UpdateStatus(ctx, app.ID, res.SuggestedStatus); err != nil {
			s.d.Logger.WithError(err).WithField("application_id", app.ID).
				Error("failed to apply suggested status")
			continue
		}
		app.Status = res.SuggestedStatus

		// Exactly one audit entry per mutation, actor nil = automated.
		change := &models.StatusChange{
			ApplicationID: app.ID,
			OldStatus:     oldStatus,
			NewStatus:     res.SuggestedStatus,
			Actor:         nil,
			Note:          "Auto-screened (score: " + screening.FormatScore(res.TotalScore) + "%)",
		}
		if err := s.d.Changes.Append(ctx, change); err != nil {
			s.d.Logger.WithError(err).WithField("application_id", app.ID).
				Error("failed to append status change record")
		}

		s.notifyStatusChange(ctx, app, posting, oldStatus, res.SuggestedStatus)
		updated = append(updated, *app)
	}

	s.invalidateRanking(ctx, postingID)
	return updated, nil
}

func (s *screeningService) GetResult(ctx context.Context, applicationID uint) (*models.ScreeningResult, error) {
	const op = "ScreeningService.GetResult"

	res, err := s.d.Results.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "screening result not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get screening result", err)
	}
	return res, nil
}

func (s *screeningService) StatusHistory(ctx context.Context, applicationID uint) ([]models.StatusChange, error) {
	const op = "ScreeningService.StatusHistory"

	if _, err := s.d.Applications.GetByID(ctx, applicationID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load application", err)
	}

	changes, err := s.d.Changes.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list status changes", err)
	}
	return changes, nil
}

// screenOne evaluates one application and persists the breakdown together
// with the application's summary fields. Idempotent: identical inputs
// rewrite identical values into the single result row.
func (s *screeningService) screenOne(ctx context.Context, app *models.Application, posting *models.Posting, profile *models.Profile, badgeSkills []string) (*models.ScreeningResult, error) {
	b := screening.Evaluate(screening.Input{
		Profile:           profile.Candidate(badgeSkills),
		Posting:           posting.Requirements(),
		Kind:              posting.ScreeningKind(),
		YearsOfExperience: app.YearsOfExperience,
	})

	res := models.NewScreeningResult(app.ID, b)
	if err := s.d.Results.Save(ctx, res); err != nil {
		return nil, err
	}
	app.MatchScore = b.TotalScore
	app.AutoStatus = b.SuggestedStatus
	return res, nil
}

func (s *screeningService) loadCandidate(ctx context.Context, userID string) (*models.Profile, []string, error) {
	profile, err := s.d.Profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, nil, err
	}
	badges, err := s.d.Badges.SkillsByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, badges, nil
}

// loadCandidates batch-fetches profiles and badge skills for a set of
// applications, one query each.
func (s *screeningService) loadCandidates(ctx context.Context, apps []models.Application) (map[string]*models.Profile, map[string][]string, error) {
	ids := make([]string, 0, len(apps))
	seen := make(map[string]struct{}, len(apps))
	for i := range apps {
		if _, ok := seen[apps[i].ApplicantID]; ok {
			continue
		}
		seen[apps[i].ApplicantID] = struct{}{}
		ids = append(ids, apps[i].ApplicantID)
	}

	profiles, err := s.d.Profiles.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	badges, err := s.d.Badges.SkillsByUserIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return profiles, badges, nil
}

func (s *screeningService) loadBatch(ctx context.Context, postingID uint, op string) (*models.Posting, []models.Application, map[string]*models.Profile, map[string][]string, error) {
	posting, err := s.d.Postings.GetByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil, nil, nil, utils.E(utils.CodeNotFound, op, "posting not found", err)
		}
		return nil, nil, nil, nil, utils.E(utils.CodeInternal, op, "failed to load posting", err)
	}
	apps, err := s.d.Applications.ListPendingByPosting(ctx, postingID)
	if err != nil {
		return nil, nil, nil, nil, utils.E(utils.CodeInternal, op, "failed to list pending applications", err)
	}
	profiles, badges, err := s.loadCandidates(ctx, apps)
	if err != nil {
		return nil, nil, nil, nil, utils.E(utils.CodeInternal, op, "failed to load candidate data", err)
	}
	return posting, apps, profiles, badges, nil
}

func (s *screeningService) notifyStatusChange(ctx context.Context, app *models.Application, posting *models.Posting, oldStatus, newStatus string) {
	// Notification and email are fire-and-forget: their failure must never
	// roll back the status mutation.
	if s.d.Notifier != nil {
		if err := s.d.Notifier.NotifyStatusChange(ctx, app, posting, oldStatus, newStatus); err != nil {
			s.d.Logger.WithError(err).WithField("application_id", app.ID).
				Warn("failed to create status change notification")
		}
	}
	if s.d.Mailer != nil {
		if err := s.d.Mailer.SendStatusChange(ctx, app, posting, oldStatus, newStatus); err != nil {
			s.d.Logger.WithError(err).WithField("application_id", app.ID).
				Warn("failed to send status change email")
		}
	}
}

func (s *screeningService) publishProgress(ctx context.Context, ev ScreeningProgress) {
	if s.d.Progress == nil {
		return
	}
	if err := s.d.Progress.PublishProgress(ctx, ev); err != nil {
		s.d.Logger.WithError(err).WithField("posting_id", ev.PostingID).
			Debug("failed to publish screening progress")
	}
}

func (s *screeningService) invalidateRanking(ctx context.Context, postingID uint) {
	if s.d.Cache == nil {
		return
	}
	if err := s.d.Cache.Del(ctx, cache.RankingKey(postingID)); err != nil {
		s.d.Logger.WithError(err).WithField("posting_id", postingID).
			Warn("failed to invalidate ranking cache")
	}
}
