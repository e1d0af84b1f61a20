package services

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Saujankhnl/remotely-internship/internal/cache"
	"github.com/Saujankhnl/remotely-internship/internal/models"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// screeningFixture wires a screening service over in-memory fakes with one
// job posting (required skills python+django, junior level, standard tier)
// and three applicants: a full skill match, a partial match, and one with
// no profile at all.
type screeningFixture struct {
	svc      ScreeningService
	postings *fakePostingRepo
	apps     *fakeApplicationRepo
	results  *fakeScreeningRepo
	changes  *fakeStatusChangeRepo
	notifier *fakeNotifier
	progress *fakeProgress
	cache    *fakeCache
}

func newScreeningFixture(autoScreen bool) *screeningFixture {
	posting := &models.Posting{
		ID:                1,
		CompanyID:         "company-1",
		Kind:              models.PostingJob,
		Title:             "Backend Developer",
		RequiredSkills:    "python, django",
		ExperienceLevel:   "junior",
		AutoScreenEnabled: autoScreen,
		Status:            models.PostingOpen,
	}
	postings := &fakePostingRepo{postings: map[uint]*models.Posting{1: posting}}

	apps := &fakeApplicationRepo{
		apps: []models.Application{
			{ID: 11, PostingID: 1, ApplicantID: "u-full", FullName: "Full Match", Status: models.StatusPending, YearsOfExperience: 2},
			{ID: 12, PostingID: 1, ApplicantID: "u-partial", FullName: "Partial Match", Status: models.StatusPending, YearsOfExperience: 2},
			{ID: 13, PostingID: 1, ApplicantID: "u-none", FullName: "No Profile", Status: models.StatusPending},
		},
		postings: postings.postings,
	}

	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"u-full":    {UserID: "u-full", Skills: []string{"python", "django"}, CompletenessScore: 40},
		"u-partial": {UserID: "u-partial", Skills: []string{"python", "react"}, CompletenessScore: 40},
	}}
	badges := &fakeBadgeRepo{skills: map[string][]string{}}

	f := &screeningFixture{
		postings: postings,
		apps:     apps,
		results:  newFakeScreeningRepo(),
		changes:  &fakeStatusChangeRepo{},
		notifier: &fakeNotifier{},
		progress: &fakeProgress{},
		cache:    newFakeCache(),
	}
	f.svc = NewScreeningService(ScreeningDeps{
		Applications: apps,
		Postings:     postings,
		Profiles:     profiles,
		Badges:       badges,
		Results:      f.results,
		Changes:      f.changes,
		Notifier:     f.notifier,
		Progress:     f.progress,
		Cache:        f.cache,
		Logger:       quietLogger(),
	})
	return f
}

func TestScreenApplication(t *testing.T) {
	f := newScreeningFixture(false)

	res, err := f.svc.ScreenApplication(context.Background(), 12)
	if err != nil {
		t.Fatalf("ScreenApplication() error = %v", err)
	}

	if res.TotalScore != 69.5 {
		t.Errorf("TotalScore = %v, want 69.5", res.TotalScore)
	}
	if res.SuggestedStatus != models.StatusPending {
		t.Errorf("SuggestedStatus = %q, want %q", res.SuggestedStatus, models.StatusPending)
	}
	if got := []string(res.MatchingSkills); !reflect.DeepEqual(got, []string{"python"}) {
		t.Errorf("MatchingSkills = %v, want [python]", got)
	}
	if got := []string(res.MissingSkills); !reflect.DeepEqual(got, []string{"django"}) {
		t.Errorf("MissingSkills = %v, want [django]", got)
	}

	saved, err := f.results.GetByApplicationID(context.Background(), 12)
	if err != nil {
		t.Fatalf("result not persisted: %v", err)
	}
	if saved.TotalScore != res.TotalScore {
		t.Errorf("persisted TotalScore = %v, want %v", saved.TotalScore, res.TotalScore)
	}
}

func TestScreenApplicationNotFound(t *testing.T) {
	f := newScreeningFixture(false)

	_, err := f.svc.ScreenApplication(context.Background(), 999)
	if !utils.IsNotFound(err) {
		t.Errorf("ScreenApplication(999) error = %v, want not-found", err)
	}
}

func TestScreenApplicationIsIdempotent(t *testing.T) {
	f := newScreeningFixture(false)

	first, err := f.svc.ScreenApplication(context.Background(), 11)
	if err != nil {
		t.Fatalf("first ScreenApplication() error = %v", err)
	}
	second, err := f.svc.ScreenApplication(context.Background(), 11)
	if err != nil {
		t.Fatalf("second ScreenApplication() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-screen changed the result:\nfirst  %+v\nsecond %+v", first, second)
	}
	if len(f.results.rows) != 1 {
		t.Errorf("result rows = %d, want 1", len(f.results.rows))
	}
}

func TestScreenPendingForPosting(t *testing.T) {
	f := newScreeningFixture(false)

	results, err := f.svc.ScreenPendingForPosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScreenPendingForPosting() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	// 100*0.30 + 100*0.10*2 + 100*0.15 + 50*0.05 + 100*0.10 + 100*0.05 + 40*0.05 + 0
	if results[0].TotalScore != 84.5 || results[0].SuggestedStatus != models.StatusShortlisted {
		t.Errorf("full match = (%v, %q), want (84.5, shortlisted)", results[0].TotalScore, results[0].SuggestedStatus)
	}
	if results[1].TotalScore != 69.5 || results[1].SuggestedStatus != models.StatusPending {
		t.Errorf("partial match = (%v, %q), want (69.5, pending)", results[1].TotalScore, results[1].SuggestedStatus)
	}
	if results[2].TotalScore != 37.5 || results[2].SuggestedStatus != models.StatusRejected {
		t.Errorf("no profile = (%v, %q), want (37.5, rejected)", results[2].TotalScore, results[2].SuggestedStatus)
	}

	if len(f.progress.events) != 3 {
		t.Errorf("progress events = %d, want 3", len(f.progress.events))
	}
	if last := f.progress.events[len(f.progress.events)-1]; last.Index != 3 || last.Total != 3 {
		t.Errorf("last progress event = %+v, want index 3 of 3", last)
	}
}

func TestScreenPendingForPostingSkipsFailedApplication(t *testing.T) {
	f := newScreeningFixture(false)
	f.results.failFor = map[uint]error{12: errors.New("connection reset")}

	results, err := f.svc.ScreenPendingForPosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("ScreenPendingForPosting() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 (one skipped)", len(results))
	}
	for _, r := range results {
		if r.ApplicationID == 12 {
			t.Errorf("failed application 12 present in results")
		}
	}
}

func TestApplyAutoScreeningDisabled(t *testing.T) {
	f := newScreeningFixture(false)

	updated, err := f.svc.ApplyAutoScreening(context.Background(), 1)
	if err != nil {
		t.Fatalf("ApplyAutoScreening() error = %v", err)
	}
	if updated == nil || len(updated) != 0 {
		t.Errorf("updated = %v, want empty non-nil slice", updated)
	}
	if len(f.apps.updates) != 0 {
		t.Errorf("status updates = %d, want 0", len(f.apps.updates))
	}
	if len(f.changes.changes) != 0 {
		t.Errorf("status change records = %d, want 0", len(f.changes.changes))
	}
}

func TestApplyAutoScreening(t *testing.T) {
	f := newScreeningFixture(true)

	updated, err := f.svc.ApplyAutoScreening(context.Background(), 1)
	if err != nil {
		t.Fatalf("ApplyAutoScreening() error = %v", err)
	}

	// Full match moves to shortlisted, no-profile moves to rejected; the
	// partial match's suggestion equals its current status and is untouched.
	if len(updated) != 2 {
		t.Fatalf("updated = %d applications, want 2", len(updated))
	}
	if updated[0].ID != 11 || updated[0].Status != models.StatusShortlisted {
		t.Errorf("updated[0] = (%d, %q), want (11, shortlisted)", updated[0].ID, updated[0].Status)
	}
	if updated[1].ID != 13 || updated[1].Status != models.StatusRejected {
		t.Errorf("updated[1] = (%d, %q), want (13, rejected)", updated[1].ID, updated[1].Status)
	}

	if len(f.changes.changes) != 2 {
		t.Fatalf("status change records = %d, want 2", len(f.changes.changes))
	}
	for _, c := range f.changes.changes {
		if c.Actor != nil {
			t.Errorf("change for application %d has actor %v, want nil (automated)", c.ApplicationID, *c.Actor)
		}
		if c.OldStatus != models.StatusPending {
			t.Errorf("change for application %d old status = %q, want pending", c.ApplicationID, c.OldStatus)
		}
		if !strings.HasPrefix(c.Note, "Auto-screened (score: ") || !strings.HasSuffix(c.Note, "%)") {
			t.Errorf("change note = %q, want auto-screened note", c.Note)
		}
	}
	if note := f.changes.changes[0].Note; note != "Auto-screened (score: 84.5%)" {
		t.Errorf("shortlist note = %q, want %q", note, "Auto-screened (score: 84.5%)")
	}

	if len(f.notifier.calls) != 2 {
		t.Errorf("notifications = %d, want 2", len(f.notifier.calls))
	}
	if got := f.cache.deleted; len(got) != 1 || got[0] != cache.RankingKey(1) {
		t.Errorf("cache invalidations = %v, want [%s]", got, cache.RankingKey(1))
	}
}

func TestApplyAutoScreeningSecondPassIsQuiet(t *testing.T) {
	f := newScreeningFixture(true)

	if _, err := f.svc.ApplyAutoScreening(context.Background(), 1); err != nil {
		t.Fatalf("first ApplyAutoScreening() error = %v", err)
	}
	updated, err := f.svc.ApplyAutoScreening(context.Background(), 1)
	if err != nil {
		t.Fatalf("second ApplyAutoScreening() error = %v", err)
	}

	if len(updated) != 0 {
		t.Errorf("second pass updated = %d applications, want 0", len(updated))
	}
	if len(f.changes.changes) != 2 {
		t.Errorf("status change records after second pass = %d, want 2", len(f.changes.changes))
	}
}

func TestGetResultNotFound(t *testing.T) {
	f := newScreeningFixture(false)

	_, err := f.svc.GetResult(context.Background(), 11)
	if !utils.IsNotFound(err) {
		t.Errorf("GetResult() before screening error = %v, want not-found", err)
	}
}

func TestStatusHistory(t *testing.T) {
	f := newScreeningFixture(true)

	if _, err := f.svc.ApplyAutoScreening(context.Background(), 1); err != nil {
		t.Fatalf("ApplyAutoScreening() error = %v", err)
	}

	history, err := f.svc.StatusHistory(context.Background(), 11)
	if err != nil {
		t.Fatalf("StatusHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(history))
	}
	if history[0].NewStatus != models.StatusShortlisted {
		t.Errorf("history[0].NewStatus = %q, want shortlisted", history[0].NewStatus)
	}

	if _, err := f.svc.StatusHistory(context.Background(), 999); !utils.IsNotFound(err) {
		t.Errorf("StatusHistory(999) error = %v, want not-found", err)
	}
}
