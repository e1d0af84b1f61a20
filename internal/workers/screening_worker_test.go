package workers

import (
	"context"
	"errors"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Saujankhnl/remotely-internship/internal/models"
)

type stubPostings struct {
	postings []models.Posting
	err      error
}

func (s *stubPostings) GetByID(ctx context.Context, id uint) (*models.Posting, error) {
	for i := range s.postings {
		if s.postings[i].ID == id {
			return &s.postings[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubPostings) ListAutoScreenEnabled(ctx context.Context) ([]models.Posting, error) {
	return s.postings, s.err
}

type stubScreening struct {
	applied []uint
	failFor map[uint]error
}

func (s *stubScreening) ScreenApplication(ctx context.Context, applicationID uint) (*models.ScreeningResult, error) {
	return nil, errors.New("not used")
}

func (s *stubScreening) ScreenPendingForPosting(ctx context.Context, postingID uint) ([]models.ScreeningResult, error) {
	return nil, errors.New("not used")
}

func (s *stubScreening) ApplyAutoScreening(ctx context.Context, postingID uint) ([]models.Application, error) {
	if err := s.failFor[postingID]; err != nil {
		return nil, err
	}
	s.applied = append(s.applied, postingID)
	return []models.Application{{PostingID: postingID}}, nil
}

func (s *stubScreening) GetResult(ctx context.Context, applicationID uint) (*models.ScreeningResult, error) {
	return nil, errors.New("not used")
}

func (s *stubScreening) StatusHistory(ctx context.Context, applicationID uint) ([]models.StatusChange, error) {
	return nil, errors.New("not used")
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStartRequiresDependencies(t *testing.T) {
	w := &AutoScreenWorker{}
	if err := w.Start(context.Background()); err == nil {
		t.Error("Start() with no dependencies returned nil error")
	}
}

func TestSweepCoversEveryPosting(t *testing.T) {
	screening := &stubScreening{}
	w := &AutoScreenWorker{
		Postings: &stubPostings{postings: []models.Posting{
			{ID: 1, AutoScreenEnabled: true, Status: models.PostingOpen},
			{ID: 2, AutoScreenEnabled: true, Status: models.PostingOpen},
		}},
		Screening: screening,
		Logger:    quietLogger(),
	}

	w.sweep(context.Background())

	got := append([]uint(nil), screening.applied...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("applied postings = %v, want [1 2]", got)
	}
}

func TestSweepContinuesPastFailingPosting(t *testing.T) {
	screening := &stubScreening{failFor: map[uint]error{1: errors.New("boom")}}
	w := &AutoScreenWorker{
		Postings: &stubPostings{postings: []models.Posting{
			{ID: 1, AutoScreenEnabled: true, Status: models.PostingOpen},
			{ID: 2, AutoScreenEnabled: true, Status: models.PostingOpen},
		}},
		Screening: screening,
		Logger:    quietLogger(),
	}

	w.sweep(context.Background())

	if len(screening.applied) != 1 || screening.applied[0] != 2 {
		t.Errorf("applied postings = %v, want [2]", screening.applied)
	}
}

func TestSweepSkipsWhenListingFails(t *testing.T) {
	screening := &stubScreening{}
	w := &AutoScreenWorker{
		Postings:  &stubPostings{err: errors.New("db down")},
		Screening: screening,
		Logger:    quietLogger(),
	}

	w.sweep(context.Background())

	if len(screening.applied) != 0 {
		t.Errorf("applied postings = %v, want none", screening.applied)
	}
}

func TestStartDefaultsInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := &AutoScreenWorker{
		Postings:  &stubPostings{},
		Screening: &stubScreening{},
		Logger:    quietLogger(),
	}
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if w.Interval != 10*time.Minute {
		t.Errorf("Interval = %v, want 10m default", w.Interval)
	}
}
