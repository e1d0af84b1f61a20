package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	pgrepo "github.com/Saujankhnl/remotely-internship/internal/repositories/postgres"
	"github.com/Saujankhnl/remotely-internship/internal/services"
)

// AutoScreenWorker periodically applies auto-screening across every open
// posting that opted in. Each posting is handled independently; one failing
// posting does not stop the sweep.
type AutoScreenWorker struct {
	Postings  pgrepo.PostingRepository
	Screening services.ScreeningService
	Logger    *logrus.Logger
	Interval  time.Duration
}

func (w *AutoScreenWorker) Start(ctx context.Context) error {
	if w.Postings == nil || w.Screening == nil {
		return errors.New("AutoScreenWorker missing dependency: Postings/Screening must be set")
	}
	if w.Interval <= 0 {
		w.Interval = 10 * time.Minute
	}
	if w.Logger == nil {
		w.Logger = logrus.New()
	}

	go w.run(ctx)
	return nil
}

func (w *AutoScreenWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *AutoScreenWorker) sweep(ctx context.Context) {
	postings, err := w.Postings.ListAutoScreenEnabled(ctx)
	if err != nil {
		w.Logger.WithError(err).Error("auto-screen sweep: failed to list postings")
		return
	}

	for _, p := range postings {
		updated, err := w.Screening.ApplyAutoScreening(ctx, p.ID)
		if err != nil {
			w.Logger.WithError(err).WithField("posting_id", p.ID).
				Error("auto-screen sweep: posting failed")
			continue
		}
		if len(updated) > 0 {
			w.Logger.WithFields(logrus.Fields{
				"posting_id": p.ID,
				"updated":    len(updated),
			}).Info("auto-screen sweep: statuses applied")
		}
	}
}
