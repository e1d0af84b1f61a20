package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Saujankhnl/remotely-internship/internal/models"
	"github.com/Saujankhnl/remotely-internship/internal/utils"
)

// Hand-written in-memory fakes for the repository interfaces. They mirror
// the real repositories' contracts: ErrNotFound sentinels, pending-only
// filtering and applied-at ordering.

type fakePostingRepo struct {
	postings map[uint]*models.Posting
}

func (f *fakePostingRepo) GetByID(ctx context.Context, id uint) (*models.Posting, error) {
	p, ok := f.postings[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostingRepo) ListAutoScreenEnabled(ctx context.Context) ([]models.Posting, error) {
	out := make([]models.Posting, 0)
	for _, p := range f.postings {
		if p.AutoScreenEnabled && p.Status == models.PostingOpen {
			out = append(out, *p)
		}
	}
	return out, nil
}

type statusUpdate struct {
	ID     uint
	Status string
}

type fakeApplicationRepo struct {
	apps     []models.Application
	postings map[uint]*models.Posting // for GetByID preload

	updates   []statusUpdate
	updateErr error
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	for i := range f.apps {
		if f.apps[i].ID == id {
			a := f.apps[i]
			if p, ok := f.postings[a.PostingID]; ok {
				a.Posting = *p
			}
			return &a, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeApplicationRepo) ListPendingByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	out := make([]models.Application, 0)
	for i := range f.apps {
		if f.apps[i].PostingID == postingID && f.apps[i].Status == models.StatusPending {
			out = append(out, f.apps[i])
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByPosting(ctx context.Context, postingID uint) ([]models.Application, error) {
	out := make([]models.Application, 0)
	for i := range f.apps {
		if f.apps[i].PostingID == postingID {
			out = append(out, f.apps[i])
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
		}
	}
	f.updates = append(f.updates, statusUpdate{ID: id, Status: status})
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.Profile, error) {
	out := make(map[string]*models.Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := f.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type fakeBadgeRepo struct {
	skills map[string][]string
}

func (f *fakeBadgeRepo) SkillsByUserID(ctx context.Context, userID string) ([]string, error) {
	return f.skills[userID], nil
}

func (f *fakeBadgeRepo) SkillsByUserIDs(ctx context.Context, userIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(userIDs))
	for _, id := range userIDs {
		if s, ok := f.skills[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type fakeScreeningRepo struct {
	rows      map[uint]models.ScreeningResult
	saveCount int
	failFor   map[uint]error
}

func newFakeScreeningRepo() *fakeScreeningRepo {
	return &fakeScreeningRepo{rows: make(map[uint]models.ScreeningResult)}
}

func (f *fakeScreeningRepo) Save(ctx context.Context, res *models.ScreeningResult) error {
	if err := f.failFor[res.ApplicationID]; err != nil {
		return err
	}
	f.saveCount++
	f.rows[res.ApplicationID] = *res
	return nil
}

func (f *fakeScreeningRepo) GetByApplicationID(ctx context.Context, applicationID uint) (*models.ScreeningResult, error) {
	row, ok := f.rows[applicationID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &row, nil
}

type fakeStatusChangeRepo struct {
	changes []models.StatusChange
}

func (f *fakeStatusChangeRepo) Append(ctx context.Context, sc *models.StatusChange) error {
	sc.CreatedAt = time.Now().UTC()
	f.changes = append(f.changes, *sc)
	return nil
}

func (f *fakeStatusChangeRepo) ListByApplication(ctx context.Context, applicationID uint) ([]models.StatusChange, error) {
	out := make([]models.StatusChange, 0)
	for _, c := range f.changes {
		if c.ApplicationID == applicationID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeCache struct {
	store   map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.store[key] = b
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.store, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

type notifyCall struct {
	ApplicationID uint
	OldStatus     string
	NewStatus     string
}

type fakeNotifier struct {
	calls []notifyCall
}

func (f *fakeNotifier) NotifyStatusChange(ctx context.Context, app *models.Application, posting *models.Posting, oldStatus, newStatus string) error {
	f.calls = append(f.calls, notifyCall{ApplicationID: app.ID, OldStatus: oldStatus, NewStatus: newStatus})
	return nil
}

type fakeProgress struct {
	events []ScreeningProgress
}

func (f *fakeProgress) PublishProgress(ctx context.Context, ev ScreeningProgress) error {
	f.events = append(f.events, ev)
	return nil
}
