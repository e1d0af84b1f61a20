package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ScreeningProgress is one per-application event emitted during a bulk
// screening pass, consumed by the recruiter's websocket view.
type ScreeningProgress struct {
	PostingID       uint    `json:"posting_id"`
	ApplicationID   uint    `json:"application_id"`
	Index           int     `json:"index"`
	Total           int     `json:"total"`
	TotalScore      float64 `json:"total_score"`
	SuggestedStatus string  `json:"suggested_status"`
}

type ProgressPublisher interface {
	PublishProgress(ctx context.Context, ev ScreeningProgress) error
}

// ProgressChannel names the redis pub/sub channel carrying screening
// progress for one posting.
func ProgressChannel(postingID uint) string {
	return "posting:" + strconv.FormatUint(uint64(postingID), 10) + ":screening"
}

type redisProgress struct {
	rdb *redis.Client
}

func NewRedisProgressPublisher(rdb *redis.Client) ProgressPublisher {
	return &redisProgress{rdb: rdb}
}

func (p *redisProgress) PublishProgress(ctx context.Context, ev ScreeningProgress) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, ProgressChannel(ev.PostingID), b).Err()
}
