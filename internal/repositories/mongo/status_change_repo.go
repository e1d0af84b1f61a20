package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Saujankhnl/remotely-internship/internal/models"
)

// StatusChangeRepository is the append-only audit trail for application
// status mutations. Entries are never updated or deleted.
type StatusChangeRepository interface {
	Append(ctx context.Context, sc *models.StatusChange) error
	ListByApplication(ctx context.Context, applicationID uint) ([]models.StatusChange, error)
}

type statusChangeRepo struct {
	col *mongo.Collection
}

func NewStatusChangeRepo(db *mongo.Database) StatusChangeRepository {
	return &statusChangeRepo{col: db.Collection("status_changes")}
}

func (r *statusChangeRepo) Append(ctx context.Context, sc *models.StatusChange) error {
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, sc)
	return err
}

func (r *statusChangeRepo) ListByApplication(ctx context.Context, applicationID uint) ([]models.StatusChange, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"application_id": applicationID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var changes []models.StatusChange
	if err := cur.All(ctx, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}
