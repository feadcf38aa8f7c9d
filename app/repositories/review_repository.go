package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/database"
	"github.com/cafedelights/api/pkg/metrics"
)

// ReviewRepository stores product reviews. Insert-only; reviews are never
// updated or deleted.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(database.ColReviews)}
}

// Insert persists a new review.
func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) error {
	defer metrics.ObserveStoreOp(database.ColReviews, "insert", time.Now())

	if _, err := r.col.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// FindByProduct lists a product's reviews, newest first.
func (r *ReviewRepository) FindByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	defer metrics.ObserveStoreOp(database.ColReviews, "find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
