package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/database"
	"github.com/cafedelights/api/pkg/metrics"
)

// OrderRepository stores purchase records. Orders are insert-once; the only
// mutation ever applied is a partial update of status plus updated_at.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(database.ColOrders)}
}

// Insert persists a new order.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	defer metrics.ObserveStoreOp(database.ColOrders, "insert", time.Now())

	if _, err := r.col.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// FindByID looks up an order by id.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	defer metrics.ObserveStoreOp(database.ColOrders, "find", time.Now())

	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// FindAll lists every order, newest first.
func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

// FindByUser lists one account's orders, newest first.
func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// UpdateStatus sets the order's status and bumps updated_at. No other field
// is ever touched after creation; line items stay snapshots.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, at time.Time) error {
	defer metrics.ObserveStoreOp(database.ColOrders, "update", time.Now())

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": at}},
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count counts all orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveStoreOp(database.ColOrders, "count", time.Now())

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// CountByStatus counts orders in the given state.
func (r *OrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	defer metrics.ObserveStoreOp(database.ColOrders, "count", time.Now())

	n, err := r.col.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	defer metrics.ObserveStoreOp(database.ColOrders, "find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}
