package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/database"
	"github.com/cafedelights/api/pkg/metrics"
)

// ProductRepository stores catalog entries.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(database.ColProducts)}
}

// Insert persists a new product.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveStoreOp(database.ColProducts, "insert", time.Now())

	if _, err := r.col.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FindByID looks up a product by id, available or not.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	defer metrics.ObserveStoreOp(database.ColProducts, "find", time.Now())

	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// FindAvailable lists available products, optionally limited to one category.
func (r *ProductRepository) FindAvailable(ctx context.Context, category models.Category) ([]models.Product, error) {
	defer metrics.ObserveStoreOp(database.ColProducts, "find", time.Now())

	filter := bson.M{"available": true}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter, nil)
}

// Search lists available products whose name or description contains q,
// case-insensitively. q is treated as a literal substring, not a pattern.
func (r *ProductRepository) Search(ctx context.Context, q string) ([]models.Product, error) {
	defer metrics.ObserveStoreOp(database.ColProducts, "find", time.Now())

	return r.find(ctx, searchFilter(q), nil)
}

// Replace overwrites the product document with the given id.
func (r *ProductRepository) Replace(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveStoreOp(database.ColProducts, "update", time.Now())

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return fmt.Errorf("replace product: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// CountAvailable counts products currently listed.
func (r *ProductRepository) CountAvailable(ctx context.Context) (int64, error) {
	defer metrics.ObserveStoreOp(database.ColProducts, "count", time.Now())

	n, err := r.col.CountDocuments(ctx, bson.M{"available": true})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// searchFilter builds the catalog search filter: available products whose
// name or description matches q as a case-insensitive literal substring.
func searchFilter(q string) bson.M {
	re := primitiveRegex(q)
	return bson.M{
		"available": true,
		"$or": bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
		},
	}
}

func primitiveRegex(q string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
}
