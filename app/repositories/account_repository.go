package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/database"
	"github.com/cafedelights/api/pkg/metrics"
)

// AccountRepository stores accounts. Email uniqueness is enforced by the
// unique index created in database.EnsureIndexes, not by handler code.
type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(database.ColAccounts)}
}

// Insert persists a new account. A unique-index collision on email is
// reported as ErrDuplicateKey.
func (r *AccountRepository) Insert(ctx context.Context, account *models.Account) error {
	defer metrics.ObserveStoreOp(database.ColAccounts, "insert", time.Now())

	if _, err := r.col.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert account %s: %w", account.Email, ErrDuplicateKey)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByID looks up an account by id.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (models.Account, error) {
	defer metrics.ObserveStoreOp(database.ColAccounts, "find", time.Now())

	var account models.Account
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Account{}, fmt.Errorf("account %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

// FindByEmail looks up an account by its exact (case-sensitive) email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	defer metrics.ObserveStoreOp(database.ColAccounts, "find", time.Now())

	var account models.Account
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Account{}, fmt.Errorf("account %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

// CountByRole counts accounts holding the given role.
func (r *AccountRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	defer metrics.ObserveStoreOp(database.ColAccounts, "count", time.Now())

	n, err := r.col.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}
