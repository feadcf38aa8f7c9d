package services

// Store interfaces consumed by the services. The mongo-backed repositories
// implement them for production; the memory stores in app/repositories back
// tests. Keeping the interfaces here, next to their consumers, keeps the
// dependency arrow pointing storage-ward.

import (
	"context"
	"time"

	"github.com/cafedelights/api/app/models"
)

// AccountStore is the account collection surface AuthService needs.
type AccountStore interface {
	Insert(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id string) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// ProductStore is the catalog collection surface.
type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (models.Product, error)
	FindAvailable(ctx context.Context, category models.Category) ([]models.Product, error)
	Search(ctx context.Context, q string) ([]models.Product, error)
	Replace(ctx context.Context, product *models.Product) error
	CountAvailable(ctx context.Context) (int64, error)
}

// OrderStore is the order collection surface.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, at time.Time) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
}

// ReviewStore is the review collection surface.
type ReviewStore interface {
	Insert(ctx context.Context, review *models.Review) error
	FindByProduct(ctx context.Context, productID string) ([]models.Review, error)
}
