package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/metrics"
)

// DefaultPaymentMethod tags orders placed without an explicit payment method.
const DefaultPaymentMethod = "card"

// OrderService handles order placement and status tracking.
type OrderService struct {
	orders   OrderStore
	products ProductStore
}

func NewOrderService(orders OrderStore, products ProductStore) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// OrderItemInput names a product and quantity. Price and name are never
// accepted from the client; they are snapshotted from the catalog here.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// OrderInput is the validated payload for placing an order.
type OrderInput struct {
	Items               []OrderItemInput
	PaymentMethod       string
	DeliveryAddress     string
	SpecialInstructions string
}

// Create places an order for the given account. Each line item's unit price
// and product name are copied from the current catalog, and the total is the
// sum of price times quantity over those snapshots — later catalog changes
// leave the order untouched. New orders start pending.
func (s *OrderService) Create(ctx context.Context, account *models.Account, in OrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("order has no items: %w", ErrInvalidInput)
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	var total float64
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1: %w", ErrInvalidInput)
		}

		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Available {
			return nil, fmt.Errorf("product %s is not available: %w", product.ID, ErrInvalidInput)
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			Quantity:    item.Quantity,
			Price:       product.Price,
			ProductName: product.Name,
		})
		total += product.Price * float64(item.Quantity)
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = DefaultPaymentMethod
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:                  uuid.NewString(),
		UserID:              account.ID,
		Items:               items,
		TotalAmount:         total,
		Status:              models.StatusPending,
		PaymentMethod:       payment,
		DeliveryAddress:     in.DeliveryAddress,
		SpecialInstructions: in.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

// List returns the caller's orders, newest first. Admins see every order.
func (s *OrderService) List(ctx context.Context, account *models.Account) ([]models.Order, error) {
	if account.IsAdmin() {
		return s.orders.FindAll(ctx)
	}
	return s.orders.FindByUser(ctx, account.ID)
}

// Get returns one order. Customers may only fetch their own; anything else
// is ErrForbidden, not a 404, matching the reference behavior.
func (s *OrderService) Get(ctx context.Context, account *models.Account, id string) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !account.IsAdmin() && order.UserID != account.ID {
		return models.Order{}, fmt.Errorf("order %s: %w", id, ErrForbidden)
	}
	return order, nil
}

// UpdateStatus sets an order's status. Any state may be set to any other —
// the state machine deliberately has no transition matrix; admins correct
// mistakes by setting the right state directly.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q: %w", status, ErrInvalidInput)
	}
	return s.orders.UpdateStatus(ctx, id, status, time.Now().UTC())
}
