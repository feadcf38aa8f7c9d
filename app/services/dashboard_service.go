package services

import (
	"context"

	"github.com/cafedelights/api/app/models"
)

// DashboardService aggregates the admin dashboard counters.
type DashboardService struct {
	products ProductStore
	orders   OrderStore
	accounts AccountStore
}

func NewDashboardService(products ProductStore, orders OrderStore, accounts AccountStore) *DashboardService {
	return &DashboardService{products: products, orders: orders, accounts: accounts}
}

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	TotalProducts int64 `json:"total_products"`
	TotalOrders   int64 `json:"total_orders"`
	TotalUsers    int64 `json:"total_users"`
	PendingOrders int64 `json:"pending_orders"`
}

// Stats counts available products, all orders, customer accounts, and
// pending orders.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.accounts.CountByRole(ctx, models.RoleCustomer)
	if err != nil {
		return nil, err
	}
	pending, err := s.orders.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts: products,
		TotalOrders:   orders,
		TotalUsers:    customers,
		PendingOrders: pending,
	}, nil
}
