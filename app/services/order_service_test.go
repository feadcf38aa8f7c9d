package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/app/services"
)

var (
	customer      = &models.Account{ID: "cust-1", Email: "jane@example.com", Name: "Jane", Role: models.RoleCustomer}
	otherCustomer = &models.Account{ID: "cust-2", Email: "bob@example.com", Name: "Bob", Role: models.RoleCustomer}
	admin         = &models.Account{ID: "adm-1", Email: "admin@cafe.com", Name: "Admin", Role: models.RoleAdmin}
)

// orderFixture returns an order service backed by memory stores with an
// Espresso (2.50) and a Cappuccino (4.25) on the menu.
func orderFixture(t *testing.T) (*services.OrderService, *services.CatalogService, []models.Product) {
	t.Helper()
	products := repositories.NewMemoryProductStore()
	catalog := services.NewCatalogService(products)

	espresso, err := catalog.Create(context.Background(), services.ProductInput{
		Name: "Espresso", Price: 2.50, Category: models.CategoryCoffee,
	})
	require.NoError(t, err)
	cappuccino, err := catalog.Create(context.Background(), services.ProductInput{
		Name: "Cappuccino", Price: 4.25, Category: models.CategoryCoffee,
	})
	require.NoError(t, err)

	svc := services.NewOrderService(repositories.NewMemoryOrderStore(), products)
	return svc, catalog, []models.Product{*espresso, *cappuccino}
}

func TestOrderCreateComputesTotal(t *testing.T) {
	svc, _, menu := orderFixture(t)
	espresso, cappuccino := menu[0], menu[1]

	order, err := svc.Create(context.Background(), customer, services.OrderInput{
		Items: []services.OrderItemInput{
			{ProductID: espresso.ID, Quantity: 2},
			{ProductID: cappuccino.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, customer.ID, order.UserID)
	require.Equal(t, models.StatusPending, order.Status)
	require.Equal(t, "card", order.PaymentMethod)
	require.InDelta(t, 9.25, order.TotalAmount, 1e-9)

	require.Len(t, order.Items, 2)
	require.Equal(t, "Espresso", order.Items[0].ProductName)
	require.InDelta(t, 2.50, order.Items[0].Price, 1e-9)
}

func TestOrderSnapshotsPriceAndName(t *testing.T) {
	svc, catalog, menu := orderFixture(t)
	espresso := menu[0]
	ctx := context.Background()

	order, err := svc.Create(ctx, customer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Reprice and rename the product after the order is placed.
	_, err = catalog.Replace(ctx, espresso.ID, services.ProductInput{
		Name: "Ristretto", Price: 99, Category: models.CategoryCoffee,
	}, true)
	require.NoError(t, err)

	stored, err := svc.Get(ctx, customer, order.ID)
	require.NoError(t, err)
	require.Equal(t, "Espresso", stored.Items[0].ProductName)
	require.InDelta(t, 2.50, stored.Items[0].Price, 1e-9)
	require.InDelta(t, 2.50, stored.TotalAmount, 1e-9)
}

func TestOrderCreateRejectsBadInput(t *testing.T) {
	svc, catalog, menu := orderFixture(t)
	espresso := menu[0]
	ctx := context.Background()

	_, err := svc.Create(ctx, customer, services.OrderInput{})
	require.ErrorIs(t, err, services.ErrInvalidInput, "empty order")

	_, err = svc.Create(ctx, customer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: espresso.ID, Quantity: 0}},
	})
	require.ErrorIs(t, err, services.ErrInvalidInput, "zero quantity")

	_, err = svc.Create(ctx, customer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: "no-such-product", Quantity: 1}},
	})
	require.ErrorIs(t, err, repositories.ErrNotFound, "unknown product")

	// Off-sale products cannot be ordered.
	_, err = catalog.Replace(ctx, espresso.ID, services.ProductInput{
		Name: "Espresso", Price: 2.50, Category: models.CategoryCoffee,
	}, false)
	require.NoError(t, err)
	_, err = svc.Create(ctx, customer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: espresso.ID, Quantity: 1}},
	})
	require.ErrorIs(t, err, services.ErrInvalidInput, "unavailable product")
}

func TestOrderVisibility(t *testing.T) {
	svc, _, menu := orderFixture(t)
	espresso := menu[0]
	ctx := context.Background()

	mine, err := svc.Create(ctx, customer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	theirs, err := svc.Create(ctx, otherCustomer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Customers list only their own orders.
	orders, err := svc.List(ctx, customer)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, mine.ID, orders[0].ID)

	// Admins list everything.
	orders, err = svc.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Fetching someone else's order is forbidden, not a 404.
	_, err = svc.Get(ctx, customer, theirs.ID)
	require.ErrorIs(t, err, services.ErrForbidden)

	got, err := svc.Get(ctx, admin, theirs.ID)
	require.NoError(t, err)
	require.Equal(t, theirs.ID, got.ID)
}

func TestOrderUpdateStatus(t *testing.T) {
	svc, _, menu := orderFixture(t)
	espresso := menu[0]
	ctx := context.Background()

	order, err := svc.Create(ctx, customer, services.OrderInput{
		Items: []services.OrderItemInput{{ProductID: espresso.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, order.ID, models.StatusReady))

	got, err := svc.Get(ctx, customer, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusReady, got.Status)
	require.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	// Any state can move to any other, including backwards.
	require.NoError(t, svc.UpdateStatus(ctx, order.ID, models.StatusPending))

	require.ErrorIs(t, svc.UpdateStatus(ctx, order.ID, "shipped"), services.ErrInvalidInput)
	require.ErrorIs(t, svc.UpdateStatus(ctx, "no-such-order", models.StatusReady), repositories.ErrNotFound)
}
