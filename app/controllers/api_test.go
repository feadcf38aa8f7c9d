package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cafedelights/api/app/controllers"
	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/app/routes"
	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/auth"
	"github.com/cafedelights/api/pkg/router"
)

// api is a fully wired HTTP surface over in-memory stores.
type api struct {
	t        *testing.T
	handler  http.Handler
	products *repositories.MemoryProductStore
	catalog  *services.CatalogService
}

func newAPI(t *testing.T) *api {
	t.Helper()

	accounts := repositories.NewMemoryAccountStore()
	products := repositories.NewMemoryProductStore()
	orders := repositories.NewMemoryOrderStore()
	reviews := repositories.NewMemoryReviewStore()

	tokens := auth.NewTokenService("test-secret")
	authSvc := services.NewAuthService(accounts, tokens)
	catalogSvc := services.NewCatalogService(products)
	orderSvc := services.NewOrderService(orders, products)
	reviewSvc := services.NewReviewService(reviews, products)
	dashSvc := services.NewDashboardService(products, orders, accounts)

	// Bootstrap admin, the same shape the seeder writes.
	require.NoError(t, accounts.Insert(context.Background(), &models.Account{
		ID:        "adm-1",
		Email:     "admin@cafe.com",
		Name:      "Admin",
		Role:      models.RoleAdmin,
		Password:  auth.HashPassword("admin123"),
		CreatedAt: time.Now().UTC(),
	}))

	r := router.New()
	routes.RegisterAPI(r, routes.Deps{
		Auth:      authSvc,
		Accounts:  controllers.NewAuthController(authSvc),
		Products:  controllers.NewProductController(catalogSvc),
		Orders:    controllers.NewOrderController(orderSvc),
		Reviews:   controllers.NewReviewController(reviewSvc),
		Dashboard: controllers.NewDashboardController(dashSvc),
	})

	return &api{t: t, handler: r.Handler(), products: products, catalog: catalogSvc}
}

func (a *api) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// data decodes the envelope's data field into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func (a *api) register(email, name, password string) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/register", "", map[string]string{
		"email": email, "name": name, "password": password,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var payload struct {
		Token string `json:"token"`
	}
	decode(a.t, rec, &payload)
	require.NotEmpty(a.t, payload.Token)
	return payload.Token
}

func (a *api) login(email, password string) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		Token string `json:"token"`
	}
	decode(a.t, rec, &payload)
	return payload.Token
}

func (a *api) addProduct(name, description string, price float64, category models.Category) models.Product {
	a.t.Helper()
	p, err := a.catalog.Create(context.Background(), services.ProductInput{
		Name: name, Description: description, Price: price, Category: category,
	})
	require.NoError(a.t, err)
	return *p
}

func TestRegisterLoginProfile(t *testing.T) {
	a := newAPI(t)

	token := a.register("jane@example.com", "Jane", "secret123")

	rec := a.do(http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Account
	decode(t, rec, &profile)
	require.Equal(t, "jane@example.com", profile.Email)
	require.Equal(t, models.RoleCustomer, profile.Role)
	require.NotContains(t, rec.Body.String(), auth.HashPassword("secret123"),
		"password digest must never appear in a response")

	// No token, no profile.
	rec = a.do(http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Fresh login works too.
	require.NotEmpty(t, a.login("jane@example.com", "secret123"))
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	a := newAPI(t)
	a.register("jane@example.com", "Jane", "secret123")

	rec := a.do(http.MethodPost, "/api/register", "", map[string]string{
		"email": "jane@example.com", "name": "Jane Again", "password": "other456",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodPost, "/api/register", "", map[string]string{
		"email": "not-an-email", "name": "", "password": "123",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Contains(t, envelope.Errors, "email")
	require.Contains(t, envelope.Errors, "name")
	require.Contains(t, envelope.Errors, "password")
}

func TestProductSearch(t *testing.T) {
	a := newAPI(t)
	a.addProduct("Croissant", "Buttery, flaky French pastry", 3.50, models.CategoryPastry)
	a.addProduct("Espresso", "Rich and bold", 2.50, models.CategoryCoffee)

	rec := a.do(http.MethodGet, "/api/search/products?q=cro", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var hits []models.Product
	decode(t, rec, &hits)
	require.Len(t, hits, 1)
	require.Equal(t, "Croissant", hits[0].Name)

	// Blank query matches nothing.
	rec = a.do(http.MethodGet, "/api/search/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &hits)
	require.Empty(t, hits)
}

func TestProductAdminGate(t *testing.T) {
	a := newAPI(t)
	customerToken := a.register("jane@example.com", "Jane", "secret123")

	body := map[string]interface{}{
		"name": "Espresso", "price": 2.50, "category": "coffee",
	}

	// Customers cannot create products, and nothing is written.
	rec := a.do(http.MethodPost, "/api/products", customerToken, body)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, 0, a.products.Len())

	// Unauthenticated callers get a 401 before the role check.
	rec = a.do(http.MethodPost, "/api/products", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	adminToken := a.login("admin@cafe.com", "admin123")
	rec = a.do(http.MethodPost, "/api/products", adminToken, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, 1, a.products.Len())

	var created models.Product
	decode(t, rec, &created)
	require.True(t, created.Available)

	// Replace it off-sale.
	rec = a.do(http.MethodPut, "/api/products/"+created.ID, adminToken, map[string]interface{}{
		"name": "Espresso", "price": 2.75, "category": "coffee", "available": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var replaced models.Product
	decode(t, rec, &replaced)
	require.False(t, replaced.Available)
	require.InDelta(t, 2.75, replaced.Price, 1e-9)
}

func TestOrderFlow(t *testing.T) {
	a := newAPI(t)
	espresso := a.addProduct("Espresso", "", 2.50, models.CategoryCoffee)
	cappuccino := a.addProduct("Cappuccino", "", 4.25, models.CategoryCoffee)

	janeToken := a.register("jane@example.com", "Jane", "secret123")
	bobToken := a.register("bob@example.com", "Bob", "secret456")

	rec := a.do(http.MethodPost, "/api/orders", janeToken, map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": espresso.ID, "quantity": 2},
			{"product_id": cappuccino.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order models.Order
	decode(t, rec, &order)
	require.InDelta(t, 9.25, order.TotalAmount, 1e-9)
	require.Equal(t, models.StatusPending, order.Status)
	require.Equal(t, "card", order.PaymentMethod)

	// Jane sees her order; Bob cannot fetch it.
	rec = a.do(http.MethodGet, "/api/orders/"+order.ID, janeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = a.do(http.MethodGet, "/api/orders/"+order.ID, bobToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = a.do(http.MethodGet, "/api/orders", bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bobOrders []models.Order
	decode(t, rec, &bobOrders)
	require.Empty(t, bobOrders)

	// Status updates are admin-only.
	statusBody := map[string]string{"status": "ready"}
	rec = a.do(http.MethodPut, fmt.Sprintf("/api/orders/%s/status", order.ID), janeToken, statusBody)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := a.login("admin@cafe.com", "admin123")
	rec = a.do(http.MethodPut, fmt.Sprintf("/api/orders/%s/status", order.ID), adminToken, statusBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(http.MethodGet, "/api/orders/"+order.ID, janeToken, nil)
	decode(t, rec, &order)
	require.Equal(t, models.StatusReady, order.Status)

	// Bad enum value is rejected at validation.
	rec = a.do(http.MethodPut, fmt.Sprintf("/api/orders/%s/status", order.ID), adminToken,
		map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReviewFlow(t *testing.T) {
	a := newAPI(t)
	espresso := a.addProduct("Espresso", "", 2.50, models.CategoryCoffee)
	token := a.register("jane@example.com", "Jane", "secret123")

	rec := a.do(http.MethodPost, "/api/reviews", token, map[string]interface{}{
		"product_id": espresso.ID, "rating": 5, "comment": "Perfect crema",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var review models.Review
	decode(t, rec, &review)
	require.Equal(t, "Jane", review.UserName)

	// Out-of-range rating fails validation before the service runs.
	rec = a.do(http.MethodPost, "/api/reviews", token, map[string]interface{}{
		"product_id": espresso.ID, "rating": 6,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Listing is public.
	rec = a.do(http.MethodGet, "/api/products/"+espresso.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []models.Review
	decode(t, rec, &reviews)
	require.Len(t, reviews, 1)
}

func TestDashboardStats(t *testing.T) {
	a := newAPI(t)
	a.addProduct("Espresso", "", 2.50, models.CategoryCoffee)
	customerToken := a.register("jane@example.com", "Jane", "secret123")

	rec := a.do(http.MethodGet, "/api/dashboard/stats", customerToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := a.login("admin@cafe.com", "admin123")
	rec = a.do(http.MethodGet, "/api/dashboard/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		TotalProducts int64 `json:"total_products"`
		TotalUsers    int64 `json:"total_users"`
	}
	decode(t, rec, &stats)
	require.EqualValues(t, 1, stats.TotalProducts)
	require.EqualValues(t, 1, stats.TotalUsers)
}

func TestRootMessage(t *testing.T) {
	a := newAPI(t)
	rec := a.do(http.MethodGet, "/api/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, "Welcome to Café Delights API", body["message"])
}

func TestProductZeroPrice(t *testing.T) {
	a := newAPI(t)
	adminToken := a.login("admin@cafe.com", "admin123")

	// Free samples are a real thing; zero is a legal price.
	rec := a.do(http.MethodPost, "/api/products", adminToken, map[string]interface{}{
		"name": "Tasting Sample", "price": 0, "category": "cookie",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Product
	decode(t, rec, &created)
	require.Zero(t, created.Price)

	// Omitting the price entirely also lands at zero.
	rec = a.do(http.MethodPost, "/api/products", adminToken, map[string]interface{}{
		"name": "Water", "category": "beverage",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Negative prices stay rejected at validation.
	rec = a.do(http.MethodPost, "/api/products", adminToken, map[string]interface{}{
		"name": "Espresso", "price": -1, "category": "coffee",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUnknownProduct404(t *testing.T) {
	a := newAPI(t)
	rec := a.do(http.MethodGet, "/api/products/no-such-id", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMalformedJSON(t *testing.T) {
	a := newAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
