// Package routes wires controllers onto the router. Route names follow the
// "resource.action" convention and are used by the route:list command.
package routes

import (
	"net/http"

	"github.com/cafedelights/api/app/controllers"
	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/middleware"
	"github.com/cafedelights/api/pkg/rbac"
	"github.com/cafedelights/api/pkg/response"
	"github.com/cafedelights/api/pkg/router"
)

// Deps holds everything RegisterAPI needs to mount the HTTP surface.
type Deps struct {
	Auth      middleware.Authenticator
	Accounts  *controllers.AuthController
	Products  *controllers.ProductController
	Orders    *controllers.OrderController
	Reviews   *controllers.ReviewController
	Dashboard *controllers.DashboardController
}

// RegisterAPI mounts the /api surface: a public group for the catalog and
// credentials, an authenticated group for profile, orders, and reviews, and
// an admin group gated by role.
func RegisterAPI(r *router.Router, d Deps) {
	api := r.Group("/api")

	api.Get("/", "api.root", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"message": "Welcome to Café Delights API"})
	})

	api.Post("/register", "auth.register", d.Accounts.Register)
	api.Post("/login", "auth.login", d.Accounts.Login)

	api.Get("/products", "products.list", d.Products.List)
	api.Get("/search/products", "products.search", d.Products.Search)
	api.Get("/products/{id}", "products.get", d.Products.Get)
	api.Get("/products/{id}/reviews", "reviews.list", d.Reviews.ListForProduct)

	authed := api.Group("", middleware.Auth(d.Auth))
	authed.Get("/profile", "auth.profile", d.Accounts.Profile)
	authed.Post("/orders", "orders.create", d.Orders.Create)
	authed.Get("/orders", "orders.list", d.Orders.List)
	authed.Get("/orders/{id}", "orders.get", d.Orders.Get)
	authed.Post("/reviews", "reviews.create", d.Reviews.Create)

	admin := authed.Group("", rbac.HasRole(models.RoleAdmin))
	admin.Post("/products", "products.create", d.Products.Create)
	admin.Put("/products/{id}", "products.replace", d.Products.Replace)
	admin.Put("/orders/{id}/status", "orders.status", d.Orders.UpdateStatus)
	admin.Get("/dashboard/stats", "dashboard.stats", d.Dashboard.Stats)
}
