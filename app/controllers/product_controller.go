package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/bind"
	"github.com/cafedelights/api/pkg/response"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

type productRequest struct {
	Name            string             `json:"name" validate:"required"`
	Description     string             `json:"description" validate:"nullable"`
	Price           float64            `json:"price" validate:"gte=0"`
	Category        string             `json:"category" validate:"required,in=coffee,tea,pastry,sandwich,cake,cookie,beverage"`
	ImageURL        string             `json:"image_url" validate:"nullable,url"`
	Ingredients     []string           `json:"ingredients"`
	NutritionalInfo map[string]float64 `json:"nutritional_info"`
	Available       *bool              `json:"available"`
}

func (b productRequest) input() services.ProductInput {
	return services.ProductInput{
		Name:            b.Name,
		Description:     b.Description,
		Price:           b.Price,
		Category:        models.Category(b.Category),
		ImageURL:        b.ImageURL,
		Ingredients:     b.Ingredients,
		NutritionalInfo: b.NutritionalInfo,
	}
}

// List returns available products, optionally filtered by ?category=.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body productRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.Create(r.Context(), body.input())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, product)
}

// Replace overwrites every stored field of a product except its id and
// creation time. Omitting "available" keeps the product on sale.
func (c *ProductController) Replace(w http.ResponseWriter, r *http.Request) {
	var body productRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	available := true
	if body.Available != nil {
		available = *body.Available
	}

	product, err := c.catalog.Replace(r.Context(), chi.URLParam(r, "id"), body.input(), available)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, product)
}

// Search matches the query, case-insensitively, against product names and
// descriptions. A blank query returns an empty list rather than everything.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, products)
}
