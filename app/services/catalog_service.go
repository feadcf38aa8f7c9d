package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cafedelights/api/app/models"
)

// CatalogService manages the product catalog.
type CatalogService struct {
	products ProductStore
}

func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// ProductInput is the validated payload for creating or replacing a product.
type ProductInput struct {
	Name            string
	Description     string
	Price           float64
	Category        models.Category
	ImageURL        string
	Ingredients     []string
	NutritionalInfo map[string]float64
}

func (in ProductInput) check() error {
	if in.Name == "" {
		return fmt.Errorf("product name is required: %w", ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", ErrInvalidInput)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", in.Category, ErrInvalidInput)
	}
	return nil
}

// List returns available products, optionally filtered to one category.
func (s *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	cat := models.Category(category)
	if category != "" && !cat.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", category, ErrInvalidInput)
	}
	return s.products.FindAvailable(ctx, cat)
}

// Get returns a single product by id, listed or not.
func (s *CatalogService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Create adds a product to the catalog. New products are available
// immediately.
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := in.check(); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		Available:       true,
		Ingredients:     in.Ingredients,
		NutritionalInfo: in.NutritionalInfo,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Replace overwrites every mutable field of a product. Identity and creation
// time survive; this is the only update the catalog exposes — there is no
// partial-field edit and no delete.
func (s *CatalogService) Replace(ctx context.Context, id string, in ProductInput, available bool) (*models.Product, error) {
	if err := in.check(); err != nil {
		return nil, err
	}

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:              existing.ID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		Available:       available,
		Ingredients:     in.Ingredients,
		NutritionalInfo: in.NutritionalInfo,
		CreatedAt:       existing.CreatedAt,
	}

	if err := s.products.Replace(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Search returns available products whose name or description contains q,
// case-insensitively. A blank query matches nothing.
func (s *CatalogService) Search(ctx context.Context, q string) ([]models.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []models.Product{}, nil
	}
	return s.products.Search(ctx, q)
}
