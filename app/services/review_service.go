package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cafedelights/api/app/models"
)

// ReviewService handles product reviews.
type ReviewService struct {
	reviews  ReviewStore
	products ProductStore
}

func NewReviewService(reviews ReviewStore, products ProductStore) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// ReviewInput is the validated payload for submitting a review.
type ReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// Create submits a review. The rating must be 1..5 and the target product
// must currently exist; both are checked before anything is written. The
// author's display name is snapshotted. There is no uniqueness constraint —
// an account may review the same product repeatedly.
func (s *ReviewService) Create(ctx context.Context, account *models.Account, in ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrInvalidInput)
	}

	if _, err := s.products.FindByID(ctx, in.ProductID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		UserID:    account.ID,
		UserName:  account.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListForProduct returns a product's reviews, newest first.
func (s *ReviewService) ListForProduct(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviews.FindByProduct(ctx, productID)
}
