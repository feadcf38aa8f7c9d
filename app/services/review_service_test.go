package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/app/services"
)

func reviewFixture(t *testing.T) (*services.ReviewService, models.Product) {
	t.Helper()
	products := repositories.NewMemoryProductStore()
	catalog := services.NewCatalogService(products)

	espresso, err := catalog.Create(context.Background(), services.ProductInput{
		Name: "Espresso", Price: 2.50, Category: models.CategoryCoffee,
	})
	require.NoError(t, err)

	return services.NewReviewService(repositories.NewMemoryReviewStore(), products), *espresso
}

func TestReviewCreate(t *testing.T) {
	svc, espresso := reviewFixture(t)

	review, err := svc.Create(context.Background(), customer, services.ReviewInput{
		ProductID: espresso.ID,
		Rating:    5,
		Comment:   "Perfect crema",
	})
	require.NoError(t, err)
	require.Equal(t, customer.ID, review.UserID)
	require.Equal(t, customer.Name, review.UserName, "reviewer name is snapshotted")
	require.Equal(t, 5, review.Rating)
}

func TestReviewRatingBounds(t *testing.T) {
	svc, espresso := reviewFixture(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(ctx, customer, services.ReviewInput{ProductID: espresso.ID, Rating: rating})
		require.ErrorIs(t, err, services.ErrInvalidInput, "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		_, err := svc.Create(ctx, customer, services.ReviewInput{ProductID: espresso.ID, Rating: rating})
		require.NoError(t, err, "rating %d", rating)
	}
}

func TestReviewUnknownProduct(t *testing.T) {
	svc, _ := reviewFixture(t)
	_, err := svc.Create(context.Background(), customer, services.ReviewInput{
		ProductID: "no-such-product",
		Rating:    4,
	})
	require.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestReviewList(t *testing.T) {
	svc, espresso := reviewFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, customer, services.ReviewInput{ProductID: espresso.ID, Rating: 4})
	require.NoError(t, err)
	_, err = svc.Create(ctx, otherCustomer, services.ReviewInput{ProductID: espresso.ID, Rating: 2})
	require.NoError(t, err)

	reviews, err := svc.ListForProduct(ctx, espresso.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	reviews, err = svc.ListForProduct(ctx, "no-such-product")
	require.NoError(t, err)
	require.Empty(t, reviews)
}
