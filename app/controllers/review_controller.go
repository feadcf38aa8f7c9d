package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/bind"
	"github.com/cafedelights/api/pkg/middleware"
	"github.com/cafedelights/api/pkg/response"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

type reviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"nullable"`
}

func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body reviewRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	review, err := c.reviews.Create(r.Context(), account, services.ReviewInput{
		ProductID: body.ProductID,
		Rating:    body.Rating,
		Comment:   body.Comment,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, review)
}

// ListForProduct returns a product's reviews, newest first.
func (c *ReviewController) ListForProduct(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.reviews.ListForProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, reviews)
}
