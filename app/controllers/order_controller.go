package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/bind"
	"github.com/cafedelights/api/pkg/middleware"
	"github.com/cafedelights/api/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

type orderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type orderRequest struct {
	Items               []orderItemRequest `json:"items"`
	PaymentMethod       string             `json:"payment_method" validate:"nullable"`
	DeliveryAddress     string             `json:"delivery_address" validate:"nullable"`
	SpecialInstructions string             `json:"special_instructions" validate:"nullable"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,in=pending,confirmed,preparing,ready,completed,cancelled"`
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body orderRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	in := services.OrderInput{
		PaymentMethod:       body.PaymentMethod,
		DeliveryAddress:     body.DeliveryAddress,
		SpecialInstructions: body.SpecialInstructions,
	}
	for _, item := range body.Items {
		in.Items = append(in.Items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := c.orders.Create(r.Context(), account, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, order)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.orders.List(r.Context(), account)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, orders)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	order, err := c.orders.Get(r.Context(), account, chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, order)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body statusRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id := chi.URLParam(r, "id")
	if err := c.orders.UpdateStatus(r.Context(), id, models.OrderStatus(body.Status)); err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"id": id, "status": body.Status})
}
