package controllers

import (
	"net/http"

	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/bind"
	"github.com/cafedelights/api/pkg/middleware"
	"github.com/cafedelights/api/pkg/response"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"nullable"`
	Address  string `json:"address" validate:"nullable"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authPayload is the response body for register and login.
type authPayload struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	account, token, err := c.auth.Register(r.Context(), services.RegisterInput{
		Email:    body.Email,
		Name:     body.Name,
		Password: body.Password,
		Phone:    body.Phone,
		Address:  body.Address,
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, authPayload{Token: token, User: account})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	account, token, err := c.auth.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, authPayload{Token: token, User: account})
}

// Profile returns the authenticated account.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	account, ok := middleware.AccountFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}
	response.Success(w, account)
}
