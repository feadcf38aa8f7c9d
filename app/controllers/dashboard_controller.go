package controllers

import (
	"net/http"

	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/response"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.dashboard.Stats(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, stats)
}
