package controller

import (
	"net/http"

	"github.com/unclebandit/fabricator-bff/internal/service"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.DashboardService.Dashboard())
}

func (c *DashboardController) Products(w http.ResponseWriter, r *http.Request) {
	products := service.Products()
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  products,
		"count": len(products),
	})
}
