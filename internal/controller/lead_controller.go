package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

type LeadController struct {
	LeadService *service.LeadService
}

type leadItem struct {
	model.Lead
	DetailPath string `json:"detail_path"`
}

func (c *LeadController) ListLeads(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	q := r.URL.Query().Get("q")

	leads, err := c.LeadService.ListLeads(r.Context(), status, q)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]leadItem, len(leads))
	for i, l := range leads {
		items[i] = leadItem{Lead: l, DetailPath: "/lead/" + l.ID}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":      items,
		"count":     len(items),
		"last_sync": service.ListLastSync,
	})
}

func (c *LeadController) GetLead(w http.ResponseWriter, r *http.Request) {
	detail, err := c.LeadService.GetLead(r.Context(), chi.URLParam(r, "leadId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"lead":      detail.Lead,
		"fallback":  detail.Fallback,
		"products":  service.Products(),
		"last_sync": service.DetailLastSync,
	})
}

func (c *LeadController) UpdateLead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes     string           `json:"notes"`
		Status    string           `json:"status"`
		LineItems []model.LineItem `json:"line_items"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	res, err := c.LeadService.UpdateLead(r.Context(), model.LeadUpdate{
		LeadID:    chi.URLParam(r, "leadId"),
		Notes:     body.Notes,
		Status:    body.Status,
		LineItems: body.LineItems,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
