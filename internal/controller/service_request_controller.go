package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/service"
)

type ServiceRequestController struct {
	ServiceRequestService *service.ServiceRequestService
}

type serviceRequestItem struct {
	model.ServiceRequest
	DetailPath string `json:"detail_path"`
}

func (c *ServiceRequestController) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	requests, err := c.ServiceRequestService.ListServiceRequests(r.Context(),
		query.Get("status"), query.Get("q"), query.Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]serviceRequestItem, len(requests))
	for i, sr := range requests {
		items[i] = serviceRequestItem{ServiceRequest: sr, DetailPath: "/service-request/" + sr.ID}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":      items,
		"count":     len(items),
		"last_sync": service.ListLastSync,
	})
}

func (c *ServiceRequestController) GetServiceRequest(w http.ResponseWriter, r *http.Request) {
	detail, err := c.ServiceRequestService.GetServiceRequest(r.Context(), chi.URLParam(r, "requestId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"request":   detail.Request,
		"fallback":  detail.Fallback,
		"actions":   detail.Actions,
		"last_sync": service.DetailLastSync,
	})
}

func (c *ServiceRequestController) CompleteServiceRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ActionTaken string `json:"action_taken"`
		Notes       string `json:"notes"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	res, err := c.ServiceRequestService.CompleteServiceRequest(r.Context(),
		chi.URLParam(r, "requestId"), body.ActionTaken, body.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
