package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unclebandit/fabricator-bff/internal/handler"
	"github.com/unclebandit/fabricator-bff/internal/model"
	"github.com/unclebandit/fabricator-bff/internal/service"
	"github.com/unclebandit/fabricator-bff/internal/session"
)

type RouterDeps struct {
	Sessions              *session.Manager
	LeadService           *service.LeadService
	ServiceRequestService *service.ServiceRequestService
	DashboardService      *service.DashboardService
	PhotoService          *service.PhotoService
	Health                *handler.HealthHandler
}

func NewRouter(d RouterDeps) http.Handler {
	auth := &AuthController{Sessions: d.Sessions}
	dashboard := &DashboardController{DashboardService: d.DashboardService}
	leads := &LeadController{LeadService: d.LeadService}
	requests := &ServiceRequestController{ServiceRequestService: d.ServiceRequestService}
	leadPhotos := &PhotoController{PhotoService: d.PhotoService, Kind: model.RecordKindLead, Param: "leadId"}
	requestPhotos := &PhotoController{PhotoService: d.PhotoService, Kind: model.RecordKindServiceRequest, Param: "requestId"}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	if d.Health != nil {
		r.Get("/healthz", d.Health.Health)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/otp", auth.RequestOTP)
		r.Post("/auth/verify", auth.VerifyOTP)
		r.Post("/auth/login", auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(d.Sessions.Guard)

			r.Get("/auth/session", auth.Session)
			r.Post("/auth/logout", auth.Logout)

			r.Get("/dashboard", dashboard.Dashboard)
			r.Get("/catalog/products", dashboard.Products)

			r.Get("/leads", leads.ListLeads)
			r.Get("/leads/{leadId}", leads.GetLead)
			r.Post("/leads/{leadId}", leads.UpdateLead)
			r.Get("/leads/{leadId}/photos", leadPhotos.ListPhotos)
			r.Post("/leads/{leadId}/photos", leadPhotos.AddPhoto)

			r.Get("/service-requests", requests.ListServiceRequests)
			r.Get("/service-requests/{requestId}", requests.GetServiceRequest)
			r.Post("/service-requests/{requestId}/complete", requests.CompleteServiceRequest)
			r.Get("/service-requests/{requestId}/photos", requestPhotos.ListPhotos)
			r.Post("/service-requests/{requestId}/photos", requestPhotos.AddPhoto)
		})
	})

	return r
}
