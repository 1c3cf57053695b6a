package service

import "github.com/unclebandit/fabricator-bff/internal/model"

// Sync labels are fixed strings; nothing here tracks real sync times.
const (
	ListLastSync   = "Last Sync: 1 day, 11 hours, 12 minutes ago"
	DetailLastSync = "Last Sync: 2 minutes ago"
)

// DashboardService serves the landing page. All figures are static.
type DashboardService struct {
	FabricatorName string
	DatabaseID     string
}

func (s *DashboardService) Dashboard() model.Dashboard {
	return model.Dashboard{
		Profile: model.FabricatorProfile{Name: s.FabricatorName, DatabaseID: s.DatabaseID},
		Stats: model.DashboardStats{
			TotalLeads:      45,
			OpenLeads:       12,
			InProgressLeads: 18,
			ConvertedLeads:  15,
		},
		Monthly: []model.MonthlyCount{
			{Month: "Jan", Leads: 32},
			{Month: "Feb", Leads: 28},
			{Month: "Mar", Leads: 35},
			{Month: "Apr", Leads: 42},
			{Month: "May", Leads: 38},
			{Month: "Jun", Leads: 45},
		},
		Carousel: CarouselSlides(),
		QuickLinks: []model.QuickLink{
			{Label: "View All Leads", Path: "/leads"},
			{Label: "In Progress", Path: "/leads?status=in-progress"},
		},
		LastSync: ListLastSync,
	}
}

func CarouselSlides() []model.CarouselSlide {
	return []model.CarouselSlide{
		{
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=400&fit=crop",
			Title:       "Veka uPVC Windows",
			Description: "Premium quality windows for modern homes",
		},
		{
			ImageURL:    "https://images.unsplash.com/photo-1449844908441-8829872d2607?w=800&h=400&fit=crop",
			Title:       "Veka Sliding Doors",
			Description: "Elegant and secure door solutions",
		},
		{
			ImageURL:    "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800&h=400&fit=crop",
			Title:       "Veka Conservatories",
			Description: "Beautiful conservatory designs",
		},
	}
}

// Products is the VEKA catalogue offered when adding line items.
func Products() []model.Product {
	return []model.Product{
		{Name: "VEKA uPVC Windows"},
		{Name: "VEKA Sliding Doors"},
		{Name: "VEKA French Doors"},
		{Name: "VEKA Bi-fold Doors"},
		{Name: "VEKA Conservatory"},
		{Name: "VEKA Composite Doors"},
	}
}
