package repository

import (
	"time"

	"github.com/unclebandit/fabricator-bff/internal/model"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, ist)
}

// SampleLeads is the fixture set shown when no CRM is configured.
func SampleLeads() []model.Lead {
	return []model.Lead{
		{
			ID:           "FT-000932",
			Name:         "Banjara Hills Villa Glazing",
			CustomerName: "Rajesh Reddy",
			Address:      "Plot 45, Banjara Hills, Hyderabad - 500034",
			Phone:        "+91 9848012345",
			Email:        "rajesh.reddy@example.com",
			CreatedAt:    at(2024, time.October, 13, 14, 11),
			Status:       "active",
			Priority:     model.PriorityHigh,
			Notes:        "Customer interested in premium windows for new construction project. Requires quote for 12 windows.",
			LineItems: []model.LineItem{
				{ID: "LI-0001", Name: "VEKA uPVC Windows"},
				{ID: "LI-0002", Name: "VEKA Sliding Doors"},
			},
		},
		{
			ID:           "FT-002263",
			Name:         "Jubilee Hills Apartment Refit",
			CustomerName: "Priya Sharma",
			Address:      "205, Jubilee Hills, Road No. 36, Hyderabad - 500033",
			Phone:        "+91 9866023456",
			Email:        "priya.sharma@example.com",
			CreatedAt:    at(2024, time.October, 14, 9, 12),
			Status:       "in-progress",
			Priority:     model.PriorityMedium,
			Notes:        "Measurements pending for balcony sliding doors.",
			LineItems: []model.LineItem{
				{ID: "LI-0003", Name: "VEKA French Doors"},
			},
		},
		{
			ID:           "FT-003317",
			Name:         "Begumpet Office Windows",
			CustomerName: "Venkat Rao",
			Address:      "12-3-456, Begumpet, Hyderabad - 500016",
			Phone:        "+91 9885034567",
			Email:        "venkat.rao@example.com",
			CreatedAt:    at(2024, time.October, 13, 23, 6),
			Status:       "in-progress",
			Priority:     model.PriorityLow,
			LineItems: []model.LineItem{
				{ID: "LI-0004", Name: "VEKA uPVC Windows"},
			},
		},
		{
			ID:           "FT-003318",
			Name:         "Kukatpally Conservatory",
			CustomerName: "Sanjay Gupta",
			Address:      "78, Kukatpally Housing Board, Hyderabad - 500072",
			Phone:        "+91 9848045678",
			Email:        "sanjay.gupta@example.com",
			CreatedAt:    at(2024, time.October, 15, 10, 30),
			Status:       "completed",
			Priority:     model.PriorityHigh,
			Notes:        "Installed and signed off.",
			LineItems: []model.LineItem{
				{ID: "LI-0005", Name: "VEKA Conservatory"},
			},
		},
		{
			ID:           "FT-003319",
			Name:         "Madhapur Bi-fold Doors",
			CustomerName: "Lakshmi Devi",
			Address:      "34-67-89, Madhapur, Cyberabad, Hyderabad - 500081",
			Phone:        "+91 9866056789",
			Email:        "lakshmi.devi@example.com",
			CreatedAt:    at(2024, time.October, 15, 15, 45),
			Status:       "active",
			Priority:     model.PriorityMedium,
			LineItems: []model.LineItem{
				{ID: "LI-0006", Name: "VEKA Bi-fold Doors"},
				{ID: "LI-0007", Name: "VEKA Composite Doors"},
			},
		},
	}
}

// SampleServiceRequests is the case fixture set.
func SampleServiceRequests() []model.ServiceRequest {
	tech, techID := "Rajesh Kumar", "8301"
	return []model.ServiceRequest{
		{
			ID:             "SR-001",
			Number:         "SR-001",
			CustomerName:   "Rajesh Kumar",
			Address:        "Plot 45, Banjara Hills, Hyderabad - 500034",
			Phone:          "+91 9876543210",
			Issue:          "Window handle broken",
			Description:    "The window handle in the living room has broken and needs immediate replacement. Customer unable to open/close the window.",
			Priority:       model.PriorityHigh,
			Status:         model.CaseStatusOpen,
			ScheduledDate:  "2024-01-15",
			ScheduledTime:  "10:00 AM",
			TechnicianName: tech,
			TechnicianID:   techID,
			CreatedAt:      at(2024, time.January, 12, 9, 0),
		},
		{
			ID:             "SR-002",
			Number:         "SR-002",
			CustomerName:   "Priya Sharma",
			Address:        "205, Jubilee Hills, Road No. 36, Hyderabad - 500033",
			Phone:          "+91 9866023456",
			Issue:          "Door lock mechanism issue",
			Description:    "Multi-point lock on the balcony door does not engage fully.",
			Priority:       model.PriorityMedium,
			Status:         model.CaseStatusInProgress,
			ScheduledDate:  "2024-01-15",
			ScheduledTime:  "2:00 PM",
			TechnicianName: tech,
			TechnicianID:   techID,
			CreatedAt:      at(2024, time.January, 13, 11, 30),
		},
		{
			ID:             "SR-003",
			Number:         "SR-003",
			CustomerName:   "Venkat Rao",
			Address:        "12-3-456, Begumpet, Hyderabad - 500016",
			Phone:          "+91 9885034567",
			Issue:          "Glass panel replacement",
			Description:    "Cracked glass panel on the second floor office window.",
			Priority:       model.PriorityLow,
			Status:         model.CaseStatusOpen,
			ScheduledDate:  "2024-01-16",
			ScheduledTime:  "11:00 AM",
			TechnicianName: tech,
			TechnicianID:   techID,
			CreatedAt:      at(2024, time.January, 14, 16, 5),
		},
		{
			ID:             "SR-004",
			Number:         "SR-004",
			CustomerName:   "Sanjay Gupta",
			Address:        "78, Kukatpally Housing Board, Hyderabad - 500072",
			Phone:          "+91 9848045678",
			Issue:          "Weather strip replacement",
			Description:    "Weather strips on the conservatory doors have perished.",
			Priority:       model.PriorityMedium,
			Status:         model.CaseStatusCompleted,
			ScheduledDate:  "2024-01-14",
			ScheduledTime:  "9:00 AM",
			TechnicianName: tech,
			TechnicianID:   techID,
			ActionTaken:    "Replaced",
			CreatedAt:      at(2024, time.January, 10, 8, 45),
		},
	}
}
