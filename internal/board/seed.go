package board

import (
	"time"

	"github.com/aslnygz/ygz/internal/models"
)

// seedComplaints returns the records the board starts with when no usable
// blob exists. Dates are placed relative to now so the seed board looks alive.
func seedComplaints(now time.Time) []models.Complaint {
	day := 24 * time.Hour
	return []models.Complaint{
		{
			ID:          1,
			Title:       "Package arrived two weeks late",
			Category:    "Delivery",
			Description: "The item I ordered reached me two weeks after the promised date.",
			Brand:       "Swift Cargo",
			UserID:      "user_abc",
			Date:        now.Add(-14 * day),
			Status:      models.StatusOpen,
			Ratings:     map[string]float64{"Service": 1, "Product Quality": 3, "Communication": 2, "Delivery": 1, "Price": 3},
			Likes:       map[string]bool{"user_def": true},
			Dislikes:    map[string]bool{},
			Comments:    []models.Comment{},
		},
		{
			ID:          2,
			Title:       "Phone screen was scratched on arrival",
			Category:    "Product Quality",
			Description: "My brand-new phone came with a visible scratch across the display.",
			Brand:       "TechnoMarket",
			UserID:      "user_def",
			Date:        now.Add(-10 * day),
			Status:      models.StatusResolved,
			Ratings:     map[string]float64{"Service": 4, "Product Quality": 2, "Communication": 4, "Delivery": 3, "Price": 4},
			Likes:       map[string]bool{"user_abc": true, "user_ghi": true},
			Dislikes:    map[string]bool{},
			Comments: []models.Comment{
				{ID: "101", Text: "A replacement unit has been shipped.", UserID: "admin", Date: now.Add(-8 * day), Replies: []models.Comment{}},
			},
		},
		{
			ID:          3,
			Title:       "Customer service hung up on me",
			Category:    "Customer Service",
			Description: "Instead of solving my issue they ended the call.",
			Brand:       "Connect Line",
			UserID:      "user_ghi",
			Date:        now.Add(-5 * day),
			Status:      models.StatusOpen,
			Ratings:     map[string]float64{"Service": 1, "Product Quality": 3, "Communication": 1, "Delivery": 3, "Price": 2},
			Likes:       map[string]bool{},
			Dislikes:    map[string]bool{"user_abc": true},
			Comments:    []models.Comment{},
		},
		{
			ID:              4,
			Title:           "Complaint awaiting moderation",
			Category:        "Other",
			Description:     "This complaint is waiting for admin approval.",
			Brand:           "Test Brand",
			UserID:          "user_jkl",
			Date:            now.Add(-1 * day),
			Status:          models.StatusPending,
			PendingApproval: true,
			Ratings:         map[string]float64{"Service": 3, "Product Quality": 3, "Communication": 3, "Delivery": 3, "Price": 3},
			Likes:           map[string]bool{},
			Dislikes:        map[string]bool{},
			Comments:        []models.Comment{},
		},
	}
}
