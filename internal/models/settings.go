package models

import (
	"github.com/lib/pq" // required for pq.StringArray
	"gorm.io/gorm"
)

// BoardSettings holds the fixed vocabulary of the board: the complaint
// categories offered to submitters and the rating dimensions every complaint
// is scored on. Rating submissions are validated against RatingDimensions at
// the store boundary instead of at every consumption site.
type BoardSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Categories a complaint can be filed under.
	Categories pq.StringArray `gorm:"type:text[]" json:"categories"`
	// RatingDimensions are the named 1-5 scores collected per complaint.
	RatingDimensions pq.StringArray `gorm:"type:text[]" json:"ratingDimensions"`
}

// DefaultCategories mirror the board's built-in complaint taxonomy.
var DefaultCategories = []string{
	"Delivery", "Product Quality", "Customer Service", "Billing", "Warranty", "Other",
}

// DefaultRatingDimensions are the per-complaint score sheet entries.
var DefaultRatingDimensions = []string{
	"Service", "Product Quality", "Communication", "Delivery", "Price",
}

// BeforeCreate is a GORM hook that fills empty vocabulary columns with the
// built-in defaults, so a fresh database starts with a usable board.
func (s *BoardSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if len(s.Categories) == 0 {
		s.Categories = pq.StringArray(DefaultCategories)
	}
	if len(s.RatingDimensions) == 0 {
		s.RatingDimensions = pq.StringArray(DefaultRatingDimensions)
	}
	return
}

// HasDimension reports whether name is one of the configured rating dimensions.
func (s *BoardSettings) HasDimension(name string) bool {
	for _, d := range s.RatingDimensions {
		if d == name {
			return true
		}
	}
	return false
}
