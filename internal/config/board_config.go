package config

const (
	// Storage
	ComplaintsBlobKey = "complaintsData"
	DefaultCategory   = "Other"

	// Rating bounds
	MinRating = 1.0
	MaxRating = 5.0

	// Overall score weights (composite on a 0-100 scale)
	ResolutionWeight = 0.6
	RatingWeight     = 0.3
	SpeedWeight      = 0.1

	// Category score weights
	CategoryResolutionWeight = 0.7
	CategoryRatingWeight     = 0.3

	// RatingScale converts a 1-5 rating onto the 0-100 score scale.
	RatingScale = 20.0

	// Simulated response speed in days, drawn per complaint.
	MinResponseDays = 1
	MaxResponseDays = 10

	// Sample-size floors to keep tiny categories out of the leader boards.
	CategoryLeaderMinComplaints = 3
	BestCategoryMinComplaints   = 5
	FastestSectorMinEntries     = 3

	// Presentation
	RankingsPageSize = 10
	TopBrandCount    = 5
)
