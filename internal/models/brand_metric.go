package models

import "time"

// CategoryMetric is the per-category slice of a brand's metrics.
type CategoryMetric struct {
	Total          int     `json:"total"`
	Resolved       int     `json:"resolved"`
	ResolutionRate float64 `json:"resolutionRate"`
	AvgRating      float64 `json:"avgRating"`
	// Score is the weighted 0-100 category score (resolution rate and rating).
	Score float64 `json:"score"`
}

// BrandMetric is the derived per-brand aggregate. It is recomputed on demand
// from the current complaint set and never persisted.
type BrandMetric struct {
	Name               string  `json:"name"`
	TotalComplaints    int     `json:"totalComplaints"`
	ResolvedComplaints int     `json:"resolvedComplaints"`
	// ResolutionRate is a percentage in [0,100].
	ResolutionRate float64 `json:"resolutionRate"`
	// AvgRating is on the 1-5 scale, 0 when no complaint carries a valid rating.
	AvgRating float64 `json:"avgRating"`
	// ResponseSpeed is the simulated average response time in days (1-10).
	ResponseSpeed float64 `json:"responseSpeed"`
	// OverallScore is the weighted composite on a 0-100 scale. Callers must not
	// assume a hard cap when inputs are out of their expected ranges.
	OverallScore      float64                   `json:"overallScore"`
	LastComplaintDate time.Time                 `json:"lastComplaintDate"`
	Categories        map[string]CategoryMetric `json:"categories"`
}

// SummaryStats is the board-wide digest shown above the rankings.
type SummaryStats struct {
	TotalComplaints   int     `json:"totalComplaints"`
	TotalBrands       int     `json:"totalBrands"`
	AvgResolutionRate float64 `json:"avgResolutionRate"`
	// BestCategory is the category with the highest resolution rate among
	// categories with enough complaints to be meaningful.
	BestCategory     string  `json:"bestCategory"`
	BestCategoryRate float64 `json:"bestCategoryRate"`
	// FastestSector is the category whose brands respond quickest on average.
	FastestSector     string  `json:"fastestSector"`
	FastestSectorDays float64 `json:"fastestSectorDays"`
	// TopComplaintCategory is the category with the most complaints overall.
	TopComplaintCategory      string `json:"topComplaintCategory"`
	TopComplaintCategoryCount int    `json:"topComplaintCategoryCount"`
}
