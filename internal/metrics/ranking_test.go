package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aslnygz/ygz/internal/metrics"
	"github.com/aslnygz/ygz/internal/models"
)

func brandMetric(name string, score float64, total int, categories map[string]models.CategoryMetric) models.BrandMetric {
	if categories == nil {
		categories = map[string]models.CategoryMetric{}
	}
	return models.BrandMetric{
		Name:            name,
		OverallScore:    score,
		TotalComplaints: total,
		Categories:      categories,
	}
}

// TestFilterBrands covers the three ranking filters.
func TestFilterBrands(t *testing.T) {
	brands := []models.BrandMetric{
		brandMetric("Acme", 80, 10, map[string]models.CategoryMetric{"Delivery": {Total: 4}}),
		brandMetric("Globex", 60, 2, map[string]models.CategoryMetric{"Billing": {Total: 2}}),
		brandMetric("Initech", 40, 5, nil),
	}

	tests := []struct {
		name   string
		filter metrics.Filter
		want   []string
	}{
		{"no filter", metrics.Filter{}, []string{"Acme", "Globex", "Initech"}},
		{"category presence", metrics.Filter{Category: "Delivery"}, []string{"Acme"}},
		{"min complaints", metrics.Filter{MinComplaints: 5}, []string{"Acme", "Initech"}},
		{"search ignores case", metrics.Filter{Search: "GLO"}, []string{"Globex"}},
		{"combined", metrics.Filter{MinComplaints: 3, Search: "i"}, []string{"Initech"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, b := range metrics.FilterBrands(brands, tt.filter) {
				got = append(got, b.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSortBrands: response time ranks ascending, everything else descending.
func TestSortBrands(t *testing.T) {
	brands := []models.BrandMetric{
		{Name: "A", OverallScore: 50, ResolutionRate: 90, ResponseSpeed: 8, AvgRating: 2, TotalComplaints: 3},
		{Name: "B", OverallScore: 70, ResolutionRate: 40, ResponseSpeed: 2, AvgRating: 4, TotalComplaints: 9},
		{Name: "C", OverallScore: 60, ResolutionRate: 60, ResponseSpeed: 5, AvgRating: 3, TotalComplaints: 6},
	}

	names := func(in []models.BrandMetric) []string {
		var out []string
		for _, b := range in {
			out = append(out, b.Name)
		}
		return out
	}

	assert.Equal(t, []string{"B", "C", "A"}, names(metrics.SortBrands(brands, metrics.SortOverallScore)))
	assert.Equal(t, []string{"A", "C", "B"}, names(metrics.SortBrands(brands, metrics.SortResolutionRate)))
	assert.Equal(t, []string{"B", "C", "A"}, names(metrics.SortBrands(brands, metrics.SortResponseTime)))
	assert.Equal(t, []string{"B", "C", "A"}, names(metrics.SortBrands(brands, metrics.SortAvgRating)))
	assert.Equal(t, []string{"B", "C", "A"}, names(metrics.SortBrands(brands, metrics.SortComplaintCount)))

	// Input order is untouched.
	assert.Equal(t, "A", brands[0].Name)
}

// TestPaginate covers page slicing and out-of-range pages.
func TestPaginate(t *testing.T) {
	var brands []models.BrandMetric
	for i := 0; i < 23; i++ {
		brands = append(brands, brandMetric("brand", float64(i), 1, nil))
	}

	page, totalPages := metrics.Paginate(brands, 1, 10)
	assert.Len(t, page, 10)
	assert.Equal(t, 3, totalPages)

	page, _ = metrics.Paginate(brands, 3, 10)
	assert.Len(t, page, 3)

	page, totalPages = metrics.Paginate(brands, 9, 10)
	assert.Empty(t, page, "pages beyond the end are empty, not an error")
	assert.Equal(t, 3, totalPages)

	page, totalPages = metrics.Paginate(nil, 1, 10)
	assert.Empty(t, page)
	assert.Zero(t, totalPages)
}

// TestCategoryLeaders: brands need at least 3 complaints in the category to
// rank; smaller samples stay visible in the brand's own categories map.
func TestCategoryLeaders(t *testing.T) {
	brands := []models.BrandMetric{
		brandMetric("Acme", 0, 5, map[string]models.CategoryMetric{"Delivery": {Total: 4, Score: 70}}),
		brandMetric("Globex", 0, 3, map[string]models.CategoryMetric{"Delivery": {Total: 2, Score: 95}}),
		brandMetric("Initech", 0, 6, map[string]models.CategoryMetric{"Delivery": {Total: 6, Score: 85}}),
		brandMetric("Umbrella", 0, 4, map[string]models.CategoryMetric{"Billing": {Total: 4, Score: 99}}),
	}

	leaders := metrics.CategoryLeaders(brands, "Delivery")

	assert.Len(t, leaders, 2, "two-complaint sample must not rank")
	assert.Equal(t, "Initech", leaders[0].Name)
	assert.Equal(t, "Acme", leaders[1].Name)

	// The small sample still exists on the brand itself.
	assert.Equal(t, 2, brands[1].Categories["Delivery"].Total)
}

// TestCategoryLeaders_TopFiveCap keeps the leader table short.
func TestCategoryLeaders_TopFiveCap(t *testing.T) {
	var brands []models.BrandMetric
	for i := 0; i < 8; i++ {
		brands = append(brands, brandMetric("brand", 0, 5,
			map[string]models.CategoryMetric{"Delivery": {Total: 3, Score: float64(i)}}))
	}

	assert.Len(t, metrics.CategoryLeaders(brands, "Delivery"), 5)
}

// TestSummarize covers the board digest: sample floors, top category and the
// overall resolution rate.
func TestSummarize(t *testing.T) {
	var complaints []models.Complaint
	// Delivery: 6 complaints, 4 resolved. Billing: 4 complaints, 4 resolved
	// (all resolved but below the 5-complaint floor for "best category").
	for i := 0; i < 6; i++ {
		status := models.StatusOpen
		if i < 4 {
			status = models.StatusResolved
		}
		complaints = append(complaints, complaint("Acme", "Delivery", status, nil))
	}
	for i := 0; i < 4; i++ {
		complaints = append(complaints, complaint("Globex", "Billing", models.StatusResolved, nil))
	}

	brands := fixedAggregator(4).Compute(complaints)

	summary := metrics.Summarize(complaints, brands)

	assert.Equal(t, 10, summary.TotalComplaints)
	assert.Equal(t, 2, summary.TotalBrands)
	assert.Equal(t, "Delivery", summary.BestCategory, "Billing is below the sample floor")
	assert.InDelta(t, 66.7, summary.BestCategoryRate, 0.05)
	assert.Equal(t, "Delivery", summary.TopComplaintCategory)
	assert.Equal(t, 6, summary.TopComplaintCategoryCount)
	assert.InDelta(t, 80.0, summary.AvgResolutionRate, 1e-9)
	assert.Empty(t, summary.FastestSector, "one brand per category is below the entry floor")
}

// TestSummarize_Empty degrades to zeros on an empty board.
func TestSummarize_Empty(t *testing.T) {
	summary := metrics.Summarize(nil, nil)

	assert.Zero(t, summary.TotalComplaints)
	assert.Zero(t, summary.AvgResolutionRate)
	assert.Empty(t, summary.BestCategory)
}
