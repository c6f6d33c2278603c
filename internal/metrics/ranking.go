package metrics

import (
	"sort"
	"strings"

	"github.com/aslnygz/ygz/internal/config"
	"github.com/aslnygz/ygz/internal/models"
)

// SortKey selects the ranking order of the brand table.
type SortKey string

const (
	SortOverallScore   SortKey = "overallScore"
	SortResolutionRate SortKey = "resolveRate"
	SortResponseTime   SortKey = "responseTime"
	SortAvgRating      SortKey = "avgRating"
	SortComplaintCount SortKey = "complaintCount"
)

// Filter narrows the brand table before sorting.
type Filter struct {
	// Category keeps only brands with at least one complaint in the category.
	Category string
	// MinComplaints keeps only brands with at least this many complaints.
	MinComplaints int
	// Search keeps only brands whose name contains the term, ignoring case.
	Search string
}

// FilterBrands applies f and returns a new slice; the input stays untouched.
func FilterBrands(brands []models.BrandMetric, f Filter) []models.BrandMetric {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.BrandMetric, 0, len(brands))
	for _, b := range brands {
		if f.Category != "" {
			if cat, ok := b.Categories[f.Category]; !ok || cat.Total == 0 {
				continue
			}
		}
		if f.MinComplaints > 0 && b.TotalComplaints < f.MinComplaints {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(b.Name), term) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SortBrands orders a copy of brands by the given key. Response time sorts
// ascending (faster first); every other key sorts descending.
func SortBrands(brands []models.BrandMetric, key SortKey) []models.BrandMetric {
	out := make([]models.BrandMetric, len(brands))
	copy(out, brands)

	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortResolutionRate:
			return out[i].ResolutionRate > out[j].ResolutionRate
		case SortResponseTime:
			return out[i].ResponseSpeed < out[j].ResponseSpeed
		case SortAvgRating:
			return out[i].AvgRating > out[j].AvgRating
		case SortComplaintCount:
			return out[i].TotalComplaints > out[j].TotalComplaints
		default:
			return out[i].OverallScore > out[j].OverallScore
		}
	})
	return out
}

// Paginate slices out one page (1-based) and reports the page count.
func Paginate(brands []models.BrandMetric, page, pageSize int) (pageItems []models.BrandMetric, totalPages int) {
	if pageSize <= 0 {
		pageSize = config.RankingsPageSize
	}
	if page < 1 {
		page = 1
	}

	totalPages = (len(brands) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start >= len(brands) {
		return []models.BrandMetric{}, totalPages
	}
	end := start + pageSize
	if end > len(brands) {
		end = len(brands)
	}
	return brands[start:end], totalPages
}

// CategoryLeaders returns the top brands of one category, ordered by category
// score. Brands with fewer complaints in the category than the sample floor
// are skipped so tiny samples do not top the table.
func CategoryLeaders(brands []models.BrandMetric, category string) []models.BrandMetric {
	var leaders []models.BrandMetric
	for _, b := range brands {
		if cat, ok := b.Categories[category]; ok && cat.Total >= config.CategoryLeaderMinComplaints {
			leaders = append(leaders, b)
		}
	}

	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].Categories[category].Score > leaders[j].Categories[category].Score
	})

	if len(leaders) > config.TopBrandCount {
		leaders = leaders[:config.TopBrandCount]
	}
	return leaders
}
