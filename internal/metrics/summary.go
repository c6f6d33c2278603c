package metrics

import (
	"github.com/aslnygz/ygz/internal/config"
	"github.com/aslnygz/ygz/internal/models"
)

// Summarize derives the board-wide digest from the approved complaint list
// and the already computed brand metrics. Categories below their sample
// floors are left out of the best-category and fastest-sector picks.
func Summarize(complaints []models.Complaint, brands []models.BrandMetric) models.SummaryStats {
	type catStat struct {
		total    int
		resolved int
	}
	categoryStats := map[string]*catStat{}

	for i := range complaints {
		category := complaints[i].Category
		if category == "" {
			category = config.DefaultCategory
		}
		stat, ok := categoryStats[category]
		if !ok {
			stat = &catStat{}
			categoryStats[category] = stat
		}
		stat.total++
		if complaints[i].Status.IsResolved() {
			stat.resolved++
		}
	}

	summary := models.SummaryStats{
		TotalComplaints: len(complaints),
		TotalBrands:     len(brands),
	}

	totalResolved, totalComplaints := 0, 0
	for category, stat := range categoryStats {
		totalResolved += stat.resolved
		totalComplaints += stat.total

		if stat.total > summary.TopComplaintCategoryCount {
			summary.TopComplaintCategory = category
			summary.TopComplaintCategoryCount = stat.total
		}

		if stat.total < config.BestCategoryMinComplaints {
			continue
		}
		rate := float64(stat.resolved) / float64(stat.total) * 100
		if rate > summary.BestCategoryRate {
			summary.BestCategory = category
			summary.BestCategoryRate = rate
		}
	}

	if totalComplaints > 0 {
		summary.AvgResolutionRate = float64(totalResolved) / float64(totalComplaints) * 100
	}

	// Fastest sector: average the contributing brands' simulated response
	// speeds per category. A real per-category speed does not exist in the
	// data, so each brand contributes its overall speed to every category it
	// appears in.
	type speedStat struct {
		sum   float64
		count int
	}
	categorySpeeds := map[string]*speedStat{}
	for _, b := range brands {
		for category := range b.Categories {
			stat, ok := categorySpeeds[category]
			if !ok {
				stat = &speedStat{}
				categorySpeeds[category] = stat
			}
			stat.sum += b.ResponseSpeed
			stat.count++
		}
	}

	fastest := 0.0
	for category, stat := range categorySpeeds {
		if stat.count < config.FastestSectorMinEntries {
			continue
		}
		avg := stat.sum / float64(stat.count)
		if summary.FastestSector == "" || avg < fastest {
			summary.FastestSector = category
			fastest = avg
		}
	}
	summary.FastestSectorDays = fastest

	return summary
}
