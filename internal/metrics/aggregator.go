// Package metrics turns the approved complaint list into per-brand metrics:
// resolution rate, average rating, simulated response speed and a weighted
// overall score, with category-level breakdowns, rankings and board-wide
// summary statistics.
package metrics

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/aslnygz/ygz/internal/config"
	"github.com/aslnygz/ygz/internal/models"
)

// SpeedFn supplies the simulated response time (in days) for one complaint.
// The data model has no real resolution timestamp, so the value is fabricated;
// keeping the function injectable makes the aggregation testable.
type SpeedFn func(c *models.Complaint) float64

// RandomSpeed draws uniformly from the configured [1,10] day range.
func RandomSpeed(_ *models.Complaint) float64 {
	return float64(config.MinResponseDays + rand.Intn(config.MaxResponseDays-config.MinResponseDays+1))
}

// FixedSpeed returns a SpeedFn that always yields days, for deterministic runs.
func FixedSpeed(days float64) SpeedFn {
	return func(_ *models.Complaint) float64 { return days }
}

// Aggregator computes brand metrics from a complaint snapshot. It holds no
// state besides the speed source; Compute is a pure projection of its input.
type Aggregator struct {
	Speed SpeedFn
}

// NewAggregator creates an Aggregator with the default randomized speed.
func NewAggregator() *Aggregator {
	return &Aggregator{Speed: RandomSpeed}
}

// brandAccum collects the running sums for one brand (and its categories)
// during the single pass over the complaint list.
type brandAccum struct {
	name          string
	total         int
	resolved      int
	ratingSum     float64
	ratedCount    int
	speedSum      float64
	lastComplaint *models.Complaint
	categories    map[string]*categoryAccum
}

type categoryAccum struct {
	total      int
	resolved   int
	ratingSum  float64
	ratedCount int
}

// Compute groups the complaints by brand and derives one BrandMetric per
// distinct brand. Input must already be filtered to approved complaints;
// records without a brand are skipped entirely. Output order is unspecified,
// callers sort as needed.
func (a *Aggregator) Compute(complaints []models.Complaint) []models.BrandMetric {
	speed := a.Speed
	if speed == nil {
		speed = RandomSpeed
	}

	accums := map[string]*brandAccum{}
	var order []string

	for i := range complaints {
		c := &complaints[i]
		brand := strings.TrimSpace(c.Brand)
		if brand == "" {
			continue
		}

		key := strings.ToLower(brand)
		acc, ok := accums[key]
		if !ok {
			acc = &brandAccum{
				name:       capitalizeFirst(brand),
				categories: map[string]*categoryAccum{},
			}
			accums[key] = acc
			order = append(order, key)
		}

		acc.total++
		resolved := c.Status.IsResolved()
		if resolved {
			acc.resolved++
		}
		if acc.lastComplaint == nil || c.Date.After(acc.lastComplaint.Date) {
			acc.lastComplaint = c
		}

		avg, rated := c.AverageRating()
		if rated {
			acc.ratingSum += avg
			acc.ratedCount++
		}

		category := c.Category
		if category == "" {
			category = config.DefaultCategory
		}
		cat, ok := acc.categories[category]
		if !ok {
			cat = &categoryAccum{}
			acc.categories[category] = cat
		}
		cat.total++
		if resolved {
			cat.resolved++
		}
		if rated {
			cat.ratingSum += avg
			cat.ratedCount++
		}

		acc.speedSum += speed(c)
	}

	brandMetrics := make([]models.BrandMetric, 0, len(order))
	for _, key := range order {
		acc := accums[key]
		if acc.total == 0 {
			continue
		}

		avgResponseDays := acc.speedSum / float64(acc.total)
		resolutionRate := float64(acc.resolved) / float64(acc.total) * 100
		avgRating := 0.0
		if acc.ratedCount > 0 {
			avgRating = acc.ratingSum / float64(acc.ratedCount)
		}

		categories := make(map[string]models.CategoryMetric, len(acc.categories))
		for name, cat := range acc.categories {
			catResolutionRate := 0.0
			if cat.total > 0 {
				catResolutionRate = float64(cat.resolved) / float64(cat.total) * 100
			}
			catAvgRating := 0.0
			if cat.ratedCount > 0 {
				catAvgRating = cat.ratingSum / float64(cat.ratedCount)
			}
			categories[name] = models.CategoryMetric{
				Total:          cat.total,
				Resolved:       cat.resolved,
				ResolutionRate: catResolutionRate,
				AvgRating:      catAvgRating,
				Score: catResolutionRate*config.CategoryResolutionWeight +
					catAvgRating*config.RatingScale*config.CategoryRatingWeight,
			}
		}

		// Faster responses score higher: 10 days maps to 0, 1 day to 90.
		responseScore := float64(config.MaxResponseDays) - avgResponseDays
		overallScore := resolutionRate*config.ResolutionWeight +
			avgRating*config.RatingScale*config.RatingWeight +
			responseScore*10*config.SpeedWeight

		brandMetrics = append(brandMetrics, models.BrandMetric{
			Name:               acc.name,
			TotalComplaints:    acc.total,
			ResolvedComplaints: acc.resolved,
			ResolutionRate:     resolutionRate,
			AvgRating:          avgRating,
			ResponseSpeed:      avgResponseDays,
			OverallScore:       overallScore,
			LastComplaintDate:  acc.lastComplaint.Date,
			Categories:         categories,
		})
	}

	return brandMetrics
}

// capitalizeFirst upper-cases the first rune and lower-cases the rest,
// producing the display name from the first occurrence of a brand.
func capitalizeFirst(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
