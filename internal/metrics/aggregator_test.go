package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aslnygz/ygz/internal/metrics"
	"github.com/aslnygz/ygz/internal/models"
)

func complaint(brand, category string, status models.Status, ratings map[string]float64) models.Complaint {
	return models.Complaint{
		Title:    "test",
		Brand:    brand,
		Category: category,
		Status:   status,
		Date:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Ratings:  ratings,
		Likes:    map[string]bool{},
		Dislikes: map[string]bool{},
	}
}

func fixedAggregator(days float64) *metrics.Aggregator {
	return &metrics.Aggregator{Speed: metrics.FixedSpeed(days)}
}

// findBrand fails the test when the brand is absent from the output.
func findBrand(t *testing.T, brands []models.BrandMetric, name string) models.BrandMetric {
	t.Helper()
	for _, b := range brands {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("brand %q not found in metrics", name)
	return models.BrandMetric{}
}

// TestCompute_SingleBrandScenario: one brand, 3 complaints, 2 resolved,
// per-complaint averages of 4.0 each.
func TestCompute_SingleBrandScenario(t *testing.T) {
	// Arrange
	complaints := []models.Complaint{
		complaint("Acme", "Delivery", models.StatusResolved, map[string]float64{"Service": 4}),
		complaint("Acme", "Delivery", models.StatusResolved, map[string]float64{"Service": 3, "Price": 5}),
		complaint("Acme", "Billing", models.StatusOpen, map[string]float64{"Service": 4}),
	}

	// Act
	brands := fixedAggregator(5).Compute(complaints)

	// Assert
	assert.Len(t, brands, 1)
	acme := findBrand(t, brands, "Acme")
	assert.Equal(t, 3, acme.TotalComplaints)
	assert.Equal(t, 2, acme.ResolvedComplaints)
	assert.InDelta(t, 66.7, acme.ResolutionRate, 0.05)
	assert.InDelta(t, 4.0, acme.AvgRating, 1e-9)
	assert.InDelta(t, 5.0, acme.ResponseSpeed, 1e-9)
}

// TestCompute_OverallScoreWeights checks the 60/30/10 composite with a fixed speed.
func TestCompute_OverallScoreWeights(t *testing.T) {
	complaints := []models.Complaint{
		complaint("Acme", "Delivery", models.StatusResolved, map[string]float64{"Service": 4}),
		complaint("Acme", "Delivery", models.StatusOpen, map[string]float64{"Service": 4}),
	}

	brands := fixedAggregator(2).Compute(complaints)

	acme := findBrand(t, brands, "Acme")
	// 0.6*50 + 0.3*(4*20) + 0.1*((10-2)*10) = 30 + 24 + 8
	assert.InDelta(t, 62.0, acme.OverallScore, 1e-9)
}

// TestCompute_BlankBrandSkipped: a whitespace-only brand contributes nowhere.
func TestCompute_BlankBrandSkipped(t *testing.T) {
	complaints := []models.Complaint{
		complaint("  ", "Delivery", models.StatusOpen, nil),
		complaint("Acme", "Delivery", models.StatusOpen, nil),
	}

	brands := fixedAggregator(5).Compute(complaints)

	assert.Len(t, brands, 1)
	assert.Equal(t, 1, findBrand(t, brands, "Acme").TotalComplaints)
}

// TestCompute_OutOfRangeRatingExcluded: a 6 is not a rating; a complaint whose
// only rating is invalid counts as unrated.
func TestCompute_OutOfRangeRatingExcluded(t *testing.T) {
	complaints := []models.Complaint{
		complaint("Acme", "Delivery", models.StatusOpen, map[string]float64{"Service": 6}),
	}

	brands := fixedAggregator(5).Compute(complaints)

	acme := findBrand(t, brands, "Acme")
	assert.Equal(t, 1, acme.TotalComplaints)
	assert.Zero(t, acme.AvgRating, "unrated brand reads as 0")
}

// TestCompute_TotalsMatchInput: sum of per-brand totals equals the number of
// complaints with a non-blank brand, with case-insensitive grouping.
func TestCompute_TotalsMatchInput(t *testing.T) {
	complaints := []models.Complaint{
		complaint("acme", "Delivery", models.StatusOpen, nil),
		complaint("ACME", "Billing", models.StatusResolved, nil),
		complaint(" Acme ", "Billing", models.StatusOpen, nil),
		complaint("Globex", "Delivery", models.StatusOpen, nil),
		complaint("", "Delivery", models.StatusOpen, nil),
	}

	brands := fixedAggregator(5).Compute(complaints)

	total := 0
	for _, b := range brands {
		total += b.TotalComplaints
		assert.GreaterOrEqual(t, b.ResolutionRate, 0.0)
		assert.LessOrEqual(t, b.ResolutionRate, 100.0)
	}
	assert.Equal(t, 4, total)
	assert.Len(t, brands, 2, "brand grouping must ignore case and surrounding space")
	assert.Equal(t, 3, findBrand(t, brands, "Acme").TotalComplaints)
}

// TestCompute_CategoryBuckets: blank categories land in "Other" and the
// category score follows the 70/30 weighting.
func TestCompute_CategoryBuckets(t *testing.T) {
	complaints := []models.Complaint{
		complaint("Acme", "", models.StatusResolved, map[string]float64{"Service": 5}),
		complaint("Acme", "", models.StatusOpen, map[string]float64{"Service": 3}),
		complaint("Acme", "Delivery", models.StatusOpen, nil),
	}

	brands := fixedAggregator(5).Compute(complaints)
	acme := findBrand(t, brands, "Acme")

	other, ok := acme.Categories["Other"]
	assert.True(t, ok, "blank category defaults to Other")
	assert.Equal(t, 2, other.Total)
	assert.Equal(t, 1, other.Resolved)
	assert.InDelta(t, 50.0, other.ResolutionRate, 1e-9)
	assert.InDelta(t, 4.0, other.AvgRating, 1e-9)
	// 0.7*50 + 0.3*(4*20) = 35 + 24
	assert.InDelta(t, 59.0, other.Score, 1e-9)

	delivery := acme.Categories["Delivery"]
	assert.Equal(t, 1, delivery.Total)
	assert.Zero(t, delivery.AvgRating)
}

// TestCompute_Idempotent: with a fixed speed source, two runs agree exactly.
func TestCompute_Idempotent(t *testing.T) {
	complaints := []models.Complaint{
		complaint("Acme", "Delivery", models.StatusResolved, map[string]float64{"Service": 4, "Price": 2}),
		complaint("Acme", "Billing", models.StatusOpen, map[string]float64{"Service": 1}),
		complaint("Globex", "Delivery", models.StatusClosed, nil),
	}
	agg := fixedAggregator(3)

	first := agg.Compute(complaints)
	second := agg.Compute(complaints)

	assert.Equal(t, first, second)
}

// TestCompute_EmptyInput returns an empty list, never an error or a panic.
func TestCompute_EmptyInput(t *testing.T) {
	assert.Empty(t, fixedAggregator(5).Compute(nil))
	assert.Empty(t, fixedAggregator(5).Compute([]models.Complaint{}))
}

// TestCompute_LastComplaintDate tracks the newest complaint per brand.
func TestCompute_LastComplaintDate(t *testing.T) {
	older := complaint("Acme", "Delivery", models.StatusOpen, nil)
	older.Date = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := complaint("Acme", "Delivery", models.StatusOpen, nil)
	newer.Date = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	brands := fixedAggregator(5).Compute([]models.Complaint{older, newer})

	assert.Equal(t, newer.Date, findBrand(t, brands, "Acme").LastComplaintDate)
}

// TestCompute_ResolvedMatchIgnoresCase accepts differently-cased stored labels.
func TestCompute_ResolvedMatchIgnoresCase(t *testing.T) {
	c := complaint("Acme", "Delivery", models.Status("resolved"), nil)

	brands := fixedAggregator(5).Compute([]models.Complaint{c})

	assert.Equal(t, 1, findBrand(t, brands, "Acme").ResolvedComplaints)
}

// TestRandomSpeed_StaysInRange: the default simulation draws whole days in [1,10].
func TestRandomSpeed_StaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		days := metrics.RandomSpeed(nil)
		assert.GreaterOrEqual(t, days, 1.0)
		assert.LessOrEqual(t, days, 10.0)
	}
}
