package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aslnygz/ygz/internal/config"
	"github.com/aslnygz/ygz/internal/metrics"
)

// GetBrandRankings computes the brand metrics over the approved complaints
// and returns a filtered, sorted page of the ranking table.
func (h *Handler) GetBrandRankings(c *gin.Context) {
	brands := h.Aggregator.Compute(h.Store.ListApproved())

	filter := metrics.Filter{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   c.Query("q"),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("minComplaints", "0")); err == nil {
		filter.MinComplaints = v
	}

	sorted := metrics.SortBrands(metrics.FilterBrands(brands, filter), metrics.SortKey(c.DefaultQuery("sort", string(metrics.SortOverallScore))))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(config.RankingsPageSize)))
	pageItems, totalPages := metrics.Paginate(sorted, page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"brands":     pageItems,
		"page":       page,
		"totalPages": totalPages,
		"total":      len(sorted),
	})
}

// GetTopBrands returns the best brands by overall score.
func (h *Handler) GetTopBrands(c *gin.Context) {
	brands := metrics.SortBrands(h.Aggregator.Compute(h.Store.ListApproved()), metrics.SortOverallScore)
	if len(brands) > config.TopBrandCount {
		brands = brands[:config.TopBrandCount]
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// GetCategoryLeaders returns the top brands of one complaint category.
func (h *Handler) GetCategoryLeaders(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}

	brands := h.Aggregator.Compute(h.Store.ListApproved())
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"leaders":  metrics.CategoryLeaders(brands, category),
	})
}

// GetBrandProfile returns one brand's metric and its complaints.
func (h *Handler) GetBrandProfile(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand name is required"})
		return
	}

	approved := h.Store.ListApproved()
	for _, brand := range h.Aggregator.Compute(approved) {
		if !strings.EqualFold(brand.Name, name) {
			continue
		}

		var complaints []complaintView
		for _, cm := range approved {
			if strings.EqualFold(strings.TrimSpace(cm.Brand), name) {
				complaints = append(complaints, h.view(cm, lang(c)))
			}
		}
		c.JSON(http.StatusOK, gin.H{"brand": brand, "complaints": complaints})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
}

// GetSummary returns the board-wide digest shown above the rankings.
func (h *Handler) GetSummary(c *gin.Context) {
	approved := h.Store.ListApproved()
	brands := h.Aggregator.Compute(approved)
	c.JSON(http.StatusOK, metrics.Summarize(approved, brands))
}
