package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aslnygz/ygz/internal/board"
	"github.com/aslnygz/ygz/internal/config"
	"github.com/aslnygz/ygz/internal/localization"
)

func lang(c *gin.Context) string {
	return c.DefaultQuery("lang", localization.DefaultLang)
}

func complaintID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return 0, false
	}
	return id, true
}

// storeError maps board errors onto HTTP responses.
func storeError(c *gin.Context, err error) {
	var vErr *board.ValidationError
	switch {
	case errors.Is(err, board.ErrNotFound), errors.Is(err, board.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrPendingApproval), errors.Is(err, board.ErrAlreadyApproved):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ListComplaints returns the approved complaints, optionally filtered by
// category, brand and a free-text term, newest first.
func (h *Handler) ListComplaints(c *gin.Context) {
	complaints := h.Store.ListApproved()

	category := strings.TrimSpace(c.Query("category"))
	brand := strings.TrimSpace(c.Query("brand"))
	term := strings.ToLower(strings.TrimSpace(c.Query("q")))

	filtered := complaints[:0]
	for _, cm := range complaints {
		if category != "" && cm.Category != category {
			continue
		}
		if brand != "" && !strings.EqualFold(strings.TrimSpace(cm.Brand), brand) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(cm.Title), term) &&
			!strings.Contains(strings.ToLower(cm.Description), term) {
			continue
		}
		filtered = append(filtered, cm)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(config.RankingsPageSize)))
	if pageSize <= 0 {
		pageSize = config.RankingsPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints": h.views(filtered[start:end], lang(c)),
		"page":       page,
		"totalPages": totalPages,
		"total":      total,
	})
}

// GetComplaint returns one approved complaint. Pending complaints are not
// visible publicly and read as not found.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	complaint, err := h.Store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if complaint.PendingApproval {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	c.JSON(http.StatusOK, h.view(*complaint, lang(c)))
}

// SubmitComplaint files a new complaint; it stays pending until approved.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	var sub board.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.Store.Add(sub)
	if err != nil {
		storeError(c, err)
		return
	}

	h.Notifier.NewComplaint(complaint)
	c.JSON(http.StatusCreated, gin.H{
		"complaint": h.view(*complaint, lang(c)),
		"message":   h.Localizer.GetString(lang(c), "msg.complaint_submitted"),
	})
}

type commentRequest struct {
	Text     string `json:"text" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
	ParentID string `json:"parentId"`
}

// AddComment appends a comment or a reply to an approved complaint.
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.Store.AddComment(id, req.Text, req.UserID, req.ParentID)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"comment": comment,
		"message": h.Localizer.GetString(lang(c), "msg.comment_added"),
	})
}

type voteRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// LikeComplaint toggles the caller's like on a complaint.
func (h *Handler) LikeComplaint(c *gin.Context) {
	h.vote(c, h.Store.Like)
}

// DislikeComplaint toggles the caller's dislike on a complaint.
func (h *Handler) DislikeComplaint(c *gin.Context) {
	h.vote(c, h.Store.Dislike)
}

func (h *Handler) vote(c *gin.Context, apply func(int, string) error) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := apply(id, req.UserID); err != nil {
		storeError(c, err)
		return
	}

	complaint, err := h.Store.Get(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"likes":    len(complaint.Likes),
		"dislikes": len(complaint.Dislikes),
	})
}
