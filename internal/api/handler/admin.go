package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aslnygz/ygz/internal/board"
)

// ListPending returns the complaints waiting in the moderation queue.
func (h *Handler) ListPending(c *gin.Context) {
	pending := h.Store.ListPending()
	c.JSON(http.StatusOK, gin.H{
		"complaints": h.views(pending, lang(c)),
		"total":      len(pending),
	})
}

// ApproveComplaint clears the moderation gate; the complaint becomes Open and
// visible to aggregation.
func (h *Handler) ApproveComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	if err := h.Store.Approve(id); err != nil {
		storeError(c, err)
		return
	}

	if complaint, err := h.Store.Get(id); err == nil {
		h.Notifier.ComplaintApproved(complaint)
	}
	c.JSON(http.StatusOK, gin.H{"message": h.Localizer.GetString(lang(c), "msg.complaint_approved")})
}

// RejectComplaint removes a complaint that never passed moderation.
func (h *Handler) RejectComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	if err := h.Store.Reject(id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.Localizer.GetString(lang(c), "msg.complaint_rejected")})
}

// UpdateComplaint edits the admin-editable fields of a complaint.
func (h *Handler) UpdateComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	var upd board.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Update(id, upd); err != nil {
		storeError(c, err)
		return
	}

	complaint, err := h.Store.Get(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(*complaint, lang(c)))
}

// DeleteComplaint removes a complaint regardless of its state.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	id, ok := complaintID(c)
	if !ok {
		return
	}

	if err := h.Store.Delete(id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.Localizer.GetString(lang(c), "msg.complaint_deleted")})
}
