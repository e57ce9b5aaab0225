package handlers

import (
	"net/http"

	"eventvote/internal/models"

	"github.com/gin-gonic/gin"
)

// ListCandidates handles GET /api/candidates?category=. Results are ranked
// by votes and never cached, since counts change on every vote.
func (h *HTTPHandler) ListCandidates(c *gin.Context) {
	candidates, err := h.candidates.List(c.Request.Context(), models.Category(c.Query("category")))
	if err != nil {
		respondError(c, err, "Failed to fetch candidates")
		return
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.JSON(http.StatusOK, candidates)
}

// CreateCandidate handles POST /api/admin/candidates.
func (h *HTTPHandler) CreateCandidate(c *gin.Context) {
	var req models.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	candidate, err := h.candidates.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create candidate")
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// DeleteCandidate handles DELETE /api/admin/candidates?id=.
func (h *HTTPHandler) DeleteCandidate(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		sendError(c, http.StatusBadRequest, "Candidate ID required")
		return
	}

	if err := h.candidates.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete candidate")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BulkDeleteCandidates handles POST /api/admin/candidates/bulk-delete.
func (h *HTTPHandler) BulkDeleteCandidates(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		sendError(c, http.StatusBadRequest, "Invalid candidate IDs")
		return
	}

	deleted, err := h.candidates.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		if isValidationError(err) {
			sendError(c, http.StatusBadRequest, "Invalid candidate IDs")
			return
		}
		respondError(c, err, "Failed to delete candidates")
		return
	}

	c.JSON(http.StatusOK, models.BulkDeleteResponse{Success: true, DeletedCount: deleted})
}
