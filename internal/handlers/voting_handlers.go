package handlers

import (
	"net/http"

	"eventvote/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// CastVote handles POST /api/vote.
func (h *HTTPHandler) CastVote(c *gin.Context) {
	var req models.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	votes, err := h.voting.CastVote(c.Request.Context(), req.CandidateID, req.Category, clientIP(c))
	if err != nil {
		respondError(c, err, "Failed to record vote")
		return
	}

	c.JSON(http.StatusOK, models.CastVoteResponse{Success: true, Votes: votes})
}

// RetractVote handles DELETE /api/vote, the client's best-effort undo.
func (h *HTTPHandler) RetractVote(c *gin.Context) {
	var req models.RetractVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Candidate ID required")
		return
	}

	votes, err := h.voting.RetractVote(c.Request.Context(), req.CandidateID, clientIP(c))
	if err != nil {
		respondError(c, err, "Failed to retract vote")
		return
	}

	c.JSON(http.StatusOK, models.CastVoteResponse{Success: true, Votes: votes})
}

// VotedCandidates handles GET /api/vote?category=&ip=.
func (h *HTTPHandler) VotedCandidates(c *gin.Context) {
	category := models.Category(c.Query("category"))
	ip := c.Query("ip")
	if category == "" || ip == "" {
		sendError(c, http.StatusBadRequest, "Missing required parameters")
		return
	}

	ids, err := h.voting.VotedCandidates(c.Request.Context(), ip, category)
	if err != nil {
		respondError(c, err, "Failed to fetch vote status")
		return
	}

	c.JSON(http.StatusOK, models.VotedCandidatesResponse{VotedCandidateIDs: ids})
}

// GetVotingStatus handles GET /api/voting-status.
func (h *HTTPHandler) GetVotingStatus(c *gin.Context) {
	status, err := h.voting.Status(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch voting sessions")
		return
	}
	c.JSON(http.StatusOK, status)
}

// SetVotingStatus handles POST /api/admin/voting.
func (h *HTTPHandler) SetVotingStatus(c *gin.Context) {
	var req models.ToggleVotingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	session, err := h.voting.SetStatus(c.Request.Context(), req.Category, *req.IsActive)
	if err != nil {
		respondError(c, err, "Failed to update voting session")
		return
	}

	logger.Infof("admin toggled %s voting to %t", req.Category, *req.IsActive)
	c.JSON(http.StatusOK, session)
}
