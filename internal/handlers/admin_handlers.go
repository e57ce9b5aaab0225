package handlers

import (
	"errors"
	"net/http"

	"eventvote/internal/models"
	"eventvote/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// AdminLogin handles POST /api/admin/auth. It only confirms the
// credentials; the client then sends the password header on admin calls.
func (h *HTTPHandler) AdminLogin(c *gin.Context) {
	var req models.AdminAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	emailOK := secretEqual(req.Email, h.adminEmail)
	passwordOK := secretEqual(req.Password, h.adminPassword)
	if !emailOK || !passwordOK {
		logger.Warningf("failed admin login from %s", clientIP(c))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadSignature handles POST /api/admin/cloudinary-signature.
func (h *HTTPHandler) UploadSignature(c *gin.Context) {
	var req models.UploadSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Filename required")
		return
	}

	resp, err := h.signer.Sign(req.Filename)
	if err != nil {
		respondError(c, err, "Failed to sign upload")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidID) ||
		errors.Is(err, services.ErrNoIDs) ||
		errors.Is(err, services.ErrInvalidCategory)
}
