package handlers

import (
	"encoding/csv"
	"net/http"
	"time"

	"eventvote/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// Spin handles POST /api/admin/spin.
func (h *HTTPHandler) Spin(c *gin.Context) {
	var req models.SpinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Count < 1 {
		sendError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	resp, err := h.draw.Spin(c.Request.Context(), req.PrizeType, req.Count)
	if err != nil {
		respondError(c, err, "Failed to spin")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListWinners handles GET /api/admin/spin?prizeType=.
func (h *HTTPHandler) ListWinners(c *gin.Context) {
	resp, err := h.draw.Winners(c.Request.Context(), models.PrizeType(c.Query("prizeType")))
	if err != nil {
		respondError(c, err, "Failed to fetch winners")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPrizes handles GET /api/admin/prizes.
func (h *HTTPHandler) ListPrizes(c *gin.Context) {
	prizes, err := h.draw.Prizes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch prizes")
		return
	}
	c.JSON(http.StatusOK, prizes)
}

// ExportWinnersCSV handles GET /api/admin/spin/export, downloading every
// winner as a CSV file.
func (h *HTTPHandler) ExportWinnersCSV(c *gin.Context) {
	resp, err := h.draw.Winners(c.Request.Context(), "")
	if err != nil {
		respondError(c, err, "Failed to fetch winners")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=lucky_draw_winners.csv")

	// BOM so Excel reads the file as UTF-8
	c.Writer.Write([]byte("\xef\xbb\xbf"))

	w := csv.NewWriter(c.Writer)

	if err := w.Write([]string{"Prize", "Employee Code", "Name", "Department", "Won At"}); err != nil {
		logger.Errorf("Error writing CSV header: %v", err)
		return
	}

	for _, winner := range resp.Winners {
		row := []string{"", winner.EmployeeCode, winner.Name, winner.Department, ""}
		if winner.PrizeType != nil {
			row[0] = string(*winner.PrizeType)
		}
		if winner.WonAt != nil {
			row[4] = winner.WonAt.Format(time.RFC3339)
		}
		if err := w.Write(row); err != nil {
			logger.Errorf("Error writing CSV row: %v", err)
			return
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		logger.Errorf("Error flushing CSV writer: %v", err)
	}
}
