package handlers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"eventvote/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

// ListEmployees handles GET /api/admin/employees?hasWonPrize=.
func (h *HTTPHandler) ListEmployees(c *gin.Context) {
	var hasWonPrize *bool
	if v, ok := c.GetQuery("hasWonPrize"); ok {
		won := v == "true"
		hasWonPrize = &won
	}

	employees, err := h.employees.List(c.Request.Context(), hasWonPrize)
	if err != nil {
		respondError(c, err, "Failed to fetch employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// UploadEmployees handles POST /api/admin/employees with a JSON roster.
func (h *HTTPHandler) UploadEmployees(c *gin.Context) {
	var req models.UploadEmployeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid data format")
		return
	}

	result, err := h.employees.UploadJSON(c.Request.Context(), req.Employees, req.ClearExisting)
	if err != nil {
		respondError(c, err, "Failed to upload employees")
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadEmployeesCSV handles POST /api/admin/employees/csv. The file has
// the columns code, name, department; an optional header row is skipped.
// Rows with missing columns are reported as failed rows.
func (h *HTTPHandler) UploadEmployeesCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("employeeCSV")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Error retrieving file: "+err.Error())
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []models.EmployeeInput
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			sendError(c, http.StatusBadRequest, "Error reading CSV: "+err.Error())
			return
		}

		if line == 1 && isHeaderRow(record) {
			continue
		}
		if len(record) != 3 {
			logger.Infof("Malformed employee CSV record on line %d: %v", line, record)
		}

		rows = append(rows, employeeFromRecord(record))
	}

	clearExisting, _ := strconv.ParseBool(c.PostForm("clearExisting"))
	result, err := h.employees.Upload(c.Request.Context(), rows, clearExisting)
	if err != nil {
		respondError(c, err, "Failed to upload employees")
		return
	}
	c.JSON(http.StatusOK, result)
}

func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	return first == "employeecode" || first == "employee_code" || first == "code"
}

func employeeFromRecord(record []string) models.EmployeeInput {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return models.EmployeeInput{
		EmployeeCode: field(0),
		Name:         field(1),
		Department:   field(2),
	}
}

// DeleteEmployees handles DELETE /api/admin/employees.
func (h *HTTPHandler) DeleteEmployees(c *gin.Context) {
	deleted, err := h.employees.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to delete employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted all employees", "deletedCount": deleted})
}

// ResetEmployees handles POST /api/admin/employees/reset.
func (h *HTTPHandler) ResetEmployees(c *gin.Context) {
	n, err := h.employees.Reset(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to reset employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reset all employees", "resetCount": n})
}
