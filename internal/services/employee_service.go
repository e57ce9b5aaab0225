package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"eventvote/internal/models"
	"eventvote/internal/repository"

	"github.com/google/logger"
)

var (
	errIncompleteEmployee = errors.New("employee code, name and department are required")
	errMalformedEmployee  = errors.New("malformed employee")
)

// EmployeeService maintains the lucky draw roster.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

func NewEmployeeService(store repository.Store) *EmployeeService {
	return &EmployeeService{
		employees: store.Employees(),
	}
}

// Upload upserts every row by employee code. Rows succeed or fail on their
// own; a bad row is recorded and the rest are still processed.
func (s *EmployeeService) Upload(ctx context.Context, rows []models.EmployeeInput, clearExisting bool) (*models.UploadResult, error) {
	return s.upload(ctx, len(rows), clearExisting, func(i int) (models.EmployeeInput, error) {
		return rows[i], nil
	})
}

// UploadJSON is Upload for rows still in their JSON form. A row that does
// not decode into an employee counts as a failed row.
func (s *EmployeeService) UploadJSON(ctx context.Context, rows []json.RawMessage, clearExisting bool) (*models.UploadResult, error) {
	return s.upload(ctx, len(rows), clearExisting, func(i int) (models.EmployeeInput, error) {
		var input models.EmployeeInput
		if err := json.Unmarshal(rows[i], &input); err != nil {
			return input, fmt.Errorf("row %d: %w: %v", i+1, errMalformedEmployee, err)
		}
		return input, nil
	})
}

func (s *EmployeeService) upload(ctx context.Context, n int, clearExisting bool, row func(i int) (models.EmployeeInput, error)) (*models.UploadResult, error) {
	if clearExisting {
		deleted, err := s.employees.DeleteAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to clear employees: %w", err)
		}
		logger.Infof("cleared %d employees before upload", deleted)
	}

	result := &models.UploadResult{Errors: []string{}}
	for i := 0; i < n; i++ {
		raw, err := row(i)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		input := normalizeEmployee(raw)
		if err := s.upsert(ctx, input); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", input.EmployeeCode, err))
			continue
		}
		result.Success++
	}

	result.Message = fmt.Sprintf("Processed %d employees successfully, %d failed", result.Success, result.Failed)
	logger.Infof("employee upload: %d succeeded, %d failed", result.Success, result.Failed)
	return result, nil
}

func (s *EmployeeService) upsert(ctx context.Context, input models.EmployeeInput) error {
	if input.EmployeeCode == "" || input.Name == "" || input.Department == "" {
		return errIncompleteEmployee
	}
	return s.employees.Upsert(ctx, input)
}

func normalizeEmployee(row models.EmployeeInput) models.EmployeeInput {
	return models.EmployeeInput{
		EmployeeCode: strings.ToUpper(strings.TrimSpace(row.EmployeeCode)),
		Name:         strings.TrimSpace(row.Name),
		Department:   strings.TrimSpace(row.Department),
	}
}

// List returns the roster, optionally filtered by won state.
func (s *EmployeeService) List(ctx context.Context, hasWonPrize *bool) ([]models.Employee, error) {
	return s.employees.List(ctx, hasWonPrize)
}

func (s *EmployeeService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.employees.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employees: %w", err)
	}
	logger.Infof("deleted all %d employees", deleted)
	return deleted, nil
}

// Reset clears the won state of every employee so the draw can start over.
func (s *EmployeeService) Reset(ctx context.Context) (int64, error) {
	n, err := s.employees.ResetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset employees: %w", err)
	}
	logger.Infof("reset won state of %d employees", n)
	return n, nil
}
