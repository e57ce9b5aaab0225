package memory

import (
	"context"
	"sort"
	"time"

	"eventvote/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type employeeRepository Store

func (r *employeeRepository) Upsert(ctx context.Context, input models.EmployeeInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if id, ok := r.byCode[input.EmployeeCode]; ok {
		e := r.employees[id]
		e.Name = input.Name
		e.Department = input.Department
		e.UpdatedAt = now
		return nil
	}

	e := &models.Employee{
		ID:           primitive.NewObjectID(),
		EmployeeCode: input.EmployeeCode,
		Name:         input.Name,
		Department:   input.Department,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.employees[e.ID] = e
	r.byCode[e.EmployeeCode] = e.ID
	return nil
}

func (r *employeeRepository) List(ctx context.Context, hasWonPrize *bool) ([]models.Employee, error) {
	employees := r.filter(func(e *models.Employee) bool {
		return hasWonPrize == nil || e.HasWonPrize == *hasWonPrize
	})
	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].CreatedAt.After(employees[j].CreatedAt)
	})
	return employees, nil
}

func (r *employeeRepository) Eligible(ctx context.Context) ([]models.Employee, error) {
	employees := r.filter(func(e *models.Employee) bool { return !e.HasWonPrize })
	// Map iteration order is random; give callers a stable pool.
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeCode < employees[j].EmployeeCode
	})
	return employees, nil
}

func (r *employeeRepository) MarkWinners(ctx context.Context, ids []primitive.ObjectID, prizeType models.PrizeType, wonAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched int64
	for _, id := range ids {
		e, ok := r.employees[id]
		if !ok {
			continue
		}
		pt := prizeType
		at := wonAt
		e.HasWonPrize = true
		e.PrizeType = &pt
		e.WonAt = &at
		e.UpdatedAt = wonAt
		matched++
	}
	return matched, nil
}

func (r *employeeRepository) Winners(ctx context.Context, prizeType models.PrizeType) ([]models.Employee, error) {
	winners := r.filter(func(e *models.Employee) bool {
		return e.HasWonPrize && (prizeType == "" || (e.PrizeType != nil && *e.PrizeType == prizeType))
	})
	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].WonAt.After(*winners[j].WonAt)
	})
	return winners, nil
}

func (r *employeeRepository) CountWinners(ctx context.Context, prizeType models.PrizeType) (int64, error) {
	winners, _ := r.Winners(ctx, prizeType)
	return int64(len(winners)), nil
}

func (r *employeeRepository) ResetAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for _, e := range r.employees {
		e.HasWonPrize = false
		e.PrizeType = nil
		e.WonAt = nil
		e.UpdatedAt = now
	}
	return int64(len(r.employees)), nil
}

func (r *employeeRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.employees))
	r.employees = make(map[primitive.ObjectID]*models.Employee)
	r.byCode = make(map[string]primitive.ObjectID)
	return n, nil
}

// filter copies every employee matching keep, deep-copying the pointer fields.
func (r *employeeRepository) filter(keep func(*models.Employee) bool) []models.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := []models.Employee{}
	for _, e := range r.employees {
		if !keep(e) {
			continue
		}
		c := *e
		if e.PrizeType != nil {
			pt := *e.PrizeType
			c.PrizeType = &pt
		}
		if e.WonAt != nil {
			at := *e.WonAt
			c.WonAt = &at
		}
		employees = append(employees, c)
	}
	return employees
}
