package repository

import (
	"context"
	"fmt"

	"github.com/locvowork/employee_queries/internal/domain"
)

type employeeRepository struct {
	employees []domain.Employee
}

// NewEmployeeRepository creates a read-only EmployeeRepository over a fixed employee list.
// The list is deep-copied; later changes to the caller's slice or the values
// its optional fields point at are not observed.
func NewEmployeeRepository(employees []domain.Employee) domain.EmployeeRepository {
	owned := make([]domain.Employee, len(employees))
	for i, e := range employees {
		owned[i] = cloneEmployee(e)
	}
	return &employeeRepository{employees: owned}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Employee, len(r.employees))
	for i, e := range r.employees {
		out[i] = cloneEmployee(e)
	}
	return out, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, empNo int) (*domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, e := range r.employees {
		if e.EmpNo == empNo {
			c := cloneEmployee(e)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("employee %d: %w", empNo, domain.ErrNotFound)
}

// cloneEmployee copies the optional fields so callers never share pointers with the repository.
func cloneEmployee(e domain.Employee) domain.Employee {
	if e.ManagerNo != nil {
		m := *e.ManagerNo
		e.ManagerNo = &m
	}
	if e.Commission != nil {
		c := *e.Commission
		e.Commission = &c
	}
	return e
}
