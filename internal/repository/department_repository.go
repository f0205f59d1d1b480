package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/locvowork/employee_queries/internal/domain"
)

type departmentRepository struct {
	departments []domain.Department
}

// NewDepartmentRepository creates a read-only DepartmentRepository over a fixed department list.
func NewDepartmentRepository(departments []domain.Department) domain.DepartmentRepository {
	return &departmentRepository{departments: slices.Clone(departments)}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.departments), nil
}

func (r *departmentRepository) GetByID(ctx context.Context, deptNo int) (*domain.Department, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, d := range r.departments {
		if d.DeptNo == deptNo {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("department %d: %w", deptNo, domain.ErrNotFound)
}
