package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a lookup by id has no match.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCollection is returned by aggregates that have no value for an empty input.
	ErrEmptyCollection = errors.New("empty collection")
)

// EmployeeRepository defines read access to the employee collection
type EmployeeRepository interface {
	// List returns every employee in listing order.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, empNo int) (*Employee, error)
}

// DepartmentRepository defines read access to the department collection
type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, deptNo int) (*Department, error)
}
