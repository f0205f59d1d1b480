package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_queries/internal/dataset"
	"github.com/locvowork/employee_queries/internal/domain"
)

func TestEmployeeRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(dataset.Employees())

	emps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 14)
	assert.Equal(t, 7839, emps[0].EmpNo)
	assert.Equal(t, 7934, emps[13].EmpNo)
}

func TestEmployeeRepository_ListIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(dataset.Employees())

	emps, err := repo.List(ctx)
	require.NoError(t, err)
	emps[0].Salary = 1
	*emps[7].Commission = 9999

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, again[0].Salary)
	assert.Equal(t, 300.0, *again[7].Commission)
}

func TestEmployeeRepository_SourceIsIsolated(t *testing.T) {
	ctx := context.Background()
	src := dataset.Employees()
	repo := NewEmployeeRepository(src)

	*src[7].Commission = 9999
	*src[1].ManagerNo = 1
	src[0].Name = "CHANGED"

	emps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, *emps[7].Commission)
	assert.Equal(t, 7839, *emps[1].ManagerNo)
	assert.Equal(t, "KING", emps[0].Name)

	e, err := repo.GetByID(ctx, 7499)
	require.NoError(t, err)
	assert.Equal(t, 300.0, *e.Commission)
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(dataset.Employees())

	e, err := repo.GetByID(ctx, 7788)
	require.NoError(t, err)
	assert.Equal(t, "SCOTT", e.Name)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmployeeRepository(dataset.Employees()).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDepartmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDepartmentRepository(dataset.Departments())

	depts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, depts, 4)

	d, err := repo.GetByID(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, "BOSTON", d.Location)

	_, err = repo.GetByID(ctx, 50)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
