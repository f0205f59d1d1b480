package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_queries/internal/dataset"
	"github.com/locvowork/employee_queries/internal/domain"
	"github.com/locvowork/employee_queries/internal/repository"
	"github.com/locvowork/employee_queries/internal/service"
)

func newService(emps []domain.Employee) *service.QueryService {
	return service.NewQueryService(
		repository.NewEmployeeRepository(emps),
		repository.NewDepartmentRepository(dataset.Departments()),
	)
}

func TestBuildReport_SampleDataset(t *testing.T) {
	exporter, err := BuildReport(context.Background(), newService(dataset.Employees()))
	require.NoError(t, err)

	f, err := exporter.BuildExcel()
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Employees", "Salary Summary", "Top Earners", "Locations"}, f.GetSheetList())

	t.Run("roster", func(t *testing.T) {
		rows, err := f.GetRows("Employees")
		require.NoError(t, err)
		// title + header + 14 employees
		require.Len(t, rows, 16)
		assert.Equal(t, "Employee Roster", rows[0][0])
		assert.Equal(t, []string{"7839", "KING", "PRESIDENT", "", "1981-11-17", "5000", "", "5000", "10"}, rows[2])
		assert.Equal(t, []string{"7654", "MARTIN", "SALESMAN", "7698", "1981-09-28", "1250", "1400", "2650", "30"}, rows[11])
	})

	t.Run("salary summary", func(t *testing.T) {
		rows, err := f.GetRows("Salary Summary")
		require.NoError(t, err)
		assert.Equal(t, []string{"14", "800", "5000", "2073.214", "29025"}, rows[2])
		// gap row, then title + header of the by-department section
		assert.Equal(t, "By Department", rows[4][0])
		assert.Equal(t, []string{"10", "1300", "5000", "2916.667", "8750"}, rows[6])
		assert.Equal(t, []string{"30", "950", "2850", "1566.667", "9400"}, rows[8])
	})

	t.Run("top earners", func(t *testing.T) {
		rows, err := f.GetRows("Top Earners")
		require.NoError(t, err)
		assert.Equal(t, []string{"20", "7788", "SCOTT", "3000"}, rows[3])
	})

	t.Run("locations", func(t *testing.T) {
		v, err := f.GetCellValue("Locations", "B3")
		require.NoError(t, err)
		assert.Equal(t, "NEW YORK", v)
	})
}

func TestBuildReport_EmptyDataset(t *testing.T) {
	exporter, err := BuildReport(context.Background(), newService(nil))
	require.NoError(t, err)

	data, err := exporter.ToBytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
