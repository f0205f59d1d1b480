package runner

import (
	"fmt"

	"github.com/locvowork/employee_queries/internal/domain"
)

// Line formats for each query. Statistics are printed with three decimals.
const (
	distinctJobCountFormat = "Number of distinct jobs: %d"
	salaryStatsFormat      = "Min: %.3f, Max: %.3f, Avg: %.3f, Sum: %.3f"
	deptSalaryStatsFormat  = "DeptId: %d, " + salaryStatsFormat
	highestPaidFormat      = "empNo with highest pay: %d"
	deptTopEarnerFormat    = "Employee with highest payment in Dept %d: %d"
	employeeLocationFormat = "Employee %s's location is: %s"
)

func formatDistinctJobCount(n int) string {
	return fmt.Sprintf(distinctJobCountFormat, n)
}

func formatSalaryStats(s domain.SalaryStats) string {
	return fmt.Sprintf(salaryStatsFormat, s.Min, s.Max, s.Avg, s.Sum)
}

func formatDeptSalaryStats(s domain.DeptSalaryStats) string {
	return fmt.Sprintf(deptSalaryStatsFormat, s.DeptNo, s.Min, s.Max, s.Avg, s.Sum)
}

func formatHighestPaid(e domain.Employee) string {
	return fmt.Sprintf(highestPaidFormat, e.EmpNo)
}

func formatDeptTopEarner(t domain.DeptTopEarner) string {
	return fmt.Sprintf(deptTopEarnerFormat, t.DeptNo, t.EmpNo)
}

func formatEmployeeLocation(l domain.EmployeeLocation) string {
	return fmt.Sprintf(employeeLocationFormat, l.Name, l.Location)
}
