package service

import (
	"github.com/locvowork/employee_queries/internal/repository/builder"
)

// Query ids, in execution order.
const (
	QueryDistinctJobs      = "distinct-jobs"
	QueryCommissioned      = "commissioned-employees"
	QueryDistinctJobCount  = "distinct-job-count"
	QuerySalaryStats       = "salary-stats"
	QuerySalaryStatsByDept = "salary-stats-by-dept"
	QueryHighestPaid       = "highest-paid"
	QueryHighestPaidByDept = "highest-paid-by-dept"
	QueryEmployeeLocations = "employee-locations"
)

const totalCompensationExpr = "sal + COALESCE(comm, 0)"

// QueryDefinition describes one query and the SQL statement it mirrors.
type QueryDefinition struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	SQL   string `json:"sql"`
}

var salaryAggregates = []string{"MIN(sal)", "MAX(sal)", "AVG(sal)", "SUM(sal)"}

// Catalog lists every query in execution order.
func Catalog() []QueryDefinition {
	return []QueryDefinition{
		{
			ID:    QueryDistinctJobs,
			Title: "Distinct jobs",
			SQL:   builder.NewSQLBuilder().Select("job").Distinct().From("emp").String(),
		},
		{
			ID:    QueryCommissioned,
			Title: "Employees with a commission",
			SQL:   builder.NewSQLBuilder().Select("empno").From("emp").Where("comm IS NOT NULL").String(),
		},
		{
			ID:    QueryDistinctJobCount,
			Title: "Number of distinct jobs",
			SQL:   builder.NewSQLBuilder().Select("COUNT(DISTINCT job)").From("emp").String(),
		},
		{
			ID:    QuerySalaryStats,
			Title: "Lowest, highest, average and total salary",
			SQL:   builder.NewSQLBuilder().Select(salaryAggregates...).From("emp").String(),
		},
		{
			ID:    QuerySalaryStatsByDept,
			Title: "Salary statistics by department",
			SQL: builder.NewSQLBuilder().
				Select(append([]string{"deptno"}, salaryAggregates...)...).
				From("emp").
				GroupBy("deptno").
				OrderBy("deptno").
				String(),
		},
		{
			ID:    QueryHighestPaid,
			Title: "Employee with highest pay",
			SQL: builder.NewSQLBuilder().
				Select("empno").
				From("emp").
				OrderBy(totalCompensationExpr + " DESC").
				Limit(1).
				String(),
		},
		{
			ID:    QueryHighestPaidByDept,
			Title: "Employee with highest pay by department",
			SQL: builder.NewSQLBuilder().
				Select("deptno", "MAX(empno) KEEP (DENSE_RANK LAST ORDER BY "+totalCompensationExpr+")").
				From("emp").
				GroupBy("deptno").
				OrderBy("deptno").
				String(),
		},
		{
			ID:    QueryEmployeeLocations,
			Title: "Employee locations",
			SQL: builder.NewSQLBuilder().
				Select("e.ename", "d.loc").
				From("emp e").
				Join("LEFT", "dept d", "e.deptno = d.deptno").
				String(),
		},
	}
}

// Lookup returns the definition for a query id.
func Lookup(id string) (QueryDefinition, bool) {
	for _, q := range Catalog() {
		if q.ID == id {
			return q, true
		}
	}
	return QueryDefinition{}, false
}
