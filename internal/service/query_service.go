package service

import (
	"context"
	"fmt"
	"iter"

	"github.com/locvowork/employee_queries/internal/domain"
	"github.com/locvowork/employee_queries/pkg/dataflow"
)

// QueryService runs the fixed set of emp/dept queries.
type QueryService struct {
	empRepo  domain.EmployeeRepository
	deptRepo domain.DepartmentRepository
}

// NewQueryService creates a new QueryService instance
func NewQueryService(empRepo domain.EmployeeRepository, deptRepo domain.DepartmentRepository) *QueryService {
	return &QueryService{
		empRepo:  empRepo,
		deptRepo: deptRepo,
	}
}

func (qs *QueryService) employees(ctx context.Context) ([]domain.Employee, error) {
	emps, err := qs.empRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}

// ==================== Projections ====================

// DistinctJobs returns each job title once, in order of first appearance.
func (qs *QueryService) DistinctJobs(ctx context.Context) ([]string, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return nil, err
	}
	return dataflow.Collect(distinctJobs(emps)), nil
}

func distinctJobs(emps []domain.Employee) iter.Seq[string] {
	return dataflow.Distinct(
		dataflow.Map(dataflow.From(emps), func(e domain.Employee) string { return e.Job }),
	)
}

// EmployeesWithCommission returns the ids of employees that have a commission recorded.
// A recorded commission of zero still counts.
func (qs *QueryService) EmployeesWithCommission(ctx context.Context) ([]int, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return nil, err
	}
	withComm := dataflow.Filter(dataflow.From(emps), domain.Employee.HasCommission)
	return dataflow.Collect(dataflow.Map(withComm, func(e domain.Employee) int { return e.EmpNo })), nil
}

// DistinctJobCount counts the titles DistinctJobs would return.
func (qs *QueryService) DistinctJobCount(ctx context.Context) (int, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return 0, err
	}
	return dataflow.Count(distinctJobs(emps)), nil
}

// ==================== Aggregates ====================

// SalaryStats summarizes the salary of every employee.
// It returns domain.ErrEmptyCollection when there are no employees.
func (qs *QueryService) SalaryStats(ctx context.Context) (domain.SalaryStats, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return domain.SalaryStats{}, err
	}
	stats := summarizeSalaries(emps)
	if stats.Count == 0 {
		return domain.SalaryStats{}, fmt.Errorf("salary stats: %w", domain.ErrEmptyCollection)
	}
	return stats, nil
}

// SalaryStatsByDept summarizes salaries per department id, ascending by id.
// Partitions come from the employees' own dept ids, so ids without a department row are kept.
func (qs *QueryService) SalaryStatsByDept(ctx context.Context) ([]domain.DeptSalaryStats, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return nil, err
	}
	groups := dataflow.GroupBy(dataflow.From(emps), func(e domain.Employee) int { return e.DeptNo })
	out := make([]domain.DeptSalaryStats, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.DeptSalaryStats{DeptNo: g.Key, SalaryStats: summarizeSalaries(g.Items)})
	}
	return out, nil
}

func summarizeSalaries(emps []domain.Employee) domain.SalaryStats {
	s := dataflow.Summarize(dataflow.Map(dataflow.From(emps), func(e domain.Employee) float64 { return e.Salary }))
	return domain.SalaryStats{
		Count: s.Count,
		Min:   s.Min,
		Max:   s.Max,
		Avg:   s.Avg(),
		Sum:   s.Sum,
	}
}

// ==================== Rankings ====================

// HighestPaid returns the employee with the largest total compensation.
// Ties go to the employee listed first. It returns domain.ErrEmptyCollection when there are no employees.
func (qs *QueryService) HighestPaid(ctx context.Context) (domain.Employee, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return domain.Employee{}, err
	}
	best, ok := highestPaid(emps)
	if !ok {
		return domain.Employee{}, fmt.Errorf("highest paid: %w", domain.ErrEmptyCollection)
	}
	return best, nil
}

// HighestPaidByDept ranks total compensation inside each department partition, ascending by dept id.
func (qs *QueryService) HighestPaidByDept(ctx context.Context) ([]domain.DeptTopEarner, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return nil, err
	}
	groups := dataflow.GroupBy(dataflow.From(emps), func(e domain.Employee) int { return e.DeptNo })
	out := make([]domain.DeptTopEarner, 0, len(groups))
	for _, g := range groups {
		best, ok := highestPaid(g.Items)
		if !ok {
			continue
		}
		out = append(out, domain.DeptTopEarner{
			DeptNo:            g.Key,
			EmpNo:             best.EmpNo,
			Name:              best.Name,
			TotalCompensation: best.TotalCompensation(),
		})
	}
	return out, nil
}

func highestPaid(emps []domain.Employee) (domain.Employee, bool) {
	return dataflow.MaxBy(dataflow.From(emps), domain.Employee.TotalCompensation)
}

// ==================== Joins ====================

// EmployeeLocations pairs every employee, in listing order, with its department location.
// Employees whose department is unknown get an empty location.
func (qs *QueryService) EmployeeLocations(ctx context.Context) ([]domain.EmployeeLocation, error) {
	emps, err := qs.employees(ctx)
	if err != nil {
		return nil, err
	}
	depts, err := qs.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	byNo := dataflow.IndexBy(dataflow.From(depts), func(d domain.Department) int { return d.DeptNo })
	return dataflow.Collect(dataflow.Map(dataflow.From(emps), func(e domain.Employee) domain.EmployeeLocation {
		// zero-value Department when missing, so Location is ""
		return domain.EmployeeLocation{EmpNo: e.EmpNo, Name: e.Name, Location: byNo[e.DeptNo].Location}
	})), nil
}

// ==================== Lookups ====================

// Employees returns the full employee list.
func (qs *QueryService) Employees(ctx context.Context) ([]domain.Employee, error) {
	return qs.employees(ctx)
}

// Employee returns a single employee by id.
func (qs *QueryService) Employee(ctx context.Context, empNo int) (*domain.Employee, error) {
	return qs.empRepo.GetByID(ctx, empNo)
}

// Departments returns the full department list.
func (qs *QueryService) Departments(ctx context.Context) ([]domain.Department, error) {
	depts, err := qs.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return depts, nil
}
