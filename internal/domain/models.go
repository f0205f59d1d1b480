package domain

import "time"

// ==================== EMP / DEPT ====================

// Employee represents one row of the emp table.
type Employee struct {
	EmpNo      int       `json:"emp_no"`
	Name       string    `json:"name"`
	Job        string    `json:"job"`
	ManagerNo  *int      `json:"manager_no,omitempty"` // nil for the top-level role
	HireDate   time.Time `json:"hire_date"`
	Salary     float64   `json:"salary"`
	Commission *float64  `json:"commission,omitempty"` // nil for non-sales roles
	DeptNo     int       `json:"dept_no"`
}

// HasCommission reports whether a commission is recorded, zero included.
func (e Employee) HasCommission() bool {
	return e.Commission != nil
}

// TotalCompensation is salary plus commission, with a missing commission counted as zero.
func (e Employee) TotalCompensation() float64 {
	if e.Commission == nil {
		return e.Salary
	}
	return e.Salary + *e.Commission
}

// Department represents one row of the dept table.
type Department struct {
	DeptNo   int    `json:"dept_no"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ==================== QUERY RESULTS ====================

// SalaryStats is the min/max/avg/sum summary over a set of salaries.
type SalaryStats struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Sum   float64 `json:"sum"`
}

// DeptSalaryStats is SalaryStats for a single department partition.
type DeptSalaryStats struct {
	DeptNo int `json:"dept_no"`
	SalaryStats
}

// DeptTopEarner is the employee with the highest total compensation in a department.
type DeptTopEarner struct {
	DeptNo            int     `json:"dept_no"`
	EmpNo             int     `json:"emp_no"`
	Name              string  `json:"name"`
	TotalCompensation float64 `json:"total_compensation"`
}

// EmployeeLocation pairs an employee name with the location of its department.
// Location is empty when the department is unknown.
type EmployeeLocation struct {
	EmpNo    int    `json:"emp_no"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
