// Package dataset holds the fixed EMP/DEPT sample tables the queries run against.
package dataset

import (
	"time"

	"github.com/locvowork/employee_queries/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// Employees returns a fresh copy of the emp table in listing order.
func Employees() []domain.Employee {
	return []domain.Employee{
		{EmpNo: 7839, Name: "KING", Job: "PRESIDENT", HireDate: date(1981, 11, 17), Salary: 5000, DeptNo: 10},
		{EmpNo: 7698, Name: "BLAKE", Job: "MANAGER", ManagerNo: intPtr(7839), HireDate: date(1981, 5, 1), Salary: 2850, DeptNo: 30},
		{EmpNo: 7782, Name: "CLARK", Job: "MANAGER", ManagerNo: intPtr(7839), HireDate: date(1981, 6, 9), Salary: 2450, DeptNo: 10},
		{EmpNo: 7566, Name: "JONES", Job: "MANAGER", ManagerNo: intPtr(7839), HireDate: date(1981, 4, 2), Salary: 2975, DeptNo: 20},
		{EmpNo: 7788, Name: "SCOTT", Job: "ANALYST", ManagerNo: intPtr(7566), HireDate: date(1987, 7, 13).AddDate(0, 0, -85), Salary: 3000, DeptNo: 20},
		{EmpNo: 7902, Name: "FORD", Job: "ANALYST", ManagerNo: intPtr(7566), HireDate: date(1981, 12, 3), Salary: 3000, DeptNo: 20},
		{EmpNo: 7369, Name: "SMITH", Job: "CLERK", ManagerNo: intPtr(7902), HireDate: date(1980, 12, 17), Salary: 800, DeptNo: 20},
		{EmpNo: 7499, Name: "ALLEN", Job: "SALESMAN", ManagerNo: intPtr(7698), HireDate: date(1981, 2, 20), Salary: 1600, Commission: floatPtr(300), DeptNo: 30},
		{EmpNo: 7521, Name: "WARD", Job: "SALESMAN", ManagerNo: intPtr(7698), HireDate: date(1981, 2, 22), Salary: 1250, Commission: floatPtr(500), DeptNo: 30},
		{EmpNo: 7654, Name: "MARTIN", Job: "SALESMAN", ManagerNo: intPtr(7698), HireDate: date(1981, 9, 28), Salary: 1250, Commission: floatPtr(1400), DeptNo: 30},
		{EmpNo: 7844, Name: "TURNER", Job: "SALESMAN", ManagerNo: intPtr(7698), HireDate: date(1981, 9, 8), Salary: 1500, Commission: floatPtr(0), DeptNo: 30},
		{EmpNo: 7876, Name: "ADAMS", Job: "CLERK", ManagerNo: intPtr(7788), HireDate: date(1987, 7, 13).AddDate(0, 0, -51), Salary: 1100, DeptNo: 20},
		{EmpNo: 7900, Name: "JAMES", Job: "CLERK", ManagerNo: intPtr(7698), HireDate: date(1981, 12, 3), Salary: 950, DeptNo: 30},
		{EmpNo: 7934, Name: "MILLER", Job: "CLERK", ManagerNo: intPtr(7782), HireDate: date(1982, 1, 23), Salary: 1300, DeptNo: 10},
	}
}

// Departments returns a fresh copy of the dept table.
func Departments() []domain.Department {
	return []domain.Department{
		{DeptNo: 10, Name: "ACCOUNTING", Location: "NEW YORK"},
		{DeptNo: 20, Name: "RESEARCH", Location: "DALLAS"},
		{DeptNo: 30, Name: "SALES", Location: "CHICAGO"},
		{DeptNo: 40, Name: "OPERATIONS", Location: "BOSTON"},
	}
}
