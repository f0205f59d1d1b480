// Package export renders the query results as an xlsx workbook.
package export

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/locvowork/employee_queries/internal/domain"
	"github.com/locvowork/employee_queries/internal/service"
	"github.com/locvowork/employee_queries/pkg/simpleexcel"
)

//go:embed report_config.yaml
var reportConfig string

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// employeeRow flattens an Employee with its computed total pay for the roster sheet.
type employeeRow struct {
	EmpNo             int
	Name              string
	Job               string
	ManagerNo         *int
	HireDate          time.Time
	Salary            float64
	Commission        *float64
	TotalCompensation float64
	DeptNo            int
}

// BuildReport runs the queries and binds their results to the embedded report template.
func BuildReport(ctx context.Context, svc *service.QueryService) (*simpleexcel.DataExporter, error) {
	exporter, err := simpleexcel.NewDataExporterFromYamlConfig(reportConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}
	exporter.
		RegisterFormatter("date", formatDate).
		RegisterFormatter("amount", formatAmount)

	emps, err := svc.Employees(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]employeeRow, len(emps))
	for i, e := range emps {
		rows[i] = employeeRow{
			EmpNo:             e.EmpNo,
			Name:              e.Name,
			Job:               e.Job,
			ManagerNo:         e.ManagerNo,
			HireDate:          e.HireDate,
			Salary:            e.Salary,
			Commission:        e.Commission,
			TotalCompensation: e.TotalCompensation(),
			DeptNo:            e.DeptNo,
		}
	}

	stats := []domain.SalaryStats{}
	s, err := svc.SalaryStats(ctx)
	switch {
	case err == nil:
		stats = append(stats, s)
	case !errors.Is(err, domain.ErrEmptyCollection):
		return nil, err
	}

	byDept, err := svc.SalaryStatsByDept(ctx)
	if err != nil {
		return nil, err
	}
	top, err := svc.HighestPaidByDept(ctx)
	if err != nil {
		return nil, err
	}
	locs, err := svc.EmployeeLocations(ctx)
	if err != nil {
		return nil, err
	}

	exporter.
		BindSectionData("employees", rows).
		BindSectionData("salary_stats", stats).
		BindSectionData("salary_stats_by_dept", byDept).
		BindSectionData("top_earners", top).
		BindSectionData("locations", locs)

	return exporter, nil
}

func formatDate(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return v
}

// formatAmount rounds to the same three decimals the console output uses.
func formatAmount(v interface{}) interface{} {
	if f, ok := v.(float64); ok {
		return math.Round(f*1000) / 1000
	}
	return v
}
