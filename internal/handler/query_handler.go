package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/employee_queries/internal/domain"
	"github.com/locvowork/employee_queries/internal/export"
	"github.com/locvowork/employee_queries/internal/logger"
	"github.com/locvowork/employee_queries/internal/service"
	"github.com/locvowork/employee_queries/internal/service/serviceutils"
)

// QueryHandler serves the employee queries as JSON and the workbook as a download.
type QueryHandler struct {
	svc *service.QueryService
}

// NewQueryHandler creates a QueryHandler over svc.
func NewQueryHandler(svc *service.QueryService) *QueryHandler {
	return &QueryHandler{svc: svc}
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrEmptyCollection):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *QueryHandler) CatalogHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Queries listed successfully", service.Catalog())
}

func (h *QueryHandler) DistinctJobsHandler(c echo.Context) error {
	jobs, err := h.svc.DistinctJobs(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to list distinct jobs", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Distinct jobs retrieved successfully", jobs)
}

func (h *QueryHandler) CommissionedHandler(c echo.Context) error {
	ids, err := h.svc.EmployeesWithCommission(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to list commissioned employees", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Commissioned employees retrieved successfully", ids)
}

func (h *QueryHandler) DistinctJobCountHandler(c echo.Context) error {
	n, err := h.svc.DistinctJobCount(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to count distinct jobs", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Distinct job count retrieved successfully", map[string]int{"count": n})
}

func (h *QueryHandler) SalaryStatsHandler(c echo.Context) error {
	stats, err := h.svc.SalaryStats(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to compute salary statistics", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Salary statistics retrieved successfully", stats)
}

func (h *QueryHandler) SalaryStatsByDeptHandler(c echo.Context) error {
	stats, err := h.svc.SalaryStatsByDept(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to compute department salary statistics", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Department salary statistics retrieved successfully", stats)
}

func (h *QueryHandler) HighestPaidHandler(c echo.Context) error {
	emp, err := h.svc.HighestPaid(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to find highest paid employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Highest paid employee retrieved successfully", emp)
}

func (h *QueryHandler) HighestPaidByDeptHandler(c echo.Context) error {
	top, err := h.svc.HighestPaidByDept(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to find highest paid employees by department", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Highest paid employees by department retrieved successfully", top)
}

func (h *QueryHandler) EmployeeLocationsHandler(c echo.Context) error {
	locs, err := h.svc.EmployeeLocations(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to resolve employee locations", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee locations retrieved successfully", locs)
}

func (h *QueryHandler) ListEmployeesHandler(c echo.Context) error {
	emps, err := h.svc.Employees(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to list employees", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", emps)
}

func (h *QueryHandler) GetEmployeeHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	emp, err := h.svc.Employee(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to get employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", emp)
}

func (h *QueryHandler) ListDepartmentsHandler(c echo.Context) error {
	depts, err := h.svc.Departments(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, errorStatus(err), "Failed to list departments", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Departments listed successfully", depts)
}

func (h *QueryHandler) ExportXLSXHandler(c echo.Context) error {
	ctx := c.Request().Context()

	exporter, err := export.BuildReport(ctx, h.svc)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to build report", err)
	}

	excelBytes, err := exporter.ToBytes()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}
	logger.InfoLog(ctx, "Generated employee report (%d bytes)", len(excelBytes))

	c.Response().Header().Set("Content-Disposition", `attachment; filename="employee_report.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, excelBytes)
}
