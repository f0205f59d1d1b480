package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/employee_queries/internal/dataset"
	"github.com/locvowork/employee_queries/internal/domain"
	"github.com/locvowork/employee_queries/internal/export"
	"github.com/locvowork/employee_queries/internal/repository"
	"github.com/locvowork/employee_queries/internal/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newHandler(emps []domain.Employee) *QueryHandler {
	return NewQueryHandler(service.NewQueryService(
		repository.NewEmployeeRepository(emps),
		repository.NewDepartmentRepository(dataset.Departments()),
	))
}

func serve(t *testing.T, fn echo.HandlerFunc, params ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	require.NoError(t, fn(c))

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestQueryHandler_Queries(t *testing.T) {
	h := newHandler(dataset.Employees())

	tests := []struct {
		name    string
		handler echo.HandlerFunc
		want    string
	}{
		{"distinct jobs", h.DistinctJobsHandler, `["PRESIDENT","MANAGER","ANALYST","CLERK","SALESMAN"]`},
		{"commissioned", h.CommissionedHandler, `[7499,7521,7654,7844]`},
		{"distinct job count", h.DistinctJobCountHandler, `{"count":5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := serve(t, tt.handler)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, env.Success)
			assert.JSONEq(t, tt.want, string(env.Data))
		})
	}
}

func TestQueryHandler_SalaryStats(t *testing.T) {
	rec, env := serve(t, newHandler(dataset.Employees()).SalaryStatsHandler)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.SalaryStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 14, stats.Count)
	assert.Equal(t, 800.0, stats.Min)
	assert.Equal(t, 5000.0, stats.Max)
	assert.InDelta(t, 2073.214, stats.Avg, 0.001)
	assert.Equal(t, 29025.0, stats.Sum)
}

func TestQueryHandler_HighestPaidByDept(t *testing.T) {
	rec, env := serve(t, newHandler(dataset.Employees()).HighestPaidByDeptHandler)
	require.Equal(t, http.StatusOK, rec.Code)

	var top []domain.DeptTopEarner
	require.NoError(t, json.Unmarshal(env.Data, &top))
	require.Len(t, top, 3)
	assert.Equal(t, 7839, top[0].EmpNo)
	assert.Equal(t, 7788, top[1].EmpNo)
	assert.Equal(t, 7698, top[2].EmpNo)
}

func TestQueryHandler_EmptyCollectionIsNotFound(t *testing.T) {
	h := newHandler(nil)

	for name, fn := range map[string]echo.HandlerFunc{
		"salary stats": h.SalaryStatsHandler,
		"highest paid": h.HighestPaidHandler,
	} {
		t.Run(name, func(t *testing.T) {
			rec, env := serve(t, fn)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}

	rec, env := serve(t, h.DistinctJobsHandler)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestQueryHandler_GetEmployee(t *testing.T) {
	h := newHandler(dataset.Employees())

	t.Run("found", func(t *testing.T) {
		rec, env := serve(t, h.GetEmployeeHandler, "id", "7788")
		require.Equal(t, http.StatusOK, rec.Code)
		var emp domain.Employee
		require.NoError(t, json.Unmarshal(env.Data, &emp))
		assert.Equal(t, "SCOTT", emp.Name)
	})

	t.Run("bad id", func(t *testing.T) {
		rec, _ := serve(t, h.GetEmployeeHandler, "id", "abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec, env := serve(t, h.GetEmployeeHandler, "id", "1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, env.Error, "not found")
	})
}

func TestQueryHandler_Catalog(t *testing.T) {
	rec, env := serve(t, newHandler(nil).CatalogHandler)
	require.Equal(t, http.StatusOK, rec.Code)

	var defs []service.QueryDefinition
	require.NoError(t, json.Unmarshal(env.Data, &defs))
	assert.Len(t, defs, 8)
}

func TestQueryHandler_ExportXLSX(t *testing.T) {
	rec, _ := serve(t, newHandler(dataset.Employees()).ExportXLSXHandler)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Top Earners")
}

func TestQueryHandler_CanceledContext(t *testing.T) {
	h := newHandler(dataset.Employees())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx), rec)
	require.NoError(t, h.ListEmployeesHandler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
