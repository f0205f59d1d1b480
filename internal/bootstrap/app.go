package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/employee_queries/internal/config"
	"github.com/locvowork/employee_queries/internal/dataset"
	"github.com/locvowork/employee_queries/internal/handler"
	"github.com/locvowork/employee_queries/internal/logger"
	"github.com/locvowork/employee_queries/internal/repository"
	"github.com/locvowork/employee_queries/internal/service"
)

type App struct {
	Echo *echo.Echo
	Svc  *service.QueryService
	// Port overrides APP_PORT when non-zero.
	Port int
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo: e,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(os.Stdout, config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize dependencies
	empRepo := repository.NewEmployeeRepository(dataset.Employees())
	deptRepo := repository.NewDepartmentRepository(dataset.Departments())
	a.Svc = service.NewQueryService(empRepo, deptRepo)
	queryHandler := handler.NewQueryHandler(a.Svc)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(queryHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
}

func (a *App) RegisterRoutes(h *handler.QueryHandler) {
	queries := a.Echo.Group("/queries")
	queries.GET("", h.CatalogHandler)
	queries.GET("/distinct-jobs", h.DistinctJobsHandler)
	queries.GET("/commissioned-employees", h.CommissionedHandler)
	queries.GET("/distinct-job-count", h.DistinctJobCountHandler)
	queries.GET("/salary-stats", h.SalaryStatsHandler)
	queries.GET("/salary-stats/by-dept", h.SalaryStatsByDeptHandler)
	queries.GET("/highest-paid", h.HighestPaidHandler)
	queries.GET("/highest-paid/by-dept", h.HighestPaidByDeptHandler)
	queries.GET("/employee-locations", h.EmployeeLocationsHandler)

	a.Echo.GET("/employees", h.ListEmployeesHandler)
	a.Echo.GET("/employees/:id", h.GetEmployeeHandler)
	a.Echo.GET("/departments", h.ListDepartmentsHandler)

	exportGroup := a.Echo.Group("/export")
	exportGroup.GET("/xlsx", h.ExportXLSXHandler)
}

func (a *App) Run() error {
	port := config.DefaultEnvConfig.APP_PORT
	if a.Port != 0 {
		port = a.Port
	}
	return a.Echo.Start(":" + strconv.Itoa(port))
}
