package main

import (
	"context"
	"os"

	"github.com/locvowork/employee_queries/internal/config"
	"github.com/locvowork/employee_queries/internal/dataset"
	"github.com/locvowork/employee_queries/internal/logger"
	"github.com/locvowork/employee_queries/internal/repository"
	"github.com/locvowork/employee_queries/internal/runner"
	"github.com/locvowork/employee_queries/internal/service"
)

func main() {
	ctx := context.Background()

	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		panic(err)
	}

	// Initialize logging; stdout is reserved for query output
	logger.InitLogging(os.Stderr, config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)

	svc := service.NewQueryService(
		repository.NewEmployeeRepository(dataset.Employees()),
		repository.NewDepartmentRepository(dataset.Departments()),
	)

	if err := runner.New(svc, os.Stdout).Run(ctx); err != nil {
		logger.ErrorLog(ctx, "Some queries failed: %v", err)
		os.Exit(1)
	}
}
