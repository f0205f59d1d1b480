package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/employee_queries/internal/config"
	"github.com/locvowork/employee_queries/internal/dataset"
	"github.com/locvowork/employee_queries/internal/export"
	"github.com/locvowork/employee_queries/internal/logger"
	"github.com/locvowork/employee_queries/internal/repository"
	"github.com/locvowork/employee_queries/internal/service"
)

var outPath string

var rootCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Write the employee query results to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := config.LoadEnvConfig(); err != nil {
			return fmt.Errorf("failed to load env config: %w", err)
		}
		logger.InitLogging(os.Stderr, config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)

		svc := service.NewQueryService(
			repository.NewEmployeeRepository(dataset.Employees()),
			repository.NewDepartmentRepository(dataset.Departments()),
		)
		exporter, err := export.BuildReport(ctx, svc)
		if err != nil {
			return err
		}

		if err := writeWorkbook(outPath, exporter); err != nil {
			return err
		}
		logger.InfoLog(ctx, "Report written to %s", outPath)
		return nil
	},
}

type workbookWriter interface {
	ToWriter(w io.Writer) error
}

// writeWorkbook writes wb to path. The file is only reported as written once Close succeeds.
func writeWorkbook(path string, wb workbookWriter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := wb.ToWriter(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "employee_report.xlsx", "output file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
