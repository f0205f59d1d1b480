package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/employee_queries/internal/bootstrap"
	"github.com/locvowork/employee_queries/internal/logger"
)

var port int

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the employee queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		app := bootstrap.NewApp()
		if err := app.Initialize(ctx); err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		app.Port = port

		logger.InfoLog(ctx, "Starting server")
		return app.Run()
	},
}

func init() {
	rootCmd.Flags().IntVar(&port, "port", 0, "listen port (overrides APP_PORT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
