package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/app"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/config"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "battery-aging",
	Short: "Lead-acid battery aging and inrush estimation service",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}
