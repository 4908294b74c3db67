package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/config"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/evaluate"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/logger"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/plot"
)

var renderDir string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the capacity, resistance and terminal-voltage charts as PNG files",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderDir, "out", "o", "charts", "output directory")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ev, err := evaluate.New(cfg.Battery, logger.New("render-command"))
	if err != nil {
		return err
	}
	rep, err := ev.Evaluate(cfg.Defaults)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	paths, err := plot.SaveAll(rep, renderDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
