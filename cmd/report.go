package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/config"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/core/evaluate"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/infra/logger"
	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/pkg/export"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run one evaluation with the configured defaults and print the result",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "summary", "output format: summary, json, capacity-csv or aging-csv")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ev, err := evaluate.New(cfg.Battery, logger.New("report-command"))
	if err != nil {
		return err
	}
	rep, err := ev.Evaluate(cfg.Defaults)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	out := cmd.OutOrStdout()
	switch reportFormat {
	case "json":
		return export.WriteJSON(out, rep)
	case "capacity-csv":
		return export.WriteCapacityCSV(out, rep)
	case "aging-csv":
		return export.WriteAgingCSV(out, rep)
	case "summary":
		fmt.Fprintf(out, "Battery: %s\n", rep.Battery.Name)
		for _, c := range rep.Curves {
			fmt.Fprintf(out, "  %6.1f °C  final capacity %6.2f %%\n", c.TempC, c.FinalPct)
		}
		fmt.Fprintf(out, "Self-discharge at %g °C: %.2f %%/month, %.0f mA\n",
			rep.SelfDischarge.TempC, rep.SelfDischarge.RatePercentPerMonth, rep.SelfDischarge.CurrentMilliamps)
		fmt.Fprintf(out, "Inrush current: %.1f A at %g V\n", rep.InrushCurrentA, rep.Input.NominalVoltageV)
		if rep.Divider != nil {
			fmt.Fprintf(out, "Resistive divider: %.3f A, %.3f V across load\n",
				rep.Divider.CurrentA, rep.Divider.VoltageAcrossLoadV)
		}
		fmt.Fprintf(out, "Internal resistance at year %.1f (%g °C): %.2f mΩ\n",
			rep.Input.AgingYear, rep.Input.TargetTempC, rep.ResistanceAtYearMilliOhm)
		for _, w := range rep.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", reportFormat)
	}
}
