package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/elterngeld/calculator/internal/calculation"
	"github.com/elterngeld/calculator/internal/config"
	"github.com/elterngeld/calculator/internal/output"
)

func newPlanCmd() *cobra.Command {
	var (
		configFile string
		format     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Evaluate a month plan from a YAML scenario file",
		Example: `  elterngeld plan --config plan.yaml
  elterngeld plan --config plan.yaml --format html --output plan.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			slog.Debug("loaded scenario", "file", configFile, "name", cfg.Name)

			est, err := calculation.EstimateConfiguration(cfg, calculation.NewSlogLogger(nil))
			if err != nil {
				return err
			}

			if outputFile == "" {
				return output.RenderReport(cmd.OutOrStdout(), est, format)
			}
			path, err := output.GenerateReport(est, format, outputFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Scenario file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, csv, json, html)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to this file instead of stdout")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), outputFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "example_plan.yaml", "Destination file")
	return cmd
}
