package main

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-metrics-api/internal/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

func newAverageCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "average [valores...]",
		Short:   "Calcula a média de referência ignorando zeros",
		Example: "  metricsctl average 0 0 10 0 20",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series := make([]float64, 0, len(args))
			for _, arg := range args {
				value, err := cast.ToFloat64E(arg)
				if err != nil {
					return fmt.Errorf("valor inválido %q: %w", arg, err)
				}
				series = append(series, value)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), utils.FormatTwoDecimals(metrics.ComputeAverage(series)))
			return err
		},
	}
}
