package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

var flagLogLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "metricsctl",
		Short: "Ferramentas de linha de comando das métricas de campanha",
		Long:  "Recalcula campos derivados, médias de referência e aplica a migração do banco.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(flagLogLevel)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Nível de log (debug, info, warn, error)")

	root.AddCommand(
		newRecomputeCmd(),
		newAverageCmd(),
		newMigrateCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
