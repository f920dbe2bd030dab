package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/metrics"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newRecomputeCmd() *cobra.Command {
	var (
		file    string
		channel string
	)

	cmd := &cobra.Command{
		Use:   "recompute",
		Short: "Recalcula os campos derivados de uma lista de registros em JSON",
		Long: "Lê um array JSON de registros brutos (stdin por padrão) e imprime os registros " +
			"com campos derivados, textos formatados e avisos.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("erro ao abrir %s: %w", file, err)
				}
				defer f.Close()
				input = f
			}

			var defaultChannel domain.Channel
			if channel != "" {
				parsed, ok := domain.ParseChannel(channel)
				if !ok {
					return fmt.Errorf("canal inválido: %q", channel)
				}
				defaultChannel = parsed
			}

			views, err := recompute(input, defaultChannel)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(views))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Arquivo JSON de entrada (padrão: stdin)")
	cmd.Flags().StringVarP(&channel, "channel", "c", "", "Canal aplicado aos registros sem canal")

	return cmd
}

// recompute aplica o motor de métricas a cada registro lido
func recompute(input io.Reader, defaultChannel domain.Channel) ([]*domain.CampaignView, error) {
	var records []domain.CampaignRecord
	if err := json.NewDecoder(input).Decode(&records); err != nil {
		return nil, fmt.Errorf("entrada deve ser um array JSON de registros: %w", err)
	}

	views := make([]*domain.CampaignView, 0, len(records))
	for _, record := range records {
		if record.Channel == "" {
			record.Channel = defaultChannel
		}

		view := metrics.Recompute(record)
		view.Warnings = campaigning.Warnings(record)
		views = append(views, view)
	}

	return views, nil
}
