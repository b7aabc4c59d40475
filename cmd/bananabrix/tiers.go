package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mathdevth/bananabrix/internal/config"
	"github.com/mathdevth/bananabrix/internal/report"
	"github.com/mathdevth/bananabrix/internal/ripeness"
)

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Print the ripeness tier table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := viper.GetString(config.KeyFormat)
			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return report.RenderTiers(out)
			case "yaml", "json":
				return report.Encode(out, format, ripeness.Tiers)
			default:
				return formatError(format)
			}
		},
	}
}
