package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathdevth/bananabrix/internal/engine"
	"github.com/mathdevth/bananabrix/internal/nutrition"
	"github.com/mathdevth/bananabrix/internal/report"
)

type allowanceReport struct {
	Biometrics nutrition.Biometrics `json:"biometrics" yaml:"biometrics"`
	BMR        float64              `json:"bmr_kcal" yaml:"bmr_kcal"`
	TDEE       float64              `json:"tdee_kcal" yaml:"tdee_kcal"`
	SugarShare float64              `json:"sugar_share" yaml:"sugar_share"`
	DailyGrams float64              `json:"daily_allowance_grams" yaml:"daily_allowance_grams"`
	Comparison *engine.Allowance    `json:"banana,omitempty" yaml:"banana,omitempty"`
}

func newAllowanceCmd() *cobra.Command {
	var bio bioFlags
	var brix float64
	cmd := &cobra.Command{
		Use:   "allowance",
		Short: "Daily sugar allowance from biometrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			b, err := bio.resolve(cmd, true)
			if err != nil {
				return err
			}

			rep := allowanceReport{
				Biometrics: *b,
				BMR:        b.BMR(),
				TDEE:       b.TDEE(),
				SugarShare: b.SugarShare(),
				DailyGrams: nutrition.DailySugarAllowance(*b),
			}
			if cmd.Flags().Changed("brix") {
				rep.Comparison = engine.Compare(brix, cfg.BananaMassGrams, *b)
			}

			out := cmd.OutOrStdout()
			switch cfg.Format {
			case "text":
				fmt.Fprintf(out, "BMR:          %.1f kcal\n", rep.BMR)
				fmt.Fprintf(out, "TDEE:         %.1f kcal\n", rep.TDEE)
				fmt.Fprintf(out, "Sugar share:  %.0f%%\n", rep.SugarShare*100)
				fmt.Fprintf(out, "Daily sugar:  %.2f g\n", rep.DailyGrams)
				if c := rep.Comparison; c != nil {
					fmt.Fprintf(out, "Banana sugar: %.2f g (%.1f%% of daily allowance)\n", c.BananaSugarGrams, c.PercentOfAllowance)
				}
				return nil
			case "yaml", "json":
				return report.Encode(out, cfg.Format, rep)
			default:
				return formatError(cfg.Format)
			}
		},
	}
	bio.register(cmd)
	cmd.Flags().Float64Var(&brix, "brix", 0, "Compare a banana of this Brix with the allowance")
	return cmd
}
