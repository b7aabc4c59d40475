package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathdevth/bananabrix/internal/apperr"
	"github.com/mathdevth/bananabrix/internal/model"
)

func newFitCmd() *cobra.Command {
	var out, name string
	cmd := &cobra.Command{
		Use:   "fit <samples.csv>",
		Short: "Fit a linear Brix model from labelled color samples",
		Long:  "Fit a linear Brix model from a CSV of r,g,b,brix rows (an optional header row is skipped) and write the YAML artifact.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.ModelPath
			}

			f, err := os.Open(args[0])
			if err != nil {
				return apperr.Userf("cannot open samples: %v", err)
			}
			defer f.Close()

			samples, err := model.ReadSamples(f)
			if err != nil {
				return apperr.Userf("%s: %v", args[0], err)
			}

			m, err := model.Fit(name, samples)
			if err != nil {
				return fmt.Errorf("fit: %w", err)
			}
			if err := m.Save(out); err != nil {
				return fmt.Errorf("save model: %w", err)
			}

			st := m.Stats()
			printf(cmd, "[*] Samples: %d | R²: %.4f | RMSE: %.3f °Bx\n", st.Samples, st.RSquared, st.RMSE)
			printf(cmd, "[+++] Model %q written to %s\n", m.Name(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Artifact path (defaults to --model)")
	cmd.Flags().StringVar(&name, "name", "banana-brix-linear", "Model name stored in the artifact")
	return cmd
}
